package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestLoginMetrics(t *testing.T) {
	initial := testutil.ToFloat64(LoginsTotal.WithLabelValues("success"))
	LoginsTotal.WithLabelValues("success").Inc()
	assert.Equal(t, initial+1, testutil.ToFloat64(LoginsTotal.WithLabelValues("success")))

	initialFailed := testutil.ToFloat64(LoginsTotal.WithLabelValues("wrong_password"))
	LoginsTotal.WithLabelValues("wrong_password").Inc()
	assert.Equal(t, initialFailed+1, testutil.ToFloat64(LoginsTotal.WithLabelValues("wrong_password")))
}

func TestArticleWriteMetrics(t *testing.T) {
	initial := testutil.ToFloat64(ArticleWritesTotal.WithLabelValues("create"))
	ArticleWritesTotal.WithLabelValues("create").Inc()
	assert.Equal(t, initial+1, testutil.ToFloat64(ArticleWritesTotal.WithLabelValues("create")))
}

// fakePoolStats implements PoolStats for testing
type fakePoolStats struct {
	total, idle, acquired int32
}

func (s fakePoolStats) TotalConns() int32    { return s.total }
func (s fakePoolStats) IdleConns() int32     { return s.idle }
func (s fakePoolStats) AcquiredConns() int32 { return s.acquired }

type fakeProvider struct {
	stats fakePoolStats
}

func (p *fakeProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakePoolStats{total: 10, idle: 7, acquired: 3}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(time.Hour) // collects once immediately
	defer collector.Stop()

	// Give the goroutine a moment to run the initial collect
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elcanhuseyn22/website/internal/auth"
	"github.com/elcanhuseyn22/website/internal/domain"
	"github.com/elcanhuseyn22/website/internal/mocks"
)

const testContent = "This content is comfortably longer than thirty characters."

// signedInRouter returns a router with session middleware plus the cookies of
// an established session for user-1/alice.
func signedInRouter(t *testing.T) (*gin.Engine, []*http.Cookie) {
	t.Helper()
	router := newSessionRouter()
	router.POST("/test-signin", func(c *gin.Context) {
		require.NoError(t, auth.SignIn(c, &domain.User{ID: "user-1", Username: "alice"}))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/test-signin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	return router, w.Result().Cookies()
}

func getWithCookies(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleArticle() domain.Article {
	now := time.Now()
	return domain.Article{
		ID:             "article-1",
		Title:          "Hello World",
		Content:        testContent,
		AuthorID:       "user-1",
		AuthorUsername: "alice",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestArticleHandler_Dashboard(t *testing.T) {
	t.Run("lists own articles", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("ListByAuthor", mock.Anything, "user-1").
			Return([]domain.Article{sampleArticle()}, nil)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.GET("/dashboard", auth.RequireAuthenticated(), h.Dashboard)

		w := getWithCookies(router, "/dashboard", cookies)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hello World")
		articles.AssertExpectations(t)
	})

	t.Run("empty dashboard renders empty list", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("ListByAuthor", mock.Anything, "user-1").Return([]domain.Article{}, nil)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.GET("/dashboard", auth.RequireAuthenticated(), h.Dashboard)

		w := getWithCookies(router, "/dashboard", cookies)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"articles":[]`)
	})
}

func TestArticleHandler_Add(t *testing.T) {
	t.Run("creates article with session user as author", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Title == "Hello World" && a.Content == testContent && a.AuthorID == "user-1"
		})).Return(nil)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.POST("/addarticle", auth.RequireAuthenticated(), h.Add)

		w := postForm(router, "/addarticle", url.Values{
			"title":   {"Hello World"},
			"content": {testContent},
		}, cookies...)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		articles.AssertExpectations(t)
	})

	t.Run("validation failure re-renders with errors and no insert", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.POST("/addarticle", auth.RequireAuthenticated(), h.Add)

		w := postForm(router, "/addarticle", url.Values{
			"title":   {"x"},
			"content": {"too short"},
		}, cookies...)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title")
		assert.Contains(t, w.Body.String(), "content")
		articles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestArticleHandler_List(t *testing.T) {
	articles := new(mocks.ArticleRepository)
	articles.On("ListAll", mock.Anything).Return([]domain.Article{sampleArticle()}, nil)

	h := NewArticleHandler(articles)
	router := newSessionRouter()
	router.GET("/articles", h.List)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello World")
	assert.Contains(t, w.Body.String(), "alice")
}

func TestArticleHandler_Detail(t *testing.T) {
	t.Run("round-trips title and content", func(t *testing.T) {
		article := sampleArticle()
		articles := new(mocks.ArticleRepository)
		articles.On("GetByID", mock.Anything, "article-1").Return(&article, nil)

		h := NewArticleHandler(articles)
		router := newSessionRouter()
		router.GET("/article/:id", h.Detail)

		req := httptest.NewRequest(http.MethodGet, "/article/article-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Article domain.Article `json:"article"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Hello World", body.Article.Title)
		assert.Equal(t, testContent, body.Article.Content)
	})

	t.Run("missing article is a distinct not-found", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

		h := NewArticleHandler(articles)
		router := newSessionRouter()
		router.GET("/article/:id", h.Detail)

		req := httptest.NewRequest(http.MethodGet, "/article/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not found")
	})
}

func TestArticleHandler_Delete(t *testing.T) {
	t.Run("deletes own article", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("Delete", mock.Anything, "article-1", "user-1").Return(nil)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.GET("/delete/:id", auth.RequireAuthenticated(), h.Delete)

		w := getWithCookies(router, "/delete/article-1", cookies)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		articles.AssertExpectations(t)
	})

	t.Run("non-owned or missing article is a no-op redirect home", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("Delete", mock.Anything, "article-2", "user-1").Return(domain.ErrNotFound)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.GET("/delete/:id", auth.RequireAuthenticated(), h.Delete)

		w := getWithCookies(router, "/delete/article-2", cookies)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestArticleHandler_Edit(t *testing.T) {
	t.Run("GET pre-populates the form for the owner", func(t *testing.T) {
		article := sampleArticle()
		articles := new(mocks.ArticleRepository)
		articles.On("GetOwned", mock.Anything, "article-1", "user-1").Return(&article, nil)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.GET("/edit/:id", auth.RequireAuthenticated(), h.ShowEdit)

		w := getWithCookies(router, "/edit/article-1", cookies)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hello World")
	})

	t.Run("GET on a non-owned article redirects home", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("GetOwned", mock.Anything, "article-2", "user-1").Return(nil, domain.ErrNotFound)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.GET("/edit/:id", auth.RequireAuthenticated(), h.ShowEdit)

		w := getWithCookies(router, "/edit/article-2", cookies)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("POST updates with ownership in the write predicate", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("Update", mock.Anything, "article-1", "user-1", "Updated Title", testContent).
			Return(nil)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.POST("/edit/:id", auth.RequireAuthenticated(), h.Edit)

		w := postForm(router, "/edit/article-1", url.Values{
			"title":   {"Updated Title"},
			"content": {testContent},
		}, cookies...)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		articles.AssertExpectations(t)
	})

	t.Run("POST on a non-owned article is a no-op redirect home", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("Update", mock.Anything, "article-2", "user-1", "Updated Title", testContent).
			Return(domain.ErrNotFound)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.POST("/edit/:id", auth.RequireAuthenticated(), h.Edit)

		w := postForm(router, "/edit/article-2", url.Values{
			"title":   {"Updated Title"},
			"content": {testContent},
		}, cookies...)

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("POST validation failure re-renders without calling the store", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)

		h := NewArticleHandler(articles)
		router, cookies := signedInRouter(t)
		router.POST("/edit/:id", auth.RequireAuthenticated(), h.Edit)

		w := postForm(router, "/edit/article-1", url.Values{
			"title":   {"x"},
			"content": {"short"},
		}, cookies...)

		require.Equal(t, http.StatusBadRequest, w.Code)
		articles.AssertNotCalled(t, "Update",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestArticleHandler_Search(t *testing.T) {
	t.Run("GET redirects home", func(t *testing.T) {
		h := NewArticleHandler(new(mocks.ArticleRepository))
		router := newSessionRouter()
		router.GET("/search", h.SearchRedirect)

		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("matching keyword renders results", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("SearchByTitle", mock.Anything, "Hello").
			Return([]domain.Article{sampleArticle()}, nil)

		h := NewArticleHandler(articles)
		router := newSessionRouter()
		router.POST("/search", h.Search)

		w := postForm(router, "/search", url.Values{"keyword": {"Hello"}})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Hello World")
	})

	t.Run("no match redirects to articles with a warning", func(t *testing.T) {
		articles := new(mocks.ArticleRepository)
		articles.On("SearchByTitle", mock.Anything, "zzz").Return([]domain.Article{}, nil)

		h := NewArticleHandler(articles)
		router := newSessionRouter()
		router.POST("/search", h.Search)

		w := postForm(router, "/search", url.Values{"keyword": {"zzz"}})

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/articles", w.Header().Get("Location"))
	})
}

func TestPageHandler_Home(t *testing.T) {
	router := newSessionRouter()
	router.GET("/", NewPageHandler().Home)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page":"home"`)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestPageHandler_About(t *testing.T) {
	router := newSessionRouter()
	router.GET("/about", NewPageHandler().About)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page":"about"`)
}

package auth

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash severities, rendered as notification styles by the client.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot notification queued for the next rendered response.
type Flash struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func init() {
	// Flashes ride in the gob-encoded session cookie.
	gob.Register(Flash{})
}

// AddFlash queues a notification for the next rendered response.
func AddFlash(c *gin.Context, severity, message string) {
	session := sessions.Default(c)
	session.AddFlash(Flash{Severity: severity, Message: message})
	_ = session.Save()
}

// TakeFlashes returns and consumes all queued notifications.
func TakeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		// Flashes() removes them from the session; persist the removal.
		_ = session.Save()
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// Package auth manages the signed cookie session: the authenticated
// principal, one-shot flash messages, and the route guards built on them.
package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/elcanhuseyn22/website/internal/domain"
)

// SessionName is the cookie name holding the signed session.
const SessionName = "blog_session"

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "username"
)

// Principal is the per-request authentication context derived from the
// session cookie. The zero value is an anonymous visitor.
type Principal struct {
	Authenticated bool
	UserID        string
	Username      string
}

// CurrentPrincipal derives the principal from the request's session. It never
// trusts partial state: both user id and username must be present.
func CurrentPrincipal(c *gin.Context) Principal {
	session := sessions.Default(c)
	userID, ok := session.Get(sessionKeyUserID).(string)
	if !ok || userID == "" {
		return Principal{}
	}
	username, ok := session.Get(sessionKeyUsername).(string)
	if !ok || username == "" {
		return Principal{}
	}
	return Principal{Authenticated: true, UserID: userID, Username: username}
}

// SignIn stores the user's identity in the session. Call only after the
// credentials have been verified against the store.
func SignIn(c *gin.Context, user *domain.User) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	return session.Save()
}

// SignOut clears the session entirely, dropping identity and pending flashes.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

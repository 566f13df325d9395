package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elcanhuseyn22/website/internal/auth"
)

// PageHandler serves the static informational pages.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	p := auth.CurrentPrincipal(c)
	data := gin.H{"authenticated": p.Authenticated}
	if p.Authenticated {
		data["username"] = p.Username
	}
	render(c, http.StatusOK, "home", data)
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elcanhuseyn22/website/internal/auth"
)

// render emits a JSON view model for the named page. Templating is left to
// the client; the payload carries everything a template would need, including
// any flash notifications queued by a previous request.
func render(c *gin.Context, status int, page string, data gin.H) {
	body := gin.H{"page": page}
	for k, v := range data {
		body[k] = v
	}
	if flashes := auth.TakeFlashes(c); len(flashes) > 0 {
		body["flash"] = flashes
	}
	c.JSON(status, body)
}

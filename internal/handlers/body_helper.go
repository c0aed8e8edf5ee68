package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BookShelfServices01/books-management-api/internal/httperr"
)

// requireBody rejects unreadable JSON and empty `{}` payloads before the
// typed bind. It uses ShouldBindBodyWith so the body can be bound again
// afterwards.
func requireBody(c *gin.Context, emptyMessage string) bool {
	var raw map[string]any
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return false
	}
	if len(raw) == 0 {
		httperr.Write(c, httperr.Validation(emptyMessage))
		return false
	}
	return true
}

// bindBody binds the cached request body into dst.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindBodyWith(dst, binding.JSON); err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return false
	}
	return true
}

// Package handlers provides HTTP handler implementations for the public
// API.
//
// Handlers are transport-thin: they bind input, call application services,
// and translate results into HTTP responses. Every failure, whether from
// binding, validation, uploads, or an unexpected fault, is routed through
// problem.Dispatch so clients always receive the same RFC 7807 envelope
// shape; no handler constructs a raw error response.
package handlers

import (
	"github.com/gin-gonic/gin"
)

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

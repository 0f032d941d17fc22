package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/avlatos/go-wishlist-backend/internal/problem"
)

// LegacyGone serves the retired unversioned /items routes. Every verb and
// path under the old prefix answers 410 with a problem envelope pointing at
// the versioned replacement, so stale clients get a machine-readable hint
// instead of a bare 404. The hint is worded without a literal path because
// envelope details pass through the PII masker, which collapses paths.
func LegacyGone(c *gin.Context) {
	problem.Gone(c, "this endpoint has been removed; use the versioned wishlist items API")
}

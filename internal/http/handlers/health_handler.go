package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avlatos/go-wishlist-backend/internal/secrets"
)

// SecretsReporter produces a secrets configuration report for health output.
type SecretsReporter interface {
	Validate() secrets.Report
}

// HealthResponse is the liveness payload. Secret values never appear in it;
// the embedded report carries key names only.
type HealthResponse struct {
	Status  string         `json:"status" example:"ok"`
	Secrets secrets.Report `json:"secrets"`
}

// Health godoc
// @ID          healthCheck
// @Summary     Service health
// @Description Reports liveness plus the state of required secrets: missing
// @Description keys and keys unrotated beyond the staleness window. Status
// @Description degrades when a required secret is missing.
// @Tags        Ops
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	report := h.secretSvc.Validate()
	status := "ok"
	if !report.Valid {
		status = "degraded"
	}
	ok(c, http.StatusOK, HealthResponse{Status: status, Secrets: report})
}

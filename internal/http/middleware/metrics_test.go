package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Generate one matched and one unmatched request.
	for _, path := range []string{"/items/1", "/does-not-exist"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", w.Code)
	}
	body := w.Body.String()

	// Matched route is labeled with the route template, not the raw path.
	if !strings.Contains(body, `http_requests_total{method="GET",path="/items/:id",status="200"}`) {
		t.Fatalf("missing matched-route counter in:\n%s", body)
	}
	if !strings.Contains(body, "http_request_duration_seconds") {
		t.Fatalf("missing latency histogram")
	}
	if !strings.Contains(body, "http_requests_inflight") {
		t.Fatalf("missing inflight gauge")
	}
	if !strings.Contains(body, "http_response_size_bytes") {
		t.Fatalf("missing response size histogram")
	}
}

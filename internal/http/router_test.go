package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avlatos/go-wishlist-backend/internal/config"
	"github.com/avlatos/go-wishlist-backend/internal/problem"
	"github.com/avlatos/go-wishlist-backend/internal/secrets"
	"github.com/avlatos/go-wishlist-backend/internal/store"
	"github.com/avlatos/go-wishlist-backend/internal/upload"
)

func newEngine(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	persister, err := upload.NewPersister(t.TempDir())
	if err != nil {
		t.Fatalf("persister: %v", err)
	}
	RegisterRoutes(r, store.NewMemory(), persister, secrets.NewManager(time.Hour), cfg)
	return r
}

func baseConfig() config.Config {
	return config.Config{
		APIBasePath: "/api/v1",
		Upload:      config.UploadConfig{MaxBytes: 10 << 20},
		CORS:        config.CORSConfig{AllowedOrigins: nil}, // triggers AllowAllOrigins branch
		Security:    config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:        config.OTELConfig{ServiceName: "test-svc"},
	}
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r := newEngine(t, baseConfig())

	// /health works
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404 problem envelope
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}
	var env problem.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("NoRoute envelope: %v (body=%s)", err, w.Body.String())
	}
	if !strings.HasSuffix(env.Type, "/not-found") || env.CorrelationID == "" {
		t.Fatalf("NoRoute envelope unexpected: %+v", env)
	}

	// NoMethod → 405 problem envelope (PATCH on a collection route)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/wishlist/items", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CorrelationIDFlowsEndToEnd(t *testing.T) {
	r := newEngine(t, baseConfig())

	// Inbound id is reused on both the header and the envelope.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/items/42", nil)
	req.Header.Set(problem.HeaderCorrelationID, "abc-123")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get(problem.HeaderCorrelationID); got != "abc-123" {
		t.Fatalf("response header = %q", got)
	}
	var env problem.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.CorrelationID != "abc-123" {
		t.Fatalf("envelope correlation_id = %q", env.CorrelationID)
	}

	// Absent id is generated server-side.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Header().Get(problem.HeaderCorrelationID) == "" {
		t.Fatalf("no generated correlation id on response")
	}
}

func TestRegisterRoutes_CRUDRoundTrip(t *testing.T) {
	r := newEngine(t, baseConfig())

	// Create through the full middleware chain.
	body := bytes.NewBufferString(`{"name":"Espresso machine","price":549.00,"priority":"high"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/items", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d body=%s", w.Code, w.Body.String())
	}

	// Fetch it back.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/items/1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d body=%s", w.Code, w.Body.String())
	}
	var item map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item["name"] != "Espresso machine" {
		t.Fatalf("item = %v", item)
	}
}

func TestRegisterRoutes_LegacyRoutesGone(t *testing.T) {
	r := newEngine(t, baseConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString(`{}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusGone {
		t.Fatalf("POST /items = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/items/3", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusGone {
		t.Fatalf("GET /items/3 = %d", w.Code)
	}
}

func TestRegisterRoutes_AllowlistCORSAndSecurityHeaders(t *testing.T) {
	cfg := baseConfig()
	cfg.CORS.AllowedOrigins = []string{"https://app.example.com"}
	r := newEngine(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("allowlist ACAO = %q", got)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}

	// Unlisted origins get no ACAO (and are blocked by gin-contrib/cors).
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin got ACAO %q", got)
	}
}

func TestRegisterRoutes_SwaggerToggle(t *testing.T) {
	cfg := baseConfig()
	cfg.SwaggerEnabled = true
	r := newEngine(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("swagger route = %d", w.Code)
	}

	// Disabled by default.
	r2 := newEngine(t, baseConfig())
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	r2.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("swagger disabled route = %d", w.Code)
	}
}

func Test_groupWithPrefix_and_limitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	g := groupWithPrefix(r, "/")
	g.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("root group route = %d", w.Code)
	}

	// Oversize body errors during read.
	r = gin.New()
	r.Use(limitBody(4))
	r.POST("/y", func(c *gin.Context) {
		var v map[string]any
		if err := c.ShouldBindJSON(&v); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/y", bytes.NewBufferString(`{"k":"0123456789"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("limitBody status = %d", w.Code)
	}
}

// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, and security headers.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (CorrelationID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - One error funnel: every failure path ends in a problem envelope
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/avlatos/go-wishlist-backend/internal/config"
	"github.com/avlatos/go-wishlist-backend/internal/http/handlers"
	"github.com/avlatos/go-wishlist-backend/internal/http/middleware"
	"github.com/avlatos/go-wishlist-backend/internal/problem"
	"github.com/avlatos/go-wishlist-backend/internal/secrets"
	"github.com/avlatos/go-wishlist-backend/internal/services"
	"github.com/avlatos/go-wishlist-backend/internal/store"
	"github.com/avlatos/go-wishlist-backend/internal/upload"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), CORS and security
// headers, health and metrics endpoints, and then mounts the versioned
// public API under cfg.APIBasePath plus the retired legacy routes.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. CorrelationID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Response compression
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, st store.Store, persister *upload.Persister, sec *secrets.Manager, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.CorrelationID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key", // project-specific sensitive header example
		},
	}))

	// 4) Panic recovery to a problem-envelope 500 (with correlation id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit; leaves room above the upload ceiling for
	// multipart framing overhead
	r.Use(limitBody(cfg.Upload.MaxBytes + 1<<20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", problem.HeaderCorrelationID},
			ExposeHeaders:    []string{problem.HeaderCorrelationID, "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", problem.HeaderCorrelationID},
			ExposeHeaders:    []string{problem.HeaderCorrelationID, "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks keep the envelope contract even off the routing table
	r.NoRoute(func(c *gin.Context) {
		problem.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		problem.Dispatch(c, &problem.HTTPError{
			Status: http.StatusMethodNotAllowed,
			Detail: "method not allowed",
		})
	})

	// Dependency injection: handlers ← service/store/persister/secrets
	h := handlers.New(services.NewWishlistService(st), persister, sec)

	// Liveness/health (includes the secrets report)
	r.GET("/health", h.Health)

	// Swagger UI (off unless explicitly enabled)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.POST("/wishlist/items", h.CreateItem)
		api.GET("/wishlist/items", h.ListItems)
		api.GET("/wishlist/items/:id", h.GetItem)
		api.PUT("/wishlist/items/:id", h.UpdateItem)
		api.DELETE("/wishlist/items/:id", h.DeleteItem)

		api.POST("/wishlist/items/:id/attachments", h.UploadAttachment)
	}

	// Retired unversioned routes answer 410 with a pointer to the
	// replacement instead of a bare 404.
	r.POST("/items", handlers.LegacyGone)
	r.GET("/items/:id", handlers.LegacyGone)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}

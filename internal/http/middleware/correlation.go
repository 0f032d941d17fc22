// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides correlation-ID handling, structured request logging,
// and a panic-safe recovery handler:
//
//   - CorrelationID() ensures every request carries a stable correlation ID
//     (propagated via X-Correlation-ID and stored in the Gin context), so a
//     client ticket and the server logs can be cross-referenced.
//   - Logger() emits structured access logs with request/response metadata
//     (latency, status, sizes), attaches a request-scoped zerolog.Logger,
//     and selects log level by outcome (info/warn/error).
//   - Recovery() converts panics into a problem-envelope 500 response while
//     preserving the correlation ID and emitting a stack trace to logs.
//
// Middleware order: CorrelationID → Logger (or RedactingLogger) → Recovery,
// so panics and errors are always logged with the correlation ID attached.
package middleware

import (
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avlatos/go-wishlist-backend/internal/problem"
)

const (
	// correlationIDKey is the Gin context key under which the ID is stored.
	correlationIDKey = "correlationID"
	// maxQueryLogLength caps the number of bytes of the raw query string logged.
	maxQueryLogLength = 2048
)

// CorrelationID attaches (or propagates) a correlation identifier per
// request. An inbound X-Correlation-ID header is reused when present and
// non-empty; otherwise a new UUIDv4 is generated. The ID is echoed on the
// identically-named response header and stored in the Gin context, and is
// stable for the lifetime of one request/response cycle. Never fails.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(problem.HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Set(correlationIDKey, cid)
		c.Writer.Header().Set(problem.HeaderCorrelationID, cid)
		c.Next()
	}
}

// CorrelationIDFrom returns the request's correlation ID, or "" when the
// CorrelationID middleware has not run.
func CorrelationIDFrom(c *gin.Context) string {
	if v, ok := c.Get(correlationIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Logger writes a structured access log for each request and response and
// stores a request-scoped zerolog.Logger in the Gin context (key "logger")
// so downstream code can emit enriched logs tied to the request. Log level
// follows the outcome: error for 5xx (or collected Gin errors), warn for
// 4xx, info otherwise.
//
// Place this after CorrelationID() so logs include the correlation ID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			// Fallback when route not matched / 404.
			path = c.Request.URL.Path
		}

		l := log.With().
			Str("correlation_id", CorrelationIDFrom(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()

		c.Set("logger", &l)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		ev := l.With().
			Int("status", status).
			Dur("latency", latency).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// Recovery intercepts panics, logs the stack trace with the correlation
// ID, and answers with an internal problem envelope. The envelope detail
// is the dispatcher's generic internal message; panic values never reach
// the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("correlation_id", CorrelationIDFrom(c)).
					Msg("panic recovered")

				if !c.Writer.Written() {
					problem.Respond(c, problem.New(
						problem.CategoryInternal,
						"an unexpected error occurred",
						c.Request.URL.Path,
						CorrelationIDFrom(c),
					))
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped zerolog.Logger. When Logger() has
// not attached one, a fallback logger without request fields is returned,
// so callers never need a nil check.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get("logger"); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// truncate returns s unchanged when within max length, otherwise it cuts
// s to max bytes and appends an ellipsis. A max <= 0 disables truncation.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

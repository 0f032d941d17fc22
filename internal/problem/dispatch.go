package problem

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/avlatos/go-wishlist-backend/internal/mask"
	"github.com/avlatos/go-wishlist-backend/internal/store"
	"github.com/avlatos/go-wishlist-backend/internal/upload"
	"github.com/avlatos/go-wishlist-backend/internal/validation"
)

// HTTPError is an explicit transport-level failure carrying its own status
// and detail, e.g. a deliberately deprecated endpoint answered with 410.
// The dispatcher keeps the given status instead of the category default.
type HTTPError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *HTTPError) Error() string { return e.Detail }

// genericInternalDetail is the only detail text internal faults ever show a
// client; the original error is logged (masked), never echoed.
const genericInternalDetail = "an unexpected error occurred"

// Dispatch maps err onto a problem category, builds the envelope, and
// writes it as the terminal response for this request. The mapping is an
// explicit match over a finite failure set:
//
//   - store.ErrNotFound                  → not-found / 404
//   - *HTTPError                         → validation category, status kept
//   - *validation.Error, *upload.Error   → validation / 400, message shown
//   - binding failures (field validation,
//     malformed JSON, empty body)        → validation / 400, coarse message
//   - *http.MaxBytesError                → validation / 413
//   - anything else                      → internal / 500, generic detail
//
// Binding failures stay coarse on purpose: field-level detail is not
// leaked. No handler may construct a raw error response around this funnel.
func Dispatch(c *gin.Context, err error) {
	cid := correlationID(c)
	instance := requestInstance(c)

	var (
		verr *validation.Error
		uerr *upload.Error
		herr *HTTPError
		ferr validatorv10.ValidationErrors
		serr *json.SyntaxError
		terr *json.UnmarshalTypeError
		merr *http.MaxBytesError
	)

	var env Envelope
	switch {
	case errors.Is(err, store.ErrNotFound):
		env = New(CategoryNotFound, err.Error(), instance, cid)

	case errors.As(err, &herr):
		env = New(CategoryValidation, herr.Detail, instance, cid).WithStatus(herr.Status)

	case errors.As(err, &verr), errors.As(err, &uerr):
		env = New(CategoryValidation, err.Error(), instance, cid)

	case errors.As(err, &ferr):
		env = New(CategoryValidation, "request validation failed", instance, cid)

	case errors.As(err, &serr), errors.As(err, &terr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		env = New(CategoryValidation, "invalid JSON body", instance, cid)

	case errors.As(err, &merr):
		env = New(CategoryValidation, "request body too large", instance, cid).
			WithStatus(http.StatusRequestEntityTooLarge)

	default:
		env = New(CategoryInternal, genericInternalDetail, instance, cid)
		log.Error().
			Str("correlation_id", cid).
			Str("instance", instance).
			Str("error", mask.Mask(err.Error())).
			Msg("unhandled error")
	}

	Respond(c, env)
}

// NotFound dispatches a not-found envelope with the given detail.
func NotFound(c *gin.Context, detail string) {
	Respond(c, New(CategoryNotFound, detail, requestInstance(c), correlationID(c)))
}

// Gone answers a deprecated endpoint: validation category, status 410.
func Gone(c *gin.Context, detail string) {
	Dispatch(c, &HTTPError{Status: http.StatusGone, Detail: detail})
}

// Respond writes env as the response body, attaches the correlation
// header, and aborts further handling. One envelope per failure; no
// partial or streamed error responses.
func Respond(c *gin.Context, env Envelope) {
	c.Writer.Header().Set(HeaderCorrelationID, env.CorrelationID)
	c.AbortWithStatusJSON(env.Status, env)
}

// correlationID returns the id the CorrelationID middleware stamped on the
// response header, generating a fresh one when the middleware is absent so
// an envelope is never emitted without an id.
func correlationID(c *gin.Context) string {
	if cid := c.Writer.Header().Get(HeaderCorrelationID); cid != "" {
		return cid
	}
	if cid := c.GetHeader(HeaderCorrelationID); cid != "" {
		return cid
	}
	return uuid.NewString()
}

// requestInstance identifies the request target for the envelope.
func requestInstance(c *gin.Context) string {
	if c.Request != nil && c.Request.URL != nil {
		return c.Request.URL.Path
	}
	return "/"
}

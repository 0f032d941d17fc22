// Package problem builds RFC 7807 "problem details" error envelopes and
// funnels every failure mode through a single dispatcher, so clients always
// receive the same error shape regardless of which internal check failed.
//
// The category set is closed: extending it means adding a new named
// category together with its (type URI, title, default status) triple to
// the table below. The table is immutable at runtime.
//
// Example response:
//
//	HTTP/1.1 404 Not Found
//	X-Correlation-ID: abc-123
//	{
//	  "type": "https://api.wishlist.example.com/errors/not-found",
//	  "title": "Not Found",
//	  "status": 404,
//	  "detail": "wishlist item not found",
//	  "instance": "/api/v1/wishlist/items/7",
//	  "correlation_id": "abc-123",
//	  "timestamp": "2025-01-02T15:04:05Z"
//	}
package problem

import (
	"time"

	"github.com/avlatos/go-wishlist-backend/internal/mask"
)

// HeaderCorrelationID is the inbound and outbound correlation header.
const HeaderCorrelationID = "X-Correlation-ID"

// typeBase prefixes every category type URI.
const typeBase = "https://api.wishlist.example.com/errors/"

// Category names a closed error classification.
type Category string

// The closed category set. Authentication, authorization, and rate-limit
// are reserved: no current flow emits them, but the envelope shape
// supports them.
const (
	CategoryValidation     Category = "validation"
	CategoryNotFound       Category = "not-found"
	CategoryAuthentication Category = "authentication"
	CategoryAuthorization  Category = "authorization"
	CategoryRateLimit      Category = "rate-limit"
	CategoryInternal       Category = "internal"
)

// descriptor ties a category to its stable wire identity.
type descriptor struct {
	TypeSuffix string
	Title      string
	Status     int
}

var categories = map[Category]descriptor{
	CategoryValidation:     {TypeSuffix: "validation-error", Title: "Validation Error", Status: 400},
	CategoryNotFound:       {TypeSuffix: "not-found", Title: "Not Found", Status: 404},
	CategoryAuthentication: {TypeSuffix: "authentication-error", Title: "Authentication Error", Status: 401},
	CategoryAuthorization:  {TypeSuffix: "authorization-error", Title: "Authorization Error", Status: 403},
	CategoryRateLimit:      {TypeSuffix: "rate-limit-error", Title: "Rate Limit Exceeded", Status: 429},
	CategoryInternal:       {TypeSuffix: "internal-error", Title: "Internal Server Error", Status: 500},
}

// Envelope is the RFC 7807-shaped error body. Constructed once per failed
// request, serialized immediately, and never mutated after construction.
type Envelope struct {
	Type          string `json:"type" example:"https://api.wishlist.example.com/errors/not-found"`
	Title         string `json:"title" example:"Not Found"`
	Status        int    `json:"status" example:"404"`
	Detail        string `json:"detail" example:"wishlist item not found"`
	Instance      string `json:"instance" example:"/api/v1/wishlist/items/7"`
	CorrelationID string `json:"correlation_id" example:"abc-123"`
	Timestamp     string `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// New builds an Envelope for cat with the category's default status. The
// detail passes through the PII masker; the timestamp is request-completion
// time in UTC with an explicit zone marker.
func New(cat Category, detail, instance, correlationID string) Envelope {
	d, ok := categories[cat]
	if !ok {
		d = categories[CategoryInternal]
	}
	return Envelope{
		Type:          typeBase + d.TypeSuffix,
		Title:         d.Title,
		Status:        d.Status,
		Detail:        mask.Mask(detail),
		Instance:      instance,
		CorrelationID: correlationID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// WithStatus returns a copy of e with an overridden status. The category
// only supplies type and title; the status is caller-controlled when given
// (e.g. a validation-category envelope emitted with 410 for a deprecated
// endpoint).
func (e Envelope) WithStatus(status int) Envelope {
	e.Status = status
	return e
}

// DefaultStatus returns the status a category implies.
func DefaultStatus(cat Category) int {
	if d, ok := categories[cat]; ok {
		return d.Status
	}
	return categories[CategoryInternal].Status
}

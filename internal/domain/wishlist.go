// Package domain defines the wishlist entities shared across the service
// and transport layers.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Priority ranks how much an item is wanted.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// WishlistItem is a single entry in the wishlist. Items live in an
// in-process store with monotonically increasing identifiers; there are no
// ownership or concurrency concerns at the entity level.
//
// Fields:
//   - Name: 1..200 chars, validated against the input denylist.
//   - Description: optional, up to 1000 chars, validated.
//   - Price: optional non-negative decimal, normalized to two places.
//   - Priority: low, medium, or high.
type WishlistItem struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Priority    Priority         `json:"priority"`
	IsPurchased bool             `json:"is_purchased"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

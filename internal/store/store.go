// Package store provides the persistence boundary for wishlist items. The
// validation core treats storage purely as an external collaborator, so
// the contract is a small capability interface that in-memory and future
// backends can satisfy.
package store

import (
	"context"
	"errors"

	"github.com/avlatos/go-wishlist-backend/internal/domain"
)

// ErrNotFound indicates the requested item does not exist.
var ErrNotFound = errors.New("wishlist item not found")

// Filter narrows List results. Nil fields match everything.
type Filter struct {
	Priority    *domain.Priority
	IsPurchased *bool
}

// Store is the capability set the handlers and services depend on.
type Store interface {
	// Create inserts item, assigns its ID and timestamps, and returns it.
	Create(ctx context.Context, item domain.WishlistItem) (*domain.WishlistItem, error)
	// Get returns the item with id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.WishlistItem, error)
	// List returns items matching f in insertion order.
	List(ctx context.Context, f Filter) ([]domain.WishlistItem, error)
	// Replace overwrites the stored item with id, or returns ErrNotFound.
	Replace(ctx context.Context, id int64, item domain.WishlistItem) (*domain.WishlistItem, error)
	// Delete removes the item with id and returns it, or ErrNotFound.
	Delete(ctx context.Context, id int64) (*domain.WishlistItem, error)
}

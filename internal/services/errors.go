// Package services implements the business logic for wishlist items. This
// file centralizes service-level error values so they can be consistently
// returned by service methods and checked by callers.
//
// Translation into HTTP responses is performed by the problem dispatcher;
// services never construct transport-level errors themselves.
package services

import "github.com/avlatos/go-wishlist-backend/internal/store"

// ErrItemNotFound indicates the requested wishlist item does not exist or
// was deleted. It aliases the store sentinel so callers can match either.
var ErrItemNotFound = store.ErrNotFound

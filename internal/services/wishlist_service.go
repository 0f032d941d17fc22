// Package services – WishlistService
//
// This file implements the WishlistService, which manages the lifecycle of
// wishlist items. Every free-text field passes through the string input
// validator and every priced field through the decimal validator before a
// store call is made; a not-found condition always surfaces as
// ErrItemNotFound so handlers route it through the error dispatcher rather
// than an ad hoc 404.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/avlatos/go-wishlist-backend/internal/domain"
	"github.com/avlatos/go-wishlist-backend/internal/store"
	"github.com/avlatos/go-wishlist-backend/internal/validation"
)

// Field bounds for wishlist items.
const (
	NameMaxLen        = 200
	DescriptionMaxLen = 1000
)

// priceOptions bounds the price field: non-negative, default digits/scale.
func priceOptions() validation.DecimalOptions {
	zero := decimal.Zero
	return validation.DecimalOptions{Min: &zero}
}

// ItemInput carries the fields for creating an item. Price may be a
// numeric-looking string, a numeric type, or nil when the item is unpriced.
type ItemInput struct {
	Name        string
	Description string
	Price       any
	Priority    string
}

// ItemPatch carries partial changes for an item. Nil fields are untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       any
	Priority    *string
	IsPurchased *bool
}

// WishlistService provides item-level operations over an abstract store.
// All methods are safe for concurrent use; the service holds no mutable
// state of its own.
type WishlistService struct {
	Store store.Store
}

// NewWishlistService constructs a WishlistService over st.
func NewWishlistService(st store.Store) *WishlistService {
	return &WishlistService{Store: st}
}

// Create validates in and inserts a new item. The priority defaults to
// medium when empty.
func (s *WishlistService) Create(ctx context.Context, in ItemInput) (*domain.WishlistItem, error) {
	name, err := validation.String(in.Name, "name", NameMaxLen)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &validation.Error{Field: "name", Message: "is required"}
	}

	desc, err := validation.String(in.Description, "description", DescriptionMaxLen)
	if err != nil {
		return nil, err
	}

	priority := domain.Priority(in.Priority)
	if in.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, &validation.Error{Field: "priority", Message: "must be one of low, medium, high"}
	}

	var price *decimal.Decimal
	if in.Price != nil {
		p, err := validation.Decimal(in.Price, "price", priceOptions())
		if err != nil {
			return nil, err
		}
		price = &p
	}

	return s.Store.Create(ctx, domain.WishlistItem{
		Name:        name,
		Description: desc,
		Price:       price,
		Priority:    priority,
	})
}

// Get returns the item with id, or ErrItemNotFound.
func (s *WishlistService) Get(ctx context.Context, id int64) (*domain.WishlistItem, error) {
	return s.Store.Get(ctx, id)
}

// List returns items, optionally filtered by priority and purchase state.
// A filter priority outside the known set is a validation failure rather
// than an empty result.
func (s *WishlistService) List(ctx context.Context, priority *string, purchased *bool) ([]domain.WishlistItem, error) {
	var f store.Filter
	if priority != nil {
		p := domain.Priority(*priority)
		if !p.Valid() {
			return nil, &validation.Error{Field: "priority", Message: "must be one of low, medium, high"}
		}
		f.Priority = &p
	}
	f.IsPurchased = purchased
	return s.Store.List(ctx, f)
}

// Update applies patch to the item with id. Each supplied field is
// validated exactly as on create before any state changes.
func (s *WishlistService) Update(ctx context.Context, id int64, patch ItemPatch) (*domain.WishlistItem, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := *current

	if patch.Name != nil {
		name, err := validation.String(*patch.Name, "name", NameMaxLen)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, &validation.Error{Field: "name", Message: "is required"}
		}
		next.Name = name
	}
	if patch.Description != nil {
		desc, err := validation.String(*patch.Description, "description", DescriptionMaxLen)
		if err != nil {
			return nil, err
		}
		next.Description = desc
	}
	if patch.Price != nil {
		p, err := validation.Decimal(patch.Price, "price", priceOptions())
		if err != nil {
			return nil, err
		}
		next.Price = &p
	}
	if patch.Priority != nil {
		p := domain.Priority(*patch.Priority)
		if !p.Valid() {
			return nil, &validation.Error{Field: "priority", Message: "must be one of low, medium, high"}
		}
		next.Priority = p
	}
	if patch.IsPurchased != nil {
		next.IsPurchased = *patch.IsPurchased
	}

	return s.Store.Replace(ctx, id, next)
}

// Delete removes the item with id and returns it, or ErrItemNotFound.
func (s *WishlistService) Delete(ctx context.Context, id int64) (*domain.WishlistItem, error) {
	return s.Store.Delete(ctx, id)
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/avlatos/go-wishlist-backend/internal/domain"
)

// Memory is an in-process Store keeping items in a slice with
// monotonically increasing identifiers. Reads return copies so callers can
// never mutate stored state. Safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	items  []domain.WishlistItem
	nextID int64

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1, now: time.Now}
}

// Create implements Store.
func (m *Memory) Create(_ context.Context, item domain.WishlistItem) (*domain.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	item.ID = m.nextID
	m.nextID++
	item.CreatedAt = now
	item.UpdatedAt = now

	m.items = append(m.items, item)
	out := item
	return &out, nil
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, id int64) (*domain.WishlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.items {
		if m.items[i].ID == id {
			out := m.items[i]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// List implements Store.
func (m *Memory) List(_ context.Context, f Filter) ([]domain.WishlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.WishlistItem, 0, len(m.items))
	for _, it := range m.items {
		if f.Priority != nil && it.Priority != *f.Priority {
			continue
		}
		if f.IsPurchased != nil && it.IsPurchased != *f.IsPurchased {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Replace implements Store.
func (m *Memory) Replace(_ context.Context, id int64, item domain.WishlistItem) (*domain.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			item.ID = id
			item.CreatedAt = m.items[i].CreatedAt
			item.UpdatedAt = m.now().UTC()
			m.items[i] = item
			out := item
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Delete implements Store.
func (m *Memory) Delete(_ context.Context, id int64) (*domain.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			out := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

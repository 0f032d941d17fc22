// Wishlist HTTP handlers.
//
// This file exposes REST endpoints for wishlist item resources:
//   - POST   /wishlist/items        (create)
//   - GET    /wishlist/items        (list, filterable)
//   - GET    /wishlist/items/{id}   (fetch)
//   - PUT    /wishlist/items/{id}   (partial update)
//   - DELETE /wishlist/items/{id}   (delete)
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avlatos/go-wishlist-backend/internal/domain"
	"github.com/avlatos/go-wishlist-backend/internal/problem"
	"github.com/avlatos/go-wishlist-backend/internal/services"
	"github.com/avlatos/go-wishlist-backend/internal/validation"
)

//
// Service contracts (context-aware)
//

// WishlistService defines item lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type WishlistService interface {
	// Create validates and inserts a new item.
	Create(ctx context.Context, in services.ItemInput) (*domain.WishlistItem, error)
	// Get returns an item by ID.
	Get(ctx context.Context, id int64) (*domain.WishlistItem, error)
	// List returns items, optionally filtered by priority and purchase state.
	List(ctx context.Context, priority *string, purchased *bool) ([]domain.WishlistItem, error)
	// Update applies a partial patch to an item.
	Update(ctx context.Context, id int64, patch services.ItemPatch) (*domain.WishlistItem, error)
	// Delete removes an item and returns it.
	Delete(ctx context.Context, id int64) (*domain.WishlistItem, error)
}

//
// DTOs
//

// CreateItemRequest is the JSON payload for creating a wishlist item.
// Price is a JSON number; its exact decimal text is preserved for
// validation so binary float noise never reaches the decimal checks.
type CreateItemRequest struct {
	Name        string       `json:"name" binding:"required" example:"Mountain bike"`
	Description string       `json:"description,omitempty" example:"29er, large frame"`
	Price       *json.Number `json:"price,omitempty" swaggertype:"number" example:"1299.99"`
	Priority    string       `json:"priority,omitempty" binding:"omitempty,oneof=low medium high" example:"high"`
}

// UpdateItemRequest is the JSON payload for partially updating an item.
// Absent fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Price       *json.Number `json:"price,omitempty" swaggertype:"number"`
	Priority    *string      `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	IsPurchased *bool        `json:"is_purchased,omitempty"`
}

// DeleteItemResponse confirms a deletion.
type DeleteItemResponse struct {
	Message string `json:"message" example:"item 'Mountain bike' deleted"`
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for wishlist items, attachments, and
// health. It depends on abstract contracts to keep transport concerns
// separate from business logic.
type Handlers struct {
	svc       WishlistService
	uploads   AttachmentStore
	secretSvc SecretsReporter
}

// New constructs a Handlers instance bound to the given collaborators.
func New(svc WishlistService, uploads AttachmentStore, secretSvc SecretsReporter) *Handlers {
	return &Handlers{svc: svc, uploads: uploads, secretSvc: secretSvc}
}

// itemID parses the :id path parameter. A non-integer ID is a validation
// failure, dispatched by the caller.
func itemID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &validation.Error{Field: "id", Message: "must be an integer"}
	}
	return id, nil
}

//
// Handlers
//

// CreateItem godoc
// @ID          createWishlistItem
// @Summary     Create a wishlist item
// @Description Validates the payload and adds a new item to the wishlist.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateItemRequest  true  "Item payload"
// @Success     201  {object}  domain.WishlistItem
// @Failure     400  {object}  problem.Envelope  "Validation failure"
// @Failure     500  {object}  problem.Envelope  "Internal error"
// @Router      /wishlist/items [post]
func (h *Handlers) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		problem.Dispatch(c, err)
		return
	}

	in := services.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.Price != nil {
		in.Price = string(*req.Price)
	}

	item, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	ok(c, http.StatusCreated, item)
}

// ListItems godoc
// @ID          listWishlistItems
// @Summary     List wishlist items
// @Description Returns all items, optionally filtered by priority and purchase state.
// @Tags        Wishlist
// @Produce     json
// @Param       priority      query  string  false  "Filter by priority"        Enums(low, medium, high)
// @Param       is_purchased  query  bool    false  "Filter by purchase state"
// @Success     200  {array}   domain.WishlistItem
// @Failure     400  {object}  problem.Envelope  "Validation failure"
// @Failure     500  {object}  problem.Envelope  "Internal error"
// @Router      /wishlist/items [get]
func (h *Handlers) ListItems(c *gin.Context) {
	var priority *string
	if v, okq := c.GetQuery("priority"); okq {
		priority = &v
	}
	var purchased *bool
	if v, okq := c.GetQuery("is_purchased"); okq {
		b, err := strconv.ParseBool(v)
		if err != nil {
			problem.Dispatch(c, &validation.Error{Field: "is_purchased", Message: "must be a boolean"})
			return
		}
		purchased = &b
	}

	items, err := h.svc.List(c.Request.Context(), priority, purchased)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// GetItem godoc
// @ID          getWishlistItem
// @Summary     Fetch a wishlist item
// @Tags        Wishlist
// @Produce     json
// @Param       id  path  int  true  "Item ID"
// @Success     200  {object}  domain.WishlistItem
// @Failure     400  {object}  problem.Envelope  "Invalid ID"
// @Failure     404  {object}  problem.Envelope  "Item not found"
// @Router      /wishlist/items/{id} [get]
func (h *Handlers) GetItem(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// UpdateItem godoc
// @ID          updateWishlistItem
// @Summary     Update a wishlist item
// @Description Applies a partial update; absent fields are unchanged.
// @Tags        Wishlist
// @Accept      json
// @Produce     json
// @Param       id    path  int                         true  "Item ID"
// @Param       body  body  handlers.UpdateItemRequest  true  "Fields to change"
// @Success     200  {object}  domain.WishlistItem
// @Failure     400  {object}  problem.Envelope  "Validation failure"
// @Failure     404  {object}  problem.Envelope  "Item not found"
// @Router      /wishlist/items/{id} [put]
func (h *Handlers) UpdateItem(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		problem.Dispatch(c, err)
		return
	}

	patch := services.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
		IsPurchased: req.IsPurchased,
	}
	if req.Price != nil {
		patch.Price = string(*req.Price)
	}

	item, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	ok(c, http.StatusOK, item)
}

// DeleteItem godoc
// @ID          deleteWishlistItem
// @Summary     Delete a wishlist item
// @Tags        Wishlist
// @Produce     json
// @Param       id  path  int  true  "Item ID"
// @Success     200  {object}  handlers.DeleteItemResponse
// @Failure     400  {object}  problem.Envelope  "Invalid ID"
// @Failure     404  {object}  problem.Envelope  "Item not found"
// @Router      /wishlist/items/{id} [delete]
func (h *Handlers) DeleteItem(c *gin.Context) {
	id, err := itemID(c)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	item, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		problem.Dispatch(c, err)
		return
	}
	ok(c, http.StatusOK, DeleteItemResponse{Message: "item '" + item.Name + "' deleted"})
}

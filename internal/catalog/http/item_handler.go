// Package http provides HTTP handlers for catalog item operations.
// Handlers never write error responses themselves: failures are attached to the
// request with c.Error and normalized by the error handler middleware.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/catalog/http/dto"
	catalogUseCase "github.com/allisson/catalog/internal/catalog/usecase"
	apperrors "github.com/allisson/catalog/internal/errors"
	"github.com/allisson/catalog/internal/httputil"
	customValidation "github.com/allisson/catalog/internal/validation"
)

// ItemHandler handles HTTP requests for catalog item operations.
type ItemHandler struct {
	itemUseCase catalogUseCase.ItemUseCase
}

// NewItemHandler creates a new item handler with required dependencies.
func NewItemHandler(itemUseCase catalogUseCase.ItemUseCase) *ItemHandler {
	return &ItemHandler{itemUseCase: itemUseCase}
}

// CreateHandler creates a new catalog item.
// POST /v1/items
func (h *ItemHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, "invalid request body"))
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(customValidation.ToValidationError(err))
		return
	}

	item, err := h.itemUseCase.Create(c.Request.Context(), catalogUseCase.CreateItemInput{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Location: req.Location.ToDomain(),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapItemToResponse(item))
}

// GetHandler retrieves a catalog item by its identifier.
// GET /v1/items/:id
func (h *ItemHandler) GetHandler(c *gin.Context) {
	id, err := parseItemID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	item, err := h.itemUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// ListHandler retrieves a page of catalog items.
// GET /v1/items?offset=N&limit=N
func (h *ItemHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items, err := h.itemUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToListResponse(items, offset, limit))
}

// UpdateHandler replaces the mutable fields of a catalog item.
// PUT /v1/items/:id
func (h *ItemHandler) UpdateHandler(c *gin.Context) {
	id, err := parseItemID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, "invalid request body"))
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(customValidation.ToValidationError(err))
		return
	}

	item, err := h.itemUseCase.Update(c.Request.Context(), id, catalogUseCase.UpdateItemInput{
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
		Location: req.Location.ToDomain(),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// DeleteHandler removes a catalog item.
// DELETE /v1/items/:id
func (h *ItemHandler) DeleteHandler(c *gin.Context) {
	id, err := parseItemID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseItemID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidation(apperrors.FieldError{
			Field:   "id",
			Message: "must be a valid UUID",
		})
	}
	return id, nil
}

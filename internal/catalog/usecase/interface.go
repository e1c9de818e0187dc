// Package usecase implements the catalog business logic and orchestrates item
// domain operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/catalog/domain"
)

// CreateItemInput contains the input data for item creation.
type CreateItemInput struct {
	Title    string
	Author   string
	ISBN     string
	Location domain.Location
}

// UpdateItemInput contains the input data for item updates.
type UpdateItemInput struct {
	Title    string
	Author   string
	ISBN     string
	Location domain.Location
}

// ItemUseCase defines the interface for catalog item business logic operations.
type ItemUseCase interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository defines item repository operations.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

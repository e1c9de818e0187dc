package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/catalog/usecase"
)

// MockItemUseCase is a mock implementation of ItemUseCase for testing.
type MockItemUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ItemUseCase.
func (m *MockItemUseCase) Create(
	ctx context.Context,
	input usecase.CreateItemInput,
) (*catalogDomain.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Item), args.Error(1)
}

// GetByID mocks the GetByID method of ItemUseCase.
func (m *MockItemUseCase) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Item), args.Error(1)
}

// List mocks the List method of ItemUseCase.
func (m *MockItemUseCase) List(ctx context.Context, offset, limit int) ([]*catalogDomain.Item, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Item), args.Error(1)
}

// Update mocks the Update method of ItemUseCase.
func (m *MockItemUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input usecase.UpdateItemInput,
) (*catalogDomain.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Item), args.Error(1)
}

// Delete mocks the Delete method of ItemUseCase.
func (m *MockItemUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

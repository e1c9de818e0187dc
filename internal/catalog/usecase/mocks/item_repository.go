// Package mocks provides mock implementations for testing catalog use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
)

// MockItemRepository is a mock implementation of ItemRepository for testing.
type MockItemRepository struct {
	mock.Mock
}

// Create mocks the Create method of ItemRepository.
func (m *MockItemRepository) Create(ctx context.Context, item *catalogDomain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// GetByID mocks the GetByID method of ItemRepository.
func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Item), args.Error(1)
}

// List mocks the List method of ItemRepository.
func (m *MockItemRepository) List(ctx context.Context, offset, limit int) ([]*catalogDomain.Item, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Item), args.Error(1)
}

// Update mocks the Update method of ItemRepository.
func (m *MockItemRepository) Update(ctx context.Context, item *catalogDomain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// Delete mocks the Delete method of ItemRepository.
func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

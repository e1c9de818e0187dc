package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/metrics"
)

// itemUseCaseWithMetrics decorates ItemUseCase with metrics instrumentation.
type itemUseCaseWithMetrics struct {
	next    ItemUseCase
	metrics metrics.BusinessMetrics
}

// NewItemUseCaseWithMetrics wraps an ItemUseCase with metrics recording.
func NewItemUseCaseWithMetrics(useCase ItemUseCase, m metrics.BusinessMetrics) ItemUseCase {
	return &itemUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for item creation operations.
func (i *itemUseCaseWithMetrics) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	start := time.Now()
	item, err := i.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "catalog", "item_create", status)
	i.metrics.RecordDuration(ctx, "catalog", "item_create", time.Since(start), status)

	return item, err
}

// GetByID records metrics for item retrieval operations.
func (i *itemUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	start := time.Now()
	item, err := i.next.GetByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "catalog", "item_get", status)
	i.metrics.RecordDuration(ctx, "catalog", "item_get", time.Since(start), status)

	return item, err
}

// List records metrics for item listing operations.
func (i *itemUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Item, error) {
	start := time.Now()
	items, err := i.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "catalog", "item_list", status)
	i.metrics.RecordDuration(ctx, "catalog", "item_list", time.Since(start), status)

	return items, err
}

// Update records metrics for item update operations.
func (i *itemUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateItemInput,
) (*domain.Item, error) {
	start := time.Now()
	item, err := i.next.Update(ctx, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "catalog", "item_update", status)
	i.metrics.RecordDuration(ctx, "catalog", "item_update", time.Since(start), status)

	return item, err
}

// Delete records metrics for item deletion operations.
func (i *itemUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := i.next.Delete(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "catalog", "item_delete", status)
	i.metrics.RecordDuration(ctx, "catalog", "item_delete", time.Since(start), status)

	return err
}

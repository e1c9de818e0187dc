package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/database"
	"github.com/allisson/catalog/internal/errors"
)

type itemUseCase struct {
	repo      ItemRepository
	txManager database.TxManager
	logger    *slog.Logger
}

// NewItemUseCase creates a new item use case instance.
func NewItemUseCase(repo ItemRepository, txManager database.TxManager, logger *slog.Logger) ItemUseCase {
	return &itemUseCase{repo: repo, txManager: txManager, logger: logger}
}

func (u *itemUseCase) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		ID:        uuid.New(),
		Title:     input.Title,
		Author:    input.Author,
		ISBN:      input.ISBN,
		Location:  input.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create catalog item")
	}

	u.logger.InfoContext(ctx, "catalog item created", slog.String("item_id", item.ID.String()))
	return item, nil
}

func (u *itemUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get catalog item")
	}
	return item, nil
}

func (u *itemUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Item, error) {
	items, err := u.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog items")
	}
	return items, nil
}

func (u *itemUseCase) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	var item *domain.Item

	// Execute the read-modify-write within a transaction
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to get catalog item")
		}

		current.Title = input.Title
		current.Author = input.Author
		current.ISBN = input.ISBN
		current.Location = input.Location
		current.UpdatedAt = time.Now().UTC()

		if err := u.repo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update catalog item")
		}

		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.InfoContext(ctx, "catalog item updated", slog.String("item_id", item.ID.String()))
	return item, nil
}

func (u *itemUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete catalog item")
	}

	u.logger.InfoContext(ctx, "catalog item deleted", slog.String("item_id", id.String()))
	return nil
}

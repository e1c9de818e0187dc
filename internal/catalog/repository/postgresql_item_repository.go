// Package repository implements data persistence for catalog items.
// Repositories support both PostgreSQL and MySQL backends.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	"github.com/allisson/catalog/internal/database"
	apperrors "github.com/allisson/catalog/internal/errors"
)

// PostgreSQLItemRepository implements catalog item persistence for PostgreSQL databases.
type PostgreSQLItemRepository struct {
	db *sql.DB
}

// NewPostgreSQLItemRepository creates a new PostgreSQL item repository instance.
func NewPostgreSQLItemRepository(db *sql.DB) *PostgreSQLItemRepository {
	return &PostgreSQLItemRepository{db: db}
}

// Create inserts a new catalog item into the PostgreSQL database.
func (p *PostgreSQLItemRepository) Create(ctx context.Context, item *catalogDomain.Item) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO catalog_items (id, title, author, isbn, aisle, floor, shelf, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		item.ID,
		item.Title,
		item.Author,
		item.ISBN,
		item.Location.Aisle,
		item.Location.Floor,
		item.Location.Shelf,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return catalogDomain.NewISBNConflict()
		}
		return apperrors.Wrap(err, "failed to create catalog item")
	}
	return nil
}

// GetByID retrieves a catalog item by its identifier.
func (p *PostgreSQLItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Item, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, author, isbn, aisle, floor, shelf, created_at, updated_at
			  FROM catalog_items
			  WHERE id = $1`

	var item catalogDomain.Item
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.Author,
		&item.ISBN,
		&item.Location.Aisle,
		&item.Location.Floor,
		&item.Location.Shelf,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogDomain.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get catalog item by id")
	}

	return &item, nil
}

// List retrieves a page of catalog items ordered by creation time.
func (p *PostgreSQLItemRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*catalogDomain.Item, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, author, isbn, aisle, floor, shelf, created_at, updated_at
			  FROM catalog_items
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list catalog items")
	}
	defer func() { _ = rows.Close() }()

	items := []*catalogDomain.Item{}
	for rows.Next() {
		var item catalogDomain.Item
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Author,
			&item.ISBN,
			&item.Location.Aisle,
			&item.Location.Floor,
			&item.Location.Shelf,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan catalog item")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate catalog items")
	}

	return items, nil
}

// Update persists changes to an existing catalog item.
func (p *PostgreSQLItemRepository) Update(ctx context.Context, item *catalogDomain.Item) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE catalog_items
			  SET title = $1, author = $2, isbn = $3, aisle = $4, floor = $5, shelf = $6, updated_at = $7
			  WHERE id = $8`

	result, err := querier.ExecContext(
		ctx,
		query,
		item.Title,
		item.Author,
		item.ISBN,
		item.Location.Aisle,
		item.Location.Floor,
		item.Location.Shelf,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return catalogDomain.NewISBNConflict()
		}
		return apperrors.Wrap(err, "failed to update catalog item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return catalogDomain.ErrItemNotFound
	}
	return nil
}

// Delete removes a catalog item from the database.
func (p *PostgreSQLItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM catalog_items WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete catalog item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return catalogDomain.ErrItemNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

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

// MySQLItemRepository implements catalog item persistence for MySQL databases.
type MySQLItemRepository struct {
	db *sql.DB
}

// NewMySQLItemRepository creates a new MySQL item repository instance.
func NewMySQLItemRepository(db *sql.DB) *MySQLItemRepository {
	return &MySQLItemRepository{db: db}
}

// Create inserts a new catalog item into the MySQL database.
func (m *MySQLItemRepository) Create(ctx context.Context, item *catalogDomain.Item) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO catalog_items (id, title, author, isbn, aisle, floor, shelf, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := item.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		uuidBytes,
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
		if isMySQLUniqueViolation(err) {
			return catalogDomain.NewISBNConflict()
		}
		return apperrors.Wrap(err, "failed to create catalog item")
	}
	return nil
}

// GetByID retrieves a catalog item by its identifier.
func (m *MySQLItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Item, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, author, isbn, aisle, floor, shelf, created_at, updated_at
			  FROM catalog_items
			  WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var item catalogDomain.Item
	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes,
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

	if err := item.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &item, nil
}

// List retrieves a page of catalog items ordered by creation time.
func (m *MySQLItemRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*catalogDomain.Item, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, author, isbn, aisle, floor, shelf, created_at, updated_at
			  FROM catalog_items
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list catalog items")
	}
	defer func() { _ = rows.Close() }()

	items := []*catalogDomain.Item{}
	for rows.Next() {
		var item catalogDomain.Item
		var idBytes []byte
		err := rows.Scan(
			&idBytes,
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
		if err := item.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate catalog items")
	}

	return items, nil
}

// Update persists changes to an existing catalog item.
func (m *MySQLItemRepository) Update(ctx context.Context, item *catalogDomain.Item) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE catalog_items
			  SET title = ?, author = ?, isbn = ?, aisle = ?, floor = ?, shelf = ?, updated_at = ?
			  WHERE id = ?`

	uuidBytes, err := item.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

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
		uuidBytes,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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
func (m *MySQLItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM catalog_items WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}

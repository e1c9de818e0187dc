package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	apperrors "github.com/allisson/catalog/internal/errors"
)

func TestMySQLItemRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		item := testItem()
		uuidBytes, err := item.ID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO catalog_items")).
			WithArgs(
				uuidBytes, item.Title, item.Author, item.ISBN,
				item.Location.Aisle, item.Location.Floor, item.Location.Shelf,
				item.CreatedAt, item.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLItemRepository(db)
		err = repo.Create(ctx, item)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateISBN", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO catalog_items")).
			WillReturnError(errors.New("Error 1062: Duplicate entry '9780135957059' for key 'catalog_items.isbn'"))

		repo := NewMySQLItemRepository(db)
		err = repo.Create(ctx, testItem())

		var conflictErr *apperrors.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, catalogDomain.CodeISBNAlreadyExists, conflictErr.Code)
	})
}

func TestMySQLItemRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		item := testItem()
		uuidBytes, err := item.ID.MarshalBinary()
		require.NoError(t, err)

		rows := sqlmock.NewRows(itemColumns).AddRow(
			uuidBytes, item.Title, item.Author, item.ISBN,
			item.Location.Aisle, item.Location.Floor, item.Location.Shelf,
			item.CreatedAt, item.UpdatedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, author, isbn")).
			WithArgs(uuidBytes).
			WillReturnRows(rows)

		repo := NewMySQLItemRepository(db)
		got, err := repo.GetByID(ctx, item.ID)

		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
		assert.Equal(t, item.Location, got.Location)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		itemID := uuid.New()
		uuidBytes, err := itemID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, author, isbn")).
			WithArgs(uuidBytes).
			WillReturnRows(sqlmock.NewRows(itemColumns))

		repo := NewMySQLItemRepository(db)
		got, err := repo.GetByID(ctx, itemID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestMySQLItemRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		itemID := uuid.New()
		uuidBytes, err := itemID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM catalog_items")).
			WithArgs(uuidBytes).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMySQLItemRepository(db)
		err = repo.Delete(ctx, itemID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestIsMySQLUniqueViolation(t *testing.T) {
	assert.True(t, isMySQLUniqueViolation(errors.New("Error 1062: Duplicate entry")))
	assert.False(t, isMySQLUniqueViolation(errors.New("connection refused")))
	assert.False(t, isMySQLUniqueViolation(nil))
}

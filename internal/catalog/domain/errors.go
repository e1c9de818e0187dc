package domain

import (
	"github.com/allisson/catalog/internal/errors"
)

// Conflict code carried to clients when a unique constraint is violated.
const CodeISBNAlreadyExists = "ISBN_ALREADY_EXISTS"

// Catalog domain errors.
var (
	// ErrItemNotFound indicates an item with the specified ID was not found.
	ErrItemNotFound = errors.Wrap(errors.ErrNotFound, "catalog item not found")
)

// NewISBNConflict creates the conflict error for a duplicate ISBN.
func NewISBNConflict() error {
	return errors.NewConflict(CodeISBNAlreadyExists)
}

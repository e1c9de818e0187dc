// Package domain defines the catalog item entity and its domain errors.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is the physical placement of an item inside the library.
type Location struct {
	Aisle string
	Floor int
	Shelf string
}

// Item is a single library catalog entry.
type Item struct {
	ID        uuid.UUID
	Title     string
	Author    string
	ISBN      string
	Location  Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

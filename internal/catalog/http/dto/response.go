package dto

import (
	"time"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
)

// LocationResponse represents an item location in API responses.
type LocationResponse struct {
	Aisle string `json:"aisle"`
	Floor int    `json:"floor"`
	Shelf string `json:"shelf"`
}

// ItemResponse represents a catalog item in API responses.
type ItemResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Author    string           `json:"author"`
	ISBN      string           `json:"isbn"`
	Location  LocationResponse `json:"location"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ListItemsResponse represents a page of catalog items in API responses.
type ListItemsResponse struct {
	Items  []ItemResponse `json:"items"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

// MapItemToResponse converts a domain item to its API representation.
func MapItemToResponse(item *catalogDomain.Item) ItemResponse {
	return ItemResponse{
		ID:     item.ID.String(),
		Title:  item.Title,
		Author: item.Author,
		ISBN:   item.ISBN,
		Location: LocationResponse{
			Aisle: item.Location.Aisle,
			Floor: item.Location.Floor,
			Shelf: item.Location.Shelf,
		},
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// MapItemsToListResponse converts a page of domain items to its API representation.
func MapItemsToListResponse(items []*catalogDomain.Item, offset, limit int) ListItemsResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, MapItemToResponse(item))
	}
	return ListItemsResponse{
		Items:  responses,
		Offset: offset,
		Limit:  limit,
	}
}

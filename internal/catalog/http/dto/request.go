// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	catalogDomain "github.com/allisson/catalog/internal/catalog/domain"
	customValidation "github.com/allisson/catalog/internal/validation"
)

// LocationRequest contains the physical placement of an item.
type LocationRequest struct {
	Aisle string `json:"aisle"`
	Floor int    `json:"floor"`
	Shelf string `json:"shelf"`
}

// Validate checks if the location data is valid. The value receiver lets
// validation.ValidateStruct dispatch to it for the nested location field.
func (r LocationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Aisle, validation.Required, validation.Length(1, 16)),
		validation.Field(&r.Floor, validation.Min(0)),
		validation.Field(&r.Shelf, validation.Required, validation.Length(1, 16)),
	)
}

// ToDomain converts the request location to its domain representation.
func (r *LocationRequest) ToDomain() catalogDomain.Location {
	return catalogDomain.Location{
		Aisle: r.Aisle,
		Floor: r.Floor,
		Shelf: r.Shelf,
	}
}

// CreateItemRequest contains the parameters for creating a catalog item.
type CreateItemRequest struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	ISBN     string          `json:"isbn"`
	Location LocationRequest `json:"location"`
}

// Validate checks if the create item request is valid.
func (r *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ISBN, validation.Required, customValidation.ISBN{}),
		validation.Field(&r.Location),
	)
}

// UpdateItemRequest contains the parameters for updating a catalog item.
type UpdateItemRequest struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	ISBN     string          `json:"isbn"`
	Location LocationRequest `json:"location"`
}

// Validate checks if the update item request is valid.
func (r *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ISBN, validation.Required, customValidation.ISBN{}),
		validation.Field(&r.Location),
	)
}

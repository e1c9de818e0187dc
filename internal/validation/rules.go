// Package validation provides custom validation rules and the bridge between
// jellydator/validation results and the domain's field-level validation errors.
package validation

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// ToValidationError converts a jellydator/validation result into a domain
// ValidationError carrying (field, message) pairs with dotted paths for nested
// structs. Map iteration has no input order, so keys are sorted for
// deterministic output. Non-structured errors degrade to a wrapped
// ErrInvalidInput.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}

	fields := FieldErrors(err)
	if len(fields) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}
	return apperrors.NewValidation(fields...)
}

// FieldErrors flattens a (possibly nested) validation.Errors tree into a list
// of field errors with dotted field paths (e.g., "location.floor").
func FieldErrors(err error) []apperrors.FieldError {
	var fields []apperrors.FieldError
	flattenErrors("", err, &fields)
	return fields
}

func flattenErrors(prefix string, err error, fields *[]apperrors.FieldError) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		if prefix == "" {
			return
		}
		*fields = append(*fields, apperrors.FieldError{Field: prefix, Message: err.Error()})
		return
	}

	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		flattenErrors(path, errs[key], fields)
	}
}

// ISBN validates that a value looks like an ISBN-10 or ISBN-13: ten or
// thirteen characters after stripping separators, digits only except for a
// trailing X on ISBN-10.
type ISBN struct{}

// Validate checks the ISBN shape.
func (ISBN) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_isbn", "must be a string")
	}
	if s == "" {
		// Emptiness is the Required rule's concern.
		return nil
	}

	normalized := strings.NewReplacer("-", "", " ", "").Replace(s)
	switch len(normalized) {
	case 10:
		if !isbn10Shape(normalized) {
			return validation.NewError("validation_isbn", "must be a valid ISBN-10 or ISBN-13")
		}
	case 13:
		if !allDigits(normalized) {
			return validation.NewError("validation_isbn", "must be a valid ISBN-10 or ISBN-13")
		}
	default:
		return validation.NewError("validation_isbn", "must be a valid ISBN-10 or ISBN-13")
	}
	return nil
}

func isbn10Shape(s string) bool {
	if !allDigits(s[:9]) {
		return false
	}
	last := s[9]
	return last == 'X' || last == 'x' || (last >= '0' && last <= '9')
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"errors"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/orcamento/services/item/domain"
	"github.com/ghuser/orcamento/services/item/domain/models"
)

// Field keys used in ValidationError.Fields. They match the JSON field names.
const (
	FieldName      = "name"
	FieldQuantity  = "quantity"
	FieldUnitValue = "unitValue"
)

// ItemInput is the unvalidated data for a new item.
type ItemInput struct {
	Name      string
	Quantity  float64
	UnitValue float64
}

// ValidateName enforces business rules for an item name.
//
// Business rules:
//   - Must not be empty or only whitespace
//   - At most 255 characters after trimming
//   - No control characters (Unicode category Cc)
func ValidateName(name string) error {
	s := strings.TrimSpace(name)
	if s == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(s) > models.MaxItemNameLength {
		return errors.New("name must not exceed 255 characters")
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return errors.New("name must not contain control characters")
		}
	}
	return nil
}

// ValidateItemForCreation checks every field of in and reports all violations
// at once. It returns nil or a *domain.ValidationError keyed by JSON field name.
func ValidateItemForCreation(in ItemInput) error {
	fields := make(map[string]string)

	if err := ValidateName(in.Name); err != nil {
		fields[FieldName] = err.Error()
	}
	if !nonNegative(in.Quantity) {
		fields[FieldQuantity] = "quantity must be greater than or equal to 0"
	}
	if !nonNegative(in.UnitValue) {
		fields[FieldUnitValue] = "unitValue must be greater than or equal to 0"
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields)
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

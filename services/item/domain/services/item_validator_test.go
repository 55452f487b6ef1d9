package services

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ghuser/orcamento/services/item/domain"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Arroz", false},
		{"valid name with special chars", "Café-Torrado_500g!", false},
		{"surrounding whitespace is tolerated", "  Leite ", false},
		{"255 characters", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"only whitespace", "   ", true},
		{"256 characters", strings.Repeat("a", 256), true},
		{"tab character (control)", "Pão\tdoce", true},
		{"newline character (control)", "Pão\ndoce", true},
		{"null byte (control)", "Pão\x00", true},
		{"DEL character", "Pão\x7F", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItemForCreation(t *testing.T) {
	tests := []struct {
		name       string
		input      ItemInput
		wantFields []string
	}{
		{"valid", ItemInput{Name: "Rice", Quantity: 2, UnitValue: 3.5}, nil},
		{"zero quantity and value", ItemInput{Name: "Água", Quantity: 0, UnitValue: 0}, nil},
		{"fractional quantity", ItemInput{Name: "Queijo", Quantity: 0.5, UnitValue: 40}, nil},
		{"empty name", ItemInput{Name: "", Quantity: 1, UnitValue: 1}, []string{FieldName}},
		{"negative quantity", ItemInput{Name: "X", Quantity: -1, UnitValue: 1}, []string{FieldQuantity}},
		{"negative unit value", ItemInput{Name: "X", Quantity: 1, UnitValue: -0.01}, []string{FieldUnitValue}},
		{"NaN quantity", ItemInput{Name: "X", Quantity: math.NaN(), UnitValue: 1}, []string{FieldQuantity}},
		{"infinite unit value", ItemInput{Name: "X", Quantity: 1, UnitValue: math.Inf(1)}, []string{FieldUnitValue}},
		{"all fields invalid", ItemInput{Name: " ", Quantity: -2, UnitValue: -3}, []string{FieldName, FieldQuantity, FieldUnitValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemForCreation(tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *domain.ValidationError, got %v", err)
			}
			if !errors.Is(err, domain.ErrItemValidation) {
				t.Fatal("expected errors.Is(err, ErrItemValidation)")
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("expected %d field errors, got %v", len(tt.wantFields), verr.Fields)
			}
			for _, f := range tt.wantFields {
				if verr.Fields[f] == "" {
					t.Errorf("missing message for field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

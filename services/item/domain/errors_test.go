package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrItemNotFound, "item not found"},
		{ErrInvalidItemID, "invalid item id"},
		{ErrItemValidation, "item validation failed"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Fatalf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidItemID, errors.New("bad length"))
	if !errors.Is(wrapped2, ErrInvalidItemID) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidItemID")
	}
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError(map[string]string{
		"quantity": "quantity must be greater than or equal to 0",
		"name":     "name is required",
	})

	t.Run("matches ErrItemValidation", func(t *testing.T) {
		wrapped := fmt.Errorf("create item: %w", verr)
		if !errors.Is(wrapped, ErrItemValidation) {
			t.Fatal("errors.Is must match ErrItemValidation through a ValidationError")
		}
	})

	t.Run("extractable with errors.As", func(t *testing.T) {
		wrapped := fmt.Errorf("create item: %w", verr)
		var target *ValidationError
		if !errors.As(wrapped, &target) {
			t.Fatal("errors.As must extract *ValidationError")
		}
		if target.Fields["name"] != "name is required" {
			t.Errorf("unexpected fields: %v", target.Fields)
		}
	})

	t.Run("message lists fields in order", func(t *testing.T) {
		want := "item validation failed: name: name is required; quantity: quantity must be greater than or equal to 0"
		if verr.Error() != want {
			t.Errorf("got %q, want %q", verr.Error(), want)
		}
	})
}

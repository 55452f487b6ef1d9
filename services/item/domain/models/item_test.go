package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewItem(t *testing.T) {
	name := ItemName("Arroz")

	t.Run("returns item with non-zero ID", func(t *testing.T) {
		item := NewItem(name, 2, 3.5)
		if item.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("sets fields", func(t *testing.T) {
		item := NewItem(name, 2, 3.5)
		if item.Name != name || item.Quantity != 2 || item.UnitValue != 3.5 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item := NewItem(name, 1, 1)
		after := time.Now().UTC()
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		if NewItem(name, 1, 1).ID == NewItem(name, 1, 1).ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		quantity, unitValue, want float64
	}{
		{2, 3.5, 7},
		{1, 10, 10},
		{0, 99.9, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		item := &Item{Quantity: tt.quantity, UnitValue: tt.unitValue}
		if got := item.LineTotal(); got != tt.want {
			t.Errorf("LineTotal(%v × %v) = %v, want %v", tt.quantity, tt.unitValue, got, tt.want)
		}
	}
}

func TestGrandTotal(t *testing.T) {
	items := []*Item{
		{Quantity: 2, UnitValue: 3.5},
		{Quantity: 1, UnitValue: 10},
	}
	if got := GrandTotal(items); got != 17 {
		t.Fatalf("GrandTotal = %v, want 17", got)
	}
	if got := GrandTotal(nil); got != 0 {
		t.Fatalf("GrandTotal(nil) = %v, want 0", got)
	}
}

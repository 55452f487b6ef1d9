package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single line of the shopping budget: what to buy, how many, and
// the price of one unit.
type Item struct {
	ID        uuid.UUID
	Name      ItemName
	Quantity  float64
	UnitValue float64
	CreatedAt time.Time // list ordering only
}

// NewItem constructs an Item with a generated ID and the current timestamp.
// Callers validate quantity and unit value before calling.
func NewItem(name ItemName, quantity, unitValue float64) *Item {
	return &Item{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  quantity,
		UnitValue: unitValue,
		CreatedAt: time.Now().UTC(),
	}
}

// LineTotal returns quantity × unit value.
func (i *Item) LineTotal() float64 {
	return i.Quantity * i.UnitValue
}

// GrandTotal sums the line totals of items.
func GrandTotal(items []*Item) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

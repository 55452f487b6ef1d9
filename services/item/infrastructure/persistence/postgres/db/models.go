package db

import (
	"time"

	"github.com/google/uuid"
)

// ItemItem is a row of item.items.
type ItemItem struct {
	ID        uuid.UUID
	Name      string
	Quantity  float64
	UnitValue float64
	CreatedAt time.Time
}

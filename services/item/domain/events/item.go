package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/orcamento/services/item/domain/models"
)

// Watermill topics published by the item store.
const (
	TopicItemCreated = "item.created"
	TopicItemDeleted = "item.deleted"
)

// eventVersion is the current schema version of every item event.
const eventVersion = 1

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	UnitValue  float64   `json:"unit_value"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemCreatedEvent builds the created event for item.
func NewItemCreatedEvent(item *models.Item) ItemCreatedEvent {
	return ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Quantity:   item.Quantity,
		UnitValue:  item.UnitValue,
		OccurredAt: time.Now().UTC(),
	}
}

// NewItemDeletedEvent builds the deleted event for item.
func NewItemDeletedEvent(item *models.Item) ItemDeletedEvent {
	return ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    eventVersion,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		OccurredAt: time.Now().UTC(),
	}
}

package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/orcamento/services/item/domain/events"
	"github.com/ghuser/orcamento/services/item/domain/models"
)

func TestItemCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.NewItemCreatedEvent(models.NewItem("Arroz", 2, 3.5))

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "quantity", "unit_value", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestNewItemCreatedEvent(t *testing.T) {
	item := models.NewItem("Feijão", 1, 8.9)
	before := time.Now().UTC()
	evt := events.NewItemCreatedEvent(item)

	if evt.EventID == uuid.Nil {
		t.Error("expected non-nil EventID")
	}
	if evt.Version != 1 {
		t.Errorf("Version: got %d, want 1", evt.Version)
	}
	if evt.ItemID != item.ID || evt.Name != "Feijão" || evt.Quantity != 1 || evt.UnitValue != 8.9 {
		t.Errorf("unexpected event: %+v", evt)
	}
	if evt.OccurredAt.Before(before) {
		t.Errorf("OccurredAt %v before %v", evt.OccurredAt, before)
	}
}

func TestNewItemDeletedEvent(t *testing.T) {
	item := models.NewItem("Leite", 6, 4.79)
	evt := events.NewItemDeletedEvent(item)

	if evt.ItemID != item.ID || evt.Name != "Leite" {
		t.Errorf("unexpected event: %+v", evt)
	}
	if evt.EventID == events.NewItemDeletedEvent(item).EventID {
		t.Error("expected a fresh EventID per event")
	}
}

func TestTopics(t *testing.T) {
	if events.TopicItemCreated != "item.created" {
		t.Errorf("expected %q, got %q", "item.created", events.TopicItemCreated)
	}
	if events.TopicItemDeleted != "item.deleted" {
		t.Errorf("expected %q, got %q", "item.deleted", events.TopicItemDeleted)
	}
}

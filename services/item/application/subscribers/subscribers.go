// Package subscribers holds the worker-side handlers for item events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/orcamento/pkg/events"
	"github.com/ghuser/orcamento/pkg/logger"
	"github.com/ghuser/orcamento/pkg/telemetry"
	itemevents "github.com/ghuser/orcamento/services/item/domain/events"
)

// Handler processes one event message. Returning an error triggers a retry.
type Handler func(context.Context, *message.Message) error

// Invalidator drops the cached item list. *cache.ItemListCache satisfies it.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Subscriber is the part of *events.EventBus the worker needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Topics lists every topic Register subscribes to.
var Topics = []string{itemevents.TopicItemCreated, itemevents.TopicItemDeleted}

// Register subscribes the item handlers to bus and drains their error
// channels in the background. listCache may be nil when Redis is disabled.
func Register(ctx context.Context, bus Subscriber, listCache Invalidator, log logger.Logger) error {
	handlers := map[string]Handler{
		itemevents.TopicItemCreated: ItemCreated(listCache, log),
		itemevents.TopicItemDeleted: ItemDeleted(listCache, log),
	}

	for _, topic := range Topics {
		errCh, err := bus.Subscribe(ctx, topic, handlers[topic])
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go drain(ctx, topic, errCh, log)
	}

	log.Info("event subscribers registered", "topics", Topics)
	return nil
}

func drain(ctx context.Context, topic string, errCh <-chan error, log logger.Logger) {
	for err := range errCh {
		log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		telemetry.CaptureError(ctx, err, map[string]string{"topic": topic})
	}
}

// ItemCreated handles item.created: logs an audit line and invalidates the
// list cache. Idempotent.
func ItemCreated(listCache Invalidator, log logger.Logger) Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemevents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", itemevents.TopicItemCreated, err)
		}

		log.InfoContext(ctx, "item created",
			"event_id", msg.Metadata.Get(events.MetadataEventID),
			"item_id", evt.ItemID,
			"name", evt.Name,
			"quantity", evt.Quantity,
			"unit_value", evt.UnitValue,
		)
		return invalidate(ctx, listCache)
	}
}

// ItemDeleted handles item.deleted: logs an audit line and invalidates the
// list cache. Idempotent.
func ItemDeleted(listCache Invalidator, log logger.Logger) Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemevents.ItemDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", itemevents.TopicItemDeleted, err)
		}

		log.InfoContext(ctx, "item deleted",
			"event_id", msg.Metadata.Get(events.MetadataEventID),
			"item_id", evt.ItemID,
			"name", evt.Name,
		)
		return invalidate(ctx, listCache)
	}
}

func invalidate(ctx context.Context, listCache Invalidator) error {
	if listCache == nil {
		return nil
	}
	if err := listCache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate item list cache: %w", err)
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/orcamento/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save inserts a new Item and publishes item.created with it.
	Save(ctx context.Context, item *models.Item) error

	// List returns every item, oldest first. Never nil.
	List(ctx context.Context) ([]*models.Item, error)

	// DeleteByID removes the item and returns it as it was stored.
	// Returns domain.ErrItemNotFound when no item has that ID.
	DeleteByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
}

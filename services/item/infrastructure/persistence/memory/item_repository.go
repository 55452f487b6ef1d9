// Package memory is a process-local ItemRepository used by tests and by the
// API when no database is wanted.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/orcamento/services/item/domain"
	"github.com/ghuser/orcamento/services/item/domain/models"
	"github.com/ghuser/orcamento/services/item/domain/services"
)

// ItemRepository keeps items in insertion order.
type ItemRepository struct {
	mu    sync.Mutex
	items []*models.Item
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// Save stores a copy of item. It enforces the same field rules as the
// table constraints in Postgres.
func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	if err := services.ValidateItemForCreation(services.ItemInput{
		Name:      item.Name.String(),
		Quantity:  item.Quantity,
		UnitValue: item.UnitValue,
	}); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

// List returns copies of all stored items.
func (r *ItemRepository) List(_ context.Context) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Item, len(r.items))
	for i, it := range r.items {
		cp := *it
		out[i] = &cp
	}
	return out, nil
}

func (r *ItemRepository) DeleteByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.items, func(it *models.Item) bool { return it.ID == id })
	if i < 0 {
		return nil, itemdomain.ErrItemNotFound
	}
	removed := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	return removed, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	pkgcache "github.com/ghuser/orcamento/pkg/cache"
	"github.com/ghuser/orcamento/pkg/logger"
	itemdomain "github.com/ghuser/orcamento/services/item/domain"
	"github.com/ghuser/orcamento/services/item/domain/models"
	"github.com/ghuser/orcamento/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/orcamento/services/item/domain/services"
)

const meterName = "github.com/ghuser/orcamento/services/item"

// ListCache is the read-through cache in front of ItemRepository.List.
// *pkgcache.ItemListCache satisfies it.
type ListCache interface {
	Get(ctx context.Context) ([]pkgcache.CachedItem, error)
	Set(ctx context.Context, items []pkgcache.CachedItem) error
	Invalidate(ctx context.Context) error
}

// ItemService orchestrates validation, persistence, and listing of Items.
// Event publishing is handled by the repository layer (outbox pattern).
// Lists are served from the cache when one is configured.
type ItemService struct {
	repo    repositories.ItemRepository
	cache   ListCache
	log     logger.Logger
	created metric.Int64Counter
	deleted metric.Int64Counter
}

// NewItemService returns an ItemService wired with the given repository.
// listCache may be nil to disable caching.
func NewItemService(repo repositories.ItemRepository, listCache ListCache, log logger.Logger) *ItemService {
	meter := otel.Meter(meterName)
	// Instrument creation only fails on invalid names; the no-op counter is a safe fallback.
	created, _ := meter.Int64Counter("items.created", metric.WithDescription("Items added to the list"))
	deleted, _ := meter.Int64Counter("items.deleted", metric.WithDescription("Items removed from the list"))
	return &ItemService{
		repo:    repo,
		cache:   listCache,
		log:     log,
		created: created,
		deleted: deleted,
	}
}

// List returns every item. Never nil.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		switch {
		case err == nil:
			return fromCache(cached), nil
		case !errors.Is(err, pkgcache.ErrMiss):
			s.log.WarnContext(ctx, "item list cache read failed", "error", err)
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []*models.Item{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, toCache(items)); err != nil {
			s.log.WarnContext(ctx, "item list cache write failed", "error", err)
		}
	}
	return items, nil
}

// Create validates the input and persists a new Item. Validation failures are
// returned as *domain.ValidationError and nothing is written.
func (s *ItemService) Create(ctx context.Context, name string, quantity, unitValue float64) (*models.Item, error) {
	if err := domainsvcs.ValidateItemForCreation(domainsvcs.ItemInput{
		Name:      name,
		Quantity:  quantity,
		UnitValue: unitValue,
	}); err != nil {
		return nil, err
	}

	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, itemdomain.NewValidationError(map[string]string{domainsvcs.FieldName: err.Error()})
	}

	item := models.NewItem(itemName, quantity, unitValue)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.created.Add(ctx, 1)
	s.invalidate(ctx)
	return item, nil
}

// Delete parses rawID and removes the matching Item, returning it.
// Returns ErrInvalidItemID for a malformed ID without touching storage,
// and ErrItemNotFound when no item has that ID.
func (s *ItemService) Delete(ctx context.Context, rawID string) (*models.Item, error) {
	id, err := ParseItemID(rawID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}

	s.deleted.Add(ctx, 1)
	s.invalidate(ctx)
	return item, nil
}

// ParseItemID accepts the canonical hyphenated UUID form only.
func ParseItemID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 36 {
		return uuid.Nil, itemdomain.ErrInvalidItemID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemID, err)
	}
	return id, nil
}

func (s *ItemService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "item list cache invalidate failed", "error", err)
	}
}

func toCache(items []*models.Item) []pkgcache.CachedItem {
	out := make([]pkgcache.CachedItem, len(items))
	for i, it := range items {
		out[i] = pkgcache.CachedItem{
			ID:        it.ID,
			Name:      it.Name.String(),
			Quantity:  it.Quantity,
			UnitValue: it.UnitValue,
			CreatedAt: it.CreatedAt,
		}
	}
	return out
}

func fromCache(cached []pkgcache.CachedItem) []*models.Item {
	out := make([]*models.Item, len(cached))
	for i, c := range cached {
		out[i] = &models.Item{
			ID:        c.ID,
			Name:      models.ItemName(c.Name),
			Quantity:  c.Quantity,
			UnitValue: c.UnitValue,
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}

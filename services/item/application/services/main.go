package services

import (
	"github.com/ghuser/orcamento/pkg/app"
	"github.com/ghuser/orcamento/pkg/cache"
	"github.com/ghuser/orcamento/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
// The list cache is enabled only when the Application carries a Redis client.
func New(a *app.Application) *Services {
	repo := postgres.NewItemRepository(a.Db, a.EventBus)
	var listCache ListCache
	if a.Redis != nil {
		listCache = cache.NewItemListCache(a.Redis)
	}
	return &Services{
		Item: NewItemService(repo, listCache, a.Logger),
	}
}

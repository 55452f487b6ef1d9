package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orcamento/pkg/app"
	"github.com/ghuser/orcamento/pkg/logger"
	"github.com/ghuser/orcamento/services/item/application/handlers"
	appsvcs "github.com/ghuser/orcamento/services/item/application/services"
	"github.com/ghuser/orcamento/services/item/application/web"
)

// ItemRoutes wires item services from the Application container and mounts them.
func ItemRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a.Logger)
}

// Mount registers the JSON endpoints and the server-rendered page on r.
func Mount(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
	r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
	r.Delete("/items/{id}", handlers.NewDeleteItemHandler(svcs).Execute)

	web.NewPages(svcs, log).Routes(r)
}

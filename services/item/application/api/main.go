package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/item/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	Register(r, appsvcs.New(a), a.Logger)
}

// Register mounts the item and category endpoints over svcs.
func Register(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs, log).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, log).Execute)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemHandler(svcs, log).Execute)
			r.Put("/", handlers.NewPutItemHandler(svcs, log).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs, log).Execute)
		})
	})
	r.Get("/categories", handlers.NewGetCategoriesHandler().Execute)
}

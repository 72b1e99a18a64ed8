package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/nadeekaauto/parts-inventory/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// The browser clients are served from a different origin, so cross-origin
	// requests are universally permitted.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(RateLimitMiddleware)

	r.Get("/inventory", handlers.GetItemsHandler)
	r.Post("/inventory", handlers.CreateItemHandler)
	r.Get("/inventory/report", handlers.ExportInventoryReportHandler)
	r.Get("/inventory/{id}", handlers.GetItemByIDHandler)
	r.Put("/inventory/{id}", handlers.UpdateItemHandler)
	r.Delete("/inventory/{id}", handlers.DeleteItemHandler)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

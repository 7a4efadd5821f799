// Package router sets up all HTTP routes and middleware chains for the
// glamora_kz storefront API. Every catalog route is scoped by locale.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"glamora/internal/handlers"
	"glamora/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cat *handlers.Catalog, assets *handlers.Assets, checkout *handlers.Checkout, seo *handlers.SEO) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Locale-scoped JSON API.
	r.Route("/api/{locale}", func(r chi.Router) {
		r.Get("/categories", cat.ListCategories)
		r.Get("/categories/{slug}", cat.GetCategory)
		r.Get("/products", cat.ListProducts)
		r.Get("/products/{slug}", cat.GetProduct)
		r.Get("/slug/{kind}/{slug}", cat.TranslateSlug)
		r.Get("/i18n", cat.Dictionary)

		r.Post("/checkout", checkout.Create)
		r.Get("/checkout/qr", checkout.QR)
	})

	// Product images straight off the catalog tree.
	r.Get("/assets/*", assets.Serve)

	// Crawler surface.
	r.Get("/sitemap.xml", seo.Sitemap)
	r.Get("/robots.txt", seo.Robots)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

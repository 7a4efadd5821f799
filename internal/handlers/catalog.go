// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"glamora/internal/catalog"
	"glamora/internal/i18n"
)

// Catalog groups the read-only catalog API handlers.
type Catalog struct {
	svc *catalog.Service
}

// NewCatalog creates the catalog handler group.
func NewCatalog(svc *catalog.Service) *Catalog {
	return &Catalog{svc: svc}
}

// freshParam reports whether the request asks to bypass the snapshot cache.
func freshParam(r *http.Request) bool {
	v := r.URL.Query().Get("fresh")
	return v == "1" || v == "true"
}

// categoryView is a category plus its product count for list responses.
type categoryView struct {
	catalog.Category
	ProductCount int `json:"productCount"`
}

// ListCategories returns all categories sorted for the locale.
func (h *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}

	snap, err := h.svc.Snapshot(r.Context(), freshParam(r))
	if err != nil {
		catalogError(w, err)
		return
	}

	counts := make(map[string]int, len(snap.Categories))
	for _, p := range snap.Products {
		counts[p.CategoryID]++
	}

	sorted := catalog.SortCategories(snap.Categories, loc)
	views := make([]categoryView, 0, len(sorted))
	for _, c := range sorted {
		views = append(views, categoryView{Category: c, ProductCount: counts[c.ID]})
	}
	respondJSON(w, http.StatusOK, views)
}

// categoryDetail is one category with its sorted products.
type categoryDetail struct {
	catalog.Category
	Products []catalog.Product `json:"products"`
}

// GetCategory returns one category by locale slug, with its products.
// An optional q parameter filters products by localized-name substring.
func (h *Catalog) GetCategory(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}

	category, err := h.svc.CategoryBySlug(r.Context(), loc, chi.URLParam(r, "slug"))
	if err != nil {
		catalogError(w, err)
		return
	}
	if category == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	products, err := h.svc.ProductsByCategory(r.Context(), category.ID)
	if err != nil {
		catalogError(w, err)
		return
	}
	products = catalog.SortProducts(products, loc)
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		products = filterByName(products, loc, q)
	}

	respondJSON(w, http.StatusOK, categoryDetail{Category: *category, Products: products})
}

// ListProducts returns all products sorted for the locale. An optional q
// parameter filters by localized-name substring.
func (h *Catalog) ListProducts(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}

	products, err := h.svc.Products(r.Context(), freshParam(r))
	if err != nil {
		catalogError(w, err)
		return
	}
	products = catalog.SortProducts(products, loc)
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		products = filterByName(products, loc, q)
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProduct returns one product by locale slug.
func (h *Catalog) GetProduct(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}

	product, err := h.svc.ProductBySlug(r.Context(), loc, chi.URLParam(r, "slug"))
	if err != nil {
		catalogError(w, err)
		return
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// TranslateSlug maps a slug to another locale for the same entity, used by
// the locale switcher to stay on the current page.
// Route: /api/{locale}/slug/{kind}/{slug}?to=<locale>.
func (h *Catalog) TranslateSlug(w http.ResponseWriter, r *http.Request) {
	from, ok := localeParam(w, r)
	if !ok {
		return
	}
	to, ok := catalog.ParseLocale(r.URL.Query().Get("to"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unsupported target locale")
		return
	}

	slug := chi.URLParam(r, "slug")
	var translated string
	var err error
	switch chi.URLParam(r, "kind") {
	case "category":
		translated, err = h.svc.TranslateCategorySlug(r.Context(), slug, from, to)
	case "product":
		translated, err = h.svc.TranslateProductSlug(r.Context(), slug, from, to)
	default:
		respondError(w, http.StatusNotFound, "unknown entity kind")
		return
	}
	if err != nil {
		catalogError(w, err)
		return
	}
	if translated == "" {
		respondError(w, http.StatusNotFound, "slug not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"slug": translated})
}

// Dictionary returns the UI dictionary for the locale.
func (h *Catalog) Dictionary(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, i18n.Dict(loc))
}

// filterByName keeps products whose localized name contains the query,
// case-insensitively. Plain substring matching, no indexing.
func filterByName(products []catalog.Product, loc catalog.Locale, q string) []catalog.Product {
	needle := strings.ToLower(q)
	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name[loc]), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

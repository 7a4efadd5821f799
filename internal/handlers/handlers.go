// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// Package handlers implements the public HTTP surface: the read-only
// catalog JSON API, catalog asset serving, SEO endpoints, and WhatsApp
// checkout links. Pages are rendered client-side; this server is data only.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"glamora/internal/catalog"
)

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError writes a JSON error envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// localeParam extracts and validates the {locale} route parameter.
// An unsupported locale is a not-found, never an internal error.
func localeParam(w http.ResponseWriter, r *http.Request) (catalog.Locale, bool) {
	loc, ok := catalog.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		respondError(w, http.StatusNotFound, "unsupported locale")
		return "", false
	}
	return loc, true
}

// catalogError logs a systemic load failure and answers 500. Raw loader
// errors never reach the client.
func catalogError(w http.ResponseWriter, err error) {
	slog.Error("catalog load failed", "error", err)
	respondError(w, http.StatusInternalServerError, "catalog unavailable")
}

// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// Package catalog loads, validates and serves the product catalog from a
// directory tree of category and product folders. The filesystem is the
// single source of truth; every load produces a fresh immutable snapshot.
package catalog

import "time"

// Locale is one of the two supported display languages.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleKK Locale = "kk"
)

// Locales lists the supported locales in canonical order.
var Locales = []Locale{LocaleRU, LocaleKK}

// ParseLocale returns the Locale for a path segment, or false if unsupported.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleRU:
		return LocaleRU, true
	case LocaleKK:
		return LocaleKK, true
	}
	return "", false
}

const (
	// DefaultCurrency is applied when a product descriptor omits currency.
	DefaultCurrency = "KZT"

	// DefaultTTL is how long a loaded snapshot is served before the
	// directory tree is re-scanned. Short, because descriptors are edited
	// directly on disk.
	DefaultTTL = 60 * time.Second
)

// Localized maps every supported locale to a display value. Snapshots only
// ever contain complete maps: the loader fills absent locales from the
// derivation fallbacks before a Category or Product is constructed.
type Localized map[Locale]string

// SEOText is an optional per-locale metadata override for a product page.
type SEOText struct {
	Title string `json:"title,omitempty"`
	Desc  string `json:"desc,omitempty"`
}

// SEO maps locales to their metadata overrides. Locales may be absent.
type SEO map[Locale]SEOText

// Category is a validated, locale-complete catalog category.
// Read-only after construction; rebuilt wholesale on every load.
type Category struct {
	ID    string    `json:"id"`
	Slug  Localized `json:"slug"`
	Name  Localized `json:"name"`
	Blurb Localized `json:"blurb"`
	Order *int      `json:"order,omitempty"`
}

// Product is a validated, locale-complete catalog product.
// Read-only after construction; rebuilt wholesale on every load.
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Slug        Localized `json:"slug"`
	Name        Localized `json:"name"`
	Short       Localized `json:"short"`
	Description Localized `json:"description"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Volume      string    `json:"volume,omitempty"`
	SEO         SEO       `json:"seo,omitempty"`
	Images      []string  `json:"images"`
	Image       string    `json:"image,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

// Snapshot is one immutable, fully-validated in-memory copy of the catalog.
type Snapshot struct {
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// resolveLocalized builds a complete locale map from a partial input,
// calling fallback for every absent locale.
func resolveLocalized(in *LocalizedInput, fallback func(Locale) string) Localized {
	out := make(Localized, len(Locales))
	for _, loc := range Locales {
		if v := in.get(loc); v != nil {
			out[loc] = *v
			continue
		}
		out[loc] = fallback(loc)
	}
	return out
}

// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collatorFor returns a fresh collator for the locale. Collators carry
// internal buffers and are not safe for concurrent use, so each sort gets
// its own.
func collatorFor(loc Locale) *collate.Collator {
	if loc == LocaleKK {
		return collate.New(language.Kazakh)
	}
	return collate.New(language.Russian)
}

// orderRank sorts explicit orders ascending with absent orders last.
func orderRank(order *int, other *int) (int, int, bool) {
	if order == nil && other == nil {
		return 0, 0, false
	}
	if order == nil {
		return 1, 0, true
	}
	if other == nil {
		return 0, 1, true
	}
	if *order == *other {
		return 0, 0, false
	}
	return *order, *other, true
}

// SortCategories returns the categories sorted for display in a locale:
// explicit order first (absent sorts last), ties broken by collated
// localized name. The input slice is not modified.
func SortCategories(categories []Category, loc Locale) []Category {
	sorted := make([]Category, len(categories))
	copy(sorted, categories)
	coll := collatorFor(loc)
	sort.SliceStable(sorted, func(i, j int) bool {
		if a, b, decided := orderRank(sorted[i].Order, sorted[j].Order); decided {
			return a < b
		}
		return coll.CompareString(sorted[i].Name[loc], sorted[j].Name[loc]) < 0
	})
	return sorted
}

// SortProducts returns the products sorted for display in a locale, with
// the same semantics as SortCategories. The input slice is not modified.
func SortProducts(products []Product, loc Locale) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)
	coll := collatorFor(loc)
	sort.SliceStable(sorted, func(i, j int) bool {
		if a, b, decided := orderRank(sorted[i].Order, sorted[j].Order); decided {
			return a < b
		}
		return coll.CompareString(sorted[i].Name[loc], sorted[j].Name[loc]) < 0
	})
	return sorted
}

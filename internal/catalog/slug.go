// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// slug.go derives URL-safe slugs from localized display names. Cyrillic
// (including Kazakh-specific letters) is transliterated through a fixed
// substitution table so the same name always yields the same slug.
package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cyrillicToLatin maps lowercase Cyrillic letters to Latin digraphs.
// Covers the Kazakh additions (ә ғ қ ң ө ұ ү һ і) alongside Russian.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'ә': "a", 'б': "b", 'в': "v", 'г': "g", 'ғ': "g",
	'д': "d", 'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'қ': "k", 'л': "l", 'м': "m", 'н': "n",
	'ң': "ng", 'о': "o", 'ө': "o", 'п': "p", 'р': "r", 'с': "s",
	'т': "t", 'у': "u", 'ұ': "u", 'ү': "u", 'ф': "f", 'х': "kh",
	'һ': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "",
	'ы': "y", 'і': "i", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var (
	// nonAlphanumeric collapses any run of characters outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

	// stripMarks removes combining diacritical marks after NFKD
	// decomposition, so accented Latin letters survive as plain ASCII.
	stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
)

// transliterate replaces Cyrillic characters with their Latin counterparts
// and lowercases everything else, leaving non-Cyrillic runes untouched.
func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		lower := unicode.ToLower(r)
		if mapped, ok := cyrillicToLatin[lower]; ok {
			b.WriteString(mapped)
			continue
		}
		b.WriteRune(lower)
	}
	return b.String()
}

// Slugify converts an arbitrary display name into a URL-safe slug:
// transliterate, strip diacritics, lowercase, collapse every run of
// non-alphanumeric characters to a single dash, trim edge dashes.
// Deterministic and idempotent; may return "" when nothing is mappable.
func Slugify(name string) string {
	result := transliterate(name)
	if stripped, _, err := transform.String(stripMarks, result); err == nil {
		result = stripped
	}
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// DeriveSlug produces the slug for one locale. An explicit slug wins
// verbatim; otherwise the localized name is slugified; if that yields
// nothing, the entity id is used as-is.
func DeriveSlug(explicit, name *string, fallbackID string) string {
	if explicit != nil {
		return *explicit
	}
	if name != nil {
		if derived := Slugify(*name); derived != "" {
			return derived
		}
	}
	return fallbackID
}

package i18n

import (
	"testing"

	"glamora/internal/catalog"
)

func TestDict(t *testing.T) {
	ru := Dict(catalog.LocaleRU)
	kk := Dict(catalog.LocaleKK)

	if ru == nil || kk == nil {
		t.Fatal("dictionaries must exist for both locales")
	}
	if ru == kk {
		t.Fatal("locales must not share a dictionary")
	}

	t.Run("brand is consistent", func(t *testing.T) {
		if ru.Common.Brand != kk.Common.Brand {
			t.Errorf("brand differs: %q vs %q", ru.Common.Brand, kk.Common.Brand)
		}
	})

	t.Run("core strings differ between locales", func(t *testing.T) {
		if ru.Common.Catalog == kk.Common.Catalog {
			t.Errorf("catalog label identical across locales: %q", ru.Common.Catalog)
		}
		if ru.Common.Cart == kk.Common.Cart {
			t.Errorf("cart label identical across locales: %q", ru.Common.Cart)
		}
	})

	t.Run("no empty common strings", func(t *testing.T) {
		for loc, d := range map[catalog.Locale]*Dictionary{catalog.LocaleRU: ru, catalog.LocaleKK: kk} {
			if d.Common.OrderNow == "" || d.Common.AddToCart == "" || d.Common.EmptyCart == "" {
				t.Errorf("%s: common strings must not be empty", loc)
			}
			if len(d.Home.HeroTaglineLines) == 0 {
				t.Errorf("%s: hero tagline must have lines", loc)
			}
		}
	})

	t.Run("unknown locale falls back to russian", func(t *testing.T) {
		if got := Dict(catalog.Locale("en")); got != ru {
			t.Error("unsupported locale should return the russian dictionary")
		}
	})
}

package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeCategoryDescriptor(t *testing.T) {
	t.Run("valid descriptor", func(t *testing.T) {
		data := []byte(`{
			"id": "face-care",
			"name": {"ru": "Уход за лицом", "kk": "Бет күтімі"},
			"order": 1
		}`)
		desc, err := DecodeCategoryDescriptor(data, "category_face-care/_category_info.json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.ID != "face-care" {
			t.Errorf("id: got %q, want %q", desc.ID, "face-care")
		}
		if desc.Name == nil || desc.Name.RU == nil || *desc.Name.RU != "Уход за лицом" {
			t.Error("russian name should be decoded")
		}
		if desc.Order == nil || *desc.Order != 1 {
			t.Error("order should be decoded")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		data := []byte(`{"id": "face-care", "titel": {"ru": "Тест"}}`)
		_, err := DecodeCategoryDescriptor(data, "f.json")
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("got %v, want *SchemaError", err)
		}
		if schemaErr.File != "f.json" {
			t.Errorf("file: got %q, want %q", schemaErr.File, "f.json")
		}
	})

	t.Run("trailing content rejected", func(t *testing.T) {
		data := []byte(`{"id": "face-care"} {"id": "x"}`)
		var schemaErr *SchemaError
		if _, err := DecodeCategoryDescriptor(data, "f.json"); !errors.As(err, &schemaErr) {
			t.Fatalf("got %v, want *SchemaError", err)
		}
	})

	t.Run("invalid id shape", func(t *testing.T) {
		for _, id := range []string{"Face-Care", "face_care", "-face", "face-", "face--care", ""} {
			data := []byte(`{"id": "` + id + `"}`)
			var schemaErr *SchemaError
			if _, err := DecodeCategoryDescriptor(data, "f.json"); !errors.As(err, &schemaErr) {
				t.Errorf("id %q: got %v, want *SchemaError", id, err)
			}
		}
	})

	t.Run("empty localized value rejected", func(t *testing.T) {
		data := []byte(`{"id": "face-care", "name": {"ru": ""}}`)
		_, err := DecodeCategoryDescriptor(data, "f.json")
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("got %v, want *SchemaError", err)
		}
		if len(schemaErr.Issues) != 1 || schemaErr.Issues[0].Path != "name.ru" {
			t.Errorf("issues: got %+v, want one at name.ru", schemaErr.Issues)
		}
	})
}

func TestDecodeProductDescriptor(t *testing.T) {
	valid := `{
		"id": "night-serum",
		"categoryId": "face-care",
		"slug": {"ru": "nochnaya-syvorotka", "kk": "tungi-sarysu"},
		"name": {"ru": "Ночная сыворотка", "kk": "Түнгі сарысу"},
		"price": 12500,
		"volume": "30 мл"
	}`

	t.Run("valid descriptor", func(t *testing.T) {
		desc, err := DecodeProductDescriptor([]byte(valid), "p.json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if desc.ID != "night-serum" || desc.CategoryID != "face-care" {
			t.Errorf("ids: got %q/%q", desc.ID, desc.CategoryID)
		}
		if desc.Price == nil || *desc.Price != 12500 {
			t.Error("price should be decoded")
		}
		if desc.Currency != "" {
			t.Errorf("currency: got %q, want empty (defaulted later)", desc.Currency)
		}
	})

	t.Run("zero price is valid", func(t *testing.T) {
		data := []byte(`{
			"id": "sample", "categoryId": "face-care",
			"slug": {"ru": "probnik"}, "name": {"ru": "Пробник"},
			"price": 0
		}`)
		if _, err := DecodeProductDescriptor(data, "p.json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		data := []byte(strings.Replace(valid, "12500", "-1", 1))
		_, err := DecodeProductDescriptor(data, "p.json")
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("got %v, want *SchemaError", err)
		}
		if len(schemaErr.Issues) != 1 || schemaErr.Issues[0].Path != "price" {
			t.Errorf("issues: got %+v, want one at price", schemaErr.Issues)
		}
	})

	t.Run("all violations reported at once", func(t *testing.T) {
		data := []byte(`{"id": "Bad_ID", "categoryId": "face-care", "name": {"ru": "X"}}`)
		_, err := DecodeProductDescriptor(data, "p.json")
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("got %v, want *SchemaError", err)
		}
		// Bad id, missing slug, missing price.
		if len(schemaErr.Issues) != 3 {
			t.Errorf("issues: got %d (%+v), want 3", len(schemaErr.Issues), schemaErr.Issues)
		}
		paths := make(map[string]bool, len(schemaErr.Issues))
		for _, issue := range schemaErr.Issues {
			paths[issue.Path] = true
		}
		for _, want := range []string{"id", "slug", "price"} {
			if !paths[want] {
				t.Errorf("missing issue for %q in %+v", want, schemaErr.Issues)
			}
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		data := []byte(`{"id": "night-serum"}`)
		_, err := DecodeProductDescriptor(data, "p.json")
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("got %v, want *SchemaError", err)
		}
		if len(schemaErr.Issues) < 3 {
			t.Errorf("issues: got %+v, want categoryId, slug, name, price", schemaErr.Issues)
		}
	})

	t.Run("error message names file and paths", func(t *testing.T) {
		data := []byte(`{"id": "night-serum"}`)
		_, err := DecodeProductDescriptor(data, "category_x/product_night-serum/product_night-serum_info.json")
		if err == nil {
			t.Fatal("expected error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "product_night-serum_info.json") {
			t.Errorf("message should name the file: %q", msg)
		}
		if !strings.Contains(msg, "is required") {
			t.Errorf("message should describe the violation: %q", msg)
		}
	})
}

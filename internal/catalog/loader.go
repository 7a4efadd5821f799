// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// loader.go walks the catalog directory tree and assembles a validated
// snapshot. A load is all-or-nothing: the first violated invariant aborts
// it and no partial catalog is ever returned.
//
// On-disk layout:
//
//	<root>/
//	  category_<id>/
//	    _category_info.json          optional
//	    product_<id>/
//	      product_<id>_info.json     required
//	      <image files>
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
)

const (
	categoryPrefix    = "category_"
	productPrefix     = "product_"
	categoryInfoFile  = "_category_info.json"
	productInfoSuffix = "_info.json"
)

// Repository is the single entry point for obtaining a catalog snapshot.
// The filesystem loader is the only implementation today; the abstraction
// keeps path and naming conventions out of everything above it.
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Loader reads the catalog from a filesystem rooted at the catalog
// directory. The billy abstraction lets tests run against an in-memory tree.
type Loader struct {
	fsys billy.Filesystem
	dir  string // original path, for error messages only
}

// NewLoader creates a Loader over a filesystem rooted at the catalog
// directory. dir is the human-readable location used in errors.
func NewLoader(fsys billy.Filesystem, dir string) *Loader {
	return &Loader{fsys: fsys, dir: dir}
}

// slugIndex tracks per-locale slug ownership for duplicate detection.
type slugIndex map[Locale]map[string]string

func newSlugIndex() slugIndex {
	idx := make(slugIndex, len(Locales))
	for _, loc := range Locales {
		idx[loc] = make(map[string]string)
	}
	return idx
}

// claim records slug ownership for an entity, failing when another entity
// already holds the same slug in that locale.
func (idx slugIndex) claim(kind EntityKind, slugs Localized, id string) error {
	for _, loc := range Locales {
		slug := slugs[loc]
		if owner, taken := idx[loc][slug]; taken {
			return &DuplicateSlugError{Kind: kind, Locale: loc, Slug: slug, FirstID: owner, SecondID: id}
		}
		idx[loc][slug] = id
	}
	return nil
}

// Load scans the whole tree, validates every descriptor and invariant, and
// returns a fresh immutable snapshot. ctx is checked between directory
// entries so an abandoned load stops doing filesystem work.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	info, err := l.fsys.Stat(".")
	if err != nil {
		return nil, &MissingDirectoryError{Dir: l.dir}
	}
	if !info.IsDir() {
		return nil, &MissingDirectoryError{Dir: l.dir, NotDir: true}
	}

	entries, err := l.fsys.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read catalog root: %w", err)
	}

	snap := &Snapshot{}
	categoryIDs := make(map[string]bool)
	productIDs := make(map[string]bool)
	categorySlugs := newSlugIndex()
	productSlugs := newSlugIndex()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), categoryPrefix) {
			continue
		}

		category, err := l.loadCategory(entry.Name())
		if err != nil {
			return nil, err
		}

		if categoryIDs[category.ID] {
			return nil, &DuplicateIDError{Kind: KindCategory, ID: category.ID}
		}
		categoryIDs[category.ID] = true

		if err := categorySlugs.claim(KindCategory, category.Slug, category.ID); err != nil {
			return nil, err
		}
		snap.Categories = append(snap.Categories, *category)

		products, err := l.loadProducts(ctx, entry.Name(), category.ID)
		if err != nil {
			return nil, err
		}
		for i := range products {
			p := &products[i]
			if productIDs[p.ID] {
				return nil, &DuplicateIDError{Kind: KindProduct, ID: p.ID}
			}
			productIDs[p.ID] = true
			if err := productSlugs.claim(KindProduct, p.Slug, p.ID); err != nil {
				return nil, err
			}
			snap.Products = append(snap.Products, *p)
		}
	}

	return snap, nil
}

// loadCategory materializes one category folder. A missing metadata file is
// fine: the category is synthesized from its folder-derived id alone.
func (l *Loader) loadCategory(folder string) (*Category, error) {
	categoryID := strings.TrimPrefix(folder, categoryPrefix)
	if !idPattern.MatchString(categoryID) {
		return nil, &InvalidFolderNameError{Kind: KindCategory, Folder: folder}
	}

	infoPath := path.Join(folder, categoryInfoFile)
	desc := &CategoryDescriptor{ID: categoryID}

	raw, err := l.readFile(infoPath)
	switch {
	case err == nil:
		desc, err = DecodeCategoryDescriptor(raw, infoPath)
		if err != nil {
			return nil, err
		}
		if desc.ID != categoryID {
			return nil, &IDMismatchError{Kind: KindCategory, Field: "id", Declared: desc.ID, Expected: categoryID, Folder: folder}
		}
	case errors.Is(err, os.ErrNotExist):
		// Synthesized descriptor: id only, everything else derived.
	default:
		return nil, fmt.Errorf("read %s: %w", infoPath, err)
	}

	return buildCategory(desc), nil
}

// loadProducts materializes every product folder under one category.
func (l *Loader) loadProducts(ctx context.Context, categoryFolder, categoryID string) ([]Product, error) {
	entries, err := l.fsys.ReadDir(categoryFolder)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", categoryFolder, err)
	}

	var products []Product
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), productPrefix) {
			continue
		}

		productID := strings.TrimPrefix(entry.Name(), productPrefix)
		if !idPattern.MatchString(productID) {
			return nil, &InvalidFolderNameError{Kind: KindProduct, Folder: entry.Name()}
		}

		productDir := path.Join(categoryFolder, entry.Name())
		infoPath := path.Join(productDir, productPrefix+productID+productInfoSuffix)

		raw, err := l.readFile(infoPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("missing required file %s", infoPath)
			}
			return nil, fmt.Errorf("read %s: %w", infoPath, err)
		}

		desc, err := DecodeProductDescriptor(raw, infoPath)
		if err != nil {
			return nil, err
		}
		if desc.ID != productID {
			return nil, &IDMismatchError{Kind: KindProduct, Field: "id", Declared: desc.ID, Expected: productID, Folder: entry.Name()}
		}
		if desc.CategoryID != categoryID {
			return nil, &IDMismatchError{Kind: KindProduct, Field: "categoryId", Declared: desc.CategoryID, Expected: categoryID, Folder: desc.ID}
		}

		images, err := resolveImages(l.fsys, productDir, desc.ID, desc.Images)
		if err != nil {
			return nil, err
		}

		products = append(products, *buildProduct(desc, images))
	}
	return products, nil
}

func (l *Loader) readFile(name string) ([]byte, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// buildCategory derives the locale-complete category record: explicit slugs
// win, otherwise slugs come from localized names, falling back to the id;
// names default to the id, blurbs to empty strings.
func buildCategory(desc *CategoryDescriptor) *Category {
	slug := make(Localized, len(Locales))
	for _, loc := range Locales {
		slug[loc] = DeriveSlug(desc.Slug.get(loc), desc.Name.get(loc), desc.ID)
	}
	return &Category{
		ID:    desc.ID,
		Slug:  slug,
		Name:  resolveLocalized(desc.Name, func(Locale) string { return desc.ID }),
		Blurb: resolveLocalized(desc.Blurb, func(Locale) string { return "" }),
		Order: desc.Order,
	}
}

// buildProduct derives the locale-complete product record and applies the
// currency default.
func buildProduct(desc *ProductDescriptor, images []string) *Product {
	slug := make(Localized, len(Locales))
	for _, loc := range Locales {
		slug[loc] = DeriveSlug(desc.Slug.get(loc), desc.Name.get(loc), desc.ID)
	}

	currency := desc.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	var seo SEO
	if desc.SEO != nil {
		seo = make(SEO)
		if desc.SEO.RU != nil {
			seo[LocaleRU] = *desc.SEO.RU
		}
		if desc.SEO.KK != nil {
			seo[LocaleKK] = *desc.SEO.KK
		}
	}

	var first string
	if len(images) > 0 {
		first = images[0]
	}

	return &Product{
		ID:          desc.ID,
		CategoryID:  desc.CategoryID,
		Slug:        slug,
		Name:        resolveLocalized(desc.Name, func(Locale) string { return desc.ID }),
		Short:       resolveLocalized(desc.Short, func(Locale) string { return "" }),
		Description: resolveLocalized(desc.Description, func(Locale) string { return "" }),
		Price:       *desc.Price,
		Currency:    currency,
		Volume:      desc.Volume,
		SEO:         seo,
		Images:      images,
		Image:       first,
		Order:       desc.Order,
	}
}

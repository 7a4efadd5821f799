// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"
	"strings"
)

// EntityKind distinguishes category and product errors.
type EntityKind string

const (
	KindCategory EntityKind = "category"
	KindProduct  EntityKind = "product"
)

// FieldIssue is a single schema violation at a field path.
type FieldIssue struct {
	Path    string
	Message string
}

// SchemaError reports every field-level violation found in one descriptor,
// not just the first.
type SchemaError struct {
	File   string
	Issues []FieldIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		path := issue.Path
		if path == "" {
			path = "(root)"
		}
		parts[i] = path + ": " + issue.Message
	}
	return fmt.Sprintf("invalid descriptor at %s: %s", e.File, strings.Join(parts, "; "))
}

// InvalidFolderNameError reports a category or product folder whose name
// does not follow the <prefix>_<id> convention with a lowercase dashed id.
type InvalidFolderNameError struct {
	Kind   EntityKind
	Folder string
}

func (e *InvalidFolderNameError) Error() string {
	if e.Kind == KindCategory {
		return fmt.Sprintf("invalid category folder name %q: expected %q with lowercase dashed id", e.Folder, categoryPrefix+"<id>")
	}
	return fmt.Sprintf("invalid product folder name %q: expected %q with lowercase dashed id", e.Folder, productPrefix+"<id>")
}

// IDMismatchError reports a descriptor whose declared id (or, for products,
// categoryId) disagrees with its folder context.
type IDMismatchError struct {
	Kind     EntityKind
	Field    string // "id" or "categoryId"
	Declared string
	Expected string
	Folder   string
}

func (e *IDMismatchError) Error() string {
	if e.Field == "categoryId" {
		return fmt.Sprintf("product %q declares categoryId %q which does not match parent category %q", e.Folder, e.Declared, e.Expected)
	}
	return fmt.Sprintf("%s info id %q mismatch with folder %q", e.Kind, e.Declared, e.Folder)
}

// DuplicateIDError reports two entities sharing one id.
type DuplicateIDError struct {
	Kind EntityKind
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.ID)
}

// DuplicateSlugError reports two entities sharing one slug for a locale.
// It names both conflicting entities.
type DuplicateSlugError struct {
	Kind     EntityKind
	Locale   Locale
	Slug     string
	FirstID  string
	SecondID string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("duplicate %s slug %q for locale %q: appears in %q and %q",
		e.Kind, e.Slug, e.Locale, e.FirstID, e.SecondID)
}

// AssetMissingError reports a declared image that does not exist.
type AssetMissingError struct {
	ProductID string
	Path      string
	Dir       string
}

func (e *AssetMissingError) Error() string {
	return fmt.Sprintf("image %q declared for product %q not found in %s", e.Path, e.ProductID, e.Dir)
}

// AssetPathEscapeError reports a declared image path that resolves outside
// its product directory.
type AssetPathEscapeError struct {
	ProductID string
	Path      string
}

func (e *AssetPathEscapeError) Error() string {
	return fmt.Sprintf("image path %q for product %q resolves outside of its directory", e.Path, e.ProductID)
}

// MissingDirectoryError reports a catalog root that is absent or not a
// directory. Fatal at startup.
type MissingDirectoryError struct {
	Dir    string
	NotDir bool
}

func (e *MissingDirectoryError) Error() string {
	if e.NotDir {
		return fmt.Sprintf("catalog directory %q is not a directory", e.Dir)
	}
	return fmt.Sprintf("catalog directory %q not found: create it or set CATALOG_DIR", e.Dir)
}

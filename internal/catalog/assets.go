// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// assets.go resolves product image files. Declared image lists are taken
// verbatim (order preserved, duplicates allowed) once containment and
// existence are proven; with no declaration, images are discovered from the
// product directory. Real filesystem locations never leak: every result is
// rewritten onto the public /assets/ route.
package catalog

import (
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// AssetRoutePrefix is the public route all catalog files are served under.
const AssetRoutePrefix = "/assets/"

// imageNamePattern is the strict convention for product photos:
// product_<id>_photo with an optional suffix and an image extension.
var imageNamePattern = regexp.MustCompile(`(?i)^product_[a-z0-9-]+_photo[-_a-zA-Z0-9]*\.(png|jpg|jpeg|webp|gif)$`)

// imageExtensions is the fallback filter when no file matches the strict
// naming pattern.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// resolveImages returns the ordered public paths of a product's images.
// productDir is relative to the catalog root. When declared is non-empty it
// is authoritative; otherwise files are discovered, pattern matches first,
// any image extension as fallback, sorted for determinism. An empty result
// is valid: not every product has photos.
func resolveImages(fsys billy.Filesystem, productDir, productID string, declared []string) ([]string, error) {
	if len(declared) > 0 {
		return resolveDeclaredImages(fsys, productDir, productID, declared)
	}
	return discoverImages(fsys, productDir)
}

func resolveDeclaredImages(fsys billy.Filesystem, productDir, productID string, declared []string) ([]string, error) {
	images := make([]string, 0, len(declared))
	for _, rel := range declared {
		if strings.HasPrefix(rel, "/") {
			return nil, &AssetPathEscapeError{ProductID: productID, Path: rel}
		}
		joined := path.Join(productDir, rel)
		// path.Join cleans the result; anything that climbed out of the
		// product directory no longer has it as a prefix.
		if !strings.HasPrefix(joined, productDir+"/") {
			return nil, &AssetPathEscapeError{ProductID: productID, Path: rel}
		}
		info, err := fsys.Stat(joined)
		if err != nil || info.IsDir() {
			return nil, &AssetMissingError{ProductID: productID, Path: rel, Dir: productDir}
		}
		images = append(images, toWebPath(joined))
	}
	return images, nil
}

func discoverImages(fsys billy.Filesystem, productDir string) ([]string, error) {
	entries, err := fsys.ReadDir(productDir)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageNamePattern.MatchString(entry.Name()) {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if imageExtensions[strings.ToLower(path.Ext(entry.Name()))] {
				candidates = append(candidates, entry.Name())
			}
		}
	}

	sort.Strings(candidates)

	images := make([]string, 0, len(candidates))
	for _, name := range candidates {
		images = append(images, toWebPath(path.Join(productDir, name)))
	}
	return images, nil
}

// toWebPath rewrites a catalog-relative file path to its public route.
func toWebPath(rel string) string {
	return AssetRoutePrefix + rel
}

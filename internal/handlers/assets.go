// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-git/go-billy/v5"
)

// mimeTypes maps served extensions to content types. Anything else is an
// opaque download.
var mimeTypes = map[string]string{
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".avif": "image/avif",
	".json": "application/json",
}

// assetCacheControl lets clients cache images for an hour and reuse stale
// copies while revalidating; catalog photos change rarely.
const assetCacheControl = "public, max-age=3600, stale-while-revalidate=86400"

// Assets serves files from the catalog tree under the public /assets/
// route. The filesystem is rooted at the catalog directory, so nothing
// outside it is ever reachable; traversal and hidden segments are rejected
// on top of that.
type Assets struct {
	fsys billy.Filesystem
}

// NewAssets creates the asset handler over the catalog filesystem.
func NewAssets(fsys billy.Filesystem) *Assets {
	return &Assets{fsys: fsys}
}

// hiddenSegment reports path segments that must never be served: dotfiles
// and underscore-prefixed files such as the category metadata descriptors.
func hiddenSegment(segment string) bool {
	return strings.HasPrefix(segment, ".") || strings.HasPrefix(segment, "_")
}

// Serve handles GET /assets/*.
func (h *Assets) Serve(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	if rel == "" {
		respondError(w, http.StatusBadRequest, "missing asset path")
		return
	}

	segments := strings.Split(rel, "/")
	for _, segment := range segments {
		if segment == "" || strings.Contains(segment, "..") || hiddenSegment(segment) {
			respondError(w, http.StatusNotFound, "invalid asset path")
			return
		}
	}

	clean := path.Clean(rel)
	info, err := h.fsys.Stat(clean)
	if err != nil || info.IsDir() {
		respondError(w, http.StatusNotFound, "asset not found")
		return
	}

	f, err := h.fsys.Open(clean)
	if err != nil {
		respondError(w, http.StatusNotFound, "asset not found")
		return
	}
	defer f.Close()

	mime, ok := mimeTypes[strings.ToLower(path.Ext(clean))]
	if !ok {
		mime = "application/octet-stream"
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", assetCacheControl)
	w.Header().Set("Content-Disposition", `inline; filename="`+path.Base(clean)+`"`)
	w.Header().Set("X-Served-From", "catalog-assets")
	if _, err := io.Copy(w, f); err != nil {
		// Client went away mid-transfer; nothing useful to do.
		return
	}
}

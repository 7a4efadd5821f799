// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"glamora/internal/catalog"
)

// noindexSegments are top-level route segments crawlers should avoid:
// transactional pages with no SEO value.
var noindexSegments = []string{"cart", "whatsapp"}

// staticSegments are the always-present localized routes ("" is the locale
// landing page).
var staticSegments = []string{"", "catalog", "cart"}

// SEO serves sitemap.xml and robots.txt built from the live catalog.
type SEO struct {
	svc     *catalog.Service
	baseURL string
}

// NewSEO creates the SEO handler group. baseURL has no trailing slash.
func NewSEO(svc *catalog.Service, baseURL string) *SEO {
	return &SEO{svc: svc, baseURL: baseURL}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml: per-locale static pages plus every
// category and product page under its localized slug.
func (h *SEO) Sitemap(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context(), false)
	if err != nil {
		catalogError(w, err)
		return
	}

	now := time.Now().UTC().Format("2006-01-02")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	add := func(loc string) {
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, LastMod: now})
	}

	for _, locale := range catalog.Locales {
		for _, segment := range staticSegments {
			if isNoindexSegment(segment) {
				continue
			}
			if segment == "" {
				add(fmt.Sprintf("%s/%s", h.baseURL, locale))
				continue
			}
			add(fmt.Sprintf("%s/%s/%s", h.baseURL, locale, segment))
		}
		for _, c := range snap.Categories {
			add(fmt.Sprintf("%s/%s/catalog/%s", h.baseURL, locale, c.Slug[locale]))
		}
		for _, p := range snap.Products {
			add(fmt.Sprintf("%s/%s/product/%s", h.baseURL, locale, p.Slug[locale]))
		}
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		return
	}
}

// Robots handles GET /robots.txt. Transactional segments are disallowed
// both bare and per-locale.
func (h *SEO) Robots(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range noindexPaths() {
		b.WriteString("Disallow: " + path + "\n")
	}
	b.WriteString("Sitemap: " + h.baseURL + "/sitemap.xml\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(b.String()))
}

func isNoindexSegment(segment string) bool {
	for _, s := range noindexSegments {
		if s == segment {
			return true
		}
	}
	return false
}

// noindexPaths lists crawler-disallowed paths: bare routes and per-locale
// variants, in stable order.
func noindexPaths() []string {
	var paths []string
	for _, segment := range noindexSegments {
		paths = append(paths, "/"+segment)
		for _, locale := range catalog.Locales {
			paths = append(paths, fmt.Sprintf("/%s/%s", locale, segment))
		}
	}
	return paths
}

// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// service.go wraps the loader with a time-boxed snapshot cache and the
// read-only query interface consumed by the presentation layer.
package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SnapshotCache is an optional shared cache for loaded snapshots (Valkey in
// production). It is never authoritative: implementations report a miss on
// any internal error and the service falls back to a direct load.
type SnapshotCache interface {
	Get(ctx context.Context) (*Snapshot, bool)
	Set(ctx context.Context, snap *Snapshot)
}

// Service serves catalog snapshots from a {snapshot, expiresAt} slot,
// re-loading from the repository when the slot is empty or expired.
// Concurrent expired reads may each trigger a load; that is redundant work,
// not corruption — loads are pure functions of the tree and the last write
// wins. A failed load never touches a previously cached value.
type Service struct {
	repo   Repository
	shared SnapshotCache // may be nil
	ttl    time.Duration

	mu        sync.RWMutex
	snapshot  *Snapshot
	expiresAt time.Time
}

// NewService creates a Service over repo. shared may be nil. A zero ttl
// falls back to DefaultTTL.
func NewService(repo Repository, shared SnapshotCache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{repo: repo, shared: shared, ttl: ttl}
}

// Snapshot returns the current catalog snapshot. fresh bypasses every cache
// and loads directly from disk; the validation tool uses this.
func (s *Service) Snapshot(ctx context.Context, fresh bool) (*Snapshot, error) {
	if fresh {
		return s.repo.Load(ctx)
	}

	s.mu.RLock()
	if s.snapshot != nil && time.Now().Before(s.expiresAt) {
		snap := s.snapshot
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	if s.shared != nil {
		if snap, ok := s.shared.Get(ctx); ok {
			s.store(snap)
			return snap, nil
		}
	}

	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.store(snap)
	if s.shared != nil {
		s.shared.Set(ctx, snap)
	}
	slog.Debug("catalog reloaded",
		"categories", len(snap.Categories),
		"products", len(snap.Products),
	)
	return snap, nil
}

func (s *Service) store(snap *Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()
}

// Categories returns a copy of the catalog's categories.
func (s *Service) Categories(ctx context.Context, fresh bool) ([]Category, error) {
	snap, err := s.Snapshot(ctx, fresh)
	if err != nil {
		return nil, err
	}
	out := make([]Category, len(snap.Categories))
	copy(out, snap.Categories)
	return out, nil
}

// Products returns a copy of the catalog's products.
func (s *Service) Products(ctx context.Context, fresh bool) ([]Product, error) {
	snap, err := s.Snapshot(ctx, fresh)
	if err != nil {
		return nil, err
	}
	out := make([]Product, len(snap.Products))
	copy(out, snap.Products)
	return out, nil
}

// ProductsByCategory returns the products belonging to one category.
func (s *Service) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	var out []Product
	for _, p := range snap.Products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

// CategoryBySlug finds a category by its slug in a locale. Returns nil when
// no category matches.
func (s *Service) CategoryBySlug(ctx context.Context, loc Locale, slug string) (*Category, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range snap.Categories {
		if snap.Categories[i].Slug[loc] == slug {
			c := snap.Categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

// ProductBySlug finds a product by its slug in a locale. Returns nil when
// no product matches.
func (s *Service) ProductBySlug(ctx context.Context, loc Locale, slug string) (*Product, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range snap.Products {
		if snap.Products[i].Slug[loc] == slug {
			p := snap.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ProductByID finds a product by id. Returns nil when no product matches.
func (s *Service) ProductByID(ctx context.Context, id string) (*Product, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			p := snap.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// TranslateCategorySlug maps a category slug from one locale to another for
// the same category. Returns "" when the slug is unknown.
func (s *Service) TranslateCategorySlug(ctx context.Context, slug string, from, to Locale) (string, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return "", err
	}
	for i := range snap.Categories {
		if snap.Categories[i].Slug[from] == slug {
			return snap.Categories[i].Slug[to], nil
		}
	}
	return "", nil
}

// TranslateProductSlug maps a product slug from one locale to another for
// the same product. Returns "" when the slug is unknown.
func (s *Service) TranslateProductSlug(ctx context.Context, slug string, from, to Locale) (string, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		return "", err
	}
	for i := range snap.Products {
		if snap.Products[i].Slug[from] == slug {
			return snap.Products[i].Slug[to], nil
		}
	}
	return "", nil
}

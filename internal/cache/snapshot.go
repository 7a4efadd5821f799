// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// snapshot.go stores the loaded catalog snapshot in Valkey so multiple
// instances share one directory scan. The cache is best-effort: every error
// is logged and reported as a miss, and the caller re-loads from disk.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"glamora/internal/catalog"
)

const snapshotKey = "catalog:snapshot"

// DefaultSnapshotTTL mirrors the in-memory cache window.
const DefaultSnapshotTTL = 60 * time.Second

// SnapshotCache is a Valkey-backed catalog.SnapshotCache.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a snapshot cache with the given TTL.
// A zero ttl falls back to DefaultSnapshotTTL.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get retrieves the cached snapshot. Any error — unreachable server,
// corrupt payload — is a miss, never a failure.
func (c *SnapshotCache) Get(ctx context.Context) (*catalog.Snapshot, bool) {
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("snapshot cache get error", "error", err)
		return nil, false
	}
	var snap catalog.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		slog.Warn("snapshot cache decode error", "error", err)
		return nil, false
	}
	slog.Debug("snapshot cache hit",
		"categories", len(snap.Categories),
		"products", len(snap.Products),
	)
	return &snap, true
}

// Set stores a snapshot with the configured TTL. Errors are logged and
// swallowed; the in-memory copy keeps serving.
func (c *SnapshotCache) Set(ctx context.Context, snap *catalog.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		slog.Warn("snapshot cache encode error", "error", err)
		return
	}
	if err := c.client.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("snapshot cache set error", "error", err)
	}
}

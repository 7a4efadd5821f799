// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"glamora/internal/cache"
	"glamora/internal/catalog"
	"glamora/internal/config"
	"glamora/internal/handlers"
	"glamora/internal/router"
	"glamora/internal/whatsapp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}
	if err := cfg.RequireServe(); err != nil {
		slog.Error("incomplete configuration", "error", err)
		return err
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"catalog_dir", cfg.CatalogDir,
	)

	fsys := osfs.New(cfg.CatalogDir)
	loader := catalog.NewLoader(fsys, cfg.CatalogDir)

	// Connect to Valkey (shared snapshot cache). Optional: the in-memory
	// cache and direct loads cover a missing or unreachable Valkey.
	var shared catalog.SnapshotCache
	if cfg.ValkeyHost != "" {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, serving without shared cache", "error", err)
		} else {
			defer client.Close()
			shared = cache.NewSnapshotCache(client, cfg.CacheTTL)
		}
	}

	svc := catalog.NewService(loader, shared, cfg.CacheTTL)

	// Load once at startup so a broken catalog fails fast, not on the
	// first request.
	snap, err := svc.Snapshot(context.Background(), true)
	if err != nil {
		slog.Error("catalog failed to load", "error", err)
		return err
	}
	slog.Info("catalog loaded",
		"categories", len(snap.Categories),
		"products", len(snap.Products),
	)

	composer := whatsapp.NewComposer(cfg.WhatsAppNumber)

	// Create handler groups with their dependencies.
	catalogHandlers := handlers.NewCatalog(svc)
	assetHandlers := handlers.NewAssets(fsys)
	checkoutHandlers := handlers.NewCheckout(svc, composer)
	seoHandlers := handlers.NewSEO(svc, cfg.SiteURL)

	// Set up the Chi router with all middleware and routes.
	r := router.New(catalogHandlers, assetHandlers, checkoutHandlers, seoHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("server failed", "error", err)
		return err
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

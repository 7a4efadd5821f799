// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the glamora_kz storefront. It exposes
// two subcommands: serve (run the HTTP API) and validate (check the catalog
// tree and exit).
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glamora",
	Short: "Filesystem-backed bilingual cosmetics storefront",
	Long: "glamora serves a cosmetics catalog loaded from a directory tree of\n" +
		"JSON descriptors and product photos. The filesystem is the only source\n" +
		"of truth; there is no database.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	// Structured logger — outputs JSON in production, text in development.
	var handler slog.Handler
	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	slog.SetDefault(slog.New(handler))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

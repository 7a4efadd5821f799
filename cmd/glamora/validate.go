// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"glamora/internal/catalog"
	"glamora/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog tree and exit",
	Long: "validate loads the catalog directly from disk, bypassing every cache,\n" +
		"and reports schema violations, duplicate ids and slugs, and missing or\n" +
		"escaping image paths. Exit status is non-zero on the first error.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validate(cmd)
	},
}

func validate(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loader := catalog.NewLoader(osfs.New(cfg.CatalogDir), cfg.CatalogDir)
	snap, err := loader.Load(cmd.Context())
	if err != nil {
		var schemaErr *catalog.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid descriptor at %s:\n", schemaErr.File)
			for _, issue := range schemaErr.Issues {
				path := issue.Path
				if path == "" {
					path = "(root)"
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", path, issue.Message)
			}
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return err
		}
		return fmt.Errorf("catalog validation failed: %w", err)
	}

	productCount := make(map[string]int, len(snap.Categories))
	for _, p := range snap.Products {
		productCount[p.CategoryID]++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "catalog %q is valid\n", cfg.CatalogDir)
	fmt.Fprintf(cmd.OutOrStdout(), "  categories: %d\n", len(snap.Categories))
	fmt.Fprintf(cmd.OutOrStdout(), "  products:   %d\n", len(snap.Products))

	for _, loc := range catalog.Locales {
		for _, c := range catalog.SortCategories(snap.Categories, loc) {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s (%s): %d products\n",
				loc, c.Name[loc], c.Slug[loc], productCount[c.ID])
		}
	}

	for _, c := range snap.Categories {
		if productCount[c.ID] == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: category %q has no products\n", c.ID)
		}
	}

	return nil
}

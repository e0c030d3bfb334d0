package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/paintmytown/iconsmith/internal/generate"
	"github.com/paintmytown/iconsmith/internal/sheet"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a contact sheet of the icon set",
	Long:  "Sheet renders every icon and arranges the results in a single review image.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			format, _ := cmd.Flags().GetString("format")
			cfg.WithOverrides(map[string]any{"sheetFormat": format})
		}
		if cmd.Flags().Changed("columns") {
			cfg.Sheet.Columns, _ = cmd.Flags().GetInt("columns")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = "contact-sheet." + cfg.Sheet.Format
		}

		gen, err := generate.New(cfg, io.Discard)
		if err != nil {
			return err
		}

		img := sheet.Build(gen.Set(), gen.Render, sheet.Options{
			Columns: cfg.Sheet.Columns,
			Cell:    cfg.Sheet.Cell,
			Format:  cfg.Sheet.Format,
			Quality: cfg.Sheet.Quality,
		})

		if err := sheet.Save(img, out, cfg.Sheet.Format, cfg.Sheet.Quality); err != nil {
			return err
		}

		b := img.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "Contact sheet written: %s (%dx%d)\n", out, b.Dx(), b.Dy())
		return nil
	},
}

func init() {
	sheetCmd.Flags().StringP("output", "o", "", "output file (default contact-sheet.<format>)")
	sheetCmd.Flags().String("format", "", "sheet format: png or webp")
	sheetCmd.Flags().Int("columns", 0, "cells per row")

	rootCmd.AddCommand(sheetCmd)
}

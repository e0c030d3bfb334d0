package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paintmytown/iconsmith/internal/config"
	"github.com/paintmytown/iconsmith/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full icon set",
	Long:  "Generate renders every icon of the size table into the asset-catalog directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		overrides := map[string]any{}
		if cmd.Flags().Changed("output") {
			dir, _ := cmd.Flags().GetString("output")
			overrides["outputDir"] = dir
		}
		if cmd.Flags().Changed("manifest") {
			b, _ := cmd.Flags().GetBool("manifest")
			overrides["manifest"] = b
		}
		if cmd.Flags().Changed("glyph") {
			s, _ := cmd.Flags().GetString("glyph")
			overrides["glyph"] = s
		}
		if noGlyph, _ := cmd.Flags().GetBool("no-glyph"); noGlyph {
			overrides["noGlyph"] = true
		}
		cfg.WithOverrides(overrides)

		gen, err := generate.New(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generating app icons\nOutput directory: %s\n\n", cfg.Output.Dir)

		result, err := gen.Run()
		if errors.Is(err, generate.ErrMissingOutputDir) {
			return fmt.Errorf("%w\nCreate the asset catalog first, or point --output at an existing directory", err)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nAll %d icons generated in %s\n",
			result.Icons, result.Duration.Round(time.Millisecond))
		return nil
	},
}

// loadConfig reads the config file named by the root --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "override output directory")
	generateCmd.Flags().Bool("manifest", false, "also write Contents.json")
	generateCmd.Flags().String("glyph", "", "override glyph letter")
	generateCmd.Flags().Bool("no-glyph", false, "skip glyph rendering")

	rootCmd.AddCommand(generateCmd)
}

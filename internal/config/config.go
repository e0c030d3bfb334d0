// Package config handles loading, validating, and managing configuration
// for the iconsmith placeholder icon generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for iconsmith. Every field has a
// working default: the tool runs with no config file and no flags.
type Config struct {
	Output   OutputConfig   `yaml:"output"   mapstructure:"output"`
	Gradient GradientConfig `yaml:"gradient" mapstructure:"gradient"`
	Glyph    GlyphConfig    `yaml:"glyph"    mapstructure:"glyph"`
	Brush    BrushConfig    `yaml:"brush"    mapstructure:"brush"`
	Preview  PreviewConfig  `yaml:"preview"  mapstructure:"preview"`
	Sheet    SheetConfig    `yaml:"sheet"    mapstructure:"sheet"`
	Publish  PublishConfig  `yaml:"publish"  mapstructure:"publish"`
}

// OutputConfig controls where the icon set is written.
type OutputConfig struct {
	Dir      string `yaml:"dir"      mapstructure:"dir"`
	Manifest bool   `yaml:"manifest" mapstructure:"manifest"`
}

// GradientConfig holds the background gradient endpoint colors as hex
// strings.
type GradientConfig struct {
	Start string `yaml:"start" mapstructure:"start"`
	End   string `yaml:"end"   mapstructure:"end"`
}

// GlyphConfig controls the letter glyph drawn on the larger icons.
type GlyphConfig struct {
	Text    string   `yaml:"text"    mapstructure:"text"`
	Enabled bool     `yaml:"enabled" mapstructure:"enabled"`
	MinSize int      `yaml:"minSize" mapstructure:"minSize"`
	Fonts   []string `yaml:"fonts"   mapstructure:"fonts"`
}

// BrushConfig controls the brush mark.
type BrushConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// PreviewConfig controls the local preview server.
type PreviewConfig struct {
	Port       int    `yaml:"port"       mapstructure:"port"`
	Host       string `yaml:"host"       mapstructure:"host"`
	LiveReload bool   `yaml:"livereload" mapstructure:"livereload"`
}

// SheetConfig controls contact sheet generation.
type SheetConfig struct {
	Columns int    `yaml:"columns" mapstructure:"columns"`
	Cell    int    `yaml:"cell"    mapstructure:"cell"`
	Format  string `yaml:"format"  mapstructure:"format"`
	Quality int    `yaml:"quality" mapstructure:"quality"`
}

// PublishConfig holds the S3 upload target.
type PublishConfig struct {
	Bucket string `yaml:"bucket" mapstructure:"bucket"`
	Region string `yaml:"region" mapstructure:"region"`
	Prefix string `yaml:"prefix" mapstructure:"prefix"`
}

// Default returns a Config populated with the stock placeholder design and
// the conventional asset-catalog output path.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: filepath.Join("PaintMyTown", "Assets.xcassets", "AppIcon.appiconset"),
		},
		Gradient: GradientConfig{
			Start: "#3498DB",
			End:   "#9333EA",
		},
		Glyph: GlyphConfig{
			Text:    "P",
			Enabled: true,
			MinSize: 120,
		},
		Brush: BrushConfig{
			Enabled: true,
		},
		Preview: PreviewConfig{
			Port:       4747,
			Host:       "localhost",
			LiveReload: true,
		},
		Sheet: SheetConfig{
			Columns: 6,
			Cell:    128,
			Format:  "png",
			Quality: 90,
		},
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and
// returns a Config with defaults applied first and file values overlaid on
// top. A missing config file is not an error: the defaults apply.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()

	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		// Default to yaml if unrecognised.
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the Config for common errors.
// It returns a descriptive error if:
//   - either gradient endpoint is not a hex color
//   - the glyph threshold is not positive
//   - the sheet format is not png or webp
func (c *Config) Validate() error {
	if !isHexColor(c.Gradient.Start) {
		return fmt.Errorf("config: gradient.start must be a hex color (got %q)", c.Gradient.Start)
	}
	if !isHexColor(c.Gradient.End) {
		return fmt.Errorf("config: gradient.end must be a hex color (got %q)", c.Gradient.End)
	}
	if c.Glyph.MinSize <= 0 {
		return fmt.Errorf("config: glyph.minSize must be positive (got %d)", c.Glyph.MinSize)
	}
	if c.Sheet.Format != "png" && c.Sheet.Format != "webp" {
		return fmt.Errorf("config: sheet.format must be png or webp (got %q)", c.Sheet.Format)
	}
	if c.Sheet.Columns <= 0 {
		return fmt.Errorf("config: sheet.columns must be positive (got %d)", c.Sheet.Columns)
	}
	return nil
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is
// returned for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "outputDir":
			if s, ok := val.(string); ok {
				c.Output.Dir = s
			}
		case "manifest":
			if b, ok := val.(bool); ok {
				c.Output.Manifest = b
			}
		case "glyph":
			if s, ok := val.(string); ok {
				c.Glyph.Text = s
			}
		case "noGlyph":
			if b, ok := val.(bool); ok && b {
				c.Glyph.Enabled = false
			}
		case "port":
			if n, ok := val.(int); ok {
				c.Preview.Port = n
			}
		case "host":
			if s, ok := val.(string); ok {
				c.Preview.Host = s
			}
		case "livereload":
			if b, ok := val.(bool); ok {
				c.Preview.LiveReload = b
			}
		case "sheetFormat":
			if s, ok := val.(string); ok {
				c.Sheet.Format = s
			}
		case "bucket":
			if s, ok := val.(string); ok {
				c.Publish.Bucket = s
			}
		case "prefix":
			if s, ok := val.(string); ok {
				c.Publish.Prefix = s
			}
		}
	}
	return c
}

// isHexColor reports whether s looks like a "#RRGGBB" or "RRGGBB" color.
func isHexColor(s string) bool {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Package generate drives the icon batch: it renders every entry of the
// size table and writes the resulting PNGs into the asset-catalog directory.
package generate

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paintmytown/iconsmith/internal/config"
	"github.com/paintmytown/iconsmith/internal/icon"
)

// ErrMissingOutputDir is returned when the output directory does not exist.
// The directory is managed outside this tool (it belongs to the Xcode
// project); it is never created here.
var ErrMissingOutputDir = errors.New("output directory not found")

// Generator renders and writes the full icon set. A single run is strictly
// sequential: each canvas is rendered, encoded, and released before the
// next entry starts.
type Generator struct {
	cfg      *config.Config
	renderer *icon.Renderer
	set      []icon.Entry
	out      io.Writer
}

// Result summarises a completed run.
type Result struct {
	Dir      string
	Icons    int
	Duration time.Duration
}

// New creates a Generator for the default size table. Progress messages are
// written to out.
func New(cfg *config.Config, out io.Writer) (*Generator, error) {
	renderer, err := icon.NewRenderer(renderOptions(cfg))
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:      cfg,
		renderer: renderer,
		set:      icon.DefaultSet,
		out:      out,
	}, nil
}

// Run generates every icon in the set. It fails fast: the first render or
// write error aborts the batch, and a missing output directory aborts it
// before any file is written.
func (g *Generator) Run() (*Result, error) {
	start := time.Now()

	dir := g.cfg.Output.Dir
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingOutputDir, dir)
	}

	for _, entry := range g.set {
		img := g.renderer.Render(entry.Pixels)
		path := filepath.Join(dir, entry.Name)
		if err := writePNG(path, img); err != nil {
			return nil, fmt.Errorf("writing %s: %w", entry.Name, err)
		}
		fmt.Fprintf(g.out, "✓ Created %s (%dx%d)\n", entry.Name, entry.Pixels, entry.Pixels)
	}

	if g.cfg.Output.Manifest {
		if err := WriteManifest(dir, g.set); err != nil {
			return nil, fmt.Errorf("writing manifest: %w", err)
		}
		fmt.Fprintf(g.out, "✓ Created Contents.json\n")
	}

	return &Result{
		Dir:      dir,
		Icons:    len(g.set),
		Duration: time.Since(start),
	}, nil
}

// Set returns the size table this generator renders.
func (g *Generator) Set() []icon.Entry {
	return g.set
}

// Render draws a single icon without writing it. Used by the contact sheet
// and the preview gallery.
func (g *Generator) Render(size int) *image.NRGBA {
	return g.renderer.Render(size)
}

// renderOptions maps the user-facing configuration onto renderer options.
func renderOptions(cfg *config.Config) icon.Options {
	opts := icon.DefaultOptions()
	opts.GradientStart = cfg.Gradient.Start
	opts.GradientEnd = cfg.Gradient.End
	opts.Brush = cfg.Brush.Enabled
	opts.GlyphMinSize = cfg.Glyph.MinSize
	if len(cfg.Glyph.Fonts) > 0 {
		opts.FontPaths = cfg.Glyph.Fonts
	}
	if cfg.Glyph.Enabled {
		opts.Glyph = cfg.Glyph.Text
	} else {
		opts.Glyph = ""
	}
	return opts
}

// writePNG encodes img to path with best compression.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

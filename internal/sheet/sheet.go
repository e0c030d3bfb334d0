// Package sheet composes all icons of a set into a single contact-sheet
// image for quick review.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"

	"github.com/paintmytown/iconsmith/internal/icon"
)

// Options controls the contact sheet layout and encoding.
type Options struct {
	Columns int    // cells per row
	Cell    int    // cell edge length in pixels
	Format  string // "png" or "webp"
	Quality int    // webp quality
}

// RenderFunc renders one icon at the given edge length.
type RenderFunc func(size int) *image.NRGBA

// Build renders every entry of the set and arranges the results in a grid.
// Each icon is scaled to the uniform cell size with Lanczos resampling, so
// small and large table entries compare side by side.
func Build(set []icon.Entry, render RenderFunc, opts Options) *image.NRGBA {
	const pad = 16

	cols := opts.Columns
	rows := (len(set) + cols - 1) / cols

	width := cols*opts.Cell + (cols+1)*pad
	height := rows*opts.Cell + (rows+1)*pad
	canvas := imaging.New(width, height, color.NRGBA{R: 24, G: 24, B: 28, A: 255})

	for i, e := range set {
		cell := imaging.Resize(render(e.Pixels), opts.Cell, opts.Cell, imaging.Lanczos)
		x := pad + (i%cols)*(opts.Cell+pad)
		y := pad + (i/cols)*(opts.Cell+pad)
		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}

	return canvas
}

// Save encodes the sheet to path in the requested format.
func Save(img image.Image, path, format string, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "webp":
		if err := webp.Encode(f, img, webp.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encoding webp: %w", err)
		}
	case "png":
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	default:
		return fmt.Errorf("unsupported sheet format %q", format)
	}
	return f.Close()
}

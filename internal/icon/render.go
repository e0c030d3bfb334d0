package icon

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer draws a single square placeholder icon: gradient background,
// brush mark, and (on sizes at or above the glyph threshold) a letter glyph.
type Renderer struct {
	start     color.NRGBA
	end       color.NRGBA
	glyph     string
	glyphMin  int
	fontPaths []string
	brush     bool
}

// Options configures a Renderer. Zero-value colors are not valid; use
// DefaultOptions as a starting point.
type Options struct {
	GradientStart string   // hex color, e.g. "#3498DB"
	GradientEnd   string   // hex color, e.g. "#9333EA"
	Glyph         string   // letter drawn on large icons; empty disables
	GlyphMinSize  int      // smallest edge length that gets the glyph
	FontPaths     []string // candidate fonts, first usable wins
	Brush         bool     // draw the brush handle and tip
}

// DefaultOptions returns the stock placeholder design: blue-to-purple
// gradient, white brush, and a "P" glyph on icons 120px and larger.
func DefaultOptions() Options {
	return Options{
		GradientStart: "#3498DB",
		GradientEnd:   "#9333EA",
		Glyph:         "P",
		GlyphMinSize:  120,
		FontPaths:     DefaultFontPaths,
		Brush:         true,
	}
}

// NewRenderer creates a Renderer from the given options. It returns an
// error if either gradient color fails to parse.
func NewRenderer(opts Options) (*Renderer, error) {
	start, err := parseHexColor(opts.GradientStart)
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}
	end, err := parseHexColor(opts.GradientEnd)
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}
	fonts := opts.FontPaths
	if fonts == nil {
		fonts = DefaultFontPaths
	}
	return &Renderer{
		start:     start,
		end:       end,
		glyph:     opts.Glyph,
		glyphMin:  opts.GlyphMinSize,
		fontPaths: fonts,
		brush:     opts.Brush,
	}, nil
}

// Render draws one icon of the given edge length and returns the canvas.
// The glyph step is best-effort: if no candidate font is available the icon
// is returned without it.
func (r *Renderer) Render(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	r.fillGradient(img, size)

	if r.brush {
		r.drawBrush(img, size)
	}

	if r.glyph != "" && size >= r.glyphMin {
		r.drawGlyph(img, size)
	}

	return img
}

// fillGradient paints a vertical linear gradient from the start color at
// the top row to the end color at the bottom. Every pixel of a row gets the
// same color.
func (r *Renderer) fillGradient(img *image.NRGBA, size int) {
	for y := 0; y < size; y++ {
		t := float64(y) / float64(size)
		c := color.NRGBA{
			R: lerp(r.start.R, r.end.R, t),
			G: lerp(r.start.G, r.end.G, t),
			B: lerp(r.start.B, r.end.B, t),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawBrush draws the paint brush: a diagonal white handle plus a filled
// white circle for the tip at the handle's lower end.
func (r *Renderer) drawBrush(img *image.NRGBA, size int) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	center := size / 2
	iconSize := int(math.Round(float64(size) * 0.5))

	x0 := center - iconSize/3
	y0 := center - iconSize/3
	x1 := center + iconSize/3
	y1 := center + iconSize/3

	width := size / 20
	if width < 2 {
		width = 2
	}
	drawLine(img, x0, y0, x1, y1, width, white)

	radius := iconSize / 4
	drawDisc(img, x1, y1, radius, white)
}

// drawGlyph renders the letter centred in the canvas with a small drop
// shadow. Any failure here is swallowed: the glyph is cosmetic and its
// absence must never abort generation.
func (r *Renderer) drawGlyph(img *image.NRGBA, size int) {
	defer func() {
		_ = recover() // a broken font must not take down the batch
	}()

	face, ok := ResolveFace(r.fontPaths, float64(size)*0.3)
	if !ok {
		return
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, r.glyph)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Dot is the baseline origin; offset it so the glyph's ink box is
	// centred, then nudged up slightly like the original design.
	left := (size - w) / 2
	top := (size-h)/2 - int(float64(size)*0.05)
	dot := fixed.Point26_6{
		X: fixed.I(left) - bounds.Min.X,
		Y: fixed.I(top) - bounds.Min.Y,
	}

	shadow := size / 100
	if shadow < 1 {
		shadow = 1
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{A: 128}),
		Face: face,
		Dot:  dot.Add(fixed.Point26_6{X: fixed.I(shadow), Y: fixed.I(shadow)}),
	}
	d.DrawString(r.glyph)

	d.Src = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	d.Dot = dot
	d.DrawString(r.glyph)
}

// lerp interpolates between two channel values, truncating toward zero.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + float64(int(b)-int(a))*t)
}

// drawLine rasterises a stroked line segment of the given width by filling
// every pixel within width/2 of the segment.
func drawLine(img *image.NRGBA, x0, y0, x1, y1, width int, c color.NRGBA) {
	half := float64(width) / 2

	minX := min(x0, x1) - width
	maxX := max(x0, x1) + width
	minY := min(y0, y1) - width
	maxY := max(y0, y1) + width

	b := img.Bounds()
	for y := max(minY, b.Min.Y); y <= min(maxY, b.Max.Y-1); y++ {
		for x := max(minX, b.Min.X); x <= min(maxX, b.Max.X-1); x++ {
			if segmentDistance(float64(x), float64(y), float64(x0), float64(y0), float64(x1), float64(y1)) <= half {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// drawDisc fills a circle of the given radius centred at (cx, cy).
func drawDisc(img *image.NRGBA, cx, cy, radius int, c color.NRGBA) {
	b := img.Bounds()
	for y := max(cy-radius, b.Min.Y); y <= min(cy+radius, b.Max.Y-1); y++ {
		for x := max(cx-radius, b.Min.X); x <= min(cx+radius, b.Max.X-1); x++ {
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// segmentDistance returns the distance from point (px, py) to the segment
// (x0, y0)-(x1, y1).
func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}

// parseHexColor parses a "#RRGGBB" or "RRGGBB" color string.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

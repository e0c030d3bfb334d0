package icon

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPaths are the candidate system fonts tried, in order, when
// rendering the glyph. None of them is required to exist.
var DefaultFontPaths = []string{
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
}

// ResolveFace loads a font face of the given pixel size from the first
// candidate path that exists and parses. It returns ok=false when no
// candidate is usable; that is an expected outcome, not an error.
func ResolveFace(candidates []string, sizePx float64) (font.Face, bool) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		sfnt, err := parseFont(path, data)
		if err != nil {
			continue
		}

		face, err := opentype.NewFace(sfnt, &opentype.FaceOptions{
			Size:    sizePx,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face, true
	}
	return nil, false
}

// parseFont parses a single font file. TrueType collections (.ttc) are
// handled by taking the first font in the collection.
func parseFont(path string, data []byte) (*opentype.Font, error) {
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	}
	return opentype.Parse(data)
}

package sheet

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/paintmytown/iconsmith/internal/icon"
)

// flatRender returns a uniform test canvas of the requested size.
func flatRender(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func testSet(n int) []icon.Entry {
	set := make([]icon.Entry, n)
	for i := range set {
		set[i] = icon.Entry{Name: "x.png", Pixels: 20 + i}
	}
	return set
}

func TestBuild_Dimensions(t *testing.T) {
	tests := []struct {
		icons, cols, cell  int
		wantCols, wantRows int
	}{
		{18, 6, 128, 6, 3},
		{18, 4, 64, 4, 5},
		{1, 6, 128, 6, 1},
	}
	const pad = 16

	for _, tt := range tests {
		sheet := Build(testSet(tt.icons), flatRender, Options{
			Columns: tt.cols,
			Cell:    tt.cell,
		})
		wantW := tt.wantCols*tt.cell + (tt.wantCols+1)*pad
		wantH := tt.wantRows*tt.cell + (tt.wantRows+1)*pad
		b := sheet.Bounds()
		if b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("%d icons / %d cols: %dx%d; want %dx%d",
				tt.icons, tt.cols, b.Dx(), b.Dy(), wantW, wantH)
		}
	}
}

func TestBuild_CellsPasted(t *testing.T) {
	sheet := Build(testSet(2), flatRender, Options{Columns: 6, Cell: 64})

	// Center of the first cell carries icon pixels, not background.
	// Resampling may shift channels by a unit.
	cellCenter := sheet.NRGBAAt(16+32, 16+32)
	if cellCenter.R < 198 || cellCenter.R > 202 {
		t.Errorf("first cell center = %v; want icon color", cellCenter)
	}

	// Top-left corner is still background.
	corner := sheet.NRGBAAt(0, 0)
	if corner.R != 24 || corner.G != 24 || corner.B != 28 {
		t.Errorf("corner = %v; want background", corner)
	}
}

func TestSave_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	img := flatRender(40)

	if err := Save(img, path, "png", 90); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if decoded.Bounds().Dx() != 40 {
		t.Errorf("width = %d; want 40", decoded.Bounds().Dx())
	}
}

func TestSave_WebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.webp")
	if err := Save(flatRender(40), path, "webp", 90); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("webp file is empty")
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.gif")
	if err := Save(flatRender(40), path, "gif", 90); err == nil {
		t.Error("expected error for unsupported format")
	}
}

package generate

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paintmytown/iconsmith/internal/config"
	"github.com/paintmytown/iconsmith/internal/icon"
)

// testConfig returns a config pointing at a fresh, existing output dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	// Keep tests host-independent: never pick up a real system font.
	cfg.Glyph.Fonts = []string{filepath.Join(t.TempDir(), "missing.ttf")}
	return cfg
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	gen, err := New(cfg, &out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := gen.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Icons != 18 {
		t.Errorf("icons = %d; want 18", result.Icons)
	}

	// Exactly the 18 table files exist, each with exact dimensions.
	entries, err := os.ReadDir(cfg.Output.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 18 {
		t.Errorf("files written = %d; want 18", len(entries))
	}

	for _, e := range icon.DefaultSet {
		path := filepath.Join(cfg.Output.Dir, e.Name)
		f, err := os.Open(path)
		if err != nil {
			t.Errorf("missing %s: %v", e.Name, err)
			continue
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("decoding %s: %v", e.Name, err)
			continue
		}
		b := img.Bounds()
		if b.Dx() != e.Pixels || b.Dy() != e.Pixels {
			t.Errorf("%s: %dx%d; want %dx%d", e.Name, b.Dx(), b.Dy(), e.Pixels, e.Pixels)
		}
	}

	// One confirmation line per icon.
	for _, e := range icon.DefaultSet {
		if !strings.Contains(out.String(), e.Name) {
			t.Errorf("output missing confirmation for %s", e.Name)
		}
	}
}

func TestRun_MissingOutputDir(t *testing.T) {
	cfg := testConfig(t)
	base := t.TempDir()
	cfg.Output.Dir = filepath.Join(base, "does-not-exist")

	gen, err := New(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = gen.Run()
	if !errors.Is(err, ErrMissingOutputDir) {
		t.Fatalf("err = %v; want ErrMissingOutputDir", err)
	}

	// Nothing may have been written anywhere under the base.
	entries, readErr := os.ReadDir(base)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("expected zero files, found %d", len(entries))
	}
}

func TestRun_OutputDirIsFile(t *testing.T) {
	cfg := testConfig(t)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Output.Dir = file

	gen, err := New(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Run(); !errors.Is(err, ErrMissingOutputDir) {
		t.Fatalf("err = %v; want ErrMissingOutputDir", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	gen, err := New(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := gen.Run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := gen.Run(); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// Dimensions identical after the second run.
	for _, e := range icon.DefaultSet {
		f, err := os.Open(filepath.Join(cfg.Output.Dir, e.Name))
		if err != nil {
			t.Fatal(err)
		}
		cfgImg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if cfgImg.Width != e.Pixels || cfgImg.Height != e.Pixels {
			t.Errorf("%s: %dx%d; want %dx%d", e.Name, cfgImg.Width, cfgImg.Height, e.Pixels, e.Pixels)
		}
	}
}

func TestRun_WithManifest(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Manifest = true

	gen, err := New(cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "Contents.json"))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}

	var m struct {
		Images []struct {
			Filename string `json:"filename"`
			Idiom    string `json:"idiom"`
			Scale    string `json:"scale"`
			Size     string `json:"size"`
		} `json:"images"`
		Info struct {
			Version int `json:"version"`
		} `json:"info"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("parsing manifest: %v", err)
	}
	if len(m.Images) != 18 {
		t.Errorf("manifest images = %d; want 18", len(m.Images))
	}
	if m.Info.Version != 1 {
		t.Errorf("manifest version = %d; want 1", m.Info.Version)
	}

	// Spot-check the marketing entry.
	var found bool
	for _, img := range m.Images {
		if img.Filename == "icon-1024.png" {
			found = true
			if img.Idiom != "ios-marketing" || img.Size != "1024x1024" || img.Scale != "1x" {
				t.Errorf("marketing entry = %+v", img)
			}
		}
	}
	if !found {
		t.Error("manifest missing icon-1024.png")
	}
}

func TestNew_InvalidGradient(t *testing.T) {
	cfg := testConfig(t)
	cfg.Gradient.Start = "not-a-color"
	if _, err := New(cfg, &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid gradient color")
	}
}

func TestRenderOptions_GlyphDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Glyph.Enabled = false
	cfg.Glyph.Text = "P"

	opts := renderOptions(cfg)
	if opts.Glyph != "" {
		t.Errorf("glyph = %q; want empty when disabled", opts.Glyph)
	}
}

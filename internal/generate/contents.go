package generate

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/paintmytown/iconsmith/internal/icon"
)

// manifestName is the asset-catalog index filename Xcode expects.
const manifestName = "Contents.json"

type manifest struct {
	Images []manifestImage `json:"images"`
	Info   manifestInfo    `json:"info"`
}

type manifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type manifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// WriteManifest writes the Contents.json asset-catalog index for the given
// icon set into dir.
func WriteManifest(dir string, set []icon.Entry) error {
	m := manifest{
		Info: manifestInfo{Author: "iconsmith", Version: 1},
	}
	for _, e := range set {
		m.Images = append(m.Images, manifestImage{
			Filename: e.Name,
			Idiom:    e.Idiom,
			Scale:    e.Scale,
			Size:     e.Size,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, manifestName), data, 0o644)
}

package raster

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a parsed font file. It is safe for concurrent use; faces created
// from it are not.
type Font struct {
	Name string
	ft   *font.Font
}

// ParseFont parses TrueType or OpenType data, taking the first font of a collection.
func ParseFont(name string, data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		faces, cerr := font.ParseTTC(bytes.NewReader(data))
		if cerr != nil || len(faces) == 0 {
			return nil, fmt.Errorf("parse font %s: %w", name, err)
		}
		face = faces[0]
	}
	return &Font{Name: name, ft: face.Font}, nil
}

// LoadFont reads and parses the font file at path.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFont(filepath.Base(path), data)
}

// LoadFonts loads every path in order. An empty list yields DefaultFonts.
func LoadFonts(paths []string) ([]*Font, error) {
	if len(paths) == 0 {
		return DefaultFonts()
	}
	fonts := make([]*Font, 0, len(paths))
	for _, p := range paths {
		f, err := LoadFont(p)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}
	return fonts, nil
}

// DefaultFonts returns the embedded sans-serif fallback.
func DefaultFonts() ([]*Font, error) {
	f, err := ParseFont("Go Regular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	return []*Font{f}, nil
}

// FontSize returns the pixel size used for a screen of the given height.
func FontSize(screenHeight int) float64 {
	return float64(screenHeight) / FontScale
}

// face returns a fresh face; the shaper caches per-face state.
func (f *Font) face() *font.Face {
	return font.NewFace(f.ft)
}

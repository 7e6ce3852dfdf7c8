// Package render produces fixed-size social preview card images. It builds a
// logical layout tree from resolved metadata, serializes it to SVG, and
// rasterizes to JPEG at the 1200×630 Open Graph canvas.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects one of the two card faces.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// FontSet holds the parsed card fonts. It is built once at process start and
// never mutated afterward, so any number of in-flight renders may share it.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// LoadFonts builds a FontSet from regular.ttf and bold.ttf in dir. Missing
// files fall back to the embedded Go fonts, which keeps rendering
// self-contained; an unreadable or corrupt font file is fatal.
func LoadFonts(dir string) (*FontSet, error) {
	var regular, bold []byte
	if dir != "" {
		var err error
		if regular, err = readFont(filepath.Join(dir, "regular.ttf")); err != nil {
			return nil, err
		}
		if bold, err = readFont(filepath.Join(dir, "bold.ttf")); err != nil {
			return nil, err
		}
	}
	return NewFontSet(regular, bold)
}

// readFont returns nil without error when the file does not exist; the
// embedded fonts cover that case. Any other failure surfaces as-is.
func readFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("render: read font %s: %w", path, err)
	}
	return data, nil
}

// NewFontSet parses raw TTF/OTF bytes. Empty slices select the embedded Go
// fonts. Corrupt font data is a packaging defect and fails construction.
func NewFontSet(regular, bold []byte) (*FontSet, error) {
	if len(regular) == 0 {
		regular = goregular.TTF
	}
	if len(bold) == 0 {
		bold = gobold.TTF
	}
	r, err := opentype.Parse(regular)
	if err != nil {
		return nil, fmt.Errorf("render: parse regular font: %w", err)
	}
	b, err := opentype.Parse(bold)
	if err != nil {
		return nil, fmt.Errorf("render: parse bold font: %w", err)
	}
	return &FontSet{regular: r, bold: b}, nil
}

// Face creates a font.Face at the given size. Faces carry internal
// rasterization buffers and are not safe for concurrent use, so every render
// gets fresh ones; the parsed fonts behind them are shared read-only.
func (fs *FontSet) Face(w Weight, size float64) (font.Face, error) {
	src := fs.regular
	if w == Bold {
		src = fs.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create font face: %w", err)
	}
	return face, nil
}

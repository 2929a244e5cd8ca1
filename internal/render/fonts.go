package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/julianstephens/yeargrid/internal/layout"
	"github.com/julianstephens/yeargrid/internal/logger"
)

// pixel sizes per role
var roleSizes = map[layout.FontRole]float64{
	layout.FontBig:   72,
	layout.FontMid:   28,
	layout.FontSmall: 22,
	layout.FontMonth: 24,
}

// FontSet holds one face per font role.
type FontSet struct {
	faces map[layout.FontRole]font.Face
}

// LoadFontSet loads path (TTF/OTF) for every role. If path is empty or
// unusable it falls back to the embedded Go Regular font, and from there to
// the fixed 7x13 bitmap face. It never fails.
func LoadFontSet(path string) *FontSet {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var fs *FontSet
			fs, err = newFontSet(data)
			if err == nil {
				return fs
			}
		}
		logger.Warn("Font unavailable, using default", "path", path, "error", err)
	}

	fs, err := newFontSet(goregular.TTF)
	if err != nil {
		logger.Warn("Embedded font unusable, using bitmap face", "error", err)
		return basicFontSet()
	}
	return fs
}

func newFontSet(data []byte) (*FontSet, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	fs := &FontSet{faces: make(map[layout.FontRole]font.Face, len(roleSizes))}
	for role, size := range roleSizes {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72, // 1pt == 1px
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s face: %w", role, err)
		}
		fs.faces[role] = face
	}
	return fs, nil
}

func basicFontSet() *FontSet {
	fs := &FontSet{faces: make(map[layout.FontRole]font.Face, len(roleSizes))}
	for role := range roleSizes {
		fs.faces[role] = basicfont.Face7x13
	}
	return fs
}

// Face returns the face for role, falling back to the mid face.
func (fs *FontSet) Face(role layout.FontRole) font.Face {
	if f, ok := fs.faces[role]; ok {
		return f
	}
	return fs.faces[layout.FontMid]
}

// TextWidth implements layout.Measurer.
func (fs *FontSet) TextWidth(role layout.FontRole, s string) int {
	return font.MeasureString(fs.Face(role), s).Ceil()
}

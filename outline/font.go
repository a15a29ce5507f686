// seehuhn.de/go/gangsheet - print-ready sticker sheets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package outline

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Font is a TrueType or OpenType font, prepared for converting text
// into glyph outlines.
//
// A Font can be used concurrently from different goroutines.
type Font struct {
	info   *sfnt.Font
	lookup func(rune) glyph.ID
	boxes  []funit.Rect16

	mu       sync.Mutex
	layouter *sfnt.Layouter
}

// FontOptions control how text is laid out.
type FontOptions struct {
	// Language selects language specific glyph substitutions.
	Language language.Tag

	// GsubFeatures and GposFeatures select OpenType features.
	// If nil, the defaults of the layout engine are used.
	GsubFeatures map[string]bool
	GposFeatures map[string]bool
}

var errNoOutlines = errors.New("font has no glyph outlines")

// LoadFont reads a TrueType or OpenType font file.
func LoadFont(fname string, opt *FontOptions) (*Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", fname, err)
	}
	F, err := NewFont(info, opt)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", fname, err)
	}
	return F, nil
}

// ParseFont decodes a TrueType or OpenType font from memory.
func ParseFont(data []byte, opt *FontOptions) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewFont(info, opt)
}

// NewFont prepares an already decoded font for outline extraction.
func NewFont(info *sfnt.Font, opt *FontOptions) (*Font, error) {
	if info.Outlines == nil {
		return nil, errNoOutlines
	}
	if opt == nil {
		opt = &FontOptions{Language: language.English}
	}

	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("no usable cmap: %w", err)
	}
	layouter, err := info.NewLayouter(opt.Language, opt.GsubFeatures, opt.GposFeatures)
	if err != nil {
		return nil, err
	}

	F := &Font{
		info:     info,
		lookup:   subtable.Lookup,
		boxes:    info.GlyphBBoxes(),
		layouter: layouter,
	}
	return F, nil
}

// Name returns the family name of the font.
func (f *Font) Name() string {
	return f.info.FamilyName
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Font) HasGlyph(r rune) bool {
	return f.lookup(r) != 0
}

// Missing returns the characters of s which are not covered by the font.
// Spaces are ignored.
func (f *Font) Missing(s string) []rune {
	var res []rune
	seen := make(map[rune]bool)
	for _, r := range s {
		if r == ' ' || seen[r] {
			continue
		}
		seen[r] = true
		if !f.HasGlyph(r) {
			res = append(res, r)
		}
	}
	return res
}

// positioned is a glyph together with its origin in text space,
// in font design units.
type positioned struct {
	gid  glyph.ID
	x, y float64
}

// layout converts s into a sequence of positioned glyphs.
func (f *Font) layout(s string) []positioned {
	f.mu.Lock()
	buf := f.layouter.Layout(s)
	res := make([]positioned, 0, len(buf))
	var x float64
	for _, g := range buf {
		res = append(res, positioned{
			gid: g.GID,
			x:   x + float64(g.XOffset),
			y:   float64(g.YOffset),
		})
		x += float64(g.Advance)
	}
	f.mu.Unlock()
	return res
}

// isBlank reports whether a glyph has no ink, like the glyph for a space.
func (f *Font) isBlank(gid glyph.ID) bool {
	if int(gid) >= len(f.boxes) {
		return false
	}
	b := f.boxes[gid]
	return b.LLx >= b.URx || b.LLy >= b.URy
}

// glyphPath returns the outline of a glyph, in font design units.
func (f *Font) glyphPath(gid glyph.ID) path.Path {
	return f.info.Outlines.Path(gid)
}

// scale returns the horizontal and vertical scale factors which map font
// design units to PDF points, for the given font size.
func (f *Font) scale(size float64) (float64, float64) {
	return size * f.info.FontMatrix[0], size * f.info.FontMatrix[3]
}

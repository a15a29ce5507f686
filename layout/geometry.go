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

// Package layout places sticker cells on fixed-size pages.
//
// All lengths are in PDF points (1/72 inch), with the origin in the lower
// left corner of the page.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// MM is the number of PDF points in one millimetre.
const MM = 72 / 25.4

// FromMM converts a length in millimetres to PDF points.
func FromMM(mm float64) float64 {
	return mm * MM
}

// ToMM converts a length in PDF points to millimetres.
func ToMM(pt float64) float64 {
	return pt / MM
}

// Paper is a paper size, in PDF points.
type Paper struct {
	Width, Height float64
}

// Standard paper sizes in portrait orientation.
var (
	A3     = Paper{Width: 841.890, Height: 1190.551}
	A4     = Paper{Width: 595.276, Height: 841.890}
	A5     = Paper{Width: 420.945, Height: 595.276}
	Letter = Paper{Width: 612, Height: 792}
	Legal  = Paper{Width: 612, Height: 1008}
)

var papers = map[string]Paper{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
	"legal":  Legal,
}

// PaperByName returns the paper size with the given name, for example
// "A4" or "letter".  Case is ignored.
func PaperByName(name string) (Paper, bool) {
	p, ok := papers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Landscape returns the paper size with width and height swapped, if
// needed, so that the paper is wider than tall.
func (p Paper) Landscape() Paper {
	if p.Width < p.Height {
		return Paper{Width: p.Height, Height: p.Width}
	}
	return p
}

// Geometry describes the usable area of a page.
type Geometry struct {
	// Width and Height give the page size.
	Width, Height float64

	// Margin is the minimal distance between any placed item and the edge
	// of the page.
	Margin float64

	// Gap is the spacing between neighbouring items, both within a row
	// and between rows.  The gap may be zero.
	Gap float64
}

// NewGeometry returns the page geometry for a paper size.
func NewGeometry(p Paper, margin, gap float64) Geometry {
	return Geometry{Width: p.Width, Height: p.Height, Margin: margin, Gap: gap}
}

// Validate checks that the geometry leaves a non-empty printable area.
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return errors.New("page size must be positive")
	case g.Margin < 0:
		return errors.New("margin must not be negative")
	case g.Gap < 0:
		return errors.New("gap must not be negative")
	case 2*g.Margin >= g.Width || 2*g.Margin >= g.Height:
		return fmt.Errorf("margin %.1fpt leaves no room on a %.1fx%.1fpt page",
			g.Margin, g.Width, g.Height)
	}
	return nil
}

// Printable returns the part of the page inside the margins.
func (g Geometry) Printable() rect.Rect {
	return rect.Rect{
		LLx: g.Margin,
		LLy: g.Margin,
		URx: g.Width - g.Margin,
		URy: g.Height - g.Margin,
	}
}

// MediaBox returns the full page as a rectangle.
func (g Geometry) MediaBox() rect.Rect {
	return rect.Rect{URx: g.Width, URy: g.Height}
}

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

// Package render draws sticker artwork onto PDF pages.
package render

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gangsheet/color"
	"seehuhn.de/go/gangsheet/document"
	"seehuhn.de/go/gangsheet/polygon"
)

// Style gives the colours used for drawing stickers.
type Style struct {
	// Ink is the colour of the glyphs.
	Ink color.Color

	// Halo is the colour of the background shape around the glyphs.
	Halo color.Color

	// HaloAlpha is the opacity of the background shape.
	HaloAlpha float64

	// CutGuides enables the drawing of a rectangle around each sticker
	// cell.
	CutGuides bool

	// Cut is the colour of the cut guides.
	Cut color.Color

	// CutLineWidth is the line width of the cut guides.  Zero selects
	// the thinnest line the output device can render.
	CutLineWidth float64
}

// DefaultStyle returns the style used when no configuration is given:
// dark ink, a faint white halo and magenta cut guides.
func DefaultStyle() *Style {
	return &Style{
		Ink:          color.CMYK(0, 0.09, 0.09, 0.87),
		Halo:         color.CMYK(0, 0, 0, 0),
		HaloAlpha:    0.03,
		CutGuides:    true,
		Cut:          color.CMYK(0, 1, 0, 0),
		CutLineWidth: 0.25,
	}
}

// Sticker draws one sticker.  Glyph and background are given in page
// coordinates, cell is the footprint of the sticker on the page.
//
// The cut guide is drawn first, followed by the background and the glyph.
func Sticker(page *document.Page, glyph, background polygon.Shape, cell rect.Rect, style *Style) {
	if style == nil {
		style = DefaultStyle()
	}

	if style.CutGuides {
		page.PushGraphicsState()
		page.SetStrokeColor(style.Cut)
		page.SetLineWidth(style.CutLineWidth)
		page.Rectangle(cell.LLx, cell.LLy, cell.URx-cell.LLx, cell.URy-cell.LLy)
		page.Stroke()
		page.PopGraphicsState()
	}

	if !background.IsEmpty() {
		page.PushGraphicsState()
		if style.HaloAlpha < 1 {
			page.SetFillAlpha(style.HaloAlpha)
		}
		page.SetFillColor(style.Halo)
		Shape(page, background)
		page.PopGraphicsState()
	}

	if !glyph.IsEmpty() {
		page.PushGraphicsState()
		page.SetFillColor(style.Ink)
		Shape(page, glyph)
		page.PopGraphicsState()
	}
}

// Shape fills a shape using the nonzero winding number rule.
// All contours of the shape are combined into a single path; this relies
// on the holes having the opposite orientation of the outer contours.
func Shape(page *document.Page, s polygon.Shape) {
	n := 0
	for _, c := range s.Contours() {
		if len(c) < 3 {
			continue
		}
		page.MoveTo(c[0].X, c[0].Y)
		for _, p := range c[1:] {
			page.LineTo(p.X, p.Y)
		}
		page.ClosePath()
		n++
	}
	if n > 0 {
		page.Fill()
	}
}

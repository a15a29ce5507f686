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

// Package sticker turns a glyph shape into sticker artwork: the glyph
// itself, surrounded by a background "halo" at a fixed distance, both
// centered in a cell of given size.
package sticker

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/polygon"
)

// Cell is the rectangular footprint of one sticker, in PDF points.
// The lower left corner of the cell is at the origin.
type Cell struct {
	W, H float64
}

// Rect returns the cell as a rectangle, shifted by (x, y).
func (c Cell) Rect(x, y float64) rect.Rect {
	return rect.Rect{LLx: x, LLy: y, URx: x + c.W, URy: y + c.H}
}

// Area returns the area of the cell.
func (c Cell) Area() float64 {
	return c.W * c.H
}

// Design is the artwork for one sticker, in cell coordinates.
type Design struct {
	Glyph      polygon.Shape
	Background polygon.Shape
	Cell       Cell
}

// Options control the construction of the background shape.
type Options struct {
	// QuadrantSegments is the number of line segments used to approximate
	// a quarter circle of the round joins.  At least
	// polygon.MinQuadrantSegments segments are always used.
	QuadrantSegments int
}

// OffsetAndCenter builds the sticker artwork for a glyph shape.
//
// The background is the set of points within distance offset of the
// glyph.  For offset <= 0 the background is the glyph itself.  Both shapes
// are then translated by the same vector, so that the bounding box of the
// background is centered in the cell.  The cell dimensions are used as
// given, a zero-sized cell centers the design at the origin.
//
// The options can be nil, in which case default values are used.
func OffsetAndCenter(glyph polygon.Shape, offset, cellW, cellH float64, opt *Options) *Design {
	bg := glyph
	if offset > 0 {
		var o *polygon.OffsetOptions
		if opt != nil {
			o = &polygon.OffsetOptions{QuadrantSegments: opt.QuadrantSegments}
		}
		bg = polygon.Offset(glyph, offset, o)
	}

	b := bg.Bounds()
	d := vec.Vec2{
		X: cellW/2 - (b.LLx+b.URx)/2,
		Y: cellH/2 - (b.LLy+b.URy)/2,
	}
	return &Design{
		Glyph:      glyph.Translate(d),
		Background: bg.Translate(d),
		Cell:       Cell{W: cellW, H: cellH},
	}
}

// Overflow returns how far the background extends beyond the cell on the
// worst side.  The result is zero if the background fits into the cell.
func (d *Design) Overflow() float64 {
	b := d.Background.Bounds()
	return max(0, -b.LLx, -b.LLy, b.URx-d.Cell.W, b.URy-d.Cell.H)
}

// Coverage returns the fraction of the cell area covered by the background.
func (d *Design) Coverage() float64 {
	a := d.Cell.Area()
	if a <= 0 {
		return 0
	}
	return d.Background.Area() / a
}

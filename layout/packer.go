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

package layout

import (
	"errors"
	"fmt"
)

// ErrOversized is returned by [Packer.PlaceChecked] for items which are
// larger than the printable area of a page.
var ErrOversized = errors.New("item larger than printable area")

// Cursor is the mutable state of a [Packer].
type Cursor struct {
	// X is the left edge of the next item in the current row.
	X float64

	// Y is the top edge of the current row.
	Y float64

	// RowHeight is the height of the tallest item in the current row.
	RowHeight float64

	// Pages is the number of pages started so far.
	Pages int
}

// Placement gives the position of one item.
type Placement struct {
	// Page is the zero-based page index.
	Page int

	// X and Y give the lower left corner of the item on the page.
	X, Y float64
}

// Packer places rectangular items on pages, in rows from the top left
// to the bottom right.  Items are never moved once placed.
//
// A Packer must not be used concurrently from different goroutines.
type Packer struct {
	geom Geometry
	cur  Cursor
}

// NewPacker returns a packer positioned at the top left corner of the
// printable area of the first page.
func NewPacker(g Geometry) *Packer {
	return &Packer{
		geom: g,
		cur: Cursor{
			X:     g.Margin,
			Y:     g.Height - g.Margin,
			Pages: 1,
		},
	}
}

// Geometry returns the page geometry used by the packer.
func (p *Packer) Geometry() Geometry {
	return p.geom
}

// Cursor returns a copy of the current packer state.
func (p *Packer) Cursor() Cursor {
	return p.cur
}

// Pages returns the number of pages used so far.
func (p *Packer) Pages() int {
	return p.cur.Pages
}

// Place reserves space for an item of size w×h and returns its position.
//
// If the item does not fit into the rest of the current row, a new row is
// started.  If it does not fit below the current row, a new page is
// started.  Items larger than the printable area are placed anyway and
// extend into the margin; use [Packer.PlaceChecked] to reject them.
func (p *Packer) Place(w, h float64) Placement {
	g := &p.geom
	c := &p.cur

	if c.X+w > g.Width-g.Margin {
		c.X = g.Margin
		c.Y -= c.RowHeight + g.Gap
		c.RowHeight = 0
	}
	if c.Y-h < g.Margin {
		c.Pages++
		c.X = g.Margin
		c.Y = g.Height - g.Margin
		c.RowHeight = 0
	}

	res := Placement{
		Page: c.Pages - 1,
		X:    c.X,
		Y:    c.Y - h,
	}

	c.X += w + g.Gap
	c.RowHeight = max(c.RowHeight, h)

	return res
}

// Check returns an error wrapping [ErrOversized] if an item of size w×h
// cannot be placed inside the printable area of an empty page.
func (p *Packer) Check(w, h float64) error {
	r := p.geom.Printable()
	if w > r.URx-r.LLx || h > r.URy-r.LLy {
		return fmt.Errorf("%.1fx%.1fpt item on %.1fx%.1fpt printable area: %w",
			w, h, r.URx-r.LLx, r.URy-r.LLy, ErrOversized)
	}
	return nil
}

// PlaceChecked is like [Packer.Place], but rejects items which are
// larger than the printable area.  The packer state is not changed in
// this case.
func (p *Packer) PlaceChecked(w, h float64) (Placement, error) {
	if err := p.Check(w, h); err != nil {
		return Placement{}, err
	}
	return p.Place(w, h), nil
}

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

package gangsheet

import (
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/layout"
	"seehuhn.de/go/gangsheet/outline"
	"seehuhn.de/go/gangsheet/polygon"
	"seehuhn.de/go/gangsheet/sticker"
)

// ErrUnknownCategory is returned when an item uses a category without a
// configured size.
var ErrUnknownCategory = errors.New("no size configured for category")

// Placement is one printed copy of a sticker, in page coordinates.
type Placement struct {
	// Page is the zero-based page index.
	Page int

	// X and Y give the lower left corner of the cell.
	X, Y float64

	// Cell is the footprint of the sticker on the page.
	Cell rect.Rect

	Glyph      polygon.Shape
	Background polygon.Shape

	// Item is the index of the originating item in the list passed to
	// [Planner.Plan].
	Item int
}

// Planner computes sticker designs and places copies of them on pages.
//
// Designs are cached by text and category, so that each design is
// computed only once, no matter how many items or copies use it.
// A Planner must not be used concurrently from different goroutines.
type Planner struct {
	font  *outline.Font
	opt   Options
	log   *slog.Logger
	cache map[designKey]*sticker.Design
}

type designKey struct {
	text     string
	category Category
	squares  int
}

// NewPlanner returns a planner which uses the given font for all
// stickers.
func NewPlanner(font *outline.Font, opt *Options) (*Planner, error) {
	if font == nil {
		return nil, errors.New("missing font")
	}
	if opt == nil {
		return nil, errors.New("missing options")
	}
	if err := opt.Geometry.Validate(); err != nil {
		return nil, err
	}
	if opt.GridSquare <= 0 {
		return nil, fmt.Errorf("invalid grid square size %g", opt.GridSquare)
	}

	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Planner{
		font:  font,
		opt:   *opt,
		log:   log,
		cache: make(map[designKey]*sticker.Design),
	}, nil
}

// Design returns the artwork for an item, in cell coordinates.
func (p *Planner) Design(item Item) (*sticker.Design, error) {
	squares := max(1, item.Squares)
	key := designKey{text: item.Text, category: item.Category, squares: squares}
	if d, ok := p.cache[key]; ok {
		return d, nil
	}

	size, ok := p.opt.Sizes[item.Category]
	if !ok {
		return nil, fmt.Errorf("%q: %w %q", item.Text, ErrUnknownCategory, item.Category)
	}

	if missing := p.font.Missing(item.Text); len(missing) > 0 {
		p.log.Warn("glyphs missing from font",
			"text", item.Text,
			"font", p.font.Name(),
			"missing", string(missing))
	}

	glyph := outline.Extract(item.Text, p.font, size.FontSize,
		&outline.Options{Tolerance: p.opt.Tolerance})
	d := sticker.OffsetAndCenter(glyph, size.Offset,
		float64(squares)*p.opt.GridSquare, p.opt.GridSquare,
		&sticker.Options{QuadrantSegments: p.opt.QuadrantSegments})

	if over := d.Overflow(); over > 0 {
		p.log.Debug("design exceeds its cell",
			"text", item.Text,
			"category", string(item.Category),
			"overflow_mm", layout.ToMM(over))
	}
	p.log.Debug("design computed",
		"text", item.Text,
		"category", string(item.Category),
		"points", d.Background.NumPoints()+d.Glyph.NumPoints())

	p.cache[key] = d
	return d, nil
}

// Plan places all copies of the given items on pages, in order.
//
// Items with a quantity of zero or less are skipped.  If a cell does not
// fit onto an empty page, the returned error wraps [layout.ErrOversized].
func (p *Planner) Plan(items []Item) (*Sheet, error) {
	packer := layout.NewPacker(p.opt.Geometry)
	sheet := &Sheet{
		Geometry: p.opt.Geometry,
	}

	seen := make(map[*sticker.Design]bool)
	for i, item := range items {
		if item.Quantity <= 0 {
			p.log.Debug("skipping item without copies", "text", item.Text)
			continue
		}
		d, err := p.Design(item)
		if err != nil {
			return nil, err
		}
		if err := packer.Check(d.Cell.W, d.Cell.H); err != nil {
			return nil, fmt.Errorf("%q: %w", item.Text, err)
		}
		if !seen[d] {
			seen[d] = true
			sheet.Designs++
		}

		for range item.Quantity {
			pos, err := packer.PlaceChecked(d.Cell.W, d.Cell.H)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", item.Text, err)
			}
			shift := vec.Vec2{X: pos.X, Y: pos.Y}
			sheet.Placements = append(sheet.Placements, Placement{
				Page:       pos.Page,
				X:          pos.X,
				Y:          pos.Y,
				Cell:       d.Cell.Rect(pos.X, pos.Y),
				Glyph:      d.Glyph.Translate(shift),
				Background: d.Background.Translate(shift),
				Item:       i,
			})
		}
	}
	sheet.Copies = len(sheet.Placements)
	if sheet.Copies > 0 {
		sheet.Pages = packer.Pages()
	}

	p.log.Info("sheet planned",
		"designs", sheet.Designs,
		"copies", sheet.Copies,
		"pages", sheet.Pages)
	return sheet, nil
}

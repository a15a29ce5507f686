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

// Package gangsheet lays out die-cut sticker artwork on printable sheets.
//
// Each sticker shows a short text, converted to glyph outlines and
// surrounded by a background shape at a fixed distance (the "halo").
// A [Planner] turns a list of [Item] values into a [Sheet], which gives
// the position of every printed copy.  The sheet can then be written to a
// PDF file using [Write].
//
// All lengths are measured in PDF points.
package gangsheet

import (
	"log/slog"

	"seehuhn.de/go/gangsheet/layout"
)

// Category is a sticker category.  The category of an item determines the
// font size and the halo offset of its artwork.
type Category string

// These are the categories used for items read from order files.
const (
	Flags    Category = "Flags"
	Symbols  Category = "Symbols"
	Initials Category = "Initials"
	Words    Category = "Words"
)

// Size gives the glyph size and the halo offset for one category.
type Size struct {
	// FontSize is the font size in points.
	FontSize float64

	// Offset is the distance between the glyph outlines and the edge of
	// the background, in points.  Zero gives a background which is
	// identical to the glyphs.
	Offset float64
}

// Item is a request for Quantity copies of one sticker design.
type Item struct {
	Text     string
	Category Category
	Quantity int

	// Squares is the width of the sticker cell in grid squares.
	// Values smaller than one are treated as one.
	Squares int
}

// Options control the layout of a sheet.
type Options struct {
	// Geometry describes the pages of the sheet.
	Geometry layout.Geometry

	// GridSquare is the height of a sticker cell, and the width of one
	// grid square.
	GridSquare float64

	// Sizes maps each category to the corresponding size.
	Sizes map[Category]Size

	// Tolerance is the maximal distance between glyph curves and their
	// polygonal approximation.  If zero, a default value is used.
	Tolerance float64

	// QuadrantSegments is the number of segments used for a quarter circle
	// of the round halo corners.  If zero, a default value is used.
	QuadrantSegments int

	// Logger receives diagnostic messages.  If nil, no messages are
	// logged.
	Logger *slog.Logger
}

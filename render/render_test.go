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

package render

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/color"
	"seehuhn.de/go/gangsheet/document"
	"seehuhn.de/go/gangsheet/polygon"
)

func square(x, y, s float64) polygon.Contour {
	return polygon.Contour{{X: x, Y: y}, {X: x + s, Y: y}, {X: x + s, Y: y + s}, {X: x, Y: y + s}}
}

func newPage(t *testing.T) *document.Page {
	t.Helper()
	doc, err := document.WriteMultiPage(&bytes.Buffer{}, 200, 200, nil)
	if err != nil {
		t.Fatal(err)
	}
	return doc.AddPage()
}

func TestSticker(t *testing.T) {
	page := newPage(t)

	glyph := polygon.Shape{polygon.NewRegion(square(20, 20, 10))}
	background := polygon.Shape{polygon.NewRegion(square(15, 15, 20))}
	cell := rect.Rect{LLx: 10, LLy: 10, URx: 40, URy: 40}

	style := &Style{
		Ink:          color.Black,
		Halo:         color.Gray(1),
		HaloAlpha:    0.5,
		CutGuides:    true,
		Cut:          color.CMYK(0, 1, 0, 0),
		CutLineWidth: 0,
	}
	Sticker(page, glyph, background, cell, style)
	if page.Err != nil {
		t.Fatal(page.Err)
	}

	want := strings.Join([]string{
		"q", "0 1 0 0 K", "0 w", "10 10 30 30 re", "S", "Q",
		"q", "/GS1 gs", "1 g",
		"15 15 m", "35 15 l", "35 35 l", "15 35 l", "h", "f", "Q",
		"q", "0 g",
		"20 20 m", "30 20 l", "30 30 l", "20 30 l", "h", "f", "Q",
	}, "\n") + "\n"
	if got := page.Content.String(); got != want {
		t.Errorf("content stream:\n%s\nwant:\n%s", got, want)
	}
	if err := page.Close(); err != nil {
		t.Error(err)
	}
}

func TestStickerNoGuides(t *testing.T) {
	page := newPage(t)

	glyph := polygon.UnitSquare()
	style := DefaultStyle()
	style.CutGuides = false
	style.HaloAlpha = 1
	Sticker(page, glyph, nil, rect.Rect{URx: 1, URy: 1}, style)

	got := page.Content.String()
	if strings.Contains(got, " re\n") {
		t.Error("cut guide drawn")
	}
	if strings.Contains(got, " gs\n") {
		t.Error("unexpected transparency")
	}
	if strings.Count(got, "f\n") != 1 {
		t.Errorf("expected a single fill, got:\n%s", got)
	}
}

func TestShapeHoles(t *testing.T) {
	page := newPage(t)

	ring := polygon.NewRegion(square(0, 0, 30), square(10, 10, 10))
	other := polygon.NewRegion(square(50, 0, 5)).Translate(vec.Vec2{X: 1})
	Shape(page, polygon.Shape{ring, other})

	got := page.Content.String()
	if n := strings.Count(got, " m\n"); n != 3 {
		t.Errorf("got %d subpaths, want 3", n)
	}
	if n := strings.Count(got, "\nf\n"); n != 1 {
		t.Errorf("got %d fill operations, want 1", n)
	}
	if strings.Contains(got, "f*") {
		t.Error("even-odd rule used")
	}

	// nothing is drawn for empty shapes
	page = newPage(t)
	Shape(page, nil)
	if page.Content.Len() != 0 {
		t.Errorf("unexpected output %q", page.Content.String())
	}
}

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

package sticker

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/font/gofont"
	"seehuhn.de/go/gangsheet/outline"
	"seehuhn.de/go/gangsheet/polygon"
)

func glyphShape(t *testing.T, text string, size float64) polygon.Shape {
	t.Helper()
	F, err := gofont.Bold.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return outline.Extract(text, F, size, nil)
}

func TestZeroOffset(t *testing.T) {
	g := glyphShape(t, "Hi", 50)
	for _, offset := range []float64{0, -2} {
		d := OffsetAndCenter(g, offset, 100, 80, nil)
		if math.Abs(d.Background.Area()-g.Area()) > 1e-9 {
			t.Errorf("offset %g: background area %g != glyph area %g",
				offset, d.Background.Area(), g.Area())
		}
	}
}

func TestAreaGrows(t *testing.T) {
	g := glyphShape(t, "A", 50)
	prev := g.Area()
	for _, offset := range []float64{1, 2, 4, 8} {
		d := OffsetAndCenter(g, offset, 100, 100, nil)
		a := d.Background.Area()
		if a <= prev {
			t.Errorf("offset %g: area %g not larger than %g", offset, a, prev)
		}
		prev = a
	}
}

func TestCentered(t *testing.T) {
	g := glyphShape(t, "Lq", 40)
	d := OffsetAndCenter(g, 3, 120, 70, nil)
	b := d.Background.Bounds()
	if math.Abs((b.LLx+b.URx)/2-60) > 1e-6 || math.Abs((b.LLy+b.URy)/2-35) > 1e-6 {
		t.Errorf("background %v is not centered in the cell", b)
	}
	if d.Cell != (Cell{W: 120, H: 70}) {
		t.Errorf("cell changed: %v", d.Cell)
	}
	if d.Overflow() != 0 {
		t.Errorf("unexpected overflow %g", d.Overflow())
	}
}

func TestGlyphInsideBackground(t *testing.T) {
	g := glyphShape(t, "O", 60)
	d := OffsetAndCenter(g, 4, 100, 100, nil)

	// glyph and background move together
	shift := d.Glyph.Bounds().LLx - g.Bounds().LLx
	shiftY := d.Glyph.Bounds().LLy - g.Bounds().LLy
	gb := g.Bounds()
	bb := d.Background.Bounds()
	if math.Abs(bb.LLx-(gb.LLx+shift-4)) > 0.01 || math.Abs(bb.LLy-(gb.LLy+shiftY-4)) > 0.01 {
		t.Errorf("glyph and background are not aligned: %v %v", d.Glyph.Bounds(), bb)
	}

	for _, c := range d.Glyph.Contours() {
		for _, p := range c {
			if !d.Background.Contains(p) {
				t.Fatalf("glyph point %v outside the background", p)
			}
		}
	}
}

func TestSmallCounterFilled(t *testing.T) {
	g := glyphShape(t, "O", 20)
	d := OffsetAndCenter(g, 6, 50, 50, nil)

	hole := d.Glyph[0].Holes[0]
	var m vec.Vec2
	for _, p := range hole {
		m = m.Add(p)
	}
	m = m.Mul(1 / float64(len(hole)))
	if d.Glyph.Contains(m) {
		t.Fatalf("test point %v is not in the hole", m)
	}
	if !d.Background.Contains(m) {
		t.Errorf("hole centre %v is not covered by the background", m)
	}
	for _, r := range d.Background {
		if len(r.Holes) > 0 {
			t.Errorf("background has %d holes", len(r.Holes))
		}
	}
}

func TestZeroCell(t *testing.T) {
	g := polygon.Shape{polygon.NewRegion(polygon.Contour{
		{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 14, Y: 12}, {X: 10, Y: 12},
	})}
	d := OffsetAndCenter(g, 0, 0, 0, nil)
	b := d.Background.Bounds()
	if b.LLx != -2 || b.URx != 2 || b.LLy != -1 || b.URy != 1 {
		t.Errorf("unexpected bounds %v", b)
	}
	if d.Overflow() != 2 {
		t.Errorf("overflow %g != 2", d.Overflow())
	}
	if d.Coverage() != 0 {
		t.Errorf("coverage of an empty cell: %g", d.Coverage())
	}
}

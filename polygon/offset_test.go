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

package polygon

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestOffsetSquare(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 10))}
	res := Offset(s, 1, nil)
	if len(res) != 1 {
		t.Fatalf("got %d regions, want 1", len(res))
	}
	if len(res[0].Holes) != 0 {
		t.Errorf("got %d holes, want 0", len(res[0].Holes))
	}

	want := 100 + 4*10 + math.Pi
	if a := res.Area(); math.Abs(a-want) > 0.05 {
		t.Errorf("got area %g, want %g", a, want)
	}

	b := res.Bounds()
	for _, v := range []float64{b.LLx + 1, b.LLy + 1, b.URx - 11, b.URy - 11} {
		if math.Abs(v) > 1e-3 {
			t.Errorf("unexpected bounds %v", b)
			break
		}
	}
}

func TestOffsetZero(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 10), square(2, 2, 3))}
	for _, d := range []float64{0, -1} {
		res := Offset(s, d, nil)
		if res.Area() != s.Area() {
			t.Errorf("d=%g: area changed from %g to %g", d, s.Area(), res.Area())
		}
	}
}

func TestOffsetFillsSmallHole(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 10), square(4, 4, 2))}
	res := Offset(s, 2, nil)
	if len(res) != 1 {
		t.Fatalf("got %d regions, want 1", len(res))
	}
	if len(res[0].Holes) != 0 {
		t.Errorf("hole survived the offset")
	}
	if !res.Contains(vec.Vec2{X: 5, Y: 5}) {
		t.Error("centre of the hole is not filled")
	}
}

func TestOffsetShrinksLargeHole(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 20), square(5, 5, 10))}
	res := Offset(s, 1, nil)
	if len(res) != 1 || len(res[0].Holes) != 1 {
		t.Fatalf("unexpected result %v", res)
	}
	hole := math.Abs(res[0].Holes[0].Area())
	if math.Abs(hole-64) > 0.05 {
		t.Errorf("got hole area %g, want 64", hole)
	}
}

func TestOffsetMergesNeighbours(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 4)), NewRegion(square(5, 0, 4))}
	if res := Offset(s, 0.4, nil); len(res) != 2 {
		t.Errorf("small offset: got %d regions, want 2", len(res))
	}
	if res := Offset(s, 0.6, nil); len(res) != 1 {
		t.Errorf("large offset: got %d regions, want 1", len(res))
	}
}

func TestOffsetMonotone(t *testing.T) {
	s := Shape{NewRegion(Contour{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 2}, {X: 2, Y: 2},
		{X: 2, Y: 8}, {X: 10, Y: 8}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})}
	prev := s.Area()
	for _, d := range []float64{0.5, 1, 2, 4} {
		res := Offset(s, d, nil)
		a := res.Area()
		if a < prev {
			t.Errorf("d=%g: area %g smaller than %g", d, a, prev)
		}
		for _, p := range []vec.Vec2{{X: 1, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 5}} {
			if !res.Contains(p) {
				t.Errorf("d=%g: %v not covered", d, p)
			}
		}
		prev = a
	}
}

func TestOffsetQuadrantSegments(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 1))}
	coarse := Offset(s, 5, &OffsetOptions{QuadrantSegments: 1})
	fine := Offset(s, 5, &OffsetOptions{QuadrantSegments: 64})
	if coarse.NumPoints() >= fine.NumPoints() {
		t.Errorf("expected more points for finer arcs: %d >= %d",
			coarse.NumPoints(), fine.NumPoints())
	}
	// at least 16 segments per quarter circle, whatever was requested
	if n := coarse.NumPoints(); n < 4*MinQuadrantSegments {
		t.Errorf("only %d points", n)
	}
}

func TestOffsetDegenerateFallback(t *testing.T) {
	// A triangle below the grid resolution has no offset rings.
	tiny := Contour{{X: 0, Y: 0}, {X: 1e-4, Y: 0}, {X: 0, Y: 1e-4}}
	s := Shape{NewRegion(tiny)}
	res := Offset(s, 0.5, nil)
	if res.IsEmpty() {
		t.Fatal("offset of a non-empty shape is empty")
	}
	if res.Area() != s.Area() {
		t.Errorf("got area %g, want %g", res.Area(), s.Area())
	}
}

func TestOffsetTopologyFallback(t *testing.T) {
	save := maxSplitRounds
	maxSplitRounds = 0
	defer func() { maxSplitRounds = save }()

	s := Shape{NewRegion(square(0, 0, 10))}
	res := Offset(s, 1, nil)
	if res.Area() != s.Area() {
		t.Errorf("got area %g, want %g", res.Area(), s.Area())
	}
}

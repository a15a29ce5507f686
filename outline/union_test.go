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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/polygon"
)

func box(x, y, size float64) polygon.Contour {
	return polygon.Contour{
		{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size},
	}
}

func stubUnion(t *testing.T, fail func(call int) bool) {
	t.Helper()
	calls := 0
	unionShapes = func(shapes ...polygon.Shape) (polygon.Shape, error) {
		calls++
		if fail(calls) {
			return nil, polygon.ErrTopology
		}
		return polygon.Union(shapes...)
	}
	t.Cleanup(func() { unionShapes = polygon.Union })
}

// fallbackInput has two overlapping letters and one with a hole.
var fallbackInput = []polygon.Contour{
	box(0, 0, 2), box(1, 0, 2),
	box(10, 0, 10), box(12, 2, 6),
}

func checkCovers(t *testing.T, got polygon.Shape) {
	t.Helper()
	if got.IsEmpty() {
		t.Fatal("result is empty")
	}
	inside := []vec.Vec2{{X: 0.5, Y: 1}, {X: 2.5, Y: 1}, {X: 11, Y: 5}, {X: 19, Y: 19}}
	for _, p := range inside {
		if !got.Contains(p) {
			t.Errorf("%v is not covered", p)
		}
	}
	if got.Contains(vec.Vec2{X: 15, Y: 5}) {
		t.Error("hole is filled")
	}
}

func TestFromContoursUnionFallback(t *testing.T) {
	want := FromContours(fallbackInput)

	stubUnion(t, func(call int) bool { return call == 1 })
	got := FromContours(fallbackInput)
	checkCovers(t, got)
	if math.Abs(got.Area()-want.Area()) > 1e-9 {
		t.Errorf("got area %g, want %g", got.Area(), want.Area())
	}
}

func TestFromContoursUnionAlwaysFails(t *testing.T) {
	stubUnion(t, func(int) bool { return true })
	got := FromContours(fallbackInput)
	checkCovers(t, got)
	if len(got) != 3 {
		t.Errorf("got %d regions, want 3", len(got))
	}
}

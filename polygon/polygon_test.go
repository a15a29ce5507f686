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

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func square(x, y, size float64) Contour {
	return Contour{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func TestContourArea(t *testing.T) {
	c := square(0, 0, 2)
	if a := c.Area(); a != 4 {
		t.Errorf("wrong area: %g != 4", a)
	}
	if a := c.Reverse().Area(); a != -4 {
		t.Errorf("wrong area: %g != -4", a)
	}
	if a := (Contour{{X: 0, Y: 0}, {X: 1, Y: 1}}).Area(); a != 0 {
		t.Errorf("degenerate contour has area %g", a)
	}
}

func TestBounds(t *testing.T) {
	s := Shape{
		NewRegion(square(0, 0, 1)),
		NewRegion(square(3, -2, 1)),
	}
	want := rect.Rect{LLx: 0, LLy: -2, URx: 4, URy: 1}
	if d := cmp.Diff(want, s.Bounds()); d != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(rect.Rect{}, Shape(nil).Bounds()); d != "" {
		t.Errorf("empty bounds mismatch (-want +got):\n%s", d)
	}
}

func TestLocate(t *testing.T) {
	c := square(0, 0, 2)
	cases := []struct {
		p    vec.Vec2
		want Location
	}{
		{vec.Vec2{X: 1, Y: 1}, Inside},
		{vec.Vec2{X: 3, Y: 1}, Outside},
		{vec.Vec2{X: 0, Y: 1}, OnBoundary},
		{vec.Vec2{X: 2, Y: 2}, OnBoundary},
		{vec.Vec2{X: -1, Y: 0}, Outside},
	}
	for _, test := range cases {
		if got := c.Locate(test.p); got != test.want {
			t.Errorf("%v: got %s, want %s", test.p, got, test.want)
		}
		if got := c.Reverse().Locate(test.p); got != test.want {
			t.Errorf("%v (reversed): got %s, want %s", test.p, got, test.want)
		}
	}
}

func TestRegion(t *testing.T) {
	r := NewRegion(square(0, 0, 10).Reverse(), square(4, 4, 2))
	if r.Outer.Area() <= 0 {
		t.Error("outer contour is not counter-clockwise")
	}
	if r.Holes[0].Area() >= 0 {
		t.Error("hole is not clockwise")
	}
	if a := r.Area(); a != 96 {
		t.Errorf("wrong area: %g != 96", a)
	}
	if r.Contains(vec.Vec2{X: 5, Y: 5}) {
		t.Error("hole is filled")
	}
	if !r.Contains(vec.Vec2{X: 1, Y: 1}) {
		t.Error("outer area is not filled")
	}
}

func TestTranslate(t *testing.T) {
	s := Shape{NewRegion(square(0, 0, 10), square(4, 4, 2))}
	moved := s.Translate(vec.Vec2{X: 5, Y: -1})
	want := rect.Rect{LLx: 5, LLy: -1, URx: 15, URy: 9}
	if d := cmp.Diff(want, moved.Bounds()); d != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", d)
	}
	if s[0].Outer[0] != (vec.Vec2{}) {
		t.Error("Translate modified its argument")
	}
	if moved.Area() != s.Area() {
		t.Errorf("area changed: %g != %g", moved.Area(), s.Area())
	}
}

func TestCovers(t *testing.T) {
	outer := square(0, 0, 10)
	if !outer.Covers(square(2, 2, 3)) {
		t.Error("inner square not covered")
	}
	if !outer.Covers(square(0, 0, 3)) {
		t.Error("square touching the boundary not covered")
	}
	if outer.Covers(square(8, 8, 3)) {
		t.Error("overlapping square covered")
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		name string
		c    Contour
		want bool
	}{
		{"square", square(0, 0, 1), true},
		{"clockwise", square(0, 0, 1).Reverse(), true},
		{"bowtie", Contour{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}, false},
		{"flat", Contour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false},
		{"two points", Contour{{X: 0, Y: 0}, {X: 1, Y: 0}}, false},
		{"spike", Contour{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}, false},
		{"duplicate points", Contour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, true},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			if got := test.c.Valid(); got != test.want {
				t.Errorf("Valid() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestCheckedBowtie(t *testing.T) {
	bowtie := Contour{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	pieces := Checked(bowtie)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	var total float64
	for _, c := range pieces {
		if !c.Valid() {
			t.Errorf("repaired piece %v is invalid", c)
		}
		total += math.Abs(c.Area())
	}
	if math.Abs(total-2) > 1e-9 {
		t.Errorf("wrong total area: %g != 2", total)
	}
}

func TestCheckedDegenerate(t *testing.T) {
	flat := Contour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if pieces := Checked(flat); len(pieces) != 0 {
		t.Errorf("zero-area contour gave %d pieces", len(pieces))
	}
}

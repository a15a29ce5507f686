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

package outline_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/font/gofont"
	"seehuhn.de/go/gangsheet/outline"
	"seehuhn.de/go/gangsheet/polygon"
)

func loadFont(t *testing.T) *outline.Font {
	t.Helper()
	F, err := gofont.Bold.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return F
}

func centroid(c polygon.Contour) vec.Vec2 {
	var cx, cy, a float64
	n := len(c)
	for i := range n {
		p, q := c[i], c[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		a += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return vec.Vec2{X: cx / (3 * a), Y: cy / (3 * a)}
}

func TestExtractO(t *testing.T) {
	F := loadFont(t)
	s := outline.Extract("O", F, 100, nil)
	if len(s) != 1 {
		t.Fatalf("got %d regions, want 1", len(s))
	}
	r := s[0]
	if len(r.Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(r.Holes))
	}
	outer := math.Abs(r.Outer.Area())
	hole := math.Abs(r.Holes[0].Area())
	if hole >= outer {
		t.Errorf("hole area %g not smaller than outer area %g", hole, outer)
	}
	if s.Area() <= 0 {
		t.Errorf("non-positive area %g", s.Area())
	}

	b := s.Bounds()
	if w := b.URx - b.LLx; w < 30 || w > 100 {
		t.Errorf("implausible width %g", w)
	}
	if h := b.URy - b.LLy; h < 50 || h > 100 {
		t.Errorf("implausible height %g", h)
	}
}

func TestExtractHolesAreEmpty(t *testing.T) {
	F := loadFont(t)
	for _, text := range []string{"AB", "O8", "abdeg"} {
		s := outline.Extract(text, F, 72, nil)
		nHoles := 0
		for _, r := range s {
			for _, h := range r.Holes {
				nHoles++
				p := centroid(h)
				if h.Locate(p) != polygon.Inside {
					continue
				}
				if s.Contains(p) {
					t.Errorf("%q: hole centre %v is filled", text, p)
				}
			}
		}
		if nHoles == 0 {
			t.Errorf("%q: no holes found", text)
		}
	}
}

func TestExtractFallback(t *testing.T) {
	F := loadFont(t)
	for _, text := range []string{"", "   "} {
		s := outline.Extract(text, F, 50, nil)
		if d := cmp.Diff(polygon.UnitSquare(), s); d != "" {
			t.Errorf("%q: unexpected shape (-want +got):\n%s", text, d)
		}
	}
	s := outline.Extract("X", nil, 50, nil)
	if s.Area() != 1 {
		t.Errorf("missing font: got area %g, want 1", s.Area())
	}
}

func TestExtractDeterministic(t *testing.T) {
	F := loadFont(t)
	a := outline.Extract("Gangsheet", F, 40, nil)
	b := outline.Extract("Gangsheet", F, 40, nil)
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("results differ (-first +second):\n%s", d)
	}
}

func TestExtractScales(t *testing.T) {
	F := loadFont(t)
	small := outline.Extract("H", F, 10, nil).Area()
	large := outline.Extract("H", F, 20, nil).Area()
	if r := large / small; math.Abs(r-4) > 0.05 {
		t.Errorf("area ratio %g, want 4", r)
	}
}

func TestMissing(t *testing.T) {
	F := loadFont(t)
	got := F.Missing("A B\U0001F1FAA")
	want := []rune{'\U0001F1FA'}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("missing glyphs (-want +got):\n%s", d)
	}
}

func square(x, y, size float64) polygon.Contour {
	return polygon.Contour{
		{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size},
	}
}

func TestFromContours(t *testing.T) {
	cases := []struct {
		name     string
		in       []polygon.Contour
		regions  int
		holes    int
		wantArea float64
	}{
		{
			name:     "letter o",
			in:       []polygon.Contour{square(2, 2, 6), square(0, 0, 10)},
			regions:  1,
			holes:    1,
			wantArea: 64,
		},
		{
			name:     "island in hole",
			in:       []polygon.Contour{square(0, 0, 10), square(2, 2, 6), square(4, 4, 2)},
			regions:  2,
			holes:    1,
			wantArea: 68,
		},
		{
			name:     "two holes",
			in:       []polygon.Contour{square(0, 0, 10), square(1, 1, 2), square(6, 6, 2).Reverse()},
			regions:  1,
			holes:    2,
			wantArea: 92,
		},
		{
			name:     "overlapping letters",
			in:       []polygon.Contour{square(0, 0, 2), square(1, 0, 2)},
			regions:  1,
			wantArea: 6,
		},
		{
			name:     "short contours dropped",
			in:       []polygon.Contour{{{X: 0, Y: 0}, {X: 1, Y: 1}}, square(0, 0, 1)},
			regions:  1,
			wantArea: 1,
		},
		{
			name:     "self-intersecting",
			in:       []polygon.Contour{{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}},
			regions:  2,
			wantArea: 2,
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			s := outline.FromContours(test.in)
			if len(s) != test.regions {
				t.Errorf("got %d regions, want %d", len(s), test.regions)
			}
			holes := 0
			for _, r := range s {
				holes += len(r.Holes)
			}
			if holes != test.holes {
				t.Errorf("got %d holes, want %d", holes, test.holes)
			}
			if a := s.Area(); math.Abs(a-test.wantArea) > 1e-9 {
				t.Errorf("got area %g, want %g", a, test.wantArea)
			}
		})
	}
}

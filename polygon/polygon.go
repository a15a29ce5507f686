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

// Package polygon implements planar shapes made of straight-edged
// contours, together with the boolean and offset operations needed to turn
// glyph outlines into sticker artwork.
//
// Coordinates are in PDF points with the y-axis pointing up.  A contour
// with positive signed area is oriented counter-clockwise.  All operations
// return new values; shapes are never modified in place.
package polygon

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Contour is a closed ring of points.  The last point is implicitly
// connected to the first one.
type Contour []vec.Vec2

// Area returns the signed area enclosed by the contour.
// The area is positive for counter-clockwise contours.
func (c Contour) Area() float64 {
	n := len(c)
	if n < 3 {
		return 0
	}
	var s float64
	for i := range n {
		a := c[i]
		b := c[(i+1)%n]
		s += a.X*b.Y - b.X*a.Y
	}
	return s / 2
}

// Bounds returns the smallest rectangle containing all points of c.
func (c Contour) Bounds() rect.Rect {
	if len(c) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: c[0].X, LLy: c[0].Y, URx: c[0].X, URy: c[0].Y}
	for _, p := range c[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Reverse returns the contour with the opposite orientation.
func (c Contour) Reverse() Contour {
	res := make(Contour, len(c))
	for i, p := range c {
		res[len(c)-1-i] = p
	}
	return res
}

// Translate returns a copy of c, shifted by d.
func (c Contour) Translate(d vec.Vec2) Contour {
	res := make(Contour, len(c))
	for i, p := range c {
		res[i] = p.Add(d)
	}
	return res
}

// Location describes the position of a point relative to a contour.
type Location int

// These are the possible return values of [Contour.Locate].
const (
	Outside Location = iota
	Inside
	OnBoundary
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnBoundary:
		return "on boundary"
	default:
		return "invalid location"
	}
}

// Locate determines whether p lies inside, outside or on the boundary
// of the area enclosed by c.  The orientation of c is ignored and
// self-intersecting contours use the non-zero winding rule.
// The test is exact on the grid described by [GridScale].
func (c Contour) Locate(p vec.Vec2) Location {
	return locate(snapRing(c), snap(p))
}

func locate(ring []ipt, q ipt) Location {
	n := len(ring)
	if n < 3 {
		return Outside
	}
	w := 0
	for i := range n {
		a := ring[i]
		b := ring[(i+1)%n]
		o := orient(a, b, q)
		if o == 0 && onSegment(a, b, q) {
			return OnBoundary
		}
		if a.Y <= q.Y {
			if b.Y > q.Y && o > 0 {
				w++
			}
		} else if b.Y <= q.Y && o < 0 {
			w--
		}
	}
	if w != 0 {
		return Inside
	}
	return Outside
}

// Covers reports whether every vertex of other lies inside c or on its
// boundary.
func (c Contour) Covers(other Contour) bool {
	ring := snapRing(c)
	if len(ring) < 3 {
		return false
	}
	for _, p := range other {
		if locate(ring, snap(p)) == Outside {
			return false
		}
	}
	return true
}

// Region is a polygon with holes.  The holes lie inside the outer
// contour and do not overlap each other.
type Region struct {
	Outer Contour
	Holes []Contour
}

// NewRegion returns a region with the outer contour oriented
// counter-clockwise and all holes oriented clockwise.
func NewRegion(outer Contour, holes ...Contour) Region {
	r := Region{Outer: orientAs(outer, 1)}
	for _, h := range holes {
		r.Holes = append(r.Holes, orientAs(h, -1))
	}
	return r
}

func orientAs(c Contour, s float64) Contour {
	if c.Area()*s < 0 {
		return c.Reverse()
	}
	return c
}

// Area returns the area of the outer contour minus the areas of the holes.
func (r Region) Area() float64 {
	a := math.Abs(r.Outer.Area())
	for _, h := range r.Holes {
		a -= math.Abs(h.Area())
	}
	return a
}

// Bounds returns the bounding box of the outer contour.
func (r Region) Bounds() rect.Rect {
	return r.Outer.Bounds()
}

// Contains reports whether p lies in the filled part of the region.
// Points on the boundary count as contained.
func (r Region) Contains(p vec.Vec2) bool {
	if r.Outer.Locate(p) == Outside {
		return false
	}
	for _, h := range r.Holes {
		if h.Locate(p) == Inside {
			return false
		}
	}
	return true
}

// Translate returns a copy of r, shifted by d.
func (r Region) Translate(d vec.Vec2) Region {
	res := Region{Outer: r.Outer.Translate(d)}
	if len(r.Holes) > 0 {
		res.Holes = make([]Contour, len(r.Holes))
		for i, h := range r.Holes {
			res.Holes[i] = h.Translate(d)
		}
	}
	return res
}

// Contours returns the outer contour followed by all holes.
func (r Region) Contours() []Contour {
	res := make([]Contour, 0, 1+len(r.Holes))
	res = append(res, r.Outer)
	res = append(res, r.Holes...)
	return res
}

// Shape is a set of regions.  Shapes returned by [Union] and [Offset]
// consist of pairwise non-overlapping regions.
type Shape []Region

// UnitSquare returns the shape used in place of text which has no
// usable outline.
func UnitSquare() Shape {
	return Shape{NewRegion(Contour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})}
}

// Area returns the total area of all regions.
func (s Shape) Area() float64 {
	var a float64
	for _, r := range s {
		a += r.Area()
	}
	return a
}

// IsEmpty reports whether the shape encloses no area.
func (s Shape) IsEmpty() bool {
	return s.Area() <= 0
}

// Bounds returns the bounding box of all regions.
// The zero rectangle is returned for an empty shape.
func (s Shape) Bounds() rect.Rect {
	var b rect.Rect
	first := true
	for _, r := range s {
		if len(r.Outer) == 0 {
			continue
		}
		rb := r.Bounds()
		if first {
			b = rb
			first = false
			continue
		}
		b.LLx = min(b.LLx, rb.LLx)
		b.LLy = min(b.LLy, rb.LLy)
		b.URx = max(b.URx, rb.URx)
		b.URy = max(b.URy, rb.URy)
	}
	return b
}

// Contains reports whether p lies in the filled part of any region.
func (s Shape) Contains(p vec.Vec2) bool {
	for _, r := range s {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Translate returns a copy of s, shifted by d.
func (s Shape) Translate(d vec.Vec2) Shape {
	res := make(Shape, len(s))
	for i, r := range s {
		res[i] = r.Translate(d)
	}
	return res
}

// Contours returns all contours of all regions.
func (s Shape) Contours() []Contour {
	var res []Contour
	for _, r := range s {
		res = append(res, r.Contours()...)
	}
	return res
}

// NumPoints returns the total number of vertices in the shape.
func (s Shape) NumPoints() int {
	n := 0
	for _, c := range s.Contours() {
		n += len(c)
	}
	return n
}

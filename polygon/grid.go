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

	"seehuhn.de/go/geom/vec"
)

// GridScale is the number of grid steps per unit used by the exact
// predicates.  All overlay computations snap coordinates to this grid.
// With units of PDF points, one grid step is less than 0.001pt.
const GridScale = 1024

// ipt is a point on the integer grid.
type ipt struct {
	X, Y int64
}

func snap(v vec.Vec2) ipt {
	return ipt{
		X: int64(math.Round(v.X * GridScale)),
		Y: int64(math.Round(v.Y * GridScale)),
	}
}

func (p ipt) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X) / GridScale, Y: float64(p.Y) / GridScale}
}

func (p ipt) less(q ipt) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// orient returns twice the signed area of the triangle a, b, c.
// The result is positive if c lies to the left of the directed line a→b.
func orient(a, b, c ipt) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sign(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, known to be collinear with a and b,
// lies within the closed segment a–b.
func onSegment(a, b, p ipt) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// snapRing converts a contour to grid points, dropping repeated points
// and collinear interior points.
func snapRing(c Contour) []ipt {
	pts := make([]ipt, 0, len(c))
	for _, v := range c {
		p := snap(v)
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	for len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return simplifyRing(pts)
}

// simplifyRing removes vertices where the ring continues straight on.
func simplifyRing(pts []ipt) []ipt {
	changed := true
	for changed && len(pts) >= 3 {
		changed = false
		n := len(pts)
		out := pts[:0:0]
		for i := 0; i < n; i++ {
			prev := pts[(i+n-1)%n]
			cur := pts[i]
			next := pts[(i+1)%n]
			if orient(prev, cur, next) == 0 && dot(prev, cur, next) > 0 {
				changed = true
				continue
			}
			out = append(out, cur)
		}
		pts = out
	}
	return pts
}

// dot returns the dot product of the vectors a→b and b→c.
func dot(a, b, c ipt) int64 {
	return (b.X-a.X)*(c.X-b.X) + (b.Y-a.Y)*(c.Y-b.Y)
}

func ringArea2(pts []ipt) int64 {
	var s int64
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		s += a.X*b.Y - b.X*a.Y
	}
	return s
}

func ringContour(pts []ipt) Contour {
	c := make(Contour, len(pts))
	for i, p := range pts {
		c[i] = p.vec()
	}
	return c
}

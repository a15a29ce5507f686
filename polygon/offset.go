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

// MinQuadrantSegments is the smallest number of line segments used to
// approximate a quarter circle in [Offset].
const MinQuadrantSegments = 16

// OffsetOptions control the approximation of round joins.
type OffsetOptions struct {
	// QuadrantSegments is the number of segments per quarter circle.
	// Values smaller than MinQuadrantSegments are raised to
	// MinQuadrantSegments.
	QuadrantSegments int
}

// Offset returns the set of all points within distance d of s, using
// round joins.  For d <= 0, s is returned unchanged.  If the offset
// boundary cannot be reconstructed, s is returned as well.
//
// The options can be nil, in which case default values are used.
func Offset(s Shape, d float64, opt *OffsetOptions) Shape {
	if d <= 0 || len(s) == 0 {
		return s
	}

	segs := MinQuadrantSegments
	if opt != nil && opt.QuadrantSegments > segs {
		segs = opt.QuadrantSegments
	}

	var rings [][]ipt
	for _, r := range s {
		r = NewRegion(r.Outer, r.Holes...)
		for _, c := range r.Contours() {
			raw := offsetRing(c, d, segs)
			if ring := snapRing(raw); len(ring) >= 3 {
				rings = append(rings, ring)
			}
		}
	}
	res, complete := overlay(rings, positive)
	if !complete || res.IsEmpty() {
		// The offset area always contains s.
		return s
	}
	return res
}

// offsetRing moves every edge of c by d to the right of its direction of
// travel.  Gaps at left turns are closed by circular arcs; at right turns
// the offset edges are joined through the original vertex.  The result
// may self-intersect; points with positive winding number form the
// offset area.
func offsetRing(c Contour, d float64, segs int) Contour {
	ring := snapRing(c)
	n := len(ring)
	if n < 3 || ringArea2(ring) == 0 {
		return nil
	}
	pts := make([]vec.Vec2, n)
	for i, p := range ring {
		pts[i] = p.vec()
	}

	step := math.Pi / 2 / float64(segs)
	res := make(Contour, 0, 3*n)
	for i := range n {
		prev := pts[(i+n-1)%n]
		p := pts[i]
		next := pts[(i+1)%n]

		t1 := unit(p.Sub(prev))
		t2 := unit(next.Sub(p))
		n1 := rightNormal(t1)
		n2 := rightNormal(t2)

		cross := t1.X*t2.Y - t1.Y*t2.X
		dot := t1.Dot(t2)
		const eps = 1e-12
		switch {
		case cross > eps || (cross >= -eps && dot < 0):
			// left turn, or reversal: round join
			theta := math.Atan2(cross, dot)
			if theta <= 0 {
				theta = math.Pi
			}
			k := max(1, int(math.Ceil(theta/step)))
			a0 := math.Atan2(n1.Y, n1.X)
			for j := 0; j <= k; j++ {
				phi := a0 + theta*float64(j)/float64(k)
				res = append(res, p.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(d)))
			}
		case cross < -eps:
			res = append(res, p.Add(n1.Mul(d)), p, p.Add(n2.Mul(d)))
		default:
			res = append(res, p.Add(n1.Mul(d)))
		}
	}
	return res
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// rightNormal returns v turned by 90 degrees clockwise.
func rightNormal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.Y, Y: -v.X}
}

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

// Valid reports whether c is a simple polygon: it must have at least three
// distinct vertices, enclose a non-zero area, and no two edges may touch
// except for neighbouring edges at their common vertex.
func (c Contour) Valid() bool {
	ring := snapRing(c)
	n := len(ring)
	if n < 3 || ringArea2(ring) == 0 {
		return false
	}

	for i := range n {
		e := edge{ring[i], ring[(i+1)%n]}
		bi := e.box()
		for j := i + 1; j < n; j++ {
			f := edge{ring[j], ring[(j+1)%n]}
			bj := f.box()
			if bj.minX > bi.maxX || bj.maxX < bi.minX || bj.minY > bi.maxY || bj.maxY < bi.minY {
				continue
			}
			switch {
			case j == i+1:
				// f starts where e ends
				if orient(e.a, e.b, f.b) == 0 && dot(e.a, e.b, f.b) < 0 {
					return false
				}
			case i == 0 && j == n-1:
				// e starts where f ends
				if orient(f.a, f.b, e.b) == 0 && dot(f.a, f.b, e.b) < 0 {
					return false
				}
			default:
				if touches(e, f) {
					return false
				}
			}
		}
	}
	return true
}

// touches reports whether the closed segments e and f have a point in
// common.
func touches(e, f edge) bool {
	d1 := orient(e.a, e.b, f.a)
	d2 := orient(e.a, e.b, f.b)
	d3 := orient(f.a, f.b, e.a)
	d4 := orient(f.a, f.b, e.b)
	if sign(d1)*sign(d2) < 0 && sign(d3)*sign(d4) < 0 {
		return true
	}
	return d1 == 0 && onSegment(e.a, e.b, f.a) ||
		d2 == 0 && onSegment(e.a, e.b, f.b) ||
		d3 == 0 && onSegment(f.a, f.b, e.a) ||
		d4 == 0 && onSegment(f.a, f.b, e.b)
}

// Checked returns c, normalised to a simple polygon.  Valid contours are
// returned unchanged.  Invalid contours are repaired using [Repair]; this
// may split c into several pieces, or remove it completely if it does not
// enclose any area.
func Checked(c Contour) []Contour {
	if len(c) < 3 {
		return nil
	}
	if c.Valid() {
		return []Contour{c}
	}
	return Repair(c).Contours()
}

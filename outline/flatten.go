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
	"honnef.co/go/curve"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gangsheet/polygon"
)

// flattener converts a path into polygonal contours.  Points are mapped
// through the transformation M before flattening, so that the tolerance
// applies in output space.
type flattener struct {
	M         matrix.Matrix
	Tolerance float64

	cur      polygon.Contour
	contours []polygon.Contour
}

func (f *flattener) apply(p vec.Vec2) curve.Point {
	m := f.M
	return curve.Pt(m[0]*p.X+m[2]*p.Y+m[4], m[1]*p.X+m[3]*p.Y+m[5])
}

// AddPath appends all subpaths of p.
func (f *flattener) AddPath(p path.Path) {
	var bp curve.BezPath
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			bp.MoveTo(f.apply(pts[0]))
		case path.CmdLineTo:
			bp.LineTo(f.apply(pts[0]))
		case path.CmdQuadTo:
			bp.QuadTo(f.apply(pts[0]), f.apply(pts[1]))
		case path.CmdCubeTo:
			bp.CubicTo(f.apply(pts[0]), f.apply(pts[1]), f.apply(pts[2]))
		case path.CmdClose:
			bp.ClosePath()
		}
	}

	for el := range bp.Flatten(f.Tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			f.flush()
			f.cur = append(f.cur, vec.Vec2{X: el.P0.X, Y: el.P0.Y})
		case curve.LineToKind:
			f.cur = append(f.cur, vec.Vec2{X: el.P0.X, Y: el.P0.Y})
		case curve.ClosePathKind:
			f.flush()
		}
	}
	f.flush()
}

// Contours returns the contours collected so far.
func (f *flattener) Contours() []polygon.Contour {
	return f.contours
}

func (f *flattener) flush() {
	c := f.cur
	if len(c) > 1 && c[0] == c[len(c)-1] {
		c = c[:len(c)-1]
	}
	if len(c) > 0 {
		f.contours = append(f.contours, c)
	}
	f.cur = nil
}

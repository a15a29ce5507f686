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

// Package outline converts text into filled polygonal shapes, with the
// holes of letters like "O", "A" or "B" preserved.
package outline

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/gangsheet/polygon"
)

// DefaultTolerance is the default maximal distance, in PDF points, between
// a glyph curve and its polygonal approximation.
const DefaultTolerance = 0.05

// Options control the conversion of glyph outlines to polygons.
type Options struct {
	// Tolerance is the maximal distance between the curves of the glyph
	// outlines and their approximation by straight line segments.
	// If zero, DefaultTolerance is used.
	Tolerance float64
}

// Extract converts text, set in font f at the given size, into a shape.
// The text starts at the origin, on the baseline.
//
// Extract never fails: problems with individual contours are repaired or
// the contours are dropped.  If no usable contour remains, for example
// for text consisting only of spaces, the unit square is returned.
//
// The options can be nil, in which case default values are used.
func Extract(text string, f *Font, size float64, opt *Options) polygon.Shape {
	if f == nil || size <= 0 {
		return polygon.UnitSquare()
	}
	tol := DefaultTolerance
	if opt != nil && opt.Tolerance > 0 {
		tol = opt.Tolerance
	}

	qh, qv := f.scale(size)
	fl := &flattener{Tolerance: tol}
	for _, g := range f.layout(text) {
		if f.isBlank(g.gid) {
			continue
		}
		fl.M = matrix.Matrix{qh, 0, 0, qv, g.x * qh, g.y * qv}
		fl.AddPath(f.glyphPath(g.gid))
	}

	shape := FromContours(fl.Contours())
	if shape.IsEmpty() {
		return polygon.UnitSquare()
	}
	return shape
}

// FromContours turns a set of unordered, unoriented contours into a shape.
//
// Contours with fewer than three points are discarded and invalid contours
// are repaired.  The contours are then sorted by decreasing area.  The
// largest unclassified contour becomes the outer boundary of a new region,
// and all smaller unclassified contours which it covers become holes of
// this region.  A contour lying inside one of the holes already collected
// is left for a later region, so that islands inside holes stay filled.
// Finally the union of all regions is formed.
func FromContours(contours []polygon.Contour) polygon.Shape {
	type candidate struct {
		c    polygon.Contour
		area float64
	}
	var cands []candidate
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		for _, piece := range polygon.Checked(c) {
			cands = append(cands, candidate{piece, math.Abs(piece.Area())})
		}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(b.area, a.area)
	})

	var regions polygon.Shape
	used := make([]bool, len(cands))
	for i, shell := range cands {
		if used[i] {
			continue
		}
		used[i] = true

		var holes []polygon.Contour
	candLoop:
		for j := i + 1; j < len(cands); j++ {
			if used[j] || !shell.c.Covers(cands[j].c) {
				continue
			}
			for _, h := range holes {
				if h.Covers(cands[j].c) {
					continue candLoop
				}
			}
			holes = append(holes, cands[j].c)
			used[j] = true
		}
		regions = append(regions, polygon.NewRegion(shell.c, holes...))
	}

	res, err := unionShapes(regions)
	if err == nil {
		return res
	}

	// Union each region separately after repairing it, then combine.
	// If this fails as well, the repaired regions are returned as they
	// are, possibly overlapping.
	var parts []polygon.Shape
	var all polygon.Shape
	for _, r := range regions {
		part, err := unionShapes(polygon.Shape{r})
		if err != nil || part.IsEmpty() {
			part = polygon.Shape{r}
		}
		parts = append(parts, part)
		all = append(all, part...)
	}
	res, err = unionShapes(parts...)
	if err != nil || res.IsEmpty() {
		return all
	}
	return res
}

// unionShapes is replaced in tests.
var unionShapes = polygon.Union

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
	"errors"
	"math"
	"slices"
)

// ErrTopology is returned by [Union] if some boundary edges of the
// result could not be joined into closed contours.  The shape returned
// alongside the error contains all contours which could be closed.
var ErrTopology = errors.New("polygon: inconsistent boundary")

// Union returns the union of all regions in the given shapes.
// Regions are normalised before the union is computed, so the
// orientation of the input contours does not matter.
func Union(shapes ...Shape) (Shape, error) {
	var rings [][]ipt
	for _, s := range shapes {
		for _, r := range s {
			r = NewRegion(r.Outer, r.Holes...)
			for _, c := range r.Contours() {
				if ring := snapRing(c); len(ring) >= 3 {
					rings = append(rings, ring)
				}
			}
		}
	}
	res, complete := overlay(rings, positive)
	if !complete {
		return res, ErrTopology
	}
	return res, nil
}

// Repair converts a possibly self-intersecting contour into a shape
// covering the area where the contour has non-zero winding number.
// Zero-area and degenerate contours give an empty shape.
func Repair(c Contour) Shape {
	ring := snapRing(c)
	if len(ring) < 3 {
		return nil
	}
	res, _ := overlay([][]ipt{ring}, nonZero)
	return res
}

type fillRule func(w int) bool

func positive(w int) bool { return w > 0 }

func nonZero(w int) bool { return w != 0 }

type edge struct {
	a, b ipt
}

// overlay computes the boundary of the set of points whose winding
// number with respect to the given rings satisfies keep.  The flag is
// false if edge splitting did not converge or some boundary edges could
// not be joined into closed cycles.
func overlay(rings [][]ipt, keep fillRule) (Shape, bool) {
	var edges []edge
	for _, ring := range rings {
		n := len(ring)
		for i := range n {
			e := edge{ring[i], ring[(i+1)%n]}
			if e.a != e.b {
				edges = append(edges, e)
			}
		}
	}
	if len(edges) == 0 {
		return nil, true
	}

	// Snapping new intersection points to the grid can create further
	// crossings, so splitting is repeated until nothing changes.
	settled := false
	for range maxSplitRounds {
		var changed bool
		edges, changed = splitEdges(edges)
		if !changed {
			settled = true
			break
		}
	}

	groups := groupEdges(edges)
	boundary := selectBoundary(groups, keep)
	cycles, complete := linkEdges(boundary)
	return assemble(cycles), complete && settled
}

// maxSplitRounds bounds the number of passes of splitEdges in overlay.
var maxSplitRounds = 8

type ibox struct {
	minX, minY, maxX, maxY int64
}

func (e edge) box() ibox {
	return ibox{
		minX: min(e.a.X, e.b.X), minY: min(e.a.Y, e.b.Y),
		maxX: max(e.a.X, e.b.X), maxY: max(e.a.Y, e.b.Y),
	}
}

// splitEdges splits all edges at their mutual intersection points,
// so that afterwards edges only meet at their end points or overlap
// completely.
func splitEdges(edges []edge) ([]edge, bool) {
	n := len(edges)
	boxes := make([]ibox, n)
	order := make([]int, n)
	for i, e := range edges {
		boxes[i] = e.box()
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		switch {
		case boxes[i].minX < boxes[j].minX:
			return -1
		case boxes[i].minX > boxes[j].minX:
			return 1
		default:
			return i - j
		}
	})

	cuts := make([][]ipt, n)
	for k, i := range order {
		bi := boxes[i]
		for _, j := range order[k+1:] {
			bj := boxes[j]
			if bj.minX > bi.maxX {
				break
			}
			if bj.minY > bi.maxY || bj.maxY < bi.minY {
				continue
			}
			intersect(edges[i], edges[j], &cuts[i], &cuts[j])
		}
	}

	changed := false
	res := make([]edge, 0, n)
	for i, e := range edges {
		pts := cuts[i]
		pts = slices.DeleteFunc(pts, func(p ipt) bool { return p == e.a || p == e.b })
		if len(pts) == 0 {
			res = append(res, e)
			continue
		}
		dx := float64(e.b.X - e.a.X)
		dy := float64(e.b.Y - e.a.Y)
		param := func(p ipt) float64 {
			return float64(p.X-e.a.X)*dx + float64(p.Y-e.a.Y)*dy
		}
		slices.SortFunc(pts, func(p, q ipt) int {
			tp, tq := param(p), param(q)
			switch {
			case tp < tq:
				return -1
			case tp > tq:
				return 1
			default:
				return 0
			}
		})
		pts = slices.Compact(pts)
		changed = true
		prev := e.a
		for _, p := range pts {
			res = append(res, edge{prev, p})
			prev = p
		}
		res = append(res, edge{prev, e.b})
	}
	return res, changed
}

// intersect records the points where e and f touch or cross.
func intersect(e, f edge, ce, cf *[]ipt) {
	d1 := orient(e.a, e.b, f.a)
	d2 := orient(e.a, e.b, f.b)
	d3 := orient(f.a, f.b, e.a)
	d4 := orient(f.a, f.b, e.b)

	if d1 == 0 && onSegment(e.a, e.b, f.a) {
		*ce = append(*ce, f.a)
	}
	if d2 == 0 && onSegment(e.a, e.b, f.b) {
		*ce = append(*ce, f.b)
	}
	if d3 == 0 && onSegment(f.a, f.b, e.a) {
		*cf = append(*cf, e.a)
	}
	if d4 == 0 && onSegment(f.a, f.b, e.b) {
		*cf = append(*cf, e.b)
	}

	if sign(d1)*sign(d2) < 0 && sign(d3)*sign(d4) < 0 {
		t := float64(d3) / float64(d3-d4)
		p := ipt{
			X: e.a.X + int64(math.Round(t*float64(e.b.X-e.a.X))),
			Y: e.a.Y + int64(math.Round(t*float64(e.b.Y-e.a.Y))),
		}
		*ce = append(*ce, p)
		*cf = append(*cf, p)
	}
}

// group collects all edges between the same two points.
// The weight k is the number of edges running from lo to hi,
// minus the number of edges running from hi to lo.
type group struct {
	lo, hi ipt
	k      int
}

func groupEdges(edges []edge) []group {
	idx := make(map[[2]ipt]int)
	var groups []group
	for _, e := range edges {
		lo, hi, k := e.a, e.b, 1
		if hi.less(lo) {
			lo, hi, k = hi, lo, -1
		}
		key := [2]ipt{lo, hi}
		if i, ok := idx[key]; ok {
			groups[i].k += k
			continue
		}
		idx[key] = len(groups)
		groups = append(groups, group{lo: lo, hi: hi, k: k})
	}
	return slices.DeleteFunc(groups, func(g group) bool { return g.k == 0 })
}

// selectBoundary returns the edges which separate points where keep
// holds (on the left) from points where it does not (on the right).
func selectBoundary(groups []group, keep fillRule) []edge {
	var idx [2]*crossIndex
	var res []edge
	for i, g := range groups {
		dx := g.hi.X - g.lo.X
		dy := g.hi.Y - g.lo.Y
		rot := abs64(dy) < abs64(dx)
		if rot {
			dy = -dx
		}
		r := 0
		if rot {
			r = 1
		}
		if idx[r] == nil {
			idx[r] = newCrossIndex(groups, rot)
		}

		// Winding number at the mid-point of g, with g itself removed.
		// Coordinates are doubled, so that the mid-point is on the grid.
		q := rotate(ipt{g.lo.X + g.hi.X, g.lo.Y + g.hi.Y}, rot)
		w := idx[r].winding(q, i)

		var left, right int
		if dy > 0 {
			left, right = w+g.k, w
		} else {
			left, right = w, w-g.k
		}
		inL, inR := keep(left), keep(right)
		switch {
		case inL && !inR:
			res = append(res, edge{g.lo, g.hi})
		case inR && !inL:
			res = append(res, edge{g.hi, g.lo})
		}
	}
	return res
}

// crossing returns the signed contribution of the segment from a to b
// to the winding number at q, counted along a ray from q towards +x.
func crossing(a, b, q ipt) int {
	if a.Y <= q.Y {
		if b.Y > q.Y && orient(a, b, q) > 0 {
			return 1
		}
	} else if b.Y <= q.Y && orient(a, b, q) < 0 {
		return -1
	}
	return 0
}

type crossSeg struct {
	a, b  ipt
	k     int
	group int
}

// crossIndex buckets the groups into horizontal bands, so that the
// winding number at a point only needs to look at the segments which
// span its y-coordinate.  Coordinates are doubled and rotated like the
// query points in selectBoundary.
type crossIndex struct {
	segs   []crossSeg
	y0     int64
	height int64
	bands  [][]int32
}

func newCrossIndex(groups []group, rot bool) *crossIndex {
	idx := &crossIndex{}
	minY, maxY := int64(math.MaxInt64), int64(math.MinInt64)
	for j, h := range groups {
		a := rotate(ipt{2 * h.lo.X, 2 * h.lo.Y}, rot)
		b := rotate(ipt{2 * h.hi.X, 2 * h.hi.Y}, rot)
		if a.Y == b.Y {
			// horizontal segments never cross the ray
			continue
		}
		idx.segs = append(idx.segs, crossSeg{a: a, b: b, k: h.k, group: j})
		minY = min(minY, a.Y, b.Y)
		maxY = max(maxY, a.Y, b.Y)
	}
	if len(idx.segs) == 0 {
		return idx
	}

	nb := max(1, int(math.Sqrt(float64(len(idx.segs)))))
	idx.y0 = minY
	idx.height = (maxY-minY)/int64(nb) + 1
	idx.bands = make([][]int32, nb)
	for s, seg := range idx.segs {
		lo, hi := min(seg.a.Y, seg.b.Y), max(seg.a.Y, seg.b.Y)
		for k := idx.band(lo); k <= idx.band(hi-1); k++ {
			idx.bands[k] = append(idx.bands[k], int32(s))
		}
	}
	return idx
}

func (idx *crossIndex) band(y int64) int {
	k := (y - idx.y0) / idx.height
	return int(max(0, min(k, int64(len(idx.bands)-1))))
}

// winding returns the winding number at q of all groups except skip.
func (idx *crossIndex) winding(q ipt, skip int) int {
	if len(idx.bands) == 0 {
		return 0
	}
	w := 0
	for _, s := range idx.bands[idx.band(q.Y)] {
		seg := &idx.segs[s]
		if seg.group == skip {
			continue
		}
		w += crossing(seg.a, seg.b, q) * seg.k
	}
	return w
}

// rotate turns p by 90 degrees clockwise if rot is set.
func rotate(p ipt, rot bool) ipt {
	if !rot {
		return p
	}
	return ipt{X: p.Y, Y: -p.X}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// linkEdges joins boundary edges into closed cycles.  Where several
// cycles meet at a vertex, the sharpest left turn is taken, so that
// regions which only touch at a point end up in separate cycles.
func linkEdges(edges []edge) ([][]ipt, bool) {
	out := make(map[ipt][]int)
	for i, e := range edges {
		out[e.a] = append(out[e.a], i)
	}

	next := make([]int, len(edges))
	for i, e := range edges {
		cand := out[e.b]
		switch len(cand) {
		case 0:
			next[i] = -1
		case 1:
			next[i] = cand[0]
		default:
			best, bestAngle := -1, math.Inf(-1)
			for _, j := range cand {
				a := turnAngle(e, edges[j])
				if a > bestAngle {
					best, bestAngle = j, a
				}
			}
			next[i] = best
		}
	}

	complete := true
	used := make([]bool, len(edges))
	var cycles [][]ipt
	for start := range edges {
		if used[start] {
			continue
		}
		var ring []ipt
		i := start
		closed := false
		for i >= 0 && !used[i] {
			used[i] = true
			ring = append(ring, edges[i].a)
			i = next[i]
			if i == start {
				closed = true
				break
			}
		}
		if !closed {
			complete = false
			continue
		}
		cycles = append(cycles, ring)
	}
	return cycles, complete
}

// turnAngle returns the angle of the turn from e into f, in the range
// (-π, π).  A reversal is treated as the sharpest right turn.
func turnAngle(e, f edge) float64 {
	ux, uy := float64(e.b.X-e.a.X), float64(e.b.Y-e.a.Y)
	vx, vy := float64(f.b.X-f.a.X), float64(f.b.Y-f.a.Y)
	cross := ux*vy - uy*vx
	dot := ux*vx + uy*vy
	if cross == 0 && dot < 0 {
		return -math.Pi
	}
	return math.Atan2(cross, dot)
}

// assemble turns oriented cycles into regions.  Counter-clockwise cycles
// become outer contours, clockwise cycles become holes of the smallest
// outer contour containing them.
func assemble(cycles [][]ipt) Shape {
	type shell struct {
		ring  []ipt
		area  int64
		holes [][]ipt
	}
	var shells []*shell
	var holes [][]ipt
	for _, c := range cycles {
		c = simplifyRing(c)
		if len(c) < 3 {
			continue
		}
		a := ringArea2(c)
		switch {
		case a > 0:
			shells = append(shells, &shell{ring: c, area: a})
		case a < 0:
			holes = append(holes, c)
		}
	}

	for _, h := range holes {
		var best *shell
		for _, s := range shells {
			if best != nil && s.area >= best.area {
				continue
			}
			if ringInside(h, s.ring) {
				best = s
			}
		}
		if best != nil {
			best.holes = append(best.holes, h)
		}
	}

	res := make(Shape, 0, len(shells))
	for _, s := range shells {
		r := Region{Outer: ringContour(s.ring)}
		for _, h := range s.holes {
			r.Holes = append(r.Holes, ringContour(h))
		}
		res = append(res, r)
	}
	return res
}

// ringInside reports whether the ring inner lies inside outer.
// The first vertex of inner which is not on the boundary of outer
// decides.
func ringInside(inner, outer []ipt) bool {
	for _, p := range inner {
		switch locate(outer, p) {
		case Inside:
			return true
		case Outside:
			return false
		}
	}
	// All vertices are on the boundary; use an edge mid-point.
	doubled := make([]ipt, len(outer))
	for j, q := range outer {
		doubled[j] = ipt{2 * q.X, 2 * q.Y}
	}
	n := len(inner)
	for i := range n {
		a, b := inner[i], inner[(i+1)%n]
		m := ipt{a.X + b.X, a.Y + b.Y}
		switch locate(doubled, m) {
		case Inside:
			return true
		case Outside:
			return false
		}
	}
	return false
}

// seehuhn.de/go/tessellate - curve discretization for solid modeling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package tessellate

import (
	"container/heap"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Sweep describes how an outline is transformed along an extrusion.
// At fraction t of the way up, the outline is rotated by -Twist*t degrees
// and then scaled by (lerp(1, ScaleX, t), lerp(1, ScaleY, t)).
type Sweep struct {
	Twist  float64 // total rotation, in degrees
	ScaleX float64 // scale factor at the top
	ScaleY float64
	Slices int // number of steps along the sweep, at least 1
}

// Straight returns a sweep without twist or scaling.
func Straight() Sweep {
	return Sweep{ScaleX: 1, ScaleY: 1, Slices: 1}
}

// At returns the linear transformation applied at fraction t of the sweep.
func (s Sweep) At(t float64) matrix.Matrix {
	sx := lerp(1, s.ScaleX, t)
	sy := lerp(1, s.ScaleY, t)
	sin, cos := math.Sincos(-s.Twist * t * math.Pi / 180)
	return matrix.Matrix{sx * cos, sy * sin, -sx * sin, sy * cos, 0, 0}
}

// SplitOutline inserts vertices into o, so that the outline keeps its
// resolution when swept along s.
//
// If segments is positive, or if the resolution has FN > 0, the result
// has (at most) that many vertices, with max(FN, 3) used for FN.  Otherwise
// edges are split by FS, but never into more vertices than FA allows for
// a full circle.
//
// The original vertices are kept, in the same order.  If o already has
// enough vertices, a copy of o is returned.
func (r Resolution) SplitOutline(o Outline, s Sweep, segments int) Outline {
	if segments > 0 || r.fn > 0 {
		target := segments
		if target <= 0 {
			target = toInt(math.Max(r.fn, 3))
		}
		if o.Len() >= target {
			return o.Clone()
		}
		return SplitByCount(o, s, target)
	}

	faSegments := toInt(math.Ceil(360 / r.fa))
	if o.Len() >= faSegments {
		return o.Clone()
	}
	// If $fa gives fewer segments than $fs, $fa wins.
	o2 := SplitByLength(o, s, r.fs)
	if o2.Len() >= faSegments {
		return SplitByCount(o, s, faSegments)
	}
	return o2
}

// SplitByLength splits every edge of o into segments no longer than fs,
// measured at the point of the sweep where the edge is longest.
// Every edge gets at least one segment, so no vertex is lost.
func SplitByLength(o Outline, s Sweep, fs float64) Outline {
	if o.Len() < 2 || !(fs > 0) {
		return o.Clone()
	}

	lengths := maxEdgeLengths(o, s)
	o2 := Outline{
		Vertices: make([]vec.Vec2, 0, o.Len()),
		Positive: o.Positive,
	}
	for i, l := range lengths {
		n := max(toInt(math.Ceil(l/fs)), 1)
		o2.Vertices = addSegmentedEdge(o2.Vertices, o.Vertices[i], o.Vertices[(i+1)%o.Len()], n)
	}
	return o2
}

// SplitByCount inserts vertices into o until it has (close to) target
// vertices.  Extra vertices go to the edges which are longest relative to
// their current number of segments.  Edges of nearly equal length are
// always split together, so that symmetric shapes stay symmetric; if a
// group does not fit, the result has fewer than target vertices.
//
// The result never has more than target vertices.
func SplitByCount(o Outline, s Sweep, target int) Outline {
	n := o.Len()
	if n < 2 || target <= n {
		return o.Clone()
	}

	lengths := maxEdgeLengths(o, s)
	trackers := make([]edgeTracker, n)
	q := make(trackerQueue, n)
	for i, l := range lengths {
		trackers[i] = edgeTracker{index: i, maxLen: l, count: 1}
		q[i] = &trackers[i]
	}
	heap.Init(&q)

	total := n
	batch := make([]*edgeTracker, 0, n)
	for total < target {
		// Group edges with similar metric, compared against the first edge
		// of the group.
		first := heap.Pop(&q).(*edgeTracker)
		batch = append(batch[:0], first)
		for q.Len() > 0 && q[0].closeMatch(first) {
			batch = append(batch, heap.Pop(&q).(*edgeTracker))
		}
		if total+len(batch) > target {
			break
		}
		for _, e := range batch {
			e.count++
			heap.Push(&q, e)
		}
		total += len(batch)
	}

	o2 := Outline{
		Vertices: make([]vec.Vec2, 0, total),
		Positive: o.Positive,
	}
	for i := range trackers {
		o2.Vertices = addSegmentedEdge(o2.Vertices, o.Vertices[i], o.Vertices[(i+1)%n], trackers[i].count)
	}
	return o2
}

// maxEdgeLengths returns, for each edge i from vertex i to vertex i+1,
// the largest length of the edge over all slices of the sweep.
func maxEdgeLengths(o Outline, s Sweep) []float64 {
	n := o.Len()
	lengths := make([]float64, n)

	if s.ScaleX == s.ScaleY {
		// Rotation keeps lengths, so only the scale matters.  The largest
		// scale is at one of the two ends.
		maxScale := math.Max(s.ScaleX, 1)
		for i, v0 := range o.Vertices {
			v1 := o.Vertices[(i+1)%n]
			lengths[i] = v1.Sub(v0).Length() * maxScale
		}
		return lengths
	}

	// With non-uniform scaling the longest version of an edge may occur
	// anywhere along the sweep, so every slice is checked.
	slices := max(s.Slices, 1)
	transforms := make([]matrix.Matrix, slices+1)
	for j := range transforms {
		transforms[j] = s.At(float64(j) / float64(slices))
	}
	for i, v0 := range o.Vertices {
		d := o.Vertices[(i+1)%n].Sub(v0)
		var l float64
		for _, m := range transforms {
			l = math.Max(l, transformLinear(m, d).Length())
		}
		lengths[i] = l
	}
	return lengths
}

// addSegmentedEdge appends n vertices interpolated between v0 and v1.
// The end point v1 is not included, since it starts the next edge.
func addSegmentedEdge(vertices []vec.Vec2, v0, v1 vec.Vec2, n int) []vec.Vec2 {
	d := v1.Sub(v0)
	for j := range n {
		t := float64(j) / float64(n)
		vertices = append(vertices, v0.Add(d.Mul(t)))
	}
	return vertices
}

// transformLinear applies the 2×2 linear part of m to the vector v.
func transformLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// edgeTracker records how often an edge has been split so far.
type edgeTracker struct {
	index  int
	maxLen float64
	count  int
}

// metric is the average of the current segment length and the segment
// length after one more split.
func (e *edgeTracker) metric() float64 {
	return e.maxLen / (float64(e.count) + 0.5)
}

func (e *edgeTracker) closeMatch(other *edgeTracker) bool {
	l1, l2 := e.metric(), other.metric()
	return math.Min(l1, l2)/math.Max(l1, l2) >= closeMatchRatio
}

// trackerQueue is a max-heap of edges by metric.  Ties are broken by edge
// index, so the result does not depend on heap internals.
type trackerQueue []*edgeTracker

func (q trackerQueue) Len() int {
	return len(q)
}

func (q trackerQueue) Less(i, j int) bool {
	mi, mj := q[i].metric(), q[j].metric()
	if mi != mj {
		return mi > mj
	}
	return q[i].index < q[j].index
}

func (q trackerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *trackerQueue) Push(x any) {
	*q = append(*q, x.(*edgeTracker))
}

func (q *trackerQueue) Pop() any {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]
	return x
}

// closeMatchRatio is the ratio above which two edge metrics count as equal.
const closeMatchRatio = 0.999

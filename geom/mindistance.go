// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

// MinDistancePointPoint2 returns the Euclidean distance between two 2D
// points. It is an alias of Distance2 provided for symmetry with the
// rest of the min-distance family.
func MinDistancePointPoint2(a, b r2.Vec) float64 {
	return Distance2(a, b)
}

// MinDistancePointLine2 returns the minimum distance between a point and
// a closed 2D segment, treating the segment as a filled line (not an
// infinite line). Unaffected by reversing the segment's endpoints.
func MinDistancePointLine2(p r2.Vec, l r2.Line, epsilon float64) float64 {
	return distPointSegment2(p, l, epsilon)
}

// MinDistanceLineLine2 returns the minimum distance between two closed
// 2D segments. Unaffected by reversing either segment's endpoints.
func MinDistanceLineLine2(a, b r2.Line, epsilon float64) float64 {
	return distSegmentSegment2(a, b, epsilon)
}

// MinDistancePointTriangle2 returns the minimum distance between a point
// and a closed (filled) 2D triangle. Unaffected by rotating the
// triangle's vertex order.
func MinDistancePointTriangle2(p r2.Vec, t r2.Triangle, epsilon float64) float64 {
	return distPointTriangle2(p, t, epsilon)
}

// MinDistanceLineTriangle2 returns the minimum distance between a closed
// 2D segment and a closed (filled) 2D triangle. Unaffected by reversing
// the segment's endpoints or rotating the triangle's vertex order.
func MinDistanceLineTriangle2(l r2.Line, t r2.Triangle, epsilon float64) float64 {
	return distSegmentTriangle2(l, t, epsilon)
}

// MinDistanceTriangleTriangle2 returns the minimum distance between two
// closed (filled) 2D triangles. Unaffected by rotating either triangle's
// vertex order.
func MinDistanceTriangleTriangle2(s, t r2.Triangle, epsilon float64) float64 {
	return distTriangleTriangle2(s, t, epsilon)
}

// MinDistancePointPoint3 returns the Euclidean distance between two 3D
// points.
func MinDistancePointPoint3(a, b r3.Vec) float64 {
	return Distance3(a, b)
}

// MinDistancePointLine3 returns the minimum distance between a point and
// a closed 3D segment. Unaffected by reversing the segment's endpoints.
func MinDistancePointLine3(p r3.Vec, l r3.Line, epsilon float64) float64 {
	return distPointSegment3(p, l, epsilon)
}

// MinDistanceLineLine3 returns the minimum distance between two closed
// 3D segments. Unaffected by reversing either segment's endpoints.
func MinDistanceLineLine3(a, b r3.Line, epsilon float64) float64 {
	return distSegmentSegment3(a, b, epsilon)
}

// MinDistancePointTriangle3 returns the minimum distance between a point
// and a closed (filled) 3D triangle, treated as a flat 2-manifold patch.
// Unaffected by rotating the triangle's vertex order.
func MinDistancePointTriangle3(p r3.Vec, t r3.Triangle, epsilon float64) float64 {
	return distPointTriangle3(p, t, epsilon)
}

// MinDistanceLineTriangle3 returns the minimum distance between a closed
// 3D segment and a closed (filled) 3D triangle. Unaffected by reversing
// the segment's endpoints or rotating the triangle's vertex order.
func MinDistanceLineTriangle3(l r3.Line, t r3.Triangle, epsilon float64) float64 {
	return distSegmentTriangle3(l, t, epsilon)
}

// MinDistanceTriangleTriangle3 returns the minimum distance between two
// closed (filled) 3D triangles. Unaffected by rotating either triangle's
// vertex order.
func MinDistanceTriangleTriangle3(s, t r3.Triangle, epsilon float64) float64 {
	return distTriangleTriangle3(s, t, epsilon)
}

// --- 2D building blocks -----------------------------------------------

func distPointSegment2(p r2.Vec, l r2.Line, epsilon float64) float64 {
	dir := l.Dir()
	norm2 := r2.Norm2(dir)
	if isZero(norm2, epsilon) {
		return Distance2(p, l[0])
	}
	t := clamp01(r2.Dot(r2.Sub(p, l[0]), dir) / norm2)
	return Distance2(p, l.Vec(t))
}

func distSegmentSegment2(a, b r2.Line, epsilon float64) float64 {
	if _, ok := Intersection2(a, b, epsilon); ok {
		return 0
	}
	return math.Min(
		math.Min(distPointSegment2(a[0], b, epsilon), distPointSegment2(a[1], b, epsilon)),
		math.Min(distPointSegment2(b[0], a, epsilon), distPointSegment2(b[1], a, epsilon)),
	)
}

func distPointTriangle2(p r2.Vec, t r2.Triangle, epsilon float64) float64 {
	if t.ContainsPoint(p, epsilon) {
		return 0
	}
	return minOf(
		distPointSegment2(p, r2.Line{t[0], t[1]}, epsilon),
		distPointSegment2(p, r2.Line{t[1], t[2]}, epsilon),
		distPointSegment2(p, r2.Line{t[2], t[0]}, epsilon),
	)
}

func distSegmentTriangle2(l r2.Line, t r2.Triangle, epsilon float64) float64 {
	if t.ContainsPoint(l[0], epsilon) || t.ContainsPoint(l[1], epsilon) {
		return 0
	}
	edges := triangleEdges2(t)
	for _, e := range edges {
		if _, ok := Intersection2(l, e, epsilon); ok {
			return 0
		}
	}
	return minOf(
		distSegmentSegment2(l, edges[0], epsilon),
		distSegmentSegment2(l, edges[1], epsilon),
		distSegmentSegment2(l, edges[2], epsilon),
	)
}

func distTriangleTriangle2(s, t r2.Triangle, epsilon float64) float64 {
	for _, v := range s {
		if t.ContainsPoint(v, epsilon) {
			return 0
		}
	}
	for _, v := range t {
		if s.ContainsPoint(v, epsilon) {
			return 0
		}
	}
	best := math.Inf(1)
	for _, e1 := range triangleEdges2(s) {
		for _, e2 := range triangleEdges2(t) {
			best = math.Min(best, distSegmentSegment2(e1, e2, epsilon))
		}
	}
	return best
}

func triangleEdges2(t r2.Triangle) [3]r2.Line {
	return [3]r2.Line{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
}

// --- 3D building blocks -----------------------------------------------

func distPointSegment3(p r3.Vec, l r3.Line, epsilon float64) float64 {
	dir := l.Dir()
	norm2 := r3.Norm2(dir)
	if isZero(norm2, epsilon) {
		return Distance3(p, l[0])
	}
	t := clamp01(r3.Dot(r3.Sub(p, l[0]), dir) / norm2)
	return Distance3(p, l.Vec(t))
}

func distSegmentSegment3(a, b r3.Line, epsilon float64) float64 {
	if q1, q2, ok := NearestPoints3(a, b, epsilon); ok {
		return Distance3(q1, q2)
	}
	// Parallel (including collinear) segments: reduce to point-segment.
	return minOf(
		distPointSegment3(a[0], b, epsilon), distPointSegment3(a[1], b, epsilon),
		distPointSegment3(b[0], a, epsilon), distPointSegment3(b[1], a, epsilon),
	)
}

func distPointTriangle3(p r3.Vec, t r3.Triangle, epsilon float64) float64 {
	if proj, ok := ProjectToTriangle3(p, t, epsilon); ok {
		return Distance3(p, proj)
	}
	return minOf(
		distPointSegment3(p, r3.Line{t[0], t[1]}, epsilon),
		distPointSegment3(p, r3.Line{t[1], t[2]}, epsilon),
		distPointSegment3(p, r3.Line{t[2], t[0]}, epsilon),
	)
}

func distSegmentTriangle3(l r3.Line, t r3.Triangle, epsilon float64) float64 {
	if IntersectsLineTriangle3(l, t, epsilon) {
		return 0
	}
	edges := triangleEdges3(t)
	return minOf(
		distSegmentSegment3(l, edges[0], epsilon),
		distSegmentSegment3(l, edges[1], epsilon),
		minOf(
			distSegmentSegment3(l, edges[2], epsilon),
			distPointTriangle3(l[0], t, epsilon),
			distPointTriangle3(l[1], t, epsilon),
		),
	)
}

func distTriangleTriangle3(s, t r3.Triangle, epsilon float64) float64 {
	for _, e := range triangleEdges3(s) {
		if IntersectsLineTriangle3(e, t, epsilon) {
			return 0
		}
	}
	for _, e := range triangleEdges3(t) {
		if IntersectsLineTriangle3(e, s, epsilon) {
			return 0
		}
	}
	best := math.Inf(1)
	for _, e1 := range triangleEdges3(s) {
		for _, e2 := range triangleEdges3(t) {
			best = math.Min(best, distSegmentSegment3(e1, e2, epsilon))
		}
	}
	for _, v := range s {
		best = math.Min(best, distPointTriangle3(v, t, epsilon))
	}
	for _, v := range t {
		best = math.Min(best, distPointTriangle3(v, s, epsilon))
	}
	return best
}

func triangleEdges3(t r3.Triangle) [3]r3.Line {
	return [3]r3.Line{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
}

func minOf(vs ...float64) float64 {
	m := math.Inf(1)
	for _, v := range vs {
		if v < m {
			m = v
		}
	}
	return m
}

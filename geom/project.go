// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

// ProjectToLine2 returns the foot of the perpendicular from p onto the
// infinite line through l, if that foot falls within the closed segment
// l (i.e. its parameter t = ((p-l[0])·(l[1]-l[0])) / |l[1]-l[0]|² lies
// in [0, 1]). ok is false if the projection falls outside the segment
// or if l is degenerate.
func ProjectToLine2(p r2.Vec, l r2.Line, epsilon float64) (r2.Vec, bool) {
	dir := r2.Sub(l[1], l[0])
	norm2 := r2.Norm2(dir)
	if isZero(norm2, epsilon) {
		return r2.Vec{}, false
	}
	t := r2.Dot(r2.Sub(p, l[0]), dir) / norm2
	if t < -epsilon || t > 1+epsilon {
		return r2.Vec{}, false
	}
	return l.Vec(t), true
}

// ProjectToLine3 returns the foot of the perpendicular from p onto the
// infinite line through l, if that foot falls within the closed segment
// l. ok is false if the projection falls outside the segment or if l is
// degenerate. Semantics are identical to ProjectToLine2, lifted to 3D.
func ProjectToLine3(p r3.Vec, l r3.Line, epsilon float64) (r3.Vec, bool) {
	dir := r3.Sub(l[1], l[0])
	norm2 := r3.Norm2(dir)
	if isZero(norm2, epsilon) {
		return r3.Vec{}, false
	}
	t := r3.Dot(r3.Sub(p, l[0]), dir) / norm2
	if t < -epsilon || t > 1+epsilon {
		return r3.Vec{}, false
	}
	return l.Vec(t), true
}

// ProjectToTriangle3 returns the orthogonal projection of p onto the
// plane of t, if that projection lies within the closed triangle (all
// three barycentric coordinates in [0, 1]). ok is false if the
// projection falls outside the triangle or if t is degenerate.
func ProjectToTriangle3(p r3.Vec, t r3.Triangle, epsilon float64) (r3.Vec, bool) {
	n := t.Normal()
	norm2 := n.Dot(n)
	if isZero(norm2, epsilon) {
		return r3.Vec{}, false
	}
	// Distance from p to the plane along the unit normal, then step back
	// by that amount to land the point on the plane.
	d := r3.Sub(p, t[0]).Dot(n) / norm2
	proj := r3.Sub(p, n.Scale(d))

	alpha, beta, gamma, ok := t.Barycentric(proj, epsilon)
	if !ok {
		return r3.Vec{}, false
	}
	if !inUnit(alpha, epsilon) || !inUnit(beta, epsilon) || !inUnit(gamma, epsilon) {
		return r3.Vec{}, false
	}
	return proj, true
}

func inUnit(v, tol float64) bool {
	return v >= -tol && v <= 1+tol
}

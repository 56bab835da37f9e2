// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

// Intersection2 returns the unique point at which segments a and b
// properly intersect, i.e. both segment parameters s, t lie in [0, 1].
// Parallel (including collinear/overlapping) segments report ok=false;
// segments that merely touch at a shared endpoint report that endpoint.
func Intersection2(a, b r2.Line, epsilon float64) (r2.Vec, bool) {
	d1 := a.Dir()
	d2 := b.Dir()
	denom := r2.Cross(d1, d2)
	if isZero(denom, epsilon) {
		return r2.Vec{}, false
	}
	diff := r2.Sub(b[0], a[0])
	s := r2.Cross(diff, d2) / denom
	t := r2.Cross(diff, d1) / denom
	if s < -epsilon || s > 1+epsilon || t < -epsilon || t > 1+epsilon {
		return r2.Vec{}, false
	}
	return a.Vec(s), true
}

// IntersectionLineTriangle3 returns the point at which segment l crosses
// the interior or boundary of triangle t, using the Möller–Trumbore
// algorithm adapted for a bounded segment (rather than an infinite ray).
// ok is false if l is parallel to t's plane (including when l lies
// within that plane) or the segment misses the triangle.
func IntersectionLineTriangle3(l r3.Line, t r3.Triangle, epsilon float64) (r3.Vec, bool) {
	edge1 := r3.Sub(t[1], t[0])
	edge2 := r3.Sub(t[2], t[0])
	dir := l.Dir()

	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if isZero(det, epsilon) {
		return r3.Vec{}, false
	}
	invDet := 1 / det

	tvec := r3.Sub(l[0], t[0])
	u := tvec.Dot(pvec) * invDet
	if u < -epsilon || u > 1+epsilon {
		return r3.Vec{}, false
	}

	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec) * invDet
	if v < -epsilon || u+v > 1+epsilon {
		return r3.Vec{}, false
	}

	s := edge2.Dot(qvec) * invDet
	if s < -epsilon || s > 1+epsilon {
		return r3.Vec{}, false
	}
	return l.Vec(s), true
}

// IntersectsLineTriangle3 reports whether segment l crosses triangle t.
// It is equivalent to IntersectionLineTriangle3 reporting ok=true; the
// two must always agree (this equivalence is a tested contract).
func IntersectsLineTriangle3(l r3.Line, t r3.Triangle, epsilon float64) bool {
	_, ok := IntersectionLineTriangle3(l, t, epsilon)
	return ok
}

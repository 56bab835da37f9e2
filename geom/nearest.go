// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/codekansas/fast-trimesh/r3"

// NearestPoints3 returns the pair of closest points (q1 on a, q2 on b)
// between two 3D segments, with parameters clamped to [0, 1]. ok is
// false if a and b are parallel (including collinear), in which case no
// unique closest pair exists.
//
// This is the clamped segment-segment closest-point algorithm of
// Ericson, "Real-Time Collision Detection" §5.1.9.
func NearestPoints3(a, b r3.Line, epsilon float64) (q1, q2 r3.Vec, ok bool) {
	d1 := a.Dir()
	d2 := b.Dir()
	r := r3.Sub(a[0], b[0])

	aa := d1.Dot(d1)
	ee := d2.Dot(d2)
	f := d2.Dot(r)

	if isZero(aa, epsilon) || isZero(ee, epsilon) {
		return r3.Vec{}, r3.Vec{}, false
	}

	c := d1.Dot(r)
	bb := d1.Dot(d2)
	denom := aa*ee - bb*bb

	if isZero(denom, epsilon) {
		// Parallel (including collinear): no unique closest pair.
		return r3.Vec{}, r3.Vec{}, false
	}

	s := clamp01((bb*f - c*ee) / denom)
	t := (bb*s + f) / ee

	if t < -epsilon {
		t = 0
		s = clamp01(-c / aa)
	} else if t > 1+epsilon {
		t = 1
		s = clamp01((bb - c) / aa)
	}

	q1 = a.Vec(s)
	q2 = b.Vec(t)
	return q1, q2, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

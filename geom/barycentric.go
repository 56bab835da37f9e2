// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

// Barycentric2 returns the barycentric coordinates (α, β, γ) of p with
// respect to 2D triangle t. ok is false for a degenerate t.
func Barycentric2(t r2.Triangle, p r2.Vec, epsilon float64) (alpha, beta, gamma float64, ok bool) {
	return t.Barycentric(p, epsilon)
}

// Barycentric3 returns the barycentric coordinates (α, β, γ) of p with
// respect to 3D triangle t, assuming p lies in the plane of t. ok is
// false for a degenerate t.
func Barycentric3(t r3.Triangle, p r3.Vec, epsilon float64) (alpha, beta, gamma float64, ok bool) {
	return t.Barycentric(p, epsilon)
}

// Circumcircle2 returns the center and radius of the circle passing
// through t's three vertices. ok is false for a degenerate (collinear)
// t.
func Circumcircle2(t r2.Triangle, epsilon float64) (center r2.Vec, radius float64, ok bool) {
	return t.Circumcircle(epsilon)
}

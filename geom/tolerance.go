// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom is the geometric kernel: predicates (intersects,
// contains) and constructions (distance, projection, intersection,
// nearest points, area, rotation, barycentric coordinates,
// circumcircle) over the primitive types in r2 and r3. geom has no
// separate collinearity predicate; collinearity is tested with
// r2.Triangle.IsDegenerate.
//
// Every near-zero test in this package (a degenerate segment or
// triangle, a parallel pair) goes through isZero, which is built on
// equal; parameter range checks compare directly against
// [-epsilon, 1+epsilon]. Operations never panic on
// ill-conditioned input: a division by a near-zero quantity, a parallel
// pair of lines, or a point outside a segment or triangle all resolve to
// a reported "undefined" (ok=false) result rather than propagating NaN
// or Inf.
package geom

import "gonum.org/v1/gonum/floats/scalar"

// DefaultEpsilon is the tolerance Triangulate2D uses when its
// Config.Epsilon is zero. The functions in this package that need a
// tolerance take it as an explicit epsilon argument.
const DefaultEpsilon = 1e-6

// equal reports whether a and b differ by no more than tol.
func equal(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// isZero reports whether v is within tol of zero.
func isZero(v, tol float64) bool {
	return equal(v, 0, tol)
}

// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r2

import "math"

// Triangle represents a triangle in 2D space, composed of the position
// of each of its three vertices. Vertices may be in either winding
// order; no method on Triangle assumes a particular orientation unless
// documented otherwise.
type Triangle [3]Vec

// Centroid returns the intersection of the three medians of the
// triangle.
func (t Triangle) Centroid() Vec {
	return Scale(1.0/3.0, Add(Add(t[0], t[1]), t[2]))
}

// SignedArea returns twice the signed area of the triangle: positive if
// (t[0], t[1], t[2]) winds counterclockwise, negative if clockwise, and
// zero for a degenerate (collinear) triangle.
func (t Triangle) SignedArea() float64 {
	return Cross(Sub(t[1], t[0]), Sub(t[2], t[0]))
}

// Area returns the non-negative surface area of the triangle, regardless
// of winding order.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea()) / 2
}

// IsDegenerate returns true if the triangle's area, relative to the
// length of its longest side, is within tol — equivalently, the
// perpendicular distance from the third vertex to the line through the
// longest side is within tol, i.e. the triangle is collinear within
// tolerance.
func (t Triangle) IsDegenerate(tol float64) bool {
	maxSide := math.Max(Norm(Sub(t[1], t[0])), math.Max(Norm(Sub(t[2], t[1])), Norm(Sub(t[0], t[2]))))
	if maxSide <= tol {
		return true
	}
	return 2*t.Area()/maxSide <= tol
}

// Barycentric returns the barycentric coordinates (α, β, γ) of p with
// respect to t, such that p = α·t[0] + β·t[1] + γ·t[2] and α+β+γ=1. The
// triangle must be non-degenerate; Barycentric returns ok=false for a
// degenerate triangle rather than dividing by a near-zero area.
func (t Triangle) Barycentric(p Vec, tol float64) (alpha, beta, gamma float64, ok bool) {
	denom := t.SignedArea()
	if math.Abs(denom) <= tol {
		return 0, 0, 0, false
	}
	alpha = Triangle{p, t[1], t[2]}.SignedArea() / denom
	beta = Triangle{t[0], p, t[2]}.SignedArea() / denom
	gamma = 1 - alpha - beta
	return alpha, beta, gamma, true
}

// ContainsPoint returns true if p lies within the closed triangle
// (boundary included), independent of the triangle's winding order.
func (t Triangle) ContainsPoint(p Vec, tol float64) bool {
	alpha, beta, gamma, ok := t.Barycentric(p, tol)
	if !ok {
		return false
	}
	return inUnit(alpha, tol) && inUnit(beta, tol) && inUnit(gamma, tol)
}

func inUnit(v, tol float64) bool {
	return v >= -tol && v <= 1+tol
}

// Circumcircle returns the center and radius of the unique circle
// passing through the triangle's three vertices. ok is false if the
// triangle is degenerate (collinear within tol), in which case no
// circumcircle exists.
func (t Triangle) Circumcircle(tol float64) (center Vec, radius float64, ok bool) {
	ax, ay := t[0].X, t[0].Y
	bx, by := t[1].X, t[1].Y
	cx, cy := t[2].X, t[2].Y

	D := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(D) <= tol {
		return Vec{}, 0, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / D
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / D
	center = Vec{X: ux, Y: uy}
	radius = Norm(Sub(t[0], center))
	return center, radius, true
}

// InCircumcircle reports whether p lies strictly inside the circumcircle
// of t, using the standard 4×4 determinant test. t is assumed to be
// wound counterclockwise; callers with a clockwise-wound triangle must
// negate the result (trimesh's legalize step calls it on its own faces,
// which are all wound counterclockwise).
func (t Triangle) InCircumcircle(p Vec, tol float64) bool {
	ax, ay := t[0].X-p.X, t[0].Y-p.Y
	bx, by := t[1].X-p.X, t[1].Y-p.Y
	cx, cy := t[2].X-p.X, t[2].Y-p.Y

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	det := ax*(by*c2-b2*cy) - ay*(bx*c2-b2*cx) + a2*(bx*cy-by*cx)
	return det > tol
}

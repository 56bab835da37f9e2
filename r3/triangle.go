// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r3

import "math"

// Triangle represents a triangle in 3D space, composed of the position
// of each of its three vertices. The ordering of the vertices decides
// the direction of Normal; swapping any two vertices inverts it.
type Triangle [3]Vec

// Centroid returns the intersection of the three medians of the
// triangle.
func (t Triangle) Centroid() Vec {
	return Scale(1.0/3.0, Add(Add(t[0], t[1]), t[2]))
}

// Normal returns the vector perpendicular to the triangle's face with
// magnitude twice the triangle's area. The ordering of the triangle's
// vertices decides the normal's direction. The returned vector is not
// normalized.
func (t Triangle) Normal() Vec {
	s1, s2, _ := t.sides()
	return Cross(s1, s2)
}

// Area returns the non-negative surface area of the triangle.
func (t Triangle) Area() float64 {
	return Norm(t.Normal()) / 2
}

// sides returns vectors for each of the sides of t.
func (t Triangle) sides() (Vec, Vec, Vec) {
	return Sub(t[1], t[0]), Sub(t[2], t[1]), Sub(t[0], t[2])
}

// IsDegenerate returns true if the triangle's area, relative to the
// length of its longest side, is within tol, i.e. the triangle has
// zero area within tolerance.
func (t Triangle) IsDegenerate(tol float64) bool {
	maxSide := math.Max(Norm(Sub(t[1], t[0])), math.Max(Norm(Sub(t[2], t[1])), Norm(Sub(t[0], t[2]))))
	if maxSide <= tol {
		return true
	}
	return 2*t.Area()/maxSide <= tol
}

// Barycentric returns the barycentric coordinates (α, β, γ) of p with
// respect to t, assuming p already lies in the plane of t. ok is false
// for a degenerate triangle.
//
// See Ericson, "Real-Time Collision Detection" §3.4 for the projection
// method used here: each weight is the area of the sub-triangle opposite
// its vertex, projected onto t's own normal direction and normalized by
// t's total (signed) area.
func (t Triangle) Barycentric(p Vec, tol float64) (alpha, beta, gamma float64, ok bool) {
	n := t.Normal()
	denom := n.Dot(n)
	if math.Sqrt(denom) <= tol {
		return 0, 0, 0, false
	}
	na := Cross(Sub(t[2], t[1]), Sub(p, t[1]))
	nb := Cross(Sub(t[0], t[2]), Sub(p, t[2]))
	alpha = na.Dot(n) / denom
	beta = nb.Dot(n) / denom
	gamma = 1 - alpha - beta
	return alpha, beta, gamma, true
}

func inUnit(v, tol float64) bool {
	return v >= -tol && v <= 1+tol
}

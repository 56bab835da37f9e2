// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r2

// Line is a 2D line segment defined by its two endpoints.
type Line [2]Vec

// Vec returns a point on the segment linearly interpolated by t, where
// t=0 gives l[0] and t=1 gives l[1].
func (l Line) Vec(t float64) Vec {
	return Add(l[0], Scale(t, Sub(l[1], l[0])))
}

// Dir returns the direction vector of the segment, from l[0] to l[1].
func (l Line) Dir() Vec {
	return Sub(l[1], l[0])
}

// IsDegenerate returns true if the segment's endpoints are within tol of
// each other, i.e. it has effectively zero length.
func (l Line) IsDegenerate(tol float64) bool {
	return Norm(l.Dir()) <= tol
}

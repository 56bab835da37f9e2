// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package r3 provides 3D vector, bounding box, and triangle primitives.
// Values are immutable: every operation returns a new value rather than
// mutating its receiver.
package r3

import "math"

// Vec is a 3D vector, equivalently a point in space.
type Vec struct {
	X, Y, Z float64
}

// Add returns the vector sum of p and q.
func (p Vec) Add(q Vec) Vec {
	p.X += q.X
	p.Y += q.Y
	p.Z += q.Z
	return p
}

// Sub returns the vector sum of p and -q.
func (p Vec) Sub(q Vec) Vec {
	p.X -= q.X
	p.Y -= q.Y
	p.Z -= q.Z
	return p
}

// Scale returns the vector p scaled by f.
func (p Vec) Scale(f float64) Vec {
	p.X *= f
	p.Y *= f
	p.Z *= f
	return p
}

// Dot returns the dot product p·q.
func (p Vec) Dot(q Vec) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p×q.
func (p Vec) Cross(q Vec) Vec {
	return Vec{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Less reports whether p sorts before q in the lexicographic order (X,
// then Y, then Z). It defines a total order usable for sorting and
// deduplicating point sets.
func (p Vec) Less(q Vec) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// Add returns the vector sum of p and q.
func Add(p, q Vec) Vec { return p.Add(q) }

// Sub returns the vector sum of p and -q.
func Sub(p, q Vec) Vec { return p.Sub(q) }

// Scale returns the vector v scaled by f.
func Scale(f float64, v Vec) Vec { return v.Scale(f) }

// Dot returns the dot product p·q.
func Dot(p, q Vec) float64 { return p.Dot(q) }

// Cross returns the cross product p×q.
func Cross(p, q Vec) Vec { return p.Cross(q) }

// Norm returns the Euclidean norm of p.
func Norm(p Vec) float64 {
	return math.Sqrt(p.Dot(p))
}

// Norm2 returns the Euclidean squared norm of p.
func Norm2(p Vec) float64 {
	return p.Dot(p)
}

// Unit returns the unit vector colinear to p.
// Unit returns a NaN vector for the zero vector.
func Unit(p Vec) Vec {
	if p == (Vec{}) {
		return Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	return p.Scale(1 / Norm(p))
}

func minElem(a, b Vec) Vec {
	return Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxElem(a, b Vec) Vec {
	return Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

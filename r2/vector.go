// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package r2 provides 2D vector, bounding box, and triangle primitives.
// Values are immutable: every operation returns a new value rather than
// mutating its receiver.
package r2

import "math"

// Vec is a 2D vector, equivalently a point in the plane.
type Vec struct {
	X, Y float64
}

// Add returns the vector sum of p and q.
func (p Vec) Add(q Vec) Vec {
	p.X += q.X
	p.Y += q.Y
	return p
}

// Sub returns the vector sum of p and -q.
func (p Vec) Sub(q Vec) Vec {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

// Scale returns the vector p scaled by f.
func (p Vec) Scale(f float64) Vec {
	p.X *= f
	p.Y *= f
	return p
}

// Dot returns the dot product p·q.
func (p Vec) Dot(q Vec) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar cross product p×q.
func (p Vec) Cross(q Vec) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Less reports whether p sorts before q in the lexicographic order
// (X, then Y). It defines a total order usable for sorting and
// deduplicating point sets.
func (p Vec) Less(q Vec) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Add returns the vector sum of p and q.
func Add(p, q Vec) Vec { return p.Add(q) }

// Sub returns the vector sum of p and -q.
func Sub(p, q Vec) Vec { return p.Sub(q) }

// Scale returns the vector v scaled by f.
func Scale(f float64, v Vec) Vec { return v.Scale(f) }

// Dot returns the dot product p·q.
func Dot(p, q Vec) float64 { return p.Dot(q) }

// Cross returns the scalar cross product p×q.
func Cross(p, q Vec) float64 { return p.Cross(q) }

// Norm returns the Euclidean norm of p:
//
//	|p| = sqrt(p_x^2 + p_y^2).
func Norm(p Vec) float64 {
	return math.Hypot(p.X, p.Y)
}

// Norm2 returns the Euclidean squared norm of p:
//
//	|p|^2 = p_x^2 + p_y^2.
func Norm2(p Vec) float64 {
	return p.X*p.X + p.Y*p.Y
}

// Unit returns the unit vector colinear to p.
// Unit returns {NaN,NaN} for the zero vector.
func Unit(p Vec) Vec {
	if p.X == 0 && p.Y == 0 {
		return Vec{X: math.NaN(), Y: math.NaN()}
	}
	return p.Scale(1 / Norm(p))
}

// Rotate returns p rotated counterclockwise by angle radians about the
// origin.
func Rotate(p Vec, angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

func minElem(a, b Vec) Vec {
	return Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

func maxElem(a, b Vec) Vec {
	return Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

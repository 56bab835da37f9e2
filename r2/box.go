// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r2

import "math"

// Box is a 2D axis-aligned bounding box. Well formed Boxes have Min
// components smaller than or equal to Max components.
type Box struct {
	Min, Max Vec
}

// NewBox is shorthand for Box{Min:Vec{x0,y0}, Max:Vec{x1,y1}}. The sides
// are swapped so that the resulting Box is well formed.
func NewBox(x0, y0, x1, y1 float64) Box {
	return Box{
		Min: Vec{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Vec{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// BoundingBox returns the smallest Box containing every point in pts.
// BoundingBox panics if pts is empty.
func BoundingBox(pts []Vec) Box {
	if len(pts) == 0 {
		panic("r2: bounding box of empty point set")
	}
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min = minElem(b.Min, p)
		b.Max = maxElem(b.Max, p)
	}
	return b
}

// Size returns the size of the Box.
func (a Box) Size() Vec {
	return Sub(a.Max, a.Min)
}

// Center returns the center of the Box.
func (a Box) Center() Vec {
	return Scale(0.5, Add(a.Min, a.Max))
}

// Empty returns true if the Box's area is zero or if a Min component is
// greater than its Max component.
func (a Box) Empty() bool {
	return a.Min.X >= a.Max.X || a.Min.Y >= a.Max.Y
}

// Contains returns true if v is contained within the closed bounds of
// the Box.
func (a Box) Contains(v Vec) bool {
	if a.Empty() {
		return v == a.Min && v == a.Max
	}
	return a.Min.X <= v.X && v.X <= a.Max.X &&
		a.Min.Y <= v.Y && v.Y <= a.Max.Y
}

// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trimesh provides an indexed triangle mesh type and a 2D
// Delaunay triangulator built over the r2 and geom packages.
package trimesh

// Edge is a directed pair of vertex indices into a Mesh2D's vertex list.
type Edge struct {
	A, B int
}

// Reversed returns the edge traversed in the opposite direction.
func (e Edge) Reversed() Edge {
	return Edge{A: e.B, B: e.A}
}

// Equal reports whether e and other refer to the same pair of vertices.
// If directed is false, an edge and its reverse compare equal.
func (e Edge) Equal(other Edge, directed bool) bool {
	if e == other {
		return true
	}
	return !directed && e == other.Reversed()
}

// Has reports whether v is one of the edge's endpoints.
func (e Edge) Has(v int) bool {
	return e.A == v || e.B == v
}

// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trimesh

// Face is a triangle specified by three vertex indices, wound
// counterclockwise when the mesh is embedded in the plane.
type Face [3]int

// Edges returns the face's three directed edges, in winding order:
// (a, b), (b, c), (c, a).
func (f Face) Edges() [3]Edge {
	return [3]Edge{
		{A: f[0], B: f[1]},
		{A: f[1], B: f[2]},
		{A: f[2], B: f[0]},
	}
}

// Has reports whether v is one of the face's three vertices.
func (f Face) Has(v int) bool {
	return f[0] == v || f[1] == v || f[2] == v
}

// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trimesh

import "github.com/codekansas/fast-trimesh/r2"

// Mesh2D is an indexed triangle mesh in the plane: a flat list of
// vertices plus a list of faces referencing them by index.
type Mesh2D struct {
	Vertices []r2.Vec
	Faces    []Face
}

// NewMesh2D returns an empty mesh.
func NewMesh2D() *Mesh2D {
	return &Mesh2D{}
}

// AddVertex appends p to the mesh and returns its index.
func (m *Mesh2D) AddVertex(p r2.Vec) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// AddFace appends a face referencing vertices a, b, c and returns its
// index. It panics if any index is out of range.
func (m *Mesh2D) AddFace(a, b, c int) int {
	for _, v := range [3]int{a, b, c} {
		if v < 0 || v >= len(m.Vertices) {
			panic("trimesh: face references out-of-range vertex")
		}
	}
	m.Faces = append(m.Faces, Face{a, b, c})
	return len(m.Faces) - 1
}

// GetTriangle returns the r2.Triangle formed by face f's vertices.
func (m *Mesh2D) GetTriangle(f Face) r2.Triangle {
	return r2.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// GetTriangles returns the r2.Triangle for every face in the mesh, in
// face order.
func (m *Mesh2D) GetTriangles() []r2.Triangle {
	tris := make([]r2.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = m.GetTriangle(f)
	}
	return tris
}

// Concat returns a new mesh holding the union of m and other's vertices
// and faces, with other's face indices offset past m's vertex count.
func (m *Mesh2D) Concat(other *Mesh2D) *Mesh2D {
	out := &Mesh2D{
		Vertices: append(append([]r2.Vec{}, m.Vertices...), other.Vertices...),
		Faces:    append([]Face{}, m.Faces...),
	}
	offset := len(m.Vertices)
	for _, f := range other.Faces {
		out.Faces = append(out.Faces, Face{f[0] + offset, f[1] + offset, f[2] + offset})
	}
	return out
}

// AppendInto merges other's vertices and faces into m in place, offsetting
// other's face indices past m's existing vertex count.
func (m *Mesh2D) AppendInto(other *Mesh2D) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		m.Faces = append(m.Faces, Face{f[0] + offset, f[1] + offset, f[2] + offset})
	}
}

// VertexAdjacency returns, for every vertex index that appears in some
// face, the set of vertex indices it shares a face edge with.
func (m *Mesh2D) VertexAdjacency() map[int][]int {
	seen := make(map[Edge]bool)
	adj := make(map[int]map[int]bool)
	add := func(a, b int) {
		if adj[a] == nil {
			adj[a] = make(map[int]bool)
		}
		adj[a][b] = true
	}
	for _, f := range m.Faces {
		for _, e := range f.Edges() {
			if seen[Edge{e.B, e.A}] || seen[e] {
				continue
			}
			seen[e] = true
			add(e.A, e.B)
			add(e.B, e.A)
		}
	}
	out := make(map[int][]int, len(adj))
	for v, set := range adj {
		neighbors := make([]int, 0, len(set))
		for n := range set {
			neighbors = append(neighbors, n)
		}
		out[v] = neighbors
	}
	return out
}

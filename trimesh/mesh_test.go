// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trimesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codekansas/fast-trimesh/r2"
)

func TestMeshConcatAndAppendInto(t *testing.T) {
	a := NewMesh2D()
	b := NewMesh2D()
	for i := 0; i < 10; i++ {
		a.AddVertex(r2.Vec{X: float64(i)})
		b.AddVertex(r2.Vec{X: float64(i) + 100})
	}
	for i := 0; i < 10; i++ {
		a.AddFace(i%10, (i+1)%10, (i+2)%10)
		b.AddFace(i%10, (i+1)%10, (i+2)%10)
	}

	c := a.Concat(b)
	if len(c.Vertices) != 20 || len(c.Faces) != 20 {
		t.Fatalf("Concat: got %d vertices, %d faces, want 20, 20", len(c.Vertices), len(c.Faces))
	}

	aCopy := &Mesh2D{Vertices: append([]r2.Vec{}, a.Vertices...), Faces: append([]Face{}, a.Faces...)}
	aCopy.AppendInto(b)
	if len(aCopy.Vertices) != 20 || len(aCopy.Faces) != 20 {
		t.Fatalf("AppendInto: got %d vertices, %d faces, want 20, 20", len(aCopy.Vertices), len(aCopy.Faces))
	}

	if diff := cmp.Diff(c, aCopy); diff != "" {
		t.Errorf("Concat and AppendInto produced different meshes (-Concat +AppendInto):\n%s", diff)
	}
}

func TestMeshVertexAdjacency(t *testing.T) {
	m := NewMesh2D()
	for _, p := range []r2.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}} {
		m.AddVertex(p)
	}
	m.AddFace(0, 1, 2)
	m.AddFace(1, 3, 2)

	adj := m.VertexAdjacency()
	want := map[int]map[int]bool{
		0: {1: true, 2: true},
		1: {0: true, 2: true, 3: true},
		2: {0: true, 1: true, 3: true},
		3: {1: true, 2: true},
	}
	for v, neighbors := range adj {
		wantSet := want[v]
		if len(neighbors) != len(wantSet) {
			t.Errorf("vertex %d: got %d neighbors, want %d", v, len(neighbors), len(wantSet))
		}
		for _, n := range neighbors {
			if !wantSet[n] {
				t.Errorf("vertex %d: unexpected neighbor %d", v, n)
			}
		}
	}
}

func TestFaceEdges(t *testing.T) {
	f := Face{0, 1, 2}
	edges := f.Edges()
	want := [3]Edge{{0, 1}, {1, 2}, {2, 0}}
	if edges != want {
		t.Errorf("Edges() = %v, want %v", edges, want)
	}
}

func TestEdgeEqual(t *testing.T) {
	e := Edge{A: 1, B: 2}
	if !e.Equal(Edge{A: 2, B: 1}, false) {
		t.Error("undirected Edge should equal its reverse")
	}
	if e.Equal(Edge{A: 2, B: 1}, true) {
		t.Error("directed Edge should not equal its reverse")
	}
}

// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trimesh

import (
	"errors"
	"math"

	"github.com/codekansas/fast-trimesh/geom"
	"github.com/codekansas/fast-trimesh/r2"
)

// ErrNegativeEpsilon is returned by Triangulate2D when cfg.Epsilon is
// negative.
var ErrNegativeEpsilon = errors.New("trimesh: epsilon must be non-negative")

// errLocationFailed signals that walking point-location could not find
// a containing face, which indicates a bug in adjacency bookkeeping
// rather than anything about the input.
var errLocationFailed = errors.New("trimesh: point location failed to converge")

// Triangulate2D computes the Delaunay triangulation of points using an
// incremental Bowyer-Watson-style construction: a super-triangle
// enclosing every point is inserted first, points are added one at a
// time with walking point-location, and each insertion is followed by
// edge-flip legalization against the empty-circumcircle property. The
// super-triangle's three virtual vertices are removed before returning.
//
// Input points within cfg.Epsilon of one another are deduplicated,
// keeping the first occurrence; the returned mesh's vertex order always
// matches the deduplicated input order, regardless of internal
// insertion order. If fewer than three points remain after
// deduplication, or all points are collinear within cfg.Epsilon,
// Triangulate2D returns a mesh with zero faces.
func Triangulate2D(points []r2.Vec, cfg Config) (*Mesh2D, error) {
	epsilon := cfg.Epsilon
	if epsilon == 0 {
		epsilon = geom.DefaultEpsilon
	}
	if epsilon < 0 {
		return nil, ErrNegativeEpsilon
	}

	deduped, _ := dedupPoints(points, epsilon)
	out := &Mesh2D{Vertices: deduped}
	if len(deduped) < 3 || allCollinear(deduped, epsilon) {
		return out, nil
	}

	order := make([]int, len(deduped))
	for i := range order {
		order[i] = i
	}
	if !cfg.Deterministic {
		order = shuffleIndices(len(deduped), cfg.Source)
	}

	m := newWorkingMesh(epsilon)
	cur := m.addSuperTriangle(deduped)

	// internalToDeduped maps an internal vertex index (>= 3, past the
	// three super-triangle vertices) back to its index in deduped.
	internalToDeduped := make(map[int]int, len(deduped))

	for _, dedupedIdx := range order {
		p := deduped[dedupedIdx]
		internalIdx := m.addVertex(p)
		internalToDeduped[internalIdx] = dedupedIdx

		var err error
		cur, err = m.insert(internalIdx, cur)
		if err != nil {
			return nil, err
		}
	}

	out.Faces = m.extractRealFaces(internalToDeduped)
	return out, nil
}

// dedupPoints returns points with near-duplicates (within epsilon)
// collapsed to their first occurrence, along with a mapping from each
// input index to its index in the deduplicated slice.
func dedupPoints(points []r2.Vec, epsilon float64) (deduped []r2.Vec, origToDeduped []int) {
	origToDeduped = make([]int, len(points))
	for i, p := range points {
		found := -1
		for j, q := range deduped {
			if geom.Distance2(p, q) <= epsilon {
				found = j
				break
			}
		}
		if found == -1 {
			deduped = append(deduped, p)
			found = len(deduped) - 1
		}
		origToDeduped[i] = found
	}
	return deduped, origToDeduped
}

// allCollinear reports whether every point in points forms, with the
// first two points, a triangle that r2.Triangle.IsDegenerate reports as
// degenerate within epsilon.
func allCollinear(points []r2.Vec, epsilon float64) bool {
	if len(points) < 3 {
		return true
	}
	for i := 2; i < len(points); i++ {
		tri := r2.Triangle{points[0], points[1], points[i]}
		if !tri.IsDegenerate(epsilon) {
			return false
		}
	}
	return true
}

// workingMesh is the incremental triangulator's mutable working state:
// a vertex list (beginning with 3 super-triangle vertices), a face
// list, and per-face neighbor adjacency. Faces are never removed from
// the slice; superseded faces are marked dead instead, so indices
// captured before a split or flip can be recognized as stale.
type workingMesh struct {
	verts   []r2.Vec
	faces   []Face
	nbr     [][3]int
	alive   []bool
	epsilon float64
}

func newWorkingMesh(epsilon float64) *workingMesh {
	return &workingMesh{epsilon: epsilon}
}

func (m *workingMesh) addVertex(p r2.Vec) int {
	m.verts = append(m.verts, p)
	return len(m.verts) - 1
}

func (m *workingMesh) addFace(f Face, nbr [3]int) int {
	m.faces = append(m.faces, f)
	m.nbr = append(m.nbr, nbr)
	m.alive = append(m.alive, true)
	return len(m.faces) - 1
}

func (m *workingMesh) triangle(i int) r2.Triangle {
	f := m.faces[i]
	return r2.Triangle{m.verts[f[0]], m.verts[f[1]], m.verts[f[2]]}
}

// edgeIndex returns k such that faces[i][k] == a and faces[i][(k+1)%3]
// == b, or -1 if face i has no such directed edge.
func (m *workingMesh) edgeIndex(i, a, b int) int {
	f := m.faces[i]
	for k := 0; k < 3; k++ {
		if f[k] == a && f[(k+1)%3] == b {
			return k
		}
	}
	return -1
}

// neighborSlot returns k such that nbr[face][k] == target, or -1.
func (m *workingMesh) neighborSlot(face, target int) int {
	for k := 0; k < 3; k++ {
		if m.nbr[face][k] == target {
			return k
		}
	}
	return -1
}

// rehome updates nbFace's own adjacency entry that currently points at
// oldFace to point at newFace instead. A no-op if nbFace is -1
// (boundary).
func (m *workingMesh) rehome(oldFace, nbFace, newFace int) {
	if nbFace == -1 {
		return
	}
	if slot := m.neighborSlot(nbFace, oldFace); slot >= 0 {
		m.nbr[nbFace][slot] = newFace
	}
}

// addSuperTriangle builds a triangle strictly containing the bounding
// box of realPoints with margin well in excess of the required 2x the
// box's max extent, and inserts its three vertices at indices 0, 1, 2.
func (m *workingMesh) addSuperTriangle(realPoints []r2.Vec) int {
	box := r2.BoundingBox(realPoints)
	size := box.Size()
	extent := math.Max(size.X, size.Y)
	if extent <= 0 {
		extent = 1
	}
	margin := extent * 3
	center := box.Center()

	v0 := m.addVertex(r2.Vec{X: center.X - margin*4, Y: center.Y - margin})
	v1 := m.addVertex(r2.Vec{X: center.X + margin*4, Y: center.Y - margin})
	v2 := m.addVertex(r2.Vec{X: center.X, Y: center.Y + margin*4})

	return m.addFace(Face{v0, v1, v2}, [3]int{-1, -1, -1})
}

// locate walks the adjacency graph from start to find a face containing
// p, crossing into whichever neighbor lies on the far side of any edge
// for which p is on the outside.
func (m *workingMesh) locate(start int, p r2.Vec) (int, error) {
	cur := start
	for !m.alive[cur] {
		// start may have been superseded since it was captured; any
		// live face works as a fresh walk origin.
		for i, alive := range m.alive {
			if alive {
				cur = i
				break
			}
		}
	}
	for steps := 0; steps < len(m.faces)*4+16; steps++ {
		f := m.faces[cur]
		moved := false
		for i := 0; i < 3; i++ {
			a, b := m.verts[f[i]], m.verts[f[(i+1)%3]]
			cross := r2.Cross(r2.Sub(b, a), r2.Sub(p, a))
			if cross < -m.epsilon {
				next := m.nbr[cur][i]
				if next == -1 {
					continue
				}
				cur = next
				moved = true
				break
			}
		}
		if !moved {
			return cur, nil
		}
	}
	return 0, errLocationFailed
}

// insert adds vertex v (already appended to verts) into the
// triangulation, starting point location from startFace, and returns a
// face index touching v useful as the next insertion's walk origin.
func (m *workingMesh) insert(v int, startFace int) (int, error) {
	p := m.verts[v]
	cur, err := m.locate(startFace, p)
	if err != nil {
		return 0, err
	}

	if onEdge, nb, edgeK := m.onSharedEdge(cur, p); onEdge {
		faces := m.splitEdge4(cur, nb, edgeK, v)
		m.legalize(faces)
		return faces[0].face, nil
	}

	faces := m.splitFace3(cur, v)
	m.legalize(faces)
	return faces[0].face, nil
}

// onSharedEdge reports whether p lies (within epsilon) on one of face
// cur's three edges, and if so returns the neighboring face across that
// edge and the edge's local index in cur.
func (m *workingMesh) onSharedEdge(cur int, p r2.Vec) (ok bool, nb int, edgeK int) {
	alpha, beta, gamma, bok := m.triangle(cur).Barycentric(p, m.epsilon)
	if !bok {
		return false, -1, -1
	}
	coeffs := [3]float64{alpha, beta, gamma}
	for k := 0; k < 3; k++ {
		// Edge k runs opposite the vertex with barycentric coefficient
		// k (vertex order a=0,b=1,c=2 maps to opposite-edge indices
		// 1, 2, 0 respectively under the (edge0=a-b, edge1=b-c,
		// edge2=c-a) convention).
		oppositeEdge := (k + 1) % 3
		if math.Abs(coeffs[k]) <= m.epsilon {
			n := m.nbr[cur][oppositeEdge]
			if n != -1 {
				return true, n, oppositeEdge
			}
		}
	}
	return false, -1, -1
}

// splitFace3 replaces face cur with three new faces fanning out from v,
// which must lie strictly inside cur. Returns the legalization worklist:
// one item per new face, naming its outer edge.
func (m *workingMesh) splitFace3(cur, v int) []legalizeItem {
	f := m.faces[cur]
	oldNbr := m.nbr[cur]
	m.alive[cur] = false

	idx := [3]int{}
	for k := 0; k < 3; k++ {
		idx[k] = m.addFace(Face{v, f[k], f[(k+1)%3]}, [3]int{-1, -1, -1})
	}
	work := make([]legalizeItem, 0, 3)
	for k := 0; k < 3; k++ {
		m.nbr[idx[k]] = [3]int{idx[(k+2)%3], oldNbr[k], idx[(k+1)%3]}
		m.rehome(cur, oldNbr[k], idx[k])
		work = append(work, legalizeItem{face: idx[k], edge: 1})
	}
	return work
}

// splitEdge4 replaces the two faces sharing edge (a, b) — cur (owning
// edge local index edgeK) and its neighbor nb — with four new faces
// fanning out from v, which must lie on that shared edge.
func (m *workingMesh) splitEdge4(cur, nb, edgeK, v int) []legalizeItem {
	f1 := m.faces[cur]
	a, b, apex1 := f1[edgeK], f1[(edgeK+1)%3], f1[(edgeK+2)%3]

	k2 := m.edgeIndex(nb, b, a)
	f2 := m.faces[nb]
	apex2 := f2[(k2+2)%3]

	oldNbr1 := m.nbr[cur]
	oldNbr2 := m.nbr[nb]
	m.alive[cur] = false
	m.alive[nb] = false

	idx1 := m.addFace(Face{a, v, apex1}, [3]int{-1, -1, -1})
	idx2 := m.addFace(Face{v, b, apex1}, [3]int{-1, -1, -1})
	idx3 := m.addFace(Face{b, v, apex2}, [3]int{-1, -1, -1})
	idx4 := m.addFace(Face{v, a, apex2}, [3]int{-1, -1, -1})

	m.nbr[idx1] = [3]int{idx4, idx2, oldNbr1[(edgeK+2)%3]}
	m.nbr[idx2] = [3]int{idx3, oldNbr1[(edgeK+1)%3], idx1}
	m.nbr[idx3] = [3]int{idx2, idx4, oldNbr2[(k2+2)%3]}
	m.nbr[idx4] = [3]int{idx1, oldNbr2[(k2+1)%3], idx3}

	m.rehome(cur, oldNbr1[(edgeK+2)%3], idx1)
	m.rehome(cur, oldNbr1[(edgeK+1)%3], idx2)
	m.rehome(nb, oldNbr2[(k2+2)%3], idx3)
	m.rehome(nb, oldNbr2[(k2+1)%3], idx4)

	return []legalizeItem{
		{face: idx1, edge: 2},
		{face: idx2, edge: 1},
		{face: idx3, edge: 2},
		{face: idx4, edge: 1},
	}
}

type legalizeItem struct {
	face int
	edge int
}

// legalize drains the flip worklist, repeatedly flipping any edge whose
// opposite vertex violates the empty-circumcircle property and pushing
// the four edges newly exposed by each flip back onto the list.
func (m *workingMesh) legalize(stack []legalizeItem) {
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !m.alive[it.face] {
			continue
		}
		nb := m.nbr[it.face][it.edge]
		if nb == -1 || !m.alive[nb] {
			continue
		}

		f := m.faces[it.face]
		a, b, v := f[it.edge], f[(it.edge+1)%3], f[(it.edge+2)%3]

		k2 := m.edgeIndex(nb, b, a)
		if k2 == -1 {
			continue
		}
		w := m.faces[nb][(k2+2)%3]

		tri := r2.Triangle{m.verts[a], m.verts[b], m.verts[v]}
		if !tri.InCircumcircle(m.verts[w], m.epsilon) {
			continue
		}

		oldNbrFace := m.nbr[it.face]
		oldNbrOther := m.nbr[nb]
		m.alive[it.face] = false
		m.alive[nb] = false

		idx1 := m.addFace(Face{w, b, v}, [3]int{-1, -1, -1})
		idx2 := m.addFace(Face{v, a, w}, [3]int{-1, -1, -1})

		m.nbr[idx1] = [3]int{oldNbrOther[(k2+2)%3], oldNbrFace[(it.edge+1)%3], idx2}
		m.nbr[idx2] = [3]int{oldNbrFace[(it.edge+2)%3], oldNbrOther[(k2+1)%3], idx1}

		m.rehome(it.face, oldNbrFace[(it.edge+1)%3], idx1)
		m.rehome(nb, oldNbrOther[(k2+2)%3], idx1)
		m.rehome(nb, oldNbrOther[(k2+1)%3], idx2)
		m.rehome(it.face, oldNbrFace[(it.edge+2)%3], idx2)

		stack = append(stack,
			legalizeItem{face: idx1, edge: 0},
			legalizeItem{face: idx1, edge: 1},
			legalizeItem{face: idx2, edge: 0},
			legalizeItem{face: idx2, edge: 1},
		)
	}
}

// extractRealFaces returns the live faces that reference no
// super-triangle vertex (internal indices 0, 1, 2), with their vertex
// indices remapped through internalToDeduped.
func (m *workingMesh) extractRealFaces(internalToDeduped map[int]int) []Face {
	var out []Face
	for i, alive := range m.alive {
		if !alive {
			continue
		}
		f := m.faces[i]
		if f[0] < 3 || f[1] < 3 || f[2] < 3 {
			continue
		}
		out = append(out, Face{
			internalToDeduped[f[0]],
			internalToDeduped[f[1]],
			internalToDeduped[f[2]],
		})
	}
	return out
}

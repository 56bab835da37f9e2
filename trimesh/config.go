// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trimesh

import "golang.org/x/exp/rand"

// Config controls Triangulate2D. The zero value is the documented
// default: insertion order is shuffled using the global random source,
// and degeneracy/on-circle decisions use geom.DefaultEpsilon.
type Config struct {
	// Epsilon is the tolerance used for deduplicating input points and
	// for degeneracy/on-circle decisions. Zero selects geom.DefaultEpsilon.
	Epsilon float64

	// Deterministic disables insertion-order shuffling. Expected runtime
	// degrades from O(n log n) to O(n²) in the worst case, but the
	// resulting mesh (up to face ordering) is reproducible across runs.
	Deterministic bool

	// Source is the random source used to shuffle insertion order when
	// Deterministic is false. A nil Source uses the package-global
	// source from golang.org/x/exp/rand.
	Source rand.Source
}

func shuffleIndices(n int, src rand.Source) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	var shuffle func(int, func(i, j int))
	if src == nil {
		shuffle = rand.Shuffle
	} else {
		shuffle = rand.New(src).Shuffle
	}
	shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

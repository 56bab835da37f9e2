// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

// Distance2 returns the Euclidean distance between two 2D points. It is
// symmetric: Distance2(a, b) == Distance2(b, a).
func Distance2(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Distance3 returns the Euclidean distance between two 3D points. It is
// symmetric: Distance3(a, b) == Distance3(b, a).
func Distance3(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

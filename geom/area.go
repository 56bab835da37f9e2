// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

// Area2 returns the non-negative area of a 2D triangle. A degenerate
// triangle has area 0.
func Area2(t r2.Triangle) float64 {
	return t.Area()
}

// Area3 returns the non-negative area of a 3D triangle. A degenerate
// triangle has area 0.
func Area3(t r3.Triangle) float64 {
	return t.Area()
}

// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/codekansas/fast-trimesh/r2"

// ContainsPoint2 reports whether p lies within the closed triangle t
// (boundary included), regardless of t's winding order.
func ContainsPoint2(t r2.Triangle, p r2.Vec, epsilon float64) bool {
	return t.ContainsPoint(p, epsilon)
}

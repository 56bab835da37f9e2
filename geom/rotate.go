// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/codekansas/fast-trimesh/r2"

// Rotate2 returns p rotated counterclockwise about the origin by angle
// radians. Rotate2(p, θ+2π) ≈ Rotate2(p, θ) up to floating-point noise.
func Rotate2(p r2.Vec, angle float64) r2.Vec {
	return r2.Rotate(p, angle)
}

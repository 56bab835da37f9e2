// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/codekansas/fast-trimesh/r2"
)

func TestRotate2(t *testing.T) {
	cases := []struct {
		p     r2.Vec
		angle float64
		want  r2.Vec
	}{
		{r2.Vec{X: 1}, math.Pi / 2, r2.Vec{Y: 1}},
		{r2.Vec{X: 1}, math.Pi, r2.Vec{X: -1}},
		{r2.Vec{X: 1}, 3 * math.Pi / 2, r2.Vec{Y: -1}},
		{r2.Vec{X: 1}, 2 * math.Pi, r2.Vec{X: 1}},
	}
	for _, c := range cases {
		got := Rotate2(c.p, c.angle)
		if math.Abs(got.X-c.want.X) > 1e-5 || math.Abs(got.Y-c.want.Y) > 1e-5 {
			t.Errorf("Rotate2(%v, %v) = %v, want %v", c.p, c.angle, got, c.want)
		}
	}
}

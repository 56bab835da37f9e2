// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/codekansas/fast-trimesh/r3"
)

func TestNearestPoints3(t *testing.T) {
	cases := []struct {
		name   string
		a, b   r3.Line
		q1, q2 r3.Vec
		wantOK bool
	}{
		{
			"crosses",
			r3.Line{{}, {Y: 1, Z: 1}},
			r3.Line{{Z: 1}, {Y: 1}},
			r3.Vec{Y: 0.5, Z: 0.5}, r3.Vec{Y: 0.5, Z: 0.5},
			true,
		},
		{
			"crosses-diagonal",
			r3.Line{{}, {X: 1, Y: 1, Z: 1}},
			r3.Line{{Z: 1}, {X: 1, Y: 1}},
			r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5},
			true,
		},
		{
			"parallel",
			r3.Line{{}, {X: 1, Y: 1, Z: 1}},
			r3.Line{{Z: 1}, {X: 1, Y: 1, Z: 2}},
			r3.Vec{}, r3.Vec{},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q1, q2, ok := NearestPoints3(c.a, c.b, DefaultEpsilon)
			if ok != c.wantOK {
				t.Fatalf("NearestPoints3 ok = %v, want %v", ok, c.wantOK)
			}
			if !ok {
				return
			}
			if Distance3(q1, c.q1) > 1e-6 || Distance3(q2, c.q2) > 1e-6 {
				t.Errorf("NearestPoints3 = (%v, %v), want (%v, %v)", q1, q2, c.q1, c.q2)
			}
		})
	}
}

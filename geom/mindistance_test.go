// Copyright ©2024 The Fast-Trimesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/codekansas/fast-trimesh/r2"
	"github.com/codekansas/fast-trimesh/r3"
)

func reverse2(l r2.Line) r2.Line { return r2.Line{l[1], l[0]} }

func rotateTri2(t r2.Triangle, k int) r2.Triangle {
	return r2.Triangle{t[k%3], t[(k+1)%3], t[(k+2)%3]}
}

func TestMinDistancePointLine2(t *testing.T) {
	cases := []struct {
		p    r2.Vec
		l    r2.Line
		want float64
	}{
		{r2.Vec{}, r2.Line{{}, {X: 1}}, 0},
		{r2.Vec{}, r2.Line{{}, {Y: 1}}, 0},
		{r2.Vec{}, r2.Line{{X: 1}, {X: 2}}, 1},
		{r2.Vec{}, r2.Line{{Y: 1}, {X: 1, Y: 1}}, 1},
	}
	for _, c := range cases {
		if got := MinDistancePointLine2(c.p, c.l, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("MinDistancePointLine2(%v, %v) = %v, want %v", c.p, c.l, got, c.want)
		}
		if got := MinDistancePointLine2(c.p, reverse2(c.l), DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("MinDistancePointLine2(%v, reversed %v) = %v, want %v", c.p, c.l, got, c.want)
		}
	}
}

func TestMinDistanceLineLine2(t *testing.T) {
	cases := []struct {
		a, b r2.Line
		want float64
	}{
		{r2.Line{{}, {X: 1}}, r2.Line{{}, {X: 1}}, 0},
		{r2.Line{{}, {X: 1}}, r2.Line{{}, {Y: 1}}, 0},
		{r2.Line{{}, {X: 1}}, r2.Line{{X: 1}, {X: 2}}, 0},
		{r2.Line{{}, {X: 1}}, r2.Line{{Y: 1}, {X: 1, Y: 1}}, 1},
		{r2.Line{{}, {X: 1}}, r2.Line{{Y: 1}, {Y: 2}}, 1},
		{r2.Line{{}, {X: 1}}, r2.Line{{Y: 2}, {Y: 3}}, 2},
		{r2.Line{{}, {Y: 1}}, r2.Line{{X: 2, Y: 1}, {X: 2, Y: 2}}, 2},
	}
	for _, c := range cases {
		variants := []struct{ a, b r2.Line }{
			{c.a, c.b},
			{c.a, reverse2(c.b)},
			{reverse2(c.a), c.b},
			{reverse2(c.a), reverse2(c.b)},
		}
		for _, v := range variants {
			if got := MinDistanceLineLine2(v.a, v.b, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
				t.Errorf("MinDistanceLineLine2(%v, %v) = %v, want %v", v.a, v.b, got, c.want)
			}
		}
	}
}

func TestMinDistancePointTriangle2(t *testing.T) {
	cases := []struct {
		p    r2.Vec
		tri  r2.Triangle
		want float64
	}{
		{r2.Vec{}, r2.Triangle{{}, {X: 1}, {Y: 1}}, 0},
		{r2.Vec{}, r2.Triangle{{}, {Y: 1}, {X: 1}}, 0},
		{r2.Vec{}, r2.Triangle{{Y: 1}, {X: 1, Y: 1}, {Y: 2}}, 1},
		{r2.Vec{}, r2.Triangle{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}, math.Sqrt2},
		{r2.Vec{}, r2.Triangle{{X: 2, Y: 1}, {X: -1, Y: -1}, {X: -1, Y: 1}}, 0},
		{r2.Vec{}, r2.Triangle{{X: 1}, {X: 2}, {X: 1, Y: 1}}, 1},
		{r2.Vec{}, r2.Triangle{{Y: 2}, {Y: 3}, {X: 1, Y: 2}}, 2},
	}
	for _, c := range cases {
		for k := 0; k < 3; k++ {
			tri := rotateTri2(c.tri, k)
			if got := MinDistancePointTriangle2(c.p, tri, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
				t.Errorf("MinDistancePointTriangle2(%v, %v) = %v, want %v", c.p, tri, got, c.want)
			}
		}
	}
}

func TestMinDistanceLineTriangle2(t *testing.T) {
	cases := []struct {
		l    r2.Line
		tri  r2.Triangle
		want float64
	}{
		{r2.Line{{}, {X: 1}}, r2.Triangle{{}, {X: 1}, {Y: 1}}, 0},
		{r2.Line{{}, {X: 1}}, r2.Triangle{{}, {Y: 1}, {X: 1}}, 0},
		{r2.Line{{}, {X: 1}}, r2.Triangle{{Y: 1}, {X: 1, Y: 1}, {Y: 2}}, 1},
		{r2.Line{{}, {X: 1}}, r2.Triangle{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}, 1},
		{r2.Line{{}, {X: 1}}, r2.Triangle{{X: 2, Y: 1}, {X: -1, Y: -1}, {X: -1, Y: 1}}, 0},
	}
	for _, c := range cases {
		lines := []r2.Line{c.l, reverse2(c.l)}
		for _, l := range lines {
			for k := 0; k < 3; k++ {
				tri := rotateTri2(c.tri, k)
				if got := MinDistanceLineTriangle2(l, tri, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
					t.Errorf("MinDistanceLineTriangle2(%v, %v) = %v, want %v", l, tri, got, c.want)
				}
			}
		}
	}
}

func reverse3(l r3.Line) r3.Line { return r3.Line{l[1], l[0]} }

func rotateTri3(t r3.Triangle, k int) r3.Triangle {
	return r3.Triangle{t[k%3], t[(k+1)%3], t[(k+2)%3]}
}

func TestMinDistancePointLine3(t *testing.T) {
	cases := []struct {
		p    r3.Vec
		l    r3.Line
		want float64
	}{
		{r3.Vec{}, r3.Line{{}, {X: 1}}, 0},
		{r3.Vec{}, r3.Line{{}, {Y: 1}}, 0},
		{r3.Vec{}, r3.Line{{}, {Z: 1}}, 0},
		{r3.Vec{}, r3.Line{{X: 1}, {X: 2}}, 1},
		{r3.Vec{}, r3.Line{{Y: 1}, {X: 1, Y: 1}}, 1},
		{r3.Vec{}, r3.Line{{Z: -1}, {Z: 1}}, 0},
	}
	for _, c := range cases {
		if got := MinDistancePointLine3(c.p, c.l, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("MinDistancePointLine3(%v, %v) = %v, want %v", c.p, c.l, got, c.want)
		}
		if got := MinDistancePointLine3(c.p, reverse3(c.l), DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("MinDistancePointLine3(%v, reversed %v) = %v, want %v", c.p, c.l, got, c.want)
		}
	}
}

func TestMinDistanceLineLine3(t *testing.T) {
	cases := []struct {
		a, b r3.Line
		want float64
	}{
		{r3.Line{{}, {X: 1}}, r3.Line{{}, {X: 1}}, 0},
		{r3.Line{{}, {X: 1}}, r3.Line{{}, {Y: 1}}, 0},
		{r3.Line{{}, {X: 1}}, r3.Line{{}, {Z: 1}}, 0},
		{r3.Line{{}, {X: 1}}, r3.Line{{X: 1, Z: 1}, {X: 2, Z: 1}}, 1},
		{r3.Line{{}, {X: 1}}, r3.Line{{Y: 1}, {X: 1, Y: 1}}, 1},
		{r3.Line{{Z: -1}, {Z: 1}}, r3.Line{{X: -1, Y: 1}, {X: 1, Y: 1}}, 1},
	}
	for _, c := range cases {
		variants := []struct{ a, b r3.Line }{
			{c.a, c.b},
			{c.a, reverse3(c.b)},
			{reverse3(c.a), c.b},
			{reverse3(c.a), reverse3(c.b)},
		}
		for _, v := range variants {
			if got := MinDistanceLineLine3(v.a, v.b, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
				t.Errorf("MinDistanceLineLine3(%v, %v) = %v, want %v", v.a, v.b, got, c.want)
			}
		}
	}
}

func TestMinDistancePointTriangle3(t *testing.T) {
	cases := []struct {
		p    r3.Vec
		tri  r3.Triangle
		want float64
	}{
		{r3.Vec{}, r3.Triangle{{}, {X: 1}, {Y: 1}}, 0},
		{r3.Vec{}, r3.Triangle{{Z: 1}, {X: 1, Z: 1}, {Y: 1, Z: 1}}, 1},
		{r3.Vec{Y: 2}, r3.Triangle{{Z: -1}, {X: 1, Z: -1}, {Z: 1}}, 2},
		{r3.Vec{}, r3.Triangle{{Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Z: 1}}, 1},
	}
	for _, c := range cases {
		for k := 0; k < 3; k++ {
			tri := rotateTri3(c.tri, k)
			if got := MinDistancePointTriangle3(c.p, tri, DefaultEpsilon); math.Abs(got-c.want) > 1e-6 {
				t.Errorf("MinDistancePointTriangle3(%v, %v) = %v, want %v", c.p, tri, got, c.want)
			}
		}
	}
}

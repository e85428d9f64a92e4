// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func closeEnough(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBallInfScenario(t *testing.T) {
	chk.PrintTitle("BallInf: literal scenario from spec §8")
	c := NewBallInf[float64](nil, 1.0)
	x := []float64{2, -0.5, 3}
	c.Project(x)
	want := []float64{1, -0.5, 1}
	for i := range want {
		if !closeEnough(x[i], want[i], 1e-12) {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSOCScenario(t *testing.T) {
	chk.PrintTitle("SOC: literal scenario from spec §8")
	c := NewSOC[float64](1.0)
	x := []float64{3, 4, 0}
	c.Project(x)
	want := []float64{1.5, 2.0, 2.5}
	for i := range want {
		if !closeEnough(x[i], want[i], 1e-9) {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSimplexScenario(t *testing.T) {
	chk.PrintTitle("Simplex: literal scenario from spec §8")
	c := NewSimplex[float64](1.0)
	x := []float64{0.5, 0.5, 0.5}
	c.Project(x)
	want := 1.0 / 3.0
	for i := range x {
		if !closeEnough(x[i], want, 1e-10) {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want)
		}
	}
}

func TestSimplexSumsToAlpha(t *testing.T) {
	chk.PrintTitle("Simplex: projection sums to alpha")
	alpha := 2.5
	c := NewSimplex[float64](alpha)
	x := []float64{5, -1, 3, 0.2, -4, 7}
	c.Project(x)
	var sum float64
	for _, xi := range x {
		if xi < 0 {
			t.Fatalf("simplex projection produced negative component %v", xi)
		}
		sum += xi
	}
	if !closeEnough(sum, alpha, 1e-9*alpha) {
		t.Fatalf("sum = %v, want %v", sum, alpha)
	}
}

func TestBall1NormBound(t *testing.T) {
	chk.PrintTitle("Ball1: projection respects the l1 bound")
	radius := 1.5
	c := NewBall1[float64](nil, radius)
	x := []float64{3, -2, 1, -0.5}
	c.Project(x)
	var norm1 float64
	for _, xi := range x {
		norm1 += math.Abs(xi)
	}
	if norm1 > radius+1e-9 {
		t.Fatalf("||x||_1 = %v, want <= %v", norm1, radius)
	}
}

func TestBall2NormBound(t *testing.T) {
	chk.PrintTitle("Ball2: projection respects the l2 bound")
	radius := 2.0
	c := NewBall2[float64](nil, radius)
	x := []float64{10, 10, 10}
	c.Project(x)
	var norm2 float64
	for _, xi := range x {
		norm2 += xi * xi
	}
	norm2 = math.Sqrt(norm2)
	if !closeEnough(norm2, radius, 1e-9) {
		t.Fatalf("||x||_2 = %v, want %v", norm2, radius)
	}
}

func TestHyperplaneSatisfiesConstraint(t *testing.T) {
	chk.PrintTitle("Hyperplane: projection lands on <c,y>=b")
	normal := []float64{1, 2, -1}
	b := 4.0
	c := NewHyperplane[float64](normal, b)
	x := []float64{10, -3, 7}
	c.Project(x)
	var dot float64
	for i := range normal {
		dot += normal[i] * x[i]
	}
	if !closeEnough(dot, b, 1e-9) {
		t.Fatalf("<c,y> = %v, want %v", dot, b)
	}
}

func TestProjectionIdempotence(t *testing.T) {
	chk.PrintTitle("all convex constraints: projection is idempotent")
	cases := []struct {
		name string
		c    Constraint[float64]
		x    []float64
	}{
		{"no-constraints", NewNoConstraints[float64](), []float64{1, 2, 3}},
		{"zero", NewZero[float64](), []float64{1, 2, 3}},
		{"rectangle", NewRectangle[float64]([]float64{0, 0}, []float64{1, 1}), []float64{5, -5}},
		{"ball2", NewBall2[float64](nil, 1.0), []float64{5, 5}},
		{"ball-inf", NewBallInf[float64](nil, 1.0), []float64{5, -5}},
		{"ball1", NewBall1[float64](nil, 1.0), []float64{5, -5, 2}},
		{"simplex", NewSimplex[float64](1.0), []float64{5, -5, 2}},
		{"soc", NewSOC[float64](1.0), []float64{5, 5, 0}},
		{"hyperplane", NewHyperplane[float64]([]float64{1, 1}, 1.0), []float64{5, -5}},
	}
	for _, tc := range cases {
		if !tc.c.IsConvex() {
			t.Fatalf("%s: expected IsConvex() == true", tc.name)
		}
		tc.c.Project(tc.x)
		once := append([]float64(nil), tc.x...)
		tc.c.Project(tc.x)
		for i := range once {
			if !closeEnough(once[i], tc.x[i], 1e-9) {
				t.Fatalf("%s: projection not idempotent at index %d: %v != %v", tc.name, i, once[i], tc.x[i])
			}
		}
	}
}

func TestSphere2IsNotConvex(t *testing.T) {
	chk.PrintTitle("Sphere2: IsConvex reports false")
	c := NewSphere2[float64](nil, 1.0)
	if c.IsConvex() {
		t.Fatalf("Sphere2.IsConvex() = true, want false")
	}
	x := []float64{3, 4}
	c.Project(x)
	norm := math.Sqrt(x[0]*x[0] + x[1]*x[1])
	if !closeEnough(norm, 1.0, 1e-9) {
		t.Fatalf("||x|| = %v, want 1", norm)
	}
}

func TestRegistryBuildsKnownConstraints(t *testing.T) {
	chk.PrintTitle("registry: New builds every registered family member")
	names := []string{
		"no-constraints", "zero", "rectangle", "ball2", "ball-inf",
		"ball1", "simplex", "soc", "sphere2", "hyperplane",
	}
	for _, name := range names {
		prms := fun.Prms{
			&fun.Prm{N: "radius", V: 1.0},
			&fun.Prm{N: "alpha", V: 1.0},
			&fun.Prm{N: "offset", V: 0.0},
		}
		vecPrms := map[string][]float64{
			"xmin": {0, 0}, "xmax": {1, 1},
			"normal": {1, 1}, "center": {0, 0},
		}
		if _, err := New(name, prms, vecPrms); err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
	}
	if _, err := New("unknown-family", nil, nil); err == nil {
		t.Fatalf("New(\"unknown-family\") should have failed")
	}
}

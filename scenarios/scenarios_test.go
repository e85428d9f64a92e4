// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenarios

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func closeEnough(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestHardQuadraticCostAndGradient(tst *testing.T) {
	chk.PrintTitle("HardQuadraticCostAndGradient")

	u := []float64{1.5, 2.6, -3.7}
	cost, err := HardQuadraticCost(u)
	if err != nil {
		tst.Fatalf("HardQuadraticCost failed: %v", err)
	}
	if !closeEnough(cost, 6726.575, 1e-8) {
		tst.Errorf("cost = %v, want 6726.575", cost)
	}

	grad := make([]float64, 3)
	if err := HardQuadraticGradient(u, grad); err != nil {
		tst.Fatalf("HardQuadraticGradient failed: %v", err)
	}
	want := []float64{-72.5, 18.6, -3652.2}
	for i := range want {
		if !closeEnough(grad[i], want[i], 1e-6) {
			tst.Errorf("grad[%d] = %v, want %v", i, grad[i], want[i])
		}
	}
}

func TestQuadraticGradientAtZero(tst *testing.T) {
	chk.PrintTitle("QuadraticGradientAtZero")

	grad := make([]float64, 2)
	if err := QuadraticGradient([]float64{0, 0}, grad); err != nil {
		tst.Fatalf("QuadraticGradient failed: %v", err)
	}
	if !closeEnough(grad[0], 1, 1e-12) || !closeEnough(grad[1], -1, 1e-12) {
		tst.Errorf("grad = %v, want [1 -1]", grad)
	}
}

func TestRosenbrockMinimumIsZero(tst *testing.T) {
	chk.PrintTitle("RosenbrockMinimumIsZero")

	a, b := 1.0, 100.0
	cost := RosenbrockCost(a, b, []float64{a, a * a})
	if !closeEnough(cost, 0, 1e-12) {
		tst.Errorf("cost at (a, a^2) = %v, want 0", cost)
	}

	grad := make([]float64, 2)
	RosenbrockGradient(a, b, []float64{a, a * a}, grad)
	for i, g := range grad {
		if !closeEnough(g, 0, 1e-10) {
			tst.Errorf("grad[%d] at minimizer = %v, want 0", i, g)
		}
	}
}

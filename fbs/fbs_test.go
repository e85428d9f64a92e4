// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/scenarios"
	"github.com/cpmech/panoc/status"
)

// TestQuadraticOverBall2 is spec.md §8 scenario 4: the forward-backward
// splitting engine, with gamma=0.1 and tau=1e-6, must drive the
// well-conditioned quadratic cost to its known minimizer over Ball2(0,
// 0.2) from u0=(0,0).
func TestQuadraticOverBall2(tst *testing.T) {
	chk.PrintTitle("QuadraticOverBall2")

	ball := constraints.NewBall2[float64](nil, 0.2)
	p := problem.New[float64](
		ball,
		func(u, grad []float64) error { return scenarios.QuadraticGradient(u, grad) },
		func(u []float64) (float64, error) { return scenarios.QuadraticCost(u) },
	)

	cache := NewCache[float64](2, 0.1, 1e-6)
	optimizer := NewOptimizer[float64](p, cache).WithMaxIter(1000)

	u := []float64{0, 0}
	result, err := optimizer.Solve(u)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if result.Status != status.Converged {
		tst.Errorf("status = %v, want Converged", result.Status)
	}

	want := scenarios.SolutionQuadratic
	for i := range want {
		if math.Abs(u[i]-want[i]) > 1e-4 {
			tst.Errorf("u[%d] = %v, want %v", i, u[i], want[i])
		}
	}
}

// TestNoConstraintsConvergesToUnconstrainedMinimum exercises FBS's simplest
// case: U = R^n, so the projected-gradient iteration is plain gradient
// descent.
func TestNoConstraintsConvergesToUnconstrainedMinimum(tst *testing.T) {
	chk.PrintTitle("NoConstraintsConvergesToUnconstrainedMinimum")

	none := constraints.NewNoConstraints[float64]()
	p := problem.New[float64](
		none,
		func(u, grad []float64) error { return scenarios.QuadraticGradient(u, grad) },
		func(u []float64) (float64, error) { return scenarios.QuadraticCost(u) },
	)

	// unconstrained minimizer solves grad f(u) = 0: u1+u2 = -1, u1+2u2 = 1
	// => u2 = 2, u1 = -3
	cache := NewCache[float64](2, 0.3, 1e-10)
	optimizer := NewOptimizer[float64](p, cache).WithMaxIter(2000)

	u := []float64{0, 0}
	result, err := optimizer.Solve(u)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if result.Status != status.Converged {
		tst.Errorf("status = %v, want Converged", result.Status)
	}
	if math.Abs(u[0]-(-3)) > 1e-4 || math.Abs(u[1]-2) > 1e-4 {
		tst.Errorf("u = %v, want [-3 2]", u)
	}
}

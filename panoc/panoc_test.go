// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panoc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/scenarios"
	"github.com/cpmech/panoc/status"
)

// TestQuadraticOverBall2 is spec.md §8 scenario 5: PANOC must drive the
// same well-conditioned quadratic cost to its known minimizer over
// Ball2(0, 0.2) within 100 iterations.
func TestQuadraticOverBall2(tst *testing.T) {
	chk.PrintTitle("QuadraticOverBall2")

	ball := constraints.NewBall2[float64](nil, 0.2)
	p := problem.New[float64](
		ball,
		func(u, grad []float64) error { return scenarios.QuadraticGradient(u, grad) },
		func(u []float64) (float64, error) { return scenarios.QuadraticCost(u) },
	)

	cache := NewCache[float64](2, 5, 1e-9)
	optimizer := NewOptimizer[float64](p, cache).WithMaxIter(100)

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

// TestRosenbrockWithCautiousBFGS is spec.md §8 scenario 6: PANOC with
// m=2, tau=1e-12 and cBFGS(alpha=2, epsilon=1e-6, epsilon_sy=1e-12) on
// Rosenbrock over Ball2(r=1) from u0=(-1.5, 0.9) must converge within 50
// iterations with a final ||gamma*FPR|| <= tau.
func TestRosenbrockWithCautiousBFGS(tst *testing.T) {
	chk.PrintTitle("RosenbrockWithCautiousBFGS")

	const a, b = 1.0, 100.0
	ball := constraints.NewBall2[float64](nil, 1.0)
	p := problem.New[float64](
		ball,
		func(u, grad []float64) error {
			scenarios.RosenbrockGradient(a, b, u, grad)
			return nil
		},
		func(u []float64) (float64, error) {
			return scenarios.RosenbrockCost(a, b, u), nil
		},
	)

	tolerance := 1e-12
	cache := NewCache[float64](2, 2, tolerance).WithCBFGSParameters(2, 1e-6, 1e-12)
	optimizer := NewOptimizer[float64](p, cache).WithMaxIter(50)

	u := []float64{-1.5, 0.9}
	result, err := optimizer.Solve(u)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if result.Iterations > 50 {
		tst.Errorf("iterations = %d, want <= 50", result.Iterations)
	}
	if result.NormFPR > tolerance {
		tst.Errorf("|gamma*FPR| = %v, want <= %v", result.NormFPR, tolerance)
	}
}

// TestHardQuadraticConvergesDespiteIllConditioning exercises PANOC's
// Lipschitz refinement loop against a cost whose gradient's Lipschitz
// constant (norm(Hessian) ~ 1001.653) is three orders of magnitude larger
// than the well-conditioned scenarios above, constrained to Ball2(0,
// 0.05).
func TestHardQuadraticConvergesDespiteIllConditioning(tst *testing.T) {
	chk.PrintTitle("HardQuadraticConvergesDespiteIllConditioning")

	ball := constraints.NewBall2[float64](nil, 0.05)
	p := problem.New[float64](
		ball,
		func(u, grad []float64) error { return scenarios.HardQuadraticGradient(u, grad) },
		func(u []float64) (float64, error) { return scenarios.HardQuadraticCost(u) },
	)

	cache := NewCache[float64](3, 10, 1e-12)
	optimizer := NewOptimizer[float64](p, cache).WithMaxIter(100)

	u := []float64{-20, 10, 0.2}
	result, err := optimizer.Solve(u)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if result.Status != status.Converged {
		tst.Errorf("status = %v, want Converged", result.Status)
	}

	want := scenarios.SolutionHardQuadratic
	for i := range want {
		if math.Abs(u[i]-want[i]) > 1e-3 {
			tst.Errorf("u[%d] = %v, want %v", i, u[i], want[i])
		}
	}
}

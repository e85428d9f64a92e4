// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/fbs"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/scenarios"
)

func TestDriverRecordsQuadraticHistory(tst *testing.T) {
	chk.PrintTitle("DriverRecordsQuadraticHistory")

	ball := constraints.NewBall2[float64](nil, 0.2)
	p := problem.New[float64](
		ball,
		func(u, grad []float64) error { return scenarios.QuadraticGradient(u, grad) },
		func(u []float64) (float64, error) { return scenarios.QuadraticCost(u) },
	)

	cache := fbs.NewCache[float64](2, 0.1, 1e-6)
	engine := fbs.NewEngine[float64](p, cache)
	drv := New[float64](engine, p).WithMaxIter(500)

	u := []float64{0, 0}
	iterations, err := drv.Run(u)
	if err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if iterations == 0 || len(drv.History) != iterations {
		tst.Fatalf("iterations = %d, len(History) = %d", iterations, len(drv.History))
	}

	want := scenarios.SolutionQuadratic
	for i := range want {
		if math.Abs(u[i]-want[i]) > 1e-4 {
			tst.Errorf("u[%d] = %v, want %v", i, u[i], want[i])
		}
	}

	last := drv.History[len(drv.History)-1]
	if last.StepNorm < 0 {
		tst.Errorf("final StepNorm = %v, want >= 0", last.StepNorm)
	}

	if length := PathLength([]float64{0, 0}, drv.History); length <= 0 {
		tst.Errorf("PathLength = %v, want > 0", length)
	}
}

func TestNewFromParamsRejectsUnknownParameter(tst *testing.T) {
	chk.PrintTitle("NewFromParams: rejects unknown parameter name")

	ball := constraints.NewBall2[float64](nil, 0.2)
	p := problem.New[float64](
		ball,
		func(u, grad []float64) error { return scenarios.QuadraticGradient(u, grad) },
		func(u []float64) (float64, error) { return scenarios.QuadraticCost(u) },
	)
	cache := fbs.NewCache[float64](2, 0.1, 1e-6)
	engine := fbs.NewEngine[float64](p, cache)

	if _, err := NewFromParams[float64](engine, p, fun.Prms{&fun.Prm{N: "maxiter", V: 250}}); err != nil {
		tst.Fatalf("NewFromParams failed: %v", err)
	}
	if _, err := NewFromParams[float64](engine, p, fun.Prms{&fun.Prm{N: "bogus", V: 1}}); err == nil {
		tst.Fatalf("NewFromParams should have rejected an unknown parameter name")
	}
}

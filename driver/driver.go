// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver runs an optimization engine to completion and records its
// full iterate history, the way the teacher's msolid.Driver ran a
// constitutive model over a strain path and recorded the resulting
// stress/strain history. Here the "path" is the sequence of PANOC or FBS
// iterates from a single starting point u0, and the recorded state is
// (u, cost, step norm) rather than (stress, strain).
package driver

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/vecutil"
)

const defaultMaxIter = 100

// Engine is satisfied by both *fbs.Engine[T] and *panoc.Engine[T]: the
// minimal Init/Step contract every algorithm engine in this module
// exposes (SPEC_FULL.md's AlgorithmEngine interface).
type Engine[T constraints.Real] interface {
	Init(u []T) error
	Step(u []T) (bool, error)
}

// Record is one entry of a Driver's history: the iterate, its cost, and
// the infinity-norm distance from the previous iterate.
type Record[T constraints.Real] struct {
	U        []T
	Cost     T
	StepNorm T
}

// Driver runs any Engine from a starting point and records every
// iterate, for inspection, plotting or regression testing -- the
// optimizer loops in fbs/panoc do not keep this history themselves, since
// it would be wasted allocation on their hot path (§5).
type Driver[T constraints.Real] struct {
	engine  Engine[T]
	problem problem.Problem[T]
	maxIter int

	// History holds one Record per completed Step call, in order, after
	// Run returns.
	History []Record[T]
}

// New binds an Engine and the Problem it solves into a Driver with the
// default iteration cap (100).
func New[T constraints.Real](engine Engine[T], p problem.Problem[T]) *Driver[T] {
	return &Driver[T]{engine: engine, problem: p, maxIter: defaultMaxIter}
}

// WithMaxIter overrides the default iteration cap. Panics if maxIter is
// not strictly positive, the teacher's construction-time validation idiom
// (gosl/utl's utl.Panic) rather than a runtime error, since this is a
// programmer mistake, never a recoverable condition encountered mid-solve.
func (d *Driver[T]) WithMaxIter(maxIter int) *Driver[T] {
	if maxIter <= 0 {
		utl.Panic("driver: maxIter must be positive, got %d", maxIter)
	}
	d.maxIter = maxIter
	return d
}

// NewFromParams builds a Driver the same way New does, but reads the
// iteration cap from a data-driven parameter bundle instead of a literal
// argument -- the idiom the teacher's mdl/solid models use to describe
// tunables (fun.Prm{N, V} / fun.Prms), here adapted to the driver's own
// single tunable. Unrecognized parameter names are rejected, mirroring
// mdl/solid's DruckerPrager.Init switch-with-default.
func NewFromParams[T constraints.Real](engine Engine[T], p problem.Problem[T], prms fun.Prms) (*Driver[T], error) {
	d := New[T](engine, p)
	for _, prm := range prms {
		switch prm.N {
		case "maxiter":
			d.WithMaxIter(int(prm.V))
		default:
			return nil, chk.Err("driver: parameter named %q is incorrect\n", prm.N)
		}
	}
	return d, nil
}

// Run drives u in place from its initial value, recording one Record per
// iteration into d.History (replacing any previous run's history), and
// returns the number of iterations actually taken.
func (d *Driver[T]) Run(u []T) (int, error) {
	d.History = d.History[:0]

	if err := d.engine.Init(u); err != nil {
		return 0, err
	}

	previous := make([]T, len(u))
	iterations := 0
	for ; iterations < d.maxIter; iterations++ {
		copy(previous, u)

		keepGoing, err := d.engine.Step(u)
		if err != nil {
			return iterations, err
		}

		cost, err := d.problem.Cost(u)
		if err != nil {
			return iterations, err
		}

		snapshot := make([]T, len(u))
		copy(snapshot, u)
		d.History = append(d.History, Record[T]{
			U:        snapshot,
			Cost:     cost,
			StepNorm: vecutil.NormInfDiff(u, previous),
		})

		if !keepGoing {
			iterations++
			break
		}
	}

	return iterations, nil
}

// PathLength returns the total Euclidean arc length traveled across a
// float64 run's recorded history -- the sum of consecutive-iterate
// displacement norms, starting from u0 -- computed with vecutil's
// gosl/la-backed Float64Norm2, rather than through the generic vecutil
// path the rest of this package uses for every Real instantiation.
func PathLength(u0 []float64, history []Record[float64]) float64 {
	if len(history) == 0 {
		return 0
	}
	diff := make(la.Vector, len(u0))
	previous := u0
	var total float64
	for _, rec := range history {
		for i := range diff {
			diff[i] = rec.U[i] - previous[i]
		}
		total += vecutil.Float64Norm2(diff)
		previous = rec.U
	}
	return total
}

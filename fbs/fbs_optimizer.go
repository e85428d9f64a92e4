// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbs

import (
	"time"

	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/status"
	"github.com/cpmech/panoc/vecutil"
)

const defaultMaxIter = 100

// Optimizer is the stateless driver that repeatedly calls Engine.Step
// until convergence, the iteration cap, or the time cap (§4.4). It owns
// no workspace of its own: all mutable state lives in the bound Cache.
type Optimizer[T constraints.Real] struct {
	engine      *Engine[T]
	problem     problem.Problem[T]
	maxIter     int
	maxDuration time.Duration // zero means unbounded
}

// NewOptimizer builds an Optimizer around the given Problem and Cache
// with the default iteration cap (100) and no time cap.
func NewOptimizer[T constraints.Real](p problem.Problem[T], cache *Cache[T]) *Optimizer[T] {
	return &Optimizer[T]{
		engine:  NewEngine(p, cache),
		problem: p,
		maxIter: defaultMaxIter,
	}
}

// WithMaxIter overrides the default iteration cap.
func (o *Optimizer[T]) WithMaxIter(maxIter int) *Optimizer[T] {
	o.maxIter = maxIter
	return o
}

// WithMaxDuration bounds the wall-clock time solve may spend.
//
// The original source's time-cap condition (`dur <= now.elapsed()`) stops
// as soon as any time has passed, which is inverted relative to its
// evident intent; this implementation continues iterating while
// elapsed() < maxDuration instead (see SPEC_FULL.md REDESIGN FLAGS).
func (o *Optimizer[T]) WithMaxDuration(d time.Duration) *Optimizer[T] {
	o.maxDuration = d
	return o
}

// Solve drives u in place from its initial value to a stationary point of
// the projected-gradient iteration, returning the final SolverStatus.
func (o *Optimizer[T]) Solve(u []T) (status.SolverStatus[T], error) {
	start := time.Now()

	if err := o.engine.Init(u); err != nil {
		return status.SolverStatus[T]{}, err
	}

	exit := status.NotConvergedIterations
	iterations := 0
	for ; iterations < o.maxIter; iterations++ {
		if o.maxDuration > 0 && !(time.Since(start) < o.maxDuration) {
			exit = status.NotConvergedOutOfTime
			break
		}
		keepGoing, err := o.engine.Step(u)
		if err != nil {
			return status.SolverStatus[T]{}, err
		}
		if !keepGoing {
			exit = status.Converged
			iterations++
			break
		}
	}

	cost, err := o.problem.Cost(u)
	if err != nil {
		return status.SolverStatus[T]{}, err
	}
	if !vecutil.IsFinite(u) || !vecutil.IsFinite([]T{cost}) {
		return status.SolverStatus[T]{}, status.ErrNotFinite
	}

	return status.New(exit, iterations, time.Since(start), o.engine.cache.NormFPR(), cost), nil
}

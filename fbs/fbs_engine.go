// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbs

import (
	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/vecutil"
)

// Engine drives one FBS iteration against a bound Problem and Cache. It
// is non-reentrant: once bound, no other code may observe or mutate the
// cache while a solve is in progress (§5).
type Engine[T constraints.Real] struct {
	problem problem.Problem[T]
	cache   *Cache[T]
}

// NewEngine binds a Problem and Cache into an Engine. The cache's
// dimension must match the problem's; this is the caller's
// responsibility, matching the teacher's borrow-discipline convention of
// not re-validating dimensions the caller already controls.
func NewEngine[T constraints.Real](p problem.Problem[T], cache *Cache[T]) *Engine[T] {
	return &Engine[T]{problem: p, cache: cache}
}

// Init is a no-op: the contract is reserved for future warm-starts (§4.2).
func (e *Engine[T]) Init(u []T) error { return nil }

// Step performs one projected-gradient iteration in place on u: caches u,
// evaluates the gradient (failing if the callback fails), subtracts
// gamma*grad, projects onto the constraint set, and records the
// infinity-norm fixed-point residual. It returns true iff the residual
// still exceeds the cache's tolerance, i.e. iff the caller should keep
// iterating.
func (e *Engine[T]) Step(u []T) (bool, error) {
	c := e.cache
	copy(c.workPrevious, u)

	if err := e.problem.Gradient(u, c.workGradient); err != nil {
		return false, err
	}

	for i := range u {
		u[i] -= c.gamma * c.workGradient[i]
	}
	e.problem.Constraint.Project(u)

	c.normFPR = vecutil.NormInfDiff(u, c.workPrevious)
	return c.normFPR > c.tolerance, nil
}

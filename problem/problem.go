// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package problem bundles a constraint set with the caller's cost and
// gradient callbacks into the single descriptor the FBS and PANOC engines
// consume (§3 of the specification).
package problem

import (
	"github.com/cpmech/panoc/constraints"
)

// GradientFn evaluates the gradient of f at u into grad, returning an
// error (a *status.SolverError of kind ErrCost, though this package does
// not import status to avoid a dependency the callback itself does not
// need) when the caller's model cannot be evaluated at u.
type GradientFn[T constraints.Real] func(u []T, grad []T) error

// CostFn evaluates f at u, returning an error under the same
// circumstances as GradientFn.
type CostFn[T constraints.Real] func(u []T) (T, error)

// Problem is the immutable triple (C, grad f, f) that every engine in
// this module solves. It borrows C (a Constraint built and owned by the
// caller, whose backing slices, if any, must outlive the Problem) and
// owns the two callables, which are themselves typically closures over
// caller state.
//
// Cheap to reconstruct: a Problem carries no workspace of its own. The
// per-solve working buffers live in fbs.Cache/panoc.Cache instead.
type Problem[T constraints.Real] struct {
	Constraint constraints.Constraint[T]
	Gradient   GradientFn[T]
	Cost       CostFn[T]
}

// New builds a Problem from its three parts.
func New[T constraints.Real](c constraints.Constraint[T], grad GradientFn[T], cost CostFn[T]) Problem[T] {
	return Problem[T]{Constraint: c, Gradient: grad, Cost: cost}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package status holds the non-failure and failure outcomes reported by the
// optimizers: ExitStatus, SolverStatus and the two-case SolverError
// taxonomy (§7 of the specification).
package status

import (
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/panoc/optfloat"
)

// ExitStatus conveys why an optimizer stopped, independent of any error.
type ExitStatus int

const (
	// Converged means the termination criterion was satisfied.
	Converged ExitStatus = iota
	// NotConvergedIterations means the iteration cap was reached first.
	NotConvergedIterations
	// NotConvergedOutOfTime means the wall-clock cap was reached first.
	NotConvergedOutOfTime
)

func (e ExitStatus) String() string {
	switch e {
	case Converged:
		return "converged"
	case NotConvergedIterations:
		return "not-converged-iterations"
	case NotConvergedOutOfTime:
		return "not-converged-out-of-time"
	default:
		return "unknown"
	}
}

// Kind identifies a SolverError case.
type Kind int

const (
	// ErrCost means the caller's cost or gradient callback reported a
	// failure; surfaced verbatim, no recovery.
	ErrCost Kind = iota
	// ErrNotFiniteComputation means a NaN/Inf iterate or cost was detected
	// at the end of the main loop.
	ErrNotFiniteComputation
)

// SolverError wraps one of the two failure kinds the core boundary reports.
type SolverError struct {
	Kind Kind
	msg  string
}

func (e *SolverError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.Kind == ErrNotFiniteComputation {
		return "not-finite computation"
	}
	return "cost/gradient callback failed"
}

// NewCostError wraps a callback failure, preserving the caller's message.
func NewCostError(format string, args ...interface{}) error {
	return &SolverError{Kind: ErrCost, msg: chk.Err(format, args...).Error()}
}

// ErrNotFinite is the sentinel non-finite-computation error.
var ErrNotFinite = &SolverError{Kind: ErrNotFiniteComputation}

// IsNotFinite reports whether err is the NotFiniteComputation case.
func IsNotFinite(err error) bool {
	se, ok := err.(*SolverError)
	return ok && se.Kind == ErrNotFiniteComputation
}

// SolverStatus is returned by a successful call to Optimizer.Solve.
type SolverStatus[T optfloat.Real] struct {
	Status     ExitStatus
	Iterations int
	Elapsed    time.Duration
	NormFPR    T
	Cost       T
}

// New constructs a SolverStatus.
func New[T optfloat.Real](status ExitStatus, iterations int, elapsed time.Duration, normFPR, cost T) SolverStatus[T] {
	return SolverStatus[T]{
		Status:     status,
		Iterations: iterations,
		Elapsed:    elapsed,
		NormFPR:    normFPR,
		Cost:       cost,
	}
}

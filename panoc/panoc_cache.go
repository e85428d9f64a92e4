// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package panoc implements the Proximal Averaged Newton-type method for
// Optimal Control (§4.3): an accelerated nonconvex proximal-gradient
// method combining a forward-backward step, a Lipschitz-constant
// estimator with sufficient-decrease refinement, a cautious
// limited-memory BFGS direction, a backtracking line search on the
// forward-backward envelope, and a fixed-point-residual termination
// check with an optional augmented-KKT secondary test.
package panoc

import (
	"math"

	"github.com/cpmech/panoc/constraints"
	"github.com/cpmech/panoc/lbfgs"
	"github.com/cpmech/panoc/optfloat"
)

// Real is the set of floating-point kinds this package supports.
type Real = constraints.Real

// Cache is the reusable PANOC workspace: the LBFGS buffer plus every
// length-n vector and scalar the engine's step needs. Allocated once per
// problem size; Reset restores algorithmic state without reallocating.
//
// uPrevious and gradientUPrevious are always allocated (not only when
// AKKT termination is armed): the cautious LBFGS update needs the
// previous iterate and its gradient on every iteration to form (s, y),
// independent of whether the optional AKKT secondary termination test is
// in use. AKKT, when armed, reuses this same pair rather than requiring
// a second allocation; see DESIGN.md.
type Cache[T Real] struct {
	n int

	LBFGS *lbfgs.LBFGS[T]

	gradientU         []T
	uPrevious         []T
	gradientUPrevious []T
	hasPrevious       bool

	uHalfStep      []T
	gradientStep   []T
	gammaFPR       []T
	directionLBFGS []T
	uPlus          []T

	scratchGradient []T
	scratchHalf     []T
	scratchGammaFPR []T
	scratchPerturb  []T
	gradUPlusBuf    []T

	gamma             T
	tau               T
	lipschitzConstant T
	sigma             T
	costValue         T
	normGammaFPR      T
	lhsLS             T
	rhsLS             T
	iteration         int
	tolerance         T
	akktTolerance     *T

	tuning optfloat.Tuning[T]
}

// NewCache allocates a Cache for an n-dimensional problem, retaining m
// LBFGS correction pairs, stopping when ||gamma*FPR|| < gamma*tolerance.
func NewCache[T Real](n, m int, tolerance T) *Cache[T] {
	return &Cache[T]{
		n:                 n,
		LBFGS:             lbfgs.New[T](n, m),
		gradientU:         make([]T, n),
		uPrevious:         make([]T, n),
		gradientUPrevious: make([]T, n),
		uHalfStep:         make([]T, n),
		gradientStep:      make([]T, n),
		gammaFPR:          make([]T, n),
		directionLBFGS:    make([]T, n),
		uPlus:             make([]T, n),
		scratchGradient:   make([]T, n),
		scratchHalf:       make([]T, n),
		scratchGammaFPR:   make([]T, n),
		scratchPerturb:    make([]T, n),
		gradUPlusBuf:      make([]T, n),
		tau:               1,
		tolerance:         tolerance,
		tuning:            optfloat.DefaultTuning[T](),
	}
}

// WithCBFGSParameters configures the cautious LBFGS acceptance test
// (spec.md §8 scenario 6's cBFGS(alpha, epsilon, epsilon_sy)).
func (c *Cache[T]) WithCBFGSParameters(alpha, epsilon, syEpsilon T) *Cache[T] {
	c.LBFGS.WithCBFGSAlpha(alpha).WithCBFGSEpsilon(epsilon).WithSYEpsilon(syEpsilon)
	return c
}

// SetAKKTTolerance arms the optional augmented-KKT secondary termination
// test with the given tolerance.
func (c *Cache[T]) SetAKKTTolerance(tolerance T) *Cache[T] {
	c.akktTolerance = &tolerance
	return c
}

// Tuning returns the numerical tuning constants in effect for this cache.
func (c *Cache[T]) Tuning() optfloat.Tuning[T] { return c.tuning }

// NormGammaFPR returns ||gamma*FPR|| from the most recent Step.
func (c *Cache[T]) NormGammaFPR() T { return c.normGammaFPR }

// Iteration returns the number of completed Step calls since the last
// Init/Reset.
func (c *Cache[T]) Iteration() int { return c.iteration }

// Reset empties the LBFGS buffer and zeros every scalar except
// tolerance, restoring tau to its initial value of 1.
func (c *Cache[T]) Reset() {
	c.LBFGS.Reset()
	c.hasPrevious = false
	c.iteration = 0
	c.tau = 1
	var zero T
	c.gamma, c.lipschitzConstant, c.sigma = zero, zero, zero
	c.costValue, c.normGammaFPR, c.lhsLS, c.rhsLS = zero, zero, zero, zero
	for _, buf := range [][]T{
		c.gradientU, c.uPrevious, c.gradientUPrevious, c.uHalfStep,
		c.gradientStep, c.gammaFPR, c.directionLBFGS, c.uPlus, c.gradUPlusBuf,
	} {
		for i := range buf {
			buf[i] = 0
		}
	}
}

// cachePreviousGradient shifts the current (u, grad f(u)) into the
// previous-iterate slots, ahead of the current iteration overwriting
// them with the newly accepted candidate. Called once per Step, after
// the candidate is accepted and before the cache's "current" fields are
// updated to it.
func (c *Cache[T]) cachePreviousGradient(u []T) {
	copy(c.uPrevious, u)
	copy(c.gradientUPrevious, c.gradientU)
	c.hasPrevious = true
}

// fprExitCondition is the primary termination test (§4.3 point 6):
// ||gamma*FPR|| < gamma*tolerance.
func (c *Cache[T]) fprExitCondition() bool {
	return c.normGammaFPR < c.gamma*c.tolerance
}

// akktResidual returns ||gamma*FPR + gamma*(grad f(u+) - grad f(u))||
// given the gradient at the just-accepted candidate and the gradient at
// the iterate it replaced.
func (c *Cache[T]) akktResidual(gradUPlus, gradUOld []T) T {
	var sumSq T
	for i := range c.gammaFPR {
		d := c.gammaFPR[i] + c.gamma*(gradUPlus[i]-gradUOld[i])
		sumSq += d * d
	}
	return sqrtT(sumSq)
}

// akktExitCondition reports whether the optional AKKT test is armed and
// satisfied.
func (c *Cache[T]) akktExitCondition(gradUPlus, gradUOld []T) bool {
	if c.akktTolerance == nil {
		return false
	}
	return c.akktResidual(gradUPlus, gradUOld) < *c.akktTolerance
}

// ExitCondition reports whether the cache's current state satisfies the
// primary FPR test or, if armed, the secondary AKKT test.
func (c *Cache[T]) ExitCondition(gradUPlus, gradUOld []T) bool {
	return c.fprExitCondition() || c.akktExitCondition(gradUPlus, gradUOld)
}

func sqrtT[T Real](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panoc

import (
	"github.com/cpmech/panoc/lipschitz"
	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/vecutil"
)

const (
	maxLipschitzRefinements = 64
	maxLineSearchBacktracks = 64
	minLineSearchTau        = 1e-20
)

// Engine drives one PANOC iteration against a bound Problem and Cache.
// Non-reentrant, per §5: once bound, no other code may observe or mutate
// the cache while a solve is in progress.
type Engine[T Real] struct {
	problem problem.Problem[T]
	cache   *Cache[T]
}

// NewEngine binds a Problem and Cache into an Engine.
func NewEngine[T Real](p problem.Problem[T], cache *Cache[T]) *Engine[T] {
	return &Engine[T]{problem: p, cache: cache}
}

// Init evaluates f and grad f at u0, estimates the initial Lipschitz
// constant, and derives gamma and sigma from it (§4.3 point 1).
func (e *Engine[T]) Init(u []T) error {
	c := e.cache
	c.Reset()

	cost, err := e.problem.Cost(u)
	if err != nil {
		return err
	}
	if err := e.problem.Gradient(u, c.gradientU); err != nil {
		return err
	}
	c.costValue = cost

	tuning := c.tuning
	lEstimate, err := lipschitz.Estimate[T](u, e.problem.Gradient, tuning.DeltaLipschitz, tuning.EpsilonLipschitz, c.gradientU, c.scratchPerturb, c.scratchGradient)
	if err != nil {
		return err
	}
	c.setLipschitzConstant(maxT(lEstimate, tuning.MinLEstimate))
	return nil
}

// setLipschitzConstant updates L, gamma and sigma together, as required
// whenever L changes (§4.3 point 1 and the refinement loop of point 3).
func (c *Cache[T]) setLipschitzConstant(l T) {
	l = minT(l, c.tuning.MaxLipschitzConstant)
	c.lipschitzConstant = l
	c.gamma = c.tuning.GammaLCoeff / l
	c.sigma = c.gamma * (1 - c.gamma*l) / 2
}

// forwardBackwardStep computes u_half := proj_C(u - gamma*grad f(u)) and
// gamma*FPR := u - u_half into the cache's buffers, given the currently
// cached gradient at u.
func (e *Engine[T]) forwardBackwardStep(u []T) {
	c := e.cache
	for i := range u {
		c.gradientStep[i] = u[i] - c.gamma*c.gradientU[i]
	}
	copy(c.uHalfStep, c.gradientStep)
	e.problem.Constraint.Project(c.uHalfStep)
	for i := range u {
		c.gammaFPR[i] = u[i] - c.uHalfStep[i]
	}
}

// refineLipschitzConstant repeats the forward-backward step while
// doubling L until the FBE sufficient-decrease test at the half-step
// passes, is capped, or the refinement budget is exhausted (§4.3 point
// 3). Returns the cost at the accepted half-step.
func (e *Engine[T]) refineLipschitzConstant(u []T) (T, error) {
	c := e.cache
	epsL := c.tuning.LipschitzUpdateEpsilon

	for attempt := 0; attempt < maxLipschitzRefinements; attempt++ {
		e.forwardBackwardStep(u)

		fHalf, err := e.problem.Cost(c.uHalfStep)
		if err != nil {
			return 0, err
		}

		normGammaFPRSq := vecutil.Norm2Squared(c.gammaFPR)
		rhs := c.costValue - vecutil.InnerProduct(c.gradientU, c.gammaFPR) +
			(c.lipschitzConstant/2)*normGammaFPRSq*(1+epsL)

		if fHalf <= rhs || c.lipschitzConstant >= c.tuning.MaxLipschitzConstant {
			return fHalf, nil
		}
		c.setLipschitzConstant(2 * c.lipschitzConstant)
	}
	return e.problem.Cost(c.uHalfStep)
}

// quasiNewtonDirection builds direction_lbfgs from gamma*FPR by first
// offering the (s, y) pair from the previous accepted iterate (if any)
// to the cautious LBFGS buffer, then applying the two-loop recursion
// (§4.3 point 4).
func (e *Engine[T]) quasiNewtonDirection(u []T) {
	c := e.cache
	copy(c.directionLBFGS, c.gammaFPR)

	if c.hasPrevious {
		// scratchHalf/scratchGammaFPR are free here: the line search below
		// is the only other user, and it runs after this pair is already
		// copied into the LBFGS ring buffers.
		s := c.scratchHalf
		y := c.scratchGammaFPR
		for i := range u {
			s[i] = u[i] - c.uPrevious[i]
			y[i] = c.gradientU[i] - c.gradientUPrevious[i]
		}
		gradNorm := vecutil.Norm2(c.gradientU)
		c.LBFGS.UpdateHessian(s, y, gradNorm)
	}

	c.LBFGS.ApplyHessian(c.directionLBFGS)
}

// fbeFromParts evaluates the forward-backward envelope at a point x whose
// cost, gradient and gamma*FPR are already known, using the identity
// FBE_gamma(x) = f(x) - <grad f(x), gammaFPR> + ||gammaFPR||^2/(2*gamma).
func fbeFromParts[T Real](cost T, grad, gammaFPR []T, gamma T) T {
	return cost - vecutil.InnerProduct(grad, gammaFPR) + vecutil.Norm2Squared(gammaFPR)/(2*gamma)
}

// lineSearchCandidate evaluates the FBE at u_plus(tau) = u - (1-tau)*gammaFPR + tau*direction,
// writing the candidate into c.uPlus and its gradient into
// c.scratchGradient, its gamma*FPR into c.scratchGammaFPR (all cache
// scratch, safe: quasiNewtonDirection's use of the same buffers is done
// by this point).
func (e *Engine[T]) lineSearchCandidate(u []T, tau T) (fbe, cost T, err error) {
	c := e.cache
	for i := range u {
		c.uPlus[i] = u[i] - (1-tau)*c.gammaFPR[i] + tau*c.directionLBFGS[i]
	}
	cost, err = e.problem.Cost(c.uPlus)
	if err != nil {
		return 0, 0, err
	}
	if err := e.problem.Gradient(c.uPlus, c.scratchGradient); err != nil {
		return 0, 0, err
	}
	for i := range c.uPlus {
		c.scratchHalf[i] = c.uPlus[i] - c.gamma*c.scratchGradient[i]
	}
	e.problem.Constraint.Project(c.scratchHalf)
	for i := range c.uPlus {
		c.scratchGammaFPR[i] = c.uPlus[i] - c.scratchHalf[i]
	}
	fbe = fbeFromParts(cost, c.scratchGradient, c.scratchGammaFPR, c.gamma)
	return fbe, cost, nil
}

// Step performs one PANOC iteration in place on u, following the state
// machine of §4.3: forward-backward step (with Lipschitz refinement),
// quasi-Newton direction, line search, termination check, then caching
// the current iterate and gradient as the previous pair and committing
// the candidate. Returns true iff the caller should keep iterating.
func (e *Engine[T]) Step(u []T) (bool, error) {
	c := e.cache

	fHalf, err := e.refineLipschitzConstant(u)
	if err != nil {
		return false, err
	}
	c.normGammaFPR = vecutil.Norm2(c.gammaFPR)

	e.quasiNewtonDirection(u)

	fbeU := fbeFromParts(c.costValue, c.gradientU, c.gammaFPR, c.gamma)
	sigmaTerm := c.sigma * c.normGammaFPR * c.normGammaFPR
	c.rhsLS = fbeU - sigmaTerm
	epsL := c.tuning.LipschitzUpdateEpsilon

	// Every line search restarts at tau=1 (original_source's panoc_cache.rs
	// only resets tau=1 in reset(), i.e. once per solve, but warm-starting
	// from the previous iteration's tau here would latch at 0 forever once
	// a single backtrack exhausts, permanently disabling the quasi-Newton
	// step).
	tau := T(1)
	var candidateCost T
	accepted := false
	for backtrack := 0; backtrack < maxLineSearchBacktracks && tau >= T(minLineSearchTau); backtrack++ {
		fbePlus, cost, lsErr := e.lineSearchCandidate(u, tau)
		if lsErr != nil {
			return false, lsErr
		}
		c.lhsLS = fbePlus
		if fbePlus <= c.rhsLS+epsL {
			candidateCost = cost
			accepted = true
			break
		}
		tau /= 2
	}

	gradUOld := c.scratchPerturb // free to reuse: lipschitz scratch only live during Init
	copy(gradUOld, c.gradientU)

	if accepted {
		c.tau = tau
		copy(c.gradUPlusBuf, c.scratchGradient)
	} else {
		// Line search exhausted: fall back to the plain forward-backward
		// step already computed by refineLipschitzConstant (tau = 0).
		c.tau = 0
		copy(c.uPlus, c.uHalfStep)
		if err := e.problem.Gradient(c.uPlus, c.scratchGradient); err != nil {
			return false, err
		}
		copy(c.gradUPlusBuf, c.scratchGradient)
		candidateCost = fHalf
	}

	exit := c.ExitCondition(c.gradUPlusBuf, gradUOld)

	c.cachePreviousGradient(u)
	copy(u, c.uPlus)
	copy(c.gradientU, c.gradUPlusBuf)
	c.costValue = candidateCost
	c.iteration++

	return !exit, nil
}

func maxT[T Real](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minT[T Real](a, b T) T {
	if a < b {
		return a
	}
	return b
}

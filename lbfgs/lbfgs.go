// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lbfgs implements the cautious limited-memory BFGS direction
// PANOC uses (§4.3 point 4, §6). Unlike a textbook L-BFGS, curvature pairs
// are gated by the Li-Fukushima cautious update rule before being stored,
// which is what makes the resulting direction usable inside a nonconvex
// proximal-gradient method.
//
// The correction pairs are held in fixed-size preallocated ring buffers
// (s, y, rho), one slot per memory entry, so neither UpdateHessian nor
// ApplyHessian allocates once the LBFGS is constructed -- matching the
// no-allocation-on-the-hot-path discipline the rest of the core follows.
package lbfgs

import (
	"math"

	"github.com/cpmech/panoc/vecutil"
)

// Real is the set of floating-point kinds this package supports.
type Real = vecutil.Real

// LBFGS is a cautious limited-memory BFGS direction builder for an
// n-dimensional problem retaining at most m correction pairs.
type LBFGS[T Real] struct {
	n, m int

	s   [][]T
	y   [][]T
	rho []T

	alpha  []T // two-loop recursion scratch, one slot per memory entry
	count  int // number of valid pairs currently stored
	oldest int // ring-buffer index of the oldest valid pair

	cbfgsAlpha   T
	cbfgsEpsilon T
	syEpsilon    T
}

// New constructs an LBFGS for problem dimension n with memory m, using
// the default cautious-update parameters (alpha=1, epsilon=1e-8,
// sy_epsilon=1e-10); override with WithCBFGSAlpha/WithCBFGSEpsilon/
// WithSYEpsilon.
func New[T Real](n, m int) *LBFGS[T] {
	l := &LBFGS[T]{
		n:            n,
		m:            m,
		s:            make([][]T, m),
		y:            make([][]T, m),
		rho:          make([]T, m),
		alpha:        make([]T, m),
		cbfgsAlpha:   1,
		cbfgsEpsilon: 1e-8,
		syEpsilon:    1e-10,
	}
	for i := 0; i < m; i++ {
		l.s[i] = make([]T, n)
		l.y[i] = make([]T, n)
	}
	return l
}

// WithCBFGSAlpha sets the exponent applied to the gradient norm in the
// cautious acceptance test.
func (l *LBFGS[T]) WithCBFGSAlpha(alpha T) *LBFGS[T] {
	l.cbfgsAlpha = alpha
	return l
}

// WithCBFGSEpsilon sets the coefficient in the cautious acceptance test.
func (l *LBFGS[T]) WithCBFGSEpsilon(epsilon T) *LBFGS[T] {
	l.cbfgsEpsilon = epsilon
	return l
}

// WithSYEpsilon sets the minimum |<s,y>| below which a pair is rejected
// to avoid an ill-conditioned rho.
func (l *LBFGS[T]) WithSYEpsilon(epsilon T) *LBFGS[T] {
	l.syEpsilon = epsilon
	return l
}

// Reset empties the buffer; the preallocated storage is kept and
// overwritten by subsequent UpdateHessian calls.
func (l *LBFGS[T]) Reset() {
	l.count = 0
	l.oldest = 0
}

// Len reports how many correction pairs are currently stored.
func (l *LBFGS[T]) Len() int { return l.count }

// UpdateHessian offers the pair (s = u - u_prev, y = grad f(u) - grad
// f(u_prev)) for storage. gradNorm is ||grad f(u)||, the quantity the
// Li-Fukushima cautious test compares the curvature ratio against:
//
//	<s,y> / ||s||^2 >= epsilon * gradNorm^alpha
//
// The pair is stored (evicting the oldest if the buffer is full) and true
// is returned iff it passes the test and |<s,y>| is not too close to
// zero; otherwise the buffer is left untouched and false is returned.
func (l *LBFGS[T]) UpdateHessian(s, y []T, gradNorm T) bool {
	sy := vecutil.InnerProduct(s, y)
	if absT(sy) < l.syEpsilon {
		return false
	}
	sNormSq := vecutil.Norm2Squared(s)
	if sNormSq == 0 {
		return false
	}
	threshold := l.cbfgsEpsilon * powT(gradNorm, l.cbfgsAlpha)
	if sy/sNormSq < threshold {
		return false
	}

	var idx int
	if l.count < l.m {
		idx = (l.oldest + l.count) % l.m
		l.count++
	} else {
		idx = l.oldest
		l.oldest = (l.oldest + 1) % l.m
	}
	copy(l.s[idx], s)
	copy(l.y[idx], y)
	l.rho[idx] = 1 / sy
	return true
}

// ApplyHessian overwrites d in place with H*d, the two-loop-recursion
// application of the current Hessian approximation. H0 is scaled by
// gamma = <s,y>/<y,y> from the most recently accepted pair (Nocedal &
// Wright, Numerical Optimization, eq. 7.20) rather than taken as the
// identity; when no pairs are stored, H0 = I and d is left unchanged.
func (l *LBFGS[T]) ApplyHessian(d []T) {
	if l.count == 0 {
		return
	}
	for j := l.count - 1; j >= 0; j-- {
		idx := (l.oldest + j) % l.m
		a := l.rho[idx] * vecutil.InnerProduct(l.s[idx], d)
		l.alpha[idx] = a
		for k := range d {
			d[k] -= a * l.y[idx][k]
		}
	}

	newest := (l.oldest + l.count - 1) % l.m
	yNormSq := vecutil.Norm2Squared(l.y[newest])
	if yNormSq > 0 {
		gamma := 1 / (l.rho[newest] * yNormSq)
		for k := range d {
			d[k] *= gamma
		}
	}

	for j := 0; j < l.count; j++ {
		idx := (l.oldest + j) % l.m
		b := l.rho[idx] * vecutil.InnerProduct(l.y[idx], d)
		a := l.alpha[idx]
		for k := range d {
			d[k] += l.s[idx][k] * (a - b)
		}
	}
}

func absT[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func powT[T Real](base, exp T) T {
	return T(math.Pow(float64(base), float64(exp)))
}

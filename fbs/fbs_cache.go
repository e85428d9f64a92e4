// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fbs implements the forward-backward splitting (projected
// gradient) engine: u_{k+1} := proj_C(u_k - gamma*grad f(u_k)), the
// simplest baseline sharing PANOC's projection/gradient interface (§4.2).
package fbs

import (
	"github.com/cpmech/panoc/constraints"
)

// Cache is the reusable workspace for one FBS engine instance. Sized at
// construction; reset() restores algorithmic state without reallocating.
type Cache[T constraints.Real] struct {
	workGradient []T
	workPrevious []T
	gamma        T
	tolerance    T
	normFPR      T
}

// NewCache allocates a Cache for an n-dimensional problem with step size
// gamma and stopping tolerance tau.
func NewCache[T constraints.Real](n int, gamma, tolerance T) *Cache[T] {
	return &Cache[T]{
		workGradient: make([]T, n),
		workPrevious: make([]T, n),
		gamma:        gamma,
		tolerance:    tolerance,
	}
}

// Reset zeros the working buffers and the last fixed-point-residual norm,
// leaving gamma and tolerance untouched.
func (c *Cache[T]) Reset() {
	for i := range c.workGradient {
		c.workGradient[i] = 0
	}
	for i := range c.workPrevious {
		c.workPrevious[i] = 0
	}
	c.normFPR = 0
}

// NormFPR returns the infinity-norm fixed-point residual from the most
// recent Step.
func (c *Cache[T]) NormFPR() T { return c.normFPR }

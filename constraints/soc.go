// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/panoc/vecutil"
)

// SOC is the second-order (Lorentz) cone C_alpha = {x=(z,t) : ||z|| <= alpha*t},
// alpha > 0. Projections follow Theorem 3.3.6 in H.H. Bauschke's 1996
// doctoral dissertation, "Projection Algorithms and Monotone Operators".
type SOC[T Real] struct {
	alpha T
}

// NewSOC constructs an SOC with the given alpha. Panics if alpha is not
// strictly positive.
func NewSOC[T Real](alpha T) *SOC[T] {
	if alpha <= 0 {
		chk.Panic("SOC: alpha must be positive, got %v", alpha)
	}
	return &SOC[T]{alpha: alpha}
}

// Project updates x=(z,t) in place to its projection onto the cone.
// Panics if len(x) < 2.
func (o *SOC[T]) Project(x []T) {
	n := len(x)
	if n < 2 {
		chk.Panic("SOC: x must have dimension at least 2, got %d", n)
	}
	z := x[:n-1]
	t := x[n-1]
	normZ := vecutil.Norm2(z)
	switch {
	case o.alpha*normZ <= -t:
		for i := range x {
			x[i] = 0
		}
	case normZ > o.alpha*t:
		beta := (o.alpha*normZ + t) / (o.alpha*o.alpha + 1)
		scale := o.alpha * beta / normZ
		for i := range z {
			z[i] *= scale
		}
		x[n-1] = beta
	}
}

// IsConvex always returns true.
func (o *SOC[T]) IsConvex() bool { return true }

func init() {
	Register("soc", func(prms fun.Prms, _ map[string][]float64) (Constraint[float64], error) {
		a, ok := findPrm(prms, "alpha")
		if !ok {
			return nil, chk.Err("soc: requires alpha\n")
		}
		return NewSOC(a), nil
	})
}

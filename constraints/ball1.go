// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Ball1 is the l1-norm ball {x : ||x - c||_1 <= r}, centered at the
// origin when center is nil. The projection is computed by reduction to
// Simplex, following the standard sign-and-shift decomposition: project
// |x - c| onto the simplex, then restore the sign and shift.
type Ball1[T Real] struct {
	center  []T
	radius  T
	simplex *Simplex[T]
}

// NewBall1 constructs a Ball1 with the given (optional) center and
// radius. Panics if radius is not strictly positive.
func NewBall1[T Real](center []T, radius T) *Ball1[T] {
	if radius <= 0 {
		chk.Panic("Ball1: radius must be positive, got %v", radius)
	}
	return &Ball1[T]{center: center, radius: radius, simplex: NewSimplex(radius)}
}

// Project leaves x unchanged if already within the ball; otherwise it
// shifts by the center, takes the projection of the absolute-value
// vector onto the scaled simplex, and restores sign and shift.
func (o *Ball1[T]) Project(x []T) {
	n := len(x)
	u := make([]T, n)
	var norm1 T
	for i := 0; i < n; i++ {
		d := x[i]
		if o.center != nil {
			d -= o.center[i]
		}
		u[i] = absT(d)
		norm1 += u[i]
	}
	if norm1 <= o.radius {
		return
	}
	o.simplex.Project(u)
	for i := 0; i < n; i++ {
		d := x[i]
		if o.center != nil {
			d -= o.center[i]
		}
		shifted := signT(d) * u[i]
		if o.center != nil {
			x[i] = o.center[i] + shifted
		} else {
			x[i] = shifted
		}
	}
}

// IsConvex always returns true.
func (o *Ball1[T]) IsConvex() bool { return true }

func init() {
	Register("ball1", func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
		r, ok := findPrm(prms, "radius")
		if !ok {
			return nil, chk.Err("ball1: requires radius\n")
		}
		return NewBall1(vecPrms["center"], r), nil
	})
}

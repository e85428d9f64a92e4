// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// BallInf is the infinity-norm ball {x : ||x - c||_inf <= r}, centered at
// the origin when center is nil.
type BallInf[T Real] struct {
	center []T
	radius T
}

// NewBallInf constructs a BallInf with the given (optional) center and
// radius. Panics if radius is not strictly positive.
func NewBallInf[T Real](center []T, radius T) *BallInf[T] {
	if radius <= 0 {
		chk.Panic("BallInf: radius must be positive, got %v", radius)
	}
	return &BallInf[T]{center: center, radius: radius}
}

// Project clamps each coordinate's displacement from the center to the
// ball's radius whenever it exceeds it.
func (o *BallInf[T]) Project(x []T) {
	if o.center != nil {
		for i := range x {
			d := x[i] - o.center[i]
			if absT(d) > o.radius {
				x[i] = o.center[i] + signT(d)*o.radius
			}
		}
		return
	}
	for i := range x {
		if absT(x[i]) > o.radius {
			x[i] = signT(x[i]) * o.radius
		}
	}
}

// IsConvex always returns true.
func (o *BallInf[T]) IsConvex() bool { return true }

func init() {
	Register("ball-inf", func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
		r, ok := findPrm(prms, "radius")
		if !ok {
			return nil, chk.Err("ball-inf: requires radius\n")
		}
		return NewBallInf(vecPrms["center"], r), nil
	})
}

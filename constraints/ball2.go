// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/panoc/vecutil"
)

// Ball2 is the Euclidean ball B2(c, r) = {x : ||x - c|| <= r}, centered at
// the origin when center is nil.
type Ball2[T Real] struct {
	center []T
	radius T
}

// NewBall2 constructs a Ball2 with the given (optional) center and radius.
// Panics if radius is not strictly positive.
func NewBall2[T Real](center []T, radius T) *Ball2[T] {
	if radius <= 0 {
		chk.Panic("Ball2: radius must be positive, got %v", radius)
	}
	return &Ball2[T]{center: center, radius: radius}
}

// Project rescales x's displacement from the center to the ball's radius
// whenever it exceeds it.
func (o *Ball2[T]) Project(x []T) {
	if o.center != nil {
		diff := vecutil.Norm2SquaredDiff(x, o.center)
		normDiff := sqrtT(diff)
		if normDiff > o.radius {
			for i := range x {
				x[i] = o.center[i] + o.radius*(x[i]-o.center[i])/normDiff
			}
		}
		return
	}
	normX := vecutil.Norm2(x)
	if normX > o.radius {
		scale := o.radius / normX
		for i := range x {
			x[i] *= scale
		}
	}
}

// IsConvex always returns true.
func (o *Ball2[T]) IsConvex() bool { return true }

func init() {
	Register("ball2", func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
		r, ok := findPrm(prms, "radius")
		if !ok {
			return nil, chk.Err("ball2: requires radius\n")
		}
		return NewBall2(vecPrms["center"], r), nil
	})
}

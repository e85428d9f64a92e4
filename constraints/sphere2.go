// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/panoc/vecutil"
)

// sphere2Epsilon is the tie-break threshold below which x is treated as
// coincident with the center (§4.1).
const sphere2Epsilon = 1e-12

// Sphere2 is the Euclidean sphere {x : ||x - c|| = r}, centered at the
// origin when center is nil. Unlike the balls, the sphere is not convex.
type Sphere2[T Real] struct {
	center []T
	radius T
}

// NewSphere2 constructs a Sphere2 with the given (optional) center and
// radius. Panics if radius is not strictly positive.
func NewSphere2[T Real](center []T, radius T) *Sphere2[T] {
	if radius <= 0 {
		chk.Panic("Sphere2: radius must be positive, got %v", radius)
	}
	return &Sphere2[T]{center: center, radius: radius}
}

// Project rescales x's displacement from the center onto the sphere. When
// x coincides with the center (within sphere2Epsilon) the projection is
// multi-valued; this implementation snaps x to the center and deterministically
// breaks ties by nudging the first coordinate.
func (o *Sphere2[T]) Project(x []T) {
	eps := T(sphere2Epsilon)
	if o.center != nil {
		normDiff := sqrtT(vecutil.Norm2SquaredDiff(x, o.center))
		if normDiff <= eps {
			copy(x, o.center)
			x[0] += o.radius
			return
		}
		for i := range x {
			x[i] = o.center[i] + o.radius*(x[i]-o.center[i])/normDiff
		}
		return
	}
	normX := vecutil.Norm2(x)
	if normX <= eps {
		for i := range x {
			x[i] = 0
		}
		x[0] = o.radius
		return
	}
	scale := o.radius / normX
	for i := range x {
		x[i] *= scale
	}
}

// IsConvex returns false: the sphere is not a convex set.
func (o *Sphere2[T]) IsConvex() bool { return false }

func init() {
	Register("sphere2", func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
		r, ok := findPrm(prms, "radius")
		if !ok {
			return nil, chk.Err("sphere2: requires radius\n")
		}
		return NewSphere2(vecPrms["center"], r), nil
	})
}

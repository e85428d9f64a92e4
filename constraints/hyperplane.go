// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/panoc/vecutil"
)

// Hyperplane is H = {x : <c, x> = b}. The squared norm of the normal
// vector c is computed once, at construction, and reused on every
// projection.
type Hyperplane[T Real] struct {
	normal       []T
	offset       T
	normalSqNorm T
}

// NewHyperplane constructs a Hyperplane with the given normal vector and
// offset. normal is not copied; it must outlive the Hyperplane.
func NewHyperplane[T Real](normal []T, offset T) *Hyperplane[T] {
	return &Hyperplane[T]{
		normal:       normal,
		offset:       offset,
		normalSqNorm: vecutil.Norm2Squared(normal),
	}
}

// Project applies x := x - ((<c,x> - b)/||c||^2) * c.
func (o *Hyperplane[T]) Project(x []T) {
	factor := (vecutil.InnerProduct(x, o.normal) - o.offset) / o.normalSqNorm
	for i := range x {
		x[i] -= factor * o.normal[i]
	}
}

// IsConvex always returns true.
func (o *Hyperplane[T]) IsConvex() bool { return true }

func init() {
	Register("hyperplane", func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
		normal := vecPrms["normal"]
		if normal == nil {
			return nil, chk.Err("hyperplane: requires normal\n")
		}
		b, ok := findPrm(prms, "offset")
		if !ok {
			return nil, chk.Err("hyperplane: requires offset\n")
		}
		return NewHyperplane(normal, b), nil
	})
}

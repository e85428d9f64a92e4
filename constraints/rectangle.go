// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Rectangle is R = {x in R^n : xmin <= x <= xmax}, where the inequality is
// elementwise and either of xmin, xmax may be absent.
type Rectangle[T Real] struct {
	xmin []T
	xmax []T
}

// NewRectangle constructs a Rectangle from optional bounds. xmin and xmax
// may each be nil (but not both). When both are present they must have
// equal length and satisfy xmin <= xmax elementwise.
//
// Panics if both bounds are nil, if their lengths mismatch, or if
// xmin[i] > xmax[i] for some i.
func NewRectangle[T Real](xmin, xmax []T) *Rectangle[T] {
	if xmin == nil && xmax == nil {
		chk.Panic("Rectangle requires at least one of xmin, xmax (use NoConstraints instead)")
	}
	if xmin != nil && xmax != nil {
		if len(xmin) != len(xmax) {
			chk.Panic("Rectangle: xmin and xmax have incompatible dimensions: %d != %d", len(xmin), len(xmax))
		}
		for i := range xmin {
			if xmin[i] > xmax[i] {
				chk.Panic("Rectangle: xmin[%d]=%v > xmax[%d]=%v", i, xmin[i], i, xmax[i])
			}
		}
	}
	return &Rectangle[T]{xmin: xmin, xmax: xmax}
}

// Project clamps x elementwise against xmin then xmax.
func (o *Rectangle[T]) Project(x []T) {
	if o.xmin != nil {
		for i := range x {
			if x[i] < o.xmin[i] {
				x[i] = o.xmin[i]
			}
		}
	}
	if o.xmax != nil {
		for i := range x {
			if x[i] > o.xmax[i] {
				x[i] = o.xmax[i]
			}
		}
	}
}

// IsConvex always returns true.
func (o *Rectangle[T]) IsConvex() bool { return true }

func init() {
	Register("rectangle", func(_ fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
		xmin, xmax := vecPrms["xmin"], vecPrms["xmax"]
		if xmin == nil && xmax == nil {
			return nil, chk.Err("rectangle: requires xmin or xmax\n")
		}
		return NewRectangle(xmin, xmax), nil
	})
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosl/fun"

// Zero is the singleton set {0}.
type Zero[T Real] struct{}

// NewZero constructs a Zero set.
func NewZero[T Real]() *Zero[T] {
	return &Zero[T]{}
}

// Project sets every component of x to zero.
func (o *Zero[T]) Project(x []T) {
	for i := range x {
		x[i] = 0
	}
}

// IsConvex always returns true.
func (o *Zero[T]) IsConvex() bool { return true }

func init() {
	Register("zero", func(_ fun.Prms, _ map[string][]float64) (Constraint[float64], error) {
		return NewZero[float64](), nil
	})
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosl/fun"

// NoConstraints is the whole space: U = R^n.
type NoConstraints[T Real] struct{}

// NewNoConstraints constructs a NoConstraints set.
func NewNoConstraints[T Real]() *NoConstraints[T] {
	return &NoConstraints[T]{}
}

// Project is a no-op: every point is already in R^n.
func (o *NoConstraints[T]) Project(x []T) {}

// IsConvex always returns true.
func (o *NoConstraints[T]) IsConvex() bool { return true }

func init() {
	Register("no-constraints", func(_ fun.Prms, _ map[string][]float64) (Constraint[float64], error) {
		return NewNoConstraints[float64](), nil
	})
}

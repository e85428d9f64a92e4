// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Simplex is the scaled probability simplex {x : x_i >= 0, sum(x) = alpha},
// alpha > 0. Projection follows Condat's algorithm (L. Condat, "Fast
// projection onto the simplex and the l1 ball", Mathematical Programming,
// 2016): an active set V is grown by a running mean rho, elements that
// would break the mean are spilled to a side list and swept back in, and
// a final cleanup removes members that fall below the threshold. Step 5
// of the original numbering is the output assignment folded into the loop
// below as step 6; there is no separate step 5.
//
// Unlike the other constraints, Project allocates a small amount of
// auxiliary storage per call (the active set and the side list).
type Simplex[T Real] struct {
	alpha T
}

// NewSimplex constructs a Simplex with the given alpha. Panics if alpha
// is not strictly positive.
func NewSimplex[T Real](alpha T) *Simplex[T] {
	if alpha <= 0 {
		chk.Panic("Simplex: alpha must be positive, got %v", alpha)
	}
	return &Simplex[T]{alpha: alpha}
}

// Project computes the Euclidean projection of x onto the simplex in
// place.
func (o *Simplex[T]) Project(x []T) {
	n := len(x)
	if n == 0 {
		return
	}

	// Step 1.
	v := make([]T, 1, n)
	v[0] = x[0]
	rho := x[0] - o.alpha

	// Step 2.
	var vTilde []T
	for i := 1; i < n; i++ {
		xi := x[i]
		if xi <= rho {
			continue
		}
		newRho := rho + (xi-rho)/T(len(v)+1)
		if newRho > xi-o.alpha {
			v = append(v, xi)
			rho = newRho
		} else {
			vTilde = append(vTilde, v...)
			v = v[:1]
			v[0] = xi
			rho = xi - o.alpha
		}
	}

	// Step 3: sweep the side list, most recently spilled first.
	for k := len(vTilde) - 1; k >= 0; k-- {
		vi := vTilde[k]
		if vi > rho {
			v = append(v, vi)
			rho = rho + (vi-rho)/T(len(v))
		}
	}

	// Step 4: cleanup, removing members <= rho in descending index order
	// within each pass, until a full pass removes nothing.
	changed := true
	for changed {
		changed = false
		for i := len(v) - 1; i >= 0; i-- {
			if v[i] <= rho {
				vi := v[i]
				v[i] = v[len(v)-1]
				v = v[:len(v)-1]
				if len(v) > 0 {
					rho = rho + (rho-vi)/T(len(v))
				}
				changed = true
			}
		}
	}

	// Step 6: y_i := max(0, x_i - rho).
	for i := range x {
		if x[i]-rho > 0 {
			x[i] -= rho
		} else {
			x[i] = 0
		}
	}
}

// IsConvex always returns true.
func (o *Simplex[T]) IsConvex() bool { return true }

func init() {
	Register("simplex", func(prms fun.Prms, _ map[string][]float64) (Constraint[float64], error) {
		a, ok := findPrm(prms, "alpha")
		if !ok {
			return nil, chk.Err("simplex: requires alpha\n")
		}
		return NewSimplex(a), nil
	})
}

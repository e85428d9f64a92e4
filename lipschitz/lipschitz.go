// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lipschitz implements the Lipschitz-constant estimator PANOC's
// initialization step uses (§4.3 point 1, §6). The specification fixes
// only the contract -- (u, grad f, delta, epsilon) -> an estimate L_hat of
// the local Lipschitz constant of grad f at u -- not the algorithm, and
// the Rust source implementing it was not retrieved into
// original_source/. This is a deterministic two-point finite-difference
// probe: perturb every coordinate of u by delta and compare the resulting
// gradient to the one at u, L_hat = ||grad f(u+delta) - grad f(u)|| /
// ||delta vector||, which is the textbook secant estimate of a Lipschitz
// constant and the natural reading of "estimated from two close points
// (u and a perturbation)" in §4.3 point 1.
package lipschitz

import (
	"math"

	"github.com/cpmech/panoc/problem"
	"github.com/cpmech/panoc/vecutil"
)

// Real is the set of floating-point kinds this package supports.
type Real = vecutil.Real

// Estimate returns an estimate of the local Lipschitz constant of grad f
// at u, using a uniform perturbation of size delta and returning epsilon
// whenever the estimate falls below it (to avoid reporting a spuriously
// tiny or zero estimate for a near-flat gradient). gradAtU holds grad f(u), already evaluated by the caller.
// perturbedU and perturbedGrad are caller-owned scratch buffers of
// length n, reused here to avoid allocating on every call; perturbedGrad
// is left holding grad f(u+delta) on return.
func Estimate[T Real](u []T, grad problem.GradientFn[T], delta, epsilon T, gradAtU, perturbedU, perturbedGrad []T) (T, error) {
	n := len(u)
	for i := 0; i < n; i++ {
		perturbedU[i] = u[i] + delta
	}

	if err := grad(perturbedU, perturbedGrad); err != nil {
		return 0, err
	}

	diffNormSq := vecutil.Norm2SquaredDiff(perturbedGrad, gradAtU)
	deltaNormSq := T(n) * delta * delta
	if deltaNormSq <= 0 {
		return 0, nil
	}

	lHat := T(math.Sqrt(float64(diffNormSq) / float64(deltaNormSq)))
	if lHat < epsilon {
		return epsilon, nil
	}
	return lHat, nil
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vecutil implements the "matrix helper" collaborator the
// specification's core consumes (§6): norm1, norm2, norm_inf_diff,
// inner_product, norm2_squared, norm2_squared_diff and is_finite, with
// byte-exact semantics, generic over optfloat.Real.
//
// The generic functions below are direct, allocation-free O(n) loops and
// serve every Real instantiation, float64 included. Float64Norm2 and
// Float64Dot are separate float64-only wrappers over
// github.com/cpmech/gosl/la, the teacher's own vector library, which has
// no float32 variant; see DESIGN.md.
package vecutil

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Real is the set of floating-point kinds supported by the core.
type Real interface {
	~float32 | ~float64
}

// Norm1 returns the ell-1 norm, sum(|x_i|).
func Norm1[T Real](x []T) T {
	var sum T
	for _, xi := range x {
		sum += abs(xi)
	}
	return sum
}

// Norm2 returns the Euclidean norm, sqrt(sum(x_i^2)).
func Norm2[T Real](x []T) T {
	return sqrtT(Norm2Squared(x))
}

// Norm2Squared returns sum(x_i^2).
func Norm2Squared[T Real](x []T) T {
	var sum T
	for _, xi := range x {
		sum += xi * xi
	}
	return sum
}

// Norm2SquaredDiff returns sum((x_i - c_i)^2).
func Norm2SquaredDiff[T Real](x, c []T) T {
	var sum T
	for i, xi := range x {
		d := xi - c[i]
		sum += d * d
	}
	return sum
}

// NormInfDiff returns max(|a_i - b_i|).
func NormInfDiff[T Real](a, b []T) T {
	var m T
	for i, ai := range a {
		d := abs(ai - b[i])
		if d > m {
			m = d
		}
	}
	return m
}

// InnerProduct returns sum(a_i * b_i).
func InnerProduct[T Real](a, b []T) T {
	var sum T
	for i, ai := range a {
		sum += ai * b[i]
	}
	return sum
}

// IsFinite reports whether every component of x is finite.
func IsFinite[T Real](x []T) bool {
	for _, xi := range x {
		f := float64(xi)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func abs[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sqrtT[T Real](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Float64Norm2 is the gosl/la-backed norm2 used by the float64-only
// driver.PathLength, rather than the generic path above.
func Float64Norm2(x la.Vector) float64 {
	return la.VecNorm(x)
}

// Float64Dot is the gosl/la-backed float64 inner product. No package in
// this module calls it; scenarios calls la.VecDot directly.
func Float64Dot(a, b la.Vector) float64 {
	return la.VecDot(a, b)
}

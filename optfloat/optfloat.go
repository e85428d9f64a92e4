// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package optfloat bundles the floating-point arithmetic used throughout the
// optimization core with the numerical tuning constants that calibrate the
// PANOC Lipschitz-estimation and line-search logic against machine epsilon.
//
// A single set of algorithms (fbs, panoc, constraints, lbfgs, lipschitz)
// instantiates for both float32 and float64 by taking Real as a type
// parameter and reading its tuning constants from Tuning[T].
package optfloat

// Real is the set of floating-point kinds the core algorithms support.
type Real interface {
	~float32 | ~float64
}

// Tuning bundles the numerical constants that calibrate PANOC's Lipschitz
// estimation and line search against the precision of T. These are not free
// parameters: §9 of the specification fixes the 64-bit and 32-bit defaults
// below from direct experience with each precision's machine epsilon.
type Tuning[T Real] struct {
	// MinLEstimate is the floor applied to the initial Lipschitz estimate.
	MinLEstimate T
	// GammaLCoeff is the coefficient in gamma = GammaLCoeff/L.
	GammaLCoeff T
	// DeltaLipschitz is the perturbation size used to estimate L.
	DeltaLipschitz T
	// EpsilonLipschitz is the lower bound applied to the estimate of L.
	EpsilonLipschitz T
	// LipschitzUpdateEpsilon is the slack in the FBE sufficient-decrease test.
	LipschitzUpdateEpsilon T
	// MaxLipschitzConstant caps L during the doubling refinement loop.
	MaxLipschitzConstant T
}

// DefaultTuning64 returns the 64-bit default tuning constants.
func DefaultTuning64() Tuning[float64] {
	return Tuning[float64]{
		MinLEstimate:            1e-10,
		GammaLCoeff:             0.95,
		DeltaLipschitz:          1e-12,
		EpsilonLipschitz:        1e-6,
		LipschitzUpdateEpsilon:  1e-6,
		MaxLipschitzConstant:    1e9,
	}
}

// DefaultTuning32 returns the 32-bit default tuning constants.
func DefaultTuning32() Tuning[float32] {
	return Tuning[float32]{
		MinLEstimate:            8.74e-6,
		GammaLCoeff:             0.95,
		DeltaLipschitz:          1.32e-6,
		EpsilonLipschitz:        7.32e-4,
		LipschitzUpdateEpsilon:  2.62e-4,
		MaxLipschitzConstant:    1e9,
	}
}

// DefaultTuning returns the default tuning constants for T, dispatching on
// the concrete type: float32 gets the 32-bit constants, and every other T
// (float64, and any named type whose underlying type is float32 or
// float64) gets the 64-bit constants.
func DefaultTuning[T Real]() Tuning[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		d := DefaultTuning32()
		return Tuning[T]{
			MinLEstimate:           T(d.MinLEstimate),
			GammaLCoeff:            T(d.GammaLCoeff),
			DeltaLipschitz:         T(d.DeltaLipschitz),
			EpsilonLipschitz:       T(d.EpsilonLipschitz),
			LipschitzUpdateEpsilon: T(d.LipschitzUpdateEpsilon),
			MaxLipschitzConstant:   T(d.MaxLipschitzConstant),
		}
	default:
		d := DefaultTuning64()
		return Tuning[T]{
			MinLEstimate:           T(d.MinLEstimate),
			GammaLCoeff:            T(d.GammaLCoeff),
			DeltaLipschitz:         T(d.DeltaLipschitz),
			EpsilonLipschitz:       T(d.EpsilonLipschitz),
			LipschitzUpdateEpsilon: T(d.LipschitzUpdateEpsilon),
			MaxLipschitzConstant:   T(d.MaxLipschitzConstant),
		}
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scenarios implements the reference cost/gradient pairs and known
// solutions used by spec.md §8's worked scenarios and by this module's own
// tests: a well-conditioned quadratic, Rosenbrock's function, and an
// ill-conditioned quadratic whose Hessian has norm ~1001.65. These costs
// split into a quadratic form (evaluated directly, since gosl/la exposes
// no small-dense-matrix quadratic-form helper at this scope) and a linear
// term, the latter evaluated with gosl/la's VecDot, the teacher's own
// inner-product routine.
package scenarios

import "github.com/cpmech/gosl/la"

// SolutionQuadratic is the minimizer of QuadraticCost over Ball2(0, 0.2),
// spec.md §8 scenarios 4-5.
var SolutionQuadratic = [2]float64{-0.14895971825577, 0.13345786727339}

// SolutionHardQuadratic is the minimizer of HardQuadraticCost over
// Ball2(0, 0.05), the constraint the panoc package's hard-quadratic test
// uses; this scenario is not one of spec.md §8's six.
var SolutionHardQuadratic = [3]float64{
	-0.041123164672281,
	-0.028440417469206,
	0.000167276757790,
}

// quadraticLinearTerm is the coefficient vector b in f(u) = 0.5*u'*A*u +
// b'*u + 3 for QuadraticCost.
var quadraticLinearTerm = la.Vector{1, -1}

// QuadraticCost evaluates
//
//	f(u) = 0.5*(u1^2 + 2*u2^2 + 2*u1*u2) + u1 - u2 + 3
//
// the well-conditioned two-dimensional problem of spec.md §8 scenarios 4-5.
func QuadraticCost(u []float64) (float64, error) {
	quadraticForm := 0.5 * (u[0]*u[0] + 2*u[1]*u[1] + 2*u[0]*u[1])
	return quadraticForm + la.VecDot(quadraticLinearTerm, u) + 3, nil
}

// QuadraticGradient evaluates the gradient of QuadraticCost into grad.
func QuadraticGradient(u []float64, grad []float64) error {
	grad[0] = u[0] + u[1] + 1
	grad[1] = u[0] + 2*u[1] - 1
	return nil
}

// RosenbrockCost evaluates (a-u1)^2 + b*(u2-u1^2)^2, spec.md §8 scenario 6.
func RosenbrockCost(a, b float64, u []float64) float64 {
	t1 := a - u[0]
	t2 := u[1] - u[0]*u[0]
	return t1*t1 + b*t2*t2
}

// RosenbrockGradient evaluates the gradient of RosenbrockCost(a, b, .) into
// grad.
func RosenbrockGradient(a, b float64, u []float64, grad []float64) {
	grad[0] = 2*u[0] - 2*a - 4*b*u[0]*(u[1]-u[0]*u[0])
	grad[1] = b * (2*u[1] - 2*u[0]*u[0])
}

// hardQuadraticLinearTerm is the coefficient vector c in f(u) = 0.5*u'*H*u
// + c'*u for HardQuadraticCost.
var hardQuadraticLinearTerm = la.Vector{1, 1, 1}

// HardQuadraticCost evaluates the ill-conditioned three-dimensional
// quadratic
//
//	f(u) = 2*u1^2 + 5.5*u2^2 + 500.5*u3^2 + 5*u1*u2 + 25*u1*u3 + 5*u2*u3 + u1 + u2 + u3
//
// whose Hessian has norm(H) = 1001.653 -- the Lipschitz constant of its
// gradient -- making it a stress test for PANOC's Lipschitz estimation and
// refinement loop.
func HardQuadraticCost(u []float64) (float64, error) {
	quadraticForm := 4*u[0]*u[0]/2 + 5.5*u[1]*u[1] + 500.5*u[2]*u[2] +
		5*u[0]*u[1] + 25*u[0]*u[2] + 5*u[1]*u[2]
	return quadraticForm + la.VecDot(hardQuadraticLinearTerm, u), nil
}

// HardQuadraticGradient evaluates the gradient of HardQuadraticCost into
// grad.
func HardQuadraticGradient(u []float64, grad []float64) error {
	grad[0] = 4*u[0] + 5*u[1] + 25*u[2] + 1
	grad[1] = 5*u[0] + 11*u[1] + 5*u[2] + 1
	grad[2] = 25*u[0] + 5*u[1] + 1001*u[2] + 1
	return nil
}

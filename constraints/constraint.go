// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraints implements the projection algebra: a family of closed
// sets, each exposing an in-place Euclidean projection operator (§4.1 of the
// specification).
package constraints

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/panoc/vecutil"
)

// Real is the set of floating-point kinds supported by the core.
type Real = vecutil.Real

// Constraint is the single capability every closed set in this package
// exposes: an in-place Euclidean projector and a convexity flag.
//
// Implementations must terminate in O(n) or O(n log n) and must not
// allocate on repeated calls, with the documented exception of Simplex
// (and Ball1, which delegates to it), whose Condat projection allocates
// small auxiliary buffers per call; see Simplex's doc comment.
type Constraint[T Real] interface {
	// Project updates x in place to its Euclidean projection onto the set.
	Project(x []T)
	// IsConvex reports whether the set is convex.
	IsConvex() bool
}

// family holds named constructors so constraint sets can be built from
// data (e.g. a scenario description) instead of only from Go literals,
// mirroring the allocator-registry pattern used throughout the teacher's
// mdl/solid and ele packages (model.go's `allocators` map, factory.go's
// tag-to-allocator map). Scalar parameters (radius, alpha, offset, ...)
// travel as fun.Prms, the same named-parameter idiom mdl/solid's model
// Init methods take; vector-valued parameters (center, normal, xmin,
// xmax, ...) have no scalar fun.Prm analogue in the teacher, so they
// travel alongside as a plain map.
var family = map[string]func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error){}

// Register adds a named constructor to the family registry. Intended to be
// called from each constraint file's init().
func Register(name string, ctor func(prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error)) {
	family[name] = ctor
}

// New builds a float64 constraint by name from scalar and vector
// parameters, returning an error (via chk.Err, wrapped by the caller) if
// the name is unknown or construction fails.
func New(name string, prms fun.Prms, vecPrms map[string][]float64) (Constraint[float64], error) {
	ctor, ok := family[name]
	if !ok {
		return nil, unknownConstraintError(name)
	}
	return ctor(prms, vecPrms)
}

// findPrm scans prms for a parameter named name, the same linear search
// the teacher's mdl/solid model Init methods perform over fun.Prms (e.g.
// msolid.DruckerPrager.Init's `for _, p := range prms { switch p.N {...`).
func findPrm(prms fun.Prms, name string) (float64, bool) {
	for _, p := range prms {
		if p.N == name {
			return p.V, true
		}
	}
	return 0, false
}

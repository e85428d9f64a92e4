// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "math"

func sqrtT[T Real](v T) T {
	return T(math.Sqrt(float64(v)))
}

func absT[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func signT[T Real](v T) T {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

func maxT[T Real](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosl/chk"

func unknownConstraintError(name string) error {
	return chk.Err("constraint %q is not available in the constraints family\n", name)
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// The helpers below give every family the same exact behavior at the
// edges of its numerical support, independent of how the interior math
// behaves there.

// boundedPDF evaluates f on [lo, hi] and returns exactly 0 strictly
// outside it.
func boundedPDF(x, lo, hi float64, f func(float64) float64) float64 {
	if x < lo || x > hi {
		return 0
	}
	return f(x)
}

// boundedCDF evaluates f strictly inside (lo, hi) and pins the result
// to exactly 0 and 1 at and beyond the bounds. Interior results that
// drift outside [0, 1] are pulled back onto the nearer limit.
func boundedCDF(x, lo, hi float64, f func(float64) float64) float64 {
	switch {
	case x <= lo:
		return 0
	case x >= hi:
		return 1
	}
	p := f(x)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// boundedInvCDF evaluates f strictly inside (0, 1), maps p=0 and p=1 to
// the exact bounds, and clamps interior results that overshoot the
// support. p outside [0, 1] propagates as NaN.
func boundedInvCDF(p, lo, hi float64, f func(float64) float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return math.NaN()
	case p == 0:
		return lo
	case p == 1:
		return hi
	}
	x := f(p)
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

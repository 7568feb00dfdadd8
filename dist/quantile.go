// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// Tail cutoffs for the families whose analytical support is unbounded.
// The numerical bounds are placed where the excluded tail mass falls
// below roughly 1e-15, so that CDF round trips stay well inside double
// precision.
const (
	// zTail16 is the standard normal quantile at 1e-16.
	zTail16 = 8.222082216130435

	// zTailEps is the standard normal quantile at 2^-53.
	zTailEps = 8.209536151601387

	// expTailEps is -ln(2^-53) = 53·ln 2, the unit exponential
	// quantile at 1-2^-53.
	expTailEps = 36.7368005696771
)

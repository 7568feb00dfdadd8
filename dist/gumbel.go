// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gumbel is the Gumbel (max) extreme-value distribution with mode Mode
// and scale Scale.
type Gumbel struct {
	Mode, Scale float64
}

func newGumbel(p []float64) (Dist, error) {
	if p[1] <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"gumbel: scale must be positive, got %v", p[1])
	}
	return Gumbel{Mode: p[0], Scale: p[1]}, nil
}

func (d Gumbel) base() distuv.GumbelRight {
	return distuv.GumbelRight{Mu: d.Mode, Beta: d.Scale}
}

// Bounds cuts both tails at the 2^-53 quantile level. The upper tail of
// the Gumbel decays like exp(-x/scale), the lower one doubly
// exponentially, hence the asymmetric cutoffs.
func (d Gumbel) Bounds() (float64, float64) {
	return d.Mode - d.Scale*math.Log(expTailEps), d.Mode + d.Scale*expTailEps
}

func (d Gumbel) PDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedPDF(x, lo, hi, d.base().Prob)
}

func (d Gumbel) CDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedCDF(x, lo, hi, d.base().CDF)
}

func (d Gumbel) InvCDF(p float64) float64 {
	lo, hi := d.Bounds()
	return boundedInvCDF(p, lo, hi, d.base().Quantile)
}

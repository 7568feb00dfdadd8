// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is the exponential distribution with rate Rate, bounded
// at the 1-2^-53 quantile.
type Exponential struct {
	Rate float64
}

func newExponential(p []float64) (Dist, error) {
	if p[0] <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"exponential: rate must be positive, got %v", p[0])
	}
	return Exponential{Rate: p[0]}, nil
}

func (d Exponential) base() distuv.Exponential {
	return distuv.Exponential{Rate: d.Rate}
}

func (d Exponential) Bounds() (float64, float64) {
	return 0, expTailEps / d.Rate
}

func (d Exponential) PDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedPDF(x, lo, hi, d.base().Prob)
}

func (d Exponential) CDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedCDF(x, lo, hi, d.base().CDF)
}

func (d Exponential) InvCDF(p float64) float64 {
	lo, hi := d.Bounds()
	return boundedInvCDF(p, lo, hi, d.base().Quantile)
}

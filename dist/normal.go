// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is the normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma, bounded at Mu ± 8.2221·Sigma.
type Normal struct {
	Mu, Sigma float64
}

func newNormal(p []float64) (Dist, error) {
	if p[1] <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"normal: standard deviation must be positive, got %v", p[1])
	}
	return Normal{Mu: p[0], Sigma: p[1]}, nil
}

func (d Normal) base() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d Normal) Bounds() (float64, float64) {
	return d.Mu - zTail16*d.Sigma, d.Mu + zTail16*d.Sigma
}

func (d Normal) PDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedPDF(x, lo, hi, d.base().Prob)
}

func (d Normal) CDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedCDF(x, lo, hi, d.base().CDF)
}

func (d Normal) InvCDF(p float64) float64 {
	lo, hi := d.Bounds()
	return boundedInvCDF(p, lo, hi, d.base().Quantile)
}

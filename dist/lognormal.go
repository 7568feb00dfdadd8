// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormal is the lognormal distribution whose logarithm is normal
// with mean Mu and standard deviation Sigma.
type LogNormal struct {
	Mu, Sigma float64
}

func newLogNormal(p []float64) (Dist, error) {
	if p[1] <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"lognormal: sigma must be positive, got %v", p[1])
	}
	return LogNormal{Mu: p[0], Sigma: p[1]}, nil
}

func (d LogNormal) base() distuv.LogNormal {
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d LogNormal) Bounds() (float64, float64) {
	return math.Exp(d.Mu - zTailEps*d.Sigma), math.Exp(d.Mu + zTailEps*d.Sigma)
}

func (d LogNormal) PDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedPDF(x, lo, hi, d.base().Prob)
}

func (d LogNormal) CDF(x float64) float64 {
	lo, hi := d.Bounds()
	return boundedCDF(x, lo, hi, d.base().CDF)
}

func (d LogNormal) InvCDF(p float64) float64 {
	lo, hi := d.Bounds()
	return boundedInvCDF(p, lo, hi, d.base().Quantile)
}

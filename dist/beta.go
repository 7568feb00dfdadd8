// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Beta is the four-parameter beta distribution with shape parameters R
// and S on the interval [Lower, Upper]. The standard beta on [0, 1] is
// rescaled onto the interval.
type Beta struct {
	R, S         float64
	Lower, Upper float64
}

func newBeta(p []float64) (Dist, error) {
	if p[0] <= 0 || p[1] <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"beta: shape parameters must be positive, got %v and %v", p[0], p[1])
	}
	if p[2] >= p[3] {
		return nil, errors.Wrapf(ErrInvalidParams,
			"beta: lower bound %v must be below upper bound %v", p[2], p[3])
	}
	return Beta{R: p[0], S: p[1], Lower: p[2], Upper: p[3]}, nil
}

func (d Beta) base() distuv.Beta {
	return distuv.Beta{Alpha: d.R, Beta: d.S}
}

func (d Beta) Bounds() (float64, float64) {
	return d.Lower, d.Upper
}

// unit maps x from [Lower, Upper] onto the standard beta's [0, 1].
func (d Beta) unit(x float64) float64 {
	return (x - d.Lower) / (d.Upper - d.Lower)
}

func (d Beta) PDF(x float64) float64 {
	return boundedPDF(x, d.Lower, d.Upper, func(x float64) float64 {
		return d.base().Prob(d.unit(x)) / (d.Upper - d.Lower)
	})
}

func (d Beta) CDF(x float64) float64 {
	return boundedCDF(x, d.Lower, d.Upper, func(x float64) float64 {
		return d.base().CDF(d.unit(x))
	})
}

func (d Beta) InvCDF(p float64) float64 {
	return boundedInvCDF(p, d.Lower, d.Upper, func(p float64) float64 {
		return d.Lower + (d.Upper-d.Lower)*d.base().Quantile(p)
	})
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the continuous uniform distribution on [Lower, Upper].
type Uniform struct {
	Lower, Upper float64
}

func newUniform(p []float64) (Dist, error) {
	if p[0] >= p[1] {
		return nil, errors.Wrapf(ErrInvalidParams,
			"uniform: lower bound %v must be below upper bound %v", p[0], p[1])
	}
	return Uniform{Lower: p[0], Upper: p[1]}, nil
}

func (d Uniform) base() distuv.Uniform {
	return distuv.Uniform{Min: d.Lower, Max: d.Upper}
}

func (d Uniform) Bounds() (float64, float64) {
	return d.Lower, d.Upper
}

func (d Uniform) PDF(x float64) float64 {
	return boundedPDF(x, d.Lower, d.Upper, d.base().Prob)
}

func (d Uniform) CDF(x float64) float64 {
	return boundedCDF(x, d.Lower, d.Upper, d.base().CDF)
}

func (d Uniform) InvCDF(p float64) float64 {
	return boundedInvCDF(p, d.Lower, d.Upper, d.base().Quantile)
}

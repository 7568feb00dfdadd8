// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Triangular is the triangular distribution on [Lower, Upper] with mode
// Mode strictly inside the interval.
type Triangular struct {
	Lower, Mode, Upper float64
}

func newTriangular(p []float64) (Dist, error) {
	if !(p[0] < p[1] && p[1] < p[2]) {
		return nil, errors.Wrapf(ErrInvalidParams,
			"triangular: need lower < mode < upper, got %v, %v, %v", p[0], p[1], p[2])
	}
	return Triangular{Lower: p[0], Mode: p[1], Upper: p[2]}, nil
}

func (d Triangular) base() distuv.Triangle {
	return distuv.NewTriangle(d.Lower, d.Upper, d.Mode, nil)
}

func (d Triangular) Bounds() (float64, float64) {
	return d.Lower, d.Upper
}

func (d Triangular) PDF(x float64) float64 {
	return boundedPDF(x, d.Lower, d.Upper, d.base().Prob)
}

func (d Triangular) CDF(x float64) float64 {
	return boundedCDF(x, d.Lower, d.Upper, d.base().CDF)
}

func (d Triangular) InvCDF(p float64) float64 {
	return boundedInvCDF(p, d.Lower, d.Upper, d.base().Quantile)
}

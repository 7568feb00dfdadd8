// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogitNormal is the logit-normal distribution on (0, 1): the
// distribution of expit(Z) for Z normal with mean Mu and standard
// deviation Sigma. Its density vanishes at both interval ends, so the
// support is kept at exactly [0, 1].
type LogitNormal struct {
	Mu, Sigma float64
}

func newLogitNormal(p []float64) (Dist, error) {
	if p[1] <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"logitnormal: sigma must be positive, got %v", p[1])
	}
	return LogitNormal{Mu: p[0], Sigma: p[1]}, nil
}

func (d LogitNormal) base() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d LogitNormal) Bounds() (float64, float64) {
	return 0, 1
}

func (d LogitNormal) PDF(x float64) float64 {
	return boundedPDF(x, 0, 1, func(x float64) float64 {
		// The density is normal in logit(x) with a 1/(x(1-x))
		// Jacobian; both limits at the interval ends are 0.
		if x <= 0 || x >= 1 {
			return 0
		}
		return d.base().Prob(logit(x)) / (x * (1 - x))
	})
}

func (d LogitNormal) CDF(x float64) float64 {
	return boundedCDF(x, 0, 1, func(x float64) float64 {
		return d.base().CDF(logit(x))
	})
}

func (d LogitNormal) InvCDF(p float64) float64 {
	return boundedInvCDF(p, 0, 1, func(p float64) float64 {
		return expit(d.base().Quantile(p))
	})
}

func logit(x float64) float64 {
	return math.Log(x / (1 - x))
}

func expit(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

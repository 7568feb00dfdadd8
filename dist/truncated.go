// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Truncated renormalizes a base distribution to a truncation interval.
// The declared interval can only tighten the base's numerical support,
// never widen it: the effective bounds are the intersection of the two.
type Truncated struct {
	base   Dist
	lo, hi float64
	cdfLo  float64
	mass   float64 // base probability mass inside [lo, hi]
}

// NewTruncated truncates base to [lower, upper]. The effective interval
// must be non-degenerate and carry positive base mass.
func NewTruncated(base Dist, lower, upper float64) (*Truncated, error) {
	blo, bhi := base.Bounds()
	lo, hi := math.Max(lower, blo), math.Min(upper, bhi)
	if lo >= hi {
		return nil, errors.Wrapf(ErrInvalidParams,
			"truncation interval [%v, %v] is degenerate after clamping to the base support [%v, %v]",
			lower, upper, blo, bhi)
	}
	cdfLo := base.CDF(lo)
	mass := base.CDF(hi) - cdfLo
	if mass <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"no probability mass on truncation interval [%v, %v]", lo, hi)
	}
	return &Truncated{base: base, lo: lo, hi: hi, cdfLo: cdfLo, mass: mass}, nil
}

func (d *Truncated) Bounds() (float64, float64) {
	return d.lo, d.hi
}

func (d *Truncated) PDF(x float64) float64 {
	return boundedPDF(x, d.lo, d.hi, func(x float64) float64 {
		return d.base.PDF(x) / d.mass
	})
}

func (d *Truncated) CDF(x float64) float64 {
	return boundedCDF(x, d.lo, d.hi, func(x float64) float64 {
		return (d.base.CDF(x) - d.cdfLo) / d.mass
	})
}

func (d *Truncated) InvCDF(p float64) float64 {
	return boundedInvCDF(p, d.lo, d.hi, func(p float64) float64 {
		return d.base.InvCDF(d.cdfLo + p*d.mass)
	})
}

// newTruncNormal builds the trunc-normal family: a normal base with the
// stricter validation that the mean lies strictly inside the declared
// truncation interval.
func newTruncNormal(p []float64) (Dist, error) {
	mu, sigma, lb, ub := p[0], p[1], p[2], p[3]
	if sigma <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"trunc-normal: standard deviation must be positive, got %v", sigma)
	}
	if lb >= ub {
		return nil, errors.Wrapf(ErrInvalidParams,
			"trunc-normal: lower bound %v must be below upper bound %v", lb, ub)
	}
	if mu <= lb || mu >= ub {
		return nil, errors.Wrapf(ErrInvalidParams,
			"trunc-normal: mean %v must lie strictly inside [%v, %v]", mu, lb, ub)
	}
	return NewTruncated(Normal{Mu: mu, Sigma: sigma}, lb, ub)
}

// newTruncGumbel builds the trunc-gumbel family.
func newTruncGumbel(p []float64) (Dist, error) {
	mode, scale, lb, ub := p[0], p[1], p[2], p[3]
	if scale <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams,
			"trunc-gumbel: scale must be positive, got %v", scale)
	}
	if lb >= ub {
		return nil, errors.Wrapf(ErrInvalidParams,
			"trunc-gumbel: lower bound %v must be below upper bound %v", lb, ub)
	}
	return NewTruncated(Gumbel{Mode: mode, Scale: scale}, lb, ub)
}

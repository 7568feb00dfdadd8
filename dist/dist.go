// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements the univariate distribution families used to
// model probabilistic inputs of uncertainty-quantification test
// functions.
//
// Every family satisfies the Dist interface over a finite numerical
// support: families with unbounded analytical support (normal,
// lognormal, exponential, gumbel) are cut off where the excluded tail
// mass drops below roughly 1e-15, and the truncated families renormalize
// a base family to a declared interval. The set of families is closed
// and dispatched through an explicit table; Lookup is the only source of
// ErrUnsupportedDistribution.
package dist // import "github.com/damar-wicaksono/uqtestfuns-go/dist"

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Construction-time validation failures. Every error returned by Lookup
// or Family.New wraps one of these.
var (
	// ErrUnsupportedDistribution reports a distribution name that is
	// not in the family table.
	ErrUnsupportedDistribution = errors.New("dist: unsupported distribution")

	// ErrInvalidParams reports a parameter vector of the wrong length
	// or with values outside the family's domain.
	ErrInvalidParams = errors.New("dist: invalid parameters")
)

// A Dist is a continuous univariate distribution restricted to a finite
// numerical support.
type Dist interface {
	// PDF returns the probability density at x. It is exactly 0 for
	// x strictly outside the support.
	PDF(x float64) float64

	// CDF returns the cumulative probability at x. It is exactly 0
	// at and below the lower support bound and exactly 1 at and
	// above the upper one.
	CDF(x float64) float64

	// InvCDF returns the quantile at probability p, the two-sided
	// inverse of CDF on the support. InvCDF(0) is exactly the lower
	// bound and InvCDF(1) exactly the upper one, even where the
	// analytical inverse diverges. For p outside [0, 1] the result
	// is NaN; this is a float-domain convention, not an error.
	InvCDF(p float64) float64

	// Bounds returns the numerical support. The lower bound is
	// always strictly below the upper one.
	Bounds() (lower, upper float64)
}

// A Family describes one supported distribution family: its canonical
// lower-case name, its fixed parameter arity, and how to construct a
// validated Dist from a raw parameter vector.
type Family struct {
	Name      string
	NumParams int

	// ParamDesc names the parameters in order, for listings.
	ParamDesc string

	make func(params []float64) (Dist, error)
}

// New validates params against the family's arity and domain and
// returns the distribution they describe. Validation happens only here;
// the returned Dist trusts its parameters.
func (f *Family) New(params []float64) (Dist, error) {
	if len(params) != f.NumParams {
		return nil, errors.Wrapf(ErrInvalidParams,
			"%s takes %d parameters, got %d", f.Name, f.NumParams, len(params))
	}
	return f.make(params)
}

// families is the closed set of supported families. Adding a family
// means adding a row here and a type satisfying Dist.
var families = []*Family{
	{Name: "uniform", NumParams: 2, ParamDesc: "lower, upper", make: newUniform},
	{Name: "normal", NumParams: 2, ParamDesc: "mean, std", make: newNormal},
	{Name: "lognormal", NumParams: 2, ParamDesc: "mu, sigma", make: newLogNormal},
	{Name: "exponential", NumParams: 1, ParamDesc: "rate", make: newExponential},
	{Name: "beta", NumParams: 4, ParamDesc: "shape r, shape s, lower, upper", make: newBeta},
	{Name: "gumbel", NumParams: 2, ParamDesc: "mode, scale", make: newGumbel},
	{Name: "logitnormal", NumParams: 2, ParamDesc: "mu, sigma", make: newLogitNormal},
	{Name: "triangular", NumParams: 3, ParamDesc: "lower, mode, upper", make: newTriangular},
	{Name: "trunc-normal", NumParams: 4, ParamDesc: "mean, std, lower, upper", make: newTruncNormal},
	{Name: "trunc-gumbel", NumParams: 4, ParamDesc: "mode, scale, lower, upper", make: newTruncGumbel},
}

var byName = func() map[string]*Family {
	m := make(map[string]*Family, len(families))
	for _, f := range families {
		m[f.Name] = f
	}
	return m
}()

// Lookup resolves a case-insensitive distribution name to its family.
func Lookup(name string) (*Family, error) {
	f, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedDistribution, "%q", name)
	}
	return f, nil
}

// Families returns the supported families in table order.
func Families() []*Family {
	return append([]*Family(nil), families...)
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input models the probabilistic input of a test function: an
// ordered collection of independent univariate marginals, each backed
// by a distribution family from package dist.
package input // import "github.com/damar-wicaksono/uqtestfuns-go/input"

import (
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"

	"github.com/damar-wicaksono/uqtestfuns-go/dist"
)

// Errors raised by dimension-sensitive and dependence-sensitive
// operations.
var (
	// ErrDimensionMismatch reports a transform or evaluation whose
	// operands do not share a dimension.
	ErrDimensionMismatch = errors.New("input: dimension mismatch")

	// ErrUnsupportedDependence reports an operation on a
	// probabilistic input whose Copulas field is set. No dependence
	// structure is implemented.
	ErrUnsupportedDependence = errors.New("input: dependent marginals (copulas) are not supported")
)

// A Marginal is one validated scalar random variable: a distribution
// family, its parameters, and the numerical support bounds frozen at
// construction. The only mutable state is the sampling generator,
// which is created lazily and replaced only by ResetRNG.
//
// A Marginal must not be used from multiple goroutines concurrently:
// sampling advances the generator in place.
type Marginal struct {
	name         string
	description  string
	distName     string
	params       []float64
	d            dist.Dist
	lower, upper float64

	seed    uint64
	hasSeed bool
	rng     *rand.Rand
}

// A MarginalOption sets optional metadata at construction.
type MarginalOption func(*Marginal)

// WithName attaches an identifier to the marginal.
func WithName(name string) MarginalOption {
	return func(m *Marginal) { m.name = name }
}

// WithDescription attaches free-text documentation to the marginal.
func WithDescription(desc string) MarginalOption {
	return func(m *Marginal) { m.description = desc }
}

// WithSeed fixes the seed of the sampling generator. Two marginals
// constructed with the same distribution, parameters and seed draw
// bit-identical sample sequences.
func WithSeed(seed uint64) MarginalOption {
	return func(m *Marginal) { m.seed, m.hasSeed = seed, true }
}

// NewMarginal validates the case-insensitive distribution name and its
// parameters and returns the marginal they describe. It fails with
// dist.ErrUnsupportedDistribution for an unknown name and
// dist.ErrInvalidParams for a bad parameter vector; neither can occur
// later than construction.
func NewMarginal(distribution string, params []float64, opts ...MarginalOption) (*Marginal, error) {
	f, err := dist.Lookup(distribution)
	if err != nil {
		return nil, err
	}
	params = append([]float64(nil), params...)
	d, err := f.New(params)
	if err != nil {
		return nil, err
	}
	m := &Marginal{distName: f.Name, params: params, d: d}
	m.lower, m.upper = d.Bounds()
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the marginal's identifier, possibly empty.
func (m *Marginal) Name() string { return m.name }

// Description returns the marginal's documentation, possibly empty.
func (m *Marginal) Description() string { return m.description }

// Distribution returns the canonical lower-case family name.
func (m *Marginal) Distribution() string { return m.distName }

// Params returns a copy of the validated parameter vector.
func (m *Marginal) Params() []float64 {
	return append([]float64(nil), m.params...)
}

// Bounds returns the numerical support frozen at construction.
func (m *Marginal) Bounds() (lower, upper float64) {
	return m.lower, m.upper
}

// PDF returns the probability density at x.
func (m *Marginal) PDF(x float64) float64 { return m.d.PDF(x) }

// CDF returns the cumulative probability at x.
func (m *Marginal) CDF(x float64) float64 { return m.d.CDF(x) }

// InvCDF returns the quantile at probability p. See dist.Dist for the
// boundary and NaN conventions.
func (m *Marginal) InvCDF(p float64) float64 { return m.d.InvCDF(p) }

// PDFEach returns PDF(xs[i]) for each i.
func (m *Marginal) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = m.d.PDF(x)
	}
	return res
}

// CDFEach returns CDF(xs[i]) for each i.
func (m *Marginal) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = m.d.CDF(x)
	}
	return res
}

// InvCDFEach returns InvCDF(ps[i]) for each i.
func (m *Marginal) InvCDFEach(ps []float64) []float64 {
	res := make([]float64, len(ps))
	for i, p := range ps {
		res[i] = m.d.InvCDF(p)
	}
	return res
}

// Sample draws n independent variates by inverse-transform sampling:
// uniform draws from the owned generator mapped through InvCDF. The
// generator is created on first use, from the configured seed or from
// the wall clock when no seed was given. This is the only method that
// mutates the marginal.
func (m *Marginal) Sample(n int) []float64 {
	r := m.generator()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = m.d.InvCDF(r.Float64())
	}
	return xs
}

func (m *Marginal) generator() *rand.Rand {
	if m.rng == nil {
		seed := m.seed
		if !m.hasSeed {
			seed = uint64(time.Now().UnixNano())
		}
		m.rng = rand.New(rand.NewSource(seed))
	}
	return m.rng
}

// ResetRNG discards the sampling generator and recreates it from seed.
// The sample sequence drawn afterwards is fully reproducible from that
// point.
func (m *Marginal) ResetRNG(seed uint64) {
	m.seed, m.hasSeed = seed, true
	m.rng = rand.New(rand.NewSource(seed))
}

// TransformSample maps xs, distributed according to m, into samples
// distributed according to target via the probability integral
// transform: target.InvCDF(m.CDF(x)) elementwise.
func (m *Marginal) TransformSample(xs []float64, target *Marginal) ([]float64, error) {
	if target == nil {
		return nil, errors.Wrap(ErrDimensionMismatch, "transform target is not a marginal")
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = target.d.InvCDF(m.d.CDF(x))
	}
	return res, nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// A ProbInput is the joint probabilistic input of a test function: an
// ordered tuple of marginals, frozen at construction. Column i of every
// sample matrix corresponds to marginal i.
type ProbInput struct {
	// Copulas selects a dependence structure between the marginals.
	// nil means mutually independent. No other value is supported:
	// setting the field makes every dependence-sensitive operation
	// (Sample, PDF, TransformSample) fail with
	// ErrUnsupportedDependence. The field exists as the extension
	// point for future copula models.
	Copulas any

	name        string
	description string
	marginals   []*Marginal
}

// An InputOption sets optional metadata at construction.
type InputOption func(*ProbInput)

// InputName attaches an identifier to the input.
func InputName(name string) InputOption {
	return func(in *ProbInput) { in.name = name }
}

// InputDescription attaches free-text documentation to the input.
func InputDescription(desc string) InputOption {
	return func(in *ProbInput) { in.description = desc }
}

// New builds a probabilistic input over the given marginals. The slice
// is copied; its order is significant and preserved.
func New(marginals []*Marginal, opts ...InputOption) (*ProbInput, error) {
	if len(marginals) == 0 {
		return nil, errors.Wrap(ErrDimensionMismatch, "probabilistic input needs at least one marginal")
	}
	for i, m := range marginals {
		if m == nil {
			return nil, errors.Wrapf(ErrDimensionMismatch, "marginal %d is nil", i)
		}
	}
	in := &ProbInput{marginals: append([]*Marginal(nil), marginals...)}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// Name returns the input's identifier, possibly empty.
func (in *ProbInput) Name() string { return in.name }

// Description returns the input's documentation, possibly empty.
func (in *ProbInput) Description() string { return in.description }

// Dimension returns the number of marginals.
func (in *ProbInput) Dimension() int { return len(in.marginals) }

// Marginals returns a copy of the ordered marginal tuple. The marginal
// objects themselves are shared, not cloned.
func (in *ProbInput) Marginals() []*Marginal {
	return append([]*Marginal(nil), in.marginals...)
}

// independent fails when a dependence structure has been requested.
func (in *ProbInput) independent(op string) error {
	if in.Copulas != nil {
		return errors.Wrapf(ErrUnsupportedDependence, "%s", op)
	}
	return nil
}

// Sample draws n joint samples as an n×Dimension matrix, filling each
// column independently from its marginal.
func (in *ProbInput) Sample(n int) (*mat.Dense, error) {
	if err := in.independent("Sample"); err != nil {
		return nil, err
	}
	out := mat.NewDense(n, len(in.marginals), nil)
	for j, m := range in.marginals {
		out.SetCol(j, m.Sample(n))
	}
	return out, nil
}

// PDF evaluates the joint density at each row of x. Under independence
// the joint density is the product of the marginal densities; it is
// accumulated in log space because the plain product of many small
// densities underflows to zero long before its logarithm degrades.
func (in *ProbInput) PDF(x *mat.Dense) ([]float64, error) {
	if err := in.independent("PDF"); err != nil {
		return nil, err
	}
	n, d := x.Dims()
	if d != len(in.marginals) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"sample has %d columns, input has dimension %d", d, len(in.marginals))
	}
	logs := make([]float64, n)
	col := make([]float64, n)
	for j, m := range in.marginals {
		mat.Col(col, j, x)
		for i, p := range m.PDFEach(col) {
			logs[i] += math.Log(p)
		}
	}
	out := make([]float64, n)
	for i, l := range logs {
		out[i] = math.Exp(l)
	}
	return out, nil
}

// TransformSample maps the rows of x, distributed according to in, into
// samples distributed according to target. The transform is
// coordinatewise: marginals are paired by position, and the two inputs
// must share a dimension.
func (in *ProbInput) TransformSample(x *mat.Dense, target *ProbInput) (*mat.Dense, error) {
	if err := in.independent("TransformSample"); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.Wrap(ErrDimensionMismatch, "transform target is not a probabilistic input")
	}
	if err := target.independent("TransformSample target"); err != nil {
		return nil, err
	}
	if target.Dimension() != in.Dimension() {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"cannot transform between dimensions %d and %d", in.Dimension(), target.Dimension())
	}
	n, d := x.Dims()
	if d != len(in.marginals) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"sample has %d columns, input has dimension %d", d, len(in.marginals))
	}
	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j, m := range in.marginals {
		mat.Col(col, j, x)
		tcol, err := m.TransformSample(col, target.marginals[j])
		if err != nil {
			return nil, err
		}
		out.SetCol(j, tcol)
	}
	return out, nil
}

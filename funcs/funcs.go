// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package funcs is a catalog of closed-form test functions for
// benchmarking uncertainty-quantification algorithms. Each function
// owns the probabilistic input it is defined under; evaluation is a
// pure formula over one realization of that input.
package funcs // import "github.com/damar-wicaksono/uqtestfuns-go/funcs"

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/damar-wicaksono/uqtestfuns-go/input"
)

// ErrUnknownFunction reports a function name that is not in the
// catalog.
var ErrUnknownFunction = errors.New("funcs: unknown test function")

// A Func is a deterministic test function paired with the
// probabilistic input it is benchmarked under.
type Func struct {
	name        string
	description string
	in          *input.ProbInput
	eval        func(x []float64) float64
}

// Name returns the function's catalog name.
func (f *Func) Name() string { return f.name }

// Description returns a one-line description of the function.
func (f *Func) Description() string { return f.description }

// Input returns the function's probabilistic input.
func (f *Func) Input() *input.ProbInput { return f.in }

// Dimension returns the input dimension.
func (f *Func) Dimension() int { return f.in.Dimension() }

// Eval evaluates the function at a single point, which must match the
// input dimension.
func (f *Func) Eval(x []float64) (float64, error) {
	if len(x) != f.in.Dimension() {
		return 0, errors.Wrapf(input.ErrDimensionMismatch,
			"%s takes %d inputs, got %d", f.name, f.in.Dimension(), len(x))
	}
	return f.eval(x), nil
}

// EvalEach evaluates the function at each row of x.
func (f *Func) EvalEach(x *mat.Dense) ([]float64, error) {
	n, d := x.Dims()
	if d != f.in.Dimension() {
		return nil, errors.Wrapf(input.ErrDimensionMismatch,
			"%s takes %d inputs, sample has %d columns", f.name, f.in.Dimension(), d)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f.eval(x.RawRowView(i))
	}
	return out, nil
}

// An Entry describes one catalog function for listings and lookup.
type Entry struct {
	Name        string
	Description string

	// DefaultDimension is the input dimension used when New is
	// called with dimension 0. Functions with FixedDimension set
	// accept no other dimension.
	DefaultDimension int
	FixedDimension   bool

	// New constructs the function at the given input dimension;
	// 0 selects DefaultDimension.
	New func(dimension int) (*Func, error)
}

var catalog = []*Entry{
	{
		Name:             "ishigami",
		Description:      "Ishigami & Homma (1990) trigonometric benchmark",
		DefaultDimension: 3,
		FixedDimension:   true,
		New:              newIshigami,
	},
	{
		Name:             "borehole",
		Description:      "Harper & Gupta (1983) borehole water-flow model",
		DefaultDimension: 8,
		FixedDimension:   true,
		New:              newBorehole,
	},
	{
		Name:             "ackley",
		Description:      "Ackley (1987) multimodal optimization landscape",
		DefaultDimension: 2,
		New:              newAckley,
	},
	{
		Name:             "sobol-g",
		Description:      "Sobol' G function, product-form sensitivity benchmark",
		DefaultDimension: 6,
		New:              newSobolG,
	},
}

var entryByName map[string]*Entry

func init() {
	entryByName = make(map[string]*Entry, len(catalog))
	for _, e := range catalog {
		entryByName[e.Name] = e
	}
}

// Available returns the catalog entries in table order.
func Available() []*Entry {
	return append([]*Entry(nil), catalog...)
}

// New constructs the named test function at the given input dimension;
// dimension 0 selects the entry's default.
func New(name string, dimension int) (*Func, error) {
	e, ok := entryByName[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	return e.New(dimension)
}

// checkDimension resolves the requested dimension against an entry's
// constraints.
func checkDimension(e *Entry, dim int) (int, error) {
	if dim == 0 {
		return e.DefaultDimension, nil
	}
	if dim < 0 || (e.FixedDimension && dim != e.DefaultDimension) {
		return 0, errors.Wrapf(input.ErrDimensionMismatch,
			"%s is defined for dimension %d, got %d", e.Name, e.DefaultDimension, dim)
	}
	return dim, nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/damar-wicaksono/uqtestfuns-go/input"
)

// Ishigami function, a standard three-dimensional benchmark for
// sensitivity analysis with a strongly nonlinear, nonmonotonic
// response and a pure interaction term.
//
// Ishigami, T. and Homma, T. (1990). "An importance quantification
// technique in uncertainty analysis for computer models". Proceedings
// of the First International Symposium on Uncertainty Modeling and
// Analysis.
//
//	f(x) = sin(x1) + a·sin²(x2) + b·x3⁴·sin(x1)
//
// with the customary coefficients a = 7 and b = 0.1 and all three
// inputs uniform on [-π, π].
func newIshigami(dim int) (*Func, error) {
	if _, err := checkDimension(entryByName["ishigami"], dim); err != nil {
		return nil, err
	}
	const a, b = 7.0, 0.1

	in, err := input.FromSpecs([]input.MarginalSpec{
		{Name: "X1", Distribution: "uniform", Parameters: []float64{-math.Pi, math.Pi}},
		{Name: "X2", Distribution: "uniform", Parameters: []float64{-math.Pi, math.Pi}},
		{Name: "X3", Distribution: "uniform", Parameters: []float64{-math.Pi, math.Pi}},
	}, input.InputName("Ishigami"))
	if err != nil {
		return nil, err
	}

	return &Func{
		name:        "ishigami",
		description: entryByName["ishigami"].Description,
		in:          in,
		eval: func(x []float64) float64 {
			s1 := math.Sin(x[0])
			s2 := math.Sin(x[1])
			return s1 + a*s2*s2 + b*math.Pow(x[2], 4)*s1
		},
	}, nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"

	"github.com/damar-wicaksono/uqtestfuns-go/input"
)

// Borehole function, an eight-dimensional model of steady water flow
// through a borehole between two aquifers. A classic emulation and
// metamodeling benchmark.
//
// Harper, W. V. and Gupta, S. K. (1983). "Sensitivity/uncertainty
// analysis of a borehole scenario comparing Latin hypercube sampling
// and deterministic sensitivity approaches". BMI/ONWI-516.
func newBorehole(dim int) (*Func, error) {
	if _, err := checkDimension(entryByName["borehole"], dim); err != nil {
		return nil, err
	}

	in, err := input.FromSpecs([]input.MarginalSpec{
		{Name: "rw", Distribution: "normal", Parameters: []float64{0.10, 0.0161812},
			Description: "borehole radius [m]"},
		{Name: "r", Distribution: "lognormal", Parameters: []float64{7.71, 1.0056},
			Description: "radius of influence [m]"},
		{Name: "Tu", Distribution: "uniform", Parameters: []float64{63070, 115600},
			Description: "upper aquifer transmissivity [m2/yr]"},
		{Name: "Hu", Distribution: "uniform", Parameters: []float64{990, 1110},
			Description: "upper aquifer potentiometric head [m]"},
		{Name: "Tl", Distribution: "uniform", Parameters: []float64{63.1, 116},
			Description: "lower aquifer transmissivity [m2/yr]"},
		{Name: "Hl", Distribution: "uniform", Parameters: []float64{700, 820},
			Description: "lower aquifer potentiometric head [m]"},
		{Name: "L", Distribution: "uniform", Parameters: []float64{1120, 1680},
			Description: "borehole length [m]"},
		{Name: "Kw", Distribution: "uniform", Parameters: []float64{9855, 12045},
			Description: "borehole hydraulic conductivity [m/yr]"},
	}, input.InputName("Borehole"))
	if err != nil {
		return nil, err
	}

	return &Func{
		name:        "borehole",
		description: entryByName["borehole"].Description,
		in:          in,
		eval: func(x []float64) float64 {
			rw, r, tu, hu, tl, hl, l, kw := x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7]
			lnRRw := math.Log(r / rw)
			num := 2 * math.Pi * tu * (hu - hl)
			den := lnRRw * (1 + 2*l*tu/(lnRRw*rw*rw*kw) + tu/tl)
			return num / den
		},
	}, nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"fmt"
	"math"

	"github.com/damar-wicaksono/uqtestfuns-go/input"
)

// Sobol' G function in any dimension, a product-form benchmark whose
// coefficients a_i = (i-1)/2 give the leading coordinates most of the
// output variance. Inputs are uniform on the unit hypercube.
//
// Sobol', I. M. (1998). "On quasi-Monte Carlo integrations".
// Mathematics and Computers in Simulation 47.
func newSobolG(dim int) (*Func, error) {
	m, err := checkDimension(entryByName["sobol-g"], dim)
	if err != nil {
		return nil, err
	}

	coeff := make([]float64, m)
	for i := range coeff {
		coeff[i] = float64(i) / 2
	}

	specs := make([]input.MarginalSpec, m)
	for i := range specs {
		specs[i] = input.MarginalSpec{
			Name:         fmt.Sprintf("X%d", i+1),
			Distribution: "uniform",
			Parameters:   []float64{0, 1},
		}
	}
	in, err := input.FromSpecs(specs, input.InputName(fmt.Sprintf("Sobol-G-%d", m)))
	if err != nil {
		return nil, err
	}

	return &Func{
		name:        "sobol-g",
		description: entryByName["sobol-g"].Description,
		in:          in,
		eval: func(x []float64) float64 {
			prod := 1.0
			for i, v := range x {
				prod *= (math.Abs(4*v-2) + coeff[i]) / (1 + coeff[i])
			}
			return prod
		},
	}, nil
}

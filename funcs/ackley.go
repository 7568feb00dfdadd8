// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"fmt"
	"math"

	"github.com/damar-wicaksono/uqtestfuns-go/input"
)

// Ackley function in any dimension, a multimodal landscape with a
// single global minimum of 0 at the origin, under uniform inputs on
// [-32.768, 32.768] per coordinate.
//
// Ackley, D. H. (1987). A Connectionist Machine for Genetic
// Hillclimbing. Kluwer Academic Publishers.
func newAckley(dim int) (*Func, error) {
	m, err := checkDimension(entryByName["ackley"], dim)
	if err != nil {
		return nil, err
	}
	const (
		a     = 20.0
		b     = 0.2
		c     = 2 * math.Pi
		limit = 32.768
	)

	specs := make([]input.MarginalSpec, m)
	for i := range specs {
		specs[i] = input.MarginalSpec{
			Name:         fmt.Sprintf("X%d", i+1),
			Distribution: "uniform",
			Parameters:   []float64{-limit, limit},
		}
	}
	in, err := input.FromSpecs(specs, input.InputName(fmt.Sprintf("Ackley-%d", m)))
	if err != nil {
		return nil, err
	}

	return &Func{
		name:        "ackley",
		description: entryByName["ackley"].Description,
		in:          in,
		eval: func(x []float64) float64 {
			var sumSq, sumCos float64
			for _, v := range x {
				sumSq += v * v
				sumCos += math.Cos(c * v)
			}
			n := float64(len(x))
			return -a*math.Exp(-b*math.Sqrt(sumSq/n)) -
				math.Exp(sumCos/n) + a + math.E
		},
	}, nil
}

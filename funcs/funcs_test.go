// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package funcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damar-wicaksono/uqtestfuns-go/input"
)

func TestCatalog(t *testing.T) {
	entries := Available()
	require.Len(t, entries, 4)

	for _, e := range entries {
		f, err := New(e.Name, 0)
		require.NoError(t, err, e.Name)
		assert.Equal(t, e.Name, f.Name())
		assert.Equal(t, e.DefaultDimension, f.Dimension())
	}

	_, err := New("rosenbrock", 0)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestFixedDimension(t *testing.T) {
	_, err := New("ishigami", 4)
	assert.ErrorIs(t, err, input.ErrDimensionMismatch)

	_, err = New("borehole", 7)
	assert.ErrorIs(t, err, input.ErrDimensionMismatch)

	// Variable-dimension functions take any positive dimension.
	f, err := New("ackley", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, f.Dimension())

	_, err = New("sobol-g", -1)
	assert.ErrorIs(t, err, input.ErrDimensionMismatch)
}

func TestIshigami(t *testing.T) {
	f, err := New("ishigami", 0)
	require.NoError(t, err)

	// sin(π/2) = 1, so f(π/2, π/2, 0) = 1 + 7 + 0.
	y, err := f.Eval([]float64{math.Pi / 2, math.Pi / 2, 0})
	require.NoError(t, err)
	assert.InDelta(t, 8, y, 1e-12)

	y, err = f.Eval([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, y, 1e-12)

	for _, m := range f.Input().Marginals() {
		assert.Equal(t, "uniform", m.Distribution())
		assert.Equal(t, []float64{-math.Pi, math.Pi}, m.Params())
	}

	_, err = f.Eval([]float64{1, 2})
	assert.ErrorIs(t, err, input.ErrDimensionMismatch)
}

func TestBorehole(t *testing.T) {
	f, err := New("borehole", 0)
	require.NoError(t, err)
	require.Equal(t, 8, f.Dimension())

	ms := f.Input().Marginals()
	assert.Equal(t, "normal", ms[0].Distribution())
	assert.Equal(t, "lognormal", ms[1].Distribution())

	// A nominal point: flow is positive and on the order of tens of
	// m3/yr.
	y, err := f.Eval([]float64{0.10, 2200, 89000, 1050, 89.6, 760, 1400, 10950})
	require.NoError(t, err)
	assert.Greater(t, y, 0.0)
	assert.Less(t, y, 500.0)
}

func TestAckley(t *testing.T) {
	f, err := New("ackley", 5)
	require.NoError(t, err)

	// Global minimum of 0 at the origin.
	y, err := f.Eval(make([]float64, 5))
	require.NoError(t, err)
	assert.InDelta(t, 0, y, 1e-9)

	y, err = f.Eval([]float64{1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Greater(t, y, 0.0)
}

func TestSobolG(t *testing.T) {
	f, err := New("sobol-g", 4)
	require.NoError(t, err)

	// At the hypercube center every |4x-2| term vanishes, leaving
	// Π a_i/(1+a_i).
	want := 1.0
	for i := 0; i < 4; i++ {
		a := float64(i) / 2
		want *= a / (1 + a)
	}
	y, err := f.Eval([]float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, want, y, 1e-12)

	// At x_i = 0.25 every factor is (1+a_i)/(1+a_i) = 1.
	y, err = f.Eval([]float64{0.25, 0.25, 0.25, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestEvalEach(t *testing.T) {
	f, err := New("ishigami", 0)
	require.NoError(t, err)

	for _, m := range f.Input().Marginals() {
		m.ResetRNG(99)
	}
	x, err := f.Input().Sample(25)
	require.NoError(t, err)

	ys, err := f.EvalEach(x)
	require.NoError(t, err)
	require.Len(t, ys, 25)

	for i, y := range ys {
		want, err := f.Eval(x.RawRowView(i))
		require.NoError(t, err)
		assert.Equal(t, want, y)
	}
}

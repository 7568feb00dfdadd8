// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"uniform", "Uniform", "NORMAL", "Trunc-Normal"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
		}
	}

	for _, name := range []string{"", "cauchy", "uniforms", "normal "} {
		_, err := Lookup(name)
		if !errors.Is(err, ErrUnsupportedDistribution) {
			t.Errorf("Lookup(%q) = %v, want ErrUnsupportedDistribution", name, err)
		}
	}
}

func TestFamilies(t *testing.T) {
	fs := Families()
	if len(fs) != 10 {
		t.Fatalf("Families() has %d entries, want 10", len(fs))
	}
	for _, f := range fs {
		if g, err := Lookup(f.Name); err != nil || g != f {
			t.Errorf("Lookup(%q) did not resolve to its table entry (err %v)", f.Name, err)
		}
	}
}

func TestNewArity(t *testing.T) {
	for _, f := range Families() {
		long := make([]float64, f.NumParams+1)
		for _, params := range [][]float64{nil, long} {
			_, err := f.New(params)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("%s.New with %d parameters = %v, want ErrInvalidParams",
					f.Name, len(params), err)
			}
		}
	}
}

// Parameter vectors with the right arity but values outside each
// family's domain.
var invalidParams = map[string][][]float64{
	"uniform":      {{5, 2}, {1, 1}},
	"normal":       {{0, 0}, {0, -1}},
	"lognormal":    {{1, -0.5}},
	"exponential":  {{0}, {-2}},
	"beta":         {{-1, 2, 0, 1}, {2, 0, 0, 1}, {2, 2, 1, 0}},
	"gumbel":       {{0, -1}},
	"logitnormal":  {{0, 0}},
	"triangular":   {{0, 2, 1}, {0, 0, 1}, {1, 1, 1}},
	"trunc-normal": {{0, -1, -2, 2}, {0, 1, 2, -2}, {5, 1, -1, 1}},
	"trunc-gumbel": {{0, 0, -1, 4}, {0, 1, 4, -1}},
}

func TestVerifyParams(t *testing.T) {
	for name, sets := range invalidParams {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		for _, params := range sets {
			_, err := f.New(params)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("%s.New(%v) = %v, want ErrInvalidParams", name, params, err)
			}
		}
	}
}

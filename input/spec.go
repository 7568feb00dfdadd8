// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// A MarginalSpec is the declarative description of one marginal: the
// interchange form used by test-function definitions and by on-disk
// input files.
type MarginalSpec struct {
	Name         string    `yaml:"name"`
	Distribution string    `yaml:"distribution"`
	Parameters   []float64 `yaml:"parameters,flow"`
	Description  string    `yaml:"description,omitempty"`
}

// Marginal constructs the validated marginal the spec describes.
func (s MarginalSpec) Marginal() (*Marginal, error) {
	return NewMarginal(s.Distribution, s.Parameters,
		WithName(s.Name), WithDescription(s.Description))
}

// FromSpecs builds a probabilistic input from declarative marginal
// specs, in order.
func FromSpecs(specs []MarginalSpec, opts ...InputOption) (*ProbInput, error) {
	ms := make([]*Marginal, len(specs))
	for i, s := range specs {
		m, err := s.Marginal()
		if err != nil {
			return nil, errors.Wrapf(err, "marginal %d (%q)", i, s.Name)
		}
		ms[i] = m
	}
	return New(ms, opts...)
}

// LoadSpecs reads a YAML list of marginal specs.
func LoadSpecs(r io.Reader) ([]MarginalSpec, error) {
	var specs []MarginalSpec
	if err := yaml.NewDecoder(r).Decode(&specs); err != nil {
		return nil, errors.Wrap(err, "decoding marginal specs")
	}
	return specs, nil
}

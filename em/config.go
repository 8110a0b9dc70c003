// Copyright 2026 The fast-align-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package em implements the EM alignment driver: it streams a parallel
// corpus through a reparameterized IBM Model 2 (the "fast_align" model),
// alternating an E-step (posterior computation) and an M-step (table
// re-estimation, optional tension re-estimation), and on the final pass
// emits Viterbi alignment links instead of expected counts.
package em

import "fmt"

// Config holds every run parameter spec.md §6 names, replacing the
// reference design's process-wide globals (§9 "Global state in the
// source") with one explicit, validated struct.
type Config struct {
	Input            string
	Reverse          bool
	Iterations       int
	FavorDiagonal    bool
	ProbAlignNull    float64
	DiagonalTension  float64
	OptimizeTension  bool
	VariationalBayes bool
	Alpha            float64
	NoNullWord       bool
	ExportPath       string
	Lowercase        bool
	MaxLenRatio      float64
}

// DefaultConfig returns the flag defaults from spec.md §6.
func DefaultConfig() Config {
	return Config{
		Iterations:      5,
		ProbAlignNull:   0.08,
		DiagonalTension: 4.0,
		Alpha:           0.01,
	}
}

// Validate checks the configuration-error conditions from spec.md §7,
// before any training starts.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("--input is required")
	}
	if c.VariationalBayes && c.Alpha <= 0 {
		return fmt.Errorf("--alpha must be > 0 when --variational_bayes is set")
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("--iterations must be > 0")
	}
	return nil
}

// UseNull reports whether the null alignment word is enabled.
func (c Config) UseNull() bool {
	return !c.NoNullWord
}

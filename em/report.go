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

package em

import "github.com/bytedance/sonic"

// IterationReport carries the observational statistics spec.md §4.4
// ("Reporting") expects the driver to surface after each pass.
type IterationReport struct {
	Iteration        int     `json:"iteration"`
	Final            bool    `json:"final"`
	LogLikelihood    float64 `json:"logLikelihood"`
	Log2Likelihood   float64 `json:"log2Likelihood"`
	CrossEntropy     float64 `json:"crossEntropy"`
	Perplexity       float64 `json:"perplexity"`
	PosteriorP0      float64 `json:"posteriorP0"`
	PosteriorFeature float64 `json:"posteriorFeature"`
	SizeCount        int     `json:"sizeCount"`
	DiagonalTension  float64 `json:"diagonalTension"`
}

// ToJSON serializes the report, using the fast JSON codec the teacher
// module declares as a dependency.
func (r IterationReport) ToJSON() ([]byte, error) {
	return sonic.Marshal(r)
}

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

// Package tension implements the fixed-step diagonal-tension update
// between EM iterations (spec.md §4.5).
package tension

import "github.com/czcorpus/fast-align/align"

const (
	steps     = 8
	stepSize  = 20.0
	minLambda = 0.1
	maxLambda = 14.0
)

// Optimize runs the fixed 8-step gradient update on lambda so that the
// model feature (derived from the size histogram) matches empFeat, the
// normalized empirical feature accumulated during the just-finished EM
// pass. tokens is the summed target length over the corpus. There is no
// line search and no convergence test: the 8-iteration budget is the
// entire contract.
func Optimize(hist *align.SizeHistogram, empFeat, tokens, lambda float64) float64 {
	for step := 0; step < steps; step++ {
		var modelFeat float64
		hist.ForEach(func(m, n, count int) {
			for j := 1; j <= m; j++ {
				modelFeat += float64(count) * align.DLogZ(j, m, n, lambda)
			}
		})
		modelFeat /= tokens
		lambda += (empFeat - modelFeat) * stepSize
		if lambda < minLambda {
			lambda = minLambda
		}
		if lambda > maxLambda {
			lambda = maxLambda
		}
	}
	return lambda
}

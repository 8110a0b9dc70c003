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

package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func directZ(i, m, n int, lambda float64) float64 {
	var sum float64
	for j := 1; j <= n; j++ {
		sum += UnnormalizedProb(i, j, m, n, lambda)
	}
	return sum
}

func directLogZDerivative(i, m, n int, lambda, eps float64) float64 {
	logZPlus := math.Log(Z(i, m, n, lambda+eps))
	logZMinus := math.Log(Z(i, m, n, lambda-eps))
	return (logZPlus - logZMinus) / (2 * eps)
}

// TestZMatchesDirectSum is property 1 from spec.md §8.
func TestZMatchesDirectSum(t *testing.T) {
	lambdas := []float64{0.1, 1, 4, 9.5, 14}
	for _, m := range []int{1, 2, 3, 5, 10} {
		for _, n := range []int{1, 2, 3, 5, 11} {
			for i := 1; i <= m; i++ {
				for _, lambda := range lambdas {
					want := directZ(i, m, n, lambda)
					got := Z(i, m, n, lambda)
					if want == 0 {
						continue
					}
					relErr := math.Abs(got-want) / want
					assert.Lessf(t, relErr, 1e-9,
						"Z(%d,%d,%d,%v) closed form %v vs direct %v", i, m, n, lambda, got, want)
				}
			}
		}
	}
}

// TestDLogZMatchesFiniteDifference is property 2 from spec.md §8.
func TestDLogZMatchesFiniteDifference(t *testing.T) {
	lambdas := []float64{0.1, 1, 4, 9.5, 14}
	for _, m := range []int{1, 3, 5, 8} {
		for _, n := range []int{1, 3, 5, 9} {
			for i := 1; i <= m; i++ {
				for _, lambda := range lambdas {
					got := DLogZ(i, m, n, lambda)
					want := directLogZDerivative(i, m, n, lambda, 1e-4)
					if math.Abs(want) < 1e-8 {
						assert.InDelta(t, want, got, 1e-5)
						continue
					}
					relErr := math.Abs(got-want) / math.Abs(want)
					assert.Lessf(t, relErr, 1e-5,
						"DLogZ(%d,%d,%d,%v) = %v, finite diff = %v", i, m, n, lambda, got, want)
				}
			}
		}
	}
}

// TestFeatureNonPositive is property 3 from spec.md §8.
func TestFeatureNonPositive(t *testing.T) {
	for _, m := range []int{1, 4, 7} {
		for _, n := range []int{1, 4, 9} {
			for i := 1; i <= m; i++ {
				for j := 1; j <= n; j++ {
					f := Feature(i, j, m, n)
					assert.LessOrEqual(t, f, 0.0)
					if float64(j)/float64(n) == float64(i)/float64(m) {
						assert.Equal(t, 0.0, f)
					}
				}
			}
		}
	}
}

// buggyDLogZ reproduces the reference implementation's reported
// argument-swap bug (spec.md §9 Open Question 3): it computes Z with
// (i, n, m, lambda) instead of (i, m, n, lambda).
func buggyDLogZ(i, m, n int, lambda float64) float64 {
	z := Z(i, n, m, lambda) // bug: m and n swapped
	split := float64(i) * float64(n) / float64(m)
	floor := int(split)
	ceil := floor + 1
	ratio := math.Exp(-lambda / float64(n))
	d := -1.0 / float64(n)
	numTop := n - floor

	var pct, pcb float64
	if numTop > 0 {
		pct = arithmeticoGeometricSeries(
			Feature(i, ceil, m, n), UnnormalizedProb(i, ceil, m, n, lambda), ratio, d, numTop)
	}
	if floor > 0 {
		pcb = arithmeticoGeometricSeries(
			Feature(i, floor, m, n), UnnormalizedProb(i, floor, m, n, lambda), ratio, d, floor)
	}
	return (pct + pcb) / z
}

// TestDLogZArgumentOrder pins down spec.md §9 Open Question 3: DLogZ must
// call Z with the same (i, m, n, lambda) order Z itself takes, not a
// swapped (i, n, m, lambda). For an asymmetric (m, n) the swapped call
// computes a different partition function, so this test fails if that
// regression were reintroduced.
func TestDLogZArgumentOrder(t *testing.T) {
	const m, n = 3, 7
	for i := 1; i <= m; i++ {
		got := DLogZ(i, m, n, 4.0)
		bugged := buggyDLogZ(i, m, n, 4.0)
		assert.NotEqual(t, bugged, got)

		want := directLogZDerivative(i, m, n, 4.0, 1e-4)
		assert.InDelta(t, want, got, math.Abs(want)*1e-5+1e-9)
	}
}

// TestDiagonalArgmax is scenario S2 from spec.md §8.
func TestDiagonalArgmax(t *testing.T) {
	const m, n = 3, 3
	const lambda = 4.0
	for i := 1; i <= m; i++ {
		bestJ, bestP := -1, -1.0
		for j := 1; j <= n; j++ {
			p := UnnormalizedProb(i, j, m, n, lambda)
			if p > bestP {
				bestP, bestJ = p, j
			}
		}
		assert.Equal(t, i, bestJ)
		assert.InDelta(t, directZ(i, m, n, lambda), Z(i, m, n, lambda), 1e-9)
	}
}

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

// Package align implements the reparameterized IBM Model 2 position
// prior ("diagonal alignment") and the sparse lexical translation table.
//
// Throughout this file i is the target index (1..m), j is the source
// index (1..n), m is the target sentence length and n is the source
// sentence length, matching the reference da.h layout.
package align

import "math"

// Feature is the signed diagonal-distance statistic: the cost of
// aligning target position i to source position j. It is non-positive
// and reaches its maximum of 0 exactly when j/n == i/m.
func Feature(i, j, m, n int) float64 {
	return -math.Abs(float64(j)/float64(n) - float64(i)/float64(m))
}

// UnnormalizedProb is exp(lambda * Feature(i,j,m,n)), the unnormalized
// diagonal prior mass assigned to source position j.
func UnnormalizedProb(i, j, m, n int, lambda float64) float64 {
	return math.Exp(lambda * Feature(i, j, m, n))
}

// Z computes the partition function sum_{j=1..n} UnnormalizedProb(i,j,m,n,lambda)
// in closed form, as two geometric series split at the index nearest the
// diagonal. Implementations must produce results identical to the direct
// sum to within floating-point rounding; the closed form exists only for
// performance.
func Z(i, m, n int, lambda float64) float64 {
	split := float64(i) * float64(n) / float64(m)
	floor := int(split)
	ceil := floor + 1
	ratio := math.Exp(-lambda / float64(n))
	numTop := n - floor

	var ezt, ezb float64
	if numTop > 0 {
		ezt = UnnormalizedProb(i, ceil, m, n, lambda) * (1.0 - math.Pow(ratio, float64(numTop))) / (1.0 - ratio)
	}
	if floor > 0 {
		ezb = UnnormalizedProb(i, floor, m, n, lambda) * (1.0 - math.Pow(ratio, float64(floor))) / (1.0 - ratio)
	}
	return ezb + ezt
}

// arithmeticoGeometricSeries sums, in closed form, an N-term series whose
// k-th term (k = 0..N-1) is (a1 + k*d) * (g1 * r^k):
//
//	S = (a_N*g_{N+1} - a1*g1) / (r-1) - d*(g_{N+1} - g2) / (r-1)^2
func arithmeticoGeometricSeries(a1, g1, r, d float64, n int) float64 {
	gNp1 := g1 * math.Pow(r, float64(n))
	aN := d*float64(n-1) + a1
	x1 := a1 * g1
	g2 := g1 * r
	rm1 := r - 1
	return (aN*gNp1-x1)/rm1 - d*(gNp1-g2)/(rm1*rm1)
}

// DLogZ computes d(log Z)/d(lambda) in closed form, again as two
// arithmetico-geometric series split at the diagonal.
//
// Note on argument order (spec.md §9 Open Question 3): this implementation
// calls Z with the same (i, m, n, lambda) order Z itself takes. A
// reference implementation that instead passed (i, n, m, lambda) to Z
// would silently compute a different (wrong) partition function whenever
// m != n; that swap is not reproduced here.
func DLogZ(i, m, n int, lambda float64) float64 {
	z := Z(i, m, n, lambda)
	split := float64(i) * float64(n) / float64(m)
	floor := int(split)
	ceil := floor + 1
	ratio := math.Exp(-lambda / float64(n))
	// Feature decreases at the same per-step rate, -1/n, moving away from
	// the diagonal on either side (j increasing past ceil, or j decreasing
	// below floor) -- both branches share this slope.
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

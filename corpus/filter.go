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

package corpus

// SentenceFilter allows dropping sentence pairs before they reach the EM
// loop.
type SentenceFilter interface {
	Apply(pair SentencePair) bool
}

// PassAllFilter is the default filter: every pair is accepted.
type PassAllFilter struct{}

func (PassAllFilter) Apply(pair SentencePair) bool { return true }

// MaxLengthRatioFilter rejects pairs whose longer side is more than
// MaxRatio times the length of the shorter side, a standard bitext
// cleaning heuristic. A MaxRatio of 0 disables the check (equivalent to
// PassAllFilter).
type MaxLengthRatioFilter struct {
	MaxRatio float64
}

func (f MaxLengthRatioFilter) Apply(pair SentencePair) bool {
	if f.MaxRatio <= 0 {
		return true
	}
	n, m := len(pair.Src), len(pair.Trg)
	if n == 0 || m == 0 {
		return false
	}
	longer, shorter := float64(n), float64(m)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	return longer/shorter <= f.MaxRatio
}

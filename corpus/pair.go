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

// Package corpus reads a parallel bitext corpus: one sentence pair per
// line, source and target token sequences separated by a literal "|||".
package corpus

// SentencePair holds one source/target token-id sequence, 0-indexed in
// Go slices (the 1-based indexing in spec.md's math is a property of the
// EM driver's loop bounds, not of this representation).
type SentencePair struct {
	Src []int
	Trg []int
}

// Empty reports whether either side has no tokens, the one structural
// error condition a corpus line can have.
func (p SentencePair) Empty() bool {
	return len(p.Src) == 0 || len(p.Trg) == 0
}

// Swap returns a new pair with source and target exchanged, for the
// --reverse running mode.
func (p SentencePair) Swap() SentencePair {
	return SentencePair{Src: p.Trg, Trg: p.Src}
}

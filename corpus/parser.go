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

import (
	"fmt"

	"github.com/czcorpus/fast-align/normalize"
	"github.com/czcorpus/fast-align/vocab"
)

// Separator is the reserved literal that splits a corpus line into its
// source and target sides.
const Separator = "|||"

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// convertWhitespaceDelimitedLine tokenizes line on runs of space/tab,
// interning each field, and additionally emits the interned Separator id
// at every literal tab encountered, on top of whatever fields the tab
// delimits. A tab is therefore both a field delimiter and a side
// separator: a tab between the two sides splits the line just as "|||"
// does.
func convertWhitespaceDelimitedLine(line string, v *vocab.Vocabulary, norm *normalize.Chain) []int {
	out := make([]int, 0, 16)
	state := 0
	last := 0
	for cur := 0; cur < len(line); cur++ {
		c := line[cur]
		if isWhitespace(c) {
			if state == 1 {
				out = append(out, v.Intern(norm.Apply(line[last:cur])))
				state = 0
			}
			if c == '\t' {
				out = append(out, v.Intern(Separator))
			}
		} else {
			if state == 1 {
				continue
			}
			last = cur
			state = 1
		}
	}
	if state == 1 {
		out = append(out, v.Intern(norm.Apply(line[last:])))
	}
	return out
}

// ParseLine tokenizes a corpus line and splits it at the first occurrence
// of the reserved "|||" separator into a source and a target token
// sequence. It returns an error, never a fatal exit, when either side is
// empty; the caller (the EM driver) is responsible for attaching a line
// number and treating this as a fatal corpus error per spec.md §7.
func ParseLine(line string, v *vocab.Vocabulary, norm *normalize.Chain) (SentencePair, error) {
	divID := v.Intern(Separator)
	tmp := convertWhitespaceDelimitedLine(line, v, norm)

	i := 0
	for i < len(tmp) && tmp[i] != divID {
		i++
	}
	src := append([]int(nil), tmp[:i]...)
	var trg []int
	if i < len(tmp) {
		trg = append([]int(nil), tmp[i+1:]...)
	}
	pair := SentencePair{Src: src, Trg: trg}
	if pair.Empty() {
		return pair, fmt.Errorf("empty source or target sentence")
	}
	return pair, nil
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassAllFilterAcceptsEverything(t *testing.T) {
	f := PassAllFilter{}
	assert.True(t, f.Apply(SentencePair{Src: []int{1}, Trg: []int{1, 2, 3, 4, 5}}))
}

func TestMaxLengthRatioFilter(t *testing.T) {
	f := MaxLengthRatioFilter{MaxRatio: 2.0}
	assert.True(t, f.Apply(SentencePair{Src: make([]int, 3), Trg: make([]int, 5)}))
	assert.False(t, f.Apply(SentencePair{Src: make([]int, 2), Trg: make([]int, 5)}))
}

func TestMaxLengthRatioFilterDisabled(t *testing.T) {
	f := MaxLengthRatioFilter{MaxRatio: 0}
	assert.True(t, f.Apply(SentencePair{Src: make([]int, 1), Trg: make([]int, 100)}))
}

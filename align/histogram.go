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
	"github.com/czcorpus/cnc-gokit/collections"
)

// sizeKey is a single (target length, source length) occurrence, the
// comparable element cnc-gokit/collections.BinTree stores for SizeHistogram.
type sizeKey struct {
	m, n  int
	count int
}

// Compare orders entries lexicographically by (m, n), matching the
// pattern cmd/udex uses for collections.Comparable implementations.
func (k *sizeKey) Compare(other collections.Comparable) int {
	o, ok := other.(*sizeKey)
	if !ok {
		return -1
	}
	if k.m != o.m {
		return k.m - o.m
	}
	return k.n - o.n
}

// SizeHistogram records, for the first training iteration, how many
// sentence pairs have a given (target length, source length). It is
// consumed by the tension optimizer. Iteration order is deterministic
// (lexicographic by (m,n)) courtesy of collections.BinTree, so the
// optimizer's accumulation order -- and therefore its floating-point
// result -- does not depend on Go's randomized map iteration.
type SizeHistogram struct {
	index map[[2]int]*sizeKey
	tree  *collections.BinTree[*sizeKey]
}

// NewSizeHistogram returns an empty histogram.
func NewSizeHistogram() *SizeHistogram {
	tree := new(collections.BinTree[*sizeKey])
	tree.UniqValues = true
	return &SizeHistogram{
		index: make(map[[2]int]*sizeKey),
		tree:  tree,
	}
}

// Add increments the occurrence count for (m, n).
func (h *SizeHistogram) Add(m, n int) {
	key := [2]int{m, n}
	if k, ok := h.index[key]; ok {
		k.count++
		return
	}
	k := &sizeKey{m: m, n: n, count: 1}
	h.index[key] = k
	h.tree.Add(k)
}

// Len returns the number of distinct (m, n) pairs seen.
func (h *SizeHistogram) Len() int {
	return len(h.index)
}

// ForEach calls fn(m, n, count) for every distinct (m, n) pair, in
// deterministic lexicographic order.
func (h *SizeHistogram) ForEach(fn func(m, n, count int)) {
	for _, k := range h.tree.ToSlice() {
		fn(k.m, k.n, k.count)
	}
}

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

package store

import (
	"math"

	"github.com/czcorpus/fast-align/align"
	"github.com/czcorpus/fast-align/vocab"
)

// WriteTable copies every non-floored cell of table into s, the same
// rows align.TTable.Export would write to a flat file. Initialize and
// Commit remain the caller's responsibility, so it can be composed with
// a larger write transaction if a future backend needs one.
func WriteTable(s Store, table *align.TTable, v *vocab.Vocabulary) error {
	var err error
	table.ForEach(func(src, trg int, prob float64) {
		if err != nil {
			return
		}
		err = s.PutCell(v.Lookup(src), v.Lookup(trg), math.Log(prob))
	})
	return err
}

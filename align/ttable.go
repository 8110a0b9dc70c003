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
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/czcorpus/fast-align/vocab"
)

// floorProb is returned for any (s,t) cell with no explicit entry.
const floorProb = 1e-9

// TTable is a sparse two-level translation table: source id -> target id
// -> real. It carries two coexisting row sets, the live probabilities
// read during the E-step and the counts accumulator written during the
// E-step; Normalize/NormalizeVB swap counts into probabilities atomically.
type TTable struct {
	probs  []map[int]float64 // probs[s] may be nil; indexed by source id
	counts []map[int]float64
}

// NewTTable returns an empty table.
func NewTTable() *TTable {
	return &TTable{}
}

func growTo(rows []map[int]float64, s int) []map[int]float64 {
	if s < len(rows) {
		return rows
	}
	grown := make([]map[int]float64, s+1)
	copy(grown, rows)
	return grown
}

// Prob returns the stored probability for (s,t), or the 1e-9 floor if the
// row or the cell is missing.
func (t *TTable) Prob(s, f int) float64 {
	if s < 0 || s >= len(t.probs) || t.probs[s] == nil {
		return floorProb
	}
	if v, ok := t.probs[s][f]; ok {
		return v
	}
	return floorProb
}

// Increment adds x to counts[s][f], creating the row/cell on demand.
func (t *TTable) Increment(s, f int, x float64) {
	t.counts = growTo(t.counts, s)
	if t.counts[s] == nil {
		t.counts[s] = make(map[int]float64)
	}
	t.counts[s][f] += x
}

// Normalize moves counts into probabilities: every row is divided by its
// own total (1 if the total is 0, which leaves an all-zero row in place
// rather than dividing by zero).
func (t *TTable) Normalize() {
	t.probs, t.counts = t.counts, nil
	for _, row := range t.probs {
		if row == nil {
			continue
		}
		var total float64
		for _, v := range row {
			total += v
		}
		if total == 0 {
			total = 1
		}
		for f, v := range row {
			row[f] = v / total
		}
	}
}

// NormalizeVB moves counts into probabilities using a variational-Bayes
// update: each cell v becomes exp(digamma(v+alpha) - digamma(total)) where
// total = sum(v+alpha) over the cells present in the row (alpha counted
// once per present cell, not once per vocabulary symbol -- spec.md §9
// Open Question 2, preserved exactly). alpha must be > 0.
func (t *TTable) NormalizeVB(alpha float64) {
	t.probs, t.counts = t.counts, nil
	for _, row := range t.probs {
		if row == nil {
			continue
		}
		var total float64
		for _, v := range row {
			total += v + alpha
		}
		if total == 0 {
			total = 1
		}
		digammaTotal := Digamma(total)
		for f, v := range row {
			row[f] = math.Exp(Digamma(v+alpha) - digammaTotal)
		}
	}
}

// Export writes one line per explicit cell: "source<TAB>target<TAB>log(p)".
// Row and cell enumeration order is unspecified.
func (t *TTable) Export(path string, v *vocab.Vocabulary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for s, row := range t.probs {
		if row == nil {
			continue
		}
		src := v.Lookup(s)
		for trg, p := range row {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%v\n", src, v.Lookup(trg), math.Log(p)); err != nil {
				return fmt.Errorf("failed to write export file %s: %w", path, err)
			}
		}
	}
	return w.Flush()
}

// ForEach calls fn once per explicit (source, target) cell with its
// current probability. Iteration order is unspecified.
func (t *TTable) ForEach(fn func(source, target int, prob float64)) {
	for s, row := range t.probs {
		if row == nil {
			continue
		}
		for f, p := range row {
			fn(s, f, p)
		}
	}
}

// Load reads the format Export produces (whitespace-triples "e f log_p",
// tolerant of trailing whitespace or an empty last line), interning e and
// f into v and setting T[e][f] = exp(log_p).
func Load(path string, v *vocab.Vocabulary) (*TTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file %s: %w", path, err)
	}
	defer f.Close()

	t := NewTTable()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed table line: %q", line)
		}
		logP, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed log-probability in table line: %q: %w", line, err)
		}
		e := v.Intern(fields[0])
		fv := v.Intern(fields[1])
		t.probs = growTo(t.probs, e)
		if t.probs[e] == nil {
			t.probs[e] = make(map[int]float64)
		}
		t.probs[e][fv] = math.Exp(logP)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading table file %s: %w", path, err)
	}
	return t, nil
}

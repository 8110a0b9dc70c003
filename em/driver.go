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

package em

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/fast-align/align"
	"github.com/czcorpus/fast-align/corpus"
	"github.com/czcorpus/fast-align/normalize"
	"github.com/czcorpus/fast-align/tension"
	"github.com/czcorpus/fast-align/vocab"
)

// nullToken is the conventional interned form of the virtual null source
// word, distinguishable from ordinary tokens only by convention.
const nullToken = "<eps>"

// Driver orchestrates the EM training loop described in spec.md §4.4.
type Driver struct {
	cfg    Config
	vocab  *vocab.Vocabulary
	norm   *normalize.Chain
	filter corpus.SentenceFilter
	table  *align.TTable
	hist   *align.SizeHistogram
	lambda float64
	nullID int

	meanSrclenMultiplier float64
}

// NewDriver validates cfg and builds a Driver ready to Run.
func NewDriver(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	norm, err := normalize.FactoryFromNames(lowercaseNames(cfg.Lowercase))
	if err != nil {
		return nil, err
	}
	v := vocab.New()
	var filter corpus.SentenceFilter = corpus.PassAllFilter{}
	if cfg.MaxLenRatio > 0 {
		filter = corpus.MaxLengthRatioFilter{MaxRatio: cfg.MaxLenRatio}
	}
	d := &Driver{
		cfg:    cfg,
		vocab:  v,
		norm:   norm,
		filter: filter,
		table:  align.NewTTable(),
		hist:   align.NewSizeHistogram(),
		lambda: cfg.DiagonalTension,
	}
	if cfg.UseNull() {
		d.nullID = v.Intern(nullToken)
	}
	return d, nil
}

func lowercaseNames(lowercase bool) []string {
	if lowercase {
		return []string{normalize.TransformerToLower}
	}
	return nil
}

// Vocabulary returns the driver's vocabulary, built up as the corpus is
// read; useful for callers that want to export or inspect the table
// after Run returns.
func (d *Driver) Vocabulary() *vocab.Vocabulary { return d.vocab }

// Table returns the driver's current translation table.
func (d *Driver) Table() *align.TTable { return d.table }

// Run streams the corpus for cfg.Iterations passes. On the final pass it
// writes Viterbi alignment links to viterbiWriter instead of accumulating
// counts. reportFn, if non-nil, is called once after every pass with that
// pass's observational statistics (spec.md §4.4 "Reporting").
func (d *Driver) Run(ctx context.Context, viterbiWriter io.Writer, reportFn func(IterationReport)) error {
	useNull := d.cfg.UseNull()
	probAlignNotNull := 1.0 - d.cfg.ProbAlignNull

	var probs []float64
	for iter := 0; iter < d.cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		final := iter == d.cfg.Iterations-1
		log.Info().Int("iteration", iter+1).Bool("final", final).Msg("starting EM iteration")

		scanner, err := corpus.NewScanner(d.cfg.Input)
		if err != nil {
			return err
		}

		var likelihood, denom, c0, empFeat, toks, totLenRatio float64
		var lineNum int

		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			pair, perr := corpus.ParseLine(line, d.vocab, d.norm)
			if perr != nil {
				scanner.Close()
				return fmt.Errorf("corpus error at line %d: %s: %q", lineNum, perr, line)
			}
			if d.cfg.Reverse {
				pair = pair.Swap()
			}
			if !d.filter.Apply(pair) {
				// Dropped before the E-step, but the Viterbi stream still
				// owes this input line an output line (spec.md §6: one
				// line per input line).
				if final {
					io.WriteString(viterbiWriter, "\n")
				}
				continue
			}

			n, m := len(pair.Src), len(pair.Trg)
			if iter == 0 {
				totLenRatio += float64(m) / float64(n)
				d.hist.Add(m, n)
			}
			denom += float64(m)
			toks += float64(m)

			if cap(probs) < n+1 {
				probs = make([]float64, n+1)
			} else {
				probs = probs[:n+1]
			}

			firstAl := true
			for j := 0; j < m; j++ {
				fj := pair.Trg[j]
				var sum float64
				probAI := 1.0 / float64(n+boolToInt(useNull))

				var az float64
				if d.cfg.FavorDiagonal {
					az = align.Z(j+1, m, n, d.lambda) / probAlignNotNull
				}

				if useNull {
					if d.cfg.FavorDiagonal {
						probAI = d.cfg.ProbAlignNull
					}
					probs[0] = d.table.Prob(d.nullID, fj) * probAI
					sum += probs[0]
				}

				for i := 1; i <= n; i++ {
					if d.cfg.FavorDiagonal {
						probAI = align.UnnormalizedProb(j+1, i, m, n, d.lambda) / az
					}
					probs[i] = d.table.Prob(pair.Src[i-1], fj) * probAI
					sum += probs[i]
				}

				if final {
					maxIndex, maxP := -1, -1.0
					if useNull {
						maxIndex, maxP = 0, probs[0]
					}
					for i := 1; i <= n; i++ {
						if probs[i] > maxP {
							maxIndex, maxP = i, probs[i]
						}
					}
					if maxIndex > 0 {
						if firstAl {
							firstAl = false
						} else {
							io.WriteString(viterbiWriter, " ")
						}
						if d.cfg.Reverse {
							fmt.Fprintf(viterbiWriter, "%d-%d", j, maxIndex-1)
						} else {
							fmt.Fprintf(viterbiWriter, "%d-%d", maxIndex-1, j)
						}
					}
				} else {
					if sum == 0 {
						scanner.Close()
						return fmt.Errorf("numerical degeneracy: zero posterior mass at line %d, target position %d", lineNum, j)
					}
					if useNull {
						count := probs[0] / sum
						c0 += count
						d.table.Increment(d.nullID, fj, count)
					}
					for i := 1; i <= n; i++ {
						p := probs[i] / sum
						d.table.Increment(pair.Src[i-1], fj, p)
						// Bug-compatible with the reference implementation
						// (spec.md §9 Open Question 1): the empirical
						// feature accumulation uses the zero-based loop
						// index j, not the one-based j+1 used above for
						// the position prior.
						empFeat += align.Feature(j, i, m, n) * p
					}
				}
				likelihood += math.Log(sum)
			}
			if final {
				io.WriteString(viterbiWriter, "\n")
			}
		}
		scanErr := scanner.Err()
		scanner.Close()
		if scanErr != nil {
			return fmt.Errorf("failed reading corpus: %w", scanErr)
		}

		if iter == 0 {
			if lineNum == 0 {
				return fmt.Errorf("corpus %s contains no sentence pairs", d.cfg.Input)
			}
			d.meanSrclenMultiplier = totLenRatio / float64(lineNum)
			log.Info().Float64("ratio", d.meanSrclenMultiplier).Msg("expected target length = source length * ratio")
		}

		base2Likelihood := likelihood / math.Log(2)
		if toks > 0 {
			empFeat /= toks
		}

		report := IterationReport{
			Iteration:        iter + 1,
			Final:            final,
			LogLikelihood:    likelihood,
			Log2Likelihood:   base2Likelihood,
			CrossEntropy:     -base2Likelihood / denom,
			Perplexity:       math.Pow(2, -base2Likelihood/denom),
			PosteriorP0:      c0 / toks,
			PosteriorFeature: empFeat,
			SizeCount:        d.hist.Len(),
			DiagonalTension:  d.lambda,
		}
		log.Info().
			Float64("log_likelihood", report.LogLikelihood).
			Float64("perplexity", report.Perplexity).
			Float64("posterior_p0", report.PosteriorP0).
			Float64("tension", report.DiagonalTension).
			Msg("iteration finished")
		if reportFn != nil {
			reportFn(report)
		}

		if !final {
			if d.cfg.FavorDiagonal && d.cfg.OptimizeTension && iter > 0 {
				d.lambda = tension.Optimize(d.hist, empFeat, toks, d.lambda)
			}
			if d.cfg.VariationalBayes {
				d.table.NormalizeVB(d.cfg.Alpha)
			} else {
				d.table.Normalize()
			}
		}
	}

	if d.cfg.ExportPath != "" {
		log.Info().Str("path", d.cfg.ExportPath).Msg("exporting conditional probabilities")
		if err := d.table.Export(d.cfg.ExportPath, d.vocab); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

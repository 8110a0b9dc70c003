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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/fast-align/em"
	"github.com/czcorpus/fast-align/store"
	"github.com/czcorpus/fast-align/store/factory"
)

var (
	version   string
	build     string
	gitCommit string
)

func main() {
	cfg := em.DefaultConfig()
	var storeConfPath string
	var verbose bool

	flag.Usage = func() {
		fmt.Println("\n+-------------------------------------------------------------+")
		fmt.Println("|   fast-align - a reparameterized IBM Model 2 word aligner    |")
		fmt.Printf("|                       version %s                         |\n", version)
		fmt.Println("+-------------------------------------------------------------+")
		fmt.Println("\nUsage:")
		fmt.Println("fastalign -i corpus.fr-en [options] > corpus.align")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}

	flag.StringVar(&cfg.Input, "input", "", "source ||| target parallel corpus")
	flag.StringVar(&cfg.Input, "i", "", "shorthand for -input")
	flag.BoolVar(&cfg.Reverse, "reverse", false, "swap source and target before training")
	flag.BoolVar(&cfg.Reverse, "r", false, "shorthand for -reverse")
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of EM iterations")
	flag.IntVar(&cfg.Iterations, "I", cfg.Iterations, "shorthand for -iterations")
	flag.BoolVar(&cfg.FavorDiagonal, "favor_diagonal", false, "use a diagonal-favoring alignment prior")
	flag.BoolVar(&cfg.FavorDiagonal, "d", false, "shorthand for -favor_diagonal")
	flag.Float64Var(&cfg.ProbAlignNull, "p0", cfg.ProbAlignNull, "fixed probability of aligning to the null word")
	flag.Float64Var(&cfg.ProbAlignNull, "p", cfg.ProbAlignNull, "shorthand for -p0")
	flag.Float64Var(&cfg.DiagonalTension, "diagonal_tension", cfg.DiagonalTension, "starting diagonal tension")
	flag.Float64Var(&cfg.DiagonalTension, "T", cfg.DiagonalTension, "shorthand for -diagonal_tension")
	flag.BoolVar(&cfg.OptimizeTension, "optimize_tension", false, "re-estimate tension after each iteration")
	flag.BoolVar(&cfg.OptimizeTension, "o", false, "shorthand for -optimize_tension")
	flag.BoolVar(&cfg.VariationalBayes, "variational_bayes", false, "use a variational Bayes M-step")
	flag.BoolVar(&cfg.VariationalBayes, "v", false, "shorthand for -variational_bayes")
	flag.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "variational Bayes Dirichlet prior concentration")
	flag.Float64Var(&cfg.Alpha, "a", cfg.Alpha, "shorthand for -alpha")
	flag.BoolVar(&cfg.NoNullWord, "no_null_word", false, "disable the null alignment word")
	flag.BoolVar(&cfg.NoNullWord, "N", false, "shorthand for -no_null_word")
	flag.StringVar(&cfg.ExportPath, "conditional_probabilities", "", "write the final table to this path")
	flag.StringVar(&cfg.ExportPath, "c", "", "shorthand for -conditional_probabilities")
	flag.BoolVar(&cfg.Lowercase, "lowercase", false, "lowercase tokens before training")
	flag.Float64Var(&cfg.MaxLenRatio, "max_len_ratio", 0, "drop sentence pairs whose length ratio exceeds this (0 disables)")
	flag.StringVar(&storeConfPath, "store_conf", "", "JSON store.Conf for writing the final table to a database")
	flag.BoolVar(&verbose, "verbose", false, "enable debug-level logging")
	versionFlag := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("fastalign %s\nbuild date: %s\nlast commit: %s\n", version, build, gitCommit)
		return
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	var storeConf store.Conf
	if storeConfPath != "" {
		var err error
		storeConf, err = store.LoadConf(storeConfPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to load store configuration")
			os.Exit(1)
		}
	}

	driver, err := em.NewDriver(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize driver")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		log.Warn().Msg("received interrupt, stopping after the current iteration")
		cancel()
	}()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	t0 := time.Now()
	runErr := driver.Run(ctx, out, func(report em.IterationReport) {
		if b, err := report.ToJSON(); err == nil {
			log.Debug().RawJSON("report", b).Msg("iteration report")
		}
	})
	out.Flush()
	if runErr != nil {
		log.Error().Err(runErr).Msg("training failed")
		os.Exit(1)
	}
	log.Info().Dur("elapsed", time.Since(t0)).Msg("training finished")

	if storeConf.IsConfigured() {
		sink, err := factory.New(storeConf)
		if err != nil {
			log.Error().Err(err).Msg("failed to create store sink")
			os.Exit(1)
		}
		if err := sink.Initialize(); err != nil {
			log.Error().Err(err).Msg("failed to initialize store sink")
			os.Exit(1)
		}
		if err := store.WriteTable(sink, driver.Table(), driver.Vocabulary()); err != nil {
			log.Error().Err(err).Msg("failed to write table to store sink")
			os.Exit(1)
		}
		if err := sink.Commit(); err != nil {
			log.Error().Err(err).Msg("failed to commit store sink")
			os.Exit(1)
		}
		if err := sink.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing store sink")
		}
	}
}

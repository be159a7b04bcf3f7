// Copyright 2025 go-netsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/ajroetker/go-netsort/internal/cases"
	"github.com/ajroetker/go-netsort/internal/workerpool"
	"github.com/ajroetker/go-netsort/netsort/sort"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxFailuresPerVariant bounds what is kept per broken variant.
const maxFailuresPerVariant = 5

type verifyConfig struct {
	maxSize       int
	randomPerSize int
	maxRandomSize int
	workers       int
}

type failure struct {
	variant string
	input   []int32
	got     []int32
}

func newVerifyCmd(a *app) *cobra.Command {
	var cfg verifyConfig

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every variant against exhaustive and random inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("workers") {
				workers, ok, err := lookupEnvUint(envWorkers)
				if err != nil {
					return err
				}
				if ok {
					cfg.workers = int(workers)
				}
			}
			return a.verify(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.maxSize, "max-size", 6, "Check every weak ordering of up to this many elements")
	flags.IntVar(&cfg.randomPerSize, "random", 200, "Random inputs per size")
	flags.IntVar(&cfg.maxRandomSize, "max-random-size", 64, "Largest random input size")
	flags.IntVar(&cfg.workers, "workers", 0, "Parallel workers (default $"+envWorkers+" or GOMAXPROCS)")
	return cmd
}

func (a *app) verify(w io.Writer, cfg verifyConfig) error {
	switch {
	case cfg.maxSize < 0 || cfg.maxSize > 9:
		return errors.Newf("--max-size must be in [0, 9], got %d", cfg.maxSize)
	case cfg.randomPerSize < 0:
		return errors.Newf("--random must not be negative, got %d", cfg.randomPerSize)
	case cfg.maxRandomSize < 0:
		return errors.Newf("--max-random-size must not be negative, got %d", cfg.maxRandomSize)
	}

	pool := workerpool.New(cfg.workers)
	defer pool.Close()

	variants := sort.Variants[int32]()
	a.logger.Info("verifying",
		zap.Int("variants", len(variants)),
		zap.Int("workers", pool.NumWorkers()),
		zap.Int("max_size", cfg.maxSize))

	failures := verifyVariants(pool, variants, cfg, a.seed)
	if len(failures) > 0 {
		for _, f := range failures {
			a.logger.Error("wrong result",
				zap.String("variant", f.variant),
				zap.Int32s("input", f.input),
				zap.Int32s("got", f.got))
		}
		broken := lo.Uniq(lo.Map(failures, func(f failure, _ int) string { return f.variant }))
		return errors.Newf("%d variants failed: %v", len(broken), broken)
	}

	fmt.Fprintf(w, "verified %d variants\n", len(variants))
	return nil
}

// verifyVariants runs each variant against every weak ordering of up to
// cfg.maxSize elements and against random inputs, one variant per job.
func verifyVariants(pool *workerpool.Pool, variants []sort.Variant[int32], cfg verifyConfig, seed uint64) []failure {
	var exhaustive []cases.Case
	for n := 1; n <= cfg.maxSize; n++ {
		exhaustive = append(exhaustive, cases.SortCases(n)...)
	}

	perVariant := make([][]failure, len(variants))
	pool.ForEach(len(variants), func(i int) {
		v := variants[i]
		check := func(input, want []int32) {
			got := slices.Clone(input)
			v.Sort(got)
			if !slices.Equal(got, want) && len(perVariant[i]) < maxFailuresPerVariant {
				perVariant[i] = append(perVariant[i], failure{variant: v.Name(), input: input, got: got})
			}
		}

		for _, c := range exhaustive {
			check(c.Input, c.Expected)
		}

		rng := rand.New(rand.NewPCG(seed, uint64(i)))
		for n := 0; n <= cfg.maxRandomSize; n++ {
			for r := range cfg.randomPerSize {
				var input []int32
				if r%2 == 0 {
					input = cases.Random(rng, n)
				} else {
					input = cases.Few(rng, n, 3)
				}
				want := slices.Clone(input)
				slices.Sort(want)
				check(input, want)
			}
		}
	})

	return lo.Flatten(perVariant)
}

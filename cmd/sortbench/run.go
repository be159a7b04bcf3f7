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
	"math"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-netsort/internal/cases"
	"github.com/ajroetker/go-netsort/netsort/network"
	"github.com/ajroetker/go-netsort/netsort/sort"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// errUnsorted is returned when a variant produces unsorted output.
var errUnsorted = errors.New("output is not sorted")

type runConfig struct {
	engines    []string
	policies   []string
	patterns   []string
	min        int
	max        int
	multiplier int
	reps       int
}

type result struct {
	variant string
	pattern cases.Pattern
	size    int
	best    time.Duration
}

func newRunCmd(a *app) *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time sort variants over a range of input sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.OutOrStdout(), cfg)
		},
	}

	cfg.bindFlags(cmd.Flags())
	return cmd
}

func (c *runConfig) bindFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&c.engines, "engines", []string{all}, "Engines to run (merge, quick or all)")
	flags.StringSliceVar(&c.policies, "policies", []string{all}, "Policies to run (see 'sortbench list') or all")
	flags.StringSliceVar(&c.patterns, "patterns", []string{all}, "Input patterns (random, sorted, nearly or all)")
	flags.IntVar(&c.min, "min", 1<<10, "Smallest input size")
	flags.IntVar(&c.max, "max", 1<<20, "Largest input size")
	flags.IntVar(&c.multiplier, "multiplier", 2, "Factor between consecutive sizes")
	flags.IntVar(&c.reps, "reps", 3, "Runs per measurement; the fastest is reported")
}

// sizes returns min, min*multiplier, ... up to max.
func (c runConfig) sizes() ([]int, error) {
	switch {
	case c.min < 1:
		return nil, errors.Newf("--min must be positive, got %d", c.min)
	case c.max < c.min:
		return nil, errors.Newf("--max (%d) is smaller than --min (%d)", c.max, c.min)
	case c.multiplier < 2:
		return nil, errors.Newf("--multiplier must be at least 2, got %d", c.multiplier)
	case c.reps < 1:
		return nil, errors.Newf("--reps must be positive, got %d", c.reps)
	}

	var out []int
	for n := c.min; ; n *= c.multiplier {
		out = append(out, n)
		// Stop before n*multiplier passes max or overflows.
		if n > c.max/c.multiplier {
			break
		}
	}
	return out, nil
}

func (a *app) run(w io.Writer, cfg runConfig) error {
	variants, err := selectVariants(cfg.engines, cfg.policies)
	if err != nil {
		return err
	}
	patterns, err := selectPatterns(cfg.patterns)
	if err != nil {
		return err
	}
	sizes, err := cfg.sizes()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(a.seed, 0))
	var results []result
	for _, n := range sizes {
		for _, p := range patterns {
			ref := p.Generate(rng, n)
			for _, v := range variants {
				best, err := timeSort(v.Sort, ref, cfg.reps)
				if err != nil {
					return errors.Wrapf(err, "%s on %s input of %d", v.Name(), p, n)
				}
				a.logger.Debug("measured",
					zap.String("variant", v.Name()),
					zap.Stringer("pattern", p),
					zap.Int("size", n),
					zap.Duration("best", best))
				results = append(results, result{variant: v.Name(), pattern: p, size: n, best: best})
			}
		}
	}

	a.logger.Info("benchmark complete", zap.Int("measurements", len(results)))
	return writeResults(w, results)
}

// timeSort returns the fastest of reps runs of fn over copies of ref.
func timeSort(fn sort.Func[int32], ref []int32, reps int) (time.Duration, error) {
	data := make([]int32, len(ref))
	best := time.Duration(math.MaxInt64)
	for range reps {
		copy(data, ref)
		start := time.Now()
		fn(data)
		elapsed := time.Since(start)

		if !network.IsSorted(data) {
			return 0, errUnsorted
		}
		best = min(best, elapsed)
	}
	return best, nil
}

func writeResults(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "variant\tpattern\tsize\tns/op\tns/elem\t")
	for _, r := range results {
		ns := r.best.Nanoseconds()
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\t\n", r.variant, r.pattern, r.size, ns, float64(ns)/float64(r.size))
	}
	return errors.Wrap(tw.Flush(), "writing results")
}

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
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand shares.
type app struct {
	verbose bool
	seed    uint64
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark and verify hybrid network sorts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Human-readable debug logging")
	flags.Uint64Var(&a.seed, "seed", defaultSeed, "Seed for generated inputs (default $"+envSeed+")")

	root.AddCommand(newListCmd(a), newRunCmd(a), newVerifyCmd(a))
	return root
}

// setup applies environment defaults and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("seed") {
		seed, ok, err := lookupEnvUint(envSeed)
		if err != nil {
			return err
		}
		if ok {
			a.seed = seed
		}
	}

	var err error
	if a.verbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "building logger")
	}

	a.logger.Debug("starting", append(cpuFields(), zap.Uint64("seed", a.seed))...)
	return nil
}

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

	"github.com/ajroetker/go-netsort/netsort/sort"
	"github.com/spf13/cobra"
)

func newListCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the name of every sort variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, v := range sort.Variants[int32]() {
				fmt.Fprintln(cmd.OutOrStdout(), v.Name())
			}
			return nil
		},
	}
}

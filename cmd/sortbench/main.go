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

// Command sortbench benchmarks and verifies the hybrid sort variants.
//
// Usage:
//
//	sortbench list
//	sortbench run --engines quick --policies classic,3to8 --patterns random --max 65536
//	sortbench verify --max-size 7 --workers 8
//
// The seed defaults to $NETSORT_SEED and the verify worker count to
// $NETSORT_WORKERS when the corresponding flags are not given.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

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

// Command variantgen generates the per-policy entry points of netsort/sort.
//
// Usage:
//
//	variantgen -output z_variants.go
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/variantgen -output z_variants.go
//
// For every engine and every policy it emits a function
// <Engine><Suffix>[T](data []T) that instantiates the engine with the
// policy type, plus the variants table used by Variants and Lookup.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "z_variants.go", "Output file")
	packageOut = flag.String("pkg", "sort", "Output package name")
)

func main() {
	flag.Parse()

	src, err := Generate(*packageOut, *outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

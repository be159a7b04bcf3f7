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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	src, err := Generate("sort", "z_variants.go")
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Copyright 2025 go-netsort Authors\n"))
	assert.Contains(t, out, "\n\n// Code generated by variantgen. DO NOT EDIT.\n\npackage sort\n")
	assert.Equal(t, len(Engines)*len(Policies)+1, strings.Count(out, "\nfunc "))
	assert.Contains(t, out, "func QuickSortPowerOf2[T constraints.Signed](data []T) {\n\tQuickSort(data, policy.NetworksPowerOf2[T]{})\n}")
	assert.Contains(t, out, "{Engine: EngineMerge, Policy: policy.NameVarSort5, Sort: MergeSortVarSort5[T]},")
}

// The checked-in file must match what go generate would write.
func TestGeneratedFileUpToDate(t *testing.T) {
	want, err := Generate("sort", "z_variants.go")
	require.NoError(t, err)

	got, err := os.ReadFile("../../netsort/sort/z_variants.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate ./netsort/sort")
}

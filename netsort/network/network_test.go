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

package network

import (
	"fmt"
	"slices"
	"testing"

	"github.com/ajroetker/go-netsort/internal/cases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verify(t *testing.T, tcs []cases.Case, fn func([]int32)) {
	t.Helper()
	for _, tc := range tcs {
		out := slices.Clone(tc.Input)
		fn(out)
		require.Equal(t, tc.Expected, out, "input %v", tc.Input)
	}
}

func TestFixedNetworks(t *testing.T) {
	networks := []struct {
		n  int
		fn func([]int32)
	}{
		{1, Sort1[int32]},
		{3, Sort3[int32]},
		{4, Sort4[int32]},
		{5, Sort5[int32]},
		{6, Sort6[int32]},
		{7, Sort7[int32]},
		{8, Sort8[int32]},
	}
	for _, tt := range networks {
		t.Run(fmt.Sprintf("Sort%d", tt.n), func(t *testing.T) {
			verify(t, cases.SortCases(tt.n), tt.fn)
		})
	}
}

// Elements past the network's size must not be touched.
func TestFixedNetworksStayInBounds(t *testing.T) {
	data := []int64{5, 4, 3, 2, 1, -7, -8}
	Sort5(data)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, -7, -8}, data)
}

func TestCompareSwap(t *testing.T) {
	data := []int8{2, 1}
	CompareSwap(data, 0, 1)
	assert.Equal(t, []int8{1, 2}, data)
	CompareSwap(data, 0, 1)
	assert.Equal(t, []int8{1, 2}, data)
}

func TestVariableNetworks(t *testing.T) {
	networks := []struct {
		bound int
		fn    func([]int32)
	}{
		{3, VarSort3[int32]},
		{4, VarSort4[int32]},
		{5, VarSort5[int32]},
	}
	for _, tt := range networks {
		t.Run(fmt.Sprintf("VarSort%d", tt.bound), func(t *testing.T) {
			verify(t, cases.VariableSortCases(tt.bound), tt.fn)
		})
	}
}

func TestVarSortExample(t *testing.T) {
	buf := []int32{4, 9, 7, 8, 6}
	VarSort4(buf)
	assert.Equal(t, []int32{4, 6, 7, 8, 9}, buf)

	// Only the declared payload is sorted.
	buf = []int32{2, 9, 1, 0}
	VarSort5(buf)
	assert.Equal(t, []int32{2, 1, 9, 0}, buf)

	buf = []int32{0}
	VarSort3(buf)
	assert.Equal(t, []int32{0}, buf)
}

func TestVarSortBadPrefix(t *testing.T) {
	assert.Panics(t, func() { VarSort3([]int32{4, 1, 2, 3, 4}) })
	assert.Panics(t, func() { VarSort5([]int32{3, 1, 2}) })
	assert.Panics(t, func() { VarSort4([]int32{-1, 1}) })
	assert.Panics(t, func() { VarSort4([]int32{}) })
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int32{}))
	assert.True(t, IsSorted([]int32{1}))
	assert.True(t, IsSorted([]int32{1, 1, 2}))
	assert.False(t, IsSorted([]int32{2, 1}))
}

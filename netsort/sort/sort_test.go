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

package sort

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ajroetker/go-netsort/internal/cases"
	"github.com/ajroetker/go-netsort/netsort/policy"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSort runs fn on a copy of input and checks that the result is the
// sorted permutation of input.
func checkSort(t *testing.T, name string, fn Func[int32], input []int32) {
	t.Helper()
	want := slices.Clone(input)
	slices.Sort(want)

	got := slices.Clone(input)
	fn(got)
	require.Equal(t, want, got, "%s(%v)", name, input)
}

func TestScenarios(t *testing.T) {
	data := []int32{5, 3, 4, 1, 2}
	MergeSortClassic(data)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, data)

	data = []int32{}
	QuickSortClassic(data)
	assert.Empty(t, data)

	var nilData []int32
	QuickSortClassic(nilData)
	MergeSortVarSort3(nilData)
	assert.Nil(t, nilData)

	data = []int32{1}
	QuickSortClassic(data)
	assert.Equal(t, []int32{1}, data)

	data = []int32{2, 2, 1}
	MergeSort3(data)
	assert.Equal(t, []int32{1, 2, 2}, data)

	data = []int32{8, 7, 6, 5, 4, 3, 2, 1, 0, -1}
	QuickSortPowerOf2(data)
	assert.Equal(t, []int32{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8}, data)
}

func TestVariants(t *testing.T) {
	vs := Variants[int32]()
	require.Len(t, vs, 2*len(policy.Names()))

	seen := map[string]bool{}
	for i, v := range vs {
		assert.False(t, seen[v.Name()], "duplicate variant %s", v.Name())
		seen[v.Name()] = true
		assert.Equal(t, Engines()[i/len(policy.Names())], v.Engine)
		assert.Equal(t, policy.Names()[i%len(policy.Names())], v.Policy)
	}
	assert.True(t, seen["quick/3to8"])
	assert.True(t, seen["merge/var5"])
}

func TestLookup(t *testing.T) {
	fn, err := Lookup[int32](EngineQuick, policy.NameNetworksPowerOf2)
	require.NoError(t, err)
	data := []int32{3, 1, 2, 0, 9, 8, 7, 6, 5, 4}
	fn(data)
	assert.True(t, slices.IsSorted(data))

	_, err = Lookup[int32]("heap", policy.NameClassic)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = Lookup[int32](EngineMerge, "9to12")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

// Every variant at and around every delegation threshold.
func TestThresholdSizes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, v := range Variants[int32]() {
		for n := 0; n <= 17; n++ {
			checkSort(t, v.Name(), v.Sort, cases.Random(rng, n))
			checkSort(t, v.Name(), v.Sort, cases.Few(rng, n, 2))
			checkSort(t, v.Name(), v.Sort, slices.Repeat([]int32{7}, n))

			reversed := cases.Sorted(n)
			slices.Reverse(reversed)
			checkSort(t, v.Name(), v.Sort, reversed)
		}
	}
}

// Every weak ordering of up to six items, under every variant.
func TestExhaustiveSmall(t *testing.T) {
	for _, v := range Variants[int32]() {
		t.Run(v.Name(), func(t *testing.T) {
			for n := 1; n <= 6; n++ {
				for _, tc := range cases.SortCases(n) {
					got := slices.Clone(tc.Input)
					v.Sort(got)
					require.Equal(t, tc.Expected, got, "input %v", tc.Input)
				}
			}
		})
	}
}

func TestRandomLarge(t *testing.T) {
	rng := rand.New(rand.NewPCG(12345, 0))
	for _, v := range Variants[int32]() {
		for _, n := range []int{10, 100, 1000, 10000} {
			for _, p := range cases.Patterns() {
				checkSort(t, fmt.Sprintf("%s/%s", v.Name(), p), v.Sort, p.Generate(rng, n))
			}
			checkSort(t, v.Name()+"/few", v.Sort, cases.Few(rng, n, 3))
		}
	}
}

func TestIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for _, v := range Variants[int32]() {
		data := cases.Random(rng, 500)
		v.Sort(data)
		once := slices.Clone(data)
		v.Sort(data)
		assert.Equal(t, once, data, v.Name())
	}
}

func TestOtherElementTypes(t *testing.T) {
	small := []int8{-128, 127, 0, -1, 1, 5, -5, 3, 3}
	MergeSort3To8(small)
	assert.Equal(t, []int8{-128, -5, -1, 0, 1, 3, 3, 5, 127}, small)

	small = []int8{-128, 127, 0, -1, 1, 5, -5, 3, 3}
	QuickSortVarSort5(small)
	assert.Equal(t, []int8{-128, -5, -1, 0, 1, 3, 3, 5, 127}, small)

	big := []int64{1 << 40, -(1 << 40), 0, 1<<63 - 1, -1 << 63}
	QuickSortOdd(big)
	assert.Equal(t, []int64{-1 << 63, -(1 << 40), 0, 1 << 40, 1<<63 - 1}, big)

	type score int
	scores := []score{3, 1, 2}
	MergeSortEven(scores)
	assert.Equal(t, []score{1, 2, 3}, scores)
}

// recordingPolicy wraps a policy and records how the engine consults it.
type recordingPolicy struct {
	t         *testing.T
	inner     policy.Policy[int32]
	asked     []int
	delegated []int
}

func (r *recordingPolicy) ShouldDelegate(size int) bool {
	r.asked = append(r.asked, size)
	return r.inner.ShouldDelegate(size)
}

func (r *recordingPolicy) Delegate(data []int32) {
	require.True(r.t, r.inner.ShouldDelegate(len(data)), "delegated unaccepted size %d", len(data))
	r.delegated = append(r.delegated, len(data))
	r.inner.Delegate(data)
}

func TestEnginesConsultPolicy(t *testing.T) {
	engines := map[string]func([]int32, *recordingPolicy){
		EngineMerge: func(d []int32, p *recordingPolicy) { MergeSort(d, p) },
		EngineQuick: func(d []int32, p *recordingPolicy) { QuickSort(d, p) },
	}
	rng := rand.New(rand.NewPCG(3, 4))

	for name, run := range engines {
		for _, inner := range []policy.Policy[int32]{
			policy.Current3To8[int32]{},
			policy.NetworksPowerOf2[int32]{},
			policy.VarSort4[int32]{},
		} {
			p := &recordingPolicy{t: t, inner: inner}
			data := cases.Random(rng, 300)
			run(data, p)
			require.True(t, slices.IsSorted(data), name)

			assert.Equal(t, 300, p.asked[0], name)
			assert.NotEmpty(t, p.delegated, name)
			for _, size := range p.delegated {
				if _, isVar := inner.(policy.VarSort4[int32]); !isVar {
					assert.NotEqual(t, 2, size, "%s delegated size 2", name)
				}
			}
		}
	}
}

// The top-level range of 10 is not a power of two, so the first step must
// partition.
func TestQuickSortPowerOf2PartitionsFirst(t *testing.T) {
	p := &recordingPolicy{t: t, inner: policy.NetworksPowerOf2[int32]{}}
	data := []int32{8, 7, 6, 5, 4, 3, 2, 1, 0, -1}
	QuickSort(data, p)
	assert.Equal(t, []int32{-1, 0, 1, 2, 3, 4, 5, 6, 7, 8}, data)
	require.NotEmpty(t, p.asked)
	assert.Equal(t, 10, p.asked[0])
	assert.Greater(t, len(p.asked), 1)
}

// A delegated range is not subdivided any further.
func TestDelegatedRangeNotRecursed(t *testing.T) {
	p := &recordingPolicy{t: t, inner: policy.Current3To8[int32]{}}
	data := []int32{8, 1, 7, 2, 6, 3, 5, 4}
	MergeSort(data, p)
	assert.Equal(t, []int{8}, p.asked)
	assert.Equal(t, []int{8}, p.delegated)

	p = &recordingPolicy{t: t, inner: policy.Classic[int32]{}}
	data = []int32{4, 3, 2, 1}
	MergeSort(data, p)
	// 4 splits into two ranges of 2, each sorted inline.
	assert.Equal(t, []int{4, 2, 2}, p.asked)
	assert.Empty(t, p.delegated)
}

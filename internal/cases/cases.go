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

// Package cases generates inputs for verifying and benchmarking the sorts:
// exhaustive tie-aware permutations for small sizes, and the random, sorted
// and nearly-sorted patterns used by the benchmarks.
package cases

import "slices"

// Case is an input together with its sorted form.
type Case struct {
	Input    []int32
	Expected []int32
}

// SortCases returns every arrangement of n items under every ordering
// relation between them. Between two consecutive sorted items the relation
// is either "==" or "<", giving 2^(n-1) multisets; each one contributes all of
// its distinct permutations.
//
// For n=3 that is 13 cases, starting with [1 1 1] and ending with [3 2 1].
func SortCases(n int) []Case {
	if n <= 0 {
		return []Case{{Input: []int32{}, Expected: []int32{}}}
	}

	var out []Case
	for i := 0; i < 1<<(n-1); i++ {
		relation := []int32{1}
		for mask, j := i, 0; j < n-1; mask, j = mask/2, j+1 {
			last := relation[len(relation)-1]
			if mask%2 == 0 {
				relation = append(relation, last)
			} else {
				relation = append(relation, last+1)
			}
		}

		perm := slices.Clone(relation)
		for {
			out = append(out, Case{Input: slices.Clone(perm), Expected: relation})
			if !nextPermutation(perm) {
				break
			}
		}
	}
	return out
}

// VariableSortCases returns SortCases(n) for n in [1, maxItems], with n prepended
// to both input and expected output, matching the length-prefixed layout of
// the variable networks.
func VariableSortCases(maxItems int) []Case {
	var out []Case
	for n := 1; n <= maxItems; n++ {
		for _, c := range SortCases(n) {
			out = append(out, Case{
				Input:    append([]int32{int32(n)}, c.Input...),
				Expected: append([]int32{int32(n)}, c.Expected...),
			})
		}
	}
	return out
}

// nextPermutation rearranges data into the lexicographically next
// permutation and reports whether one existed. Equal elements are not
// distinguished, so a multiset yields each distinct arrangement once.
func nextPermutation(data []int32) bool {
	i := len(data) - 2
	for i >= 0 && data[i] >= data[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(data) - 1
	for data[j] <= data[i] {
		j--
	}
	data[i], data[j] = data[j], data[i]
	slices.Reverse(data[i+1:])
	return true
}

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

// Package sort provides hybrid merge sort and quick sort engines that hand
// small ranges to sorting networks.
//
// # Algorithm
//
// Both engines are the textbook recursive algorithms with one change: before
// splitting a range they ask a policy.Policy whether the range should be
// delegated to a network from netsort/network instead. Which sizes are
// delegated, and to which network, is the only thing that differs between
// variants; the recursive skeleton is shared.
//
//   - Merge sort splits at the midpoint (the lower half takes the extra
//     element) and merges through two temporary buffers.
//   - Quick sort picks a median-of-three pivot and splits with Hoare's
//     two-pointer partition. The smaller side is recursed into and the
//     larger side is looped on, so stack depth stays logarithmic.
//
// Ranges of two elements are never delegated; both engines sort them with a
// single compare-and-swap.
//
// # Variants
//
// Eleven policies times two engines give 22 entry points, generated into
// z_variants.go:
//
//	MergeSortClassic, MergeSort3To8, MergeSort3, MergeSort3To4,
//	MergeSort3To5, MergeSortEven, MergeSortOdd, MergeSortPowerOf2,
//	MergeSortVarSort3, MergeSortVarSort4, MergeSortVarSort5
//
// and the same for QuickSort. Variants and Lookup expose them by name.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-netsort/netsort/sort"
//
//	func Process(data []int32) {
//	    sort.QuickSort3To8(data)
//	}
//
// Sorting is not stable and not safe for concurrent use on overlapping
// slices.
package sort

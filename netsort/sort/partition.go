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

import "golang.org/x/exp/constraints"

// PartitionFunc splits data[low:high+1] around data[pivotIndex] and returns
// a split index s in [low, high-1] such that every element of data[low:s+1]
// is <= every element of data[s+1:high+1].
type PartitionFunc[T constraints.Signed] func(data []T, low, high, pivotIndex int) int

// HoarePartition is Hoare's two-pointer partition. Elements equal to the
// pivot stop both pointers and get swapped across, so runs of duplicates
// split evenly. The pivot does not necessarily end up at the returned index.
func HoarePartition[T constraints.Signed](data []T, low, high, pivotIndex int) int {
	pivot := data[pivotIndex]
	i := low - 1
	j := high + 1

	for {
		i++
		for data[i] < pivot {
			i++
		}

		j--
		for data[j] > pivot {
			j--
		}

		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}

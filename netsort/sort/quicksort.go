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
	"github.com/ajroetker/go-netsort/netsort/network"
	"github.com/ajroetker/go-netsort/netsort/policy"
	"golang.org/x/exp/constraints"
)

// QuickSort sorts data in place with quicksort using MedianOfThree pivots
// and HoarePartition, handing every range p.ShouldDelegate accepts to
// p.Delegate.
func QuickSort[T constraints.Signed, P policy.Policy[T]](data []T, p P) {
	QuickSortWith(data, p, MedianOfThree[T], HoarePartition[T])
}

// QuickSortWith is QuickSort with an explicit pivot strategy and partition
// scheme.
func QuickSortWith[T constraints.Signed, P policy.Policy[T]](data []T, p P, pivot PivotFunc[T], partition PartitionFunc[T]) {
	if len(data) <= 1 {
		return
	}
	q := quickSorter[T, P]{policy: p, pivot: pivot, partition: partition}
	q.sort(data, 0, len(data)-1)
}

type quickSorter[T constraints.Signed, P policy.Policy[T]] struct {
	policy    P
	pivot     PivotFunc[T]
	partition PartitionFunc[T]
}

// sort sorts data[low:high+1]. It recurses into the smaller side of each
// split and loops on the larger one.
func (q *quickSorter[T, P]) sort(data []T, low, high int) {
	for {
		size := high - low + 1

		if q.policy.ShouldDelegate(size) {
			q.policy.Delegate(data[low : high+1])
			return
		}

		if size == 2 {
			network.CompareSwap(data, low, high)
			return
		}

		if low >= high {
			return
		}

		pivotIndex := q.pivot(data, low, high)
		split := q.partition(data, low, high, pivotIndex)

		if split-low < high-split {
			q.sort(data, low, split)
			low = split + 1
		} else {
			q.sort(data, split+1, high)
			high = split
		}
	}
}

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

// MergeSort sorts data in place with top-down merge sort, handing every
// range p.ShouldDelegate accepts to p.Delegate.
func MergeSort[T constraints.Signed, P policy.Policy[T]](data []T, p P) {
	if len(data) <= 1 {
		return
	}
	mergeSortImpl(data, 0, len(data)-1, p)
}

// mergeSortImpl sorts data[left:right+1].
func mergeSortImpl[T constraints.Signed, P policy.Policy[T]](data []T, left, right int, p P) {
	size := right - left + 1

	if p.ShouldDelegate(size) {
		p.Delegate(data[left : right+1])
		return
	}

	if size == 2 {
		network.CompareSwap(data, left, right)
		return
	}

	if left < right {
		mid := left + (right-left)/2
		mergeSortImpl(data, left, mid, p)
		mergeSortImpl(data, mid+1, right, p)
		Merge(data, left, mid, right)
	}
}

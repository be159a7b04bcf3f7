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
	"slices"

	"golang.org/x/exp/constraints"
)

// Merge combines the sorted ranges data[left:mid+1] and data[mid+1:right+1]
// into one sorted range. Both halves are copied out first; on ties the left
// half wins.
func Merge[T constraints.Signed](data []T, left, mid, right int) {
	l := slices.Clone(data[left : mid+1])
	r := slices.Clone(data[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if l[i] <= r[j] {
			data[k] = l[i]
			i++
		} else {
			data[k] = r[j]
			j++
		}
		k++
	}

	// At most one of these copies anything.
	k += copy(data[k:], l[i:])
	copy(data[k:], r[j:])
}

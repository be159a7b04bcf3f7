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
	"math/rand/v2"

	"github.com/ajroetker/go-netsort/netsort/network"
	"golang.org/x/exp/constraints"
)

// PivotFunc picks the pivot of data[low:high+1], low < high, and returns its
// index. The index must lie in [low, high-1] so that HoarePartition always
// makes progress.
type PivotFunc[T constraints.Signed] func(data []T, low, high int) int

// MedianOfThree orders data[low], data[mid] and data[high] in place and
// returns mid, where mid = low + (high-low)/2.
func MedianOfThree[T constraints.Signed](data []T, low, high int) int {
	mid := low + (high-low)/2
	network.CompareSwap(data, low, mid)
	network.CompareSwap(data, mid, high)
	network.CompareSwap(data, low, mid)
	return mid
}

// PivotFirst returns low.
func PivotFirst[T constraints.Signed](data []T, low, high int) int {
	return low
}

// PivotLast uses the last element as pivot. It is moved to low, since a
// pivot at high can leave HoarePartition with an empty right side.
func PivotLast[T constraints.Signed](data []T, low, high int) int {
	data[low], data[high] = data[high], data[low]
	return low
}

// RandomPivot returns a PivotFunc drawing uniformly from [low, high-1] with
// rng. Sharing rng between goroutines is the caller's responsibility.
func RandomPivot[T constraints.Signed](rng *rand.Rand) PivotFunc[T] {
	return func(data []T, low, high int) int {
		return low + rng.IntN(high-low)
	}
}

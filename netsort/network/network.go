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

import "golang.org/x/exp/constraints"

// MaxFixedSize is the largest size with a fixed network.
const MaxFixedSize = 8

// CompareSwap orders data[i] and data[j] so that data[i] <= data[j].
func CompareSwap[T constraints.Signed](data []T, i, j int) {
	if data[i] > data[j] {
		data[i], data[j] = data[j], data[i]
	}
}

// Sort1 sorts a single element, which is always sorted.
func Sort1[T constraints.Signed](data []T) {}

// Sort3 sorts data[0:3].
func Sort3[T constraints.Signed](data []T) {
	_ = data[2]
	CompareSwap(data, 1, 2)
	CompareSwap(data, 0, 2)
	CompareSwap(data, 0, 1)
}

// Sort4 sorts data[0:4].
func Sort4[T constraints.Signed](data []T) {
	_ = data[3]
	CompareSwap(data, 0, 1)
	CompareSwap(data, 2, 3)
	CompareSwap(data, 0, 2)
	CompareSwap(data, 1, 3)
	CompareSwap(data, 1, 2)
}

// Sort5 sorts data[0:5].
func Sort5[T constraints.Signed](data []T) {
	_ = data[4]
	CompareSwap(data, 0, 3)
	CompareSwap(data, 1, 4)
	CompareSwap(data, 0, 2)
	CompareSwap(data, 1, 3)
	CompareSwap(data, 0, 1)
	CompareSwap(data, 2, 4)
	CompareSwap(data, 1, 2)
	CompareSwap(data, 3, 4)
	CompareSwap(data, 2, 3)
}

// Sort6 sorts data[0:6].
func Sort6[T constraints.Signed](data []T) {
	_ = data[5]
	CompareSwap(data, 0, 5)
	CompareSwap(data, 1, 3)
	CompareSwap(data, 2, 4)
	CompareSwap(data, 1, 2)
	CompareSwap(data, 3, 4)
	CompareSwap(data, 0, 3)
	CompareSwap(data, 2, 5)
	CompareSwap(data, 0, 1)
	CompareSwap(data, 2, 3)
	CompareSwap(data, 4, 5)
	CompareSwap(data, 1, 2)
	CompareSwap(data, 3, 4)
}

// Sort7 sorts data[0:7].
func Sort7[T constraints.Signed](data []T) {
	_ = data[6]
	CompareSwap(data, 0, 6)
	CompareSwap(data, 2, 3)
	CompareSwap(data, 4, 5)
	CompareSwap(data, 0, 2)
	CompareSwap(data, 1, 4)
	CompareSwap(data, 3, 6)
	CompareSwap(data, 0, 1)
	CompareSwap(data, 2, 5)
	CompareSwap(data, 3, 4)
	CompareSwap(data, 1, 2)
	CompareSwap(data, 4, 6)
	CompareSwap(data, 2, 3)
	CompareSwap(data, 4, 5)
	CompareSwap(data, 1, 2)
	CompareSwap(data, 3, 4)
	CompareSwap(data, 5, 6)
}

// Sort8 sorts data[0:8].
func Sort8[T constraints.Signed](data []T) {
	_ = data[7]
	CompareSwap(data, 0, 2)
	CompareSwap(data, 1, 3)
	CompareSwap(data, 4, 6)
	CompareSwap(data, 5, 7)
	CompareSwap(data, 0, 4)
	CompareSwap(data, 1, 5)
	CompareSwap(data, 2, 6)
	CompareSwap(data, 3, 7)
	CompareSwap(data, 0, 1)
	CompareSwap(data, 2, 3)
	CompareSwap(data, 4, 5)
	CompareSwap(data, 6, 7)
	CompareSwap(data, 2, 4)
	CompareSwap(data, 3, 5)
	CompareSwap(data, 1, 4)
	CompareSwap(data, 3, 6)
	CompareSwap(data, 1, 2)
	CompareSwap(data, 3, 4)
	CompareSwap(data, 5, 6)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Signed](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

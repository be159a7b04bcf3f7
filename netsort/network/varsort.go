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

	"golang.org/x/exp/constraints"
)

// VarSort3 sorts the length-prefixed payload buf[1:buf[0]+1], buf[0] <= 3.
// buf[0] is left unchanged.
func VarSort3[T constraints.Signed](buf []T) {
	varSort(buf, 3)
}

// VarSort4 sorts the length-prefixed payload buf[1:buf[0]+1], buf[0] <= 4.
// buf[0] is left unchanged.
func VarSort4[T constraints.Signed](buf []T) {
	varSort(buf, 4)
}

// VarSort5 sorts the length-prefixed payload buf[1:buf[0]+1], buf[0] <= 5.
// buf[0] is left unchanged.
func VarSort5[T constraints.Signed](buf []T) {
	varSort(buf, 5)
}

// varSort dispatches on the embedded length. A prefix that does not
// describe the buffer is a caller bug and panics.
func varSort[T constraints.Signed](buf []T, bound int) {
	if len(buf) == 0 {
		panic("network: empty length-prefixed buffer")
	}
	n := int(buf[0])
	if n < 0 || n > bound || n >= len(buf) {
		panic(fmt.Sprintf("network: VarSort%d called with length prefix %d on a buffer of %d elements",
			bound, n, len(buf)))
	}

	payload := buf[1 : n+1]
	switch n {
	case 0, 1:
	case 2:
		CompareSwap(payload, 0, 1)
	case 3:
		Sort3(payload)
	case 4:
		Sort4(payload)
	case 5:
		Sort5(payload)
	}
}

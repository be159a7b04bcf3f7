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

// Package network provides the small fixed-size sorting routines that the
// hybrid engines in netsort/sort delegate to.
//
// Two families are available:
//
//   - Fixed networks Sort3 through Sort8 sort exactly N elements with an
//     optimal number of compare-and-swap steps (3, 5, 9, 12, 16 and 19
//     comparators). Sort1 is the single-element case and does nothing.
//     There is no Sort2; a two element range is sorted with a single
//     CompareSwap.
//   - Variable networks VarSort3, VarSort4 and VarSort5 accept a
//     length-prefixed buffer: buf[0] holds n and buf[1:n+1] is the payload.
//     One routine covers every payload size up to its bound.
//
// # Example Usage
//
//	data := []int32{5, 1, 4, 2}
//	network.Sort4(data) // [1 2 4 5]
//
//	buf := []int32{3, 9, 7, 8, 0}
//	network.VarSort4(buf) // [3 7 8 9 0]: only buf[1:4] is touched
//
// All routines are generic over signed integer types and operate in place.
package network

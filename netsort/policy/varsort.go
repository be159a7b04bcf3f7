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

package policy

import (
	"github.com/ajroetker/go-netsort/netsort/network"
	"golang.org/x/exp/constraints"
)

// VarSort3 delegates every range of up to three elements to
// network.VarSort3.
type VarSort3[T constraints.Signed] struct{}

func (VarSort3[T]) ShouldDelegate(size int) bool { return size <= 3 }

func (VarSort3[T]) Delegate(data []T) { delegatePrefixed(data, network.VarSort3[T]) }

// VarSort4 delegates every range of up to four elements to
// network.VarSort4.
type VarSort4[T constraints.Signed] struct{}

func (VarSort4[T]) ShouldDelegate(size int) bool { return size <= 4 }

func (VarSort4[T]) Delegate(data []T) { delegatePrefixed(data, network.VarSort4[T]) }

// VarSort5 delegates every range of up to five elements to
// network.VarSort5.
type VarSort5[T constraints.Signed] struct{}

func (VarSort5[T]) ShouldDelegate(size int) bool { return size <= 5 }

func (VarSort5[T]) Delegate(data []T) { delegatePrefixed(data, network.VarSort5[T]) }

// delegatePrefixed runs a length-prefixed network on data. The network owns
// its buffer layout, so data is copied into a scratch buffer of len(data)+1
// elements with the length in slot 0, and copied back afterwards.
func delegatePrefixed[T constraints.Signed](data []T, sortPrefixed func([]T)) {
	scratch := make([]T, len(data)+1)
	scratch[0] = T(len(data))
	copy(scratch[1:], data)
	sortPrefixed(scratch)
	copy(data, scratch[1:])
}

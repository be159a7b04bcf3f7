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

// Package policy defines when a hybrid sort stops subdividing and which
// sorting network it hands the remaining range to.
//
// A Policy is consulted by both engines in netsort/sort at every recursive
// step, before any further split. When ShouldDelegate(size) reports true the
// engine calls Delegate on exactly that range and does not recurse into it.
//
// Every policy is a zero-size value, so the engines can be instantiated per
// policy type without any dispatch cost:
//
//	sort.MergeSort(data, policy.Current3To8[int32]{})
//
// No policy delegates a range of two elements; the engines sort those with a
// single compare-and-swap.
package policy

import (
	"github.com/ajroetker/go-netsort/netsort/network"
	"golang.org/x/exp/constraints"
)

// Policy decides whether a range of a given size is delegated to a sorting
// network, and performs the delegation.
type Policy[T constraints.Signed] interface {
	// ShouldDelegate reports whether a range of size elements is sorted by
	// Delegate instead of being subdivided.
	ShouldDelegate(size int) bool

	// Delegate sorts data in place. It is only called with a len(data) for
	// which ShouldDelegate returned true.
	Delegate(data []T)
}

// Classic never delegates: ranges of one element (or none) are the base case.
type Classic[T constraints.Signed] struct{}

func (Classic[T]) ShouldDelegate(size int) bool { return size <= 1 }

func (Classic[T]) Delegate([]T) {}

// Current3To8 uses the fixed networks for every size from 3 to 8.
type Current3To8[T constraints.Signed] struct{}

func (Current3To8[T]) ShouldDelegate(size int) bool { return size <= 8 && size != 2 }

func (Current3To8[T]) Delegate(data []T) {
	switch len(data) {
	case 1:
		network.Sort1(data)
	case 3:
		network.Sort3(data)
	case 4:
		network.Sort4(data)
	case 5:
		network.Sort5(data)
	case 6:
		network.Sort6(data)
	case 7:
		network.Sort7(data)
	case 8:
		network.Sort8(data)
	}
}

// Network3 only delegates ranges of exactly three elements.
type Network3[T constraints.Signed] struct{}

func (Network3[T]) ShouldDelegate(size int) bool { return size == 3 }

func (Network3[T]) Delegate(data []T) {
	if len(data) == 3 {
		network.Sort3(data)
	}
}

// Networks3To4 uses the fixed networks for sizes 3 and 4.
type Networks3To4[T constraints.Signed] struct{}

func (Networks3To4[T]) ShouldDelegate(size int) bool { return size <= 4 && size != 2 }

func (Networks3To4[T]) Delegate(data []T) {
	switch len(data) {
	case 1:
		network.Sort1(data)
	case 3:
		network.Sort3(data)
	case 4:
		network.Sort4(data)
	}
}

// Networks3To5 uses the fixed networks for sizes 3, 4 and 5.
type Networks3To5[T constraints.Signed] struct{}

func (Networks3To5[T]) ShouldDelegate(size int) bool { return size <= 5 && size != 2 }

func (Networks3To5[T]) Delegate(data []T) {
	switch len(data) {
	case 1:
		network.Sort1(data)
	case 3:
		network.Sort3(data)
	case 4:
		network.Sort4(data)
	case 5:
		network.Sort5(data)
	}
}

// NetworksEven uses the fixed networks for the even sizes 4, 6 and 8.
type NetworksEven[T constraints.Signed] struct{}

func (NetworksEven[T]) ShouldDelegate(size int) bool {
	return size == 4 || size == 6 || size == 8
}

func (NetworksEven[T]) Delegate(data []T) {
	switch len(data) {
	case 4:
		network.Sort4(data)
	case 6:
		network.Sort6(data)
	case 8:
		network.Sort8(data)
	}
}

// NetworksOdd uses the fixed networks for the odd sizes 3, 5 and 7.
type NetworksOdd[T constraints.Signed] struct{}

func (NetworksOdd[T]) ShouldDelegate(size int) bool { return size < 8 && size%2 != 0 }

func (NetworksOdd[T]) Delegate(data []T) {
	switch len(data) {
	case 1:
		network.Sort1(data)
	case 3:
		network.Sort3(data)
	case 5:
		network.Sort5(data)
	case 7:
		network.Sort7(data)
	}
}

// NetworksPowerOf2 uses the fixed networks for sizes 4 and 8.
type NetworksPowerOf2[T constraints.Signed] struct{}

func (NetworksPowerOf2[T]) ShouldDelegate(size int) bool { return size == 4 || size == 8 }

func (NetworksPowerOf2[T]) Delegate(data []T) {
	switch len(data) {
	case 4:
		network.Sort4(data)
	case 8:
		network.Sort8(data)
	}
}

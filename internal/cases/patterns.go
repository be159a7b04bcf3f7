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

package cases

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Bounds of the values produced by Random.
const (
	RandomMin = -1_000_000
	RandomMax = 1_000_000
)

// ErrUnknownPattern is returned by ParsePattern for names it does not know.
var ErrUnknownPattern = errors.New("unknown input pattern")

// Pattern selects an input generator.
type Pattern int

const (
	// PatternRandom is uniformly random values in [RandomMin, RandomMax].
	PatternRandom Pattern = iota

	// PatternSorted is 0, 1, ..., n-1.
	PatternSorted

	// PatternNearlySorted is PatternSorted with n*5/100 random swaps.
	PatternNearlySorted
)

var patternNames = []string{"random", "sorted", "nearly"}

// String returns the short name accepted by ParsePattern.
func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return "unknown"
	}
	return patternNames[p]
}

// Patterns returns every pattern in declaration order.
func Patterns() []Pattern {
	return []Pattern{PatternRandom, PatternSorted, PatternNearlySorted}
}

// ParsePattern maps a short name ("random", "sorted", "nearly") to a Pattern.
func ParsePattern(name string) (Pattern, error) {
	idx := lo.IndexOf(patternNames, name)
	if idx < 0 {
		return 0, errors.Wrapf(ErrUnknownPattern, "%q (want one of %v)", name, patternNames)
	}
	return Pattern(idx), nil
}

// Generate returns n values following p.
func (p Pattern) Generate(rng *rand.Rand, n int) []int32 {
	switch p {
	case PatternSorted:
		return Sorted(n)
	case PatternNearlySorted:
		return NearlySorted(rng, n)
	default:
		return Random(rng, n)
	}
}

// Random returns n values drawn uniformly from [RandomMin, RandomMax].
func Random(rng *rand.Rand, n int) []int32 {
	return lo.Times(n, func(int) int32 {
		return int32(rng.IntN(RandomMax-RandomMin+1) + RandomMin)
	})
}

// Sorted returns 0, 1, ..., n-1.
func Sorted(n int) []int32 {
	return lo.Map(lo.Range(n), func(v, _ int) int32 {
		return int32(v)
	})
}

// NearlySorted returns Sorted(n) after n*5/100 swaps of random positions.
func NearlySorted(rng *rand.Rand, n int) []int32 {
	data := Sorted(n)
	swaps := n * 5 / 100
	for range swaps {
		i, j := rng.IntN(n), rng.IntN(n)
		data[i], data[j] = data[j], data[i]
	}
	return data
}

// Few returns n values drawn from only k distinct values, for duplicate-heavy
// inputs.
func Few(rng *rand.Rand, n, k int) []int32 {
	return lo.Times(n, func(int) int32 {
		return int32(rng.IntN(k))
	})
}

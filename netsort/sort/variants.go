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
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

//go:generate go run ../../cmd/variantgen -output z_variants.go

// Engine names.
const (
	EngineMerge = "merge"
	EngineQuick = "quick"
)

// ErrUnknownVariant is returned by Lookup when no variant matches.
var ErrUnknownVariant = errors.New("unknown sort variant")

// Func is the signature shared by all entry points.
type Func[T constraints.Signed] func(data []T)

// Variant is one engine/policy combination.
type Variant[T constraints.Signed] struct {
	Engine string
	Policy string
	Sort   Func[T]
}

// Name returns "engine/policy", e.g. "quick/3to8".
func (v Variant[T]) Name() string {
	return v.Engine + "/" + v.Policy
}

// Engines returns the engine names.
func Engines() []string {
	return []string{EngineMerge, EngineQuick}
}

// Variants returns every entry point, merge sort variants first, policies in
// policy.Names order.
func Variants[T constraints.Signed]() []Variant[T] {
	return variants[T]()
}

// Lookup returns the entry point for an engine name and a policy short name.
func Lookup[T constraints.Signed](engine, policyName string) (Func[T], error) {
	v, ok := lo.Find(variants[T](), func(v Variant[T]) bool {
		return v.Engine == engine && v.Policy == policyName
	})
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "engine %q, policy %q", engine, policyName)
	}
	return v.Sort, nil
}

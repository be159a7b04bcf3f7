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

package main

import (
	"github.com/ajroetker/go-netsort/internal/cases"
	"github.com/ajroetker/go-netsort/netsort/policy"
	"github.com/ajroetker/go-netsort/netsort/sort"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const all = "all"

// selectVariants resolves engine and policy name lists, either of which may
// be "all", into variants.
func selectVariants(engines, policies []string) ([]sort.Variant[int32], error) {
	engines = expandAll(engines, sort.Engines())
	policies = expandAll(policies, policy.Names())
	if len(engines) == 0 || len(policies) == 0 {
		return nil, errors.New("at least one engine and one policy are required")
	}

	var out []sort.Variant[int32]
	for _, e := range engines {
		for _, p := range policies {
			fn, err := sort.Lookup[int32](e, p)
			if err != nil {
				return nil, err
			}
			out = append(out, sort.Variant[int32]{Engine: e, Policy: p, Sort: fn})
		}
	}
	return out, nil
}

func selectPatterns(names []string) ([]cases.Pattern, error) {
	names = expandAll(names, lo.Map(cases.Patterns(), func(p cases.Pattern, _ int) string {
		return p.String()
	}))

	out := make([]cases.Pattern, 0, len(names))
	for _, name := range names {
		p, err := cases.ParsePattern(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func expandAll(names, every []string) []string {
	if lo.Contains(names, all) {
		return every
	}
	return lo.Uniq(names)
}

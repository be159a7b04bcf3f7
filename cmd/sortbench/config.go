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
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Environment variables consulted when the matching flag is not set.
const (
	envSeed    = "NETSORT_SEED"
	envWorkers = "NETSORT_WORKERS"
)

const defaultSeed = 1

// lookupEnvUint parses the environment variable name as an unsigned integer.
// ok is false when the variable is unset or empty.
func lookupEnvUint(name string) (v uint64, ok bool, err error) {
	val := os.Getenv(name)
	if val == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, errors.Wrapf(err, "parsing $%s", name)
	}
	return v, true, nil
}

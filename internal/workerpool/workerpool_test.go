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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestForEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ForEach(n, func(i int) {
		results[i] = i * 2
	})

	for i := range n {
		assert.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestForEachVisitsOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var calls atomic.Int64
	for range 50 {
		pool.ForEach(37, func(int) { calls.Add(1) })
	}
	assert.Equal(t, int64(50*37), calls.Load())
}

func TestForEachEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ForEach(0, func(int) { called = true })
	assert.False(t, called)
}

func TestForEachAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	pool.ForEach(10, func(i int) { sum += i })
	assert.Equal(t, 45, sum)
}

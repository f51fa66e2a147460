// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// TestParallelFor_CoversEveryRow checks that the ranges partition [0, n):
// every row is visited exactly once, as band processing requires.
func TestParallelFor_CoversEveryRow(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 360, 361, 1080} {
		visits := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			if start >= end {
				t.Errorf("n=%d: empty range [%d, %d)", n, start, end)
			}
			for i := start; i < end; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("n=%d: row %d visited %d times, want 1", n, i, v)
			}
		}
	}
}

func TestParallelFor_AtMostNumWorkersRanges(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var mu sync.Mutex
	ranges := 0
	pool.ParallelFor(100, func(start, end int) {
		mu.Lock()
		ranges++
		mu.Unlock()
	})
	if ranges > 3 {
		t.Errorf("ParallelFor used %d ranges, want <= 3", ranges)
	}
}

func TestParallelFor_Zero(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("ParallelFor(0) called fn")
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ n, batch int }{{100, 10}, {101, 10}, {7, 3}, {5, 0}, {30, 100}} {
		visits := make([]int32, tc.n)
		pool.ParallelForAtomicBatched(tc.n, tc.batch, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("n=%d batch=%d: item %d visited %d times, want 1", tc.n, tc.batch, i, v)
			}
		}
	}
}

func TestClose_Idempotent(t *testing.T) {
	pool := New(2)
	pool.Close()
	pool.Close()

	// A closed pool still does the work, on the caller's goroutine.
	sum := 0
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			sum += i
		}
	})
	if sum != 45 {
		t.Errorf("sum after Close = %d, want 45", sum)
	}
}

func TestPool_Reuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for frame := range 50 {
		pool.ParallelFor(64, func(start, end int) {
			total.Add(int64(end - start))
		})
		if got := total.Load(); got != int64(64*(frame+1)) {
			t.Fatalf("after frame %d: total %d, want %d", frame, got, 64*(frame+1))
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	rows := make([]int, 1080)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(len(rows), func(start, end int) {
			for r := start; r < end; r++ {
				rows[r]++
			}
		})
	}
}

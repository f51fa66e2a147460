// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent pool of goroutines for splitting
// frame work into bands. The pool is created once per capture session and
// reused for every frame, so no goroutines are spawned on the frame path.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for frame := range frames {
//	    pool.ParallelFor(frame.UV.Height, func(start, end int) {
//	        nv12.MirrorPlanes(frame.Band(start, end), out.Band(start, end))
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through one channel.
type Pool struct {
	workers   int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// task is one range of work plus the barrier of the call that queued it.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers.
// If workers <= 0, GOMAXPROCS workers are started.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers after queued work finishes. Calls after the first
// are no-ops. A closed pool runs every later call on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) for each on the pool. It returns when every range is
// done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	size := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize through
// an atomic counter, so workers that finish early take more batches. Use it
// when items cost different amounts, such as frames of a file decoded on
// demand.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.workers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

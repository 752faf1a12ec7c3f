// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schedule provides the process-wide worker pool the multiplication
// engine (mat.Dense.Times) dispatches onto: a divide-and-conquer split of a
// row range into leaf slices, each pushed onto a bounded queue of
// persistent workers, with the caller blocking until every leaf returns.
//
// Adapted from the persistent-worker-pool pattern in go-highway's
// hwy/contrib/workerpool package (spawn-once workers reading a buffered job
// channel, a sync.WaitGroup barrier per call) and restructured as a
// restartable, process-wide singleton with recursive range-halving
// dispatch, per the scheduler this module's spec calls for.
package schedule

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Diagnostics is the minimal collaborator the scheduler reports informational
// and warning conditions to (double-start, and similar). It mirrors
// mat.Diagnostics so callers can pass the same implementation to both
// without this package depending on package mat.
type Diagnostics interface {
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...interface{}) {}
func (nopDiagnostics) Infof(string, ...interface{}) {}

// defaultMinSliceSize is the built-in smallest row range the divide-and-
// conquer split will hand to a single worker.
const defaultMinSliceSize = 64

var minSliceSize int64 = defaultMinSliceSize

// MinSliceSize reports the smallest row range the divide-and-conquer split
// will hand to a single worker; ranges at or below this size run directly
// instead of being split further.
func MinSliceSize() int {
	return int(atomic.LoadInt64(&minSliceSize))
}

// SetMinSliceSize overrides the row-tile threshold Do's recursive split
// stops at. n <= 0 restores the built-in default.
func SetMinSliceSize(n int) {
	if n <= 0 {
		n = defaultMinSliceSize
	}
	atomic.StoreInt64(&minSliceSize, int64(n))
}

// job is one leaf unit of work submitted to the pool.
type job struct {
	lo, hi int
	fn     func(lo, hi int)
	wg     *sync.WaitGroup
}

// pool is the process-wide scheduler singleton.
type pool struct {
	mu      sync.Mutex
	started bool
	work    chan job
	quit    chan struct{}
	workers int
	diag    Diagnostics
}

var global = &pool{diag: nopDiagnostics{}}

// SetDiagnostics installs the Diagnostics collaborator used for the
// scheduler's informational and warning messages.
func SetDiagnostics(d Diagnostics) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if d == nil {
		d = nopDiagnostics{}
	}
	global.diag = d
}

// Parallelize starts the process-wide pool with the given number of
// workers (runtime.GOMAXPROCS(0) if workers <= 0). Starting a pool that is
// already running is a no-op and emits an informational diagnostic,
// matching the source's idempotent re-start rule.
func Parallelize(workers int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.started {
		global.diag.Infof("schedule: parallelize called while already running")
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	global.workers = workers
	global.work = make(chan job, workers*4)
	global.quit = make(chan struct{})
	for i := 0; i < workers; i++ {
		go global.runWorker()
	}
	global.started = true
}

func (p *pool) runWorker() {
	for {
		select {
		case j, ok := <-p.work:
			if !ok {
				return
			}
			j.fn(j.lo, j.hi)
			j.wg.Done()
		case <-p.quit:
			return
		}
	}
}

// Unparallelize drains in-flight work and stops accepting new submissions.
// After it returns, Do runs every call synchronously on the calling
// goroutine until Parallelize or Reparallelize is called again.
// Unparallelize on a pool that is not running is a no-op.
func Unparallelize() {
	global.mu.Lock()
	defer global.mu.Unlock()
	if !global.started {
		return
	}
	close(global.work)
	global.started = false
}

// Reparallelize restarts the pool with the given worker count, stopping it
// first if it is already running. Unlike Parallelize, calling it on a
// running pool is not a no-op: the running pool is replaced by a new one.
func Reparallelize(workers int) {
	global.mu.Lock()
	if global.started {
		close(global.work)
		global.started = false
	}
	global.mu.Unlock()
	Parallelize(workers)
}

// Running reports whether the process-wide pool is currently started.
func Running() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.started
}

// Do executes fn over the disjoint row ranges that divide [0, n) by
// recursively halving until a slice is at or below MinSliceSize() (or one
// row, whichever is larger), submitting each leaf to the pool and blocking
// until every leaf has run. If the pool is not running, fn is invoked
// synchronously with the whole range instead.
func Do(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	global.mu.Lock()
	started := global.started
	global.mu.Unlock()
	if !started {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	submit(0, n, fn, &wg)
	wg.Wait()
}

// submit recursively halves [lo, hi) until each leaf is at or below
// MinSliceSize(), pushing every leaf onto the pool's job queue. Leaves share
// no mutable state with each other: each is responsible for a disjoint
// sub-range, so no locking is required once jobs are queued.
func submit(lo, hi int, fn func(lo, hi int), wg *sync.WaitGroup) {
	if hi-lo <= MinSliceSize() || hi-lo <= 1 {
		wg.Add(1)
		global.work <- job{lo: lo, hi: hi, fn: fn, wg: wg}
		return
	}
	mid := lo + (hi-lo)/2
	submit(lo, mid, fn, wg)
	submit(mid, hi, fn, wg)
}

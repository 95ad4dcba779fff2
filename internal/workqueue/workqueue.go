/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package workqueue runs submitted tasks with a bounded number of them
// executing at once, used to parallelize magic-number discovery (C5)
// across squares. It mirrors the API of original_source/src/par.h's
// WorkQ: submit() for a single closure and for_range() for N
// independently-indexed closures, each returning a future-like handle
// with Wait()/Get(). It keeps no worker pool and no task queue: every
// task gets its own goroutine, which waits on the semaphore before
// running, so tasks do not necessarily start in submission order. Concurrency is
// bounded with golang.org/x/sync/semaphore rather than a raw channel
// of size W, so the same primitive could later gate other resources
// (e.g. a shared log) without a second bookkeeping structure.
package workqueue

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Future is a single-use handle over the result of a task submitted to
// a Queue. Wait blocks until the task completes; Get blocks and then
// returns the result (repeated calls to Get return the same value).
type Future[T any] struct {
	done   chan struct{}
	result T
}

// Wait blocks until the task backing f has completed.
func (f *Future[T]) Wait() {
	<-f.done
}

// Get blocks until the task backing f has completed and returns its
// result.
func (f *Future[T]) Get() T {
	<-f.done
	return f.result
}

// Queue bounds how many submitted tasks execute at once. It holds no
// worker goroutines and no list of pending tasks: each task runs on its
// own goroutine once it acquires the semaphore, and waiting tasks are
// not guaranteed to start in submission order. Tasks run to completion;
// there is no cancellation and no priority among waiting tasks.
type Queue struct {
	sem *semaphore.Weighted
}

// New returns a Queue sized to workers concurrently-executing tasks.
// workers <= 0 defaults to runtime.NumCPU(), mirroring the original's
// with_all_threads() factory.
func New(workers int) *Queue {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Queue{sem: semaphore.NewWeighted(int64(workers))}
}

// Submit enqueues fn and returns a Future for its result. fn runs on a
// goroutine acquired from the queue's worker budget as soon as one is
// free; submission never blocks the caller.
func Submit[T any](q *Queue, fn func() T) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	go func() {
		_ = q.sem.Acquire(context.Background(), 1)
		defer q.sem.Release(1)
		fut.result = fn()
		close(fut.done)
	}()
	return fut
}

// ForRange submits n closures fn(0), fn(1), ..., fn(n-1) and returns
// their futures in index order. Execution order across workers is not
// otherwise constrained.
func ForRange[T any](q *Queue, n int, fn func(i int) T) []*Future[T] {
	futures := make([]*Future[T], n)
	for i := 0; i < n; i++ {
		i := i
		futures[i] = Submit(q, func() T { return fn(i) })
	}
	return futures
}

// WaitAll blocks until every future in futures has completed and
// returns their results in the same order.
func WaitAll[T any](futures []*Future[T]) []T {
	results := make([]T, len(futures))
	for i, f := range futures {
		results[i] = f.Get()
	}
	return results
}

// Package workerpool provides the bounded executor shared by the location
// tracker and the reward engine. A fixed set of workers drains a bounded
// task queue, so submission never spawns additional goroutines no matter
// how many users are being tracked at once.
package workerpool

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Pool executes submitted tasks on a fixed number of workers.
type Pool struct {
	logger    *zap.Logger
	tasks     chan func()
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New starts a pool with the given worker count and queue depth.
func New(workers, queueDepth int, logger *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueDepth < 0 {
		queueDepth = 0
	}
	p := &Pool{
		logger: logger,
		tasks:  make(chan func(), queueDepth),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	logger.Info("Worker pool started",
		zap.Int("workers", workers),
		zap.Int("queue_depth", queueDepth))
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit enqueues a task, blocking while the queue is full. Callers must not
// submit after Close; producers are shut down before the pool is.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Close stops accepting tasks and waits for in-flight ones to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
	p.logger.Info("Worker pool drained")
}

// Future is the handle returned to callers of asynchronous operations.
// It resolves exactly once, with either a value or an error.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Submit runs fn on the pool and returns a future for its result. Blocking
// on the future is permitted but should be the exception: a task that waits
// on another future while holding a worker can deadlock an exhausted pool,
// so only code outside the pool (handlers, the poller) awaits.
func Submit[T any](p *Pool, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	p.Submit(func() {
		f.val, f.err = fn()
		close(f.done)
	})
	return f
}

// Resolved returns an already-completed future. Used by synchronous fast
// paths that can answer without scheduling work.
func Resolved[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: val, err: err}
	close(f.done)
	return f
}

// Wait blocks until the future resolves or the context is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done exposes the completion channel for select loops.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

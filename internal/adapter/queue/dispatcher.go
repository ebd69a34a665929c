package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adframe/internal/metrics"
)

type task struct {
	name string
	fn   func(ctx context.Context) error
}

// Dispatcher runs tracking work off the request path on a fixed number of
// workers. Tasks that do not fit in the buffer are dropped, never blocked on.
type Dispatcher struct {
	tasks   chan task
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher starts workers goroutines draining a queue of queueSize
// tasks. Each task runs under its own timeout.
func NewDispatcher(workers, queueSize int, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		tasks:   make(chan task, queueSize),
		timeout: timeout,
		logger:  logger,
	}
	d.wg.Add(workers)
	for range workers {
		go d.work()
	}
	return d
}

// Go enqueues fn. It returns false when the queue is full or the dispatcher
// is closed.
func (d *Dispatcher) Go(name string, fn func(ctx context.Context) error) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.TasksDropped.WithLabelValues(name).Inc()
		return false
	}
	select {
	case d.tasks <- task{name: name, fn: fn}:
		metrics.TaskQueueDepth.Inc()
		return true
	default:
		metrics.TasksDropped.WithLabelValues(name).Inc()
		d.logger.Warn("task queue is full, dropping task", slog.String("task", name))
		return false
	}
}

// Close stops accepting tasks and waits for queued ones to finish or for
// ctx to expire, whichever comes first.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.tasks)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for t := range d.tasks {
		metrics.TaskQueueDepth.Dec()
		d.run(t)
	}
}

func (d *Dispatcher) run(t task) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("task panicked", slog.String("task", t.name), slog.Any("panic", r))
		}
	}()
	if err := t.fn(ctx); err != nil {
		d.logger.Warn("task failed", slog.String("task", t.name), slog.Any("error", err))
	}
}

// Package worker runs operations on a dedicated goroutine and hands the
// results back to the caller's goroutine.
//
// Data moves with the operation: it is built on the caller's goroutine,
// owned by the worker while queued or running, and owned by the caller again
// once Update delivers it. Nothing in an operation needs its own locking.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Op is a unit of work. Run executes on the worker goroutine. A non-nil
// error drops the op: it is logged and never delivered.
type Op interface {
	Run(ctx context.Context) error
}

// Stats counts what happened to submitted ops.
type Stats struct {
	Submitted, Completed, Dropped int64
}

// Thread owns one worker goroutine. Ops run one at a time in submission
// order.
type Thread[T Op] struct {
	name    string
	log     *slog.Logger
	handler func(T)

	mu     sync.Mutex
	input  []T
	output []T
	closed bool

	// Only touched by the goroutine calling Update.
	handle []T

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	submitted atomic.Int64
	completed atomic.Int64
	dropped   atomic.Int64
}

// NewThread starts the worker goroutine. handler receives every completed op
// on the goroutine that calls Update.
func NewThread[T Op](name string, handler func(T), log *slog.Logger) *Thread[T] {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &Thread[T]{
		name:    name,
		log:     log.With("worker", name),
		handler: handler,
		wake:    make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go t.loop()
	return t
}

// Run queues op. The caller must not touch op again until it comes back
// through the handler. Ops submitted after Close are discarded.
func (t *Thread[T]) Run(op T) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.input = append(t.input, op)
	t.mu.Unlock()
	t.submitted.Add(1)

	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Update delivers finished ops to the handler. It never blocks on the
// worker and answers how many ops were delivered.
func (t *Thread[T]) Update() int {
	clear(t.handle)
	t.handle = t.handle[:0]

	t.mu.Lock()
	t.handle, t.output = t.output, t.handle
	t.mu.Unlock()

	for _, op := range t.handle {
		if t.handler != nil {
			t.handler(op)
		}
	}
	return len(t.handle)
}

// Stats answers a snapshot of the op counters.
func (t *Thread[T]) Stats() Stats {
	return Stats{
		Submitted: t.submitted.Load(),
		Completed: t.completed.Load(),
		Dropped:   t.dropped.Load(),
	}
}

// Close stops the worker and waits for it. An op already running finishes;
// queued ops are abandoned.
func (t *Thread[T]) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		<-t.done
		return
	}
	t.closed = true
	t.mu.Unlock()

	t.cancel()
	<-t.done
}

func (t *Thread[T]) loop() {
	defer close(t.done)

	var pending []T
	for {
		t.mu.Lock()
		pending, t.input = t.input, pending[:0]
		t.mu.Unlock()

		for i, op := range pending {
			if t.ctx.Err() != nil {
				return
			}
			pending[i] = *new(T)

			if err := t.runOne(op); err != nil {
				t.dropped.Add(1)
				t.log.Warn("dropping op", "err", err)
				continue
			}
			t.completed.Add(1)

			t.mu.Lock()
			t.output = append(t.output, op)
			t.mu.Unlock()
		}

		select {
		case <-t.ctx.Done():
			return
		case <-t.wake:
		}
	}
}

// runOne turns a panic inside the op into an error so one bad op cannot
// take the worker down.
func (t *Thread[T]) runOne(op T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return op.Run(t.ctx)
}

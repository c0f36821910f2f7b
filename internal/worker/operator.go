package worker

import "log/slog"

// opPtr is satisfied by *T when *T implements Op.
type opPtr[T any] interface {
	*T
	Op
}

// Operator wraps a Thread and recycles ops, so the buffers an op carries
// are reused from one run to the next instead of reallocated.
type Operator[T any, P opPtr[T]] struct {
	thread  *Thread[P]
	handler func(P)
	retired []P
}

// NewOperator starts the worker. handler sees each finished op on the
// goroutine calling Update; after it returns the op is retired for reuse.
func NewOperator[T any, P opPtr[T]](name string, handler func(P), log *slog.Logger) *Operator[T, P] {
	o := &Operator[T, P]{handler: handler}
	o.thread = NewThread(name, o.finished, log)
	return o
}

// Run takes a retired op (or a new one), lets start fill it in, and submits it.
func (o *Operator[T, P]) Run(start func(P)) {
	var op P
	if n := len(o.retired); n > 0 {
		op = o.retired[n-1]
		o.retired[n-1] = nil
		o.retired = o.retired[:n-1]
	} else {
		op = P(new(T))
	}
	if start != nil {
		start(op)
	}
	o.thread.Run(op)
}

// Update delivers finished ops; see Thread.Update.
func (o *Operator[T, P]) Update() int { return o.thread.Update() }

// Stats answers the underlying thread's counters.
func (o *Operator[T, P]) Stats() Stats { return o.thread.Stats() }

// Close stops the worker.
func (o *Operator[T, P]) Close() { o.thread.Close() }

func (o *Operator[T, P]) finished(op P) {
	if o.handler != nil {
		o.handler(op)
	}
	o.retired = append(o.retired, op)
}

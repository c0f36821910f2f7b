package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type testOp struct {
	id    int
	vals  []int
	gate  chan struct{}
	fail  error
	panic string
}

func (o *testOp) Run(ctx context.Context) error {
	if o.gate != nil {
		<-o.gate
	}
	if o.panic != "" {
		panic(o.panic)
	}
	if o.fail != nil {
		return o.fail
	}
	for i := range o.vals {
		o.vals[i] = o.id
	}
	return nil
}

// drain polls Update until want ops arrived or the deadline passes.
func drain(t *testing.T, th *Thread[*testOp], got *[]*testOp, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		th.Update()
		return len(*got) >= want
	}, 2*time.Second, time.Millisecond)
}

func TestThreadDeliversInOrder(t *testing.T) {
	var got []*testOp
	th := NewThread("test", func(op *testOp) { got = append(got, op) }, quiet)
	defer th.Close()

	for i := range 5 {
		th.Run(&testOp{id: i, vals: make([]int, 8)})
	}
	drain(t, th, &got, 5)

	for i, op := range got {
		assert.Equal(t, i, op.id)
	}
	assert.Equal(t, Stats{Submitted: 5, Completed: 5}, th.Stats())
}

func TestThreadDoesNotInterleaveOps(t *testing.T) {
	var got []*testOp
	th := NewThread("test", func(op *testOp) { got = append(got, op) }, quiet)
	defer th.Close()

	gate := make(chan struct{})
	first := &testOp{id: 1, vals: make([]int, 5000), gate: gate}
	second := &testOp{id: 2, vals: make([]int, 5000)}
	th.Run(first)
	th.Run(second)

	// Nothing is delivered while the first op is held.
	assert.Zero(t, th.Update())
	close(gate)
	drain(t, th, &got, 2)

	for _, op := range got {
		for _, v := range op.vals {
			require.Equal(t, op.id, v)
		}
	}
}

func TestThreadDropsFailures(t *testing.T) {
	var got []*testOp
	th := NewThread("test", func(op *testOp) { got = append(got, op) }, quiet)
	defer th.Close()

	th.Run(&testOp{id: 1, fail: errors.New("boom")})
	th.Run(&testOp{id: 2, panic: "kaboom"})
	th.Run(&testOp{id: 3})
	drain(t, th, &got, 1)

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].id)
	assert.Equal(t, Stats{Submitted: 3, Completed: 1, Dropped: 2}, th.Stats())
}

func TestThreadUpdateDoesNotBlock(t *testing.T) {
	th := NewThread[*testOp]("test", nil, quiet)
	gate := make(chan struct{})
	th.Run(&testOp{gate: gate})

	done := make(chan int)
	go func() { done <- th.Update() }()
	select {
	case n := <-done:
		assert.Zero(t, n)
	case <-time.After(time.Second):
		t.Fatal("Update blocked on a running op")
	}

	close(gate)
	th.Close()
}

func TestThreadCloseWaitsForRunningOp(t *testing.T) {
	th := NewThread[*testOp]("test", nil, quiet)
	gate := make(chan struct{})
	op := &testOp{id: 4, vals: make([]int, 3), gate: gate}
	th.Run(op)

	closed := make(chan struct{})
	go func() {
		th.Close()
		close(closed)
	}()
	select {
	case <-closed:
		// The worker may not have picked the op up yet; that is fine.
	case <-time.After(50 * time.Millisecond):
		close(gate)
		<-closed
		assert.Equal(t, []int{4, 4, 4}, op.vals)
		gate = nil
	}
	if gate != nil {
		close(gate)
	}

	// Closed threads ignore new work and can be closed again.
	th.Run(&testOp{id: 5})
	th.Close()
	assert.Zero(t, th.Update())
}

func TestOperatorRecyclesOps(t *testing.T) {
	var got []*testOp
	op := NewOperator[testOp]("test", func(op *testOp) { got = append(got, op) }, quiet)
	defer op.Close()

	op.Run(func(o *testOp) {
		o.id = 1
		o.vals = make([]int, 4)
	})
	require.Eventually(t, func() bool { op.Update(); return len(got) == 1 }, 2*time.Second, time.Millisecond)
	first := got[0]
	assert.Equal(t, []int{1, 1, 1, 1}, first.vals)

	op.Run(func(o *testOp) {
		assert.Same(t, first, o)
		o.id = 2
	})
	require.Eventually(t, func() bool { op.Update(); return len(got) == 2 }, 2*time.Second, time.Millisecond)
	assert.Same(t, first, got[1])
	assert.Equal(t, []int{2, 2, 2, 2}, got[1].vals)
	assert.Equal(t, int64(2), op.Stats().Completed)
}

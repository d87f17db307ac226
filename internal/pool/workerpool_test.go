package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := New(size, false)

	var inFlight int32
	var maxObserved int32
	for i := 0; i < 20; i++ {
		p.Submit(context.Background(), func(ctx context.Context) error {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				cur := atomic.LoadInt32(&maxObserved)
				if n <= cur || atomic.CompareAndSwapInt32(&maxObserved, cur, n) {
					break
				}
			}
			atomic.AddInt32(&inFlight, -1)
			return nil
		})
	}
	p.Wait()

	if maxObserved > size {
		t.Errorf("observed %d concurrent tasks, pool was bounded at %d", maxObserved, size)
	}
}

func TestWorkerPool_SequentialRunsInProcessImmediately(t *testing.T) {
	p := New(1, true)
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		p.Submit(context.Background(), func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}
	// Sequential submissions complete synchronously, so order is already
	// populated before Wait is even called.
	if len(order) != 5 {
		t.Fatalf("expected all 5 tasks to have run synchronously, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("expected in-order execution, got %v", order)
		}
	}
}

func TestWorkerPool_CollectsErrorsWithoutBlockingSiblings(t *testing.T) {
	p := New(2, false)
	for i := 0; i < 4; i++ {
		i := i
		p.Submit(context.Background(), func(ctx context.Context) error {
			if i%2 == 0 {
				return errors.New("boom")
			}
			return nil
		})
	}
	errs := p.Wait()
	if len(errs) != 2 {
		t.Fatalf("expected 2 collected errors, got %d", len(errs))
	}
}

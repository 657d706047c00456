package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *int64
	err     error
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	return &countResult{err: j.err}
}

func TestPoolExecutesAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter int64
	for i := 0; i < 20; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
	if atomic.LoadInt64(&counter) != 20 {
		t.Errorf("Expected 20 executions, got %d", counter)
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter int64
	pool.Submit(&countJob{counter: &counter})
	pool.Submit(&countJob{counter: &counter, err: errors.New("boom")})

	results := pool.Wait()
	failed := 0
	for _, result := range results {
		if result.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("Expected 1 failed result, got %d", failed)
	}
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(&countJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

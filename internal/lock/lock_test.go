package lock

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryLockerMutualExclusion(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	const goroutines = 32
	const increments = 100

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				release, err := locker.Acquire(ctx, "order_lock:o1")
				if err != nil {
					t.Errorf("Acquire returned error: %v", err)
					return
				}
				counter++
				release()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*increments {
		t.Errorf("counter = %d, want %d", counter, goroutines*increments)
	}
}

func TestMemoryLockerCancelledContext(t *testing.T) {
	locker := NewMemoryLocker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := locker.Acquire(ctx, "order_lock:o1"); err == nil {
		t.Error("expected error acquiring with cancelled context")
	}
}

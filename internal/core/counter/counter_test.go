package counter

import (
	"sync"
	"testing"
)

func TestCounter_Increment(t *testing.T) {
	c := New()

	if got := c.Value(); got != 0 {
		t.Fatalf("fresh counter = %d, want 0", got)
	}

	for i := int64(1); i <= 3; i++ {
		if got := c.Increment(); got != i {
			t.Errorf("Increment() = %d, want %d", got, i)
		}
	}

	if got := c.Value(); got != 3 {
		t.Errorf("Value() = %d, want 3", got)
	}
}

func TestCounter_ConcurrentIncrements(t *testing.T) {
	const (
		goroutines = 50
		perG       = 200
	)

	c := New()

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if got, want := c.Value(), int64(goroutines*perG); got != want {
		t.Errorf("counter after %d concurrent increments = %d, want %d", want, got, want)
	}
}

func TestCounter_IncrementReturnsUniqueValues(t *testing.T) {
	const n = 100

	c := New()

	var mu sync.Mutex
	seen := make(map[int64]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := c.Increment()
			mu.Lock()
			if seen[v] {
				t.Errorf("Increment returned duplicate value %d", v)
			}
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("got %d distinct values, want %d", len(seen), n)
	}
}

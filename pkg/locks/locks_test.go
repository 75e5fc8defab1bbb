package locks

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineSerializes(t *testing.T) {
	e := NewEngine()
	var inside int32
	var sawOverlap int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Lock()
			defer e.Unlock()
			if atomic.AddInt32(&inside, 1) > 1 {
				atomic.StoreInt32(&sawOverlap, 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(0), sawOverlap, "two goroutines held the engine lock at once")
}

func TestSubsystemsAcquireDedupsAndSorts(t *testing.T) {
	s := NewSubsystems()
	var order []string
	var mu sync.Mutex

	release := s.Acquire("b", "a", "a")
	mu.Lock()
	order = append(order, "locked-b-a")
	mu.Unlock()
	release()

	assert.Len(t, s.locks, 2)
}

func TestSubsystemsAcquireOppositeOrderNeverDeadlocks(t *testing.T) {
	s := NewSubsystems()
	done := make(chan struct{})

	go func() {
		release := s.Acquire("a", "b")
		time.Sleep(10 * time.Millisecond)
		release()
	}()
	go func() {
		release := s.Acquire("b", "a")
		time.Sleep(10 * time.Millisecond)
		release()
	}()

	go func() {
		release1 := s.Acquire("a", "b")
		release1()
		release2 := s.Acquire("b", "a")
		release2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("deadlock: lock ordering was not consistent across callers")
	}
}

func TestSubsystemsReleaseUnlocksInReverseOrder(t *testing.T) {
	s := NewSubsystems()
	var unlockOrder []string
	var mu sync.Mutex

	release := s.Acquire("x", "y", "z")

	go func() {
		for _, nqn := range []string{"z", "y", "x"} {
			l := s.lockFor(nqn)
			l.Lock()
			mu.Lock()
			unlockOrder = append(unlockOrder, nqn)
			mu.Unlock()
			l.Unlock()
		}
	}()

	time.Sleep(5 * time.Millisecond)
	release()
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"z", "y", "x"}, unlockOrder)
}

package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameOwnerSameLock(t *testing.T) {
	lm := NewLockManager()
	owner := uuid.New()
	assert.Same(t, lm.GetLock(owner), lm.GetLock(owner))
	assert.NotSame(t, lm.GetLock(owner), lm.GetLock(uuid.New()))
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()
	owner := uuid.New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock(owner, func() error {
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestLockManager_OwnersDoNotBlockEachOther(t *testing.T) {
	lm := NewLockManager()
	a, b := uuid.New(), uuid.New()

	lm.GetLock(a).Lock()
	defer lm.GetLock(a).Unlock()

	done := make(chan struct{})
	go func() {
		_ = lm.WithLock(b, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different owner blocked")
	}
}

package concurrency

import (
	"sync"

	"github.com/google/uuid"
)

// LockManager hands out one mutex per owner so mutations of one player's data
// are serialized while different players never contend.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given owner
func (lm *LockManager) GetLock(owner uuid.UUID) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(owner, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the owner's mutex
func (lm *LockManager) WithLock(owner uuid.UUID, fn func() error) error {
	mu := lm.GetLock(owner)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

package profile

import (
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/metrics"
)

// ActiveRegistry maps each connected owner to the profile they are playing.
// It lives only in memory; the session layer rebuilds it on reconnect.
type ActiveRegistry struct {
	active sync.Map // uuid.UUID -> uuid.UUID
}

// NewActiveRegistry creates an empty registry.
func NewActiveRegistry() *ActiveRegistry {
	return &ActiveRegistry{}
}

// Set records profileID as the owner's active profile.
func (r *ActiveRegistry) Set(ownerID, profileID uuid.UUID) {
	if _, loaded := r.active.Swap(ownerID, profileID); !loaded {
		metrics.ActiveProfiles.Inc()
	}
}

// Get returns the owner's active profile id.
func (r *ActiveRegistry) Get(ownerID uuid.UUID) (uuid.UUID, bool) {
	v, ok := r.active.Load(ownerID)
	if !ok {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// Clear drops the owner's entry and reports whether one existed.
func (r *ActiveRegistry) Clear(ownerID uuid.UUID) bool {
	if _, loaded := r.active.LoadAndDelete(ownerID); loaded {
		metrics.ActiveProfiles.Dec()
		return true
	}
	return false
}

// CompareAndClear drops the entry only if it still points at profileID.
func (r *ActiveRegistry) CompareAndClear(ownerID, profileID uuid.UUID) bool {
	if r.active.CompareAndDelete(ownerID, profileID) {
		metrics.ActiveProfiles.Dec()
		return true
	}
	return false
}

// Owners returns every owner with an active profile.
func (r *ActiveRegistry) Owners() []uuid.UUID {
	var owners []uuid.UUID
	r.active.Range(func(k, _ any) bool {
		owners = append(owners, k.(uuid.UUID))
		return true
	})
	return owners
}

// Len counts active owners.
func (r *ActiveRegistry) Len() int {
	n := 0
	r.active.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

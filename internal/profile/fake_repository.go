package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// FakeRepository is a stateful in-memory Repository for tests. It stores clones,
// so it behaves like a real store: mutating a loaded profile changes nothing
// until Save. Set FailSave to simulate a disk failure.
type FakeRepository struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]map[uuid.UUID]*Profile
	saves    int
	FailSave error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{profiles: make(map[uuid.UUID]map[uuid.UUID]*Profile)}
}

func (f *FakeRepository) Save(ctx context.Context, p *Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSave != nil {
		return f.FailSave
	}
	owned := f.profiles[p.OwnerID]
	if owned == nil {
		owned = make(map[uuid.UUID]*Profile)
		f.profiles[p.OwnerID] = owned
	}
	owned[p.ID] = p.Clone()
	f.saves++
	return nil
}

func (f *FakeRepository) Load(ctx context.Context, ownerID, profileID uuid.UUID) (*Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[ownerID][profileID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (f *FakeRepository) LoadAll(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Profile, 0, len(f.profiles[ownerID]))
	for _, p := range f.profiles[ownerID] {
		out = append(out, p.Clone())
	}
	SortByLastPlayed(out)
	return out, nil
}

func (f *FakeRepository) Delete(ctx context.Context, ownerID, profileID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[ownerID][profileID]; !ok {
		return false, nil
	}
	delete(f.profiles[ownerID], profileID)
	return true, nil
}

func (f *FakeRepository) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.profiles[ownerID]), nil
}

// Saves reports how many successful saves have happened.
func (f *FakeRepository) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

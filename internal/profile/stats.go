package profile

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
)

// GetStat reads one named stat of the active profile.
func (m *Manager) GetStat(ctx context.Context, ownerID uuid.UUID, name string) (float64, error) {
	p, err := m.view(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return p.Stats.Get(name)
}

// SetStat overwrites one named stat.
func (m *Manager) SetStat(ctx context.Context, ownerID uuid.UUID, name string, value float64) error {
	if err := checkFinite(value); err != nil {
		return err
	}
	_, err := m.Update(ctx, ownerID, func(p *Profile) error {
		return p.Stats.Set(name, value)
	})
	return err
}

// AddStat increments one named stat and returns the new value.
func (m *Manager) AddStat(ctx context.Context, ownerID uuid.UUID, name string, delta float64) (float64, error) {
	if err := checkFinite(delta); err != nil {
		return 0, err
	}
	var value float64
	_, err := m.Update(ctx, ownerID, func(p *Profile) error {
		v, err := p.Stats.Add(name, delta)
		if err != nil {
			return err
		}
		if err := checkFinite(v); err != nil {
			return fmt.Errorf("%s overflows: %w", name, err)
		}
		value = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// UpdateLocation stores where the player is standing.
func (m *Manager) UpdateLocation(ctx context.Context, ownerID uuid.UUID, loc domain.Location) error {
	if loc.WorldID == "" {
		return fmt.Errorf("%w: world id is required", domain.ErrInvalidInput)
	}
	for _, v := range []float64{loc.X, loc.Y, loc.Z, float64(loc.Yaw), float64(loc.Pitch)} {
		if err := checkFinite(v); err != nil {
			return err
		}
	}
	_, err := m.Update(ctx, ownerID, func(p *Profile) error {
		p.Location = loc
		return nil
	})
	return err
}

// UpdateInventory replaces the opaque inventory blobs.
func (m *Manager) UpdateInventory(ctx context.Context, ownerID uuid.UUID, inv domain.Inventory) error {
	inv = inv.Clone()
	_, err := m.Update(ctx, ownerID, func(p *Profile) error {
		p.Inventory = inv
		return nil
	})
	return err
}

// AccruePlaytime adds elapsed wall time to the playtime stat and stamps last played.
func (m *Manager) AccruePlaytime(ctx context.Context, ownerID uuid.UUID, elapsed time.Duration) error {
	if elapsed <= 0 {
		return nil
	}
	_, err := m.Update(ctx, ownerID, func(p *Profile) error {
		if _, err := p.Stats.Add(domain.StatPlaytimeSeconds, elapsed.Seconds()); err != nil {
			return err
		}
		p.LastPlayedAt = m.now()
		return nil
	})
	return err
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: value must be finite", domain.ErrInvalidInput)
	}
	return nil
}

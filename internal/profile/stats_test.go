package profile

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/domain"
)

func TestStatAccessors(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	owner := uuid.New()
	activeProfile(t, m, owner)

	v, err := m.GetStat(ctx, owner, domain.StatMaxHealth)
	require.NoError(t, err)
	assert.Equal(t, float64(100), v)

	require.NoError(t, m.SetStat(ctx, owner, domain.StatDefense, 7.5))
	v, err = m.AddStat(ctx, owner, domain.StatDefense, 2.5)
	require.NoError(t, err)
	assert.Equal(t, float64(10), v)

	_, err = m.GetStat(ctx, owner, "mana_burn")
	assert.ErrorIs(t, err, domain.ErrUnknownStat)
	assert.ErrorIs(t, m.SetStat(ctx, owner, "mana_burn", 1), domain.ErrUnknownStat)
	assert.ErrorIs(t, m.SetStat(ctx, owner, domain.StatDefense, math.NaN()), domain.ErrInvalidInput)
	_, err = m.AddStat(ctx, owner, domain.StatDefense, math.Inf(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddStat_OverflowIsRejected(t *testing.T) {
	m, repo, _ := newTestManager(t)
	ctx := context.Background()
	owner := uuid.New()
	activeProfile(t, m, owner)

	_, err := m.AddStat(ctx, owner, domain.StatStrength, math.MaxFloat64)
	require.NoError(t, err)
	saves := repo.Saves()

	_, err = m.AddStat(ctx, owner, domain.StatStrength, math.MaxFloat64)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, saves, repo.Saves(), "nothing saved")

	v, err := m.GetStat(ctx, owner, domain.StatStrength)
	require.NoError(t, err)
	assert.False(t, math.IsInf(v, 0))
}

func TestUpdateLocationAndInventory(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	owner := uuid.New()
	activeProfile(t, m, owner)

	loc := domain.Location{WorldID: "nether", X: 1.5, Y: 70, Z: -3, Yaw: 90, Pitch: -10}
	require.NoError(t, m.UpdateLocation(ctx, owner, loc))
	assert.ErrorIs(t, m.UpdateLocation(ctx, owner, domain.Location{}), domain.ErrInvalidInput)

	inv := domain.Inventory{Items: []string{"diamond x3"}, Hotbar: []string{"sword"}}
	require.NoError(t, m.UpdateInventory(ctx, owner, inv))
	inv.Items[0] = "mutated by caller"

	p, err := m.GetActiveProfile(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, loc, p.Location)
	assert.Equal(t, []string{"diamond x3"}, p.Inventory.Items)
	assert.Equal(t, []string{}, p.Inventory.Armor)
}

func TestAccruePlaytime(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	owner := uuid.New()
	start := activeProfile(t, m, owner)

	later := start.LastPlayedAt.Add(time.Hour)
	m.now = func() time.Time { return later }

	require.NoError(t, m.AccruePlaytime(ctx, owner, 1500*time.Millisecond))
	require.NoError(t, m.AccruePlaytime(ctx, owner, 0))

	p, err := m.GetActiveProfile(ctx, owner)
	require.NoError(t, err)
	v, err := p.Stats.Get(domain.StatPlaytimeSeconds)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, later, p.LastPlayedAt)

	assert.ErrorIs(t, m.AccruePlaytime(ctx, uuid.New(), time.Second), domain.ErrNoActiveProfile)
}

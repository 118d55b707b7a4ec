package profile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/domain"
)

func TestNormalizeName(t *testing.T) {
	name, err := NormalizeName("  Hero  ")
	require.NoError(t, err)
	assert.Equal(t, "Hero", name)

	_, err = NormalizeName("")
	assert.ErrorIs(t, err, domain.ErrInvalidProfileName)
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Hero", "hero"))
	assert.True(t, SameName("HERO ", "hero"))
	assert.True(t, SameName("Straße", "STRASSE"))
	assert.False(t, SameName("Hero", "Heroine"))
}

func TestProfile_CloneIsDeep(t *testing.T) {
	p := New(uuid.New(), "Main")
	p.Inventory.Items = []string{"pickaxe"}
	p.TokenLedger.Add(domain.SkillMining, domain.TierBasic, 1)

	cp := p.Clone()
	cp.Inventory.Items[0] = "shovel"
	cp.TokenLedger.Add(domain.SkillMining, domain.TierBasic, 5)
	require.NoError(t, cp.Skills.SetLevel(domain.SkillMining, 50))

	assert.Equal(t, "pickaxe", p.Inventory.Items[0])
	assert.Equal(t, 1, p.TokenLedger.Count(domain.SkillMining, domain.TierBasic))
	assert.Equal(t, 1, p.Skills.Get(domain.SkillMining).Level)
}

func TestProfile_NormalizeRepairsDocument(t *testing.T) {
	doc := []byte(`{
		"profile_id": "` + uuid.NewString() + `",
		"owner_id": "` + uuid.NewString() + `",
		"name": "Legacy",
		"level": 250,
		"experience": -10,
		"skills": {"mining": {"level": 0, "current_xp": -3}},
		"token_ledger": {"combat": {"advanced": -2, "basic": 4}}
	}`)

	var p Profile
	require.NoError(t, json.Unmarshal(doc, &p))
	p.Normalize()

	assert.Equal(t, 100, p.Level)
	assert.Zero(t, p.Experience)
	assert.Equal(t, 1, p.Skills.Get(domain.SkillMining).Level)
	assert.Zero(t, p.Skills.Get(domain.SkillMining).CurrentXP)
	assert.Len(t, p.Skills, len(domain.AllSkills()))
	assert.Zero(t, p.TokenLedger.Count(domain.SkillCombat, domain.TierAdvanced))
	assert.Equal(t, 4, p.TokenLedger.Count(domain.SkillCombat, domain.TierBasic))
	assert.Equal(t, domain.DefaultWorldID, p.Location.WorldID)
	assert.NotNil(t, p.TreeProgress)
	assert.NotNil(t, p.RewardClaims)
	assert.NotNil(t, p.Inventory.Hotbar)
}

func TestProfile_JSONRoundTrip(t *testing.T) {
	p := New(uuid.New(), "Main")
	p.LastPlayedAt = time.Date(2026, 3, 4, 5, 6, 7, 891234567, time.UTC)
	p.Inventory.Armor = []string{"helmet{durability:3}"}
	p.TokenLedger.Add(domain.SkillWoodcutting, domain.TierMaster, 2)
	_, err := p.Stats.Add(domain.StatBlocksMined, 12)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got Profile
	require.NoError(t, json.Unmarshal(data, &got))
	got.Normalize()

	assert.Equal(t, p, &got)
	assert.Contains(t, string(data), `"woodcutting":{"master":2}`)
}

func TestSortByLastPlayed(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := &Profile{ID: uuid.New(), LastPlayedAt: base.Add(time.Millisecond)}
	createdLate := &Profile{ID: uuid.New(), LastPlayedAt: base, CreatedAt: base}
	createdEarly := &Profile{ID: uuid.New(), LastPlayedAt: base, CreatedAt: base.Add(-time.Hour)}

	list := []*Profile{createdEarly, createdLate, newer}
	SortByLastPlayed(list)

	// equal last-played times put the most recently created first
	assert.Equal(t, []*Profile{newer, createdLate, createdEarly}, list)
}

func TestSortByLastPlayed_FullTieUsesID(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &Profile{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), LastPlayedAt: base, CreatedAt: base}
	b := &Profile{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), LastPlayedAt: base, CreatedAt: base}

	list := []*Profile{b, a}
	SortByLastPlayed(list)

	assert.Equal(t, []*Profile{a, b}, list)
}

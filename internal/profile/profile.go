package profile

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/progression"
	"github.com/osse101/skillforge/internal/reward"
	"github.com/osse101/skillforge/internal/skill"
	"github.com/osse101/skillforge/internal/token"
)

// Profile is one save slot. The document is self-describing: it carries its own
// id and owner so a directory listing needs no separate index.
type Profile struct {
	ID           uuid.UUID            `json:"profile_id"`
	OwnerID      uuid.UUID            `json:"owner_id"`
	Name         string               `json:"name"`
	CreatedAt    time.Time            `json:"created_at"`
	LastPlayedAt time.Time            `json:"last_played_at"`
	Level        int                  `json:"level"`
	Experience   int64                `json:"experience"`
	Location     domain.Location      `json:"location"`
	Inventory    domain.Inventory     `json:"inventory"`
	Stats        domain.Stats         `json:"stats"`
	Skills       skill.Set            `json:"skills"`
	TreeProgress progression.Progress `json:"tree_progress"`
	TokenLedger  token.Ledger         `json:"token_ledger"`
	RewardClaims reward.Claims        `json:"reward_claims"`
}

// New creates a fresh profile with every skill at level 1.
func New(ownerID uuid.UUID, name string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		CreatedAt:    now,
		LastPlayedAt: now,
		Level:        skill.MinLevel,
		Location:     domain.SpawnLocation(),
		Inventory:    domain.Inventory{}.Clone(),
		Stats:        domain.DefaultStats(),
		Skills:       skill.NewSet(),
		TreeProgress: progression.NewProgress(),
		TokenLedger:  token.NewLedger(),
		RewardClaims: reward.NewClaims(),
	}
}

// Clone returns a deep copy, so callers can mutate without touching cached or shared state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Inventory = p.Inventory.Clone()
	cp.Skills = p.Skills.Clone()
	cp.TreeProgress = p.TreeProgress.Clone()
	cp.TokenLedger = p.TokenLedger.Clone()
	cp.RewardClaims = p.RewardClaims.Clone()
	return &cp
}

// Normalize repairs a loaded document: missing maps are created, levels and XP
// are clamped, and impossible balances are dropped.
func (p *Profile) Normalize() {
	player := skill.NewState(p.Level, p.Experience)
	p.Level, p.Experience = player.Level, player.CurrentXP
	if p.Location.WorldID == "" {
		p.Location.WorldID = domain.DefaultWorldID
	}
	p.Inventory = p.Inventory.Clone()

	if p.Skills == nil {
		p.Skills = skill.NewSet()
	}
	p.Skills.Normalize()
	if p.TreeProgress == nil {
		p.TreeProgress = progression.NewProgress()
	}
	p.TreeProgress.Normalize()
	if p.TokenLedger == nil {
		p.TokenLedger = token.NewLedger()
	}
	p.TokenLedger.Normalize()
	if p.RewardClaims == nil {
		p.RewardClaims = reward.NewClaims()
	}
}

// SortByLastPlayed orders profiles most recently played first. Ties fall back to
// creation time, then id, so listings are stable.
func SortByLastPlayed(profiles []*Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if !a.LastPlayedAt.Equal(b.LastPlayedAt) {
			return a.LastPlayedAt.After(b.LastPlayedAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

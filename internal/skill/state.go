package skill

import (
	"fmt"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/token"
)

// State is one skill's level and the XP carried toward the next level.
type State struct {
	Level     int   `json:"level"`
	CurrentXP int64 `json:"current_xp"`
}

// NewState builds a clamped state. Carried XP stays below the next level's
// threshold so a stored state never holds an unapplied level-up.
func NewState(level int, xp int64) State {
	s := State{Level: ClampLevel(level), CurrentXP: ClampXP(xp)}
	if s.Level >= MaxLevel {
		s.CurrentXP = 0
		return s
	}
	if limit := XPToNextLevel(s.Level) - 1; s.CurrentXP > limit {
		s.CurrentXP = limit
	}
	return s
}

// XPToNext is the XP still missing before the next level, 0 at the cap.
func (s State) XPToNext() int64 {
	need := XPToNextLevel(s.Level)
	if need <= s.CurrentXP {
		return 0
	}
	return need - s.CurrentXP
}

// TotalXP is the lifetime XP this state represents.
func (s State) TotalXP() int64 {
	return TotalXPForLevel(s.Level) + s.CurrentXP
}

// Grant records one token awarded for a milestone level.
type Grant struct {
	Level int              `json:"level"`
	Tier  domain.TokenTier `json:"tier"`
}

// XPResult describes the effect of a single XP award.
type XPResult struct {
	Skill        domain.Skill `json:"skill"`
	XPAdded      int64        `json:"xp_added"`
	OldLevel     int          `json:"old_level"`
	NewLevel     int          `json:"new_level"`
	CurrentXP    int64        `json:"current_xp"`
	LevelsGained int          `json:"levels_gained"`
	Grants       []Grant      `json:"grants,omitempty"`
}

// Set holds one State per skill. Missing skills read as a fresh level 1 state.
type Set map[domain.Skill]State

// NewSet returns a set with every skill at level 1.
func NewSet() Set {
	set := make(Set, len(domain.AllSkills()))
	for _, sk := range domain.AllSkills() {
		set[sk] = NewState(MinLevel, 0)
	}
	return set
}

// Get returns the state of a skill.
func (s Set) Get(sk domain.Skill) State {
	st, ok := s[sk]
	if !ok {
		return NewState(MinLevel, 0)
	}
	return st
}

// AddXP awards amount XP to a skill and credits one token to ledger for every
// level crossed that is a multiple of domain.TokenGrantInterval. Each milestone
// picks its tier from the level being reached at that moment, so one large
// award spanning several milestones grants each at its own tier.
func (s Set) AddXP(sk domain.Skill, amount int64, ledger token.Ledger) (XPResult, error) {
	if !sk.Valid() {
		return XPResult{}, fmt.Errorf("%w: %d", domain.ErrUnknownSkill, uint8(sk))
	}
	if amount < 0 {
		return XPResult{}, fmt.Errorf("%w: xp amount must not be negative", domain.ErrInvalidInput)
	}

	before := s.Get(sk)
	level, xp, gained := AddXP(before.Level, before.CurrentXP, amount)
	s[sk] = State{Level: level, CurrentXP: xp}

	res := XPResult{
		Skill:        sk,
		XPAdded:      amount,
		OldLevel:     before.Level,
		NewLevel:     level,
		CurrentXP:    xp,
		LevelsGained: gained,
	}
	for l := before.Level + 1; l <= level; l++ {
		if l%domain.TokenGrantInterval != 0 {
			continue
		}
		tier := domain.TierForLevel(l)
		if ledger != nil {
			ledger.Add(sk, tier, 1)
		}
		res.Grants = append(res.Grants, Grant{Level: l, Tier: tier})
	}
	return res, nil
}

// SetLevel overrides a skill's level for admin tooling. It keeps the carried XP
// (clamped) and never grants or revokes tokens.
func (s Set) SetLevel(sk domain.Skill, level int) error {
	if !sk.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownSkill, uint8(sk))
	}
	cur := s.Get(sk)
	s[sk] = NewState(level, cur.CurrentXP)
	return nil
}

// SetXP overrides the carried XP for admin tooling. It does not level up and
// never grants tokens; XP past the next threshold is clamped just below it.
func (s Set) SetXP(sk domain.Skill, xp int64) error {
	if !sk.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownSkill, uint8(sk))
	}
	cur := s.Get(sk)
	s[sk] = NewState(cur.Level, xp)
	return nil
}

// Clone returns a copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Normalize clamps every stored state and fills in skills absent from a loaded document.
func (s Set) Normalize() {
	for _, sk := range domain.AllSkills() {
		st, ok := s[sk]
		if !ok {
			s[sk] = NewState(MinLevel, 0)
			continue
		}
		s[sk] = NewState(st.Level, st.CurrentXP)
	}
}

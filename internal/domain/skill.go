package domain

import (
	"fmt"
	"strings"
)

// Skill identifies a progression track. The set is closed; add new skills here
// and to skillNames so every switch over Skill stays exhaustive.
type Skill uint8

const (
	SkillMining Skill = iota
	SkillCombat
	SkillFarming
	SkillFishing
	SkillWoodcutting
	skillCount
)

var skillNames = [skillCount]string{
	SkillMining:      "mining",
	SkillCombat:      "combat",
	SkillFarming:     "farming",
	SkillFishing:     "fishing",
	SkillWoodcutting: "woodcutting",
}

// AllSkills returns every skill in declaration order.
func AllSkills() []Skill {
	out := make([]Skill, 0, skillCount)
	for s := Skill(0); s < skillCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared skills.
func (s Skill) Valid() bool {
	return s < skillCount
}

func (s Skill) String() string {
	if !s.Valid() {
		return fmt.Sprintf("skill(%d)", uint8(s))
	}
	return skillNames[s]
}

// ParseSkill resolves a skill name, ignoring case and surrounding whitespace.
func ParseSkill(name string) (Skill, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s := Skill(0); s < skillCount; s++ {
		if skillNames[s] == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSkill, name)
}

// MarshalText encodes the skill by name so documents stay readable and map keys are stable.
func (s Skill) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSkill, uint8(s))
	}
	return []byte(skillNames[s]), nil
}

func (s *Skill) UnmarshalText(text []byte) error {
	parsed, err := ParseSkill(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

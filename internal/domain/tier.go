package domain

import (
	"fmt"
	"strings"
)

// TokenTier orders token currencies. A higher tier may always pay for a lower-tier cost.
type TokenTier uint8

const (
	TierBasic TokenTier = iota
	TierAdvanced
	TierMaster
	tierCount
)

var tierNames = [tierCount]string{
	TierBasic:    "basic",
	TierAdvanced: "advanced",
	TierMaster:   "master",
}

// Token grant thresholds, keyed on the skill level just reached.
const (
	AdvancedTokenLevel = 30
	MasterTokenLevel   = 70
	TokenGrantInterval = 5
)

// AllTiers returns tiers from lowest to highest.
func AllTiers() []TokenTier {
	return []TokenTier{TierBasic, TierAdvanced, TierMaster}
}

// TiersAtLeast returns every tier that satisfies a cost of the given tier, lowest first.
func TiersAtLeast(required TokenTier) []TokenTier {
	out := make([]TokenTier, 0, tierCount)
	for t := required; t < tierCount; t++ {
		out = append(out, t)
	}
	return out
}

// TierForLevel picks the tier granted for reaching a milestone level.
func TierForLevel(level int) TokenTier {
	switch {
	case level >= MasterTokenLevel:
		return TierMaster
	case level >= AdvancedTokenLevel:
		return TierAdvanced
	default:
		return TierBasic
	}
}

func (t TokenTier) Valid() bool {
	return t < tierCount
}

func (t TokenTier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
	return tierNames[t]
}

// ParseTokenTier resolves a tier name, ignoring case.
func ParseTokenTier(name string) (TokenTier, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t := TokenTier(0); t < tierCount; t++ {
		if tierNames[t] == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown token tier %q", ErrInvalidInput, name)
}

func (t TokenTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown token tier %d", ErrInvalidInput, uint8(t))
	}
	return []byte(tierNames[t]), nil
}

func (t *TokenTier) UnmarshalText(text []byte) error {
	parsed, err := ParseTokenTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TreeVariant names the two skill tree strategies a profile carries state for.
type TreeVariant string

const (
	// TreeVariantGraph is the prerequisite graph with per-level token costs.
	TreeVariantGraph TreeVariant = "graph"
	// TreeVariantReward is the level-gated pick-N-of-M reward tiers.
	TreeVariantReward TreeVariant = "reward"
)

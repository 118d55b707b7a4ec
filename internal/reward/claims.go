package reward

import (
	"sort"

	"github.com/osse101/skillforge/internal/domain"
)

// Claims records claimed reward ids per skill and tier number.
type Claims map[domain.Skill]map[int][]string

// NewClaims returns empty claims.
func NewClaims() Claims {
	return make(Claims)
}

// Claimed returns the ids claimed in a tier.
func (c Claims) Claimed(skill domain.Skill, tier int) []string {
	return append([]string(nil), c[skill][tier]...)
}

// Has reports whether rewardID was claimed in tier.
func (c Claims) Has(skill domain.Skill, tier int, rewardID string) bool {
	for _, id := range c[skill][tier] {
		if id == rewardID {
			return true
		}
	}
	return false
}

func (c Claims) add(skill domain.Skill, tier int, rewardID string) {
	tiers := c[skill]
	if tiers == nil {
		tiers = make(map[int][]string)
		c[skill] = tiers
	}
	ids := append(tiers[tier], rewardID)
	sort.Strings(ids)
	tiers[tier] = ids
}

// Clone returns a deep copy.
func (c Claims) Clone() Claims {
	out := make(Claims, len(c))
	for skill, tiers := range c {
		cp := make(map[int][]string, len(tiers))
		for n, ids := range tiers {
			cp[n] = append([]string(nil), ids...)
		}
		out[skill] = cp
	}
	return out
}

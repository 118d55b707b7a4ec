// Package token holds the tiered skill token currency.
package token

import (
	"github.com/osse101/skillforge/internal/domain"
)

// Balances is the per-tier balance of one skill.
type Balances map[domain.TokenTier]int

// Ledger tracks token balances per skill and tier. Balances never go negative.
//
// A Ledger is plain data owned by a single profile; callers serialize access to it.
type Ledger map[domain.Skill]Balances

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return make(Ledger)
}

// Add credits amount tokens. Non-positive amounts are ignored.
func (l Ledger) Add(skill domain.Skill, tier domain.TokenTier, amount int) {
	if amount <= 0 || !skill.Valid() || !tier.Valid() {
		return
	}
	b := l[skill]
	if b == nil {
		b = make(Balances)
		l[skill] = b
	}
	b[tier] += amount
}

// Count returns the balance of a single tier.
func (l Ledger) Count(skill domain.Skill, tier domain.TokenTier) int {
	return l[skill][tier]
}

// Available sums every tier that can pay for a cost of the required tier.
func (l Ledger) Available(skill domain.Skill, required domain.TokenTier) int {
	total := 0
	for _, tier := range domain.TiersAtLeast(required) {
		total += l[skill][tier]
	}
	return total
}

// Use spends cost tokens at or above the required tier, draining the lowest
// eligible tier first. It either spends the full cost or changes nothing.
func (l Ledger) Use(skill domain.Skill, required domain.TokenTier, cost int) bool {
	_, ok := l.Spend(skill, required, cost)
	return ok
}

// Spend behaves like Use and also reports how much was taken from each tier.
func (l Ledger) Spend(skill domain.Skill, required domain.TokenTier, cost int) (Balances, bool) {
	if cost < 0 || !skill.Valid() || !required.Valid() {
		return nil, false
	}
	if cost == 0 {
		return Balances{}, true
	}
	if l.Available(skill, required) < cost {
		return nil, false
	}

	b := l[skill]
	debited := make(Balances)
	remaining := cost
	for _, tier := range domain.TiersAtLeast(required) {
		if remaining == 0 {
			break
		}
		take := min(b[tier], remaining)
		if take == 0 {
			continue
		}
		b[tier] -= take
		debited[tier] = take
		remaining -= take
	}
	return debited, true
}

// Clone returns a deep copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for skill, b := range l {
		nb := make(Balances, len(b))
		for tier, n := range b {
			nb[tier] = n
		}
		out[skill] = nb
	}
	return out
}

// Normalize drops negative balances that could only come from a hand-edited document.
func (l Ledger) Normalize() {
	for _, b := range l {
		for tier, n := range b {
			if n < 0 {
				b[tier] = 0
			}
		}
	}
}

package skill

import "math"

// XPToNextLevel returns the XP needed to advance from level to level+1:
// floor(BaseXP * level^1.5). It is 0 at MaxLevel and above.
//
// The value is computed as floor(sqrt(BaseXP^2 * level^3)) in integers so the
// result is exact for every level, including perfect squares where a float
// power can land a hair under the integer.
func XPToNextLevel(level int) int64 {
	if level >= MaxLevel {
		return 0
	}
	if level < MinLevel {
		level = MinLevel
	}
	l := int64(level)
	return isqrt(BaseXP * BaseXP * l * l * l)
}

// TotalXPForLevel returns the cumulative XP needed to reach target from level 1.
func TotalXPForLevel(target int) int64 {
	target = ClampLevel(target)
	var total int64
	for i := MinLevel; i < target; i++ {
		total += XPToNextLevel(i)
	}
	return total
}

// AddXP applies delta XP to (level, currentXP) and returns the resulting level,
// the XP carried into that level and how many levels were gained. Inputs are
// clamped first. At MaxLevel XP is pinned to 0.
func AddXP(level int, currentXP, delta int64) (newLevel int, newXP int64, levelsGained int) {
	level = ClampLevel(level)
	currentXP = ClampXP(currentXP)
	if delta < 0 {
		delta = 0
	}
	if level >= MaxLevel {
		return MaxLevel, 0, 0
	}

	startLevel := level
	xp := currentXP
	if delta > math.MaxInt64-xp {
		xp = math.MaxInt64
	} else {
		xp += delta
	}

	for level < MaxLevel {
		need := XPToNextLevel(level)
		if xp < need {
			break
		}
		xp -= need
		level++
	}
	if level >= MaxLevel {
		xp = 0
	}
	return level, xp, level - startLevel
}

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	switch {
	case level < MinLevel:
		return MinLevel
	case level > MaxLevel:
		return MaxLevel
	default:
		return level
	}
}

// ClampXP forces xp to be non-negative.
func ClampXP(xp int64) int64 {
	if xp < 0 {
		return 0
	}
	return xp
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

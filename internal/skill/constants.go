package skill

// XP formula constants
const (
	// BaseXP is the base XP value used in level calculations
	BaseXP = 100

	// LevelExponent is the exponent used in the XP formula: XP = BaseXP * (Level ^ LevelExponent)
	LevelExponent = 1.5

	// MinLevel is the level every skill starts at
	MinLevel = 1

	// MaxLevel is the level cap; XP stops accumulating here
	MaxLevel = 100
)

package domain

import (
	"fmt"
	"sort"
)

// Stat names accepted by Stats.Get, Stats.Set and Stats.Add.
const (
	// Combat
	StatMaxHealth    = "max_health"
	StatHealthRegen  = "health_regen"
	StatMaxMana      = "max_mana"
	StatManaRegen    = "mana_regen"
	StatMaxStamina   = "max_stamina"
	StatStaminaRegen = "stamina_regen"
	StatStrength     = "strength"
	StatDefense      = "defense"
	StatTrueDefense  = "true_defense"
	StatCritChance   = "crit_chance"
	StatCritDamage   = "crit_damage"
	StatAttackSpeed  = "attack_speed"
	StatFerocity     = "ferocity"
	StatMagicFind    = "magic_find"
	StatSpeed        = "speed"
	// Fortune
	StatMiningFortune   = "mining_fortune"
	StatFarmingFortune  = "farming_fortune"
	StatForagingFortune = "foraging_fortune"
	StatOreFortune      = "ore_fortune"
	StatBlockFortune    = "block_fortune"
	StatCropFortune     = "crop_fortune"
	// Fishing
	StatFishingSpeed      = "fishing_speed"
	StatSeaCreatureChance = "sea_creature_chance"
	StatTreasureChance    = "treasure_chance"
	StatDoubleHookChance  = "double_hook_chance"
	StatTrophyFishChance  = "trophy_fish_chance"
	// Resource
	StatMiningSpeed   = "mining_speed"
	StatBreakingPower = "breaking_power"
	StatForagingSpeed = "foraging_speed"
	StatFarmingSpeed  = "farming_speed"
	StatPristine      = "pristine"
	StatPetLuck       = "pet_luck"
	// Gameplay tracking
	StatPlaytimeSeconds  = "playtime_seconds"
	StatBlocksMined      = "blocks_mined"
	StatBlocksPlaced     = "blocks_placed"
	StatOresMined        = "ores_mined"
	StatCropsHarvested   = "crops_harvested"
	StatLogsChopped      = "logs_chopped"
	StatFishCaught       = "fish_caught"
	StatMobsKilled       = "mobs_killed"
	StatDeaths           = "deaths"
	StatDamageDealt      = "damage_dealt"
	StatDamageTaken      = "damage_taken"
	StatDistanceTraveled = "distance_traveled"
	StatItemsCrafted     = "items_crafted"
	StatQuestsCompleted  = "quests_completed"
)

// Stats is the flat numeric stat block carried by every profile.
type Stats struct {
	// Combat
	MaxHealth    float64 `json:"max_health"`
	HealthRegen  float64 `json:"health_regen"`
	MaxMana      float64 `json:"max_mana"`
	ManaRegen    float64 `json:"mana_regen"`
	MaxStamina   float64 `json:"max_stamina"`
	StaminaRegen float64 `json:"stamina_regen"`
	Strength     float64 `json:"strength"`
	Defense      float64 `json:"defense"`
	TrueDefense  float64 `json:"true_defense"`
	CritChance   float64 `json:"crit_chance"`
	CritDamage   float64 `json:"crit_damage"`
	AttackSpeed  float64 `json:"attack_speed"`
	Ferocity     float64 `json:"ferocity"`
	MagicFind    float64 `json:"magic_find"`
	Speed        float64 `json:"speed"`
	// Fortune
	MiningFortune   float64 `json:"mining_fortune"`
	FarmingFortune  float64 `json:"farming_fortune"`
	ForagingFortune float64 `json:"foraging_fortune"`
	OreFortune      float64 `json:"ore_fortune"`
	BlockFortune    float64 `json:"block_fortune"`
	CropFortune     float64 `json:"crop_fortune"`
	// Fishing
	FishingSpeed      float64 `json:"fishing_speed"`
	SeaCreatureChance float64 `json:"sea_creature_chance"`
	TreasureChance    float64 `json:"treasure_chance"`
	DoubleHookChance  float64 `json:"double_hook_chance"`
	TrophyFishChance  float64 `json:"trophy_fish_chance"`
	// Resource
	MiningSpeed   float64 `json:"mining_speed"`
	BreakingPower float64 `json:"breaking_power"`
	ForagingSpeed float64 `json:"foraging_speed"`
	FarmingSpeed  float64 `json:"farming_speed"`
	Pristine      float64 `json:"pristine"`
	PetLuck       float64 `json:"pet_luck"`
	// Gameplay tracking
	PlaytimeSeconds  float64 `json:"playtime_seconds"`
	BlocksMined      float64 `json:"blocks_mined"`
	BlocksPlaced     float64 `json:"blocks_placed"`
	OresMined        float64 `json:"ores_mined"`
	CropsHarvested   float64 `json:"crops_harvested"`
	LogsChopped      float64 `json:"logs_chopped"`
	FishCaught       float64 `json:"fish_caught"`
	MobsKilled       float64 `json:"mobs_killed"`
	Deaths           float64 `json:"deaths"`
	DamageDealt      float64 `json:"damage_dealt"`
	DamageTaken      float64 `json:"damage_taken"`
	DistanceTraveled float64 `json:"distance_traveled"`
	ItemsCrafted     float64 `json:"items_crafted"`
	QuestsCompleted  float64 `json:"quests_completed"`
}

var statFields = map[string]func(*Stats) *float64{
	StatMaxHealth:         func(s *Stats) *float64 { return &s.MaxHealth },
	StatHealthRegen:       func(s *Stats) *float64 { return &s.HealthRegen },
	StatMaxMana:           func(s *Stats) *float64 { return &s.MaxMana },
	StatManaRegen:         func(s *Stats) *float64 { return &s.ManaRegen },
	StatMaxStamina:        func(s *Stats) *float64 { return &s.MaxStamina },
	StatStaminaRegen:      func(s *Stats) *float64 { return &s.StaminaRegen },
	StatStrength:          func(s *Stats) *float64 { return &s.Strength },
	StatDefense:           func(s *Stats) *float64 { return &s.Defense },
	StatTrueDefense:       func(s *Stats) *float64 { return &s.TrueDefense },
	StatCritChance:        func(s *Stats) *float64 { return &s.CritChance },
	StatCritDamage:        func(s *Stats) *float64 { return &s.CritDamage },
	StatAttackSpeed:       func(s *Stats) *float64 { return &s.AttackSpeed },
	StatFerocity:          func(s *Stats) *float64 { return &s.Ferocity },
	StatMagicFind:         func(s *Stats) *float64 { return &s.MagicFind },
	StatSpeed:             func(s *Stats) *float64 { return &s.Speed },
	StatMiningFortune:     func(s *Stats) *float64 { return &s.MiningFortune },
	StatFarmingFortune:    func(s *Stats) *float64 { return &s.FarmingFortune },
	StatForagingFortune:   func(s *Stats) *float64 { return &s.ForagingFortune },
	StatOreFortune:        func(s *Stats) *float64 { return &s.OreFortune },
	StatBlockFortune:      func(s *Stats) *float64 { return &s.BlockFortune },
	StatCropFortune:       func(s *Stats) *float64 { return &s.CropFortune },
	StatFishingSpeed:      func(s *Stats) *float64 { return &s.FishingSpeed },
	StatSeaCreatureChance: func(s *Stats) *float64 { return &s.SeaCreatureChance },
	StatTreasureChance:    func(s *Stats) *float64 { return &s.TreasureChance },
	StatDoubleHookChance:  func(s *Stats) *float64 { return &s.DoubleHookChance },
	StatTrophyFishChance:  func(s *Stats) *float64 { return &s.TrophyFishChance },
	StatMiningSpeed:       func(s *Stats) *float64 { return &s.MiningSpeed },
	StatBreakingPower:     func(s *Stats) *float64 { return &s.BreakingPower },
	StatForagingSpeed:     func(s *Stats) *float64 { return &s.ForagingSpeed },
	StatFarmingSpeed:      func(s *Stats) *float64 { return &s.FarmingSpeed },
	StatPristine:          func(s *Stats) *float64 { return &s.Pristine },
	StatPetLuck:           func(s *Stats) *float64 { return &s.PetLuck },
	StatPlaytimeSeconds:   func(s *Stats) *float64 { return &s.PlaytimeSeconds },
	StatBlocksMined:       func(s *Stats) *float64 { return &s.BlocksMined },
	StatBlocksPlaced:      func(s *Stats) *float64 { return &s.BlocksPlaced },
	StatOresMined:         func(s *Stats) *float64 { return &s.OresMined },
	StatCropsHarvested:    func(s *Stats) *float64 { return &s.CropsHarvested },
	StatLogsChopped:       func(s *Stats) *float64 { return &s.LogsChopped },
	StatFishCaught:        func(s *Stats) *float64 { return &s.FishCaught },
	StatMobsKilled:        func(s *Stats) *float64 { return &s.MobsKilled },
	StatDeaths:            func(s *Stats) *float64 { return &s.Deaths },
	StatDamageDealt:       func(s *Stats) *float64 { return &s.DamageDealt },
	StatDamageTaken:       func(s *Stats) *float64 { return &s.DamageTaken },
	StatDistanceTraveled:  func(s *Stats) *float64 { return &s.DistanceTraveled },
	StatItemsCrafted:      func(s *Stats) *float64 { return &s.ItemsCrafted },
	StatQuestsCompleted:   func(s *Stats) *float64 { return &s.QuestsCompleted },
}

// DefaultStats returns the stat block a fresh profile starts with.
func DefaultStats() Stats {
	return Stats{
		MaxHealth:     100,
		MaxMana:       100,
		MaxStamina:    100,
		HealthRegen:   1,
		ManaRegen:     1,
		StaminaRegen:  1,
		Strength:      0,
		CritChance:    30,
		CritDamage:    50,
		Speed:         100,
		MiningSpeed:   1,
		BreakingPower: 1,
	}
}

// StatNames lists every known stat, sorted.
func StatNames() []string {
	names := make([]string, 0, len(statFields))
	for name := range statFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named stat.
func (s *Stats) Get(name string) (float64, error) {
	field, ok := statFields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
	return *field(s), nil
}

// Set overwrites the named stat.
func (s *Stats) Set(name string, value float64) error {
	field, ok := statFields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
	*field(s) = value
	return nil
}

// Add increments the named stat and returns the new value.
func (s *Stats) Add(name string, delta float64) (float64, error) {
	field, ok := statFields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
	p := field(s)
	*p += delta
	return *p, nil
}

// Snapshot returns every stat keyed by name.
func (s *Stats) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(statFields))
	for name, field := range statFields {
		out[name] = *field(s)
	}
	return out
}

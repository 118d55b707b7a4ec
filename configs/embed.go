// Package configs embeds the default skill tree catalogues and their JSON schemas.
package configs

import "embed"

// Schema file names inside FS.
const (
	TreeSchema   = "schemas/tree.schema.json"
	RewardSchema = "schemas/rewards.schema.json"
)

// Catalogue directories inside FS.
const (
	TreesDir   = "trees"
	RewardsDir = "rewards"
)

// FS holds schemas/, trees/ and rewards/.
//
//go:embed schemas/*.json trees/*.json rewards/*.json
var FS embed.FS

package profile

import "time"

// Profile limits
const (
	// MaxProfilesPerOwner is how many save slots one owner may hold
	MaxProfilesPerOwner = 3

	// MaxNameLength is measured in characters, not bytes
	MaxNameLength = 20
)

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion invalidates cached entries when the Profile shape changes
	CacheSchemaVersion = "1.0"
)

// Log messages
const (
	LogMsgProfileCreated      = "Profile created"
	LogMsgProfileDeleted      = "Profile deleted"
	LogMsgProfileActivated    = "Active profile set"
	LogMsgProfileDeactivated  = "Active profile cleared"
	LogMsgLevelUp             = "Skill level up"
	LogMsgTokensGranted       = "Skill tokens granted"
	LogMsgNodeUpgraded        = "Skill tree node upgraded"
	LogMsgNodeUpgradeRejected = "Skill tree node upgrade rejected"
	LogMsgTreeReset           = "Skill tree reset"
	LogMsgRewardClaimed       = "Reward claimed"
	LogMsgRewardClaimRejected = "Reward claim rejected"
	LogMsgRewardsReset        = "Reward tree reset"
	LogMsgRepositoryFailed    = "Profile repository operation failed"
	LogMsgPublishFailed       = "Failed to publish profile event"
)

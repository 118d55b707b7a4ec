package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidOwnerID        = "Invalid owner id"
	ErrMsgInvalidProfileID      = "Invalid profile id"
	ErrMsgInvalidSkill          = "Unknown skill"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgStorageUnavailable     = "Profile storage is temporarily unavailable. Please try again."
	ErrMsgProfileNotFoundError   = "Profile not found"
	ErrMsgNoActiveProfileError   = "No active profile. Select a profile first."
	ErrMsgInvalidNameError       = "Profile names must be 1 to 20 characters"
	ErrMsgDuplicateNameError     = "You already have a profile with that name"
	ErrMsgProfileLimitError      = "You already have the maximum number of profiles"
	ErrMsgUnknownSkillError      = "Unknown skill"
	ErrMsgUnknownStatError       = "Unknown stat"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgNodeNotFoundError      = "Skill tree node not found"
	ErrMsgNodeNotEligibleError   = "Prerequisites for that node are not met"
	ErrMsgInsufficientTokensErr  = "Not enough tokens"
	ErrMsgNodeMaxLevelError      = "That node is already at max level"
	ErrMsgTierNotFoundError      = "Reward tier not found"
	ErrMsgTierLockedError        = "That reward tier is still locked"
	ErrMsgTierCompleteError      = "You have already made every selection for that tier"
	ErrMsgRewardNotFoundError    = "Reward not found"
	ErrMsgRewardAlreadyClaimedEr = "You already claimed that reward"
)

// Success messages
const (
	MsgProfileDeleted     = "Profile deleted"
	MsgActiveProfileClear = "Active profile cleared"
	MsgStatUpdated        = "Stat updated"
	MsgLocationUpdated    = "Location updated"
	MsgInventoryUpdated   = "Inventory updated"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	LogMsgReadinessFailed   = "Readiness check failed"
)

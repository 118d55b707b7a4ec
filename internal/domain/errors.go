package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgProfileNotFound      = "profile not found"
	ErrMsgNoActiveProfile      = "no active profile"
	ErrMsgInvalidProfileName   = "invalid profile name"
	ErrMsgDuplicateProfileName = "profile name already in use"
	ErrMsgProfileLimitReached  = "profile limit reached"

	// Skill errors
	ErrMsgUnknownSkill = "unknown skill"
	ErrMsgUnknownStat  = "unknown stat"

	// Graph tree errors
	ErrMsgNodeNotFound       = "skill tree node not found"
	ErrMsgNodeNotEligible    = "skill tree node not eligible"
	ErrMsgInsufficientTokens = "insufficient tokens"
	ErrMsgNodeMaxLevel       = "skill tree node already at max level"

	// Reward tree errors
	ErrMsgTierNotFound         = "reward tier not found"
	ErrMsgTierLocked           = "reward tier is locked"
	ErrMsgTierComplete         = "reward tier already complete"
	ErrMsgRewardNotFound       = "reward not found"
	ErrMsgRewardAlreadyClaimed = "reward already claimed"

	// Storage errors
	ErrMsgPersistence = "persistence failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Profile errors
	ErrProfileNotFound      = errors.New(ErrMsgProfileNotFound)
	ErrNoActiveProfile      = errors.New(ErrMsgNoActiveProfile)
	ErrInvalidProfileName   = errors.New(ErrMsgInvalidProfileName)
	ErrDuplicateProfileName = errors.New(ErrMsgDuplicateProfileName)
	ErrProfileLimitReached  = errors.New(ErrMsgProfileLimitReached)

	// Skill errors
	ErrUnknownSkill = errors.New(ErrMsgUnknownSkill)
	ErrUnknownStat  = errors.New(ErrMsgUnknownStat)

	// Graph tree errors
	ErrNodeNotFound       = errors.New(ErrMsgNodeNotFound)
	ErrNodeNotEligible    = errors.New(ErrMsgNodeNotEligible)
	ErrInsufficientTokens = errors.New(ErrMsgInsufficientTokens)
	ErrNodeMaxLevel       = errors.New(ErrMsgNodeMaxLevel)

	// Reward tree errors
	ErrTierNotFound         = errors.New(ErrMsgTierNotFound)
	ErrTierLocked           = errors.New(ErrMsgTierLocked)
	ErrTierComplete         = errors.New(ErrMsgTierComplete)
	ErrRewardNotFound       = errors.New(ErrMsgRewardNotFound)
	ErrRewardAlreadyClaimed = errors.New(ErrMsgRewardAlreadyClaimed)

	// Storage errors
	ErrPersistence = errors.New(ErrMsgPersistence)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

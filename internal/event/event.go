package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/skillforge/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version    string         `json:"version"`
	Type       Type           `json:"type"`
	OwnerID    uuid.UUID      `json:"owner_id"`
	ProfileID  uuid.UUID      `json:"profile_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    interface{}    `json:"payload"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Progression event types
const (
	ProfileCreated   Type = "profile.created"
	ProfileDeleted   Type = "profile.deleted"
	ProfileActivated Type = "profile.activated"

	SkillXPGained Type = "skill.xp_gained"
	SkillLevelUp  Type = "skill.level_up"
	TokensGranted Type = "skill.tokens_granted"

	TreeNodeUpgraded Type = "tree.node_upgraded"
	TreeReset        Type = "tree.reset"

	RewardClaimed    Type = "reward.claimed"
	RewardTreesReset Type = "reward.reset"
)

// AllTypes lists every event type published by the profile manager.
func AllTypes() []Type {
	return []Type{
		ProfileCreated, ProfileDeleted, ProfileActivated,
		SkillXPGained, SkillLevelUp, TokensGranted,
		TreeNodeUpgraded, TreeReset,
		RewardClaimed, RewardTreesReset,
	}
}

// Typed event payloads

// ProfilePayloadV1 is the payload for profile lifecycle events
type ProfilePayloadV1 struct {
	Name string `json:"name"`
}

// XPGainedPayloadV1 is the payload for skill XP events
type XPGainedPayloadV1 struct {
	Skill     domain.Skill `json:"skill"`
	Amount    int64        `json:"amount"`
	NewLevel  int          `json:"new_level"`
	CurrentXP int64        `json:"current_xp"`
}

// LevelUpPayloadV1 is the payload for skill level up events
type LevelUpPayloadV1 struct {
	Skill    domain.Skill `json:"skill"`
	OldLevel int          `json:"old_level"`
	NewLevel int          `json:"new_level"`
}

// TokensGrantedPayloadV1 is the payload for token grant events
type TokensGrantedPayloadV1 struct {
	Skill  domain.Skill             `json:"skill"`
	Tokens map[domain.TokenTier]int `json:"tokens"`
}

// NodeUpgradedPayloadV1 is the payload for graph tree upgrades
type NodeUpgradedPayloadV1 struct {
	Skill    domain.Skill             `json:"skill"`
	NodeID   string                   `json:"node_id"`
	NewLevel int                      `json:"new_level"`
	Cost     int                      `json:"cost"`
	Debited  map[domain.TokenTier]int `json:"debited"`
}

// TreeResetPayloadV1 is the payload for graph tree resets
type TreeResetPayloadV1 struct {
	Skill      domain.Skill             `json:"skill"`
	NodesReset int                      `json:"nodes_reset"`
	Refunded   map[domain.TokenTier]int `json:"refunded"`
}

// RewardClaimedPayloadV1 is the payload for reward tier claims
type RewardClaimedPayloadV1 struct {
	Skill    domain.Skill `json:"skill"`
	Tier     int          `json:"tier"`
	RewardID string       `json:"reward_id"`
}

// RewardResetPayloadV1 is the payload for clearing reward claims
type RewardResetPayloadV1 struct {
	Cleared int `json:"cleared"`
}

// New stamps an event with the schema version and the current time.
func New(eventType Type, ownerID, profileID uuid.UUID, payload interface{}) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       eventType,
		OwnerID:    ownerID,
		ProfileID:  profileID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(ownerID, profileID uuid.UUID, skill domain.Skill, oldLevel, newLevel int) Event {
	return New(SkillLevelUp, ownerID, profileID, LevelUpPayloadV1{
		Skill:    skill,
		OldLevel: oldLevel,
		NewLevel: newLevel,
	})
}

// NewNodeUpgradedEvent creates a node upgrade event
func NewNodeUpgradedEvent(ownerID, profileID uuid.UUID, skill domain.Skill, nodeID string, newLevel, cost int, debited map[domain.TokenTier]int) Event {
	return New(TreeNodeUpgraded, ownerID, profileID, NodeUpgradedPayloadV1{
		Skill:    skill,
		NodeID:   nodeID,
		NewLevel: newLevel,
		Cost:     cost,
		Debited:  debited,
	})
}

// NewRewardClaimedEvent creates a reward claim event
func NewRewardClaimedEvent(ownerID, profileID uuid.UUID, skill domain.Skill, tier int, rewardID string) Event {
	return New(RewardClaimed, ownerID, profileID, RewardClaimedPayloadV1{
		Skill:    skill,
		Tier:     tier,
		RewardID: rewardID,
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the write side of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously in
// subscription order; every handler runs even when an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

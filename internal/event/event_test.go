package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	owner, profile := uuid.New(), uuid.New()
	var got Event

	bus.Subscribe(SkillLevelUp, func(ctx context.Context, evt Event) error {
		got = evt
		return nil
	})

	err := bus.Publish(context.Background(), NewLevelUpEvent(owner, profile, domain.SkillMining, 1, 2))
	require.NoError(t, err)

	assert.Equal(t, SkillLevelUp, got.Type)
	assert.Equal(t, EventSchemaVersion, got.Version)
	assert.Equal(t, owner, got.OwnerID)
	assert.Equal(t, profile, got.ProfileID)
	payload, ok := got.Payload.(LevelUpPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 2, payload.NewLevel)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}

	bus.Subscribe(TreeReset, handler)
	bus.Subscribe(TreeReset, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: TreeReset}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: RewardClaimed}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	second := false

	bus.Subscribe(ProfileCreated, func(ctx context.Context, evt Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(ProfileCreated, func(ctx context.Context, evt Event) error {
		second = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: ProfileCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, second, "later handlers still run")
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload", func(t *testing.T) {
		in := RewardClaimedPayloadV1{Skill: domain.SkillFishing, Tier: 2, RewardID: "fishing_t2_a"}
		out, err := DecodePayload[RewardClaimedPayloadV1](in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("map payload from json", func(t *testing.T) {
		in := map[string]interface{}{"skill": "fishing", "tier": 2, "reward_id": "fishing_t2_a"}
		out, err := DecodePayload[RewardClaimedPayloadV1](in)
		require.NoError(t, err)
		assert.Equal(t, domain.SkillFishing, out.Skill)
		assert.Equal(t, "fishing_t2_a", out.RewardID)
	})

	t.Run("pointer payload", func(t *testing.T) {
		in := &RewardClaimedPayloadV1{Skill: domain.SkillMining, Tier: 1, RewardID: "mining_t1_a"}
		out, err := DecodePayload[RewardClaimedPayloadV1](in)
		require.NoError(t, err)
		assert.Equal(t, *in, out)
	})

	t.Run("raw json from dead letter", func(t *testing.T) {
		raw := json.RawMessage(`{"skill":"combat","tier":3,"reward_id":"combat_t3_b"}`)
		out, err := DecodePayload[RewardClaimedPayloadV1](raw)
		require.NoError(t, err)
		assert.Equal(t, domain.SkillCombat, out.Skill)
		assert.Equal(t, 3, out.Tier)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodePayload[RewardClaimedPayloadV1](json.RawMessage(`{"tier":`))
		assert.Error(t, err)
	})
}

func TestCalculateRetryDelay(t *testing.T) {
	base := RetryInitialDelay
	assert.Equal(t, base, CalculateRetryDelay(base, 1))
	assert.Equal(t, 2*base, CalculateRetryDelay(base, 2))
	assert.Equal(t, 16*base, CalculateRetryDelay(base, 5))
	assert.Equal(t, base, CalculateRetryDelay(base, 0))
}

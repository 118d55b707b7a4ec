package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/testing/leaktest"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func register(t *testing.T, hub *Hub, owner uuid.UUID, types ...string) *Client {
	t.Helper()
	want := hub.ClientCount() + 1
	client, ok := hub.Register(owner, types)
	require.True(t, ok)
	require.Eventually(t, func() bool { return hub.ClientCount() == want }, time.Second, time.Millisecond)
	return client
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_ScopesEventsToOwner(t *testing.T) {
	hub := startHub(t)
	alice, bob := uuid.New(), uuid.New()
	ac := register(t, hub, alice)
	bc := register(t, hub, bob)

	hub.Broadcast(Event{Type: "skill.level_up", OwnerID: alice})
	hub.Broadcast(Event{Type: "skill.xp_gained", OwnerID: bob})

	got := receive(t, ac)
	assert.Equal(t, "skill.level_up", got.Type)
	assert.NotEmpty(t, got.ID)
	assert.NotZero(t, got.Timestamp)

	// bob's first event is his own, so alice's was never queued for him
	assert.Equal(t, "skill.xp_gained", receive(t, bc).Type)
}

func TestHub_TypeFilter(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()
	c := register(t, hub, owner, "reward.claimed")

	hub.Broadcast(Event{Type: "skill.xp_gained", OwnerID: owner})
	hub.Broadcast(Event{Type: "reward.claimed", OwnerID: owner})

	assert.Equal(t, "reward.claimed", receive(t, c).Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := register(t, hub, uuid.New())

	hub.Unregister(c.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, time.Millisecond)
	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestHub_Stop(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		c := register(t, hub, uuid.New())

		hub.Stop()
		hub.Stop()

		_, open := <-c.EventChannel
		assert.False(t, open)
		assert.Zero(t, hub.ClientCount())

		_, ok := hub.Register(uuid.New(), nil)
		assert.False(t, ok)
		hub.Unregister(c.ID)
		hub.Broadcast(Event{Type: "after.stop"})
	})
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "tree.reset", Payload: map[string]int{"nodes_reset": 2}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: tree.reset\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "}\n\n"))
	assert.Contains(t, s, `"nodes_reset":2`)
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	owner, profileID := uuid.New(), uuid.New()
	c := register(t, hub, owner)

	for _, typ := range event.AllTypes() {
		require.NoError(t, bus.Publish(context.Background(), event.New(typ, owner, profileID, nil)))
		got := receive(t, c)
		assert.Equal(t, string(typ), got.Type)
		assert.Equal(t, profileID, got.ProfileID)
	}
}

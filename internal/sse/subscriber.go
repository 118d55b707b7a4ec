package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/skillforge/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe forwards every progression event type to the hub
func (s *Subscriber) Subscribe() {
	types := event.AllTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(Event{
		Type:      string(evt.Type),
		OwnerID:   evt.OwnerID,
		ProfileID: evt.ProfileID,
		Timestamp: evt.OccurredAt.Unix(),
		Payload:   evt.Payload,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "owner_id", evt.OwnerID)
	return nil
}

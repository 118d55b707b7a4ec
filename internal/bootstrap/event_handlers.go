package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/logger"
	"github.com/osse101/skillforge/internal/metrics"
	"github.com/osse101/skillforge/internal/sse"
)

// RegisterEventHandlers subscribes the Prometheus event collector and an audit
// logger that records every profile event at debug level.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes() {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditRegistered, "types", len(event.AllTypes()))
}

func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventAudit,
		"event_type", evt.Type,
		"owner_id", evt.OwnerID,
		"profile_id", evt.ProfileID)
	return nil
}

// InitializeEventStream starts the SSE hub and forwards every profile event
// on bus to it.
func InitializeEventStream(bus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()
	return hub
}

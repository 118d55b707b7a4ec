package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/event"
	"github.com/osse101/skillforge/internal/logger"
)

// EventMetricsCollector subscribes to progression events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the profile manager publishes
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Malformed payloads are counted
// as handler errors but never fail the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case event.ProfileCreated, event.ProfileDeleted, event.ProfileActivated:
		ProfileLifecycle.WithLabelValues(string(evt.Type)).Inc()

	case event.SkillXPGained:
		p, err := event.DecodePayload[event.XPGainedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		XPAwarded.WithLabelValues(p.Skill.String()).Add(float64(p.Amount))

	case event.SkillLevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		if gained := p.NewLevel - p.OldLevel; gained > 0 {
			LevelsGained.WithLabelValues(p.Skill.String()).Add(float64(gained))
		}

	case event.TokensGranted:
		p, err := event.DecodePayload[event.TokensGrantedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		addTokens(TokensGranted, p.Skill, p.Tokens)

	case event.TreeNodeUpgraded:
		p, err := event.DecodePayload[event.NodeUpgradedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		NodeUpgrades.WithLabelValues(p.Skill.String()).Inc()
		addTokens(TokensSpent, p.Skill, p.Debited)

	case event.TreeReset:
		p, err := event.DecodePayload[event.TreeResetPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		TreeResets.WithLabelValues(p.Skill.String()).Inc()
		addTokens(TokensRefunded, p.Skill, p.Refunded)

	case event.RewardClaimed:
		p, err := event.DecodePayload[event.RewardClaimedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		RewardClaims.WithLabelValues(p.Skill.String(), strconv.Itoa(p.Tier)).Inc()

	case event.RewardTreesReset:
		RewardResets.Inc()
	}
	return nil
}

func addTokens(vec *prometheus.CounterVec, skill domain.Skill, tokens map[domain.TokenTier]int) {
	for tier, n := range tokens {
		if n > 0 {
			vec.WithLabelValues(skill.String(), tier.String()).Add(float64(n))
		}
	}
}

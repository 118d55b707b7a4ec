package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelSkill},
	)

	LevelsGained = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelsGained,
			Help: HelpTextLevelsGained,
		},
		[]string{LabelSkill},
	)

	TokensGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensGranted,
			Help: HelpTextTokensGranted,
		},
		[]string{LabelSkill, LabelTier},
	)

	TokensSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensSpent,
			Help: HelpTextTokensSpent,
		},
		[]string{LabelSkill, LabelTier},
	)

	TokensRefunded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokensRefunded,
			Help: HelpTextTokensRefunded,
		},
		[]string{LabelSkill, LabelTier},
	)

	NodeUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNodeUpgrades,
			Help: HelpTextNodeUpgrades,
		},
		[]string{LabelSkill},
	)

	TreeResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreeResets,
			Help: HelpTextTreeResets,
		},
		[]string{LabelSkill},
	)

	RewardClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardClaims,
			Help: HelpTextRewardClaims,
		},
		[]string{LabelSkill, LabelTier},
	)

	RewardResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardResets,
			Help: HelpTextRewardResets,
		},
	)
)

// Profile Metrics
var (
	ProfileLifecycle = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileLifecycle,
			Help: HelpTextProfileLifecycle,
		},
		[]string{LabelType},
	)

	ActiveProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveProfiles,
			Help: HelpTextActiveProfiles,
		},
	)

	ProfileCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheLookup,
			Help: HelpTextProfileCacheLookup,
		},
		[]string{LabelResult},
	)

	RepositoryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRepositoryErrors,
			Help: HelpTextRepositoryErrors,
		},
		[]string{LabelOperation},
	)

	PlaytimeTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlaytimeTicks,
			Help: HelpTextPlaytimeTicks,
		},
		[]string{LabelResult},
	)
)

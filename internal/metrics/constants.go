package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameXPAwarded      = "skill_xp_awarded_total"
	MetricNameLevelsGained   = "skill_levels_gained_total"
	MetricNameTokensGranted  = "skill_tokens_granted_total"
	MetricNameTokensSpent    = "skill_tokens_spent_total"
	MetricNameTokensRefunded = "skill_tokens_refunded_total"
	MetricNameNodeUpgrades   = "skill_tree_node_upgrades_total"
	MetricNameTreeResets     = "skill_tree_resets_total"
	MetricNameRewardClaims   = "reward_tree_claims_total"
	MetricNameRewardResets   = "reward_tree_resets_total"
)

// Profile metric names
const (
	MetricNameProfileLifecycle   = "profile_lifecycle_total"
	MetricNameActiveProfiles     = "profiles_active"
	MetricNameProfileCacheLookup = "profile_cache_lookups_total"
	MetricNameRepositoryErrors   = "profile_repository_errors_total"
	MetricNamePlaytimeTicks      = "profile_playtime_ticks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Progression metric help text
const (
	HelpTextXPAwarded      = "Total skill XP awarded"
	HelpTextLevelsGained   = "Total skill levels gained"
	HelpTextTokensGranted  = "Total skill tokens granted by level milestones"
	HelpTextTokensSpent    = "Total skill tokens spent on tree upgrades"
	HelpTextTokensRefunded = "Total skill tokens refunded by tree resets"
	HelpTextNodeUpgrades   = "Total skill tree node upgrades"
	HelpTextTreeResets     = "Total skill tree resets"
	HelpTextRewardClaims   = "Total reward tier claims"
	HelpTextRewardResets   = "Total reward tree resets"
)

// Profile metric help text
const (
	HelpTextProfileLifecycle   = "Total profile lifecycle transitions"
	HelpTextActiveProfiles     = "Number of owners with an active profile"
	HelpTextProfileCacheLookup = "Profile cache lookups by result"
	HelpTextRepositoryErrors   = "Total profile repository failures by operation"
	HelpTextPlaytimeTicks      = "Total playtime accrual ticks processed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSkill     = "skill"
	LabelTier      = "tier"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// Label values
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultOK      = "ok"
	ResultError   = "error"
	ResultDropped = "dropped"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)

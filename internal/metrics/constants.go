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

// Scoring metric names
const (
	MetricNameAggregationDuration    = "scoring_aggregation_duration_seconds"
	MetricNameMaterializationsTotal  = "materializations_total"
	MetricNameMaterializedRows       = "materialized_rows"
	MetricNamePriceRecomputesTotal   = "price_recomputes_total"
	MetricNameStandingsCacheRequests = "standings_cache_requests_total"
	MetricNameOutcomesRecorded       = "outcomes_recorded_total"
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

// Scoring metric help text
const (
	HelpTextAggregationDuration    = "Time spent rebuilding season standings in seconds"
	HelpTextMaterializationsTotal  = "Total number of episode materializations"
	HelpTextMaterializedRows       = "Canonical rows written by the last materialization of an episode"
	HelpTextPriceRecomputesTotal   = "Total number of price series recomputations"
	HelpTextStandingsCacheRequests = "Standings cache lookups by result"
	HelpTextOutcomesRecorded       = "Total number of episode outcomes recorded"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelResult  = "result"
	LabelEpisode = "episode"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// Histogram buckets
var (
	// HTTPLatencyBuckets for HTTP request duration (in seconds)
	HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

	// AggregationBuckets for standings rebuilds (in seconds)
	AggregationBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgEventPayloadInvalid = "Event payload could not be decoded for metrics"
)

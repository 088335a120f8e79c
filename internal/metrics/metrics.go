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

// Scoring Metrics
var (
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAggregationDuration,
			Help:    HelpTextAggregationDuration,
			Buckets: AggregationBuckets,
		},
	)

	MaterializationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMaterializationsTotal,
			Help: HelpTextMaterializationsTotal,
		},
		[]string{LabelResult},
	)

	MaterializedRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameMaterializedRows,
			Help: HelpTextMaterializedRows,
		},
		[]string{LabelEpisode},
	)

	PriceRecomputesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceRecomputesTotal,
			Help: HelpTextPriceRecomputesTotal,
		},
		[]string{LabelResult},
	)

	StandingsCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStandingsCacheRequests,
			Help: HelpTextStandingsCacheRequests,
		},
		[]string{LabelResult},
	)

	OutcomesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOutcomesRecorded,
			Help: HelpTextOutcomesRecorded,
		},
	)
)

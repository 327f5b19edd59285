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

// Business Metrics
var (
	LootLinesAppraised = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootLinesAppraised,
			Help: HelpTextLootLinesAppraised,
		},
	)

	ItemsAppraised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAppraised,
			Help: HelpTextItemsAppraised,
		},
		[]string{LabelCategory},
	)

	LookupMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLookupMisses,
			Help: HelpTextLookupMisses,
		},
	)
)

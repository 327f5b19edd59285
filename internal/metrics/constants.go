package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "lootledger_http_requests_total"
	MetricNameHTTPRequestDuration  = "lootledger_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "lootledger_http_requests_in_flight"

	MetricNameLootLinesAppraised = "lootledger_loot_lines_appraised_total"
	MetricNameItemsAppraised     = "lootledger_items_appraised_total"
	MetricNameLookupMisses       = "lootledger_lookup_misses_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextLootLinesAppraised = "Total number of loot lines priced"
	HelpTextItemsAppraised     = "Total number of single-item appraisals"
	HelpTextLookupMisses       = "Total number of item names with no catalog match"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
)

// HTTPLatencyBuckets covers the expected in-memory lookup latencies.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

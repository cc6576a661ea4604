package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal tracks handled requests by route pattern, method and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"route", "method"},
	)
)

// Import Metrics
var (
	// RoundImportsTotal tracks round imports by source (json/workbook) and result
	RoundImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "round_imports_total",
			Help: "Total round imports by source and result",
		},
		[]string{"source", "result"},
	)

	// TeamsCreatedTotal tracks teams created while importing rounds
	TeamsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "teams_created_total",
			Help: "Total teams created by round imports",
		},
	)

	// WorkbookDefaultedCells tracks cells substituted with zero per parsed workbook
	WorkbookDefaultedCells = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "workbook_defaulted_cells",
			Help:    "Number of workbook cells defaulted to zero per parse",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// Package metrics defines the Prometheus instruments for job ingestion and resume tailoring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	JobIngests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tailor_job_ingests_total",
			Help: "Total number of job postings ingested",
		},
		[]string{"outcome"},
	)

	Previews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tailor_previews_total",
			Help: "Total number of tailored resume previews",
		},
		[]string{"outcome"},
	)

	PreviewDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tailor_preview_duration_seconds",
			Help:    "Duration of tailored resume generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	MatchedSkills = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tailor_job_matched_skills",
			Help:    "Number of catalog skills matched per job posting",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 35, 50},
		},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tailor_catalog_cache_lookups_total",
			Help: "Skill catalog cache lookups by result",
		},
		[]string{"result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tailor_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)
)

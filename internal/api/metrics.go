package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diagnostico_leads_received_total",
			Help: "Total number of lead submissions received",
		},
	)

	leadsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diagnostico_leads_rejected_total",
			Help: "Total number of lead submissions rejected by validation",
		},
	)

	persistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diagnostico_lead_persist_failures_total",
			Help: "Total number of failed lead database writes",
		},
	)

	taggingSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diagnostico_tagging_skipped_total",
			Help: "Total number of tag subscribes skipped for missing credentials",
		},
	)

	taggingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diagnostico_tagging_failures_total",
			Help: "Total number of failed tag subscribe calls",
		},
	)
)

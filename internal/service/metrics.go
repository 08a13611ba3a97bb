package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "lifecycle",
		Name:      "order_transitions_total",
		Help:      "Order status transition attempts by outcome.",
	}, []string{"from", "to", "result"})

	enrichmentFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "enrichment",
		Name:      "fallbacks_total",
		Help:      "Orders rendered with placeholder data, by lookup source.",
	}, []string{"source"})

	lookupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "enrichment",
		Name:      "lookup_failures_total",
		Help:      "Failed or timed out batch lookups, by lookup source.",
	}, []string{"source"})

	lookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "order_service",
		Subsystem: "enrichment",
		Name:      "lookup_duration_seconds",
		Help:      "Directory and catalog batch lookup latencies.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})
)

// Package metrics Prometheus 指标，通过 /metrics 暴露
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "club"

var (
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Cache-aside lookups by key and result (hit or miss).",
	}, []string{"key", "result"})

	FallbackServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallback_served_total",
		Help:      "Responses served from the built-in sample catalog.",
	}, []string{"kind"})

	SideEffectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "side_effect_failures_total",
		Help:      "Suppressed failures of best-effort side effects.",
	}, []string{"op"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"route", "status"})
)

const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	OpCachePut      = "cache_put"
	OpViewIncrement = "view_increment"
)

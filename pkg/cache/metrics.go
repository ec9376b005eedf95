package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pharmacy",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by backend and result.",
	}, []string{"backend", "result"})

	evictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pharmacy",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries dropped from the in-memory cache by reason.",
	}, []string{"reason"})
)

func observeLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	lookups.WithLabelValues(backend, result).Inc()
}

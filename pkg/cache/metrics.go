package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

type StatsProvider interface {
	Stats() Stats
}

// RegisterMetrics exposes the cache counters. backend is "memory" or "redis".
func RegisterMetrics(backend string, c StatsProvider) {
	labels := prometheus.Labels{"backend": backend}
	opts := func(name, help string) prometheus.Opts {
		return prometheus.Opts{
			Namespace:   "furniture_resale",
			Subsystem:   "cache",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		}
	}

	prometheus.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts(opts("hits_total", "Total number of cache hits")),
			func() float64 { return float64(c.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts(opts("misses_total", "Total number of cache misses")),
			func() float64 { return float64(c.Stats().Misses) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts(opts("evictions_total", "Total number of entries evicted over capacity")),
			func() float64 { return float64(c.Stats().Evictions) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts("entries", "Current number of cached entries")),
			func() float64 { return float64(c.Stats().Size) }),
	)
}

package cache

import "github.com/prometheus/client_golang/prometheus"

// NewSizeGauge отдаёт текущее число записей кэша при каждом сборе метрик
func NewSizeGauge(c *LRUCache) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "order_service",
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Current number of orders held in the cache.",
	}, func() float64 {
		return float64(c.Size())
	})
}

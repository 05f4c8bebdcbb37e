package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pavelaverin/linksight/internal/store"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linksight_http_requests_total",
		Help: "API requests by route and status code.",
	}, []string{"route", "status"})

	rebuildTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linksight_pipeline_rebuilds_total",
		Help: "Completed pipeline rebuilds.",
	})

	rebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linksight_pipeline_rebuild_seconds",
		Help:    "Wall time of one load+classify+index run.",
		Buckets: prometheus.DefBuckets,
	})

	storeRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linksight_store_records",
		Help: "Records in the current store by entity kind.",
	}, []string{"kind"})
)

// ObserveRebuild records one completed pipeline run and the resulting store
// size.
func ObserveRebuild(s *store.Store, took time.Duration) {
	rebuildTotal.Inc()
	rebuildDuration.Observe(took.Seconds())
	storeRecords.WithLabelValues("connections").Set(float64(len(s.Connections)))
	storeRecords.WithLabelValues("posts").Set(float64(len(s.Posts)))
	storeRecords.WithLabelValues("comments").Set(float64(len(s.Comments)))
	storeRecords.WithLabelValues("reactions").Set(float64(len(s.Reactions)))
}

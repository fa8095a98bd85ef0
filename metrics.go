package ntree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	indexLabel   = "index"
	errTypeLabel = "error_type"
)

var (
	ntreePoints = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ntree_points",
		Help: "The number of points stored in an index.",
	}, []string{indexLabel})

	ntreeDivisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntree_divisions_total",
		Help: "The number of leaves divided into children.",
	}, []string{indexLabel})

	ntreeInsertErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntree_insert_errors_total",
		Help: "The errors that occurred while inserting a point.",
	}, []string{
		indexLabel,
		errTypeLabel,
	})

	ntreeBoxCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntree_box_cache_hits_total",
		Help: "The number of box queries answered from the result cache.",
	}, []string{indexLabel})

	ntreeBoxCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntree_box_cache_misses_total",
		Help: "The number of box queries computed by walking the tree.",
	}, []string{indexLabel})
)

func instrumentPoints(index string, count uint64) {
	ntreePoints.
		With(prometheus.Labels{indexLabel: index}).
		Set(float64(count))
}

func instrumentDivision(index string) {
	ntreeDivisions.
		With(prometheus.Labels{indexLabel: index}).
		Inc()
}

func instrumentInsertError(index string, err error) {
	ntreeInsertErrors.
		With(prometheus.Labels{
			indexLabel:   index,
			errTypeLabel: errors.Type(err),
		}).
		Inc()
}

func instrumentBoxCacheHit(index string) {
	ntreeBoxCacheHits.
		With(prometheus.Labels{indexLabel: index}).
		Inc()
}

func instrumentBoxCacheMiss(index string) {
	ntreeBoxCacheMisses.
		With(prometheus.Labels{indexLabel: index}).
		Inc()
}

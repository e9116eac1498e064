// Package metrics exports Prometheus collectors for path searches.
//
// A Recorder implements mhastar.Observer, so wiring it is a single option:
//
//	rec := metrics.NewRecorder(reg)
//	res, err := mhastar.Search(ctx, g, s, t, mhastar.WithObserver(rec))
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/mhastar"
)

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeLimit    = "limit"
	OutcomeInvalid  = "invalid"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

// Recorder groups the search collectors. The zero value is not usable; use
// NewRecorder.
type Recorder struct {
	searches   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	expansions *prometheus.HistogramVec
	pathLength prometheus.Histogram
	lane       *prometheus.CounterVec
}

// NewRecorder registers the collectors with reg. A nil reg registers with
// prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total path searches by mode and outcome",
		}, []string{"mode", "outcome"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}, []string{"mode"}),

		expansions: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_expansions",
			Help:    "Cells expanded per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"mode"}),

		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length_cells",
			Help:    "Number of cells in returned paths",
			Buckets: []float64{2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		lane: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_finishing_lane_total",
			Help: "Successful searches by the heuristic of the lane that reached the goal",
		}, []string{"heuristic"}),
	}
}

// ObserveSearch implements mhastar.Observer.
func (r *Recorder) ObserveSearch(mode mhastar.Mode, res *mhastar.Result, err error, elapsed time.Duration) {
	m := string(mode)
	r.searches.WithLabelValues(m, Outcome(err)).Inc()
	r.duration.WithLabelValues(m).Observe(elapsed.Seconds())
	if err != nil || res == nil {
		return
	}
	r.expansions.WithLabelValues(m).Observe(float64(res.Expansions))
	r.pathLength.Observe(float64(len(res.Path)))
	r.lane.WithLabelValues(res.Heuristic.String()).Inc()
}

// Outcome classifies a search error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, mhastar.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, mhastar.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, mhastar.ErrInvalidConfiguration):
		return OutcomeInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

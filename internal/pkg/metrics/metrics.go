// Package metrics exposes Prometheus counters for the timetable pages and
// lookups.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts page renders and timetable lookups.
type Recorder struct {
	pageViews *prometheus.CounterVec
	lookups   *prometheus.CounterVec
}

// NewRecorder registers the timetable metrics on the provided registerer.
// If reg is nil, the default registerer is used. Collectors that are already
// registered are reused so tests can build several recorders.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	pageViews := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_page_views_total",
		Help: "Total number of HTML pages rendered",
	}, []string{"page"})
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_lookups_total",
		Help: "Total number of schedule lookups",
	}, []string{"kind", "result"})

	if err := reg.Register(pageViews); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			pageViews = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(lookups); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			lookups = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &Recorder{pageViews: pageViews, lookups: lookups}, nil
}

// RecordPageView increments the render counter for a page.
func (r *Recorder) RecordPageView(page string) {
	r.pageViews.WithLabelValues(page).Inc()
}

// RecordLookup increments the lookup counter for a class or teacher lookup.
func (r *Recorder) RecordLookup(kind string, found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	r.lookups.WithLabelValues(kind, result).Inc()
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/aocsearch/astar"
)

const namespace = "aocsearch"

// SearchObserver counts search work for one puzzle.
type SearchObserver struct {
	registry *prometheus.Registry

	expanded prometheus.Counter
	pushed   prometheus.Counter
	stale    prometheus.Counter
	searches *prometheus.CounterVec
	cost     prometheus.Histogram
}

var _ astar.Observer = (*SearchObserver)(nil)

// NewSearchObserver registers a fresh set of collectors labelled with puzzle.
func NewSearchObserver(puzzle string) *SearchObserver {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	labels := prometheus.Labels{"puzzle": puzzle}

	return &SearchObserver{
		registry: reg,
		expanded: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "states_expanded_total",
			Help:        "States whose neighbors were generated.",
			ConstLabels: labels,
		}),
		pushed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "states_pushed_total",
			Help:        "Frontier insertions, including start states.",
			ConstLabels: labels,
		}),
		stale: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "stale_entries_total",
			Help:        "Frontier entries discarded because a cheaper route was already known.",
			ConstLabels: labels,
		}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "searches_total",
			Help:        "Finished searches by outcome.",
			ConstLabels: labels,
		}, []string{"result"}),
		cost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "solution_cost",
			Help:        "Total cost of solved searches.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
	}
}

func (o *SearchObserver) Expanded() { o.expanded.Inc() }
func (o *SearchObserver) Pushed()   { o.pushed.Inc() }
func (o *SearchObserver) Stale()    { o.stale.Inc() }

// Finished records the outcome and, for solved searches, the total cost.
func (o *SearchObserver) Finished(found bool, total float64) {
	if !found {
		o.searches.WithLabelValues("not_found").Inc()
		return
	}
	o.searches.WithLabelValues("found").Inc()
	o.cost.Observe(total)
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (o *SearchObserver) Registry() *prometheus.Registry { return o.registry }

// WriteText dumps every collected metric in the Prometheus text format.
func (o *SearchObserver) WriteText(w io.Writer) error {
	families, err := o.registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("telemetry: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

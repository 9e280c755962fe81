package pipeline

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports state graph activity as prometheus collectors. A nil
// *Metrics records nothing.
type Metrics struct {
	copyOnWrite      prometheus.Counter
	layerCopyOnWrite prometheus.Counter
	pipelines        prometheus.Gauge
	layers           prometheus.Gauge
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	cacheEvictions   prometheus.Counter
}

// NewMetrics creates unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		copyOnWrite: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipestate",
			Subsystem: "pipeline",
			Name:      "copy_on_write_total",
			Help:      "Pipelines copied so that a pipeline with children could be modified",
		}),
		layerCopyOnWrite: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipestate",
			Subsystem: "pipeline",
			Name:      "layer_copy_on_write_total",
			Help:      "Layers derived because the layer being modified was shared",
		}),
		pipelines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pipestate",
			Subsystem: "pipeline",
			Name:      "pipelines",
			Help:      "Live pipeline nodes",
		}),
		layers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pipestate",
			Subsystem: "pipeline",
			Name:      "layers",
			Help:      "Live layer nodes",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipestate",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Lookups answered with a cached equivalent pipeline",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipestate",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Lookups that inserted a new pipeline",
		}),
		cacheEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipestate",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Cached pipelines dropped to stay under the soft limit",
		}),
	}
}

// Collectors returns every collector of m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.copyOnWrite,
		m.layerCopyOnWrite,
		m.pipelines,
		m.layers,
		m.cacheHits,
		m.cacheMisses,
		m.cacheEvictions,
	}
}

// Register registers every collector of m with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	var errs []error
	for _, c := range m.Collectors() {
		if err := r.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Metrics) pipelineCreated() {
	if m != nil {
		m.pipelines.Inc()
	}
}

func (m *Metrics) pipelineFreed() {
	if m != nil {
		m.pipelines.Dec()
	}
}

func (m *Metrics) layerCreated() {
	if m != nil {
		m.layers.Inc()
	}
}

func (m *Metrics) layerFreed() {
	if m != nil {
		m.layers.Dec()
	}
}

func (m *Metrics) copiedOnWrite() {
	if m != nil {
		m.copyOnWrite.Inc()
	}
}

func (m *Metrics) layerCopiedOnWrite() {
	if m != nil {
		m.layerCopyOnWrite.Inc()
	}
}

func (m *Metrics) cacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

func (m *Metrics) cacheEvicted(n int) {
	if m != nil {
		m.cacheEvictions.Add(float64(n))
	}
}

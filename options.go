package pipestate

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/pipestate/capability"
	"github.com/gogpu/pipestate/driver"
	"github.com/gogpu/pipestate/pipeline"
)

// Option configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Best registered driver, default GL capabilities
//	ctx, err := pipestate.New()
//
//	// A specific driver instance (dependency injection)
//	ctx, err := pipestate.New(pipestate.WithDriver(drv))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	driver      driver.Driver
	driverName  string
	descriptors []capability.Descriptor
	cacheSize   int
	registerer  prometheus.Registerer
	disable     capability.Flags
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		descriptors: capability.GLDescriptors(),
		cacheSize:   pipeline.DefaultCacheSize,
	}
}

// WithDriver sets the driver to probe, bypassing the registry.
func WithDriver(d driver.Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithDriverName selects a registered driver by name instead of the best
// available one.
func WithDriverName(name string) Option {
	return func(o *options) {
		o.driverName = name
	}
}

// WithDescriptors replaces the capability descriptors probed at setup.
// The default is [capability.GLDescriptors].
func WithDescriptors(ds []capability.Descriptor) Option {
	return func(o *options) {
		o.descriptors = ds
	}
}

// WithCacheSize sets the soft limit of the pipeline dedup cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithMetrics registers the state graph metrics with r.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	ctx, err := pipestate.New(pipestate.WithMetrics(reg))
func WithMetrics(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

// WithFeatureOverride disables features after probing, as if the driver
// did not provide them. Useful to exercise fallback paths.
func WithFeatureOverride(disable capability.Flags) Option {
	return func(o *options) {
		o.disable |= disable
	}
}

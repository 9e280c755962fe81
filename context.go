package pipestate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pipestate/capability"
	"github.com/gogpu/pipestate/driver"
	"github.com/gogpu/pipestate/pipeline"
)

// ErrNoDriver is returned by New when no driver was given and none is
// registered.
var ErrNoDriver = errors.New("pipestate: no driver available")

// Context owns one probed driver and the pipeline graph built on top of it.
// A Context is not safe for concurrent use; pipelines belong to the
// goroutine that owns their context.
type Context struct {
	drv     driver.Driver
	table   capability.Table
	metrics *pipeline.Metrics
	root    *pipeline.Pipeline
	cache   *pipeline.Cache

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// New probes a driver and creates the root pipeline.
//
//	// Best registered driver
//	ctx, err := pipestate.New()
//
//	// Pretend the driver has no point sprites
//	ctx, err := pipestate.New(pipestate.WithFeatureOverride(capability.FeaturePointSprite))
func New(opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d, err := resolveDriver(&o)
	if err != nil {
		return nil, err
	}

	c := &Context{drv: d}
	capability.ProbeAll(&c.table, o.descriptors, driver.Capabilities(d))
	c.table.Disable(o.disable)

	if o.registerer != nil {
		c.metrics = pipeline.NewMetrics()
		if err := c.metrics.Register(o.registerer); err != nil {
			return nil, fmt.Errorf("pipestate: register metrics: %w", err)
		}
	}

	c.root = pipeline.NewRoot(pipeline.Env{
		Features: c.table.Flags(),
		Metrics:  c.metrics,
	})
	c.cache = pipeline.NewCache(pipeline.AllSparseCategories|pipeline.AllLayerCategories, o.cacheSize)

	major, minor := d.Version()
	adapter := d.AdapterInfo()
	Logger().Info("pipestate: context created",
		slog.String("driver", d.Name()),
		slog.String("api", d.API().String()),
		slog.String("version", fmt.Sprintf("%d.%d", major, minor)),
		slog.String("adapter", adapter.Name),
		slog.String("adapter_type", adapter.Type.String()),
		slog.String("features", c.table.Flags().String()))

	return c, nil
}

func resolveDriver(o *options) (driver.Driver, error) {
	if o.driver != nil {
		return o.driver, nil
	}
	if o.driverName != "" {
		d, err := driver.Open(o.driverName)
		if err != nil {
			return nil, fmt.Errorf("pipestate: driver %q: %w", o.driverName, err)
		}
		return d, nil
	}
	d := driver.Default()
	if d == nil {
		return nil, ErrNoDriver
	}
	return d, nil
}

// Driver returns the probed driver.
func (c *Context) Driver() driver.Driver { return c.drv }

// Adapter identifies the GPU behind the driver.
func (c *Context) Adapter() gpucontext.AdapterInfo { return c.drv.AdapterInfo() }

// Features returns the public capability flags left after probing and
// overrides.
func (c *Context) Features() capability.Flags { return c.table.Flags() }

// Has reports whether every feature in f is available.
func (c *Context) Has(f capability.Flags) bool { return c.table.Has(f) }

// Table returns the resolved capability table.
func (c *Context) Table() *capability.Table { return &c.table }

// Root returns the root pipeline. It holds the default value of every
// state group and must not be modified once descendants exist.
func (c *Context) Root() *pipeline.Pipeline { return c.root }

// NewPipeline returns a fresh copy of the root pipeline. The caller owns
// the returned reference.
func (c *Context) NewPipeline() *pipeline.Pipeline { return c.root.Copy() }

// Cache returns the pipeline dedup cache.
func (c *Context) Cache() *pipeline.Cache { return c.cache }

// Metrics returns the graph metrics, or nil when WithMetrics was not used.
func (c *Context) Metrics() *pipeline.Metrics { return c.metrics }

// Close releases the cache entries and the context's reference on the root
// pipeline. Pipelines still referenced by the caller stay valid.
// Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.cache.Clear()
	c.root.Unref()
	return nil
}

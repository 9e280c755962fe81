package driver

import (
	"github.com/gogpu/gpucontext"
)

// Factory creates a new driver instance.
type Factory func() Driver

// Well-known driver names, in selection priority order.
const (
	NameGL    = "gl"
	NameGLES2 = "gles2"
	NameGLES1 = "gles1"
	NameNull  = "null"
)

// registry holds registered drivers. Desktop GL is preferred, the null
// driver is the last resort.
var registry = gpucontext.NewRegistry[Driver](
	gpucontext.WithPriority(NameGL, NameGLES2, NameGLES1, NameNull),
)

// Register registers a driver factory with the given name.
// If a driver with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registry.Register(name, factory)
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered driver names.
func Available() []string {
	return registry.Available()
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns a driver instance by name, or nil if it is not registered.
func Get(name string) Driver {
	return registry.Get(name)
}

// Open returns a driver instance by name.
func Open(name string) (Driver, error) {
	d := registry.Get(name)
	if d == nil {
		return nil, ErrNotRegistered
	}
	return d, nil
}

// Default returns the best available driver based on priority, or nil if
// none is registered.
func Default() Driver {
	return registry.Best()
}

// DefaultName returns the name Default would pick.
func DefaultName() string {
	return registry.BestName()
}

// MustDefault returns the default driver or panics.
func MustDefault() Driver {
	d := Default()
	if d == nil {
		panic("driver: no driver available")
	}
	return d
}

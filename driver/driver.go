package driver

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pipestate/capability"
)

// ErrNotRegistered is returned when a requested driver is not registered.
var ErrNotRegistered = errors.New("driver: not registered")

// Driver is the live graphics driver a context probes once at setup.
type Driver interface {
	// Name returns the driver identifier (e.g., "gl", "null").
	Name() string

	// API returns the API family the driver implements.
	API() capability.API

	// Version returns the driver's core version.
	Version() (major, minor int)

	// Extensions returns the space separated extension string.
	Extensions() string

	// ProcAddress resolves an entry point by symbol name.
	ProcAddress(name string) (capability.Proc, bool)

	// AdapterInfo identifies the GPU behind the driver.
	AdapterInfo() gpucontext.AdapterInfo
}

// Capabilities converts d into the form capability probes consume. The
// extension string is parsed once here.
func Capabilities(d Driver) capability.Driver {
	major, minor := d.Version()
	return capability.Driver{
		Prefix:     "GL",
		API:        d.API(),
		Major:      major,
		Minor:      minor,
		Extensions: capability.ParseExtensions(d.Extensions()),
		Resolver:   capability.ResolverFunc(d.ProcAddress),
	}
}

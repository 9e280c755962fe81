package driver

import (
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pipestate/capability"
)

// Static is a Driver described entirely by its fields. Every symbol
// resolves to a stable fake address unless it is listed in Missing.
type Static struct {
	DriverName      string
	DriverAPI       capability.API
	Major, Minor    int
	ExtensionString string
	Missing         []string
	Adapter         gpucontext.AdapterInfo
}

func (s *Static) Name() string                        { return s.DriverName }
func (s *Static) API() capability.API                 { return s.DriverAPI }
func (s *Static) Version() (int, int)                 { return s.Major, s.Minor }
func (s *Static) Extensions() string                  { return s.ExtensionString }
func (s *Static) AdapterInfo() gpucontext.AdapterInfo { return s.Adapter }

// ProcAddress returns a non-zero address derived from name.
func (s *Static) ProcAddress(name string) (capability.Proc, bool) {
	if slices.Contains(s.Missing, name) {
		return 0, false
	}
	return capability.Proc(uintptr(xxhash.Sum64String(name)) | 1), true
}

// Null returns the null driver: GL 2.1 with no extensions on a software
// adapter.
func Null() *Static {
	return &Static{
		DriverName: NameNull,
		DriverAPI:  capability.APIGL,
		Major:      2,
		Minor:      1,
		Adapter: gpucontext.AdapterInfo{
			Name: "null",
			Type: gpucontext.AdapterTypeSoftware,
		},
	}
}

func init() {
	Register(NameNull, func() Driver { return Null() })
}

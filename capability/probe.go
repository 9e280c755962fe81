package capability

import (
	"log/slog"
	"strings"
)

// NoCoreVersion as both MinMajor and MinMinor marks a feature that no core
// GL version provides without an extension.
const NoCoreVersion = 255

// Function names one entry point of a feature and the slot it is stored in.
// Name is the base symbol; the namespace suffix is appended when probing.
type Function struct {
	Name string
	Slot Slot
}

// Descriptor describes one optional driver feature.
type Descriptor struct {
	// Name is used for logging only.
	Name string

	// MinMajor and MinMinor give the first GL version where the feature is
	// core. Use NoCoreVersion for features that are never core.
	MinMajor, MinMinor int

	// GLES lists the GLES APIs where the feature is core.
	GLES API

	// Namespaces are tried in order. A namespace written "ARB:" matches
	// extensions named with "ARB" but resolves functions with the text
	// after the colon as suffix (empty here).
	Namespaces []string

	// ExtensionNames must all be advertised under one namespace.
	ExtensionNames []string

	Feature        Flags
	PrivateFeature PrivateFlags
	Functions      []Function
}

// Driver is what a probe needs to know about the live driver.
type Driver struct {
	// Prefix is the extension prefix, normally "GL".
	Prefix     string
	API        API
	Major      int
	Minor      int
	Extensions Extensions
	Resolver   Resolver
}

func versionAtLeast(major, minor, wantMajor, wantMinor int) bool {
	return major > wantMajor || (major == wantMajor && minor >= wantMinor)
}

// splitNamespace returns the extension label and function suffix of a
// namespace entry.
func splitNamespace(ns string) (label, suffix string) {
	if i := strings.IndexByte(ns, ':'); i >= 0 {
		return ns[:i], ns[i+1:]
	}
	return ns, ns
}

// functionSuffix finds the suffix to append to function names, or reports
// that the feature is unavailable.
func functionSuffix(d *Descriptor, drv Driver) (string, bool) {
	if drv.API == APIGL {
		if d.MinMajor != NoCoreVersion && versionAtLeast(drv.Major, drv.Minor, d.MinMajor, d.MinMinor) {
			return "", true
		}
	} else if d.GLES&drv.API != 0 {
		return "", true
	}

	prefix := drv.Prefix
	if prefix == "" {
		prefix = "GL"
	}
	for _, ns := range d.Namespaces {
		label, suffix := splitNamespace(ns)
		found := true
		for _, name := range d.ExtensionNames {
			if !drv.Extensions.Has(prefix + "_" + label + "_" + name) {
				found = false
				break
			}
		}
		if found {
			return suffix, true
		}
	}
	return "", false
}

// Probe evaluates d against drv. When the feature is available every
// function of d is stored in t and the feature flags are set. When any
// function fails to resolve, every slot of d is reset and false is
// returned, so no partial result is ever visible in t.
func Probe(t *Table, d *Descriptor, drv Driver) bool {
	suffix, ok := functionSuffix(d, drv)
	if !ok {
		slogger().Debug("capability: unavailable", slog.String("feature", d.Name))
		return false
	}

	for _, fn := range d.Functions {
		var addr Proc
		if drv.Resolver != nil {
			addr, ok = drv.Resolver.ProcAddress(fn.Name + suffix)
		}
		if !ok || addr == 0 {
			for _, f := range d.Functions {
				t.procs[f.Slot] = 0
			}
			slogger().Warn("capability: symbol did not resolve",
				slog.String("feature", d.Name),
				slog.String("symbol", fn.Name+suffix))
			return false
		}
		t.procs[fn.Slot] = addr
	}

	t.flags |= d.Feature
	t.private |= d.PrivateFeature
	slogger().Debug("capability: available",
		slog.String("feature", d.Name),
		slog.String("suffix", suffix))
	return true
}

// ProbeAll probes every descriptor in ds and returns the resulting public
// flags of t.
func ProbeAll(t *Table, ds []Descriptor, drv Driver) Flags {
	for i := range ds {
		Probe(t, &ds[i], drv)
	}
	return t.flags
}

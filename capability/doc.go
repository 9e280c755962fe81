// Package capability detects optional driver features and wires up their
// entry points.
//
// Each optional feature is described by a [Descriptor]: the core version
// that guarantees it, the extension namespaces and names that provide it
// on older drivers, the feature flags it enables, and the functions that
// must resolve for it to be usable. [Probe] evaluates one descriptor
// against a live driver and records the outcome in a [Table]:
//
//	var t capability.Table
//	drv := capability.Driver{
//	    Prefix:     "GL",
//	    API:        capability.APIGL,
//	    Major:      1,
//	    Minor:      4,
//	    Extensions: capability.ParseExtensions(extString),
//	    Resolver:   loader,
//	}
//	capability.ProbeAll(&t, capability.GLDescriptors(), drv)
//	if t.Has(capability.FeatureOffscreen) {
//	    bind := t.Proc(capability.SlotBindFramebuffer)
//	    ...
//	}
//
// Probing is atomic per descriptor: a feature is either fully available,
// with every function resolved, or unavailable with every one of its
// function slots unset.
package capability

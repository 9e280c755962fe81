package capability

import "strings"

// Proc is the address of a resolved driver entry point. Zero means unset.
type Proc uintptr

// Resolver looks up driver entry points by symbol name.
type Resolver interface {
	ProcAddress(name string) (Proc, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (Proc, bool)

// ProcAddress calls f(name).
func (f ResolverFunc) ProcAddress(name string) (Proc, bool) { return f(name) }

// API identifies a driver API family. Values are bits so a Descriptor can
// name several GLES versions at once.
type API uint8

const (
	APIGL API = 1 << iota
	APIGLES1
	APIGLES2
)

func (a API) String() string {
	var parts []string
	if a&APIGL != 0 {
		parts = append(parts, "GL")
	}
	if a&APIGLES1 != 0 {
		parts = append(parts, "GLES1")
	}
	if a&APIGLES2 != 0 {
		parts = append(parts, "GLES2")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Flags is a set of public features.
type Flags uint64

const (
	FeatureOffscreen Flags = 1 << iota
	FeatureOffscreenBlit
	FeatureOffscreenMultisample
	FeaturePBOs
	FeatureShadersARBFP
	FeatureShadersGLSL
	FeatureVBOs
	FeatureMapBufferForRead
	FeatureMapBufferForWrite
	FeatureTextureRectangle
	FeatureTexture3D
	FeaturePointSprite
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FeatureOffscreen, "offscreen"},
	{FeatureOffscreenBlit, "offscreen-blit"},
	{FeatureOffscreenMultisample, "offscreen-multisample"},
	{FeaturePBOs, "pbos"},
	{FeatureShadersARBFP, "shaders-arbfp"},
	{FeatureShadersGLSL, "shaders-glsl"},
	{FeatureVBOs, "vbos"},
	{FeatureMapBufferForRead, "map-buffer-read"},
	{FeatureMapBufferForWrite, "map-buffer-write"},
	{FeatureTextureRectangle, "texture-rectangle"},
	{FeatureTexture3D, "texture-3d"},
	{FeaturePointSprite, "point-sprite"},
}

func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseFlag returns the feature named name as printed by Flags.String.
func ParseFlag(name string) (Flags, bool) {
	for _, fn := range flagNames {
		if fn.name == name {
			return fn.flag, true
		}
	}
	return 0, false
}

// PrivateFlags is a set of features used internally but not exposed to
// applications.
type PrivateFlags uint64

const (
	PrivateFeatureTexture2DFromEGLImage PrivateFlags = 1 << iota
)

// Table holds the outcome of probing: feature flags and resolved entry
// points. The zero value has nothing available.
type Table struct {
	flags   Flags
	private PrivateFlags
	procs   [NumSlots]Proc
}

// Has reports whether every feature in f is available.
func (t *Table) Has(f Flags) bool { return t.flags&f == f }

// HasPrivate reports whether every private feature in f is available.
func (t *Table) HasPrivate(f PrivateFlags) bool { return t.private&f == f }

// Flags returns the available public features.
func (t *Table) Flags() Flags { return t.flags }

// Proc returns the entry point stored in slot, or zero if unset.
func (t *Table) Proc(s Slot) Proc { return t.procs[s] }

// Disable clears features from the table. Entry points stay resolved;
// callers branch on flags.
func (t *Table) Disable(f Flags) { t.flags &^= f }

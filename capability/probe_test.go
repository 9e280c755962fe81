package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver resolves every symbol except those listed in missing and
// records the names it was asked for.
type fakeResolver struct {
	missing map[string]bool
	asked   []string
	next    Proc
}

func (r *fakeResolver) ProcAddress(name string) (Proc, bool) {
	r.asked = append(r.asked, name)
	if r.missing[name] {
		return 0, false
	}
	r.next += 0x10
	return r.next, true
}

func fooBar() Descriptor {
	return Descriptor{
		Name:           "foobar",
		MinMajor:       NoCoreVersion,
		MinMinor:       NoCoreVersion,
		Namespaces:     []string{"EXT"},
		ExtensionNames: []string{"FOO", "BAR"},
		Feature:        FeatureOffscreen,
		Functions: []Function{
			{"glFoo", SlotGenFramebuffers},
			{"glBar", SlotBindFramebuffer},
		},
	}
}

func glDriver(major, minor int, exts string, r Resolver) Driver {
	return Driver{
		Prefix:     "GL",
		API:        APIGL,
		Major:      major,
		Minor:      minor,
		Extensions: ParseExtensions(exts),
		Resolver:   r,
	}
}

func TestProbeMissingOneExtension(t *testing.T) {
	var tbl Table
	d := fooBar()
	r := &fakeResolver{}

	ok := Probe(&tbl, &d, glDriver(1, 1, "GL_EXT_FOO GL_ARB_BAR", r))

	assert.False(t, ok)
	assert.False(t, tbl.Has(FeatureOffscreen))
	assert.Zero(t, tbl.Proc(SlotGenFramebuffers))
	assert.Zero(t, tbl.Proc(SlotBindFramebuffer))
	assert.Empty(t, r.asked, "no symbol lookups without a matching namespace")
}

func TestProbeAllExtensionsPresent(t *testing.T) {
	var tbl Table
	d := fooBar()
	r := &fakeResolver{}

	ok := Probe(&tbl, &d, glDriver(1, 1, "GL_EXT_BAR GL_EXT_FOO", r))

	require.True(t, ok)
	assert.True(t, tbl.Has(FeatureOffscreen))
	assert.NotZero(t, tbl.Proc(SlotGenFramebuffers))
	assert.NotZero(t, tbl.Proc(SlotBindFramebuffer))
	assert.Equal(t, []string{"glFooEXT", "glBarEXT"}, r.asked)
}

func TestProbeAtomicOnResolveFailure(t *testing.T) {
	var tbl Table
	d := fooBar()
	r := &fakeResolver{missing: map[string]bool{"glBarEXT": true}}

	ok := Probe(&tbl, &d, glDriver(1, 1, "GL_EXT_FOO GL_EXT_BAR", r))

	assert.False(t, ok)
	assert.Equal(t, []string{"glFooEXT", "glBarEXT"}, r.asked, "first symbol resolved before failure")
	assert.Zero(t, tbl.Proc(SlotGenFramebuffers), "first pointer must be unwound")
	assert.Zero(t, tbl.Proc(SlotBindFramebuffer))
	assert.False(t, tbl.Has(FeatureOffscreen))
}

func TestProbeNativeVersionUsesNoSuffix(t *testing.T) {
	var tbl Table
	d := fooBar()
	d.MinMajor, d.MinMinor = 3, 0
	r := &fakeResolver{}

	ok := Probe(&tbl, &d, glDriver(3, 2, "", r))

	require.True(t, ok)
	assert.Equal(t, []string{"glFoo", "glBar"}, r.asked)
}

func TestProbeVersionComparison(t *testing.T) {
	tests := []struct {
		major, minor int
		want         bool
	}{
		{1, 4, false},
		{1, 5, true},
		{1, 9, true},
		{2, 0, true},
		{0, 9, false},
	}
	for _, tt := range tests {
		var tbl Table
		d := Descriptor{Name: "v", MinMajor: 1, MinMinor: 5, Feature: FeatureVBOs}
		got := Probe(&tbl, &d, glDriver(tt.major, tt.minor, "", &fakeResolver{}))
		assert.Equal(t, tt.want, got, "GL %d.%d", tt.major, tt.minor)
	}
}

func TestProbeNamespaceWithSeparateSuffix(t *testing.T) {
	var tbl Table
	d := Descriptor{
		Name:           "fbo",
		MinMajor:       NoCoreVersion,
		MinMinor:       NoCoreVersion,
		Namespaces:     []string{"ARB:", "EXT"},
		ExtensionNames: []string{"framebuffer_object"},
		Feature:        FeatureOffscreen,
		Functions:      []Function{{"glGenFramebuffers", SlotGenFramebuffers}},
	}
	r := &fakeResolver{}

	ok := Probe(&tbl, &d, glDriver(2, 1, "GL_ARB_framebuffer_object GL_EXT_framebuffer_object", r))

	require.True(t, ok)
	assert.Equal(t, []string{"glGenFramebuffers"}, r.asked, "ARB: namespace resolves without suffix")
}

func TestProbeFirstMatchingNamespaceWins(t *testing.T) {
	var tbl Table
	d := Descriptor{
		Name:           "multi",
		MinMajor:       NoCoreVersion,
		MinMinor:       NoCoreVersion,
		Namespaces:     []string{"ARB", "EXT"},
		ExtensionNames: []string{"thing"},
		Functions:      []Function{{"glThing", SlotBlendColor}},
	}
	r := &fakeResolver{}

	ok := Probe(&tbl, &d, glDriver(1, 0, "GL_EXT_thing GL_ARB_thing", r))

	require.True(t, ok)
	assert.Equal(t, []string{"glThingARB"}, r.asked)
}

func TestProbeFallsBackToLaterNamespace(t *testing.T) {
	var tbl Table
	d := Descriptor{
		Name:           "multi",
		MinMajor:       NoCoreVersion,
		MinMinor:       NoCoreVersion,
		Namespaces:     []string{"ARB", "EXT"},
		ExtensionNames: []string{"thing"},
		Functions:      []Function{{"glThing", SlotBlendColor}},
	}
	r := &fakeResolver{}

	ok := Probe(&tbl, &d, glDriver(1, 0, "GL_EXT_thing", r))

	require.True(t, ok)
	assert.Equal(t, []string{"glThingEXT"}, r.asked)
}

func TestProbeNeverCoreIgnoresVersion(t *testing.T) {
	var tbl Table
	d := fooBar()

	ok := Probe(&tbl, &d, glDriver(255, 255, "", &fakeResolver{}))

	assert.False(t, ok)
}

func TestProbeGLESAvailability(t *testing.T) {
	d := Descriptor{
		Name:     "es",
		MinMajor: NoCoreVersion,
		MinMinor: NoCoreVersion,
		GLES:     APIGLES2,
		Feature:  FeatureShadersGLSL,
	}

	var es2 Table
	drv := glDriver(2, 0, "", &fakeResolver{})
	drv.API = APIGLES2
	assert.True(t, Probe(&es2, &d, drv))
	assert.True(t, es2.Has(FeatureShadersGLSL))

	var es1 Table
	drv.API = APIGLES1
	assert.False(t, Probe(&es1, &d, drv))
}

func TestProbeWithoutFunctionsSetsFlags(t *testing.T) {
	var tbl Table
	d := Descriptor{
		Name:           "point_sprites",
		MinMajor:       2,
		MinMinor:       0,
		Namespaces:     []string{"ARB"},
		ExtensionNames: []string{"point_sprite"},
		Feature:        FeaturePointSprite,
	}

	assert.True(t, Probe(&tbl, &d, glDriver(1, 4, "GL_ARB_point_sprite", nil)))
	assert.True(t, tbl.Has(FeaturePointSprite))
}

func TestProbeNilResolverFailsForFunctions(t *testing.T) {
	var tbl Table
	d := fooBar()
	assert.False(t, Probe(&tbl, &d, glDriver(1, 0, "GL_EXT_FOO GL_EXT_BAR", nil)))
	assert.Zero(t, tbl.Proc(SlotGenFramebuffers))
}

func TestProbeCustomPrefix(t *testing.T) {
	var tbl Table
	d := fooBar()
	drv := glDriver(1, 0, "EGL_EXT_FOO EGL_EXT_BAR", &fakeResolver{})
	drv.Prefix = "EGL"
	assert.True(t, Probe(&tbl, &d, drv))
}

func TestProbeAllGL21(t *testing.T) {
	var tbl Table
	r := &fakeResolver{}
	flags := ProbeAll(&tbl, GLDescriptors(), glDriver(2, 1,
		"GL_EXT_framebuffer_object GL_EXT_framebuffer_blit GL_ARB_texture_rectangle", r))

	assert.True(t, tbl.Has(FeatureOffscreen|FeatureOffscreenBlit))
	assert.True(t, tbl.Has(FeatureShadersGLSL|FeatureVBOs|FeaturePointSprite|FeaturePBOs|FeatureTexture3D))
	assert.True(t, tbl.Has(FeatureTextureRectangle))
	assert.False(t, tbl.Has(FeatureOffscreenMultisample))
	assert.False(t, tbl.Has(FeatureShadersARBFP))
	assert.False(t, tbl.HasPrivate(PrivateFeatureTexture2DFromEGLImage))
	assert.Equal(t, tbl.Flags(), flags)
	assert.Contains(t, r.asked, "glGenFramebuffersEXT")
	assert.Contains(t, r.asked, "glBlendFuncSeparate")
}

func TestTableDisable(t *testing.T) {
	var tbl Table
	d := Descriptor{Name: "ps", MinMajor: 1, MinMinor: 0, Feature: FeaturePointSprite | FeatureVBOs}
	require.True(t, Probe(&tbl, &d, glDriver(2, 0, "", nil)))

	tbl.Disable(FeaturePointSprite)
	assert.False(t, tbl.Has(FeaturePointSprite))
	assert.True(t, tbl.Has(FeatureVBOs))
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(name string) (Proc, bool) { return 42, name == "ok" })
	p, ok := r.ProcAddress("ok")
	assert.True(t, ok)
	assert.Equal(t, Proc(42), p)
}

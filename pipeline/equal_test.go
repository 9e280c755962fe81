package pipeline

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
)

// assertEqualHashes checks that a and b hash alike over every category
// they are Equal for.
func assertEqualHashes(t *testing.T, a, b *Pipeline) {
	t.Helper()
	for _, c := range AllCategories.Categories() {
		if Equal(a, b, c) {
			assert.Equal(t, Hash(a, c.bit()), Hash(b, c.bit()), c.String())
		}
	}
}

func TestEqualIsReflexiveAndSymmetric(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetColor(red)
	a.SetLayerTexture(1, tex(4))
	b := root.Copy()
	b.SetFog(Fog{Enabled: true, Density: 2})

	for _, c := range AllCategories.Categories() {
		assert.True(t, Equal(a, a, c), c.String())
		assert.Equal(t, Equal(a, b, c), Equal(b, a, c), c.String())
	}
}

func TestEqualIndependentlySetValues(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	b := root.Copy()
	for _, p := range []*Pipeline{a, b} {
		p.SetColor(blue)
		p.SetPointSize(4)
		p.SetCullFace(CullFace{Mode: gputypes.CullModeBack, Front: gputypes.FrontFaceCW})
		p.SetLayerTexture(0, tex(9))
		p.SetLayerWrapMode(0, WrapRepeat)
	}

	assert.True(t, EqualSet(a, b, AllCategories))
	assert.Equal(t, Hash(a, AllCategories), Hash(b, AllCategories))
}

func TestDepthEqualWhenTestDisabled(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetDepth(Depth{Func: gputypes.CompareFunctionGreater})
	b := root.Copy()
	b.SetDepth(Depth{Func: gputypes.CompareFunctionNever, WriteEnabled: true})

	assert.True(t, Equal(a, b, CategoryDepth))
	assertEqualHashes(t, a, b)

	a.SetDepth(Depth{TestEnabled: true, Func: gputypes.CompareFunctionGreater})
	assert.False(t, Equal(a, b, CategoryDepth))
}

func TestBlendConstantOnlyMattersWhenUsed(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetBlendConstant(red)
	b := root.Copy()
	b.SetBlendConstant(green)

	assert.True(t, Equal(a, b, CategoryBlend))
	assertEqualHashes(t, a, b)

	constant := gputypes.BlendState{
		Color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorConstant, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
		Alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
	}
	a.SetBlend(constant)
	b.SetBlend(constant)
	assert.False(t, Equal(a, b, CategoryBlend))
}

func TestCullFaceIgnoresWindingWhenNotCulling(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetCullFace(CullFace{Mode: gputypes.CullModeNone, Front: gputypes.FrontFaceCW})

	assert.True(t, Equal(root, a, CategoryCullFace))
	assertEqualHashes(t, root, a)

	a.SetCullFace(CullFace{Mode: gputypes.CullModeBack, Front: gputypes.FrontFaceCW})
	assert.False(t, Equal(root, a, CategoryCullFace))
}

func TestNegativeZeroHashesLikeZero(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetAlphaTestFunction(gputypes.CompareFunctionGreater, 0.5)
	a.SetAlphaTestFunction(gputypes.CompareFunctionGreater, float32(math.Copysign(0, -1)))
	_, ref := a.AlphaFunc()
	assert.True(t, math.Signbit(float64(ref)), "a stores negative zero")
	b := root.Copy()
	b.SetAlphaTestFunction(gputypes.CompareFunctionGreater, 0)

	assert.True(t, Equal(a, b, CategoryAlphaFuncReference))
	assertEqualHashes(t, a, b)
}

func TestCombineComparesUsedArguments(t *testing.T) {
	root := newRoot()
	replace := DefaultCombine()
	replace.RGB.Func = CombineReplace
	replace.RGB.Src = [3]CombineSource{SourceTexture, SourceConstant, SourcePrimaryColor}

	other := replace
	other.RGB.Src[1] = SourcePrevious
	other.RGB.Src[2] = SourceTexture

	a := root.Copy()
	b := root.Copy()
	assert.NoError(t, a.SetLayerCombine(0, replace))
	assert.NoError(t, b.SetLayerCombine(0, other))

	assert.True(t, Equal(a, b, CategoryLayerCombine))
	assertEqualHashes(t, a, b)

	other.RGB.Src[0] = SourceConstant
	assert.NoError(t, b.SetLayerCombine(0, other))
	assert.False(t, Equal(a, b, CategoryLayerCombine))
}

func TestAutomaticWrapEqualsClampToEdge(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetLayerWrapMode(0, WrapAutomatic)
	b := root.Copy()
	b.SetLayerWrapMode(0, WrapClampToEdge)

	assert.True(t, Equal(a, b, CategoryLayerWrapModes))
	assertEqualHashes(t, a, b)

	b.SetLayerWrapModeT(0, WrapRepeat)
	assert.False(t, Equal(a, b, CategoryLayerWrapModes))
}

func TestLayerCategoriesDifferWithIndexLists(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.Layer(0)
	b := root.Copy()
	b.Layer(1)

	assert.False(t, Equal(a, b, CategoryLayers))
	assert.False(t, Equal(a, b, CategoryLayerTexture))
}

func TestUserProgramIdentity(t *testing.T) {
	root := newRoot()
	p1 := &Program{id: 101}
	p2 := &Program{id: 102}

	a := root.Copy()
	a.SetUserProgram(p1)
	b := root.Copy()
	b.SetUserProgram(p1)
	c := root.Copy()
	c.SetUserProgram(p2)

	assert.True(t, Equal(a, b, CategoryUserShader))
	assert.False(t, Equal(a, c, CategoryUserShader))
	assertEqualHashes(t, a, b)
}

func TestRealBlendEnabled(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Pipeline)
		want  bool
	}{
		{"default", func(*Pipeline) {}, false},
		{"translucent color", func(p *Pipeline) { p.SetColor(gputypes.Color{R: 1, A: 0.5}) }, true},
		{"forced off", func(p *Pipeline) {
			p.SetColor(gputypes.Color{A: 0.5})
			p.SetBlendEnable(BlendEnableDisabled)
		}, false},
		{"forced on", func(p *Pipeline) { p.SetBlendEnable(BlendEnableEnabled) }, true},
		{"non premultiplied blend", func(p *Pipeline) { p.SetBlend(gputypes.BlendStateAlpha()) }, true},
		{"user program", func(p *Pipeline) { p.SetUserProgram(&Program{id: 1}) }, true},
		{"opaque texture", func(p *Pipeline) { p.SetLayerTexture(0, tex(1)) }, false},
		{"texture with alpha", func(p *Pipeline) {
			p.SetLayerTexture(0, &testTexture{id: 2, alpha: true})
		}, true},
		{"alpha combine", func(p *Pipeline) {
			c := DefaultCombine()
			c.Alpha.Func = CombineAdd
			_ = p.SetLayerCombine(0, c)
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newRoot().Copy()
			tt.setup(p)
			assert.Equal(t, tt.want, p.RealBlendEnabled())
			assert.Equal(t, tt.want, p.Get(CategoryRealBlendEnable))
		})
	}
}

func TestLayerEqualPanicsOnPipelineCategory(t *testing.T) {
	root := newRoot()
	l := root.Copy().Layer(0)
	assert.Panics(t, func() { LayerEqual(l, l, CategoryColor) })
	assert.True(t, LayerEqual(l, l, CategoryLayerTexture))
}

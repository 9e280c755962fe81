package pipeline

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit(p *Pipeline, index int) int {
	return p.GetLayer(index, CategoryLayerUnit).(int)
}

func TestLayerInsertKeepsIndexOrder(t *testing.T) {
	p := newRoot().Copy()

	l5 := p.Layer(5)
	p.Layer(1)
	p.Layer(3)

	assert.Equal(t, []int{1, 3, 5}, p.LayerIndices())
	assert.Equal(t, 3, p.NLayers())
	assert.Equal(t, 0, unit(p, 1))
	assert.Equal(t, 1, unit(p, 3))
	assert.Equal(t, 2, unit(p, 5))
	assert.Same(t, l5, p.Layer(5))
	assert.Equal(t, 5, l5.Index())
	assert.Same(t, p, l5.Owner())
}

func TestLayerNegativeIndexPanics(t *testing.T) {
	p := newRoot().Copy()
	assert.Panics(t, func() { p.Layer(-1) })
	assert.Panics(t, func() { p.LayerTexture(-1) })
}

func TestRemoveLayer(t *testing.T) {
	p := newRoot().Copy()
	p.Layer(1)
	p.Layer(3)
	p.Layer(5)

	p.RemoveLayer(3)

	assert.Equal(t, []int{1, 5}, p.LayerIndices())
	assert.Equal(t, 2, p.NLayers())
	assert.Equal(t, 1, unit(p, 5))

	p.RemoveLayer(42)
	assert.Equal(t, []int{1, 5}, p.LayerIndices())
}

func TestRemoveInheritedLayer(t *testing.T) {
	q := newRoot().Copy()
	q.SetLayerTexture(0, tex(1))
	q.SetLayerTexture(1, tex(2))
	c := q.Copy()

	c.RemoveLayer(0)

	assert.Equal(t, []int{1}, c.LayerIndices())
	assert.Equal(t, 0, unit(c, 1))
	assert.Equal(t, uint64(2), c.LayerTexture(1).TextureID())

	assert.Equal(t, []int{0, 1}, q.LayerIndices())
	assert.Equal(t, 1, unit(q, 1))
	assert.Equal(t, uint64(1), q.LayerTexture(0).TextureID())
}

func TestPruneToLayers(t *testing.T) {
	p := newRoot().Copy()
	for i := range 4 {
		p.SetLayerTexture(i, tex(uint64(i+1)))
	}

	p.PruneToLayers(2)
	assert.Equal(t, []int{0, 1}, p.LayerIndices())

	p.PruneToLayers(5)
	assert.Equal(t, []int{0, 1}, p.LayerIndices())
}

func TestPruneInheritedLayers(t *testing.T) {
	q := newRoot().Copy()
	q.Layer(0)
	q.Layer(1)
	c := q.Copy()

	c.PruneToLayers(1)

	assert.Equal(t, []int{0}, c.LayerIndices())
	assert.Equal(t, []int{0, 1}, q.LayerIndices())
}

func TestSharedLayerCopiedOnWrite(t *testing.T) {
	q := newRoot().Copy()
	q.SetLayerTexture(0, tex(1))
	c := q.Copy()

	c.SetLayerTexture(0, tex(2))

	assert.Equal(t, uint64(1), q.LayerTexture(0).TextureID())
	assert.Equal(t, uint64(2), c.LayerTexture(0).TextureID())
	assert.NotSame(t, q.Layer(0), c.Layer(0))
	assert.Same(t, q, q.Layer(0).Owner())
	assert.Same(t, c, c.Layer(0).Owner())
}

func TestOwnLayerWithChildPipeline(t *testing.T) {
	q := newRoot().Copy()
	q.SetLayerTexture(0, tex(1))
	c := q.Copy()

	q.SetLayerTexture(0, tex(2))

	assert.Equal(t, uint64(2), q.LayerTexture(0).TextureID())
	assert.Equal(t, uint64(1), c.LayerTexture(0).TextureID())
}

func TestLayerSetters(t *testing.T) {
	p := newRoot().Copy()

	p.SetLayerFilters(0, gputypes.FilterModeNearest, gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest)
	p.SetLayerWrapModeS(0, WrapRepeat)
	p.SetLayerWrapModeT(0, WrapMirroredRepeat)
	p.SetLayerWrapModeP(0, WrapClampToEdge)
	p.SetLayerCombineConstant(0, red)
	m := IdentityMatrix()
	m[12] = 0.5
	p.SetLayerMatrix(0, m)

	assert.Equal(t, Filters{Min: gputypes.FilterModeNearest, Mag: gputypes.FilterModeLinear, Mipmap: gputypes.MipmapFilterModeNearest}, p.LayerFilters(0))
	assert.Equal(t, WrapModes{S: WrapRepeat, T: WrapMirroredRepeat, P: WrapClampToEdge}, p.LayerWrapModes(0))
	assert.Equal(t, red, p.LayerCombineConstant(0))
	assert.Equal(t, m, p.LayerMatrix(0))
	assert.Equal(t, DefaultCombine(), p.LayerCombine(0))
	assert.Equal(t, 1, p.NLayers())

	p.SetLayerWrapMode(0, WrapRepeat)
	assert.Equal(t, WrapModes{S: WrapRepeat, T: WrapRepeat, P: WrapRepeat}, p.LayerWrapModes(0))
}

func TestLayerTextureSetsTarget(t *testing.T) {
	p := newRoot().Copy()

	p.SetLayerTexture(0, &testTexture{id: 3, target: TextureTargetRectangle})
	assert.Equal(t, TextureTargetRectangle, p.LayerTextureTarget(0))

	p.SetLayerTexture(0, nil)
	assert.Equal(t, TextureTarget2D, p.LayerTextureTarget(0))
	assert.Nil(t, p.LayerTexture(0))
}

func TestSetLayerCombine(t *testing.T) {
	p := newRoot().Copy()

	add := DefaultCombine()
	add.RGB.Func = CombineAdd
	require.NoError(t, p.SetLayerCombine(0, add))
	assert.Equal(t, CombineAdd, p.LayerCombine(0).RGB.Func)

	bad := DefaultCombine()
	bad.Alpha.Func = CombineDot3RGBA
	assert.ErrorIs(t, p.SetLayerCombine(1, bad), ErrInvalidCombine)
	assert.Equal(t, []int{0}, p.LayerIndices(), "a rejected combine adds no layer")
}

func TestSetLayerPointSprite(t *testing.T) {
	p := newRoot().Copy()
	require.NoError(t, p.SetLayerPointSprite(0, true))
	assert.True(t, p.LayerPointSprite(0))

	q := NewRoot(Env{}).Copy()
	assert.ErrorIs(t, q.SetLayerPointSprite(0, true), ErrPointSpriteUnsupported)
	assert.NoError(t, q.SetLayerPointSprite(0, false))
	assert.False(t, q.LayerPointSprite(0))
}

func TestLayerGettersDoNotInsert(t *testing.T) {
	p := newRoot().Copy()

	assert.Equal(t, Filters{Min: gputypes.FilterModeLinear, Mag: gputypes.FilterModeLinear}, p.LayerFilters(7))
	assert.Equal(t, DefaultCombine(), p.LayerCombine(7))
	assert.Equal(t, IdentityMatrix(), p.LayerMatrix(7))
	assert.Nil(t, p.LayerTexture(7))
	assert.Equal(t, -1, p.GetLayer(7, CategoryLayerUnit))
	assert.Zero(t, p.NLayers())
}

func TestGetLayerPanicsOnPipelineCategory(t *testing.T) {
	p := newRoot().Copy()
	assert.Panics(t, func() { p.GetLayer(0, CategoryColor) })
	assert.Panics(t, func() { p.Get(CategoryLayerTexture) })
}

func TestForeachLayer(t *testing.T) {
	p := newRoot().Copy()
	p.Layer(4)
	p.Layer(2)
	p.Layer(9)

	var seen []int
	p.ForeachLayer(func(l *Layer) bool {
		seen = append(seen, l.Index())
		return true
	})
	assert.Equal(t, []int{2, 4, 9}, seen)

	seen = seen[:0]
	p.ForeachLayer(func(l *Layer) bool {
		seen = append(seen, l.Index())
		return false
	})
	assert.Equal(t, []int{2}, seen)
}

func TestLayerChangeLeavesSiblingsShared(t *testing.T) {
	q := newRoot().Copy()
	q.SetLayerTexture(0, tex(1))
	q.SetLayerTexture(1, tex(2))
	c := q.Copy()

	c.SetLayerMatrix(1, Matrix{})

	assert.Same(t, q.Layer(0), c.Layer(0))
	assert.NotSame(t, q.Layer(1), c.Layer(1))
	assert.Equal(t, IdentityMatrix(), q.LayerMatrix(1))
	assert.Equal(t, uint64(2), c.LayerTexture(1).TextureID())
}

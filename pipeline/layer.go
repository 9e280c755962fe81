package pipeline

import (
	"slices"

	"github.com/gogpu/gputypes"
)

// Layer is one texture stage of a pipeline. Layers form their own sharing
// tree: a layer derived from another owns only the layer categories it
// has changed.
//
// Layers are immutable once shared. Modifying a layer through a pipeline
// that does not exclusively own it derives a new layer for that pipeline
// instead.
type Layer struct {
	g        *graph
	parent   *Layer
	children []*Layer
	refs     int
	freed    bool

	// owner is the pipeline whose layer list holds this layer, if any.
	owner *Pipeline
	index int

	differences CategorySet

	unit    int
	target  TextureTarget
	texture Texture
	filters Filters
	wrap    WrapModes
	big     *layerBig
}

// newDefaultLayers creates the template layers new layers are derived
// from: layer0 for texture unit 0 and layerN for every other unit.
func newDefaultLayers(g *graph) (layer0, layerN *Layer) {
	g.env.Metrics.layerCreated()
	layer0 = &Layer{
		g:           g,
		refs:        1,
		differences: AllLayerCategories,
		target:      TextureTarget2D,
		filters: Filters{
			Min: gputypes.FilterModeLinear,
			Mag: gputypes.FilterModeLinear,
		},
		big: defaultLayerBig(),
	}

	layerN = layer0.copy()
	layerN.differences |= CategoryLayerUnit.bit()
	layerN.unit = 1
	return layer0, layerN
}

// copy derives a layer from l with the same index.
func (l *Layer) copy() *Layer {
	l.g.env.Metrics.layerCreated()
	n := &Layer{
		g:     l.g,
		refs:  1,
		index: l.index,
	}
	n.setParent(l)
	return n
}

func (l *Layer) setParent(parent *Layer) {
	parent.refs++
	parent.children = append(parent.children, l)

	old := l.parent
	l.parent = parent
	if old != nil {
		old.removeChild(l)
		old.Unref()
	}
}

func (l *Layer) removeChild(c *Layer) {
	if i := slices.Index(l.children, c); i >= 0 {
		l.children = slices.Delete(l.children, i, i+1)
	}
}

// Ref adds a reference to l.
func (l *Layer) Ref() *Layer {
	l.refs++
	return l
}

// Unref drops a reference, freeing l and possibly its ancestors when the
// last one goes.
func (l *Layer) Unref() {
	if l.freed {
		panic("pipeline: use of a freed layer")
	}
	l.refs--
	if l.refs > 0 {
		return
	}
	l.freed = true
	l.big = nil
	l.texture = nil
	l.g.env.Metrics.layerFreed()
	if parent := l.parent; parent != nil {
		parent.removeChild(l)
		l.parent = nil
		parent.Unref()
	}
}

// Parent returns the layer l derives from.
func (l *Layer) Parent() *Layer { return l.parent }

// Owner returns the pipeline that holds l in its layer list, or nil.
func (l *Layer) Owner() *Pipeline { return l.owner }

// Differences returns the categories l is the authority for.
func (l *Layer) Differences() CategorySet { return l.differences }

// Index returns the user visible layer index.
func (l *Layer) Index() int { return l.index }

func (l *Layer) authority(c Category) *Layer {
	a := l
	for !a.differences.Has(c) {
		a = a.parent
	}
	return a
}

// Unit returns the texture unit the layer is drawn with.
func (l *Layer) Unit() int { return l.authority(CategoryLayerUnit).unit }

// TextureTarget returns the binding target of the layer's texture.
func (l *Layer) TextureTarget() TextureTarget {
	return l.authority(CategoryLayerTextureTarget).target
}

// Texture returns the layer's texture, or nil.
func (l *Layer) Texture() Texture { return l.authority(CategoryLayerTexture).texture }

// Filters returns the sampling filters.
func (l *Layer) Filters() Filters { return l.authority(CategoryLayerFilters).filters }

// WrapModes returns the wrap mode of each axis.
func (l *Layer) WrapModes() WrapModes { return l.authority(CategoryLayerWrapModes).wrap }

// Combine returns the texture combine state.
func (l *Layer) Combine() Combine { return l.authority(CategoryLayerCombine).big.combine }

// CombineConstant returns the constant color read by SourceConstant.
func (l *Layer) CombineConstant() gputypes.Color {
	return l.authority(CategoryLayerCombineConstant).big.combineConstant
}

// Matrix returns the texture coordinate transform.
func (l *Layer) Matrix() Matrix { return l.authority(CategoryLayerUserMatrix).big.matrix }

// PointSprite reports whether point sprite coordinates are generated.
func (l *Layer) PointSprite() bool {
	return l.authority(CategoryLayerPointSprite).big.pointSprite
}

// hasAlpha reports whether the layer may produce alpha below one.
func (l *Layer) hasAlpha() bool {
	if !l.Combine().alphaIsDefault() {
		return true
	}
	tex := l.Texture()
	return tex != nil && tex.HasAlpha()
}

// preChange prepares l for a change to c made through owner and returns
// the layer to modify. That is l itself when owner owns it exclusively,
// otherwise a new layer derived from l that replaces it in owner's list.
// owner may be nil only for a layer nobody else has seen yet.
func (l *Layer) preChange(owner *Pipeline, c Category) *Layer {
	if len(l.children) == 0 && l.owner == nil {
		return l.initState(owner, c)
	}
	if owner == nil {
		panic("pipeline: modifying a shared layer without an owner")
	}

	// Changing a layer changes its owner, which may need its own copy on
	// write first.
	owner.preChangeNotify(CategoryLayers)

	if len(l.children) > 0 || l.owner != owner {
		n := l.copy()
		if l.owner == owner {
			owner.removeLayerDifference(l, false)
		}
		owner.addLayerDifference(n, false)
		n.Unref()
		l.g.env.Metrics.layerCopiedOnWrite()
		return n.initState(owner, c)
	}
	return l.initState(owner, c)
}

func (l *Layer) initState(owner *Pipeline, c Category) *Layer {
	if owner != nil {
		owner.age++
	}
	if layerBigState.Has(c) && l.big == nil {
		l.big = &layerBig{}
	}
	if !l.differences.Has(c) {
		l.copyState(l.authority(c), c)
		l.differences |= c.bit()
	}
	return l
}

func (l *Layer) copyState(src *Layer, c Category) {
	switch c {
	case CategoryLayerUnit:
		l.unit = src.unit
	case CategoryLayerTextureTarget:
		l.target = src.target
	case CategoryLayerTexture:
		l.texture = src.texture
	case CategoryLayerFilters:
		l.filters = src.filters
	case CategoryLayerWrapModes:
		l.wrap = src.wrap
	case CategoryLayerCombine:
		l.big.combine = src.big.combine
	case CategoryLayerCombineConstant:
		l.big.combineConstant = src.big.combineConstant
	case CategoryLayerUserMatrix:
		l.big.matrix = src.big.matrix
	case CategoryLayerPointSprite:
		l.big.pointSprite = src.big.pointSprite
	}
}

// pruneRedundantAncestry skips ancestors whose every difference l now
// overrides.
func (l *Layer) pruneRedundantAncestry() {
	parent := l.parent
	if parent == nil {
		return
	}
	for parent.parent != nil && parent.differences|l.differences == l.differences {
		parent = parent.parent
	}
	if parent != l.parent {
		l.setParent(parent)
	}
}

package pipeline

import (
	"slices"
	"strconv"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pipestate/capability"
)

// freeLayerCaches marks the layer caches of p and all its descendants
// stale.
func (p *Pipeline) freeLayerCaches() {
	p.layersCacheDirty = true
	p.layersCache = p.layersCache[:0]
	for _, c := range p.children {
		c.freeLayerCaches()
	}
}

// updateLayersCache rebuilds the unit ordered layer list of p, which
// must be a layers authority. A node only records the layers that differ
// from its ancestors, so the list is assembled walking up and taking the
// first layer found for each unit.
func (p *Pipeline) updateLayersCache() {
	if !p.layersCacheDirty {
		return
	}
	p.layersCacheDirty = false

	n := p.nLayers
	p.layersCache = slices.Grow(p.layersCache[:0], n)[:n]
	clear(p.layersCache)
	if n == 0 {
		return
	}

	found := 0
	for cur := p; cur != nil; cur = cur.parent {
		if !cur.differences.Has(CategoryLayers) {
			continue
		}
		for _, l := range cur.layerDifferences {
			unit := l.Unit()
			if unit < n && p.layersCache[unit] == nil {
				p.layersCache[unit] = l
				found++
				if found == n {
					return
				}
			}
		}
	}
	panic("pipeline: layer units are not contiguous")
}

// layers returns the layers of p in unit order. The slice is owned by the
// graph and only valid until the next change.
func (p *Pipeline) layers() []*Layer {
	a := p.authority(CategoryLayers)
	a.updateLayersCache()
	return a.layersCache
}

// NLayers returns the number of layers.
func (p *Pipeline) NLayers() int {
	p.checkLive()
	return p.authority(CategoryLayers).nLayers
}

// LayerIndices returns the layer indices in drawing order, which is
// ascending index order.
func (p *Pipeline) LayerIndices() []int {
	p.checkLive()
	ls := p.layers()
	out := make([]int, len(ls))
	for i, l := range ls {
		out[i] = l.index
	}
	return out
}

// ForeachLayer calls fn for each layer in drawing order until fn returns
// false. fn must not modify p.
func (p *Pipeline) ForeachLayer(fn func(l *Layer) bool) {
	p.checkLive()
	for _, l := range slices.Clone(p.layers()) {
		if !fn(l) {
			return
		}
	}
}

// findLayer returns the layer with the given index, or nil.
func (p *Pipeline) findLayer(index int) *Layer {
	for _, l := range p.layers() {
		if l.index == index {
			return l
		}
	}
	return nil
}

// readLayer returns the layer with the given index, or the default layer
// when p has none. Getters never insert layers.
func (p *Pipeline) readLayer(index int) *Layer {
	checkLayerIndex(index)
	p.checkLive()
	if l := p.findLayer(index); l != nil {
		return l
	}
	return p.g.layer0
}

func checkLayerIndex(index int) {
	if index < 0 {
		panic("pipeline: negative layer index " + strconv.Itoa(index))
	}
}

// Layer returns the layer with the given index, inserting a default layer
// in index order if p has none yet. The returned layer may be shared with
// other pipelines and must only be read.
func (p *Pipeline) Layer(index int) *Layer {
	checkLayerIndex(index)
	p.checkLive()

	a := p.authority(CategoryLayers)
	a.updateLayersCache()

	insertAfter := -1
	var shift []*Layer
	for _, l := range a.layersCache {
		switch {
		case l.index == index:
			return l
		case l.index < index:
			insertAfter = l.Unit()
		default:
			shift = append(shift, l)
		}
	}

	unit := insertAfter + 1
	var l *Layer
	if unit == 0 {
		l = p.g.layer0.copy()
	} else {
		l = p.g.layerN.copy()
		p.setLayerUnit(nil, l, unit)
	}
	l.index = index

	// Make room by moving every higher index up one unit. A shifted
	// layer may be shared, in which case p gets a derived copy.
	for _, s := range shift {
		p.setLayerUnit(p, s, s.Unit()+1)
	}

	p.addLayerDifference(l, true)
	l.Unref()
	return l
}

// setLayerUnit moves l to unit, on behalf of owner.
func (p *Pipeline) setLayerUnit(owner *Pipeline, l *Layer, unit int) *Layer {
	auth := l.authority(CategoryLayerUnit)
	if auth.unit == unit {
		return l
	}
	n := l.preChange(owner, CategoryLayerUnit)
	n.unit = unit
	if n != auth {
		n.pruneRedundantAncestry()
	}
	return n
}

func (p *Pipeline) addLayerDifference(l *Layer, incLayers bool) {
	if l.owner != nil {
		panic("pipeline: layer already has an owner")
	}
	l.owner = p
	l.refs++

	p.preChangeNotify(CategoryLayers)
	p.layerDifferences = append(p.layerDifferences, l)
	if incLayers {
		p.nLayers++
	}
}

// removeLayerDifference drops l from the layers p owns. The layer may be
// inherited from an ancestor, in which case only the count changes.
func (p *Pipeline) removeLayerDifference(l *Layer, decLayers bool) {
	p.preChangeNotify(CategoryLayers)
	if l.owner == p {
		l.owner = nil
		if i := slices.Index(p.layerDifferences, l); i >= 0 {
			p.layerDifferences = slices.Delete(p.layerDifferences, i, i+1)
		}
		l.Unref()
	}
	if decLayers {
		p.nLayers--
	}
}

// RemoveLayer removes the layer with the given index. Layers with higher
// indices move down one texture unit. Layers shared with other pipelines
// are left intact.
func (p *Pipeline) RemoveLayer(index int) {
	checkLayerIndex(index)
	p.checkLive()

	var target *Layer
	var shift []*Layer
	for _, l := range p.layers() {
		switch {
		case l.index == index:
			target = l
		case l.index > index:
			shift = append(shift, l)
		}
	}
	if target == nil {
		return
	}

	for _, s := range shift {
		p.setLayerUnit(p, s, s.Unit()-1)
	}
	p.removeLayerDifference(target, true)
}

// PruneToLayers keeps the first n layers in drawing order and drops the
// rest.
func (p *Pipeline) PruneToLayers(n int) {
	p.checkLive()
	if p.authority(CategoryLayers).nLayers <= n {
		return
	}

	p.preChangeNotify(CategoryLayers)
	p.nLayers = n
	for _, l := range slices.Clone(p.layerDifferences) {
		if l.Unit() >= n {
			p.removeLayerDifference(l, false)
		}
	}
}

// changeLayer applies a modification of c to the layer with the given
// index unless same reports that the resolved value already matches.
func (p *Pipeline) changeLayer(index int, c Category, same func(auth *Layer) bool, apply func(l *Layer)) {
	checkLayerIndex(index)
	p.checkLive()

	l := p.Layer(index)
	auth := l.authority(c)
	if same(auth) {
		return
	}
	n := l.preChange(p, c)
	apply(n)
	if n != auth {
		n.pruneRedundantAncestry()
	}
}

// SetLayerTexture sets the texture of a layer and its binding target. A
// nil texture selects the default 2D target.
func (p *Pipeline) SetLayerTexture(index int, tex Texture) {
	target := TextureTarget2D
	if tex != nil {
		target = tex.Target()
	}
	p.changeLayer(index, CategoryLayerTextureTarget,
		func(a *Layer) bool { return a.target == target },
		func(l *Layer) { l.target = target })
	p.changeLayer(index, CategoryLayerTexture,
		func(a *Layer) bool { return sameTexture(a.texture, tex) },
		func(l *Layer) { l.texture = tex })
}

// SetLayerFilters sets the sampling filters of a layer.
func (p *Pipeline) SetLayerFilters(index int, min, mag gputypes.FilterMode, mipmap gputypes.MipmapFilterMode) {
	f := Filters{Min: min, Mag: mag, Mipmap: mipmap}
	p.changeLayer(index, CategoryLayerFilters,
		func(a *Layer) bool { return a.filters == f },
		func(l *Layer) { l.filters = f })
}

// SetLayerWrapModes sets the wrap mode of every axis.
func (p *Pipeline) SetLayerWrapModes(index int, w WrapModes) {
	p.changeLayer(index, CategoryLayerWrapModes,
		func(a *Layer) bool { return a.wrap == w },
		func(l *Layer) { l.wrap = w })
}

// SetLayerWrapMode sets the same wrap mode on all three axes.
func (p *Pipeline) SetLayerWrapMode(index int, m WrapMode) {
	p.SetLayerWrapModes(index, WrapModes{S: m, T: m, P: m})
}

// SetLayerWrapModeS sets the wrap mode of the s axis.
func (p *Pipeline) SetLayerWrapModeS(index int, m WrapMode) {
	w := p.LayerWrapModes(index)
	w.S = m
	p.SetLayerWrapModes(index, w)
}

// SetLayerWrapModeT sets the wrap mode of the t axis.
func (p *Pipeline) SetLayerWrapModeT(index int, m WrapMode) {
	w := p.LayerWrapModes(index)
	w.T = m
	p.SetLayerWrapModes(index, w)
}

// SetLayerWrapModeP sets the wrap mode of the p axis.
func (p *Pipeline) SetLayerWrapModeP(index int, m WrapMode) {
	w := p.LayerWrapModes(index)
	w.P = m
	p.SetLayerWrapModes(index, w)
}

// SetLayerCombine sets the texture combine functions of a layer.
func (p *Pipeline) SetLayerCombine(index int, c Combine) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p.changeLayer(index, CategoryLayerCombine,
		func(a *Layer) bool { return a.big.combine == c },
		func(l *Layer) { l.big.combine = c })
	return nil
}

// SetLayerCombineConstant sets the color read by SourceConstant.
func (p *Pipeline) SetLayerCombineConstant(index int, c gputypes.Color) {
	p.changeLayer(index, CategoryLayerCombineConstant,
		func(a *Layer) bool { return a.big.combineConstant == c },
		func(l *Layer) { l.big.combineConstant = c })
}

// SetLayerMatrix sets the texture coordinate transform of a layer.
func (p *Pipeline) SetLayerMatrix(index int, m Matrix) {
	p.changeLayer(index, CategoryLayerUserMatrix,
		func(a *Layer) bool { return a.big.matrix == m },
		func(l *Layer) { l.big.matrix = m })
}

// SetLayerPointSprite enables point sprite coordinate generation for a
// layer. Enabling needs the point-sprite capability.
func (p *Pipeline) SetLayerPointSprite(index int, enable bool) error {
	if enable && p.g.env.Features&capability.FeaturePointSprite == 0 {
		return ErrPointSpriteUnsupported
	}
	p.changeLayer(index, CategoryLayerPointSprite,
		func(a *Layer) bool { return a.big.pointSprite == enable },
		func(l *Layer) { l.big.pointSprite = enable })
	return nil
}

// LayerTexture returns the texture of a layer, or nil.
func (p *Pipeline) LayerTexture(index int) Texture { return p.readLayer(index).Texture() }

// LayerTextureTarget returns the binding target of a layer.
func (p *Pipeline) LayerTextureTarget(index int) TextureTarget {
	return p.readLayer(index).TextureTarget()
}

// LayerFilters returns the sampling filters of a layer.
func (p *Pipeline) LayerFilters(index int) Filters { return p.readLayer(index).Filters() }

// LayerWrapModes returns the wrap modes of a layer.
func (p *Pipeline) LayerWrapModes(index int) WrapModes { return p.readLayer(index).WrapModes() }

// LayerCombine returns the texture combine state of a layer.
func (p *Pipeline) LayerCombine(index int) Combine { return p.readLayer(index).Combine() }

// LayerCombineConstant returns the combine constant of a layer.
func (p *Pipeline) LayerCombineConstant(index int) gputypes.Color {
	return p.readLayer(index).CombineConstant()
}

// LayerMatrix returns the texture coordinate transform of a layer.
func (p *Pipeline) LayerMatrix(index int) Matrix { return p.readLayer(index).Matrix() }

// LayerPointSprite reports whether a layer generates point sprite
// coordinates.
func (p *Pipeline) LayerPointSprite(index int) bool { return p.readLayer(index).PointSprite() }

// GetLayer returns the value of layer category c for the layer with the
// given index. It panics for pipeline categories.
func (p *Pipeline) GetLayer(index int, c Category) any {
	l := p.readLayer(index)
	switch c {
	case CategoryLayerUnit:
		if l == p.g.layer0 {
			return -1
		}
		return l.Unit()
	case CategoryLayerTextureTarget:
		return l.TextureTarget()
	case CategoryLayerTexture:
		return l.Texture()
	case CategoryLayerFilters:
		return l.Filters()
	case CategoryLayerWrapModes:
		return l.WrapModes()
	case CategoryLayerCombine:
		return l.Combine()
	case CategoryLayerCombineConstant:
		return l.CombineConstant()
	case CategoryLayerUserMatrix:
		return l.Matrix()
	case CategoryLayerPointSprite:
		return l.PointSprite()
	}
	panic("pipeline: not a layer category: " + c.String())
}

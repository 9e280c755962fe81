package pipeline

import (
	"maps"
	"slices"

	"github.com/gogpu/gputypes"
)

// Equal reports whether a and b resolve category c to equivalent values.
// It is true without comparing any field when both resolve c to the same
// authority. Layer categories compare the layers of a and b pairwise by
// index and are false when the index lists differ.
func Equal(a, b *Pipeline, c Category) bool {
	a.checkLive()
	b.checkLive()

	if c.IsLayer() {
		if a.authority(CategoryLayers) == b.authority(CategoryLayers) {
			return true
		}
		return layersEqual(a.layers(), b.layers(), c, nil)
	}
	if c == CategoryRealBlendEnable {
		return a.RealBlendEnabled() == b.RealBlendEnabled()
	}

	aa, ba := a.authority(c), b.authority(c)
	if aa == ba {
		return true
	}
	return stateEqual(aa, ba, c)
}

// EqualSet reports whether a and b are equal for every category in set.
func EqualSet(a, b *Pipeline, set CategorySet) bool {
	if a == b {
		return true
	}
	for _, c := range set.Categories() {
		if !Equal(a, b, c) {
			return false
		}
	}
	return true
}

// stateEqual compares c between two authorities for it.
func stateEqual(a, b *Pipeline, c Category) bool {
	switch c {
	case CategoryColor:
		return a.color == b.color
	case CategoryBlendEnable:
		return a.blendEnable == b.blendEnable
	case CategoryLayers:
		return layerIndicesEqual(a.layers(), b.layers())
	case CategoryLighting:
		return a.big.lighting == b.big.lighting
	case CategoryAlphaFunc:
		return a.big.alphaFunc == b.big.alphaFunc
	case CategoryAlphaFuncReference:
		return a.big.alphaRef == b.big.alphaRef
	case CategoryBlend:
		return blendEqual(a.big.blend, b.big.blend)
	case CategoryUserShader:
		return a.big.program == b.big.program
	case CategoryDepth:
		return depthEqual(a.big.depth, b.big.depth)
	case CategoryFog:
		return a.big.fog == b.big.fog
	case CategoryNonZeroPointSize:
		return a.nonZeroPointSize == b.nonZeroPointSize
	case CategoryPointSize:
		return a.big.pointSize == b.big.pointSize
	case CategoryLogicOps:
		return a.big.logicOps == b.big.logicOps
	case CategoryCullFace:
		return cullFaceEqual(a.big.cullFace, b.big.cullFace)
	case CategoryUniforms:
		return uniformsEqual(&a.big.uniforms, &b.big.uniforms)
	}
	panic("pipeline: not a sparse category: " + c.String())
}

func blendEqual(a, b Blend) bool {
	if a.State != b.State {
		return false
	}
	// Equal states use the constant alike.
	return !a.UsesConstant() || a.Constant == b.Constant
}

func depthEqual(a, b Depth) bool {
	if !a.TestEnabled && !b.TestEnabled {
		return true
	}
	return a == b
}

func cullFaceEqual(a, b CullFace) bool {
	if a.Mode != b.Mode {
		return false
	}
	return a.Mode == gputypes.CullModeNone || a.Front == b.Front
}

func uniformsEqual(a, b *uniformState) bool {
	if !a.mask.Equal(&b.mask) {
		return false
	}
	return maps.EqualFunc(a.values, b.values, Uniform.Equal)
}

func layerIndicesEqual(a, b []*Layer) bool {
	return slices.EqualFunc(a, b, func(x, y *Layer) bool { return x.index == y.index })
}

// layersEqual compares layer category c across two layer lists matched by
// index. When differing is not nil every mismatching index is recorded in
// it, including indices present in only one list, and the walk does not
// stop at the first mismatch.
func layersEqual(a, b []*Layer, c Category, differing func(index int)) bool {
	equal := true
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var la, lb *Layer
		switch {
		case j == len(b) || (i < len(a) && a[i].index < b[j].index):
			la = a[i]
			i++
		case i == len(a) || b[j].index < a[i].index:
			lb = b[j]
			j++
		default:
			la, lb = a[i], b[j]
			i++
			j++
		}

		if la != nil && lb != nil && layerEqual(la, lb, c) {
			continue
		}
		equal = false
		if differing == nil {
			return false
		}
		if la != nil {
			differing(la.index)
		} else {
			differing(lb.index)
		}
	}
	return equal
}

// LayerEqual reports whether two layers resolve c to equivalent values.
func LayerEqual(a, b *Layer, c Category) bool {
	if !c.IsLayer() {
		panic("pipeline: not a layer category: " + c.String())
	}
	return layerEqual(a, b, c)
}

func layerEqual(a, b *Layer, c Category) bool {
	if a == b {
		return true
	}
	aa, ba := a.authority(c), b.authority(c)
	if aa == ba {
		return true
	}
	switch c {
	case CategoryLayerUnit:
		return aa.unit == ba.unit
	case CategoryLayerTextureTarget:
		return aa.target == ba.target
	case CategoryLayerTexture:
		return sameTexture(aa.texture, ba.texture)
	case CategoryLayerFilters:
		return aa.filters == ba.filters
	case CategoryLayerWrapModes:
		return aa.wrap.resolvedEqual(ba.wrap)
	case CategoryLayerCombine:
		return aa.big.combine.RGB.usedEqual(ba.big.combine.RGB) &&
			aa.big.combine.Alpha.usedEqual(ba.big.combine.Alpha)
	case CategoryLayerCombineConstant:
		return aa.big.combineConstant == ba.big.combineConstant
	case CategoryLayerUserMatrix:
		return aa.big.matrix == ba.big.matrix
	case CategoryLayerPointSprite:
		return aa.big.pointSprite == ba.big.pointSprite
	}
	return false
}

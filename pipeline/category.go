package pipeline

import (
	"math/bits"
	"strings"

	"github.com/gogpu/pipestate/bitmask"
)

// Category identifies one independently tracked group of state. Every
// category has its own copy, equality and hashing rules.
type Category uint8

// Pipeline categories.
const (
	CategoryColor Category = iota
	CategoryBlendEnable
	CategoryLayers
	CategoryLighting
	CategoryAlphaFunc
	CategoryAlphaFuncReference
	CategoryBlend
	CategoryUserShader
	CategoryDepth
	CategoryFog
	CategoryNonZeroPointSize
	CategoryPointSize
	CategoryLogicOps
	CategoryCullFace
	CategoryUniforms

	// CategoryRealBlendEnable is whether blending is actually enabled once
	// automatic blending is resolved. It is derived from other state and
	// never owned by a node.
	CategoryRealBlendEnable

	// Layer categories.
	CategoryLayerUnit
	CategoryLayerTextureTarget
	CategoryLayerTexture
	CategoryLayerFilters
	CategoryLayerWrapModes
	CategoryLayerCombine
	CategoryLayerCombineConstant
	CategoryLayerUserMatrix
	CategoryLayerPointSprite

	numCategories
)

// numSparse is the number of pipeline categories a node can own.
const numSparse = int(CategoryRealBlendEnable)

var categoryNames = [numCategories]string{
	CategoryColor:                "color",
	CategoryBlendEnable:          "blend-enable",
	CategoryLayers:               "layers",
	CategoryLighting:             "lighting",
	CategoryAlphaFunc:            "alpha-func",
	CategoryAlphaFuncReference:   "alpha-func-reference",
	CategoryBlend:                "blend",
	CategoryUserShader:           "user-shader",
	CategoryDepth:                "depth",
	CategoryFog:                  "fog",
	CategoryNonZeroPointSize:     "non-zero-point-size",
	CategoryPointSize:            "point-size",
	CategoryLogicOps:             "logic-ops",
	CategoryCullFace:             "cull-face",
	CategoryUniforms:             "uniforms",
	CategoryRealBlendEnable:      "real-blend-enable",
	CategoryLayerUnit:            "layer-unit",
	CategoryLayerTextureTarget:   "layer-texture-target",
	CategoryLayerTexture:         "layer-texture",
	CategoryLayerFilters:         "layer-filters",
	CategoryLayerWrapModes:       "layer-wrap-modes",
	CategoryLayerCombine:         "layer-combine",
	CategoryLayerCombineConstant: "layer-combine-constant",
	CategoryLayerUserMatrix:      "layer-user-matrix",
	CategoryLayerPointSprite:     "layer-point-sprite",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// IsLayer reports whether c is tracked per layer.
func (c Category) IsLayer() bool {
	return c >= CategoryLayerUnit && c < numCategories
}

func (c Category) bit() CategorySet { return CategorySet(1) << c }

// CategorySet is a set of categories.
type CategorySet uint64

// Predefined category sets.
const (
	AllPipelineCategories CategorySet = CategorySet(1)<<(CategoryRealBlendEnable+1) - 1
	AllSparseCategories               = AllPipelineCategories &^ (CategorySet(1) << CategoryRealBlendEnable)
	AllLayerCategories                = (CategorySet(1)<<numCategories - 1) &^ AllPipelineCategories
	AllCategories                     = AllPipelineCategories | AllLayerCategories
)

// Categories stored in the lazily allocated big state blocks.
const (
	pipelineBigState = CategorySet(1)<<CategoryLighting |
		CategorySet(1)<<CategoryAlphaFunc |
		CategorySet(1)<<CategoryAlphaFuncReference |
		CategorySet(1)<<CategoryBlend |
		CategorySet(1)<<CategoryUserShader |
		CategorySet(1)<<CategoryDepth |
		CategorySet(1)<<CategoryFog |
		CategorySet(1)<<CategoryPointSize |
		CategorySet(1)<<CategoryLogicOps |
		CategorySet(1)<<CategoryCullFace |
		CategorySet(1)<<CategoryUniforms

	layerBigState = CategorySet(1)<<CategoryLayerCombine |
		CategorySet(1)<<CategoryLayerCombineConstant |
		CategorySet(1)<<CategoryLayerUserMatrix |
		CategorySet(1)<<CategoryLayerPointSprite
)

// NewCategorySet returns the set holding cs.
func NewCategorySet(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s |= c.bit()
	}
	return s
}

// Has reports whether c is in s.
func (s CategorySet) Has(c Category) bool { return s&c.bit() != 0 }

// With returns s with c added.
func (s CategorySet) With(c Category) CategorySet { return s | c.bit() }

// Len returns the number of categories in s.
func (s CategorySet) Len() int { return bits.OnesCount64(uint64(s)) }

// Categories returns the members of s in ascending order.
func (s CategorySet) Categories() []Category {
	out := make([]Category, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, Category(bits.TrailingZeros64(v)))
	}
	return out
}

// Bitmask returns s as a bitmask keyed by category value, the form
// [ForeachDifference] takes.
func (s CategorySet) Bitmask() *bitmask.Bitmask {
	m := bitmask.New()
	for _, c := range s.Categories() {
		m.Set(int(c), true)
	}
	return m
}

// CategorySetFromBitmask converts a bitmask keyed by category value back
// to a set. Bits beyond the known categories are ignored.
func CategorySetFromBitmask(m *bitmask.Bitmask) CategorySet {
	var s CategorySet
	m.Foreach(func(bit int) bool {
		if bit < int(numCategories) {
			s |= Category(bit).bit()
		}
		return true
	})
	return s
}

func (s CategorySet) String() string {
	if s == 0 {
		return "none"
	}
	cs := s.Categories()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

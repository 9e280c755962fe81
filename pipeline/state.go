package pipeline

import (
	"maps"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pipestate/bitmask"
)

// BlendEnable selects whether blending is forced on, forced off, or
// decided from the rest of the state.
type BlendEnable uint8

const (
	BlendEnableAutomatic BlendEnable = iota
	BlendEnableEnabled
	BlendEnableDisabled
)

func (b BlendEnable) String() string {
	switch b {
	case BlendEnableAutomatic:
		return "automatic"
	case BlendEnableEnabled:
		return "enabled"
	case BlendEnableDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Lighting holds the fixed function material colors.
type Lighting struct {
	Ambient   gputypes.Color
	Diffuse   gputypes.Color
	Specular  gputypes.Color
	Emission  gputypes.Color
	Shininess float32
}

// Blend is the blend equation with its constant color. The constant only
// matters when a factor of State refers to it.
type Blend struct {
	State    gputypes.BlendState
	Constant gputypes.Color
}

// UsesConstant reports whether any factor reads the blend constant.
func (b Blend) UsesConstant() bool {
	return b.State.Color.UsesConstant() || b.State.Alpha.UsesConstant()
}

// Depth is the depth buffer state.
type Depth struct {
	TestEnabled  bool
	Func         gputypes.CompareFunction
	WriteEnabled bool
	RangeNear    float32
	RangeFar     float32
}

// FogMode is the fog attenuation curve.
type FogMode uint8

const (
	FogLinear FogMode = iota
	FogExponential
	FogExponentialSquared
)

// Fog is the fixed function fog state.
type Fog struct {
	Enabled bool
	Color   gputypes.Color
	Mode    FogMode
	Density float32
	ZNear   float32
	ZFar    float32
}

// LogicOps holds framebuffer write state.
type LogicOps struct {
	ColorMask gputypes.ColorWriteMask
}

// CullFace selects which faces are culled and which winding is front.
type CullFace struct {
	Mode  gputypes.CullMode
	Front gputypes.FrontFace
}

// bigState holds the categories that are rarely customized. A node only
// allocates one when it becomes the authority for one of them.
type bigState struct {
	lighting  Lighting
	alphaFunc gputypes.CompareFunction
	alphaRef  float32
	blend     Blend
	program   *Program
	depth     Depth
	fog       Fog
	pointSize float32
	logicOps  LogicOps
	cullFace  CullFace
	uniforms  uniformState
}

// uniformState records which uniform locations are set and their values.
type uniformState struct {
	mask   bitmask.Bitmask
	values map[int]Uniform
}

func (u *uniformState) copyFrom(src *uniformState) {
	u.mask.Init()
	u.mask.Union(&src.mask)
	u.values = maps.Clone(src.values)
}

func defaultLighting() Lighting {
	return Lighting{
		Ambient:  gputypes.Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Diffuse:  gputypes.Color{R: 0.8, G: 0.8, B: 0.8, A: 1},
		Specular: gputypes.ColorBlack,
		Emission: gputypes.ColorBlack,
	}
}

func defaultBigState() *bigState {
	return &bigState{
		lighting:  defaultLighting(),
		alphaFunc: gputypes.CompareFunctionAlways,
		blend:     Blend{State: gputypes.BlendStatePremultiplied()},
		depth: Depth{
			Func:         gputypes.CompareFunctionLess,
			WriteEnabled: true,
			RangeNear:    0,
			RangeFar:     1,
		},
		fog: Fog{
			Color:   gputypes.ColorTransparent,
			Density: 1,
			ZFar:    1,
		},
		pointSize: 1,
		logicOps:  LogicOps{ColorMask: gputypes.ColorWriteMaskAll},
		cullFace:  CullFace{Mode: gputypes.CullModeNone, Front: gputypes.FrontFaceCCW},
	}
}

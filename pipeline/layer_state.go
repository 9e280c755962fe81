package pipeline

import (
	"github.com/gogpu/gputypes"
)

// TextureTarget is the binding target of a layer texture.
type TextureTarget uint8

const (
	TextureTarget2D TextureTarget = iota
	TextureTargetRectangle
	TextureTarget3D
)

func (t TextureTarget) String() string {
	switch t {
	case TextureTarget2D:
		return "2d"
	case TextureTargetRectangle:
		return "rectangle"
	case TextureTarget3D:
		return "3d"
	default:
		return "unknown"
	}
}

// Texture is the part of a texture object the state graph needs. Two
// textures are the same when their IDs match.
type Texture interface {
	TextureID() uint64
	Target() TextureTarget
	HasAlpha() bool
}

func textureID(t Texture) uint64 {
	if t == nil {
		return 0
	}
	return t.TextureID()
}

func sameTexture(a, b Texture) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.TextureID() == b.TextureID()
}

// WrapMode is the texture coordinate wrapping of one axis.
type WrapMode uint8

const (
	// WrapAutomatic clamps to edge unless the primitive being drawn
	// needs repeating. It compares equal to WrapClampToEdge.
	WrapAutomatic WrapMode = iota
	WrapRepeat
	WrapMirroredRepeat
	WrapClampToEdge
)

// AddressMode resolves m to the sampler address mode it draws with.
func (m WrapMode) AddressMode() gputypes.AddressMode {
	switch m {
	case WrapRepeat:
		return gputypes.AddressModeRepeat
	case WrapMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeClampToEdge
	}
}

func (m WrapMode) String() string {
	switch m {
	case WrapAutomatic:
		return "automatic"
	case WrapRepeat:
		return "repeat"
	case WrapMirroredRepeat:
		return "mirrored-repeat"
	case WrapClampToEdge:
		return "clamp-to-edge"
	default:
		return "unknown"
	}
}

// WrapModes holds the wrap mode of each texture axis.
type WrapModes struct {
	S, T, P WrapMode
}

func (w WrapModes) resolvedEqual(o WrapModes) bool {
	return w.S.AddressMode() == o.S.AddressMode() &&
		w.T.AddressMode() == o.T.AddressMode() &&
		w.P.AddressMode() == o.P.AddressMode()
}

// Filters is the sampling filter state of a layer. A Mipmap value of
// MipmapFilterModeUndefined disables mipmapping.
type Filters struct {
	Min    gputypes.FilterMode
	Mag    gputypes.FilterMode
	Mipmap gputypes.MipmapFilterMode
}

// CombineFunc is a texture combine function.
type CombineFunc uint8

const (
	CombineReplace CombineFunc = iota
	CombineModulate
	CombineAdd
	CombineAddSigned
	CombineInterpolate
	CombineSubtract
	CombineDot3RGB
	CombineDot3RGBA
)

// NArgs returns how many sources the function reads.
func (f CombineFunc) NArgs() int {
	switch f {
	case CombineReplace:
		return 1
	case CombineInterpolate:
		return 3
	default:
		return 2
	}
}

// CombineSource is an input of a combine function.
type CombineSource uint8

const (
	SourceTexture CombineSource = iota
	SourceConstant
	SourcePrimaryColor
	SourcePrevious
)

// CombineOp selects which part of a source is read.
type CombineOp uint8

const (
	OpSrcColor CombineOp = iota
	OpOneMinusSrcColor
	OpSrcAlpha
	OpOneMinusSrcAlpha
)

// CombineChannel is the combine function of one channel group.
type CombineChannel struct {
	Func CombineFunc
	Src  [3]CombineSource
	Op   [3]CombineOp
}

// usedEqual compares only the arguments Func reads.
func (c CombineChannel) usedEqual(o CombineChannel) bool {
	if c.Func != o.Func {
		return false
	}
	for i := range c.Func.NArgs() {
		if c.Src[i] != o.Src[i] || c.Op[i] != o.Op[i] {
			return false
		}
	}
	return true
}

// Combine is the texture combine state of a layer.
type Combine struct {
	RGB   CombineChannel
	Alpha CombineChannel
}

// DefaultCombine modulates the previous layer by the texture in both
// channel groups.
func DefaultCombine() Combine {
	return Combine{
		RGB: CombineChannel{
			Func: CombineModulate,
			Src:  [3]CombineSource{SourcePrevious, SourceTexture},
			Op:   [3]CombineOp{OpSrcColor, OpSrcColor},
		},
		Alpha: CombineChannel{
			Func: CombineModulate,
			Src:  [3]CombineSource{SourcePrevious, SourceTexture},
			Op:   [3]CombineOp{OpSrcAlpha, OpSrcAlpha},
		},
	}
}

// Validate reports ErrInvalidCombine when DOT3_RGBA is used for the alpha
// channel.
func (c Combine) Validate() error {
	if c.Alpha.Func == CombineDot3RGBA {
		return ErrInvalidCombine
	}
	return nil
}

// alphaIsDefault reports whether the alpha channel is the default
// modulate, which cannot lower alpha below the inputs' alpha.
func (c Combine) alphaIsDefault() bool {
	a := c.Alpha
	return a.Func == CombineModulate &&
		a.Src[0] == SourcePrevious && a.Op[0] == OpSrcAlpha &&
		a.Src[1] == SourceTexture && a.Op[1] == OpSrcAlpha
}

// Matrix is a column-major 4x4 texture coordinate transform.
type Matrix [16]float32

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// layerBig holds the layer categories that are rarely customized.
type layerBig struct {
	combine         Combine
	combineConstant gputypes.Color
	matrix          Matrix
	pointSprite     bool
}

func defaultLayerBig() *layerBig {
	return &layerBig{
		combine:         DefaultCombine(),
		combineConstant: gputypes.ColorTransparent,
		matrix:          IdentityMatrix(),
	}
}

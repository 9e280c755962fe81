package pipeline

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/gogpu/gputypes"
)

// Hasher accumulates state fingerprints. Two pipelines that are Equal for
// a category feed identical bytes for it.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Reset clears the accumulated state.
func (h *Hasher) Reset() { h.d.Reset() }

// Sum64 returns the fingerprint of everything written so far.
func (h *Hasher) Sum64() uint64 { return h.d.Sum64() }

func (h *Hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *Hasher) u8(v uint8) {
	h.buf[0] = v
	_, _ = h.d.Write(h.buf[:1])
}

func (h *Hasher) flag(v bool) {
	if v {
		h.u8(1)
	} else {
		h.u8(0)
	}
}

// f32 and f64 fold negative zero into zero, which compares equal.
func (h *Hasher) f32(v float32) {
	if v == 0 {
		v = 0
	}
	h.u64(uint64(math.Float32bits(v)))
}

func (h *Hasher) f64(v float64) {
	if v == 0 {
		v = 0
	}
	h.u64(math.Float64bits(v))
}

func (h *Hasher) color(c gputypes.Color) {
	h.f64(c.R)
	h.f64(c.G)
	h.f64(c.B)
	h.f64(c.A)
}

func (h *Hasher) blendComponent(c gputypes.BlendComponent) {
	h.u64(uint64(c.SrcFactor))
	h.u64(uint64(c.DstFactor))
	h.u64(uint64(c.Operation))
}

func (h *Hasher) combineChannel(c CombineChannel) {
	h.u8(uint8(c.Func))
	for i := range c.Func.NArgs() {
		h.u8(uint8(c.Src[i]))
		h.u8(uint8(c.Op[i]))
	}
}

// Hash returns the fingerprint of p over every category in set.
func Hash(p *Pipeline, set CategorySet) uint64 {
	h := NewHasher()
	for _, c := range set.Categories() {
		HashState(p, c, h)
	}
	return h.Sum64()
}

// HashState feeds the value p resolves for c into h. Layer categories
// contribute the index and value of every layer in drawing order.
func HashState(p *Pipeline, c Category, h *Hasher) {
	p.checkLive()
	h.u8(uint8(c))

	if c.IsLayer() {
		for _, l := range p.layers() {
			h.u64(uint64(l.index))
			hashLayerState(l, c, h)
		}
		return
	}
	if c == CategoryRealBlendEnable {
		h.flag(p.RealBlendEnabled())
		return
	}

	a := p.authority(c)
	switch c {
	case CategoryColor:
		h.color(a.color)
	case CategoryBlendEnable:
		h.u8(uint8(a.blendEnable))
	case CategoryLayers:
		ls := a.layers()
		h.u64(uint64(len(ls)))
		for _, l := range ls {
			h.u64(uint64(l.index))
		}
	case CategoryLighting:
		l := a.big.lighting
		h.color(l.Ambient)
		h.color(l.Diffuse)
		h.color(l.Specular)
		h.color(l.Emission)
		h.f32(l.Shininess)
	case CategoryAlphaFunc:
		h.u64(uint64(a.big.alphaFunc))
	case CategoryAlphaFuncReference:
		h.f32(a.big.alphaRef)
	case CategoryBlend:
		b := a.big.blend
		h.blendComponent(b.State.Color)
		h.blendComponent(b.State.Alpha)
		if b.UsesConstant() {
			h.color(b.Constant)
		}
	case CategoryUserShader:
		h.u64(programID(a.big.program))
	case CategoryDepth:
		d := a.big.depth
		h.flag(d.TestEnabled)
		if d.TestEnabled {
			h.u64(uint64(d.Func))
			h.flag(d.WriteEnabled)
			h.f32(d.RangeNear)
			h.f32(d.RangeFar)
		}
	case CategoryFog:
		f := a.big.fog
		h.flag(f.Enabled)
		h.color(f.Color)
		h.u8(uint8(f.Mode))
		h.f32(f.Density)
		h.f32(f.ZNear)
		h.f32(f.ZFar)
	case CategoryNonZeroPointSize:
		h.flag(a.nonZeroPointSize)
	case CategoryPointSize:
		h.f32(a.big.pointSize)
	case CategoryLogicOps:
		h.u64(uint64(a.big.logicOps.ColorMask))
	case CategoryCullFace:
		cf := a.big.cullFace
		h.u64(uint64(cf.Mode))
		if cf.Mode != gputypes.CullModeNone {
			h.u64(uint64(cf.Front))
		}
	case CategoryUniforms:
		us := &a.big.uniforms
		us.mask.Foreach(func(loc int) bool {
			u := us.values[loc]
			h.u64(uint64(loc))
			h.u8(uint8(u.Kind))
			h.u64(uint64(u.Components))
			h.flag(u.Transpose)
			h.u64(uint64(len(u.Floats)))
			for _, f := range u.Floats {
				h.f32(f)
			}
			h.u64(uint64(len(u.Ints)))
			for _, v := range u.Ints {
				h.u64(uint64(uint32(v)))
			}
			return true
		})
	}
}

func hashLayerState(l *Layer, c Category, h *Hasher) {
	a := l.authority(c)
	switch c {
	case CategoryLayerUnit:
		h.u64(uint64(a.unit))
	case CategoryLayerTextureTarget:
		h.u8(uint8(a.target))
	case CategoryLayerTexture:
		h.u64(textureID(a.texture))
	case CategoryLayerFilters:
		h.u64(uint64(a.filters.Min))
		h.u64(uint64(a.filters.Mag))
		h.u64(uint64(a.filters.Mipmap))
	case CategoryLayerWrapModes:
		h.u64(uint64(a.wrap.S.AddressMode()))
		h.u64(uint64(a.wrap.T.AddressMode()))
		h.u64(uint64(a.wrap.P.AddressMode()))
	case CategoryLayerCombine:
		h.combineChannel(a.big.combine.RGB)
		h.combineChannel(a.big.combine.Alpha)
	case CategoryLayerCombineConstant:
		h.color(a.big.combineConstant)
	case CategoryLayerUserMatrix:
		for _, v := range a.big.matrix {
			h.f32(v)
		}
	case CategoryLayerPointSprite:
		h.flag(a.big.pointSprite)
	}
}

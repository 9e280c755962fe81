package pipeline

import (
	"strconv"

	"github.com/gogpu/gputypes"
)

// Color returns the constant color used when no layer supplies one.
func (p *Pipeline) Color() gputypes.Color {
	p.checkLive()
	return p.authority(CategoryColor).color
}

// SetColor sets the constant color.
func (p *Pipeline) SetColor(c gputypes.Color) {
	p.change(CategoryColor,
		func(a *Pipeline) bool { return a.color == c },
		func() { p.color = c })
}

// BlendEnable returns the blend enable mode.
func (p *Pipeline) BlendEnable() BlendEnable {
	p.checkLive()
	return p.authority(CategoryBlendEnable).blendEnable
}

// SetBlendEnable forces blending on or off, or lets it be derived from the
// rest of the state.
func (p *Pipeline) SetBlendEnable(b BlendEnable) {
	p.change(CategoryBlendEnable,
		func(a *Pipeline) bool { return a.blendEnable == b },
		func() { p.blendEnable = b })
}

// Lighting returns the material colors.
func (p *Pipeline) Lighting() Lighting {
	p.checkLive()
	return p.authority(CategoryLighting).big.lighting
}

// SetLighting sets every material property at once.
func (p *Pipeline) SetLighting(l Lighting) {
	p.change(CategoryLighting,
		func(a *Pipeline) bool { return a.big.lighting == l },
		func() { p.big.lighting = l })
}

func (p *Pipeline) updateLighting(fn func(l *Lighting)) {
	l := p.Lighting()
	fn(&l)
	p.SetLighting(l)
}

// SetAmbient sets the ambient material color.
func (p *Pipeline) SetAmbient(c gputypes.Color) {
	p.updateLighting(func(l *Lighting) { l.Ambient = c })
}

// SetDiffuse sets the diffuse material color.
func (p *Pipeline) SetDiffuse(c gputypes.Color) {
	p.updateLighting(func(l *Lighting) { l.Diffuse = c })
}

// SetAmbientAndDiffuse sets the ambient and diffuse colors together.
func (p *Pipeline) SetAmbientAndDiffuse(c gputypes.Color) {
	p.updateLighting(func(l *Lighting) { l.Ambient, l.Diffuse = c, c })
}

// SetSpecular sets the specular material color.
func (p *Pipeline) SetSpecular(c gputypes.Color) {
	p.updateLighting(func(l *Lighting) { l.Specular = c })
}

// SetEmission sets the emissive material color.
func (p *Pipeline) SetEmission(c gputypes.Color) {
	p.updateLighting(func(l *Lighting) { l.Emission = c })
}

// SetShininess sets the specular exponent.
func (p *Pipeline) SetShininess(s float32) {
	p.updateLighting(func(l *Lighting) { l.Shininess = s })
}

// AlphaFunc returns the alpha test function and its reference value.
func (p *Pipeline) AlphaFunc() (gputypes.CompareFunction, float32) {
	p.checkLive()
	return p.authority(CategoryAlphaFunc).big.alphaFunc,
		p.authority(CategoryAlphaFuncReference).big.alphaRef
}

// SetAlphaTestFunction sets the alpha test. Fragments whose alpha fails
// fn against ref are discarded.
func (p *Pipeline) SetAlphaTestFunction(fn gputypes.CompareFunction, ref float32) {
	p.change(CategoryAlphaFunc,
		func(a *Pipeline) bool { return a.big.alphaFunc == fn },
		func() { p.big.alphaFunc = fn })
	p.change(CategoryAlphaFuncReference,
		func(a *Pipeline) bool { return a.big.alphaRef == ref },
		func() { p.big.alphaRef = ref })
}

// Blend returns the blend equations and constant.
func (p *Pipeline) Blend() Blend {
	p.checkLive()
	return p.authority(CategoryBlend).big.blend
}

// SetBlend sets the blend equations, keeping the blend constant.
func (p *Pipeline) SetBlend(s gputypes.BlendState) {
	p.change(CategoryBlend,
		func(a *Pipeline) bool { return a.big.blend.State == s },
		func() { p.big.blend.State = s })
}

// SetBlendConstant sets the color read by constant blend factors.
func (p *Pipeline) SetBlendConstant(c gputypes.Color) {
	p.change(CategoryBlend,
		func(a *Pipeline) bool { return a.big.blend.Constant == c },
		func() { p.big.blend.Constant = c })
}

// Depth returns the depth buffer state.
func (p *Pipeline) Depth() Depth {
	p.checkLive()
	return p.authority(CategoryDepth).big.depth
}

// SetDepth sets the depth buffer state.
func (p *Pipeline) SetDepth(d Depth) {
	p.change(CategoryDepth,
		func(a *Pipeline) bool { return a.big.depth == d },
		func() { p.big.depth = d })
}

// Fog returns the fog state.
func (p *Pipeline) Fog() Fog {
	p.checkLive()
	return p.authority(CategoryFog).big.fog
}

// SetFog sets the fog state.
func (p *Pipeline) SetFog(f Fog) {
	p.change(CategoryFog,
		func(a *Pipeline) bool { return a.big.fog == f },
		func() { p.big.fog = f })
}

// PointSize returns the point size.
func (p *Pipeline) PointSize() float32 {
	p.checkLive()
	return p.authority(CategoryPointSize).big.pointSize
}

// NonZeroPointSize reports whether the point size is above zero. Programs
// generated for points only change when this flips, not with every size.
func (p *Pipeline) NonZeroPointSize() bool {
	p.checkLive()
	return p.authority(CategoryNonZeroPointSize).nonZeroPointSize
}

// SetPointSize sets the point size.
func (p *Pipeline) SetPointSize(size float32) {
	nonZero := size > 0
	p.change(CategoryNonZeroPointSize,
		func(a *Pipeline) bool { return a.nonZeroPointSize == nonZero },
		func() { p.nonZeroPointSize = nonZero })
	p.change(CategoryPointSize,
		func(a *Pipeline) bool { return a.big.pointSize == size },
		func() { p.big.pointSize = size })
}

// ColorMask returns the channels written to the framebuffer.
func (p *Pipeline) ColorMask() gputypes.ColorWriteMask {
	p.checkLive()
	return p.authority(CategoryLogicOps).big.logicOps.ColorMask
}

// SetColorMask sets the channels written to the framebuffer.
func (p *Pipeline) SetColorMask(m gputypes.ColorWriteMask) {
	p.change(CategoryLogicOps,
		func(a *Pipeline) bool { return a.big.logicOps.ColorMask == m },
		func() { p.big.logicOps.ColorMask = m })
}

// CullFace returns the face culling state.
func (p *Pipeline) CullFace() CullFace {
	p.checkLive()
	return p.authority(CategoryCullFace).big.cullFace
}

// SetCullFace sets the face culling state.
func (p *Pipeline) SetCullFace(c CullFace) {
	p.change(CategoryCullFace,
		func(a *Pipeline) bool { return a.big.cullFace == c },
		func() { p.big.cullFace = c })
}

// UserProgram returns the attached program, or nil.
func (p *Pipeline) UserProgram() *Program {
	p.checkLive()
	return p.authority(CategoryUserShader).big.program
}

// SetUserProgram attaches a program replacing the generated one. nil
// detaches it.
func (p *Pipeline) SetUserProgram(prog *Program) {
	p.change(CategoryUserShader,
		func(a *Pipeline) bool { return a.big.program == prog },
		func() { p.big.program = prog })
}

// UniformLocation returns the location of the named uniform. Locations
// are shared by every pipeline derived from the same root.
func (p *Pipeline) UniformLocation(name string) int {
	p.checkLive()
	return p.g.uniformLocation(name)
}

// SetUniform sets the value of the uniform at loc.
func (p *Pipeline) SetUniform(loc int, u Uniform) {
	if loc < 0 {
		panic("pipeline: negative uniform location " + strconv.Itoa(loc))
	}
	p.change(CategoryUniforms,
		func(a *Pipeline) bool {
			cur, ok := a.big.uniforms.values[loc]
			return ok && cur.Equal(u)
		},
		func() {
			us := &p.big.uniforms
			if us.values == nil {
				us.values = make(map[int]Uniform)
			}
			us.mask.Set(loc, true)
			us.values[loc] = u.clone()
		})
}

// Uniform returns the value set at loc.
func (p *Pipeline) Uniform(loc int) (Uniform, bool) {
	p.checkLive()
	u, ok := p.authority(CategoryUniforms).big.uniforms.values[loc]
	if !ok {
		return Uniform{}, false
	}
	return u.clone(), true
}

// UniformNames returns the uniform names in location order.
func (p *Pipeline) UniformNames() []string {
	p.checkLive()
	return append([]string(nil), p.g.uniformNames...)
}

// RealBlendEnabled reports whether blending has to be enabled to draw
// with p. An explicit BlendEnable wins. In automatic mode blending is
// skipped only when it could not change the result.
func (p *Pipeline) RealBlendEnabled() bool {
	p.checkLive()
	switch p.BlendEnable() {
	case BlendEnableEnabled:
		return true
	case BlendEnableDisabled:
		return false
	}

	if p.Blend().State != gputypes.BlendStatePremultiplied() {
		return true
	}
	if p.Color().A < 1 {
		return true
	}
	if p.UserProgram() != nil {
		return true
	}
	for _, l := range p.layers() {
		if l.hasAlpha() {
			return true
		}
	}
	return false
}

// Get returns the resolved value of pipeline category c. Layers yields
// the layer indices and AlphaFunc only the function. Layer categories
// are read with GetLayer.
func (p *Pipeline) Get(c Category) any {
	p.checkLive()
	switch c {
	case CategoryColor:
		return p.Color()
	case CategoryBlendEnable:
		return p.BlendEnable()
	case CategoryLayers:
		return p.LayerIndices()
	case CategoryLighting:
		return p.Lighting()
	case CategoryAlphaFunc:
		fn, _ := p.AlphaFunc()
		return fn
	case CategoryAlphaFuncReference:
		_, ref := p.AlphaFunc()
		return ref
	case CategoryBlend:
		return p.Blend()
	case CategoryUserShader:
		return p.UserProgram()
	case CategoryDepth:
		return p.Depth()
	case CategoryFog:
		return p.Fog()
	case CategoryNonZeroPointSize:
		return p.NonZeroPointSize()
	case CategoryPointSize:
		return p.PointSize()
	case CategoryLogicOps:
		return p.authority(CategoryLogicOps).big.logicOps
	case CategoryCullFace:
		return p.CullFace()
	case CategoryUniforms:
		us := &p.authority(CategoryUniforms).big.uniforms
		out := make(map[int]Uniform, len(us.values))
		for loc, u := range us.values {
			out[loc] = u.clone()
		}
		return out
	case CategoryRealBlendEnable:
		return p.RealBlendEnabled()
	}
	panic("pipeline: not a pipeline category: " + c.String())
}

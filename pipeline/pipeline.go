package pipeline

import (
	"log/slog"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pipestate/capability"
)

// Env is what a state graph needs from the context that owns it.
type Env struct {
	// Features are the capability flags probed from the driver.
	Features capability.Flags

	// Metrics receives node counts and copy-on-write events. May be nil.
	Metrics *Metrics
}

// graph is shared by every node derived from one root.
type graph struct {
	env Env

	// generation changes whenever any node gains an authority bit or is
	// reparented. Authority caches stamped with an older generation are
	// stale.
	generation uint64

	layer0 *Layer
	layerN *Layer

	uniformNames []string
	uniformIndex map[string]int
}

// Pipeline is a node in the state sharing tree. For every category it
// either owns the current value (it is the authority) or delegates to the
// nearest ancestor that does.
//
// A Pipeline is not safe for concurrent use; a graph belongs to one
// render thread.
type Pipeline struct {
	g        *graph
	parent   *Pipeline
	children []*Pipeline
	refs     int
	freed    bool

	differences CategorySet
	age         uint64
	label       string

	color            gputypes.Color
	blendEnable      BlendEnable
	nonZeroPointSize bool
	big              *bigState

	nLayers          int
	layerDifferences []*Layer
	layersCache      []*Layer
	layersCacheDirty bool

	authGen   uint64
	authCache [numSparse]*Pipeline
}

// NewRoot creates the root of a new state graph. The root is the
// authority for every category and holds the default state: opaque white,
// automatic premultiplied blending, no layers.
func NewRoot(env Env) *Pipeline {
	g := &graph{
		env:          env,
		uniformIndex: make(map[string]int),
	}
	g.layer0, g.layerN = newDefaultLayers(g)

	p := g.newPipeline()
	p.label = "root"
	p.differences = AllSparseCategories
	p.color = gputypes.ColorWhite
	p.blendEnable = BlendEnableAutomatic
	p.nonZeroPointSize = true
	p.big = defaultBigState()

	slogger().Debug("pipeline: root created",
		slog.String("features", env.Features.String()))
	return p
}

func (g *graph) newPipeline() *Pipeline {
	g.env.Metrics.pipelineCreated()
	return &Pipeline{
		g:                g,
		refs:             1,
		layersCacheDirty: true,
	}
}

// Copy derives a child of p. The child owns nothing and so reads exactly
// the state of p until it is modified. p gains a reference held by the
// child.
func (p *Pipeline) Copy() *Pipeline {
	p.checkLive()
	c := p.g.newPipeline()
	c.setParent(p)
	return c
}

// Parent returns the node p delegates to, or nil for a root.
func (p *Pipeline) Parent() *Pipeline { return p.parent }

// Age increases every time p is about to change.
func (p *Pipeline) Age() uint64 { return p.age }

// Differences returns the categories p is the authority for.
func (p *Pipeline) Differences() CategorySet { return p.differences }

// SetLabel names p in dumps and logs.
func (p *Pipeline) SetLabel(label string) { p.label = label }

// Label returns the name given with SetLabel.
func (p *Pipeline) Label() string { return p.label }

// Ref adds a reference to p.
func (p *Pipeline) Ref() *Pipeline {
	p.checkLive()
	p.refs++
	return p
}

// Unref drops a reference. When the last one goes p is freed: its layers
// are released and its reference on its parent is dropped, which may in
// turn free the parent.
func (p *Pipeline) Unref() {
	p.checkLive()
	p.refs--
	if p.refs > 0 {
		return
	}
	p.free()
}

// Destroy releases the caller's reference, which must be the only one.
// Destroying a pipeline that still has children or other references is a
// programming error and panics.
func (p *Pipeline) Destroy() {
	p.checkLive()
	if len(p.children) > 0 {
		panic("pipeline: destroying a pipeline with live children")
	}
	if p.refs > 1 {
		panic("pipeline: destroying a pipeline with outstanding references")
	}
	p.Unref()
}

func (p *Pipeline) free() {
	for _, l := range p.layerDifferences {
		l.owner = nil
		l.Unref()
	}
	p.layerDifferences = nil
	p.layersCache = nil
	p.big = nil
	p.freed = true
	p.g.env.Metrics.pipelineFreed()

	if parent := p.parent; parent != nil {
		parent.removeChild(p)
		p.parent = nil
		parent.Unref()
	}
}

func (p *Pipeline) checkLive() {
	if p.freed {
		panic("pipeline: use of a freed pipeline")
	}
}

func (p *Pipeline) removeChild(c *Pipeline) {
	if i := slices.Index(p.children, c); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
}

// setParent moves p under parent. The new parent is referenced before
// the old one is released since the old parent may be the only thing
// keeping the new one alive.
func (p *Pipeline) setParent(parent *Pipeline) {
	parent.refs++
	parent.children = append(parent.children, p)

	old := p.parent
	p.parent = parent
	p.g.generation++
	if old != nil {
		old.removeChild(p)
		old.Unref()
	}
}

// authority returns the node that owns c for p.
func (p *Pipeline) authority(c Category) *Pipeline {
	if p.authGen != p.g.generation {
		p.authCache = [numSparse]*Pipeline{}
		p.authGen = p.g.generation
	}
	if a := p.authCache[c]; a != nil {
		return a
	}
	a := p
	for !a.differences.Has(c) {
		a = a.parent
	}
	p.authCache[c] = a
	return a
}

// preChangeNotify prepares p for a change to c. Descendants that depend
// on p are moved onto a copy of it first so they keep seeing the old
// values. Then p takes over authority for c, seeded with the value it
// currently resolves to.
func (p *Pipeline) preChangeNotify(c Category) {
	if len(p.children) > 0 {
		p.copyOnWrite()
	}

	p.age++

	if pipelineBigState.Has(c) && p.big == nil {
		p.big = &bigState{}
	}

	if !p.differences.Has(c) {
		p.initState(p.authority(c), c)
		p.differences |= c.bit()
		p.g.generation++
	}

	if c == CategoryLayers {
		p.freeLayerCaches()
	}
}

func (p *Pipeline) copyOnWrite() {
	var auth *Pipeline
	if p.parent != nil {
		auth = p.parent.Copy()
	} else {
		auth = p.g.newPipeline()
	}
	auth.label = "copy-on-write"
	auth.copyDifferences(p, p.differences)

	children := slices.Clone(p.children)
	for _, c := range children {
		c.setParent(auth)
		c.freeLayerCaches()
	}
	// The children keep the new authority alive.
	auth.Unref()

	p.g.env.Metrics.copiedOnWrite()
	slogger().Debug("pipeline: copy on write",
		slog.String("pipeline", p.label),
		slog.Int("children", len(children)),
		slog.String("differences", p.differences.String()))
}

// initState seeds the storage for c on p from the current authority.
func (p *Pipeline) initState(auth *Pipeline, c Category) {
	if c == CategoryLayers {
		p.nLayers = auth.nLayers
		p.layerDifferences = nil
		return
	}
	p.copyState(auth, c)
}

// copyDifferences makes p the authority for diff with the values held by
// src. p must not have children.
func (p *Pipeline) copyDifferences(src *Pipeline, diff CategorySet) {
	if diff.Has(CategoryLayers) {
		for _, l := range p.layerDifferences {
			l.owner = nil
			l.Unref()
		}
		p.layerDifferences = nil
		// A layer has a single owner, so derive new layers from the
		// originals rather than sharing them.
		for _, l := range src.layerDifferences {
			cp := l.copy()
			cp.owner = p
			p.layerDifferences = append(p.layerDifferences, cp)
		}
		p.nLayers = src.nLayers
		p.layersCacheDirty = true
	}

	if diff&pipelineBigState != 0 && p.big == nil {
		p.big = &bigState{}
	}
	for _, c := range (diff &^ CategoryLayers.bit()).Categories() {
		p.copyState(src, c)
	}
	p.differences |= diff
	p.g.generation++
}

// copyState copies the value of c from src, which must be the authority
// for c or hold a copy of it.
func (p *Pipeline) copyState(src *Pipeline, c Category) {
	switch c {
	case CategoryColor:
		p.color = src.color
	case CategoryBlendEnable:
		p.blendEnable = src.blendEnable
	case CategoryNonZeroPointSize:
		p.nonZeroPointSize = src.nonZeroPointSize
	case CategoryLighting:
		p.big.lighting = src.big.lighting
	case CategoryAlphaFunc:
		p.big.alphaFunc = src.big.alphaFunc
	case CategoryAlphaFuncReference:
		p.big.alphaRef = src.big.alphaRef
	case CategoryBlend:
		p.big.blend = src.big.blend
	case CategoryUserShader:
		p.big.program = src.big.program
	case CategoryDepth:
		p.big.depth = src.big.depth
	case CategoryFog:
		p.big.fog = src.big.fog
	case CategoryPointSize:
		p.big.pointSize = src.big.pointSize
	case CategoryLogicOps:
		p.big.logicOps = src.big.logicOps
	case CategoryCullFace:
		p.big.cullFace = src.big.cullFace
	case CategoryUniforms:
		p.big.uniforms.copyFrom(&src.big.uniforms)
	}
}

// change applies a modification of c unless same reports that the
// resolved value already matches.
func (p *Pipeline) change(c Category, same func(auth *Pipeline) bool, apply func()) {
	p.checkLive()
	auth := p.authority(c)
	if same(auth) {
		return
	}
	p.preChangeNotify(c)
	apply()
	if p != auth {
		p.pruneRedundantAncestry()
	}
}

// pruneRedundantAncestry skips ancestors whose every difference p now
// overrides. A layers authority that still defers to ancestors for some
// of its layers keeps its parent.
func (p *Pipeline) pruneRedundantAncestry() {
	if p.parent == nil {
		return
	}
	if p.differences.Has(CategoryLayers) && p.nLayers != len(p.layerDifferences) {
		return
	}

	parent := p.parent
	for parent.parent != nil && parent.differences|p.differences == p.differences {
		parent = parent.parent
	}
	if parent != p.parent {
		p.setParent(parent)
	}
}

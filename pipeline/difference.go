package pipeline

import "github.com/gogpu/pipestate/bitmask"

// realBlendInputs are the categories automatic blend enabling is derived
// from.
const realBlendInputs = CategorySet(1)<<CategoryColor |
	CategorySet(1)<<CategoryBlendEnable |
	CategorySet(1)<<CategoryBlend |
	CategorySet(1)<<CategoryUserShader |
	CategorySet(1)<<CategoryLayers

func pipelineDepth(p *Pipeline) int {
	n := 0
	for ; p.parent != nil; p = p.parent {
		n++
	}
	return n
}

// CompareDifferences returns the categories that may differ between a and
// b: everything either node or its ancestors below their common ancestor
// has taken authority for. Nodes without a common ancestor may differ in
// everything their chains own. A category outside the result is certainly
// equal, one inside it still needs Equal.
func CompareDifferences(a, b *Pipeline) CategorySet {
	a.checkLive()
	b.checkLive()

	var diff CategorySet
	da, db := pipelineDepth(a), pipelineDepth(b)
	for ; da > db; da-- {
		diff |= a.differences
		a = a.parent
	}
	for ; db > da; db-- {
		diff |= b.differences
		b = b.parent
	}
	for a != b {
		diff |= a.differences | b.differences
		a, b = a.parent, b.parent
		if a == nil || b == nil {
			break
		}
	}
	return diff
}

func layerDepth(l *Layer) int {
	n := 0
	for ; l.parent != nil; l = l.parent {
		n++
	}
	return n
}

// LayerCompareDifferences is CompareDifferences for two layers.
func LayerCompareDifferences(a, b *Layer) CategorySet {
	var diff CategorySet
	da, db := layerDepth(a), layerDepth(b)
	for ; da > db; da-- {
		diff |= a.differences
		a = a.parent
	}
	for ; db > da; db-- {
		diff |= b.differences
		b = b.parent
	}
	for a != b {
		diff |= a.differences | b.differences
		a, b = a.parent, b.parent
		if a == nil || b == nil {
			break
		}
	}
	return diff
}

// candidates widens the ancestry differences to the derived categories:
// any layer category when the layer lists may differ, and real blend
// enable when one of its inputs may.
func candidates(a, b *Pipeline) CategorySet {
	diff := CompareDifferences(a, b)
	if diff.Has(CategoryLayers) {
		diff |= AllLayerCategories
	}
	if diff&realBlendInputs != 0 {
		diff |= CategoryRealBlendEnable.bit()
	}
	return diff
}

// ForeachDifference calls fn for every category in categories on which a
// and b are not Equal, in ascending category order, until fn returns
// false. For layer categories layers holds the indices of the differing
// layers, counting indices present in only one of the two pipelines. For
// pipeline categories layers is nil. The layers mask is reused after fn
// returns. Bits of categories that do not exist are ignored.
func ForeachDifference(a, b *Pipeline, categories *bitmask.Bitmask, fn func(c Category, layers *bitmask.Bitmask) bool) {
	want := CategorySetFromBitmask(categories) & candidates(a, b)
	if want == 0 {
		return
	}

	layers := bitmask.New()
	defer layers.Destroy()

	for _, c := range want.Categories() {
		if !c.IsLayer() {
			if Equal(a, b, c) {
				continue
			}
			if !fn(c, nil) {
				return
			}
			continue
		}

		layers.ClearAll()
		if a.authority(CategoryLayers) == b.authority(CategoryLayers) {
			continue
		}
		layersEqual(a.layers(), b.layers(), c, func(index int) { layers.Set(index, true) })
		if layers.PopCount() == 0 {
			continue
		}
		if !fn(c, layers) {
			return
		}
	}
}

// Differences returns the categories in set on which a and b differ.
func Differences(a, b *Pipeline, set CategorySet) CategorySet {
	var out CategorySet
	for _, c := range (set & candidates(a, b)).Categories() {
		if !Equal(a, b, c) {
			out |= c.bit()
		}
	}
	return out
}

package pipeline

import "slices"

// UniformKind is the element type of a uniform value.
type UniformKind uint8

const (
	UniformFloat UniformKind = iota
	UniformInt
	UniformMatrix
)

// Uniform is a value for one uniform location. Components is the vector
// width, or the dimension for matrices.
type Uniform struct {
	Kind       UniformKind
	Components int
	Transpose  bool
	Floats     []float32
	Ints       []int32
}

// UniformFloats returns a float vector uniform.
func UniformFloats(components int, v ...float32) Uniform {
	return Uniform{Kind: UniformFloat, Components: components, Floats: v}
}

// UniformInts returns an integer vector uniform.
func UniformInts(components int, v ...int32) Uniform {
	return Uniform{Kind: UniformInt, Components: components, Ints: v}
}

// UniformMatrices returns a square matrix uniform of the given dimension.
func UniformMatrices(dim int, transpose bool, v ...float32) Uniform {
	return Uniform{Kind: UniformMatrix, Components: dim, Transpose: transpose, Floats: v}
}

// Count returns the number of array elements in u.
func (u Uniform) Count() int {
	n := u.Components
	if u.Kind == UniformMatrix {
		n *= u.Components
	}
	if n == 0 {
		return 0
	}
	if u.Kind == UniformInt {
		return len(u.Ints) / n
	}
	return len(u.Floats) / n
}

// Equal reports whether u and o set the same value.
func (u Uniform) Equal(o Uniform) bool {
	return u.Kind == o.Kind &&
		u.Components == o.Components &&
		u.Transpose == o.Transpose &&
		slices.Equal(u.Floats, o.Floats) &&
		slices.Equal(u.Ints, o.Ints)
}

func (u Uniform) clone() Uniform {
	u.Floats = slices.Clone(u.Floats)
	u.Ints = slices.Clone(u.Ints)
	return u
}

// uniformLocation returns the location for name, assigning the next free
// one on first use. Locations are shared by every pipeline of a graph.
func (g *graph) uniformLocation(name string) int {
	if loc, ok := g.uniformIndex[name]; ok {
		return loc
	}
	loc := len(g.uniformNames)
	g.uniformNames = append(g.uniformNames, name)
	g.uniformIndex[name] = loc
	return loc
}

func (g *graph) uniformName(loc int) string {
	if loc < 0 || loc >= len(g.uniformNames) {
		return ""
	}
	return g.uniformNames[loc]
}

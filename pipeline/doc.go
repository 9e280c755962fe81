// Package pipeline implements the pipeline authority graph: a tree of
// render state nodes that share every value they have not changed.
//
// Each node either owns a state [Category] (it is the authority for it)
// or inherits it from its nearest ancestor that does. Deriving a node is
// O(1) and a fresh child reads exactly the state of its parent:
//
//	root := pipeline.NewRoot(pipeline.Env{Features: features})
//	p := root.Copy()
//	p.SetColor(gputypes.Color{R: 1, A: 1})
//	p.SetLayerTexture(0, tex)
//
// Setting a value on a node never changes what any other node resolves.
// A node that has children is moved aside before it is modified: its
// children are reparented onto a copy holding the old values.
//
// Texture stages are [Layer] nodes with their own sharing tree. A
// pipeline refers to its layers by a user index; drawing order follows
// the index and each layer is assigned the next texture unit.
//
// The draw path compares the pipeline it is about to use with the one
// that is bound, using [ForeachDifference] to find the state that needs
// to be flushed and [Hash] with [EqualSet] to reuse state derived from
// an equivalent pipeline (see [Cache]).
//
// Nothing in this package is safe for concurrent use. A graph belongs to
// the thread that renders with it.
package pipeline

package pipeline

import (
	"fmt"
	"io"
)

// dotWriter keeps the first write error so the dump can be written
// without checking every line.
type dotWriter struct {
	w   io.Writer
	err error

	layers map[*Layer]string
}

func (d *dotWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// DumpDot writes the pipeline tree under root and the layer trees its
// nodes own as a Graphviz digraph. Each node is labelled with the
// categories it is the authority for.
func DumpDot(w io.Writer, root *Pipeline) error {
	root.checkLive()
	d := &dotWriter{w: w, layers: make(map[*Layer]string)}

	d.printf("digraph {\n")
	d.printf("  node [shape=box];\n")
	n := 0
	d.pipeline(root, "", &n)
	d.printf("}\n")
	return d.err
}

func (d *dotWriter) pipeline(p *Pipeline, parentID string, n *int) {
	id := fmt.Sprintf("pipeline%d", *n)
	*n++

	label := p.label
	if label == "" {
		label = "pipeline"
	}
	d.printf("  %s [label=%q, color=red];\n", id,
		fmt.Sprintf("%s\nage=%d\n%s", label, p.age, p.differences))
	if parentID != "" {
		d.printf("  %s -> %s;\n", parentID, id)
	}

	for _, l := range p.layerDifferences {
		lid := d.layer(l)
		d.printf("  %s -> %s [style=dashed];\n", id, lid)
	}

	for _, c := range p.children {
		d.pipeline(c, id, n)
	}
}

// layer emits l and its ancestors once each and returns the id of l.
func (d *dotWriter) layer(l *Layer) string {
	if id, ok := d.layers[l]; ok {
		return id
	}
	id := fmt.Sprintf("layer%d", len(d.layers))
	d.layers[l] = id

	d.printf("  %s [label=%q, color=blue];\n", id,
		fmt.Sprintf("layer %d\nunit=%d\n%s", l.index, l.Unit(), l.differences))
	if l.parent != nil {
		d.printf("  %s -> %s;\n", d.layer(l.parent), id)
	}
	return id
}

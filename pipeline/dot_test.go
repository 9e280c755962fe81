package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpDot(t *testing.T) {
	root := newRoot()
	a := root.Copy()
	a.SetLabel("text")
	a.SetColor(red)
	a.SetLayerTexture(0, tex(1))
	b := a.Copy()
	b.SetLayerTexture(0, tex(2))

	var sb strings.Builder
	require.NoError(t, DumpDot(&sb, root))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "digraph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"text\nage=`)
	assert.Contains(t, out, "pipeline0 -> pipeline1;")
	assert.Contains(t, out, "[style=dashed]")
	assert.Contains(t, out, "layer-texture")
	assert.Equal(t, 1, strings.Count(out, `label="root`))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDumpDotWriteError(t *testing.T) {
	assert.EqualError(t, DumpDot(failingWriter{}, newRoot()), "disk full")
}

package main

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pipestate/capability"
)

func parse(t *testing.T, args ...string) Config {
	t.Helper()
	conf := NewDefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	conf.AddFlags(fs)
	require.NoError(t, fs.Parse(args))
	return conf
}

func TestReportDescribedDriver(t *testing.T) {
	conf := parse(t, "--gl-version", "2.1", "-e", "GL_ARB_framebuffer_object", "--disable", "point-sprite")

	var out bytes.Buffer
	require.NoError(t, run(&conf, &out))

	s := out.String()
	assert.Contains(t, s, "driver:  described (GL 2.1)")
	assert.Contains(t, s, "+ offscreen\n")
	assert.Contains(t, s, "- offscreen-blit\n")
	assert.Contains(t, s, "- point-sprite\n")
	assert.Contains(t, s, "+ shaders-glsl\n")
}

func TestReportRegisteredDriver(t *testing.T) {
	conf := parse(t, "--driver", "null")

	var out bytes.Buffer
	require.NoError(t, run(&conf, &out))
	assert.Contains(t, out.String(), "driver:  null (GL 2.1)")
}

func TestDotOutput(t *testing.T) {
	conf := parse(t, "--dot")

	var out bytes.Buffer
	require.NoError(t, run(&conf, &out))
	assert.Contains(t, out.String(), "digraph {")
	assert.Contains(t, out.String(), `"text\nage=`)
}

func TestConfigErrors(t *testing.T) {
	conf := parse(t, "--api", "vulkan")
	assert.ErrorContains(t, run(&conf, &bytes.Buffer{}), `unknown api "vulkan"`)

	conf = parse(t, "--gl-version", "two")
	assert.Error(t, run(&conf, &bytes.Buffer{}))

	conf = parse(t, "--disable", "ray-tracing")
	assert.ErrorContains(t, run(&conf, &bytes.Buffer{}), `unknown feature "ray-tracing"`)
}

func TestStaticFromConfig(t *testing.T) {
	conf := parse(t, "--api", "gles2", "--gl-version", "2.0", "--missing", "glGenFramebuffers,glBlitFramebuffer")
	d, err := conf.Static()
	require.NoError(t, err)
	assert.Equal(t, capability.APIGLES2, d.API())
	major, minor := d.Version()
	assert.Equal(t, 2, major)
	assert.Equal(t, 0, minor)
	assert.Equal(t, []string{"glGenFramebuffers", "glBlitFramebuffer"}, d.Missing)
}

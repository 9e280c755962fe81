package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "offscreen,point-sprite", (FeatureOffscreen | FeaturePointSprite).String())
}

func TestParseFlag(t *testing.T) {
	for _, fn := range flagNames {
		f, ok := ParseFlag(fn.name)
		assert.True(t, ok, fn.name)
		assert.Equal(t, fn.flag, f)
	}
	_, ok := ParseFlag("ray-tracing")
	assert.False(t, ok)
}

func TestAPIString(t *testing.T) {
	assert.Equal(t, "GL", APIGL.String())
	assert.Equal(t, "GLES1|GLES2", (APIGLES1 | APIGLES2).String())
	assert.Equal(t, "none", API(0).String())
}

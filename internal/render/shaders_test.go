//go:build !android

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderSources(t *testing.T) {
	for name, src := range map[string]string{
		"vertex":   particleVertSrc,
		"fragment": particleFragSrc,
	} {
		assert.True(t, strings.HasPrefix(src, "#version 410 core\n"), name)
		assert.True(t, strings.HasSuffix(src, "\x00"), "%s must be NUL terminated for gl.Strs", name)
		assert.Equal(t, 1, strings.Count(src, "\x00"), name)
	}
	// Attribute locations match the VAO layout in NewRenderer.
	assert.Contains(t, particleVertSrc, "layout(location = 0) in vec2 aCorner")
	assert.Contains(t, particleVertSrc, "layout(location = 1) in vec4 aInstance")
}

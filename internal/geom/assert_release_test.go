//go:build !debug

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHermiteTooFewSamples(t *testing.T) {
	assert.Equal(t, float32(0), HermiteAt(0.5, []float32{1, 2, 3}))
	assert.Equal(t, float32(0), LinearAt(0.5, nil))
}

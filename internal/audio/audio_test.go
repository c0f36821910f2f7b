package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curveswarm/internal/swarm"
)

func frames(t *testing.T, buf []byte) (left, right []float32) {
	t.Helper()
	require.Zero(t, len(buf)%8)
	for i := 0; i < len(buf); i += 8 {
		left = append(left, math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
		right = append(right, math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:])))
	}
	return left, right
}

func TestChimeShape(t *testing.T) {
	buf := Chime(swarm.KindLines)
	left, right := frames(t, buf)

	want := 2*int(ChimeNoteStep*SampleRate) + int(ChimeTail*SampleRate)
	require.Len(t, left, want)
	assert.Equal(t, left, right, "mono chime on both channels")

	var peak float32
	for _, s := range left {
		require.False(t, math.IsNaN(float64(s)))
		require.LessOrEqual(t, math.Abs(float64(s)), 1.0)
		peak = max(peak, float32(math.Abs(float64(s))))
	}
	assert.Greater(t, peak, float32(0.05), "audible")
	assert.InDelta(t, 0, left[0], 1e-6, "starts silent")
	assert.InDelta(t, 0, left[len(left)-1], 1e-3, "rings out")
}

func TestChimePitchByKind(t *testing.T) {
	seen := map[float64]swarm.GeneratorKind{}
	for _, k := range []swarm.GeneratorKind{
		swarm.KindRandom, swarm.KindRandomClosest, swarm.KindLines,
		swarm.KindRandomLines, swarm.KindImage,
	} {
		f := ChimeRoot(k)
		_, dup := seen[f]
		assert.False(t, dup, "%v shares a root", k)
		seen[f] = k
	}
	assert.Equal(t, 440.0, ChimeRoot(swarm.GeneratorKind(99)))
	assert.NotEqual(t, Chime(swarm.KindRandom), Chime(swarm.KindImage))
}

func TestADSR(t *testing.T) {
	assert.Equal(t, 0.0, adsr(0, 0.1, 0.2, 0.5, 0.2))
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.0, adsr(1, 0.1, 0.2, 0.5, 0.2), 1e-9)
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)

	n, err := r.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.False(t, p.Ready())
	assert.NotPanics(t, func() { p.Chime(swarm.KindRandom) })
}

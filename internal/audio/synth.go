package audio

import (
	"math"

	"curveswarm/internal/swarm"
)

// Chime timing.
const (
	ChimeNoteStep = 0.11 // seconds between note onsets
	ChimeTail     = 0.6  // seconds the last note rings
)

// chimeRoots is a pentatonic set, one root per generator kind.
var chimeRoots = map[swarm.GeneratorKind]float64{
	swarm.KindRandom:        392.00, // G4
	swarm.KindRandomClosest: 440.00, // A4
	swarm.KindLines:         523.25, // C5
	swarm.KindRandomLines:   587.33, // D5
	swarm.KindImage:         659.25, // E5
}

// chimeIntervals stack a fifth and an octave on the root.
var chimeIntervals = []float64{1, 1.5, 2}

// ChimeRoot answers the root frequency for kind. Unknown kinds get A4.
func ChimeRoot(kind swarm.GeneratorKind) float64 {
	if f, ok := chimeRoots[kind]; ok {
		return f
	}
	return 440
}

// Chime renders the transition chime for kind as stereo float32 LE frames:
// a rolled bell chord over the kind's root.
func Chime(kind swarm.GeneratorKind) []byte {
	root := ChimeRoot(kind)
	noteStep := int(ChimeNoteStep * SampleRate)
	total := (len(chimeIntervals)-1)*noteStep + int(ChimeTail*SampleRate)
	mix := make([]float64, total)

	for ni, iv := range chimeIntervals {
		freq := root * iv
		start := ni * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.45, 0.12, 0.4)
			// Bell: inharmonic modulator, index follows the envelope.
			s := fm(t, freq, 3.5, 4.0*env) * env * 0.22
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.05
			mix[start+j] += s
		}
	}

	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// softSat is a gentle saturation that never leaves [-1, 1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := range ChannelCount {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curveswarm/internal/geom"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curveswarm.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 5000, s.ParticleCount)
	assert.Equal(t, 10000, s.AccentParticleCount)
	assert.Equal(t, geom.Range{Min: -80, Max: 0}, s.RangeZ)
	assert.Equal(t, 20, s.AccentPicks)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	s, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, `
particle_count = 1200
accent_fade = 0.01
background = "#000000"
image_path = "img/face.png"
seed = 42

[range_z]
min = -60
max = 5
`)
	s, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.ParticleCount = 1200
	want.AccentFade = 0.01
	want.Background = "#000000"
	want.ImagePath = "img/face.png"
	want.Seed = 42
	want.RangeZ = geom.Range{Min: -60, Max: 5}
	assert.Equal(t, want, s)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "particle_count = ="},
		{"wrong type", `particle_count = "many"`},
		{"no particles", "particle_count = 0"},
		{"empty depth", "[range_z]\nmin = 0\nmax = 0"},
		{"bad color", `background = "green"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, writeFile(t, "particle_count = 77\nseed = 1"))
	t.Setenv(EnvSeed, "9001")

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 77, s.ParticleCount)
	assert.Equal(t, uint64(9001), s.Seed)
	assert.Equal(t, uint64(9001), s.ResolveSeed())

	t.Setenv(EnvSeed, "not a number")
	s, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Seed)
}

func TestResolveSeedFromClock(t *testing.T) {
	s := Default()
	assert.NotZero(t, s.ResolveSeed())
}

func TestColors(t *testing.T) {
	s := Default()
	want, err := colorful.Hex("#1cc714")
	require.NoError(t, err)
	assert.Equal(t, want, s.BackgroundColor())
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, s.SpriteColor())

	s.Background = "bogus"
	s.ParticleColor = "bogus"
	assert.Equal(t, colorful.Color{}, s.BackgroundColor())
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, s.SpriteColor())
}

func TestView(t *testing.T) {
	s := Default()
	v := s.View()
	assert.Equal(t, s.ParticleCount, v.ParticleCount)
	assert.Equal(t, s.AccentParticleCount, v.AccentCap)
	assert.Equal(t, s.RangeZ, v.RangeZ)
	assert.Equal(t, s.AccentFade, v.AccentFade)
	assert.Equal(t, s.AccentRise, v.AccentRise)
	assert.Equal(t, s.AccentForce, v.AccentForce)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweepsnake/internal/game"
	"sweepsnake/internal/geom"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	s, err := FromEnv(mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), s.Game)
	assert.False(t, s.Mute)
}

func TestFromEnvOverrides(t *testing.T) {
	s, err := FromEnv(mapLookup(map[string]string{
		EnvWidth:       "32",
		EnvHeight:      "18",
		EnvSpeed:       "2.5",
		EnvLength:      "7",
		EnvDirX:        "0",
		EnvDirY:        "-1",
		EnvHeightBound: "true",
		EnvSeed:        "1234",
		EnvMute:        "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, game.Config{
		Width:              32,
		Height:             18,
		Speed:              2.5,
		SnakeLength:        7,
		Direction:          geom.New(0, -1),
		HeightAsSweepBound: true,
	}, s.Game)
	assert.Equal(t, uint64(1234), s.Seed)
	assert.True(t, s.Mute)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad width", map[string]string{EnvWidth: "wide"}, EnvWidth},
		{"bad speed", map[string]string{EnvSpeed: "fast"}, EnvSpeed},
		{"bad mute", map[string]string{EnvMute: "maybe"}, EnvMute},
		{"bad seed", map[string]string{EnvSeed: "-1"}, EnvSeed},
		{"width overflow", map[string]string{EnvWidth: "99999999999"}, EnvWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(mapLookup(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromEnvValidates(t *testing.T) {
	_, err := FromEnv(mapLookup(map[string]string{EnvDirX: "0", EnvDirY: "0"}))
	require.ErrorIs(t, err, game.ErrZeroDirection)

	_, err = FromEnv(mapLookup(map[string]string{EnvLength: "0"}))
	require.ErrorIs(t, err, game.ErrInvalidLength)
}

func TestLoadReadsEnvFile(t *testing.T) {
	// Register cleanup for variables the .env file will set.
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvSpeed, "")
	require.NoError(t, os.Unsetenv(EnvWidth))
	require.NoError(t, os.Unsetenv(EnvSpeed))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_WIDTH=40\nSNAKE_SPEED=6.5\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(40), s.Game.Width)
	assert.Equal(t, 6.5, s.Game.Speed)
}

func TestLoadEnvDoesNotOverride(t *testing.T) {
	t.Setenv(EnvWidth, "12")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_WIDTH=40\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(12), s.Game.Width)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

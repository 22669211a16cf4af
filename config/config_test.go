package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"MAZE_HEIGHT", "MAZE_WIDTH", "MAZE_GAP_SIZE",
		"MAZE_RANDOM_SEED", "MAZE_MAX_DIMENSION", "MAZE_MAX_PIXELS",
		"MAZE_LISTEN_ADDR", "GIN_MODE"} {
		// t.Setenv restores the original value when the test ends.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := fromEnv()
	assert.Equal(t, 21, cfg.Height)
	assert.Equal(t, 21, cfg.Width)
	assert.Equal(t, 10, cfg.GapSize)
	assert.Equal(t, int64(-1), cfg.RandomSeed)
	assert.Equal(t, 401, cfg.MaxDimension)
	assert.Equal(t, int64(4096*4096), cfg.MaxPixels)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MAZE_HEIGHT", "11")
	t.Setenv("MAZE_WIDTH", "not a number")
	t.Setenv("MAZE_RANDOM_SEED", "77")
	t.Setenv("MAZE_LISTEN_ADDR", "127.0.0.1:9000")
	cfg := fromEnv()
	assert.Equal(t, 11, cfg.Height)
	assert.Equal(t, 21, cfg.Width)
	assert.Equal(t, int64(77), cfg.RandomSeed)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("MAZE_GAP_SIZE=3\n"), 0o644))
	t.Chdir(dir)

	// godotenv.Load doesn't override variables that are already set, and
	// t.Setenv makes sure the one it sets is cleaned up.
	t.Setenv("MAZE_GAP_SIZE", "")
	os.Unsetenv("MAZE_GAP_SIZE")
	cfg := Load()
	assert.Equal(t, 3, cfg.GapSize)
}

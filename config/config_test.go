package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so a stray minotaur.yaml is never picked up.
func inTempDir(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("minotaur", nil)
	require.NoError(t, err)

	assert.Equal(t, "Minotaur", cfg.Window.Title)
	assert.Equal(t, 1.0, cfg.Window.Scale)
	assert.False(t, cfg.Window.Fullscreen)
	assert.Zero(t, cfg.Game.Seed)
	assert.Equal(t, "assets", cfg.Assets.Dir)
	assert.Equal(t, "en", cfg.Locale.Lang)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
	assert.False(t, cfg.Debug.Minimap)
}

func TestFlagsOverride(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("minotaur", []string{"--seed", "42", "--log-level", "debug", "--minimap", "--assets", "/tmp/art"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, int64(42), cfg.SeedOrNow())
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.True(t, cfg.Debug.Minimap)
	assert.Equal(t, "/tmp/art", cfg.Assets.Dir)
}

func TestConfigFile(t *testing.T) {
	dir := inTempDir(t)
	yaml := "window:\n  title: Labyrinth\n  scale: 2\ngame:\n  seed: 7\ndebug:\n  fps: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minotaur.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("minotaur", nil)
	require.NoError(t, err)
	assert.Equal(t, "Labyrinth", cfg.Window.Title)
	assert.Equal(t, 2.0, cfg.Window.Scale)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.True(t, cfg.Debug.FPS)

	// flags beat the file
	cfg, err = Load("minotaur", []string{"--seed", "9"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Game.Seed)
}

func TestExplicitConfigMissing(t *testing.T) {
	dir := inTempDir(t)

	_, err := Load("minotaur", []string{"--config", filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	inTempDir(t)
	t.Setenv("MINOTAUR_LOCALE_LANG", "de")
	t.Setenv("MINOTAUR_GAME_SEED", "11")

	cfg, err := Load("minotaur", nil)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale.Lang)
	assert.Equal(t, int64(11), cfg.Game.Seed)
}

func TestValidate(t *testing.T) {
	inTempDir(t)

	_, err := Load("minotaur", []string{"--log-level", "loud"})
	assert.Error(t, err)

	t.Setenv("MINOTAUR_WINDOW_SCALE", "0")
	_, err = Load("minotaur", nil)
	assert.Error(t, err)
}

func TestBadFlag(t *testing.T) {
	inTempDir(t)

	_, err := Load("minotaur", []string{"--bogus"})
	assert.Error(t, err)
}

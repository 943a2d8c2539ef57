package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadLevelingDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadLeveling()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.MessageXP.Min)
	assert.Equal(t, 25, cfg.MessageXP.Max)
	assert.Equal(t, 60000, cfg.MessageXP.CooldownMs)
	assert.Equal(t, 5, cfg.ReactionXP.Min)
	assert.Equal(t, "exponential", cfg.Curve.Shape)
	assert.Equal(t, 1.75, cfg.Curve.Multiplier)
	assert.Equal(t, 50, cfg.Curve.MaxLevel)
}

func TestLoadLevelingFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	yaml := []byte("message_xp:\n  min: 1\n  max: 2\n  cooldown_ms: 500\ncurve:\n  shape: linear\n  multiplier: 3.0\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "leveling.yaml"), yaml, 0o644))

	cfg, err := loadLeveling()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.MessageXP.Min)
	assert.Equal(t, 2, cfg.MessageXP.Max)
	assert.Equal(t, 500, cfg.MessageXP.CooldownMs)
	assert.Equal(t, "linear", cfg.Curve.Shape)
	assert.Equal(t, 3.0, cfg.Curve.Multiplier)
	// Untouched keys keep their defaults.
	assert.Equal(t, 50, cfg.Curve.MaxLevel)
	assert.Equal(t, 10, cfg.ReactionXP.Max)
}

func TestSplitIDs(t *testing.T) {
	assert.Nil(t, splitIDs(""))
	assert.Equal(t, []string{"1", "2"}, splitIDs("1, 2"))
	assert.Equal(t, []string{"42"}, splitIDs("42,"))
}

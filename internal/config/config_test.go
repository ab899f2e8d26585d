package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{EnvLogLevel, EnvLogPretty, EnvGames, EnvWorkers, EnvMaxTurns, EnvOpeningPlies, EnvOutput, EnvSeed} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaultsWithoutDotenv(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGames, "12")
	t.Setenv(EnvWorkers, "3")
	t.Setenv(EnvLogPretty, "false")
	t.Setenv(EnvSeed, "99")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Games)
	require.Equal(t, 3, cfg.Workers)
	require.False(t, cfg.LogPretty)
	require.Equal(t, uint64(99), cfg.Seed)
}

func TestLoadDotenvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset.
	os.Unsetenv(EnvMaxTurns)
	os.Unsetenv(EnvOutput)
	t.Cleanup(func() {
		os.Unsetenv(EnvMaxTurns)
		os.Unsetenv(EnvOutput)
	})

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(EnvMaxTurns+"=250\n"+EnvOutput+"=games.csv\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 250, cfg.MaxTurns)
	require.Equal(t, "games.csv", cfg.Output)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWorkers, "many")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, EnvWorkers)

	t.Setenv(EnvWorkers, "0")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "workers")
}

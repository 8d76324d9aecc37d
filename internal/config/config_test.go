// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable ApplyEnvOverrides reads, restoring them
// when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ATHENA_DATA_DIR", "ATHENA_SAVE_FILE", "ATHENA_LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "athena.txt", cfg.Storage.FileName)
	assert.Equal(t, filepath.Join("data", "athena.txt"), cfg.SavePath())
	assert.Equal(t, "Athena", cfg.UI.AssistantName)
	assert.Equal(t, "auto", cfg.UI.Color)
	assert.True(t, cfg.UI.History)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join("data", "athena.log"), cfg.LogPath())
	assert.NoError(t, cfg.Validate())
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPath_PartialFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[storage]
data_dir = "/tmp/athena-data"

[ui]
history = false
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/athena-data", cfg.Storage.DataDir)
	assert.Equal(t, "athena.txt", cfg.Storage.FileName, "unset keys keep defaults")
	assert.False(t, cfg.UI.History)
	assert.Empty(t, cfg.HistoryPath())
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[storage]\ndatadir = \"x\"\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.datadir")
}

func TestLoadFromPath_SyntaxError(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[storage\n")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[storage]
file_name = "sub/athena.txt"

[ui]
color = "rainbow"

[log]
level = "loud"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)
	assert.Equal(t, "storage.file_name", verrs[0].Field)
	assert.Equal(t, "ui.color", verrs[1].Field)
	assert.Equal(t, "log.level", verrs[2].Field)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATHENA_DATA_DIR", "/srv/athena")
	t.Setenv("ATHENA_SAVE_FILE", "tasks.txt")
	t.Setenv("ATHENA_LOG_LEVEL", "debug")
	t.Setenv("NO_COLOR", "")

	path := writeConfig(t, "[storage]\ndata_dir = \"from-file\"\n")
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/athena", cfg.Storage.DataDir, "env beats file")
	assert.Equal(t, "tasks.txt", cfg.Storage.FileName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "never", cfg.UI.Color)
}

// =============================================================================
// SAVING
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Storage.DataDir = "/home/user/tasks"
	cfg.UI.Prompt = "athena> "
	cfg.Log.File = ""

	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Empty(t, loaded.LogPath())
}

// =============================================================================
// GET / KEYS
// =============================================================================

func TestGet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("storage.file_name")
	require.NoError(t, err)
	assert.Equal(t, "athena.txt", v)

	v, err = cfg.Get("ui.history")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = cfg.Get("storage")
	assert.NoError(t, err, "tables can be fetched whole")

	_, err = cfg.Get("storage.nope")
	assert.Error(t, err)

	_, err = cfg.Get("storage.data_dir.x")
	assert.Error(t, err)

	_, err = cfg.Get("")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	keys := Keys()

	assert.Contains(t, keys, "storage.data_dir")
	assert.Contains(t, keys, "ui.assistant_name")
	assert.Contains(t, keys, "log.level")
	assert.IsNonDecreasing(t, keys)

	cfg := Default()
	for _, k := range keys {
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, `"data"`, FormatValue("data"))
	assert.Equal(t, "false", FormatValue(false))
}

func TestString(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, "[storage]")
	assert.Contains(t, out, `file_name = "athena.txt"`)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/athena/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.input)
		if tc.ok {
			require.NoError(t, err, tc.input)
		} else {
			require.Error(t, err, tc.input)
		}
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "key=value")
}

func TestOpen_WritesToDataDir(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")

	logger, closeFn, err := Open(cfg, false)
	require.NoError(t, err)
	logger.Debug("not at info")
	logger.Info("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(cfg.Storage.DataDir, "athena.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.NotContains(t, string(data), "not at info")
}

func TestOpen_VerboseForcesDebug(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DataDir = t.TempDir()

	logger, closeFn, err := Open(cfg, true)
	require.NoError(t, err)
	logger.Debug("details")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=details")
}

func TestOpen_NoFileDiscards(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = ""

	logger, closeFn, err := Open(cfg, false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeFn())
}

func TestOpen_BadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "chatty"

	_, closeFn, err := Open(cfg, false)
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}

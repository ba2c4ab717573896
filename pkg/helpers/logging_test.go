// Enjoy
// Copyright (c) 2025 The Enjoy Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Enjoy.
//
// Enjoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Enjoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Enjoy.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	logger := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

//nolint:paralleltest // replaces the global logger
func TestInitLogging(t *testing.T) {
	restoreLogger(t)

	dir := filepath.Join(t.TempDir(), "state", "enjoy")
	var buf bytes.Buffer

	require.NoError(t, InitLogging(dir, "enjoy.log", 0, &buf))

	log.Info().Msg("hidden message")
	log.Warn().Msg("shown message")

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "shown message")

	data, err := os.ReadFile(filepath.Join(dir, "enjoy.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "shown message")
}

//nolint:paralleltest // replaces the global logger
func TestInitLogging_Verbosity(t *testing.T) {
	restoreLogger(t)

	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{verbosity: -1, expected: zerolog.WarnLevel},
		{verbosity: 0, expected: zerolog.WarnLevel},
		{verbosity: 1, expected: zerolog.InfoLevel},
		{verbosity: 2, expected: zerolog.DebugLevel},
		{verbosity: 3, expected: zerolog.TraceLevel},
		{verbosity: 7, expected: zerolog.TraceLevel},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		require.NoError(t, InitLogging(dir, "enjoy.log", tt.verbosity))
		assert.Equal(t, tt.expected, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

//nolint:paralleltest // replaces the global logger
func TestInitLogging_UnusableDirectory(t *testing.T) {
	restoreLogger(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	var buf bytes.Buffer

	err := InitLogging(filepath.Join(blocker, "enjoy"), "enjoy.log", 0, &buf)

	require.Error(t, err)
	log.Error().Msg("still logged")
	assert.Contains(t, buf.String(), "still logged")
}

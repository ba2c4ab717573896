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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	pathhelpers "github.com/thingsiplay/enjoy/pkg/helpers"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// Resolver returns a path resolver backed by this filesystem.
func (h *FSHelper) Resolver() *pathhelpers.Resolver {
	return pathhelpers.NewResolver(h.Fs)
}

// CreateFile writes content to path, creating parent directories.
func (h *FSHelper) CreateFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateUserConfig writes an INI user config. Leading tabs from indented raw
// string literals are removed from each line.
func (h *FSHelper) CreateUserConfig(path, content string) error {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, "\t ")
	}
	return h.CreateFile(path, strings.Join(lines, "\n"))
}

// CreateRetroArchConfig writes a retroarch.cfg with the given keys, quoting
// values the way RetroArch does.
func (h *FSHelper) CreateRetroArchConfig(path string, values map[string]string) error {
	var b strings.Builder
	for k, v := range values {
		_, _ = fmt.Fprintf(&b, "%s = %q\n", k, v)
	}
	return h.CreateFile(path, b.String())
}

// CreateCores creates empty libretro core files in dir.
func (h *FSHelper) CreateCores(dir string, names ...string) error {
	for _, name := range names {
		if err := h.CreateFile(filepath.Join(dir, name), ""); err != nil {
			return err
		}
	}
	return nil
}

// CreateGames creates empty ROM files at the given paths.
func (h *FSHelper) CreateGames(paths ...string) error {
	for _, path := range paths {
		if err := h.CreateFile(path, ""); err != nil {
			return err
		}
	}
	return nil
}

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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrUnsetVariable = errors.New("environment variable not set")

// Resolver expands and absolutizes user supplied paths. Existence checks go
// through an afero filesystem.
type Resolver struct {
	fs afero.Fs
}

// NewResolver returns a Resolver on fs, or on the OS filesystem if fs is nil.
func NewResolver(fs afero.Fs) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Resolver{fs: fs}
}

func (r *Resolver) Fs() afero.Fs {
	return r.fs
}

// Absolute expands "~" and environment variables in path and makes it
// absolute against the working directory. With resolveSymlinks the target
// must exist and is canonicalized; otherwise the result is lexical and the
// target may be missing. Returns false if expansion fails, the path is empty
// or, when resolving, the target does not exist.
func (r *Resolver) Absolute(path string, resolveSymlinks bool) (string, bool) {
	if path == "" {
		return "", false
	}

	expanded, err := ExpandEnv(ExpandTilde(path))
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("could not expand path")
		return "", false
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", false
	}
	if !resolveSymlinks {
		return abs, true
	}

	resolved, err := r.canonical(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// Exists reports whether path exists on the resolver's filesystem.
func (r *Resolver) Exists(path string) bool {
	_, err := r.fs.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func (r *Resolver) IsFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (r *Resolver) canonical(path string) (string, error) {
	if _, ok := r.fs.(*afero.OsFs); ok {
		//nolint:wrapcheck // only success matters to callers
		return filepath.EvalSymlinks(path)
	}
	// Non-OS filesystems have no symlinks to follow.
	if _, err := r.fs.Stat(path); err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return filepath.Clean(path), nil
}

// ExpandTilde replaces a leading "~" with the home directory. It never fails;
// the path is returned as is if the home directory is unknown.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return home + path[1:]
}

// ExpandEnv replaces $VAR and ${VAR} references. Unlike os.ExpandEnv an unset
// variable is an error instead of an empty string.
func ExpandEnv(path string) (string, error) {
	var missing []string
	expanded := os.Expand(path, func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnsetVariable, strings.Join(missing, ", "))
	}
	return expanded, nil
}

// EnsureSuffix appends suffix to the filename of path unless the filename
// already ends with it. The check is a plain string comparison, so
// "snes9x_libretro" becomes "snes9x_libretro_libretro.so".
func EnsureSuffix(suffix, path string) string {
	if suffix == "" {
		return path
	}
	dir, file := filepath.Split(path)
	if strings.HasSuffix(file, suffix) {
		return path
	}
	return dir + file + suffix
}

// StripTrailingSlash removes one trailing "/".
func StripTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

type PathInfo struct {
	Path      string
	Dir       string
	Filename  string
	Extension string
	Name      string
}

// GetPathInfo splits path into its parent directory, filename, extension
// (with dot) and name (filename without extension).
func GetPathInfo(path string) PathInfo {
	var info PathInfo
	info.Path = path
	info.Dir = filepath.Dir(path)
	info.Filename = filepath.Base(path)
	info.Extension = filepath.Ext(info.Filename)
	info.Name = strings.TrimSuffix(info.Filename, info.Extension)

	// A dot file like ".bashrc" is all name, no extension.
	if info.Name == "" {
		info.Name = info.Filename
		info.Extension = ""
	}

	return info
}

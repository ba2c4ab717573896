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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/thingsiplay/enjoy/pkg/helpers"
)

// retroArchKeys lists the only keys read from retroarch.cfg.
var retroArchKeys = []string{"libretro_directory"}

// NewFromRetroArchConfig reads RetroArch's own retroarch.cfg. If path is nil
// the default locations are searched. A config that cannot be found yields an
// empty layer, since RetroArch itself will fall back to its defaults.
func NewFromRetroArchConfig(r *helpers.Resolver, path *string) (*Settings, error) {
	s := &Settings{}

	var cfgPath string
	if path != nil {
		fullpath, ok := r.Absolute(*path, true)
		if !ok {
			log.Warn().Str("path", *path).Msg("retroarch config not found")
			return s, nil
		}
		cfgPath = fullpath
	} else {
		found, ok := SearchRetroArchConfig(r)
		if !ok {
			log.Debug().Msg("no retroarch config found at default locations")
			return s, nil
		}
		cfgPath = found
	}
	s.RetroArchConfig = &cfgPath

	data, err := afero.ReadFile(r.Fs(), cfgPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	values, err := ParseRetroArchConfig(data, retroArchKeys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, err)
	}

	if dir, ok := values["libretro_directory"]; ok && dir != "" {
		s.LibretroDirectory = &dir
	}

	log.Debug().
		Str("path", cfgPath).
		Str("libretro_directory", Value(s.LibretroDirectory)).
		Msg("loaded retroarch config")

	return s, nil
}

// RetroArchConfigCandidates returns the default retroarch.cfg locations in
// lookup order.
func RetroArchConfigCandidates() []string {
	var candidates []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, RetroArchName, RetroArchCfgFile))
	}
	home := xdg.Home
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		home = h
	}
	candidates = append(candidates,
		filepath.Join(home, ".config", RetroArchName, RetroArchCfgFile),
		filepath.Join(home, "."+RetroArchCfgFile),
	)
	return candidates
}

// SearchRetroArchConfig returns the first existing default retroarch.cfg.
func SearchRetroArchConfig(r *helpers.Resolver) (string, bool) {
	for _, candidate := range RetroArchConfigCandidates() {
		if r.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// ParseRetroArchConfig extracts keys from a flat retroarch.cfg document. Any
// surrounding double quotes are removed from the values. Keys not listed are
// ignored.
func ParseRetroArchConfig(data []byte, keys []string) (map[string]string, error) {
	doc, err := LoadINI(data)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(keys))
	sec := doc.Section("")
	for _, key := range keys {
		if v, ok := sectionValue(sec, key); ok {
			values[key] = strings.Trim(v, `"`)
		}
	}

	return values, nil
}

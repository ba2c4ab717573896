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

package launcher

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers"
)

// LibretroSuffix returns the filename ending of libretro cores on goos.
func LibretroSuffix(goos string) string {
	switch goos {
	case "windows":
		return "_libretro.dll"
	case "darwin":
		return "_libretro.dylib"
	default:
		return "_libretro.so"
	}
}

// DefaultLibretroSuffix is the core filename ending for this platform.
var DefaultLibretroSuffix = LibretroSuffix(runtime.GOOS)

// SelectGame returns the first game whose name (filename without extension)
// matches every filter pattern. Without filters the first game is returned.
func SelectGame(games, filters []string, strict bool) (string, bool) {
	if len(filters) == 0 {
		if len(games) == 0 {
			return "", false
		}
		return games[0], true
	}

	for _, game := range games {
		if helpers.MatchFilters(helpers.GetPathInfo(game).Name, filters, strict) {
			return game, true
		}
	}

	log.Debug().Strs("filter", filters).Int("games", len(games)).Msg("no game matched filter")
	return "", false
}

// ResolveLibretro finds the libretro path for game. First match wins:
//  1. an explicit libretro path, used verbatim
//  2. the core alias looked up in the core rules
//  3. the first directory rule matching the game's parent directory
//  4. the extension rule for the game's lowercase extension
//
// Requesting a core alias without any core rules loaded is an error, while
// an alias missing from loaded rules falls through to steps 3 and 4.
func ResolveLibretro(s *config.Settings, game string) (string, error) {
	if s.Libretro != nil {
		return *s.Libretro, nil
	}

	if s.Core != nil {
		if s.CoreRules == nil {
			return "", fmt.Errorf("%w: requested core %q", config.ErrNoCoreRules, *s.Core)
		}
		if libretro, ok := s.CoreRules.Get(*s.Core); ok {
			return libretro, nil
		}
		log.Debug().Str("core", *s.Core).Msg("core alias not found in rules")
	}

	if s.DirectoryRules != nil {
		if libretro, ok := LibretroFromDirectory(s.DirectoryRules, game); ok {
			return libretro, nil
		}
	}

	if s.ExtensionRules != nil {
		if libretro, ok := LibretroFromExtension(s.ExtensionRules, game); ok {
			return libretro, nil
		}
	}

	return "", config.ErrLibretroNotSet
}

// LibretroFromDirectory returns the first directory rule whose pattern
// matches the whole parent directory of game. Matching is case-sensitive and
// a pattern does not match subdirectories unless it ends in a wildcard.
func LibretroFromDirectory(rules config.Rules, game string) (string, bool) {
	parent := filepath.Dir(game)
	for _, rule := range rules {
		if helpers.WildcardMatch(parent, helpers.StripTrailingSlash(rule.Key), true) {
			log.Debug().Str("rule", rule.Key).Str("dir", parent).Msg("matched directory rule")
			return rule.Libretro, true
		}
	}
	return "", false
}

// LibretroFromExtension looks up the lowercase extension of game, without
// its dot.
func LibretroFromExtension(rules config.Rules, game string) (string, bool) {
	ext := strings.TrimPrefix(helpers.GetPathInfo(game).Extension, ".")
	if ext == "" {
		return "", false
	}
	return rules.Get(strings.ToLower(ext))
}

// CombineWithDirectory turns a libretro path into the full path of an
// existing core file. A relative libretro path is joined to directory; an
// absolute one ignores it. The suffix is added if the filename lacks it.
func CombineWithDirectory(r *helpers.Resolver, directory *string, libretro, suffix string) (string, error) {
	path := helpers.ExpandTilde(libretro)
	if !filepath.IsAbs(path) && directory != nil {
		path = filepath.Join(helpers.ExpandTilde(*directory), path)
	}
	path = helpers.EnsureSuffix(suffix, path)

	fullpath, ok := r.Absolute(path, true)
	if !ok {
		return "", fmt.Errorf("%w: %s", config.ErrLibretroNotFound, path)
	}
	return fullpath, nil
}

// FindCoresForLibretro returns every core alias whose libretro file is the
// same as libretro, comparing filenames with the suffix removed. Aliases
// are returned in rule order.
func FindCoresForLibretro(rules config.Rules, libretro, suffix string) []string {
	want := coreName(libretro, suffix)
	var cores []string
	for _, rule := range rules {
		if coreName(rule.Libretro, suffix) == want {
			cores = append(cores, rule.Key)
		}
	}
	return cores
}

func coreName(path, suffix string) string {
	return strings.TrimSuffix(filepath.Base(path), suffix)
}

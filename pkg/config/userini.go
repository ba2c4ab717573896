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
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/google/shlex"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/thingsiplay/enjoy/pkg/helpers"
	"gopkg.in/ini.v1"
)

// Keys shared by extension and directory rule sections.
const (
	keyLibretro = "libretro"
	keyCore     = "core"
)

// DefaultConfigPath returns the user config used when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, CfgFile)
}

// NewFromConfig loads the user configuration INI file at path. A nil path
// yields an empty layer. A missing file is an error only if required is set,
// i.e. the path was given explicitly.
//
// Example structure:
//
//	[options]
//	retroarch = /usr/bin/retroarch
//	libretro_directory = ~/.config/retroarch/cores
//	fullscreen = 1
//
//	[cores]
//	snes = snes9x
//	gb gbc = sameboy
//
//	[~/roms/genesis_wide]
//	core = mdwide
//
//	[.smc .sfc]
//	core = snes
//
//	[.md .gen]
//	libretro = genesis_plus_gx
func NewFromConfig(r *helpers.Resolver, path *string, required bool) (*Settings, error) {
	s := &Settings{}
	if path == nil {
		return s, nil
	}

	fullpath, ok := r.Absolute(*path, true)
	if !ok {
		if required {
			return nil, fmt.Errorf("%w: %s", ErrUserConfigNotFound, *path)
		}
		log.Debug().Str("path", *path).Msg("default user config not found, skipping")
		return s, nil
	}
	s.Config = &fullpath

	data, err := afero.ReadFile(r.Fs(), fullpath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUserConfigNotFound, err)
	}

	if err := s.ReadConfig(data); err != nil {
		return nil, fmt.Errorf("%s: %w", fullpath, err)
	}

	log.Debug().
		Str("path", fullpath).
		Int("cores", len(s.CoreRules)).
		Int("extensions", len(s.ExtensionRules)).
		Int("directories", len(s.DirectoryRules)).
		Msg("loaded user config")

	return s, nil
}

// ReadConfig parses INI content into s. The [cores] section is read before
// extension and directory rules because those may refer to core aliases.
func (s *Settings) ReadConfig(data []byte) error {
	doc, err := LoadINI(data)
	if err != nil {
		return err
	}

	if err := s.readOptions(doc); err != nil {
		return err
	}

	s.CoreRules = readCoreRules(doc)
	s.ExtensionRules = readExtensionRules(doc, s.CoreRules)
	s.DirectoryRules = readDirectoryRules(doc, s.CoreRules)

	return nil
}

// LoadINI parses a case-sensitive INI document. Inline comments are not
// stripped since paths and filter patterns may contain ";" or "#".
func LoadINI(data []byte) (*ini.File, error) {
	doc, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	return doc, nil
}

// readOptions reads the [options] section. Keys mirror the command line
// options with underscores instead of dashes. Only a single game can be given
// here and options about the config file itself are not available.
func (s *Settings) readOptions(doc *ini.File) error {
	sec, err := doc.GetSection(OptionsSection)
	if err != nil {
		return nil //nolint:nilerr // missing section is allowed
	}

	if game, ok := sectionValue(sec, "game"); ok {
		s.Games = append(s.Games, game)
	}

	strs := []struct {
		dst **string
		key string
	}{
		{&s.RetroArch, "retroarch"},
		{&s.RetroArchConfig, "retroarch_config"},
		{&s.Libretro, "libretro"},
		{&s.LibretroDirectory, "libretro_directory"},
		{&s.Core, "core"},
	}
	for _, o := range strs {
		if v, ok := sectionValue(sec, o.key); ok {
			*o.dst = ptr(v)
		}
	}

	if filter, ok := sectionValue(sec, "filter"); ok {
		s.Filter = []string{filter}
	}

	if raw, ok := sectionValue(sec, "retroarch_arguments"); ok {
		args, err := shlex.Split(raw)
		if err != nil {
			return fmt.Errorf("%w: retroarch_arguments: %w", ErrConfigParse, err)
		}
		s.RetroArchArgs = args
	}

	bools := []struct {
		dst **bool
		key string
	}{
		{&s.Strict, "strict"},
		{&s.Which, "which"},
		{&s.WhichCommand, "which_command"},
		{&s.ListCores, "list_cores"},
		{&s.Fullscreen, "fullscreen"},
		{&s.Resolve, "resolve"},
		{&s.Highlander, "highlander"},
		{&s.NoRun, "norun"},
		{&s.NoStdin, "nostdin"},
	}
	for _, o := range bools {
		raw, ok := sectionValue(sec, o.key)
		if !ok {
			continue
		}
		v, err := CoerceBool(raw)
		if err != nil {
			return fmt.Errorf("[%s] %s: %w", OptionsSection, o.key, err)
		}
		*o.dst = &v
	}

	return nil
}

// CoerceBool accepts "1", "true", "0" and "false" in any case.
func CoerceBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: not a boolean: %q", ErrConfigParse, v)
	}
}

// readCoreRules reads aliases from [cores]. A key may list several aliases
// separated by whitespace which all share the same value. Empty values are
// ignored.
func readCoreRules(doc *ini.File) Rules {
	sec, err := doc.GetSection(CoresSection)
	if err != nil {
		return nil
	}

	var rules Rules
	for _, key := range sec.Keys() {
		libretro := key.String()
		if libretro == "" {
			continue
		}
		for _, alias := range strings.Fields(key.Name()) {
			rules = rules.Set(alias, libretro)
		}
	}

	return rules.orNil()
}

// readExtensionRules reads sections starting with a dot, like [.smc .sfc].
// Each whitespace separated extension becomes a rule keyed by the lowercase
// extension without its leading dot.
func readExtensionRules(doc *ini.File, cores Rules) Rules {
	var rules Rules
	for _, sec := range doc.Sections() {
		name := sec.Name()
		if !strings.HasPrefix(name, ".") {
			continue
		}
		libretro, ok := sectionLibretro(sec, cores)
		if !ok {
			continue
		}
		for _, ext := range strings.Fields(name) {
			rules = rules.Set(strings.ToLower(strings.TrimPrefix(ext, ".")), libretro)
		}
	}

	return rules.orNil()
}

// readDirectoryRules reads sections containing a slash, like [~/roms/psx*].
// The tilde is expanded but the name stays a wildcard pattern.
func readDirectoryRules(doc *ini.File, cores Rules) Rules {
	var rules Rules
	for _, sec := range doc.Sections() {
		name := sec.Name()
		if !strings.Contains(name, "/") {
			continue
		}
		libretro, ok := sectionLibretro(sec, cores)
		if !ok {
			continue
		}
		rules = rules.Set(helpers.ExpandTilde(name), libretro)
	}

	return rules.orNil()
}

// sectionLibretro returns the libretro path of a rule section. A direct
// "libretro" key wins over a "core" alias lookup.
func sectionLibretro(sec *ini.Section, cores Rules) (string, bool) {
	if libretro, ok := sectionValue(sec, keyLibretro); ok {
		return libretro, true
	}
	if alias, ok := sectionValue(sec, keyCore); ok {
		return cores.Get(alias)
	}
	return "", false
}

// sectionValue looks up a key in sec only. Section.HasKey also searches
// parent sections split at dots, which would mix up rules like [.smc].
func sectionValue(sec *ini.Section, name string) (string, bool) {
	for _, key := range sec.Keys() {
		if key.Name() == name {
			return key.String(), true
		}
	}
	return "", false
}

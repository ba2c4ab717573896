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
	"path/filepath"

	"github.com/thingsiplay/enjoy/pkg/helpers"
)

// Settings is one partial configuration layer. Nil fields are "not specified
// by this layer"; a non-nil boolean overrides on merge whether it is true or
// false. Layers are built by the New* constructors and combined with
// UpdateFrom and UpdateDefaultsFrom.
type Settings struct {
	Games         []string
	RetroArchArgs []string

	Config            *string
	RetroArch         *string
	RetroArchConfig   *string
	Libretro          *string
	LibretroDirectory *string
	Core              *string
	Filter            []string

	Strict       *bool
	Which        *bool
	WhichCommand *bool
	ListCores    *bool
	Fullscreen   *bool
	Resolve      *bool
	Highlander   *bool
	OpenConfig   *bool
	ConfigPath   *bool
	NoConfig     *bool
	NoRun        *bool
	NoStdin      *bool

	CoreRules      Rules
	ExtensionRules Rules
	DirectoryRules Rules
}

// UpdateFrom merges src into s. Every field present in src replaces the value
// in s, rule tables included. Games and RetroArch arguments from src are
// prepended, so entries from later merged layers are tried first.
func (s *Settings) UpdateFrom(src *Settings) {
	if src == nil {
		return
	}

	s.Games = prepend(src.Games, s.Games)
	s.RetroArchArgs = prepend(src.RetroArchArgs, s.RetroArchArgs)

	override(&s.Config, src.Config)
	override(&s.RetroArch, src.RetroArch)
	override(&s.RetroArchConfig, src.RetroArchConfig)
	override(&s.Libretro, src.Libretro)
	override(&s.LibretroDirectory, src.LibretroDirectory)
	override(&s.Core, src.Core)
	if src.Filter != nil {
		s.Filter = append([]string{}, src.Filter...)
	}

	override(&s.Strict, src.Strict)
	override(&s.Which, src.Which)
	override(&s.WhichCommand, src.WhichCommand)
	override(&s.ListCores, src.ListCores)
	override(&s.Fullscreen, src.Fullscreen)
	override(&s.Resolve, src.Resolve)
	override(&s.Highlander, src.Highlander)
	override(&s.OpenConfig, src.OpenConfig)
	override(&s.ConfigPath, src.ConfigPath)
	override(&s.NoConfig, src.NoConfig)
	override(&s.NoRun, src.NoRun)
	override(&s.NoStdin, src.NoStdin)

	// Rule tables are replaced as a whole, not merged per key.
	if src.CoreRules != nil {
		s.CoreRules = src.CoreRules
	}
	if src.ExtensionRules != nil {
		s.ExtensionRules = src.ExtensionRules
	}
	if src.DirectoryRules != nil {
		s.DirectoryRules = src.DirectoryRules
	}
}

// UpdateDefaultsFrom fills the RetroArch command, RetroArch config, libretro
// and libretro directory from src, but only where s has no value yet. No
// other field is touched.
func (s *Settings) UpdateDefaultsFrom(src *Settings) {
	if src == nil {
		return
	}
	fallback(&s.RetroArch, src.RetroArch)
	fallback(&s.RetroArchConfig, src.RetroArchConfig)
	fallback(&s.Libretro, src.Libretro)
	fallback(&s.LibretroDirectory, src.LibretroDirectory)
}

// Reduce folds layers from lowest to highest priority into a new Settings.
func Reduce(layers ...*Settings) *Settings {
	merged := &Settings{}
	for _, layer := range layers {
		merged.UpdateFrom(layer)
	}
	return merged
}

// UserConfig returns the user config path to load, or nil if loading the
// user config is disabled.
func (s *Settings) UserConfig() *string {
	if IsSet(s.NoConfig) {
		return nil
	}
	return s.Config
}

// HasGames reports whether at least one game entry is available.
func (s *Settings) HasGames() bool {
	return len(s.Games) > 0
}

// LibretroLocated reports whether the libretro core can be located without
// help from RetroArch's own config: either a libretro directory is set or
// the libretro path is already absolute.
func (s *Settings) LibretroLocated() bool {
	if s.LibretroDirectory != nil {
		return true
	}
	return s.Libretro != nil && filepath.IsAbs(helpers.ExpandTilde(*s.Libretro))
}

// IsSet reports whether an optional flag is present and true.
func IsSet(b *bool) bool {
	return b != nil && *b
}

// Value returns the string or "" if absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T {
	return &v
}

func override[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func fallback[T any](dst **T, src *T) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}

func prepend(front, back []string) []string {
	if len(front) == 0 {
		return back
	}
	combined := make([]string, 0, len(front)+len(back))
	combined = append(combined, front...)
	return append(combined, back...)
}

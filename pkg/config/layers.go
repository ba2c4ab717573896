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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options is the parsed command line. It is filled by the cli package.
type Options struct {
	Games             []string
	RetroArchArgs     []string
	Config            string
	ConfigExplicit    bool
	Verbose           int
	RetroArch         string
	RetroArchConfig   string
	Libretro          string
	LibretroDirectory string
	Core              string
	Filter            []string
	Strict            bool
	Which             bool
	WhichCommand      bool
	ListCores         bool
	Fullscreen        bool
	Resolve           bool
	Highlander        bool
	OpenConfig        bool
	ConfigPath        bool
	NoConfig          bool
	NoRun             bool
	NoStdin           bool
}

// NewFromCmdline converts parsed command line options into a layer. The
// config path always has a value because the parser defaults it; boolean
// flags are only set when given.
func NewFromCmdline(opts *Options) *Settings {
	s := &Settings{
		Games:         append([]string{}, opts.Games...),
		RetroArchArgs: append([]string{}, opts.RetroArchArgs...),
		Config:        ptr(opts.Config),
	}

	s.RetroArch = optionalString(opts.RetroArch)
	s.RetroArchConfig = optionalString(opts.RetroArchConfig)
	s.Libretro = optionalString(opts.Libretro)
	s.LibretroDirectory = optionalString(opts.LibretroDirectory)
	s.Core = optionalString(opts.Core)
	if len(opts.Filter) > 0 {
		s.Filter = append([]string{}, opts.Filter...)
	}

	s.Strict = flagTrue(opts.Strict)
	s.Which = flagTrue(opts.Which)
	s.WhichCommand = flagTrue(opts.WhichCommand)
	s.ListCores = flagTrue(opts.ListCores)
	s.Fullscreen = flagTrue(opts.Fullscreen)
	s.Resolve = flagTrue(opts.Resolve)
	s.Highlander = flagTrue(opts.Highlander)
	s.OpenConfig = flagTrue(opts.OpenConfig)
	s.ConfigPath = flagTrue(opts.ConfigPath)
	s.NoConfig = flagTrue(opts.NoConfig)
	s.NoRun = flagTrue(opts.NoRun)
	s.NoStdin = flagTrue(opts.NoStdin)

	return s
}

// NewFromDefaults returns the built-in defaults.
func NewFromDefaults() *Settings {
	return &Settings{
		RetroArch: ptr(RetroArchName),
	}
}

// NewFromStdin reads one game path per line from r. Blank lines are skipped.
func NewFromStdin(r io.Reader) (*Settings, error) {
	s := &Settings{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.Games = append(s.Games, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStdinRead, err)
	}

	return s, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func flagTrue(v bool) *bool {
	if !v {
		return nil
	}
	return ptr(true)
}

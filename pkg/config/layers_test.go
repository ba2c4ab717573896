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
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDefaults(t *testing.T) {
	t.Parallel()

	defaults := NewFromDefaults()

	assert.Equal(t, "retroarch", Value(defaults.RetroArch))
	assert.Nil(t, defaults.Libretro)
	assert.Empty(t, defaults.Games)
}

func TestNewFromCmdline(t *testing.T) {
	t.Parallel()

	t.Run("default_config_and_unset_flags", func(t *testing.T) {
		t.Parallel()

		args := NewFromCmdline(&Options{Config: "~/.config/enjoy/default.ini"})

		assert.Equal(t, "~/.config/enjoy/default.ini", Value(args.Config))
		assert.Nil(t, args.NoRun)
		assert.Nil(t, args.RetroArch)
		assert.Nil(t, args.Filter)
	})

	t.Run("empty_game_is_kept", func(t *testing.T) {
		t.Parallel()

		args := NewFromCmdline(&Options{
			Games:     []string{"mario.smc", ""},
			RetroArch: "/usr/bin/retroarch",
		})

		assert.Equal(t, []string{"mario.smc", ""}, args.Games)
		assert.Equal(t, "/usr/bin/retroarch", Value(args.RetroArch))
	})

	t.Run("flags_and_passthrough", func(t *testing.T) {
		t.Parallel()

		opts := &Options{
			Core:          "snes",
			Filter:        []string{"mario", "usa"},
			RetroArchArgs: []string{"--verbose"},
			Fullscreen:    true,
			NoRun:         true,
		}
		args := NewFromCmdline(opts)

		assert.Equal(t, "snes", Value(args.Core))
		assert.Equal(t, []string{"mario", "usa"}, args.Filter)
		assert.Equal(t, []string{"--verbose"}, args.RetroArchArgs)
		assert.True(t, IsSet(args.Fullscreen))
		assert.True(t, IsSet(args.NoRun))
		assert.Nil(t, args.Which)

		opts.Filter[0] = "zelda"
		assert.Equal(t, "mario", args.Filter[0])
	})
}

func TestNewFromStdin(t *testing.T) {
	t.Parallel()

	t.Run("one_game_per_line", func(t *testing.T) {
		t.Parallel()

		input := "/roms/zelda.smc\r\n\n/roms/mario.smc\n  \n"
		s, err := NewFromStdin(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{"/roms/zelda.smc", "/roms/mario.smc"}, s.Games)
	})

	t.Run("empty_input", func(t *testing.T) {
		t.Parallel()

		s, err := NewFromStdin(strings.NewReader(""))

		require.NoError(t, err)
		assert.False(t, s.HasGames())
	})

	t.Run("read_error", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("broken pipe")
		_, err := NewFromStdin(iotest.ErrReader(readErr))

		require.ErrorIs(t, err, ErrStdinRead)
		require.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, readErr)
	})
}

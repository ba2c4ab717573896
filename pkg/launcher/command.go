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

	"github.com/alessio/shellescape"
	"github.com/rs/zerolog/log"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers"
	"github.com/thingsiplay/enjoy/pkg/helpers/command"
)

// RunCommand is the RetroArch invocation together with the game and core it
// was built for. Result stays nil until the command has been executed and
// remains nil if execution was skipped.
type RunCommand struct {
	Result   *command.Result
	Name     string
	Game     string
	Libretro string
	Args     []string
}

// Cmdline returns the program followed by its arguments.
func (rc *RunCommand) Cmdline() []string {
	return append([]string{rc.Name}, rc.Args...)
}

// String returns the command line quoted for a POSIX shell.
func (rc *RunCommand) String() string {
	return shellescape.QuoteCommand(rc.Cmdline())
}

// Builder assembles RunCommands from fully merged settings.
type Builder struct {
	resolver *helpers.Resolver
	suffix   string
}

// NewBuilder returns a Builder checking files through r. The suffix is the
// filename ending added to libretro cores, see LibretroSuffix.
func NewBuilder(r *helpers.Resolver, suffix string) *Builder {
	return &Builder{resolver: r, suffix: suffix}
}

// Build resolves the game and libretro core and assembles the RetroArch
// command line. With norun set, a missing or nonexistent game does not fail
// the build, so printing and listing options keep working; everything else
// fails on the first error.
func (b *Builder) Build(s *config.Settings) (*RunCommand, error) {
	noRun := config.IsSet(s.NoRun)

	selected, ok := SelectGame(s.Games, s.Filter, config.IsSet(s.Strict))
	if !ok && !noRun {
		return nil, config.ErrNoMatchingGame
	}

	game, ok := b.resolver.Absolute(selected, config.IsSet(s.Resolve))
	if ok && !b.resolver.Exists(game) {
		ok = false
	}
	if !ok {
		if !noRun {
			return nil, fmt.Errorf("%w: %s", config.ErrGameNotFound, selected)
		}
		log.Debug().Str("game", selected).Msg("game not found, continuing without run")
		game = selected
	}

	libretro, err := ResolveLibretro(s, game)
	if err != nil {
		return nil, err
	}

	libretro, err = CombineWithDirectory(b.resolver, s.LibretroDirectory, libretro, b.suffix)
	if err != nil {
		return nil, err
	}

	name := helpers.ExpandTilde(config.Value(s.RetroArch))
	if name == "" {
		name = config.RetroArchName
	}

	args := []string{game, "--libretro", libretro}
	if s.RetroArchConfig != nil {
		args = append(args, "--config", *s.RetroArchConfig)
	}
	if config.IsSet(s.Fullscreen) {
		args = append(args, "--fullscreen")
	}
	args = append(args, s.RetroArchArgs...)

	rc := &RunCommand{
		Name:     name,
		Args:     args,
		Game:     game,
		Libretro: libretro,
	}

	log.Info().Str("game", game).Str("libretro", libretro).Msg("built retroarch command")

	return rc, nil
}

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

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers"
	"github.com/thingsiplay/enjoy/pkg/helpers/command"
	"github.com/thingsiplay/enjoy/pkg/launcher"
)

// HighlanderMessage is printed when RetroArch is already running and only a
// single instance is allowed.
const HighlanderMessage = "retroarch process already running. There Can Be Only One!"

// Env holds everything a run touches outside of its own memory. Tests swap
// in an in-memory filesystem and a mock executor.
type Env struct {
	Fs         afero.Fs
	Exec       command.Executor
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	StdinPiped func() bool
	IsRunning  func(program string) bool
	Suffix     string
}

// DefaultEnv returns an Env bound to the real system.
func DefaultEnv() *Env {
	return &Env{
		Fs:         afero.NewOsFs(),
		Exec:       &command.RealExecutor{},
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		StdinPiped: helpers.StdinPiped,
		IsRunning:  helpers.IsProgramRunning,
		Suffix:     launcher.DefaultLibretroSuffix,
	}
}

// Run resolves all settings layers, builds the RetroArch command and runs it.
// The returned code is the exit code enjoy should end with; it mirrors
// RetroArch's own exit code when RetroArch was run.
func Run(ctx context.Context, env *Env, opts *config.Options) (int, error) {
	resolver := helpers.NewResolver(env.Fs)
	args := config.NewFromCmdline(opts)

	if config.IsSet(args.ConfigPath) || config.IsSet(args.OpenConfig) {
		return 0, handleUserConfigFile(ctx, env, resolver, args)
	}

	user, err := config.NewFromConfig(resolver, args.UserConfig(), opts.ConfigExplicit)
	if err != nil {
		return 1, err
	}

	var stdin *config.Settings
	if !config.IsSet(args.NoStdin) && !config.IsSet(user.NoStdin) && env.StdinPiped() {
		stdin, err = config.NewFromStdin(env.Stdin)
		if err != nil {
			return 1, err
		}
		log.Debug().Int("games", len(stdin.Games)).Msg("read games from stdin")
	}

	app := config.Reduce(user, stdin, args)

	defaults := config.NewFromDefaults()
	if !app.LibretroLocated() {
		ra, err := config.NewFromRetroArchConfig(resolver, app.RetroArchConfig)
		if err != nil {
			return 1, err
		}
		defaults.UpdateFrom(ra)
	}
	app.UpdateDefaultsFrom(defaults)

	if config.IsSet(app.ListCores) && !app.HasGames() {
		launcher.PrintCores(env.Stdout, app.CoreRules.Keys())
		return 0, nil
	}

	rc, err := launcher.NewBuilder(resolver, env.Suffix).Build(app)
	if err != nil {
		return 1, err
	}

	if config.IsSet(app.WhichCommand) {
		_, _ = fmt.Fprintln(env.Stdout, rc.String())
	}

	if config.IsSet(app.ListCores) {
		launcher.PrintCores(env.Stdout, launcher.FindCoresForLibretro(app.CoreRules, rc.Libretro, env.Suffix))
	}

	if !config.IsSet(app.NoRun) {
		if config.IsSet(app.Highlander) && env.IsRunning(rc.Name) {
			_, _ = fmt.Fprintln(env.Stderr, HighlanderMessage)
		} else if err := launcher.Execute(ctx, env.Exec, rc, env.Stderr); err != nil {
			return 1, err
		}
	}

	if config.IsSet(app.Which) && !config.IsSet(app.WhichCommand) {
		_, _ = fmt.Fprintln(env.Stdout, rc.Game)
	}

	return launcher.ExitCode(rc), nil
}

func handleUserConfigFile(
	ctx context.Context,
	env *Env,
	resolver *helpers.Resolver,
	args *config.Settings,
) error {
	path := args.UserConfig()
	if path == nil {
		return nil
	}

	if config.IsSet(args.ConfigPath) {
		if fullpath, ok := resolver.Absolute(*path, true); ok {
			_, _ = fmt.Fprintln(env.Stdout, fullpath)
		}
	}

	if config.IsSet(args.OpenConfig) {
		if err := helpers.OpenWithDefault(ctx, resolver, env.Exec, *path); err != nil {
			return fmt.Errorf("%w: %w", config.ErrConfiguration, err)
		}
	}

	return nil
}

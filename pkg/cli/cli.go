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
	"github.com/spf13/cobra"
	"github.com/thingsiplay/enjoy/pkg/config"
)

// RunFunc receives the parsed command line.
type RunFunc func(cmd *cobra.Command, opts *config.Options) error

// NewCommand returns the enjoy root command. Positional arguments are game
// files; everything after a literal "--" is passed to RetroArch untouched.
func NewCommand(run RunFunc) *cobra.Command {
	opts := &config.Options{}

	cmd := &cobra.Command{
		Use:   config.AppName + " [flags] [games...] [-- retroarch args...]",
		Short: "Play RetroArch games from the command line",
		Long: `enjoy starts a game in RetroArch and picks the libretro core for it
automatically. Cores are chosen by name, by core alias, by the directory of
the game or by its file extension, as set up in the user config.

Game paths are read from the arguments and, when piped, from stdin.`,
		Version:       config.AppVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Games, opts.RetroArchArgs = SplitArgs(args, cmd.ArgsLenAtDash())
			opts.ConfigExplicit = cmd.Flags().Changed("config")
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(config.AppName + " {{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&opts.Config, "config", "c", config.DefaultConfigPath(),
		"path to user settings INI file")
	flags.BoolVarP(&opts.OpenConfig, "open-config", "O", false,
		"open user config file with default application and exit")
	flags.BoolVarP(&opts.ConfigPath, "config-path", "o", false,
		"print path of user config file and exit")
	flags.StringVarP(&opts.RetroArch, "retroarch", "A", "",
		"path or name of RetroArch executable")
	flags.StringVarP(&opts.RetroArchConfig, "retroarch-config", "B", "",
		"path to retroarch.cfg passed to RetroArch")
	flags.StringVarP(&opts.Libretro, "libretro", "L", "",
		"path or name of libretro core")
	flags.StringVarP(&opts.LibretroDirectory, "libretro-directory", "D", "",
		"directory to look up libretro cores")
	flags.StringVarP(&opts.Core, "core", "C", "",
		"core alias from user config")
	flags.StringArrayVarP(&opts.Filter, "filter", "f", nil,
		"wildcard filter on game names, repeat to narrow down")
	flags.BoolVarP(&opts.Strict, "strict", "s", false,
		"filter must match the whole game name")
	flags.BoolVarP(&opts.Which, "which", "w", false,
		"print selected game path")
	flags.BoolVarP(&opts.WhichCommand, "which-command", "W", false,
		"print the RetroArch command line")
	flags.BoolVarP(&opts.ListCores, "list-cores", "n", false,
		"list core aliases of the selected core or all aliases")
	flags.BoolVarP(&opts.Fullscreen, "fullscreen", "F", false,
		"start RetroArch in fullscreen")
	flags.BoolVarP(&opts.Resolve, "resolve", "l", false,
		"resolve symbolic links of game path")
	flags.BoolVarP(&opts.Highlander, "highlander", "1", false,
		"do not run if RetroArch is already running")
	flags.BoolVarP(&opts.NoConfig, "noconfig", "i", false,
		"ignore user config file")
	flags.BoolVarP(&opts.NoRun, "norun", "x", false,
		"do not run RetroArch")
	flags.BoolVarP(&opts.NoStdin, "nostdin", "z", false,
		"do not read games from stdin")
	flags.CountVarP(&opts.Verbose, "verbose", "v",
		"log to stderr (-v info, -vv debug, -vvv trace)")

	cmd.MarkFlagsMutuallyExclusive("libretro", "core")
	cmd.MarkFlagsMutuallyExclusive("noconfig", "config")
	cmd.MarkFlagsMutuallyExclusive("noconfig", "open-config")
	cmd.MarkFlagsMutuallyExclusive("noconfig", "core")

	return cmd
}

// SplitArgs separates game paths from RetroArch arguments at dash, the
// position of "--" as reported by cobra, or -1 if there was none.
func SplitArgs(args []string, dash int) (games, passthrough []string) {
	if dash < 0 || dash > len(args) {
		return args, nil
	}
	return args[:dash], args[dash:]
}

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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thingsiplay/enjoy/pkg/cli"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers"
)

func main() {
	code, err := run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var code int
	cmd := cli.NewCommand(func(cmd *cobra.Command, opts *config.Options) error {
		err := helpers.InitLogging(helpers.LogDir(config.AppName), config.LogFile, opts.Verbose)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not open log file: %s\n", err)
		}
		log.Info().Str("version", config.AppVersion).Strs("args", os.Args[1:]).Msg("starting")

		code, err = cli.Run(cmd.Context(), cli.DefaultEnv(), opts)
		if err != nil {
			log.Error().Err(err).Msg("run failed")
		}
		return err
	})

	if err := cmd.ExecuteContext(ctx); err != nil {
		//nolint:wrapcheck // reported as is by main
		return 1, err
	}
	return code, nil
}

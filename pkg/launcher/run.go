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
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers/command"
)

// ExitCode returns the exit code enjoy should end with after rc ran. A
// command that was never executed counts as success.
func ExitCode(rc *RunCommand) int {
	if rc == nil || rc.Result == nil {
		return 0
	}
	return rc.Result.ExitCode
}

// Execute runs rc and waits for RetroArch to exit, capturing its output.
// Failing to start the program is an error. A non-zero exit status is not:
// it is reported on stderr and left in rc.Result for the caller to act on.
func Execute(ctx context.Context, exec command.Executor, rc *RunCommand, stderr io.Writer) error {
	log.Info().Str("cmd", rc.String()).Msg("running retroarch")

	res, err := exec.Capture(ctx, rc.Name, rc.Args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", config.ErrLaunchFailed, rc.Name, err)
	}
	rc.Result = res

	if !res.Success() {
		log.Error().
			Int("exit_code", res.ExitCode).
			Str("stderr", string(res.Stderr)).
			Msg("retroarch exited with error")
		_, _ = fmt.Fprintf(stderr, "Could not run RetroArch. exit status %d\n", res.ExitCode)
		return nil
	}

	log.Debug().Int("stdout_bytes", len(res.Stdout)).Msg("retroarch exited")
	return nil
}

// PrintCores writes each core alias on its own line.
func PrintCores(w io.Writer, cores []string) {
	for _, core := range cores {
		_, _ = fmt.Fprintln(w, core)
	}
}

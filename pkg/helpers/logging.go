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

package helpers

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogDir returns the directory holding the log file.
func LogDir(appName string) string {
	return filepath.Join(xdg.StateHome, appName)
}

// InitLogging sets up the global logger. Everything is written to a rotating
// log file in dir; with verbosity > 0 records are also printed to stderr.
// Verbosity 0 logs warnings, 1 info, 2 debug and 3 or more trace.
func InitLogging(dir, logFile string, verbosity int, writers ...io.Writer) error {
	switch {
	case verbosity <= 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case verbosity == 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	var logWriters []io.Writer

	err := os.MkdirAll(dir, 0o750)
	if err == nil {
		logWriters = append(logWriters, &lumberjack.Logger{
			Filename:   filepath.Join(dir, logFile),
			MaxSize:    1,
			MaxBackups: 2,
		})
	}

	if verbosity > 0 {
		logWriters = append(logWriters, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}
	logWriters = append(logWriters, writers...)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if len(logWriters) == 0 {
		log.Logger = zerolog.Nop()
	} else {
		log.Logger = log.Output(io.MultiWriter(logWriters...)).
			With().Timestamp().Caller().Logger()
	}

	//nolint:wrapcheck // caller only reports it
	return err
}

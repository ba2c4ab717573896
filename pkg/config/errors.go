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
	"fmt"
)

// Error kinds. Every concrete error below wraps exactly one of these, so
// callers can classify a failure with errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrResolution    = errors.New("resolution error")
	ErrExecution     = errors.New("execution error")
	ErrIO            = errors.New("io error")
)

var (
	ErrUserConfigNotFound = fmt.Errorf("%w: user config ini file not found", ErrConfiguration)
	ErrNoCoreRules        = fmt.Errorf("%w: no core rules found in [cores]", ErrConfiguration)

	ErrNoMatchingGame   = fmt.Errorf("%w: no matching game available", ErrResolution)
	ErrGameNotFound     = fmt.Errorf("%w: game file not found", ErrResolution)
	ErrLibretroNotSet   = fmt.Errorf("%w: path to libretro not set", ErrResolution)
	ErrLibretroNotFound = fmt.Errorf("%w: no matching libretro core found", ErrResolution)

	ErrLaunchFailed = fmt.Errorf("%w: could not run retroarch", ErrExecution)

	ErrStdinRead   = fmt.Errorf("%w: could not read stdin", ErrIO)
	ErrConfigParse = fmt.Errorf("%w: could not parse config file", ErrIO)
)

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
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/thingsiplay/enjoy/pkg/helpers/command"
)

var ErrNotAFile = errors.New("path is not an accessible file")

// OpenerCommand returns the program and arguments that open path with the
// desktop's default application on goos.
func OpenerCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// OpenWithDefault opens an existing regular file with the associated default
// application. This is fire-and-forget: the application is started but not
// waited on.
func OpenWithDefault(ctx context.Context, r *Resolver, exec command.Executor, path string) error {
	fullpath, ok := r.Absolute(path, true)
	if !ok || !r.IsFile(fullpath) {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	name, args := OpenerCommand(runtime.GOOS, fullpath)
	err := exec.StartWithOptions(ctx, command.StartOptions{HideWindow: true}, name, args...)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fullpath, err)
	}
	return nil
}

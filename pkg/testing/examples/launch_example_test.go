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

package examples

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers/command"
	"github.com/thingsiplay/enjoy/pkg/launcher"
	"github.com/thingsiplay/enjoy/pkg/testing/helpers"
)

// TestLaunchWithMemoryFS demonstrates resolving and running a game against an
// in-memory filesystem and a mocked RetroArch.
func TestLaunchWithMemoryFS(t *testing.T) {
	t.Parallel()

	fs := helpers.NewMemoryFS()
	require.NoError(t, fs.CreateUserConfig("/home/player/.config/enjoy/default.ini", `
		[options]
		libretro_directory = /cores
		fullscreen = 1

		[cores]
		snes = snes9x

		[.smc .sfc]
		core = snes
	`))
	require.NoError(t, fs.CreateCores("/cores", "snes9x_libretro.so"))
	require.NoError(t, fs.CreateGames("/roms/Super Mario World (USA).smc"))

	path := "/home/player/.config/enjoy/default.ini"
	user, err := config.NewFromConfig(fs.Resolver(), &path, true)
	require.NoError(t, err)

	app := config.Reduce(user, &config.Settings{Games: []string{"/roms/Super Mario World (USA).smc"}})
	app.UpdateDefaultsFrom(config.NewFromDefaults())

	rc, err := launcher.NewBuilder(fs.Resolver(), "_libretro.so").Build(app)
	require.NoError(t, err)
	assert.Equal(t,
		"retroarch '/roms/Super Mario World (USA).smc' --libretro /cores/snes9x_libretro.so --fullscreen",
		rc.String())

	exec := helpers.NewMockCommandExecutor()
	var stderr bytes.Buffer
	require.NoError(t, launcher.Execute(context.Background(), exec, rc, &stderr))

	exec.AssertCalled(t, "Capture", mock.Anything, "retroarch", rc.Args)
	assert.Equal(t, 0, launcher.ExitCode(rc))
}

// TestMockExecutorFailure demonstrates scripting a failing RetroArch run.
func TestMockExecutorFailure(t *testing.T) {
	t.Parallel()

	rc := &launcher.RunCommand{
		Name: "retroarch",
		Args: []string{"/roms/mario.smc", "--libretro", "/cores/snes9x_libretro.so"},
	}

	exec := helpers.NewMockCommandExecutor()
	exec.ExpectedCalls = nil
	exec.On("Capture", mock.Anything, "retroarch", rc.Args).
		Return(&command.Result{ExitCode: 3}, nil).Once()

	var stderr bytes.Buffer
	require.NoError(t, launcher.Execute(context.Background(), exec, rc, &stderr))

	assert.Equal(t, 3, launcher.ExitCode(rc))
	assert.Contains(t, stderr.String(), "exit status 3")
	exec.AssertExpectations(t)
}

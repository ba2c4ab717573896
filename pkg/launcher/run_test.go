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
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thingsiplay/enjoy/pkg/config"
	"github.com/thingsiplay/enjoy/pkg/helpers/command"
	"github.com/thingsiplay/enjoy/pkg/testing/mocks"
)

func testRunCommand() *RunCommand {
	return &RunCommand{
		Name:     "retroarch",
		Game:     "/roms/mario.smc",
		Libretro: "/cores/snes9x_libretro.so",
		Args:     []string{"/roms/mario.smc", "--libretro", "/cores/snes9x_libretro.so"},
	}
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		rc := testRunCommand()
		exec := &mocks.MockCommandExecutor{}
		exec.On("Capture", mock.Anything, "retroarch", rc.Args).
			Return(&command.Result{Stdout: []byte("ok")}, nil).Once()
		var stderr bytes.Buffer

		err := Execute(context.Background(), exec, rc, &stderr)

		require.NoError(t, err)
		require.NotNil(t, rc.Result)
		assert.Equal(t, 0, ExitCode(rc))
		assert.Empty(t, stderr.String())
		exec.AssertExpectations(t)
	})

	t.Run("non_zero_exit_is_reported", func(t *testing.T) {
		t.Parallel()

		rc := testRunCommand()
		exec := &mocks.MockCommandExecutor{}
		exec.On("Capture", mock.Anything, mock.Anything, mock.Anything).
			Return(&command.Result{ExitCode: 2, Stderr: []byte("core failed")}, nil)
		var stderr bytes.Buffer

		err := Execute(context.Background(), exec, rc, &stderr)

		require.NoError(t, err)
		assert.Equal(t, 2, ExitCode(rc))
		assert.Equal(t, "Could not run RetroArch. exit status 2\n", stderr.String())
	})

	t.Run("launch_failure", func(t *testing.T) {
		t.Parallel()

		rc := testRunCommand()
		exec := &mocks.MockCommandExecutor{}
		startErr := errors.New("executable file not found in $PATH")
		exec.On("Capture", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, startErr)
		var stderr bytes.Buffer

		err := Execute(context.Background(), exec, rc, &stderr)

		require.ErrorIs(t, err, config.ErrLaunchFailed)
		require.ErrorIs(t, err, config.ErrExecution)
		require.ErrorIs(t, err, startErr)
		assert.Nil(t, rc.Result)
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 0, ExitCode(&RunCommand{}))
	assert.Equal(t, 5, ExitCode(&RunCommand{Result: &command.Result{ExitCode: 5}}))
}

func TestPrintCores(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	PrintCores(&out, []string{"snes", "sfc"})
	assert.Equal(t, "snes\nsfc\n", out.String())

	out.Reset()
	PrintCores(&out, nil)
	assert.Empty(t, out.String())
}

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
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// ProgramName reduces an executable path or name to the bare process name,
// e.g. "/usr/bin/retroarch" and "RetroArch.exe" to "retroarch" and
// "retroarch".
func ProgramName(program string) string {
	name := filepath.Base(program)
	if strings.EqualFold(filepath.Ext(name), ".exe") {
		name = name[:len(name)-len(".exe")]
	}
	return strings.ToLower(name)
}

// ProcessNameMatches reports whether a running process name belongs to
// program.
func ProcessNameMatches(procName, program string) bool {
	want := ProgramName(program)
	return want != "" && ProgramName(procName) == want
}

// IsProgramRunning reports whether any process of program is running.
func IsProgramRunning(program string) bool {
	procs, err := process.Processes()
	if err != nil {
		log.Warn().Err(err).Msg("could not list processes")
		return false
	}

	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if ProcessNameMatches(name, program) {
			log.Debug().Int32("pid", p.Pid).Str("name", name).Msg("found running program")
			return true
		}
	}

	return false
}

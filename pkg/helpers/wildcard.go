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
	"strings"

	"github.com/tidwall/match"
)

// WildcardMatch reports whether all of s matches pattern. "*" matches any run
// of characters, including none and "/", and "?" matches exactly one
// character. Other characters, "[" and "\" included, match themselves.
func WildcardMatch(s, pattern string, caseSensitive bool) bool {
	if !caseSensitive {
		s = strings.ToLower(s)
		pattern = strings.ToLower(pattern)
	}
	// Backslash is an escape character in match patterns.
	return match.Match(s, strings.ReplaceAll(pattern, `\`, `\\`))
}

// MatchFilters reports whether name matches every pattern. Outside of strict
// mode the comparison ignores case and each pattern is wrapped in "*" so it
// may match anywhere in name. Strict mode compares case and uses the
// patterns as given.
func MatchFilters(name string, patterns []string, strict bool) bool {
	for _, pattern := range patterns {
		if !strict {
			pattern = "*" + pattern + "*"
		}
		if !WildcardMatch(name, pattern, strict) {
			return false
		}
	}
	return true
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWildcardMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		s             string
		pattern       string
		caseSensitive bool
		expected      bool
	}{
		{name: "star_matches_run", s: "/home/user/psx", pattern: "/home/user/psx*", caseSensitive: true, expected: true},
		{name: "star_crosses_slash", s: "/home/user/psx/sub", pattern: "/home/user/psx*", caseSensitive: true, expected: true},
		{name: "no_star_no_subdirectory", s: "/home/user/psx/sub", pattern: "/home/user/psx", caseSensitive: true, expected: false},
		{name: "question_matches_one", s: "mario1", pattern: "mario?", caseSensitive: true, expected: true},
		{name: "question_needs_a_char", s: "mario", pattern: "mario?", caseSensitive: true, expected: false},
		{name: "case_sensitive_mismatch", s: "/Home/psx", pattern: "/home/psx", caseSensitive: true, expected: false},
		{name: "case_insensitive_match", s: "Super MARIO", pattern: "*mario*", caseSensitive: false, expected: true},
		{name: "prefix_pattern", s: "mario_world", pattern: "mario*", caseSensitive: false, expected: true},
		{name: "prefix_pattern_any_case", s: "MARIO", pattern: "mario*", caseSensitive: false, expected: true},
		{name: "strict_prefix_pattern_case", s: "MARIO", pattern: "mario*", caseSensitive: true, expected: false},
		{name: "whole_string_must_match", s: "super mario world", pattern: "mario", caseSensitive: false, expected: false},
		{name: "backslash_is_literal", s: `a\b`, pattern: `a\b*`, caseSensitive: true, expected: true},
		{name: "windows_path_matches_itself", s: `C:\roms`, pattern: `C:\roms`, caseSensitive: true, expected: true},
		{name: "windows_path_subdirectory", s: `C:\Roms\PSX`, pattern: `c:\roms\*`, caseSensitive: false, expected: true},
		{name: "backslash_does_not_escape_star", s: `a*`, pattern: `a\*`, caseSensitive: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, WildcardMatch(tt.s, tt.pattern, tt.caseSensitive))
		})
	}
}

func TestMatchFilters(t *testing.T) {
	t.Parallel()

	const game = "Super Mario World (USA)"

	tests := []struct {
		name     string
		patterns []string
		strict   bool
		expected bool
	}{
		{name: "no_patterns_match_everything", patterns: nil, expected: true},
		{name: "substring_any_case", patterns: []string{"mario"}, expected: true},
		{name: "all_patterns_must_match", patterns: []string{"mario", "usa"}, expected: true},
		{name: "one_pattern_fails", patterns: []string{"mario", "europe"}, expected: false},
		{name: "wildcards_inside_pattern", patterns: []string{"super*world"}, expected: true},
		{name: "strict_substring_fails", patterns: []string{"Mario"}, strict: true, expected: false},
		{name: "strict_whole_name", patterns: []string{"Super Mario*"}, strict: true, expected: true},
		{name: "strict_no_implicit_wildcards", patterns: []string{"Super Mario"}, strict: true, expected: false},
		{name: "strict_is_case_sensitive", patterns: []string{"super mario*"}, strict: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MatchFilters(game, tt.patterns, tt.strict))
		})
	}
}

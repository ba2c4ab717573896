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

// Rule maps a key (core alias, extension or directory pattern) to a libretro
// core path.
type Rule struct {
	Key      string
	Libretro string
}

// Rules is an ordered rule table. A nil table means "not loaded"; the layer
// constructors never produce an empty non-nil table.
type Rules []Rule

// Get returns the libretro path stored for key.
func (r Rules) Get(key string) (string, bool) {
	for _, rule := range r {
		if rule.Key == key {
			return rule.Libretro, true
		}
	}
	return "", false
}

// Set replaces the value of an existing key in place or appends a new rule.
func (r Rules) Set(key, libretro string) Rules {
	for i := range r {
		if r[i].Key == key {
			r[i].Libretro = libretro
			return r
		}
	}
	return append(r, Rule{Key: key, Libretro: libretro})
}

// Keys returns all keys in table order.
func (r Rules) Keys() []string {
	keys := make([]string, 0, len(r))
	for _, rule := range r {
		keys = append(keys, rule.Key)
	}
	return keys
}

func (r Rules) orNil() Rules {
	if len(r) == 0 {
		return nil
	}
	return r
}

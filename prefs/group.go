// This file is part of Ultra64.
//
// Ultra64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ultra64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ultra64.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a collection of named preference values.
type Group struct {
	keys    []string
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group. Keys must be unique within the group.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: key already in group: %s", key)
	}
	g.entries[key] = p
	g.keys = append(g.keys, key)
	sort.Strings(g.keys)
	return nil
}

// Load applies values from the top of the command line stack.
func (g *Group) Load() error {
	for _, k := range g.keys {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Set the named value.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no such key: %s", key)
	}
	return p.Set(v)
}

// String lists all values in the group, one per line.
func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k]))
	}
	return s.String()
}

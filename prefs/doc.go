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

// Package prefs provides the value types for emulator preferences and the
// command line preference stack.
//
// Preference values are safe to read and write from more than one goroutine.
// A value can have a hook function that is called before and/or after the
// value is changed. A hook returning an error prevents (pre hook) or reports
// (post hook) the change.
//
// Named values are collected in a Group. The Load() function of the Group
// applies any values found at the top of the command line stack. The command
// line stack is populated from the -prefs flag, which takes a string of the
// form:
//
//	key::value; key::value
//
// For example:
//
//	ultra64 -prefs "hardware.randseed::10; cpu.loopdetect::0" RUN game.z64
package prefs

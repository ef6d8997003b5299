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

// Package modalflag wraps the flag package of the standard library so that
// a program can have modes, each with its own set of flags.
//
// Arguments are set with NewArgs() and then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	prefs := md.AddString("prefs", "", "preference values")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode
// is the default and is selected when the first argument after the flags is
// not the name of a sub-mode. Sub-mode names are case insensitive.
//
// The flags of the selected sub-mode are added after calling NewMode() and
// parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stdout")
//		p, err := md.Parse()
//	}
//
// Path() returns every mode selected so far, separated by a slash.
// RemainingArgs() and GetArg() return the arguments after the flags and the
// sub-mode.
//
// The -help flag prints the flags and sub-modes of the current mode to
// Output. Parse() returns ParseHelp in that case.
package modalflag

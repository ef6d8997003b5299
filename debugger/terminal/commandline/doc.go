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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// A template is a list of strings, one per command. The first word is the
// command keyword. The remaining words describe the arguments:
//
//	template := []string {
//		"LIST",
//		"PRINT [%S]",
//		"SORT (RISING|FALLING)",
//	}
//
// An argument in square brackets is optional and an argument in parentheses
// is required. A bar separates the options of an argument. Placeholders
// start with a percent sign: %N is a number, %S is a string and %A is any
// number of strings.
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("list")
//	err := cmds.ValidateTokens(toks)
//
// Note that all validation is case-insensitive.
package commandline

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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to interpret the style however it wants.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has been
	// "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// disassembly output at CPU cycle boundaries
	StyleCPUStep

	// information about the machine
	StyleInstrument

	// information about the state of the debugger's loop detector
	StyleLoop

	// the prompt
	StylePrompt

	// error messages
	StyleError
)

// IsPrompt returns true if style is a prompt style.
func (s Style) IsPrompt() bool {
	return s == StylePrompt
}

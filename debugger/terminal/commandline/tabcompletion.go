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

package commandline

import (
	"strings"
)

// TabCompletion should be initialised once with the instance of Commands it
// is to work with.
type TabCompletion struct {
	cmds *Commands

	// the input with the word being completed removed. repeated calls to
	// Complete() with the previously returned string cycle through the
	// matches
	prefix    string
	lastGuess string
	matches   []string
	match     int
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template. Subsequent
// calls to Complete() with the returned string will cycle through the
// remaining matches.
func (tc *TabCompletion) Complete(input string) string {
	if len(tc.matches) > 1 && input == tc.lastGuess {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastGuess = tc.prefix + tc.matches[tc.match] + " "
		return tc.lastGuess
	}

	tc.Reset()

	// the word being completed is the last word in the input. an input that
	// ends with a space completes an empty word
	words := strings.Fields(input)
	if len(input) == 0 || input[len(input)-1] == ' ' {
		words = append(words, "")
	}
	partial := strings.ToUpper(words[len(words)-1])

	var candidates []string
	if len(words) == 1 {
		candidates = tc.cmds.Keywords()
	} else {
		cmd, ok := tc.cmds.find(words[0])
		if !ok {
			return input
		}
		argIdx := len(words) - 2
		if argIdx >= len(cmd.Arguments) || cmd.Arguments[argIdx].placeholder() != "" {
			return input
		}
		candidates = cmd.Arguments[argIdx].Options
	}

	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.prefix = input[:strings.LastIndex(input, " ")+1]
	tc.lastGuess = tc.prefix + tc.matches[0] + " "
	return tc.lastGuess
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.prefix = ""
	tc.lastGuess = ""
	tc.matches = tc.matches[:0]
	tc.match = 0
}

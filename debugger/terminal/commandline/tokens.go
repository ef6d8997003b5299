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

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

// TokeniseInput creates and returns a new Tokens instance. The input is
// split on whitespace. A leading dollar sign on a token is converted to the
// 0x hexadecimal prefix.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{
		input: strings.TrimSpace(input),
	}

	tk.tokens = strings.Fields(tk.input)

	// normalise hex notation
	for i := range tk.tokens {
		if len(tk.tokens[i]) > 1 && tk.tokens[i][0] == '$' {
			tk.tokens[i] = "0x" + tk.tokens[i][1:]
		}
	}

	return tk
}

func (tk Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of reminaing tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Len returns the number of tokens, including tokens that have been read.
func (tk Tokens) Len() int {
	return len(tk.tokens)
}

// IsEnd returns true if we're at the end of the token list.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Get returns the next token in the list, and a success boolean. If the end
// of the token list has been reached, the function returns false.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list, without advancing the list
// position, and a success boolean.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

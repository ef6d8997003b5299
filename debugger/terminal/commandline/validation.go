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
	"strconv"
	"strings"

	"github.com/ultra64emu/ultra64/curated"
)

// Sentinel error patterns returned by validation.
const (
	UnknownCommand   = "unrecognised command (%s)"
	TooManyArguments = "too many arguments for %s (%s)"
	MissingArgument  = "missing argument for %s, expected %s"
	InvalidArgument  = "invalid argument for %s (%s), expected %s"
)

// Validate input string against command template.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string. The token list is reset before returning.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()
	tokens.Reset()

	kw, ok := tokens.Get()
	if !ok {
		return nil
	}

	cmd, ok := cmds.find(kw)
	if !ok {
		return curated.Errorf(UnknownCommand, kw)
	}

	for _, arg := range cmd.Arguments {
		tok, ok := tokens.Get()
		if !ok {
			if arg.Optional {
				// all arguments following an optional argument are also
				// optional
				return nil
			}
			return curated.Errorf(MissingArgument, cmd.Keyword, arg)
		}

		switch arg.placeholder() {
		case PlaceholderAny:
			for !tokens.IsEnd() {
				tokens.Get()
			}
			return nil
		case PlaceholderString:
		case PlaceholderNumber:
			if _, err := strconv.ParseUint(tok, 0, 64); err != nil {
				return curated.Errorf(InvalidArgument, cmd.Keyword, tok, "a number")
			}
		default:
			found := false
			for _, o := range arg.Options {
				if strings.EqualFold(o, tok) {
					found = true
					break
				}
			}
			if !found {
				return curated.Errorf(InvalidArgument, cmd.Keyword, tok, arg)
			}
		}
	}

	if !tokens.IsEnd() {
		return curated.Errorf(TooManyArguments, cmd.Keyword, tokens.Remainder())
	}

	return nil
}

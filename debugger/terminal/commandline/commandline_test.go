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

package commandline_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/debugger/terminal/commandline"
	"github.com/ultra64emu/ultra64/test"
)

var template = []string{
	"STEP [%N]",
	"STATUS",
	"LOG [LAST|ALL|CLEAR]",
	"BREAK (%N)",
	"PEEK (%N) [%N]",
	"HELP [%S]",
	"ECHO [%A]",
}

func TestTokens(t *testing.T) {
	tk := commandline.TokeniseInput("  break   $a4000040 ")
	test.ExpectEquality(t, tk.Len(), 2)
	test.ExpectEquality(t, tk.String(), "break 0xa4000040")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "break")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0xa4000040")
	test.ExpectEquality(t, tk.Remaining(), 1)
	test.ExpectEquality(t, tk.Remainder(), "0xa4000040")

	tk.Get()
	test.ExpectSuccess(t, tk.IsEnd())
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "0xa4000040")

	tk.Reset()
	test.ExpectEquality(t, tk.Remaining(), 2)
}

func TestParser(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	usage, ok := cmds.Usage("log")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, usage, "LOG [LAST|ALL|CLEAR]")

	test.ExpectEquality(t, cmds.Keywords()[0], "BREAK")

	_, err = commandline.ParseCommandTemplate([]string{"TEST foo"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"TEST", "test"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"TEST (%N|FOO)"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"TEST (|FOO)"})
	test.ExpectFailure(t, err)
}

func TestValidation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate(""))
	test.ExpectSuccess(t, cmds.Validate("step"))
	test.ExpectSuccess(t, cmds.Validate("STEP 10"))
	test.ExpectSuccess(t, cmds.Validate("log clear"))
	test.ExpectSuccess(t, cmds.Validate("break $80000000"))
	test.ExpectSuccess(t, cmds.Validate("peek 0xa4000040 16"))
	test.ExpectSuccess(t, cmds.Validate("echo one two three"))
	test.ExpectSuccess(t, cmds.Validate("echo"))

	err = cmds.Validate("jump")
	test.ExpectSuccess(t, curated.Is(err, commandline.UnknownCommand))

	err = cmds.Validate("step ten")
	test.ExpectSuccess(t, curated.Is(err, commandline.InvalidArgument))

	err = cmds.Validate("log some")
	test.ExpectSuccess(t, curated.Is(err, commandline.InvalidArgument))

	err = cmds.Validate("break")
	test.ExpectSuccess(t, curated.Is(err, commandline.MissingArgument))

	err = cmds.Validate("status now")
	test.ExpectSuccess(t, curated.Is(err, commandline.TooManyArguments))

	// validation leaves the tokens ready for processing
	tk := commandline.TokeniseInput("step 10")
	test.ExpectSuccess(t, cmds.ValidateTokens(tk))
	test.ExpectEquality(t, tk.Remaining(), 2)
}

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	test.ExpectEquality(t, tc.Complete("br"), "BREAK ")
	test.ExpectEquality(t, tc.Complete("log c"), "log CLEAR ")
	test.ExpectEquality(t, tc.Complete("log "), "log LAST ")

	// repeated completion cycles through the matches
	completion := tc.Complete("st")
	test.ExpectEquality(t, completion, "STATUS ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "STEP ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "STATUS ")

	// placeholders and unknown commands are not completed
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("break 0x"), "break 0x")
	test.ExpectEquality(t, tc.Complete("jump a"), "jump a")
	test.ExpectEquality(t, tc.Complete("x"), "x")
}

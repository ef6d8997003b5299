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

//go:build !windows

package colorterm

import (
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/debugger/terminal"
	"github.com/ultra64emu/ultra64/debugger/terminal/colorterm/easyterm"
	"github.com/ultra64emu/ultra64/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	// we need the terminal in cbreak mode while reading so that we can see
	// key presses as they happen
	ct.CBreakMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	p := prompt.String()

	// the method for cursor placement is as follows:
	//	1. store current cursor position
	//	2. clear the current line
	//	3. output the prompt
	//	4. output the input buffer
	//	5. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ct.EasyTerm.TermPrintf("\r%s", ansi.CursorMove(len(p)))

	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	readRune := func() (rune, error) {
		select {
		case <-intEvents:
			return 0, curated.Errorf(terminal.UserInterrupt)
		case rr := <-ct.runes:
			return rr.r, rr.err
		}
	}

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.TermPrintLine(terminal.StylePrompt, p)
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		r, err := readRune()
		if err != nil {
			if err == io.EOF {
				ct.EasyTerm.TermPrint("\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}
			ct.EasyTerm.TermPrint("\n")
			return 0, err
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor
				if n+d > len(input) {
					break // switch
				}

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance character to end of completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if n == 0 {
				ct.EasyTerm.TermPrint("\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			easyterm.SuspendProcess()

		case easyterm.KeyCarriageReturn, '\n':
			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			// add to history if input is not the same as the last entry
			if n > 0 {
				if len(ct.commandHistory) == 0 || string(ct.commandHistory[len(ct.commandHistory)-1]) != string(input[:n]) {
					nh := make([]byte, n)
					copy(nh, input[:n])
					ct.commandHistory = append(ct.commandHistory, nh)
				}
			}

			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			r, err := readRune()
			if err != nil {
				return 0, err
			}
			if r != easyterm.EscCursor {
				break // switch
			}

			r, err = readRune()
			if err != nil {
				return 0, err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if history > 0 {
					// if we're at the end of the command history then store
					// the current input in buffInput for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}
					history--
					n = copy(input, ct.commandHistory[history])
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(input, ct.commandHistory[history])
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.CursorHome:
				ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
				cursor = 0

			case easyterm.CursorEnd:
				ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
				cursor = n

			case easyterm.CursorDelete:
				// consume the trailing tilde
				_, err := readRune()
				if err != nil {
					return 0, err
				}
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m > len(input) {
					break // switch
				}
				ct.EasyTerm.TermPrintf("%c", r)
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}

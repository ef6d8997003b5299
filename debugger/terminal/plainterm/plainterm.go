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

// Package plainterm implements the Terminal interface for the debugger. It's
// a simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal creates a PlainTerminal that reads from input and writes
// to output. Standard input and output are used if the arguments are nil.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	pt := &PlainTerminal{}

	if input == nil {
		input = os.Stdin
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if output == nil {
		output = os.Stdout
		pt.realOutput = term.IsTerminal(int(os.Stdout.Fd()))
	}

	pt.input = bufio.NewReader(input)
	pt.output = output

	return pt
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the terminal.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StylePrompt:
		_, _ = io.WriteString(pt.output, s)
		return
	}

	_, _ = io.WriteString(pt.output, s)
	_, _ = io.WriteString(pt.output, "\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	// insert prompt into output stream
	if pt.realInput {
		pt.TermPrintLine(terminal.StylePrompt, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil && (err != io.EOF || len(s) == 0) {
		return 0, err
	}

	// while we were waiting for the input we may have received an interrupt
	// event. if we have then return a UserInterrupt error to the debugging
	// loop
	if events != nil {
		select {
		case <-events.IntEvents:
			return 0, curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return copy(buffer, s), nil
}

// TermReadCheck implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadCheck() bool {
	return pt.input.Buffered() > 0
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}

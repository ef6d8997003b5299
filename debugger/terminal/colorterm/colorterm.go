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

// Package colorterm implements the Terminal interface for the debugger. It
// supports colour output, history and some line editing.
package colorterm

import (
	"bufio"
	"os"

	"github.com/ultra64emu/ultra64/debugger/terminal"
	"github.com/ultra64emu/ultra64/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader *bufio.Reader
	runes  chan readRune

	commandHistory [][]byte
	tabCompletion  terminal.TabCompletion

	silenced bool
}

type readRune struct {
	r   rune
	err error
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([][]byte, 0)
	ct.reader = bufio.NewReader(os.Stdin)
	ct.runes = make(chan readRune)

	// reading from stdin blocks so we do it in its own goroutine. this allows
	// TermRead() to service interrupt events while waiting for input
	go func() {
		for {
			r, _, err := ct.reader.ReadRune()
			ct.runes <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return ct.reader.Buffered() > 0
}

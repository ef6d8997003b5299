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

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/debugger/govern"
	"github.com/ultra64emu/ultra64/debugger/terminal"
	"github.com/ultra64emu/ultra64/debugger/terminal/commandline"
	"github.com/ultra64emu/ultra64/disassembly"
	"github.com/ultra64emu/ultra64/hardware"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/logger"
)

// maximum length of user input.
const inputBufferSize = 255

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	con *hardware.Console

	term   terminal.Terminal
	events *terminal.ReadEvents

	// disassembly of the console's memory. executed instructions are
	// recorded as they happen
	disasm *disassembly.Disassembly

	breakpoints *breakpoints
	loop        *LoopDetector

	// print every instruction while running
	trace bool

	// the state of the emulation as seen by the debugger. one of Paused,
	// Running or Ending
	state govern.State

	// buffer for user input
	input []byte
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The console should have a cartridge attached.
func NewDebugger(con *hardware.Console, term terminal.Terminal) (*Debugger, error) {
	if con == nil {
		return nil, curated.Errorf("debugger: no console")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		con:         con,
		term:        term,
		disasm:      disassembly.NewDisassembly(con.Mem),
		breakpoints: newBreakpoints(),
		loop:        NewLoopDetector(con.Instance.Prefs.LoopDetect.Get().(int)),
		state:       govern.Paused,
		input:       make([]byte, inputBufferSize),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	return dbg, nil
}

// State returns the current state of the emulation as seen by the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. Returns when the QUIT command is issued
// or when the terminal has no more input.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	return dbg.inputLoop()
}

// inputLoop reads and processes commands until the emulation is ending.
func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		n, err := dbg.term.TermRead(dbg.input, dbg.prompt(), dbg.events)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserAbort) {
				dbg.state = govern.Ending
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "interrupted: use QUIT to end the session")
				continue // for loop
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseCommand(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// prompt shows the address and disassembly of the next instruction.
func (dbg *Debugger) prompt() terminal.Prompt {
	e := dbg.disasm.Decode(dbg.con.CPU.PC())
	return terminal.Prompt{
		Content: fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand),
		Running: dbg.state == govern.Running,
	}
}

// printLine sends the formatted string to the terminal.
func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// lineWriter is an io.Writer that sends each complete line of output to the
// terminal in the specified style.
type lineWriter struct {
	dbg   *Debugger
	style terminal.Style
	buf   strings.Builder
}

func (dbg *Debugger) writer(style terminal.Style) *lineWriter {
	return &lineWriter{dbg: dbg, style: style}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	s := w.buf.String()
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break // for loop
		}
		w.dbg.term.TermPrintLine(w.style, s[:i])
		s = s[i+1:]
	}
	w.buf.Reset()
	w.buf.WriteString(s)
	return len(p), nil
}

// flush any incomplete line.
func (w *lineWriter) flush() {
	if w.buf.Len() > 0 {
		w.dbg.term.TermPrintLine(w.style, w.buf.String())
		w.buf.Reset()
	}
}

// print multiline text in the specified style.
func (dbg *Debugger) printText(style terminal.Style, s string) {
	w := dbg.writer(style)
	_, _ = io.WriteString(w, s)
	w.flush()
}

// step the emulation count instructions. each instruction is printed. the
// step ends early on a fault or a breakpoint.
func (dbg *Debugger) step(count int) error {
	for range count {
		err := dbg.con.Step()
		if err != nil {
			return dbg.halted(err)
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.formatResult(dbg.con.CPU.LastResult, dbg.trace))

		if count > 1 && dbg.breakpoints.check(dbg.con.CPU.PC()) {
			dbg.printLine(terminal.StyleFeedback, "break at %08x", uint32(dbg.con.CPU.PC()))
			return nil
		}
	}
	return nil
}

// run the emulation until a halt condition is met. the emulation is checked
// for interrupts every hardware.PerformanceBrake instructions.
func (dbg *Debugger) run() error {
	dbg.state = govern.Running
	defer func() {
		if dbg.state == govern.Running {
			dbg.state = govern.Paused
		}
	}()

	dbg.loop.Reset()

	var reason string
	reasonStyle := terminal.StyleFeedback
	filter := 0

	err := dbg.con.Run(func() (govern.State, error) {
		if dbg.trace {
			dbg.printLine(terminal.StyleCPUStep, "%s", dbg.formatResult(dbg.con.CPU.LastResult, true))
		} else {
			_ = dbg.disasm.UpdateEntry(dbg.con.CPU.LastResult)
		}

		pc := dbg.con.CPU.PC()

		if dbg.breakpoints.check(pc) {
			reason = fmt.Sprintf("break at %08x", uint32(pc))
			return govern.Ending, nil
		}

		if dbg.loop.Check(pc, dbg.con.CPU.Registers()) {
			reason = dbg.loop.Report(dbg.con.CPU.Registers())
			reasonStyle = terminal.StyleLoop
			return govern.Ending, nil
		}

		filter++
		if filter >= hardware.PerformanceBrake {
			filter = 0
			select {
			case <-dbg.events.IntEvents:
				reason = "interrupted"
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	if err != nil {
		return dbg.halted(err)
	}

	dbg.printText(reasonStyle, reason)

	return nil
}

// halted reports a fault that has stopped the emulation. errors that are not
// faults are returned.
func (dbg *Debugger) halted(err error) error {
	f, ok := faults.As(err)
	if !ok {
		return err
	}
	dbg.printLine(terminal.StyleError, "%s", f)
	logger.Log(logger.Allow, "debugger", f)
	return nil
}

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
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/debugger/govern"
	"github.com/ultra64emu/ultra64/debugger/terminal"
	"github.com/ultra64emu/ultra64/debugger/terminal/commandline"
	"github.com/ultra64emu/ultra64/disassembly"
	"github.com/ultra64emu/ultra64/logger"
)

// default number of items for commands with an optional count.
const (
	defaultDisasmCount = 16
	defaultPeekCount   = 16
	defaultLogCount    = 10
)

// parseNumber converts a token to an unsigned number. hexadecimal values
// must be prefixed with 0x or $.
func parseNumber(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, curated.Errorf("not a number (%s)", s)
	}
	return v, nil
}

// parseCommand scans user input for a valid command and acts upon it. An
// empty input is the same as the STEP command.
func (dbg *Debugger) parseCommand(userInput string) error {
	tokens := commandline.TokeniseInput(userInput)

	err := debuggerCommands.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	dbg.term.TermPrintLine(terminal.StyleEcho, tokens.String())

	command, ok := tokens.Get()
	if !ok {
		return dbg.step(1)
	}

	switch strings.ToUpper(command) {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleHelp, "%s", strings.Join(debuggerCommands.Keywords(), " "))
			return nil
		}
		keyword = strings.ToUpper(keyword)
		usage, ok := debuggerCommands.Usage(keyword)
		if !ok {
			return curated.Errorf("no help for %s", keyword)
		}
		dbg.printLine(terminal.StyleHelp, "%s", usage)
		dbg.printLine(terminal.StyleHelp, "%s", helps[keyword])

	case cmdQuit:
		dbg.state = govern.Ending

	case cmdReset:
		err := dbg.con.Boot()
		if err != nil {
			return err
		}
		dbg.disasm.Clear()
		dbg.loop.Reset()
		dbg.printLine(terminal.StyleFeedback, "console booted")

	case cmdStep:
		count := uint64(1)
		if s, ok := tokens.Get(); ok {
			count, _ = parseNumber(s)
		}
		return dbg.step(int(count))

	case cmdRun:
		return dbg.run()

	case cmdRegs:
		dbg.printText(terminal.StyleInstrument, dbg.con.CPU.Registers().String())

	case cmdCOP0:
		dbg.printText(terminal.StyleInstrument, dbg.con.CPU.Registers().COP0String())

	case cmdTLB:
		s := dbg.con.TLB.String()
		if s == "" {
			s = "no valid TLB entries"
		}
		dbg.printText(terminal.StyleInstrument, s)

	case cmdDisasm:
		address := dbg.con.CPU.PC()
		count := uint64(defaultDisasmCount)
		if s, ok := tokens.Get(); ok {
			address, _ = parseNumber(s)
		}
		if s, ok := tokens.Get(); ok {
			count, _ = parseNumber(s)
		}
		w := dbg.writer(terminal.StyleFeedback)
		dbg.disasm.Write(w, disassembly.WriteAttr{Bytecode: true, Notes: true}, address, int(count))
		w.flush()

	case cmdPeek:
		s, _ := tokens.Get()
		address, _ := parseNumber(s)
		count := uint64(defaultPeekCount)
		if s, ok := tokens.Get(); ok {
			count, _ = parseNumber(s)
		}
		return dbg.peek(address, int(count))

	case cmdPoke:
		s, _ := tokens.Get()
		address, _ := parseNumber(s)
		s, _ = tokens.Get()
		value, _ := parseNumber(s)
		if value > 0xffffffff {
			return curated.Errorf("poke value is not a 32bit word (%x)", value)
		}

		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(value))
		err := dbg.con.Mem.Poke(address, b[:])
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%08x <- %08x", uint32(address), uint32(value))

	case cmdMemMap:
		dbg.printText(terminal.StyleInstrument, dbg.con.Mem.String())

	case cmdCartridge:
		cart := dbg.con.Mem.Cart
		if cart.IsEjected() {
			dbg.printLine(terminal.StyleFeedback, "no cartridge inserted")
			return nil
		}
		dbg.printText(terminal.StyleInstrument, cart.String())
		dbg.printText(terminal.StyleInstrument, cart.Header.String())

	case cmdMemviz:
		target, _ := tokens.Get()
		filename, _ := tokens.Get()
		return dbg.memviz(strings.ToUpper(target), filename)

	case cmdBreak:
		s, _ := tokens.Get()
		address, _ := parseNumber(s)
		err := dbg.breakpoints.add(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %08x", uint32(address))

	case cmdList:
		dbg.printText(terminal.StyleFeedback, dbg.breakpoints.String())

	case cmdClear:
		s, ok := tokens.Get()
		if !ok {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		address, _ := parseNumber(s)
		err := dbg.breakpoints.drop(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at %08x cleared", uint32(address))

	case cmdLoop:
		s, ok := tokens.Get()
		if !ok {
			if dbg.loop.Threshold <= 0 {
				dbg.printLine(terminal.StyleFeedback, "loop detection is off")
			} else {
				dbg.printLine(terminal.StyleFeedback, "loop detection after %d instructions", dbg.loop.Threshold)
			}
			return nil
		}
		v, _ := parseNumber(s)
		err := dbg.con.Instance.Prefs.LoopDetect.Set(int(v))
		if err != nil {
			return err
		}
		dbg.loop.Threshold = dbg.con.Instance.Prefs.LoopDetect.Get().(int)
		dbg.loop.Reset()

	case cmdFaults:
		if _, ok := tokens.Get(); ok {
			dbg.con.Faults.Clear()
			dbg.printLine(terminal.StyleFeedback, "fault log cleared")
			return nil
		}
		if len(dbg.con.Faults.Log) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no faults")
			return nil
		}
		w := dbg.writer(terminal.StyleFeedback)
		dbg.con.Faults.WriteLog(w)
		w.flush()

	case cmdLog:
		option, _ := tokens.Get()
		w := dbg.writer(terminal.StyleFeedback)
		switch strings.ToUpper(option) {
		case "ALL":
			logger.Write(w)
		case "CLEAR":
			logger.Clear()
		default:
			logger.Tail(w, defaultLogCount)
		}
		w.flush()

	case cmdTrace:
		option, ok := tokens.Get()
		if ok {
			dbg.trace = strings.ToUpper(option) == "ON"
		} else {
			dbg.trace = !dbg.trace
		}
		if dbg.trace {
			dbg.printLine(terminal.StyleFeedback, "trace on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "trace off")
		}

	default:
		return curated.Errorf("%s is not yet implemented", command)
	}

	return nil
}

// peek displays count bytes from the virtual address, sixteen bytes per
// line.
func (dbg *Debugger) peek(address uint64, count int) error {
	data := make([]byte, count)
	err := dbg.con.Mem.Peek(address, data)
	if err != nil {
		return err
	}

	for i := 0; i < len(data); i += 16 {
		row := data[i:min(i+16, len(data))]
		s := make([]string, len(row))
		for j, b := range row {
			s[j] = fmt.Sprintf("%02x", b)
		}
		dbg.printLine(terminal.StyleInstrument, "%08x  %s", uint32(address)+uint32(i), strings.Join(s, " "))
	}

	return nil
}

// memviz writes a dot graph of the register file or the TLB.
func (dbg *Debugger) memviz(target string, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	switch target {
	case "REGS":
		memviz.Map(f, dbg.con.CPU.Registers())
	case "TLB":
		memviz.Map(f, dbg.con.TLB)
	}

	dbg.printLine(terminal.StyleFeedback, "%s graph written to %s", strings.ToLower(target), filename)

	return nil
}

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

package debugger_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ultra64emu/ultra64/cartridgeloader"
	"github.com/ultra64emu/ultra64/debugger"
	"github.com/ultra64emu/ultra64/debugger/govern"
	"github.com/ultra64emu/ultra64/debugger/terminal/plainterm"
	"github.com/ultra64emu/ultra64/hardware"
	"github.com/ultra64emu/ultra64/test"
)

const (
	addiuT0  = 0x24080005 // ADDIU $t0, $r0, 5
	incT0    = 0x25080001 // ADDIU $t0, $t0, 1
	unknown  = 0xec000000
	loopSelf = 0x1000ffff // B -1
	nop      = 0x00000000
)

func newConsole(t *testing.T, program ...uint32) *hardware.Console {
	t.Helper()

	con, err := hardware.NewConsole(nil)
	test.DemandSuccess(t, err)
	con.Instance.Normalise()

	data := make([]byte, hardware.BootSize)
	binary.BigEndian.PutUint32(data, 0x80371240)
	for i, w := range program {
		binary.BigEndian.PutUint32(data[0x40+i*4:], w)
	}

	cl := cartridgeloader.Loader{Filename: "test.z64"}
	test.DemandSuccess(t, cl.LoadBytes(data))
	test.DemandSuccess(t, con.AttachCartridge(cl))

	return con
}

// session runs the debugger with the script as input and returns the
// debugger and everything written to the terminal.
func session(t *testing.T, con *hardware.Console, script ...string) (*debugger.Debugger, string) {
	t.Helper()

	w := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(strings.Join(script, "\n")+"\n"), w)

	dbg, err := debugger.NewDebugger(con, term)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())

	return dbg, w.String()
}

func expectOutput(t *testing.T, output string, s string) {
	t.Helper()
	if !strings.Contains(output, s) {
		t.Errorf("output does not contain %q:\n%s", s, output)
	}
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, plainterm.NewPlainTerminal(strings.NewReader(""), &test.CompareWriter{}))
	test.ExpectFailure(t, err)
	_, err = debugger.NewDebugger(newConsole(t), nil)
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	con := newConsole(t, addiuT0, incT0, incT0)

	dbg, out := session(t, con, "step", "", "regs", "quit")
	test.ExpectEquality(t, dbg.State(), govern.Ending)
	test.ExpectEquality(t, con.CPU.GPR(8), uint64(6))
	test.ExpectEquality(t, con.CPU.PC(), uint64(hardware.BootPC+8))

	expectOutput(t, out, "a4000040  24080005  ADDIU")
	expectOutput(t, out, "a4000044  25080001  ADDIU")
	expectOutput(t, out, "t0=0000000000000006")

	_, out = session(t, newConsole(t, addiuT0, incT0, incT0), "step 3")
	expectOutput(t, out, "a4000048  25080001  ADDIU")
}

func TestEndOfInput(t *testing.T) {
	dbg, _ := session(t, newConsole(t, addiuT0), "step")
	test.ExpectEquality(t, dbg.State(), govern.Ending)
}

func TestInvalidCommand(t *testing.T) {
	_, out := session(t, newConsole(t), "jump", "step ten")
	expectOutput(t, out, "* unrecognised command (jump)")
	expectOutput(t, out, "* invalid argument for STEP (ten)")
}

func TestHelp(t *testing.T) {
	_, out := session(t, newConsole(t), "help", "help break", "help foo")
	expectOutput(t, out, "BREAK CARTRIDGE CLEAR COP0")
	expectOutput(t, out, "BREAK (%N)")
	expectOutput(t, out, "* no help for FOO")
}

func TestBreakpoint(t *testing.T) {
	con := newConsole(t, addiuT0, incT0, incT0, incT0, loopSelf, nop)

	_, out := session(t, con, "break 0xa400004c", "break $a400004c", "list", "run")
	expectOutput(t, out, "breakpoint added at a400004c")
	expectOutput(t, out, "* breakpoint already exists (a400004c)")
	expectOutput(t, out, " 0: a400004c")
	expectOutput(t, out, "break at a400004c")
	test.ExpectEquality(t, con.CPU.GPR(8), uint64(7))
	test.ExpectEquality(t, uint32(con.CPU.PC()), uint32(0xa400004c))

	_, out = session(t, con, "clear 0xa4000000", "clear", "list")
	expectOutput(t, out, "* no breakpoint at a4000000")
	expectOutput(t, out, "breakpoints cleared")
	expectOutput(t, out, "no breakpoints")
}

func TestLoopDetection(t *testing.T) {
	con := newConsole(t, addiuT0, loopSelf, nop)

	_, out := session(t, con, "loop 50", "loop", "run")
	expectOutput(t, out, "loop detection after 50 instructions")
	expectOutput(t, out, "runaway loop between a4000044 and a4000048 (50 instructions)")
	expectOutput(t, out, "no registers have changed")

	_, out = session(t, con, "loop 0", "loop")
	expectOutput(t, out, "loop detection is off")
}

func TestFaults(t *testing.T) {
	con := newConsole(t, addiuT0, unknown)

	_, out := session(t, con, "run", "faults", "faults clear", "faults")
	expectOutput(t, out, "* decode fault")
	expectOutput(t, out, "(PC: a4000044)")
	expectOutput(t, out, "fault log cleared")
	expectOutput(t, out, "no faults")
	test.ExpectEquality(t, con.CPU.GPR(8), uint64(5))
}

func TestPeekPoke(t *testing.T) {
	con := newConsole(t)

	_, out := session(t, con, "poke 0x80000000 0x12345678", "peek $80000000 4", "poke 0xa0000000 0x100000000")
	expectOutput(t, out, "80000000 <- 12345678")
	expectOutput(t, out, "80000000  12 34 56 78")
	expectOutput(t, out, "* poke value is not a 32bit word (100000000)")

	v, err := con.Mem.Read32(0x80000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345678))

	_, out = session(t, con, "peek 0xa5000000 4")
	expectOutput(t, out, "a5000000  ff ff ff ff")
}

func TestTrace(t *testing.T) {
	_, out := session(t, newConsole(t, addiuT0), "trace on", "step", "trace")
	expectOutput(t, out, "trace on")
	expectOutput(t, out, "t0=0000000000000005")
	expectOutput(t, out, "trace off")
}

func TestDisasm(t *testing.T) {
	_, out := session(t, newConsole(t, addiuT0, incT0), "disasm 0xa4000040 2")
	expectOutput(t, out, "a4000040  24080005  ADDIU")
	expectOutput(t, out, "a4000044  25080001  ADDIU")
}

func TestInstruments(t *testing.T) {
	_, out := session(t, newConsole(t), "cop0", "tlb", "memmap", "cartridge", "reset")
	expectOutput(t, out, "prid")
	expectOutput(t, out, "no valid TLB entries")
	expectOutput(t, out, "10000000 -> 1fbfffff")
	expectOutput(t, out, "test.z64")
	expectOutput(t, out, "console booted")
}

func TestMemviz(t *testing.T) {
	dir := t.TempDir()
	regs := filepath.Join(dir, "regs.dot")
	tlb := filepath.Join(dir, "tlb.dot")

	_, out := session(t, newConsole(t), "memviz regs "+regs, "memviz tlb "+tlb)
	expectOutput(t, out, "regs graph written to")

	for _, fn := range []string{regs, tlb} {
		b, err := os.ReadFile(fn)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
	}
}

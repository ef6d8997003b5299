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
	"testing"

	"github.com/ultra64emu/ultra64/hardware/cpu/execution"
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
	"github.com/ultra64emu/ultra64/test"
)

func TestBreakpoints(t *testing.T) {
	bp := newBreakpoints()
	test.ExpectEquality(t, bp.String(), "no breakpoints")

	test.ExpectSuccess(t, bp.add(0xa4000050))
	test.ExpectSuccess(t, bp.add(0xffffffffa4000040))
	test.ExpectFailure(t, bp.add(0xa4000040))
	test.ExpectEquality(t, bp.len(), 2)
	test.ExpectEquality(t, bp.String(), " 0: a4000040\n 1: a4000050")

	// only the low 32 bits are significant
	test.ExpectSuccess(t, bp.check(0xa4000040))
	test.ExpectSuccess(t, bp.check(0xffffffffa4000050))
	test.ExpectFailure(t, bp.check(0xa4000044))

	test.ExpectSuccess(t, bp.drop(0xa4000040))
	test.ExpectFailure(t, bp.drop(0xa4000040))
	test.ExpectFailure(t, bp.check(0xa4000040))

	bp.clear()
	test.ExpectEquality(t, bp.len(), 0)
}

func TestLoopDetector(t *testing.T) {
	regs := registers.NewFile()

	ld := NewLoopDetector(10)

	// a loop of two instructions
	pc := []uint64{0x80000100, 0x80000104}
	detected := false
	for i := 0; i < 20 && !detected; i++ {
		regs.SetGPR(8, uint64(i))
		detected = ld.Check(pc[i%2], regs)
	}
	test.DemandSuccess(t, detected)

	r := ld.Report(regs)
	test.ExpectEquality(t, r, "runaway loop between 80000100 and 80000104 (10 instructions)\n  t0 0000000000000000 -> 000000000000000a")

	// after a report the loop body has to be established again
	test.ExpectFailure(t, ld.Check(0x80000100, regs))

	// moving away from the loop body resets the count
	ld.Reset()
	for i := 0; i < 9; i++ {
		test.ExpectFailure(t, ld.Check(0x80000100, regs))
	}
	test.ExpectFailure(t, ld.Check(0x80001000, regs))
	test.ExpectFailure(t, ld.Check(0x80001000, regs))

	// a threshold of zero disables the detector
	ld = NewLoopDetector(0)
	for i := 0; i < 100; i++ {
		test.ExpectFailure(t, ld.Check(0x80000100, regs))
	}
}

func TestTraceRegisters(t *testing.T) {
	regs := registers.NewFile()
	regs.SetGPR(8, 5)
	test.ExpectEquality(t, traceRegisters(resultFor(0x24080005), regs), "t0=0000000000000005 r0=0000000000000000")

	// registers are only listed once
	test.ExpectEquality(t, traceRegisters(resultFor(0x01084021), regs), "t0=0000000000000005")

	// no operands
	test.ExpectEquality(t, traceRegisters(resultFor(0x00000000), regs), "")
}

func resultFor(word uint32) execution.Result {
	o := instructions.Opcode(word)
	return execution.Result{
		Opcode: o,
		Defn:   instructions.Decode(o),
		Final:  true,
	}
}

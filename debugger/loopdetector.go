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
	"strings"

	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
)

// maximum distance in bytes between the lowest and highest address of a
// loop body for the loop to be considered small.
const loopSpan = 64

// LoopDetector notices when the CPU has been executing the same small group
// of addresses for a long time. Such loops are often the result of the
// emulation waiting for hardware that is not emulated.
type LoopDetector struct {
	// number of instructions executed inside the loop body before the loop
	// is reported. zero disables the detector
	Threshold int

	// address range of the current loop body
	lo, hi uint32

	// instructions executed since the loop body was established
	count int

	// register values when the loop body was established
	gpr          [registers.NumGPR]uint64
	hiReg, loReg uint64
}

// NewLoopDetector is the preferred method of initialisation for the
// LoopDetector type.
func NewLoopDetector(threshold int) *LoopDetector {
	ld := &LoopDetector{
		Threshold: threshold,
	}
	ld.Reset()
	return ld
}

// Reset forgets the current loop body. The next call to Check() starts a new
// one.
func (ld *LoopDetector) Reset() {
	ld.count = 0
	ld.lo = 1
	ld.hi = 0
}

// Check should be called with the PC and register file after every
// instruction. Returns true when a runaway loop is detected. The detector
// continues to return true until Report() or Reset() is called.
func (ld *LoopDetector) Check(pc uint64, regs *registers.File) bool {
	if ld.Threshold <= 0 {
		return false
	}

	a := uint32(pc)

	switch {
	case ld.lo <= ld.hi && a >= ld.lo && a <= ld.hi:
		ld.count++
	case ld.lo <= ld.hi && max(ld.hi, a)-min(ld.lo, a) < loopSpan:
		ld.lo = min(ld.lo, a)
		ld.hi = max(ld.hi, a)
		ld.count++
	default:
		ld.lo = a
		ld.hi = a
		ld.count = 0
		ld.snapshot(regs)
	}

	return ld.count >= ld.Threshold
}

func (ld *LoopDetector) snapshot(regs *registers.File) {
	for i := range ld.gpr {
		ld.gpr[i] = regs.GPR(i)
	}
	ld.hiReg = regs.HI()
	ld.loReg = regs.LO()
}

// Report describes the loop and the registers that have changed since the
// loop was entered. The detector is reset.
func (ld *LoopDetector) Report(regs *registers.File) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("runaway loop between %08x and %08x (%d instructions)", ld.lo, ld.hi, ld.count))

	changed := 0
	diff := func(label string, was uint64, now uint64) {
		if was != now {
			s.WriteString(fmt.Sprintf("\n  %-2s %016x -> %016x", label, was, now))
			changed++
		}
	}

	for i := range ld.gpr {
		diff(registers.GPRLabel(i), ld.gpr[i], regs.GPR(i))
	}
	diff("hi", ld.hiReg, regs.HI())
	diff("lo", ld.loReg, regs.LO())

	if changed == 0 {
		s.WriteString("\n  no registers have changed")
	}

	ld.Reset()

	return s.String()
}

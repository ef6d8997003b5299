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

package cpu_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/test"
)

func TestCOP0Whitelist(t *testing.T) {
	for i := 0; i < registers.NumCOP0; i++ {
		mc, mem, _ := newCPU(t)
		mem.putInstructions(0,
			immediate(opORI, 0, 1, 0x0300),
			mtc0(1, i),
			mfc0(2, i),
		)
		step(t, mc)

		err := mc.ExecuteInstruction()
		if !registers.COP0Writable(i) {
			test.ExpectSuccess(t, faults.Is(err, faults.UnsupportedRegister), i)
			f, _ := faults.As(err)
			test.ExpectEquality(t, f.Address, uint32(i), i)
			continue
		}

		test.ExpectSuccess(t, err, i)
		step(t, mc)

		switch i {
		case registers.Wired:
			test.ExpectEquality(t, mc.GPR(2), uint64(0x00), i)
		default:
			test.ExpectEquality(t, mc.GPR(2), uint64(0x0300), i)
		}
	}
}

func TestRandom(t *testing.T) {
	mc, mem, _ := newCPU(t)
	mem.putInstructions(0,
		immediate(opORI, 0, 1, 0x0005),
		mtc0(1, registers.Wired),
		nop,
	)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.COP0(registers.Wired), uint64(5))
	test.ExpectEquality(t, mc.COP0(registers.Random), uint64(31))

	// random is reinjected before every instruction
	step(t, mc)
	test.ExpectEquality(t, mc.COP0(registers.Random), uint64(5))
}

func TestTLBInstructions(t *testing.T) {
	mc, mem, tb := newCPU(t)

	mem.putInstructions(0,
		immediate(opORI, 0, 1, 0x0003),
		mtc0(1, registers.Index),
		immediate(opLUI, 0, 2, 0x0040),
		mtc0(2, registers.EntryHi),
		immediate(opORI, 0, 3, 0x4003),
		mtc0(3, registers.EntryLo0),
		immediate(opORI, 0, 4, 0x8003),
		mtc0(4, registers.EntryLo1),
		tlbwi,
		mtc0(0, registers.Index),
		tlbp,
	)
	for range 11 {
		step(t, mc)
	}

	test.ExpectEquality(t, mc.COP0(registers.Index), uint64(3))
	test.ExpectEquality(t, tb.Entry(3).EntryHi, uint64(0x00400000))

	p, ok := tb.Translate(0x00400010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00100010))
	p, ok = tb.Translate(0x00401010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00200010))

	// read the entry back
	mem.putInstructions(44,
		mtc0(0, registers.EntryHi),
		mtc0(0, registers.EntryLo0),
		tlbr,
	)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.COP0(registers.EntryHi), uint64(0))
	step(t, mc)
	test.ExpectEquality(t, mc.COP0(registers.EntryHi), uint64(0x00400000))
	test.ExpectEquality(t, mc.COP0(registers.EntryLo0), uint64(0x4003))

	// probe for an address that is not in the TLB
	mem.putInstructions(56,
		immediate(opLUI, 0, 2, 0x0080),
		mtc0(2, registers.EntryHi),
		tlbp,
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.COP0(registers.Index), uint64(0x80000000))
}

func TestERET(t *testing.T) {
	mc, mem, _ := newCPU(t)

	mem.putInstructions(0,
		immediate(opORI, 0, 1, 0x0100),
		mtc0(1, registers.EPC),
		immediate(opORI, 0, 2, 0x0002),
		mtc0(2, registers.Status),
		eret,
	)
	for range 5 {
		step(t, mc)
	}

	test.ExpectEquality(t, mc.PC(), uint64(0x100))
	test.ExpectEquality(t, mc.COP0(registers.Status), uint64(0))
}

func TestFloatingControl(t *testing.T) {
	mc, mem, _ := newCPU(t)

	// CFC1 r1, fcr0; CTC1 r2, fcr31; CFC1 r3, fcr31; CTC1 r2, fcr1
	mem.putInstructions(0,
		0x44410000,
		0x44c2f800,
		0x4443f800,
		0x44c20800,
	)
	mc.Registers().SetGPR(2, 0x01000800)

	step(t, mc)
	test.ExpectEquality(t, mc.GPR(1), uint64(registers.FCR0Revision))
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.GPR(3), uint64(0x01000800))

	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, faults.Is(err, faults.UnsupportedRegister))
}

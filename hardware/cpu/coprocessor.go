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

package cpu

import (
	"fmt"

	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
)

// bits in the COP0 Status register
const (
	statusEXL = 0x02
	statusERL = 0x04
)

// the value of the Index register after a failed TLBP
const probeFailure = 0x80000000

// writeCOP0 writes a COP0 register on behalf of a program. writing EntryHi
// changes the address space identifier used by the TLB.
func (mc *CPU) writeCOP0(reg int, v uint64) error {
	err := mc.regs.WriteCOP0(reg, v)
	if err != nil {
		return err
	}
	if reg == registers.EntryHi {
		mc.tlb.SetASID(uint8(v))
	}
	return nil
}

func mfc0(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), sext32(uint32(mc.regs.COP0(o.RD()))))
	return nil
}

func dmfc0(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), mc.regs.COP0(o.RD()))
	return nil
}

func mtc0(mc *CPU, o instructions.Opcode) error {
	return mc.writeCOP0(o.RD(), sext32(uint32(mc.regs.GPR(o.RT()))))
}

func dmtc0(mc *CPU, o instructions.Opcode) error {
	return mc.writeCOP0(o.RD(), mc.regs.GPR(o.RT()))
}

func (mc *CPU) tlbEntry() tlb.Entry {
	return tlb.Entry{
		PageMask: mc.regs.COP0(registers.PageMask),
		EntryHi:  mc.regs.COP0(registers.EntryHi),
		EntryLo0: mc.regs.COP0(registers.EntryLo0),
		EntryLo1: mc.regs.COP0(registers.EntryLo1),
	}
}

func tlbr(mc *CPU, _ instructions.Opcode) error {
	e := mc.tlb.Entry(int(mc.regs.COP0(registers.Index) & 0x1f))
	mc.regs.LoadCOP0(registers.PageMask, e.PageMask)
	mc.regs.LoadCOP0(registers.EntryHi, e.EntryHi)
	mc.regs.LoadCOP0(registers.EntryLo0, e.EntryLo0)
	mc.regs.LoadCOP0(registers.EntryLo1, e.EntryLo1)
	mc.tlb.SetASID(e.ASID())
	return nil
}

func tlbwi(mc *CPU, _ instructions.Opcode) error {
	idx := int(mc.regs.COP0(registers.Index) & 0x1f)
	e := mc.tlbEntry()
	mc.tlb.SetEntry(idx, e)
	mc.logf("TLBWI %02d: %s", idx, e)
	return nil
}

func tlbwr(mc *CPU, _ instructions.Opcode) error {
	idx := int(mc.regs.COP0(registers.Random) & 0x1f)
	e := mc.tlbEntry()
	mc.tlb.SetEntry(idx, e)
	mc.logf("TLBWR %02d: %s", idx, e)
	return nil
}

func tlbp(mc *CPU, _ instructions.Opcode) error {
	idx, ok := mc.tlb.Probe(mc.regs.COP0(registers.EntryHi))
	if ok {
		mc.regs.LoadCOP0(registers.Index, uint64(idx))
	} else {
		mc.regs.LoadCOP0(registers.Index, probeFailure)
	}
	return nil
}

// eret returns from an exception. there is no delay slot.
func eret(mc *CPU, _ instructions.Opcode) error {
	status := mc.regs.COP0(registers.Status)
	if status&statusERL == statusERL {
		mc.regs.PC = mc.regs.COP0(registers.ErrorEPC)
		mc.regs.LoadCOP0(registers.Status, status&^statusERL)
	} else {
		mc.regs.PC = mc.regs.COP0(registers.EPC)
		mc.regs.LoadCOP0(registers.Status, status&^statusEXL)
	}
	mc.regs.LLBit = false
	mc.pcMoved = true
	return nil
}

func cfc1(mc *CPU, o instructions.Opcode) error {
	v, ok := mc.regs.FCR(o.RD())
	if !ok {
		return faults.New(faults.UnsupportedRegister, fmt.Sprintf("read of FCR%d", o.RD()), uint32(o.RD()), 0)
	}
	mc.regs.SetGPR(o.RT(), sext32(v))
	return nil
}

func ctc1(mc *CPU, o instructions.Opcode) error {
	if o.RD() != 31 {
		return faults.New(faults.UnsupportedRegister, fmt.Sprintf("write to FCR%d", o.RD()), uint32(o.RD()), 0)
	}
	mc.regs.FCR31 = uint32(mc.regs.GPR(o.RT()))
	return nil
}

func syscall(mc *CPU, o instructions.Opcode) error {
	return faults.New(faults.UnsupportedOperation, fmt.Sprintf("SYSCALL exception (code %05x)", o.Code()), uint32(mc.regs.PC), 0)
}

func breakpoint(mc *CPU, o instructions.Opcode) error {
	return faults.New(faults.UnsupportedOperation, fmt.Sprintf("BREAK exception (code %05x)", o.Code()), uint32(mc.regs.PC), 0)
}

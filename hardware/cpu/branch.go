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
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
)

// branch stages the target address and moves the PC to the delay slot.
func (mc *CPU) branch(target uint64) {
	mc.delaySlot = true
	mc.delayTarget = target
	mc.LastResult.BranchTaken = true
	mc.LastResult.Target = target
	mc.regs.PC += 4
	mc.pcMoved = true
}

// skip moves the PC past the delay slot of a branch that is not taken.
func (mc *CPU) skip() {
	mc.regs.PC += 8
	mc.pcMoved = true
}

// conditional branch to the target encoded in the instruction.
func (mc *CPU) conditional(o instructions.Opcode, cond bool) {
	if cond {
		mc.branch(o.BranchTarget(mc.regs.PC))
	} else {
		mc.skip()
	}
}

// link writes the return address to the register. the return address is the
// instruction after the delay slot.
func (mc *CPU) link(reg int) {
	mc.regs.SetGPR(reg, mc.regs.PC+8)
}

func j(mc *CPU, o instructions.Opcode) error {
	mc.branch(o.JumpTarget(mc.regs.PC))
	return nil
}

func jal(mc *CPU, o instructions.Opcode) error {
	mc.link(registers.RA)
	mc.branch(o.JumpTarget(mc.regs.PC))
	return nil
}

func jr(mc *CPU, o instructions.Opcode) error {
	mc.branch(mc.regs.GPR(o.RS()))
	return nil
}

func jalr(mc *CPU, o instructions.Opcode) error {
	// the target is read before the link in case both are the same register
	target := mc.regs.GPR(o.RS())
	mc.link(o.RD())
	mc.branch(target)
	return nil
}

// b is the unconditional branch. it has two encodings and only the offset
// field is common to both.
func b(mc *CPU, o instructions.Opcode) error {
	mc.branch(o.BranchTarget(mc.regs.PC))
	return nil
}

func beq(mc *CPU, o instructions.Opcode) error {
	mc.conditional(o, mc.regs.GPR(o.RS()) == mc.regs.GPR(o.RT()))
	return nil
}

func bne(mc *CPU, o instructions.Opcode) error {
	mc.conditional(o, mc.regs.GPR(o.RS()) != mc.regs.GPR(o.RT()))
	return nil
}

func blez(mc *CPU, o instructions.Opcode) error {
	mc.conditional(o, int64(mc.regs.GPR(o.RS())) <= 0)
	return nil
}

func bgtz(mc *CPU, o instructions.Opcode) error {
	mc.conditional(o, int64(mc.regs.GPR(o.RS())) > 0)
	return nil
}

func bltz(mc *CPU, o instructions.Opcode) error {
	mc.conditional(o, int64(mc.regs.GPR(o.RS())) < 0)
	return nil
}

func bgez(mc *CPU, o instructions.Opcode) error {
	mc.conditional(o, int64(mc.regs.GPR(o.RS())) >= 0)
	return nil
}

func bltzal(mc *CPU, o instructions.Opcode) error {
	cond := int64(mc.regs.GPR(o.RS())) < 0
	mc.link(registers.RA)
	mc.conditional(o, cond)
	return nil
}

func bgezal(mc *CPU, o instructions.Opcode) error {
	cond := int64(mc.regs.GPR(o.RS())) >= 0
	mc.link(registers.RA)
	mc.conditional(o, cond)
	return nil
}

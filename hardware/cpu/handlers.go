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
)

// newHandlers returns the table of instruction handlers. Aliases use the
// handler of the instruction they are a special case of, except B which has
// a handler of its own.
func newHandlers() [instructions.NumKinds]handler {
	var h [instructions.NumKinds]handler

	// aliases
	h[instructions.NOP] = nop
	h[instructions.MOVE] = or
	h[instructions.B] = b
	h[instructions.BEQZ] = beq
	h[instructions.BNEZ] = bne
	h[instructions.BAL] = bgezal

	// shifts
	h[instructions.SLL] = sll
	h[instructions.SRL] = srl
	h[instructions.SRA] = sra
	h[instructions.SLLV] = sllv
	h[instructions.SRLV] = srlv
	h[instructions.SRAV] = srav
	h[instructions.DSLL] = dsll
	h[instructions.DSRL] = dsrl
	h[instructions.DSRA] = dsra
	h[instructions.DSLL32] = dsll32
	h[instructions.DSRL32] = dsrl32
	h[instructions.DSRA32] = dsra32
	h[instructions.DSLLV] = dsllv
	h[instructions.DSRLV] = dsrlv
	h[instructions.DSRAV] = dsrav

	// multiply and divide
	h[instructions.MFHI] = mfhi
	h[instructions.MTHI] = mthi
	h[instructions.MFLO] = mflo
	h[instructions.MTLO] = mtlo
	h[instructions.MULT] = mult
	h[instructions.MULTU] = multu
	h[instructions.DIV] = div
	h[instructions.DIVU] = divu
	h[instructions.DMULT] = dmult
	h[instructions.DMULTU] = dmultu
	h[instructions.DDIV] = ddiv
	h[instructions.DDIVU] = ddivu

	// register arithmetic and logic
	h[instructions.ADD] = add
	h[instructions.ADDU] = addu
	h[instructions.SUB] = sub
	h[instructions.SUBU] = subu
	h[instructions.AND] = and
	h[instructions.OR] = or
	h[instructions.XOR] = xor
	h[instructions.NOR] = nor
	h[instructions.SLT] = slt
	h[instructions.SLTU] = sltu
	h[instructions.DADD] = dadd
	h[instructions.DADDU] = daddu
	h[instructions.DSUB] = dsub
	h[instructions.DSUBU] = dsubu

	// immediate arithmetic and logic
	h[instructions.ADDI] = addi
	h[instructions.ADDIU] = addiu
	h[instructions.SLTI] = slti
	h[instructions.SLTIU] = sltiu
	h[instructions.ANDI] = andi
	h[instructions.ORI] = ori
	h[instructions.XORI] = xori
	h[instructions.LUI] = lui
	h[instructions.DADDI] = daddi
	h[instructions.DADDIU] = daddiu

	// jumps and branches
	h[instructions.J] = j
	h[instructions.JAL] = jal
	h[instructions.JR] = jr
	h[instructions.JALR] = jalr
	h[instructions.BEQ] = beq
	h[instructions.BNE] = bne
	h[instructions.BLEZ] = blez
	h[instructions.BGTZ] = bgtz
	h[instructions.BLTZ] = bltz
	h[instructions.BGEZ] = bgez
	h[instructions.BLTZAL] = bltzal
	h[instructions.BGEZAL] = bgezal
	h[instructions.BEQL] = beq
	h[instructions.BNEL] = bne
	h[instructions.BLEZL] = blez
	h[instructions.BGTZL] = bgtz
	h[instructions.BLTZL] = bltz
	h[instructions.BGEZL] = bgez
	h[instructions.BLTZALL] = bltzal
	h[instructions.BGEZALL] = bgezal

	// loads and stores
	h[instructions.LB] = lb
	h[instructions.LBU] = lbu
	h[instructions.LH] = lh
	h[instructions.LHU] = lhu
	h[instructions.LW] = lw
	h[instructions.LWU] = lwu
	h[instructions.LWL] = lwl
	h[instructions.LWR] = lwr
	h[instructions.LD] = ld
	h[instructions.LL] = ll
	h[instructions.SB] = sb
	h[instructions.SH] = sh
	h[instructions.SW] = sw
	h[instructions.SWL] = swl
	h[instructions.SWR] = swr
	h[instructions.SD] = sd
	h[instructions.SC] = sc
	h[instructions.CACHE] = nop

	// coprocessors
	h[instructions.MFC0] = mfc0
	h[instructions.DMFC0] = dmfc0
	h[instructions.MTC0] = mtc0
	h[instructions.DMTC0] = dmtc0
	h[instructions.TLBR] = tlbr
	h[instructions.TLBWI] = tlbwi
	h[instructions.TLBWR] = tlbwr
	h[instructions.TLBP] = tlbp
	h[instructions.ERET] = eret
	h[instructions.CFC1] = cfc1
	h[instructions.CTC1] = ctc1

	// system
	h[instructions.SYSCALL] = syscall
	h[instructions.BREAK] = breakpoint
	h[instructions.SYNC] = nop

	return h
}

func nop(_ *CPU, _ instructions.Opcode) error {
	return nil
}

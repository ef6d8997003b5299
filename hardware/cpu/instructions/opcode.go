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

package instructions

import "fmt"

// Opcode is a single 32 bit instruction word.
type Opcode uint32

func (o Opcode) String() string {
	return fmt.Sprintf("%08x", uint32(o))
}

// Op is the primary opcode field (bits 31-26).
func (o Opcode) Op() uint32 {
	return uint32(o) >> 26
}

// RS is the rs register field (bits 25-21).
func (o Opcode) RS() int {
	return int(uint32(o)>>21) & 0x1f
}

// RT is the rt register field (bits 20-16).
func (o Opcode) RT() int {
	return int(uint32(o)>>16) & 0x1f
}

// RD is the rd register field (bits 15-11).
func (o Opcode) RD() int {
	return int(uint32(o)>>11) & 0x1f
}

// SA is the shift amount field (bits 10-6).
func (o Opcode) SA() uint32 {
	return uint32(o) >> 6 & 0x1f
}

// Funct is the function field (bits 5-0).
func (o Opcode) Funct() uint32 {
	return uint32(o) & 0x3f
}

// Imm is the 16 bit immediate field (bits 15-0).
func (o Opcode) Imm() uint16 {
	return uint16(o)
}

// SignedImm is the immediate field sign extended to 64 bits.
func (o Opcode) SignedImm() int64 {
	return int64(int16(o))
}

// Target is the 26 bit jump target field (bits 25-0).
func (o Opcode) Target() uint32 {
	return uint32(o) & 0x03ffffff
}

// Code is the 20 bit code field of the SYSCALL and BREAK instructions (bits
// 25-6).
func (o Opcode) Code() uint32 {
	return uint32(o) >> 6 & 0x000fffff
}

// BranchTarget is the destination of a branch instruction at the specified
// address.
func (o Opcode) BranchTarget(pc uint64) uint64 {
	return pc + 4 + uint64(o.SignedImm()<<2)
}

// JumpTarget is the destination of a J or JAL instruction at the specified
// address. The top four bits of the 32 bit address are taken from the PC.
func (o Opcode) JumpTarget(pc uint64) uint64 {
	return pc&^0x0fffffff | uint64(o.Target())<<2
}

// EncodeR builds a register format instruction word.
func EncodeR(op uint32, rs, rt, rd int, sa uint32, funct uint32) Opcode {
	return Opcode(op&0x3f<<26 | uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 | uint32(rd&0x1f)<<11 | sa&0x1f<<6 | funct&0x3f)
}

// EncodeI builds an immediate format instruction word.
func EncodeI(op uint32, rs, rt int, imm uint16) Opcode {
	return Opcode(op&0x3f<<26 | uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 | uint32(imm))
}

// EncodeJ builds a jump format instruction word.
func EncodeJ(op uint32, target uint32) Opcode {
	return Opcode(op&0x3f<<26 | target&0x03ffffff)
}

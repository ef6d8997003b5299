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

// Definition defines an instruction pattern in the instruction set.
type Definition struct {
	Kind     Kind
	Mnemonic string

	// an instruction word matches the definition if word&Mask == Bits
	Mask uint32
	Bits uint32

	// comma separated list of operand fields used when formatting the
	// instruction. see Format() for the list of valid operands
	Operands string

	Effect Category

	// the more general definition that this definition is a special case
	// of. NoKind if the definition does not overlap with any other
	Specialises Kind
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%s [mask=%08x bits=%08x effect=%s]", defn.Mnemonic, defn.Mask, defn.Bits, defn.Effect)
}

// Matches returns true if the instruction word matches the definition.
func (defn Definition) Matches(o Opcode) bool {
	return uint32(o)&defn.Mask == defn.Bits
}

// IsBranch returns true if the instruction has a delay slot.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow
}

// primary opcodes
const (
	opSpecial = 0x00
	opRegimm  = 0x01
	opCOP0    = 0x10
	opCOP1    = 0x11
)

const (
	maskSpecial = 0xfc00003f
	maskRegimm  = 0xfc1f0000
	maskOp      = 0xfc000000
	maskCopRS   = 0xffe00000
	maskCopFunc = 0xfe00003f
)

func special(kind Kind, mnemonic string, funct uint32, operands string, effect Category) *Definition {
	return &Definition{Kind: kind, Mnemonic: mnemonic, Mask: maskSpecial, Bits: funct, Operands: operands, Effect: effect}
}

func regimm(kind Kind, mnemonic string, rt uint32) *Definition {
	return &Definition{Kind: kind, Mnemonic: mnemonic, Mask: maskRegimm, Bits: opRegimm<<26 | rt<<16, Operands: "rs, branch", Effect: Flow}
}

func immediate(kind Kind, mnemonic string, op uint32, operands string, effect Category) *Definition {
	return &Definition{Kind: kind, Mnemonic: mnemonic, Mask: maskOp, Bits: op << 26, Operands: operands, Effect: effect}
}

func coprocessor(kind Kind, mnemonic string, op uint32, rs uint32, operands string) *Definition {
	return &Definition{Kind: kind, Mnemonic: mnemonic, Mask: maskCopRS, Bits: op<<26 | rs<<21, Operands: operands, Effect: Coprocessor}
}

func cop0Func(kind Kind, mnemonic string, funct uint32, effect Category) *Definition {
	return &Definition{Kind: kind, Mnemonic: mnemonic, Mask: maskCopFunc, Bits: opCOP0<<26 | 1<<25 | funct, Effect: effect}
}

// newDefinitions returns the instruction table in decoding order. Special
// cases must appear before the definition they specialise.
func newDefinitions() []*Definition {
	return []*Definition{
		// aliases
		{Kind: NOP, Mnemonic: "NOP", Mask: 0xffffffff, Bits: 0x00000000, Effect: Modify, Specialises: SLL},
		{Kind: MOVE, Mnemonic: "MOVE", Mask: 0xfc1f07ff, Bits: 0x00000025, Operands: "rd, rs", Effect: Modify, Specialises: OR},
		{Kind: B, Mnemonic: "B", Mask: 0xffff0000, Bits: 0x10000000, Operands: "branch", Effect: Flow, Specialises: BEQZ},
		{Kind: B, Mnemonic: "B", Mask: 0xffff0000, Bits: 0x04010000, Operands: "branch", Effect: Flow, Specialises: BGEZ},
		{Kind: BEQZ, Mnemonic: "BEQZ", Mask: 0xfc1f0000, Bits: 0x10000000, Operands: "rs, branch", Effect: Flow, Specialises: BEQ},
		{Kind: BNEZ, Mnemonic: "BNEZ", Mask: 0xfc1f0000, Bits: 0x14000000, Operands: "rs, branch", Effect: Flow, Specialises: BNE},
		{Kind: BAL, Mnemonic: "BAL", Mask: 0xffff0000, Bits: 0x04110000, Operands: "branch", Effect: Flow, Specialises: BGEZAL},

		// SPECIAL
		special(SLL, "SLL", 0x00, "rd, rt, sa", Modify),
		special(SRL, "SRL", 0x02, "rd, rt, sa", Modify),
		special(SRA, "SRA", 0x03, "rd, rt, sa", Modify),
		special(SLLV, "SLLV", 0x04, "rd, rt, rs", Modify),
		special(SRLV, "SRLV", 0x06, "rd, rt, rs", Modify),
		special(SRAV, "SRAV", 0x07, "rd, rt, rs", Modify),
		special(JR, "JR", 0x08, "rs", Flow),
		special(JALR, "JALR", 0x09, "rd, rs", Flow),
		special(SYSCALL, "SYSCALL", 0x0c, "code", System),
		special(BREAK, "BREAK", 0x0d, "code", System),
		special(SYNC, "SYNC", 0x0f, "", System),
		special(MFHI, "MFHI", 0x10, "rd", Modify),
		special(MTHI, "MTHI", 0x11, "rs", Modify),
		special(MFLO, "MFLO", 0x12, "rd", Modify),
		special(MTLO, "MTLO", 0x13, "rs", Modify),
		special(DSLLV, "DSLLV", 0x14, "rd, rt, rs", Modify),
		special(DSRLV, "DSRLV", 0x16, "rd, rt, rs", Modify),
		special(DSRAV, "DSRAV", 0x17, "rd, rt, rs", Modify),
		special(MULT, "MULT", 0x18, "rs, rt", Modify),
		special(MULTU, "MULTU", 0x19, "rs, rt", Modify),
		special(DIV, "DIV", 0x1a, "rs, rt", Modify),
		special(DIVU, "DIVU", 0x1b, "rs, rt", Modify),
		special(DMULT, "DMULT", 0x1c, "rs, rt", Modify),
		special(DMULTU, "DMULTU", 0x1d, "rs, rt", Modify),
		special(DDIV, "DDIV", 0x1e, "rs, rt", Modify),
		special(DDIVU, "DDIVU", 0x1f, "rs, rt", Modify),
		special(ADD, "ADD", 0x20, "rd, rs, rt", Modify),
		special(ADDU, "ADDU", 0x21, "rd, rs, rt", Modify),
		special(SUB, "SUB", 0x22, "rd, rs, rt", Modify),
		special(SUBU, "SUBU", 0x23, "rd, rs, rt", Modify),
		special(AND, "AND", 0x24, "rd, rs, rt", Modify),
		special(OR, "OR", 0x25, "rd, rs, rt", Modify),
		special(XOR, "XOR", 0x26, "rd, rs, rt", Modify),
		special(NOR, "NOR", 0x27, "rd, rs, rt", Modify),
		special(SLT, "SLT", 0x2a, "rd, rs, rt", Modify),
		special(SLTU, "SLTU", 0x2b, "rd, rs, rt", Modify),
		special(DADD, "DADD", 0x2c, "rd, rs, rt", Modify),
		special(DADDU, "DADDU", 0x2d, "rd, rs, rt", Modify),
		special(DSUB, "DSUB", 0x2e, "rd, rs, rt", Modify),
		special(DSUBU, "DSUBU", 0x2f, "rd, rs, rt", Modify),
		special(DSLL, "DSLL", 0x38, "rd, rt, sa", Modify),
		special(DSRL, "DSRL", 0x3a, "rd, rt, sa", Modify),
		special(DSRA, "DSRA", 0x3b, "rd, rt, sa", Modify),
		special(DSLL32, "DSLL32", 0x3c, "rd, rt, sa", Modify),
		special(DSRL32, "DSRL32", 0x3e, "rd, rt, sa", Modify),
		special(DSRA32, "DSRA32", 0x3f, "rd, rt, sa", Modify),

		// REGIMM
		regimm(BLTZ, "BLTZ", 0x00),
		regimm(BGEZ, "BGEZ", 0x01),
		regimm(BLTZL, "BLTZL", 0x02),
		regimm(BGEZL, "BGEZL", 0x03),
		regimm(BLTZAL, "BLTZAL", 0x10),
		regimm(BGEZAL, "BGEZAL", 0x11),
		regimm(BLTZALL, "BLTZALL", 0x12),
		regimm(BGEZALL, "BGEZALL", 0x13),

		// jumps and branches
		immediate(J, "J", 0x02, "target", Flow),
		immediate(JAL, "JAL", 0x03, "target", Flow),
		immediate(BEQ, "BEQ", 0x04, "rs, rt, branch", Flow),
		immediate(BNE, "BNE", 0x05, "rs, rt, branch", Flow),
		immediate(BLEZ, "BLEZ", 0x06, "rs, branch", Flow),
		immediate(BGTZ, "BGTZ", 0x07, "rs, branch", Flow),

		// immediate arithmetic and logic
		immediate(ADDI, "ADDI", 0x08, "rt, rs, simm", Modify),
		immediate(ADDIU, "ADDIU", 0x09, "rt, rs, simm", Modify),
		immediate(SLTI, "SLTI", 0x0a, "rt, rs, simm", Modify),
		immediate(SLTIU, "SLTIU", 0x0b, "rt, rs, simm", Modify),
		immediate(ANDI, "ANDI", 0x0c, "rt, rs, imm", Modify),
		immediate(ORI, "ORI", 0x0d, "rt, rs, imm", Modify),
		immediate(XORI, "XORI", 0x0e, "rt, rs, imm", Modify),
		immediate(LUI, "LUI", 0x0f, "rt, imm", Modify),

		// coprocessor 0
		coprocessor(MFC0, "MFC0", opCOP0, 0x00, "rt, c0rd"),
		coprocessor(DMFC0, "DMFC0", opCOP0, 0x01, "rt, c0rd"),
		coprocessor(MTC0, "MTC0", opCOP0, 0x04, "rt, c0rd"),
		coprocessor(DMTC0, "DMTC0", opCOP0, 0x05, "rt, c0rd"),
		cop0Func(TLBR, "TLBR", 0x01, Coprocessor),
		cop0Func(TLBWI, "TLBWI", 0x02, Coprocessor),
		cop0Func(TLBWR, "TLBWR", 0x06, Coprocessor),
		cop0Func(TLBP, "TLBP", 0x08, Coprocessor),
		cop0Func(ERET, "ERET", 0x18, System),

		// coprocessor 1 control
		coprocessor(CFC1, "CFC1", opCOP1, 0x02, "rt, c1rd"),
		coprocessor(CTC1, "CTC1", opCOP1, 0x06, "rt, c1rd"),

		// branch likely
		immediate(BEQL, "BEQL", 0x14, "rs, rt, branch", Flow),
		immediate(BNEL, "BNEL", 0x15, "rs, rt, branch", Flow),
		immediate(BLEZL, "BLEZL", 0x16, "rs, branch", Flow),
		immediate(BGTZL, "BGTZL", 0x17, "rs, branch", Flow),

		// 64 bit immediate arithmetic
		immediate(DADDI, "DADDI", 0x18, "rt, rs, simm", Modify),
		immediate(DADDIU, "DADDIU", 0x19, "rt, rs, simm", Modify),

		// loads and stores
		immediate(LB, "LB", 0x20, "rt, mem", Read),
		immediate(LH, "LH", 0x21, "rt, mem", Read),
		immediate(LWL, "LWL", 0x22, "rt, mem", Read),
		immediate(LW, "LW", 0x23, "rt, mem", Read),
		immediate(LBU, "LBU", 0x24, "rt, mem", Read),
		immediate(LHU, "LHU", 0x25, "rt, mem", Read),
		immediate(LWR, "LWR", 0x26, "rt, mem", Read),
		immediate(LWU, "LWU", 0x27, "rt, mem", Read),
		immediate(SB, "SB", 0x28, "rt, mem", Write),
		immediate(SH, "SH", 0x29, "rt, mem", Write),
		immediate(SWL, "SWL", 0x2a, "rt, mem", Write),
		immediate(SW, "SW", 0x2b, "rt, mem", Write),
		immediate(SWR, "SWR", 0x2e, "rt, mem", Write),
		immediate(CACHE, "CACHE", 0x2f, "cacheop, mem", System),
		immediate(LL, "LL", 0x30, "rt, mem", Read),
		immediate(LD, "LD", 0x37, "rt, mem", Read),
		immediate(SC, "SC", 0x38, "rt, mem", Write),
		immediate(SD, "SD", 0x3f, "rt, mem", Write),
	}
}

// the instruction table, in decoding order
var definitions []*Definition

// the first definition of each Kind
var byKind [NumKinds]*Definition

func init() {
	definitions = newDefinitions()
	if err := validate(definitions); err != nil {
		panic(err)
	}
	for _, d := range definitions {
		if byKind[d.Kind] == nil {
			byKind[d.Kind] = d
		}
	}
}

// Definitions returns the instruction table in decoding order. The table
// must not be modified.
func Definitions() []*Definition {
	return definitions
}

// Lookup returns the first definition of the Kind. Returns nil if there is no
// definition for the Kind.
func Lookup(k Kind) *Definition {
	if k <= NoKind || k >= NumKinds {
		return nil
	}
	return byKind[k]
}

// Decode returns the first definition that matches the instruction word.
// Returns nil if no definition matches.
func Decode(o Opcode) *Definition {
	for _, d := range definitions {
		if uint32(o)&d.Mask == d.Bits {
			return d
		}
	}
	return nil
}

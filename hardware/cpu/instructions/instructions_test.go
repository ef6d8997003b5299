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

package instructions_test

import (
	"strings"
	"testing"

	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/test"
)

// the decoding order of the instruction table. changes to the order of the
// table must be reflected here
var registrationOrder = []string{
	"NOP", "MOVE", "B", "B", "BEQZ", "BNEZ", "BAL",
	"SLL", "SRL", "SRA", "SLLV", "SRLV", "SRAV", "JR", "JALR", "SYSCALL", "BREAK", "SYNC",
	"MFHI", "MTHI", "MFLO", "MTLO", "DSLLV", "DSRLV", "DSRAV",
	"MULT", "MULTU", "DIV", "DIVU", "DMULT", "DMULTU", "DDIV", "DDIVU",
	"ADD", "ADDU", "SUB", "SUBU", "AND", "OR", "XOR", "NOR", "SLT", "SLTU",
	"DADD", "DADDU", "DSUB", "DSUBU", "DSLL", "DSRL", "DSRA", "DSLL32", "DSRL32", "DSRA32",
	"BLTZ", "BGEZ", "BLTZL", "BGEZL", "BLTZAL", "BGEZAL", "BLTZALL", "BGEZALL",
	"J", "JAL", "BEQ", "BNE", "BLEZ", "BGTZ",
	"ADDI", "ADDIU", "SLTI", "SLTIU", "ANDI", "ORI", "XORI", "LUI",
	"MFC0", "DMFC0", "MTC0", "DMTC0", "TLBR", "TLBWI", "TLBWR", "TLBP", "ERET",
	"CFC1", "CTC1",
	"BEQL", "BNEL", "BLEZL", "BGTZL", "DADDI", "DADDIU",
	"LB", "LH", "LWL", "LW", "LBU", "LHU", "LWR", "LWU",
	"SB", "SH", "SWL", "SW", "SWR", "CACHE", "LL", "LD", "SC", "SD",
}

func TestRegistrationOrder(t *testing.T) {
	defs := instructions.Definitions()
	test.DemandEquality(t, len(defs), len(registrationOrder))
	for i, d := range defs {
		test.ExpectEquality(t, d.Mnemonic, registrationOrder[i], i)
	}
}

func TestEveryKindDefined(t *testing.T) {
	for k := instructions.NoKind + 1; k < instructions.NumKinds; k++ {
		d := instructions.Lookup(k)
		if test.ExpectInequality(t, d, nil, int(k)) {
			test.ExpectEquality(t, d.Kind, k)
			test.ExpectEquality(t, k.String(), d.Mnemonic)
		}
	}
	test.ExpectEquality(t, instructions.Lookup(instructions.NoKind), nil)
	test.ExpectEquality(t, instructions.NoKind.String(), "unknown")
}

// fields used to fill the parts of an instruction word not covered by a
// definition's mask
var fill = instructions.EncodeR(0, 1, 2, 3, 4, 5)

func TestRoundTrip(t *testing.T) {
	for _, d := range instructions.Definitions() {
		o := instructions.Opcode(d.Bits | uint32(fill)&^d.Mask)
		test.ExpectEquality(t, instructions.Decode(o), d, d.Mnemonic)

		// unmasked fields survive the round trip
		if d.Mask&0x03e00000 == 0 {
			test.ExpectEquality(t, o.RS(), 1, d.Mnemonic)
		}
		if d.Mask&0x001f0000 == 0 {
			test.ExpectEquality(t, o.RT(), 2, d.Mnemonic)
		}
		if d.Mask&0x0000f800 == 0 {
			test.ExpectEquality(t, o.RD(), 3, d.Mnemonic)
		}
	}
}

func TestFields(t *testing.T) {
	o := instructions.EncodeR(0x00, 9, 10, 11, 12, 0x20)
	test.ExpectEquality(t, o.Op(), uint32(0))
	test.ExpectEquality(t, o.RS(), 9)
	test.ExpectEquality(t, o.RT(), 10)
	test.ExpectEquality(t, o.RD(), 11)
	test.ExpectEquality(t, o.SA(), uint32(12))
	test.ExpectEquality(t, o.Funct(), uint32(0x20))

	o = instructions.EncodeI(0x08, 1, 1, 0xfff6)
	test.ExpectEquality(t, o.Op(), uint32(0x08))
	test.ExpectEquality(t, o.Imm(), uint16(0xfff6))
	test.ExpectEquality(t, o.SignedImm(), int64(-10))

	o = instructions.EncodeJ(0x03, 0x03ffffff)
	test.ExpectEquality(t, o.Target(), uint32(0x03ffffff))
	test.ExpectEquality(t, uint32(o), uint32(0x0fffffff))
}

func TestTargets(t *testing.T) {
	// jump target keeps the top bits of the PC
	o := instructions.EncodeJ(0x02, 2)
	test.ExpectEquality(t, o.JumpTarget(0), uint64(8))
	test.ExpectEquality(t, o.JumpTarget(0x80001000), uint64(0x80000008))
	test.ExpectEquality(t, o.JumpTarget(0xffffffffa4000040), uint64(0xffffffffa0000008))

	// branch offset is relative to the delay slot
	o = instructions.EncodeI(0x04, 0, 0, 0xffff)
	test.ExpectEquality(t, o.BranchTarget(0x100), uint64(0x100))
	o = instructions.EncodeI(0x04, 0, 0, 0x0004)
	test.ExpectEquality(t, o.BranchTarget(0x100), uint64(0x114))
}

func TestDecode(t *testing.T) {
	cases := []struct {
		word uint32
		kind instructions.Kind
	}{
		{0x00000000, instructions.NOP},
		{0x00000080, instructions.SLL},
		{0x00a01025, instructions.MOVE},
		{0x00a61025, instructions.OR},
		{0x10000003, instructions.B},
		{0x04010003, instructions.B},
		{0x10a00003, instructions.BEQZ},
		{0x10a60003, instructions.BEQ},
		{0x14a00003, instructions.BNEZ},
		{0x04110003, instructions.BAL},
		{0x04b10003, instructions.BGEZAL},
		{0x3c0dbfc0, instructions.LUI},
		{0x8da807fc, instructions.LW},
		{0x25ad07c0, instructions.ADDIU},
		{0x31080080, instructions.ANDI},
		{0x5500fffc, instructions.BNEL},
		{0x40806000, instructions.MTC0},
		{0x40086000, instructions.MFC0},
		{0x42000002, instructions.TLBWI},
		{0x42000018, instructions.ERET},
		{0x4442f800, instructions.CFC1},
		{0xbd000000, instructions.CACHE},
	}

	for _, c := range cases {
		d := instructions.Decode(instructions.Opcode(c.word))
		if test.ExpectInequality(t, d, nil, c.word) {
			test.ExpectEquality(t, d.Kind, c.kind, c.word)
		}
	}

	// unused primary opcode
	test.ExpectEquality(t, instructions.Decode(instructions.Opcode(0xec000000)), nil)

	// unused SPECIAL function
	test.ExpectEquality(t, instructions.Decode(instructions.Opcode(0x00000001)), nil)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		word uint32
		pc   uint64
		out  string
	}{
		{0x00000000, 0, "NOP"},
		{0x3c0dbfc0, 0, "LUI     $t5, 0xbfc0"},
		{0x8da807fc, 0, "LW      $t0, 2044($t5)"},
		{0x2021fff6, 0, "ADDI    $at, $at, -10"},
		{0x00210820, 0, "ADD     $at, $at, $at"},
		{0x5500fffc, 0xa4000050, "BNEL    $t0, $r0, 0xa4000044"},
		{0x0c000002, 0, "JAL     0x00000008"},
		{0x40806000, 0, "MTC0    $r0, status"},
		{0x00a01025, 0, "MOVE    $v0, $a1"},
		{0xec000000, 0, ".word   0xec000000"},
	}

	for _, c := range cases {
		test.ExpectEquality(t, instructions.Format(instructions.Opcode(c.word), c.pc), c.out)
	}
}

func TestDefinitionString(t *testing.T) {
	d := instructions.Lookup(instructions.ADDI)
	test.ExpectSuccess(t, strings.HasPrefix(d.String(), "ADDI [mask=fc000000 bits=20000000"))
	test.ExpectSuccess(t, d.Matches(0x2021fff6))
	test.ExpectFailure(t, d.IsBranch())
	test.ExpectSuccess(t, instructions.Lookup(instructions.BEQ).IsBranch())
}

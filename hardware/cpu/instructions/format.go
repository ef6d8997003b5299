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

import (
	"fmt"
	"strings"

	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
)

// Format returns the instruction word as a mnemonic followed by its operands.
// The pc argument is the address of the instruction and is used to resolve
// the destination of branches and jumps.
//
// The operand fields listed in a Definition are formatted as follows:
//
//	rs, rt, rd  general purpose register by symbolic name
//	sa          shift amount in decimal
//	imm         immediate value in hex
//	simm        sign extended immediate value in decimal
//	mem         sign extended offset and base register. eg. -4($sp)
//	branch      destination of branch
//	target      destination of jump
//	c0rd        COP0 register by symbolic name
//	c1rd        floating point control register number
//	cacheop     cache operation number
//	code        code field of the SYSCALL and BREAK instructions
//
// Instruction words that cannot be decoded are formatted as a data word.
func Format(o Opcode, pc uint64) string {
	defn := Decode(o)
	if defn == nil {
		return fmt.Sprintf("%-8s0x%08x", ".word", uint32(o))
	}
	return FormatDefinition(defn, o, pc)
}

// FormatDefinition is the same as Format() but with the definition already
// decoded.
func FormatDefinition(defn *Definition, o Opcode, pc uint64) string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}

	ops := strings.Split(defn.Operands, ", ")
	s := make([]string, len(ops))
	for i, op := range ops {
		s[i] = formatOperand(op, o, pc)
	}

	return fmt.Sprintf("%-8s%s", defn.Mnemonic, strings.Join(s, ", "))
}

func formatOperand(op string, o Opcode, pc uint64) string {
	switch op {
	case "rs":
		return fmt.Sprintf("$%s", registers.GPRLabel(o.RS()))
	case "rt":
		return fmt.Sprintf("$%s", registers.GPRLabel(o.RT()))
	case "rd":
		return fmt.Sprintf("$%s", registers.GPRLabel(o.RD()))
	case "sa":
		return fmt.Sprintf("%d", o.SA())
	case "imm":
		return fmt.Sprintf("0x%04x", o.Imm())
	case "simm":
		return fmt.Sprintf("%d", o.SignedImm())
	case "mem":
		return fmt.Sprintf("%d($%s)", o.SignedImm(), registers.GPRLabel(o.RS()))
	case "branch":
		return fmt.Sprintf("0x%08x", uint32(o.BranchTarget(pc)))
	case "target":
		return fmt.Sprintf("0x%08x", uint32(o.JumpTarget(pc)))
	case "c0rd":
		return registers.COP0Label(o.RD())
	case "c1rd":
		return fmt.Sprintf("fcr%d", o.RD())
	case "cacheop":
		return fmt.Sprintf("0x%02x", o.RT())
	case "code":
		return fmt.Sprintf("0x%05x", o.Code())
	}
	panic(fmt.Sprintf("instructions: unknown operand: %s", op))
}

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

	"github.com/ultra64emu/ultra64/disassembly"
	"github.com/ultra64emu/ultra64/hardware/cpu/execution"
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
)

// traceRegisters returns the values of the general purpose registers named
// by the operands of the instruction. values are read after the instruction
// has executed.
func traceRegisters(result execution.Result, regs *registers.File) string {
	if result.Defn == nil || result.Defn.Operands == "" {
		return ""
	}

	var idx []int
	add := func(i int) {
		for _, j := range idx {
			if j == i {
				return
			}
		}
		idx = append(idx, i)
	}

	for _, op := range strings.Split(result.Defn.Operands, ", ") {
		switch op {
		case "rs", "mem":
			add(result.Opcode.RS())
		case "rt":
			add(result.Opcode.RT())
		case "rd":
			add(result.Opcode.RD())
		}
	}

	s := make([]string, 0, len(idx))
	for _, i := range idx {
		s = append(s, fmt.Sprintf("%s=%016x", registers.GPRLabel(i), regs.GPR(i)))
	}

	return strings.Join(s, " ")
}

// formatResult returns the disassembly of the most recently executed
// instruction. register values are included if withRegisters is true.
func (dbg *Debugger) formatResult(result execution.Result, withRegisters bool) string {
	e := dbg.disasm.UpdateEntry(result)
	if e == nil {
		return fmt.Sprintf("%08x  %s", uint32(result.Address), instructions.Format(result.Opcode, result.Address))
	}

	s := strings.Builder{}
	dbg.disasm.WriteEntry(&s, disassembly.WriteAttr{Bytecode: true, Notes: true}, e)
	line := strings.TrimSuffix(s.String(), "\n")

	if withRegisters {
		if r := traceRegisters(result, dbg.con.CPU.Registers()); r != "" {
			line = fmt.Sprintf("%s  [%s]", line, r)
		}
	}

	return line
}

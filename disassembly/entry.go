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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/ultra64emu/ultra64/hardware/cpu/execution"
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Unreadable entries are for addresses that could not be peeked. Decoded
// entries have been read from memory but not executed. Executed entries are
// updated with every execution of the instruction.
const (
	EntryLevelUnreadable EntryLevel = iota
	EntryLevelDecoded
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// for decoded entries only the Address, Opcode and Defn fields are
	// valid. the Defn field will be nil if the word is not an instruction
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(address uint64, word uint32) *Entry {
	o := instructions.Opcode(word)
	e := &Entry{
		Level: EntryLevelDecoded,
		Result: execution.Result{
			Address: address,
			Opcode:  o,
			Defn:    instructions.Decode(o),
		},
	}
	e.format()
	return e
}

func newUnreadable(address uint64, err error) *Entry {
	return &Entry{
		Level:    EntryLevelUnreadable,
		Result:   execution.Result{Address: address},
		Address:  fmt.Sprintf("%08x", uint32(address)),
		Bytecode: "........",
		Operator: "??",
		Operand:  err.Error(),
	}
}

func (e *Entry) format() {
	e.Address = fmt.Sprintf("%08x", uint32(e.Result.Address))
	e.Bytecode = fmt.Sprintf("%08x", uint32(e.Result.Opcode))

	s := instructions.Format(e.Result.Opcode, e.Result.Address)
	op, operand, _ := strings.Cut(s, " ")
	e.Operator = op
	e.Operand = strings.TrimSpace(operand)
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s  %s  %s", e.Address, e.Bytecode, e.Operator)
	}
	return fmt.Sprintf("%s  %s  %-8s%s", e.Address, e.Bytecode, e.Operator, e.Operand)
}

// Notes returns information about the most recent execution of the entry.
// Empty string if the entry has not been executed.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		return ""
	}

	var n []string
	if e.Result.BranchTaken {
		n = append(n, fmt.Sprintf("taken -> %08x", uint32(e.Result.Target)))
	} else if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		n = append(n, "not taken")
	}
	if e.Result.InDelaySlot {
		n = append(n, "delay slot")
	}
	return strings.Join(n, "; ")
}

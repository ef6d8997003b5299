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

package execution

import (
	"fmt"

	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address the instruction was fetched from
	Address uint64

	// the raw instruction word. only valid if Defn is not nil
	Opcode instructions.Opcode

	// the decoded instruction. nil if the instruction could not be decoded
	Defn *instructions.Definition

	// the instruction was in the delay slot of the preceding branch
	InDelaySlot bool

	// the instruction was a branch or jump and the branch was taken. the
	// Target field is the address that will be executed after the delay
	// slot
	BranchTaken bool
	Target      uint64

	// the value of the CPU cycle counter when the instruction was executed
	Cycle uint64

	// whether this data has been finalised. the other fields may be
	// incomplete if the instruction caused a fault
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns the result in the same format as the disassembly, with
// additional notes about the flow of execution.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%08x  %08x  ???", uint32(r.Address), uint32(r.Opcode))
	}

	s := fmt.Sprintf("%08x  %08x  %s", uint32(r.Address), uint32(r.Opcode), instructions.FormatDefinition(r.Defn, r.Opcode, r.Address))
	if r.BranchTaken {
		s = fmt.Sprintf("%s [taken]", s)
	}
	if r.InDelaySlot {
		s = fmt.Sprintf("%s [delay slot]", s)
	}
	return s
}

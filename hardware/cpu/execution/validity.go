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
	"github.com/ultra64emu/ultra64/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: finalised execution has no instruction definition")
	}

	if !r.Defn.Matches(r.Opcode) {
		return curated.Errorf("cpu: opcode %08x does not match definition for %s", uint32(r.Opcode), r.Defn.Mnemonic)
	}

	if r.Address&0x03 != 0 {
		return curated.Errorf("cpu: instruction address is misaligned (%08x)", uint32(r.Address))
	}

	if r.BranchTaken && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: %s is not a branch but a branch was taken", r.Defn.Mnemonic)
	}

	if r.InDelaySlot && r.Defn.IsBranch() {
		return curated.Errorf("cpu: %s executed in a delay slot", r.Defn.Mnemonic)
	}

	return nil
}

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

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	// register to register computation
	Modify Category = iota

	// loads from memory
	Read

	// stores to memory
	Write

	// branches and jumps. these instructions have a delay slot
	Flow

	// moves to and from the coprocessors and TLB maintenance
	Coprocessor

	// cache, synchronisation and exception instructions
	System
)

func (e Category) String() string {
	switch e {
	case Modify:
		return "Modify"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Flow:
		return "Flow"
	case Coprocessor:
		return "Coprocessor"
	case System:
		return "System"
	}
	return "unknown effect"
}

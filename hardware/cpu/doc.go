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

// Package cpu emulates the R4300i processor. The processor executes one 32 bit
// instruction word per step, read from the address in the program counter.
// The word is looked up in the instruction table of the instructions package
// and the handler for the instruction's Kind is used to move execution of the
// program forward.
//
// The instance of the CPU type requires an implementation of the bus.CPUBus
// interface and the TLB used by the memory system. The CPUBus interface
// defines the memory operations required by the CPU. See the bus package for
// details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Let's assume mem is an instance of the CPUBus interface loaded with R4300i
// instructions.
//
//	mc, _ := cpu.NewCPU(nil, mem, tlb.NewTLB())
//	mc.LoadPC(0xa4000040)
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			break
//		}
//	}
//
// Branches and jumps have a single delay slot. When a branch is taken the
// target is staged and the program counter advances to the delay slot. After
// the delay slot has executed, the program counter is set to the target. A
// branch that is not taken skips the delay slot entirely.
//
// The CPU does not dispatch exceptions. Conditions that would cause an
// exception on real hardware are returned from ExecuteInstruction() as a
// *faults.Fault.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information. Very
// useful for debuggers.
package cpu

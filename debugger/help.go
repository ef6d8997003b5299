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

var helps = map[string]string{
	cmdHelp:  "Lists commands or displays the help for a single command",
	cmdQuit:  "Exits the debugger",
	cmdReset: "Boots the console again with the current cartridge",

	cmdStep: "Executes one instruction, or the number of instructions given. An empty line is the same as STEP",
	cmdRun:  "Runs the emulation until a breakpoint, a fault, a runaway loop or an interrupt (ctrl-c)",

	cmdRegs:      "Displays the general purpose registers, the PC and the HI/LO pair",
	cmdCOP0:      "Displays the system control coprocessor registers",
	cmdTLB:       "Displays the valid entries of the TLB",
	cmdDisasm:    "Disassembles memory. Defaults to 16 instructions from the PC",
	cmdPeek:      "Displays the bytes at a virtual address without side effects. Defaults to 16 bytes",
	cmdPoke:      "Writes a 32bit word to a virtual address. Read-only memory can be written",
	cmdMemMap:    "Displays the physical memory map",
	cmdCartridge: "Displays the cartridge header",
	cmdMemviz:    "Writes a dot graph of the register file or the TLB to the named file",

	cmdBreak: "Halts a running emulation when the PC reaches the address",
	cmdList:  "Lists the current breakpoints",
	cmdClear: "Clears the breakpoint at the address, or all breakpoints",
	cmdLoop:  "Sets the number of instructions before a small loop is reported as runaway. Zero disables loop detection",

	cmdFaults: "Displays or clears the fault log",
	cmdLog:    "Displays the most recent log entries, all log entries, or clears the log",
	cmdTrace:  "Toggles the printing of every instruction, with register values, while running",
}

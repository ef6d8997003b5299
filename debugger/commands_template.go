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

	"github.com/ultra64emu/ultra64/debugger/terminal/commandline"
)

// debugger keywords.
const (
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
	cmdReset = "RESET"

	cmdStep = "STEP"
	cmdRun  = "RUN"

	cmdRegs      = "REGS"
	cmdCOP0      = "COP0"
	cmdTLB       = "TLB"
	cmdDisasm    = "DISASM"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdMemMap    = "MEMMAP"
	cmdCartridge = "CARTRIDGE"
	cmdMemviz    = "MEMVIZ"

	cmdBreak = "BREAK"
	cmdList  = "LIST"
	cmdClear = "CLEAR"
	cmdLoop  = "LOOP"

	cmdFaults = "FAULTS"
	cmdLog    = "LOG"
	cmdTrace  = "TRACE"
)

var commandTemplate = []string{
	cmdHelp + " [%S]",
	cmdQuit,
	cmdReset,

	cmdStep + " [%N]",
	cmdRun,

	cmdRegs,
	cmdCOP0,
	cmdTLB,
	cmdDisasm + " [%N] [%N]",
	cmdPeek + " (%N) [%N]",
	cmdPoke + " (%N) (%N)",
	cmdMemMap,
	cmdCartridge,
	cmdMemviz + " (REGS|TLB) (%S)",

	cmdBreak + " (%N)",
	cmdList,
	cmdClear + " [%N]",
	cmdLoop + " [%N]",

	cmdFaults + " [CLEAR]",
	cmdLog + " [ALL|CLEAR]",
	cmdTrace + " [ON|OFF]",
}

// debuggerCommands is the parsed command template.
var debuggerCommands *commandline.Commands

func init() {
	var err error

	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(fmt.Sprintf("debugger: error parsing command template: %v", err))
	}
}

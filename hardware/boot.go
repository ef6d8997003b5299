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

package hardware

import (
	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
	"github.com/ultra64emu/ultra64/hardware/memory"
	"github.com/ultra64emu/ultra64/logger"
)

// Boot values. The PIF ROM is not emulated and these are the values that it
// would leave behind.
const (
	// the program counter after the boot sequence. the start of the
	// cartridge boot code copied to SP DMEM
	BootPC = 0xa4000040

	// the number of bytes at the start of the cartridge copied to SP DMEM
	BootSize = 0x1000

	bootIPL      = 0xa4001000
	bootDMEM     = 0xa4000000
	bootCart     = 0xb0000000
	bootStatus   = 0x70400004
	bootPRId     = 0x00000b00
	bootConfig   = 0x0006e463
	bootRandom   = 0x1f
	bootStackTop = 0xffffffffa4001ff0
)

// the IPL3 stub that would be left in SP IMEM by the PIF
var bootIPLWords = []uint32{
	0x3c0dbfc0,
	0x8da807fc,
	0x25ad07c0,
	0x31080080,
	0x5500fffc,
	0x3c0dbfc0,
	0x8da80024,
	0x3c0bb000,
}

// Boot resets the console and performs a high level emulation of the PIF boot
// sequence. The first BootSize bytes of the cartridge are copied to SP DMEM
// and the program counter is set to BootPC.
func (con *Console) Boot() error {
	con.Reset()

	for i, w := range bootIPLWords {
		err := con.Mem.Write32(uint64(bootIPL+i*4), w)
		if err != nil {
			return err
		}
	}

	regs := con.CPU.Registers()
	regs.SetGPR(registers.T3, 0xffffffff00000000|BootPC)
	regs.SetGPR(registers.S4, 0x01)
	regs.SetGPR(registers.S6, 0x3f)
	regs.SetGPR(registers.SP, bootStackTop)

	regs.LoadCOP0(registers.Index, 0)
	regs.LoadCOP0(registers.Random, bootRandom)
	regs.LoadCOP0(registers.Status, bootStatus)
	regs.LoadCOP0(registers.PRId, bootPRId)
	regs.LoadCOP0(registers.Config, bootConfig)

	con.Mem.MI.Registers.Load(memory.MIVersion, memory.MIVersionValue)

	logger.Logf(con.Instance, "boot", "copying %#x bytes of cartridge to SP DMEM", BootSize)
	err := con.Mem.DMA(bootDMEM, bootCart, BootSize)
	if err != nil {
		return err
	}

	con.CPU.LoadPC(BootPC)
	logger.Logf(con.Instance, "boot", "PC set to %08x", uint32(BootPC))

	return nil
}

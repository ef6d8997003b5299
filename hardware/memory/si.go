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

package memory

import (
	"github.com/ultra64emu/ultra64/hardware/memory/memorymap"
)

// Indexes of the SI registers.
const (
	SIDRAMAddr = iota
	SIPIFAddrRd64B
	SIReserved2
	SIReserved3
	SIPIFAddrWr64B
	SIReserved5
	SIStatus
)

// size of every SI transfer
const siTransferSize = 64

// SI is the serial interface. It transfers data between PIF RAM and RDRAM.
type SI struct {
	mem *Memory

	Registers *Registers
}

func newSI(mem *Memory) *SI {
	si := &SI{
		mem: mem,
		Registers: NewRegisters("SI registers",
			"SI_DRAM_ADDR", "SI_PIF_ADDR_RD64B", "SI_RESERVED_2", "SI_RESERVED_3",
			"SI_PIF_ADDR_WR64B", "SI_RESERVED_5", "SI_STATUS"),
	}

	si.Registers.bind(SIPIFAddrRd64B, nil, si.writeRd64B)
	si.Registers.bind(SIPIFAddrWr64B, nil, si.writeWr64B)

	// writing to the status register clears the interrupt. not emulated
	si.Registers.bind(SIStatus, idle, ignore)

	return si
}

// Reset the SI registers.
func (si *SI) Reset() {
	si.Registers.Reset()
}

func (si *SI) dramAddress() uint64 {
	return kseg1(si.Registers.Value(SIDRAMAddr) & 0x00ffffff)
}

// a write to SI_PIF_ADDR_RD64B copies PIF RAM to RDRAM. the value written is
// latched but the transfer always starts at the beginning of PIF RAM
func (si *SI) writeRd64B(v uint32) error {
	si.Registers.Load(SIPIFAddrRd64B, v)
	return si.mem.transfer("si", si.dramAddress(), kseg1(memorymap.OriginPIFRAM), siTransferSize)
}

// a write to SI_PIF_ADDR_WR64B copies RDRAM to PIF RAM
func (si *SI) writeWr64B(v uint32) error {
	si.Registers.Load(SIPIFAddrWr64B, v)
	return si.mem.transfer("si", kseg1(memorymap.OriginPIFRAM), si.dramAddress(), siTransferSize)
}

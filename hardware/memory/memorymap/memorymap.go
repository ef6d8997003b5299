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

package memorymap

// Area represents the different areas of the physical address space.
type Area int

// The different areas of the physical address space. The order of the list
// is the order in which the memory bus searches for the area of an address.
const (
	Undefined Area = iota
	RDRAM
	RDRAMRegisters
	SPDMEM
	SPIMEM
	SPRegisters
	SPPCRegisters
	MIRegisters
	VIRegisters
	AIRegisters
	PIRegisters
	RIRegisters
	SIRegisters
	N64DD
	SRAM
	Cartridge
	PIFRAM
)

func (a Area) String() string {
	switch a {
	case RDRAM:
		return "RDRAM"
	case RDRAMRegisters:
		return "RDRAM registers"
	case SPDMEM:
		return "SP DMEM"
	case SPIMEM:
		return "SP IMEM"
	case SPRegisters:
		return "SP registers"
	case SPPCRegisters:
		return "SP PC registers"
	case MIRegisters:
		return "MI registers"
	case VIRegisters:
		return "VI registers"
	case AIRegisters:
		return "AI registers"
	case PIRegisters:
		return "PI registers"
	case RIRegisters:
		return "RI registers"
	case SIRegisters:
		return "SI registers"
	case N64DD:
		return "N64DD"
	case SRAM:
		return "Cartridge SRAM"
	case Cartridge:
		return "Cartridge ROM"
	case PIFRAM:
		return "PIF RAM"
	}
	return "undefined"
}

// The origin and memory top for each area of physical memory. Memtop is the
// last address in the area.
const (
	OriginRDRAM          = uint32(0x00000000)
	MemtopRDRAM          = uint32(0x007fffff)
	OriginRDRAMRegisters = uint32(0x03f00000)
	MemtopRDRAMRegisters = uint32(0x03ffffff)
	OriginSPDMEM         = uint32(0x04000000)
	MemtopSPDMEM         = uint32(0x04000fff)
	OriginSPIMEM         = uint32(0x04001000)
	MemtopSPIMEM         = uint32(0x04001fff)
	OriginSPRegisters    = uint32(0x04040000)
	MemtopSPRegisters    = uint32(0x0404001f)
	OriginSPPCRegisters  = uint32(0x04080000)
	MemtopSPPCRegisters  = uint32(0x04080007)
	OriginMIRegisters    = uint32(0x04300000)
	MemtopMIRegisters    = uint32(0x0430000f)
	OriginVIRegisters    = uint32(0x04400000)
	MemtopVIRegisters    = uint32(0x04400037)
	OriginAIRegisters    = uint32(0x04500000)
	MemtopAIRegisters    = uint32(0x04500017)
	OriginPIRegisters    = uint32(0x04600000)
	MemtopPIRegisters    = uint32(0x04600033)
	OriginRIRegisters    = uint32(0x04700000)
	MemtopRIRegisters    = uint32(0x0470001f)
	OriginSIRegisters    = uint32(0x04800000)
	MemtopSIRegisters    = uint32(0x0480001b)
	OriginN64DD          = uint32(0x05000000)
	MemtopN64DD          = uint32(0x07ffffff)
	OriginSRAM           = uint32(0x08000000)
	MemtopSRAM           = uint32(0x0fffffff)
	OriginCart           = uint32(0x10000000)
	MemtopCart           = uint32(0x1fbfffff)
	OriginPIFRAM         = uint32(0x1fc007c0)
	MemtopPIFRAM         = uint32(0x1fc007ff)
)

// Bounds returns the origin and memtop of the area. Returns false for the
// Undefined area.
func (a Area) Bounds() (origin uint32, memtop uint32, ok bool) {
	switch a {
	case RDRAM:
		return OriginRDRAM, MemtopRDRAM, true
	case RDRAMRegisters:
		return OriginRDRAMRegisters, MemtopRDRAMRegisters, true
	case SPDMEM:
		return OriginSPDMEM, MemtopSPDMEM, true
	case SPIMEM:
		return OriginSPIMEM, MemtopSPIMEM, true
	case SPRegisters:
		return OriginSPRegisters, MemtopSPRegisters, true
	case SPPCRegisters:
		return OriginSPPCRegisters, MemtopSPPCRegisters, true
	case MIRegisters:
		return OriginMIRegisters, MemtopMIRegisters, true
	case VIRegisters:
		return OriginVIRegisters, MemtopVIRegisters, true
	case AIRegisters:
		return OriginAIRegisters, MemtopAIRegisters, true
	case PIRegisters:
		return OriginPIRegisters, MemtopPIRegisters, true
	case RIRegisters:
		return OriginRIRegisters, MemtopRIRegisters, true
	case SIRegisters:
		return OriginSIRegisters, MemtopSIRegisters, true
	case N64DD:
		return OriginN64DD, MemtopN64DD, true
	case SRAM:
		return OriginSRAM, MemtopSRAM, true
	case Cartridge:
		return OriginCart, MemtopCart, true
	case PIFRAM:
		return OriginPIFRAM, MemtopPIFRAM, true
	}
	return 0, 0, false
}

// MapAddress returns the area the physical address belongs to. Returns
// Undefined if the address is not in any area.
func MapAddress(paddr uint32) Area {
	for a := RDRAM; a <= PIFRAM; a++ {
		origin, memtop, _ := a.Bounds()
		if paddr >= origin && paddr <= memtop {
			return a
		}
	}
	return Undefined
}

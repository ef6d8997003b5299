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

// Indexes of the PI registers.
const (
	PIDRAMAddr = iota
	PICartAddr
	PIRdLen
	PIWrLen
	PIStatus
	PIDom1Latency
	PIDom1PulseWidth
	PIDom1PageSize
	PIDom1Release
	PIDom2Latency
	PIDom2PulseWidth
	PIDom2PageSize
	PIDom2Release
)

// PI is the peripheral interface. It transfers data between the cartridge and
// RDRAM.
type PI struct {
	mem *Memory

	Registers *Registers
}

func newPI(mem *Memory) *PI {
	pi := &PI{
		mem: mem,
		Registers: NewRegisters("PI registers",
			"PI_DRAM_ADDR", "PI_CART_ADDR", "PI_RD_LEN", "PI_WR_LEN", "PI_STATUS",
			"PI_BSD_DOM1_LAT", "PI_BSD_DOM1_PWD", "PI_BSD_DOM1_PGS", "PI_BSD_DOM1_RLS",
			"PI_BSD_DOM2_LAT", "PI_BSD_DOM2_PWD", "PI_BSD_DOM2_PGS", "PI_BSD_DOM2_RLS"),
	}

	pi.Registers.bind(PIRdLen, nil, pi.writeRdLen)
	pi.Registers.bind(PIWrLen, nil, pi.writeWrLen)

	// writing to the status register resets the controller or clears the
	// interrupt. neither is emulated
	pi.Registers.bind(PIStatus, idle, ignore)

	return pi
}

// Reset the PI registers.
func (pi *PI) Reset() {
	pi.Registers.Reset()
}

func (pi *PI) length(v uint32) int {
	return int(v&0x00ffffff) + 1
}

func (pi *PI) dramAddress() uint64 {
	return kseg1(pi.Registers.Value(PIDRAMAddr) & 0x00ffffff)
}

func (pi *PI) cartAddress() uint64 {
	return kseg1(pi.Registers.Value(PICartAddr))
}

// a write to PI_RD_LEN copies from RDRAM to the cartridge. for a ROM
// cartridge this will fault
func (pi *PI) writeRdLen(v uint32) error {
	pi.Registers.Load(PIRdLen, v)
	return pi.mem.transfer("pi", pi.cartAddress(), pi.dramAddress(), pi.length(v))
}

// a write to PI_WR_LEN copies from the cartridge to RDRAM
func (pi *PI) writeWrLen(v uint32) error {
	pi.Registers.Load(PIWrLen, v)
	return pi.mem.transfer("pi", pi.dramAddress(), pi.cartAddress(), pi.length(v))
}

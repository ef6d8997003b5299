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

package memory_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/memory"
	"github.com/ultra64emu/ultra64/test"
)

// register returns the uncached virtual address of the register
func register(origin uint32, idx int) uint64 {
	return 0xa0000000 | uint64(origin) + uint64(idx*4)
}

const (
	spRegisters = 0x04040000
	miRegisters = 0x04300000
	piRegisters = 0x04600000
	riRegisters = 0x04700000
	siRegisters = 0x04800000
)

func readRegister(t *testing.T, mem *memory.Memory, origin uint32, idx int) uint32 {
	t.Helper()
	v, err := mem.Read32(register(origin, idx))
	test.DemandSuccess(t, err)
	return v
}

func writeRegister(t *testing.T, mem *memory.Memory, origin uint32, idx int, v uint32) {
	t.Helper()
	test.DemandSuccess(t, mem.Write32(register(origin, idx), v))
}

func TestRegisterWidth(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	_, err := mem.Read8(register(riRegisters, 0))
	expectFault(t, err, faults.UnsupportedRegister, 0xa4700000)

	err = mem.Write16(register(riRegisters, 1)+2, 0)
	expectFault(t, err, faults.UnsupportedRegister, 0xa4700006)

	_, err = mem.Read64(register(riRegisters, 0))
	expectFault(t, err, faults.UnsupportedRegister, 0xa4700000)

	writeRegister(t, mem, riRegisters, 6, 0x1234)
	test.ExpectEquality(t, readRegister(t, mem, riRegisters, 6), uint32(0x1234))
	test.ExpectEquality(t, mem.RI.Value(6), uint32(0x1234))
}

func TestSPDMA(t *testing.T) {
	mem := memory.NewMemory(nil, nil)
	ram := mem.RDRAM.Data()
	for i := range 16 {
		ram[0x100+i] = byte(0xf0 + i)
	}

	// RDRAM to DMEM. a length of 5 is rounded up to 8
	writeRegister(t, mem, spRegisters, memory.SPMemAddr, 0x0010)
	writeRegister(t, mem, spRegisters, memory.SPDRAMAddr, 0x0100)
	writeRegister(t, mem, spRegisters, memory.SPRdLen, 4)
	for i := range 8 {
		test.ExpectEquality(t, mem.SPDMEM.Data()[0x10+i], byte(0xf0+i))
	}
	test.ExpectEquality(t, mem.SPDMEM.Data()[0x18], uint8(0))

	// IMEM to RDRAM
	copy(mem.SPIMEM.Data()[0x20:], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	writeRegister(t, mem, spRegisters, memory.SPMemAddr, 0x1020)
	writeRegister(t, mem, spRegisters, memory.SPDRAMAddr, 0x0200)
	writeRegister(t, mem, spRegisters, memory.SPWrLen, 7)
	test.ExpectEquality(t, string(ram[0x200:0x208]), string([]byte{1, 2, 3, 4, 5, 6, 7, 8}))

	// register values are latched
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPMemAddr), uint32(0x1020))
	test.ExpectEquality(t, mem.SP.Registers.Value(memory.SPWrLen), uint32(7))

	// DMA engine is never busy
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPDMAFull), uint32(0))
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPDMABusy), uint32(0))
}

func TestSPStatus(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	// halted after reset
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPStatus), uint32(memory.SPStatusHalt))

	// clear halt
	writeRegister(t, mem, spRegisters, memory.SPStatus, 0x0001)
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPStatus), uint32(0))

	// set halt and signal 0 and signal 7
	writeRegister(t, mem, spRegisters, memory.SPStatus, 0x0002|0x0400|0x1000000)
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPStatus), uint32(0x4081))

	// setting and clearing at the same time changes nothing
	writeRegister(t, mem, spRegisters, memory.SPStatus, 0x0003)
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPStatus), uint32(0x4081))

	// clear signal 7
	writeRegister(t, mem, spRegisters, memory.SPStatus, 0x800000)
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPStatus), uint32(0x0081))
}

func TestSemaphore(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	// peeking does not set the semaphore
	d := make([]byte, 4)
	test.DemandSuccess(t, mem.Peek(register(spRegisters, memory.SPSemaphore), d))
	test.DemandSuccess(t, mem.Peek(register(spRegisters, memory.SPSemaphore), d))
	test.ExpectEquality(t, d[3], uint8(0))

	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPSemaphore), uint32(0))
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPSemaphore), uint32(1))

	test.DemandSuccess(t, mem.Peek(register(spRegisters, memory.SPSemaphore), d))
	test.ExpectEquality(t, d[3], uint8(1))

	writeRegister(t, mem, spRegisters, memory.SPSemaphore, 0xffffffff)
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPSemaphore), uint32(0))
}

func TestMI(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	test.ExpectEquality(t, readRegister(t, mem, miRegisters, memory.MIVersion), uint32(memory.MIVersionValue))
	writeRegister(t, mem, miRegisters, memory.MIVersion, 0)
	test.ExpectEquality(t, readRegister(t, mem, miRegisters, memory.MIVersion), uint32(memory.MIVersionValue))

	writeRegister(t, mem, miRegisters, memory.MIMode, 0x80)
	test.ExpectEquality(t, readRegister(t, mem, miRegisters, memory.MIMode), uint32(0x80))

	_, err := mem.Read32(register(miRegisters, memory.MIIntr))
	expectFault(t, err, faults.UnimplementedPeripheral, 0xa4300008)
	err = mem.Write32(register(miRegisters, memory.MIIntrMask), 0)
	expectFault(t, err, faults.UnimplementedPeripheral, 0xa430000c)

	// the debugger can still look at the latched value
	test.ExpectSuccess(t, mem.Peek(register(miRegisters, memory.MIIntr), make([]byte, 4)))
}

func TestPIDMA(t *testing.T) {
	mem := memory.NewMemory(nil, nil)
	mem.AttachCartridge(newCartridge(t))

	// cartridge to RDRAM
	writeRegister(t, mem, piRegisters, memory.PIDRAMAddr, 0x00000400)
	writeRegister(t, mem, piRegisters, memory.PICartAddr, 0x10000040)
	writeRegister(t, mem, piRegisters, memory.PIWrLen, 0x3f)
	ram := mem.RDRAM.Data()
	for i := range 0x40 {
		test.ExpectEquality(t, ram[0x400+i], byte(0x40+i))
	}
	test.ExpectEquality(t, ram[0x440], uint8(0))

	test.ExpectEquality(t, readRegister(t, mem, piRegisters, memory.PIStatus), uint32(0))

	// RDRAM to cartridge faults. the fault is for the cartridge address, not
	// the register that started the transfer
	err := mem.Write32(register(piRegisters, memory.PIRdLen), 0x3f)
	expectFault(t, err, faults.ReadOnly, 0xb0000040)
}

func TestSIDMA(t *testing.T) {
	mem := memory.NewMemory(nil, nil)
	ram := mem.RDRAM.Data()
	for i := range 64 {
		ram[0x300+i] = byte(i + 1)
	}

	// RDRAM to PIF RAM
	writeRegister(t, mem, siRegisters, memory.SIDRAMAddr, 0x300)
	writeRegister(t, mem, siRegisters, memory.SIPIFAddrWr64B, 0x1fc007c0)
	test.ExpectEquality(t, string(mem.PIFRAM.Data()), string(ram[0x300:0x340]))

	// and back again to a different address
	writeRegister(t, mem, siRegisters, memory.SIDRAMAddr, 0x800)
	writeRegister(t, mem, siRegisters, memory.SIPIFAddrRd64B, 0x1fc007c0)
	test.ExpectEquality(t, string(ram[0x800:0x840]), string(ram[0x300:0x340]))

	test.ExpectEquality(t, readRegister(t, mem, siRegisters, memory.SIStatus), uint32(0))
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(nil, nil)
	writeRegister(t, mem, spRegisters, memory.SPStatus, 0x0001)
	writeRegister(t, mem, riRegisters, 0, 0x0e)
	test.DemandSuccess(t, mem.Write32(0x80000000, 0xffffffff))

	mem.Reset()
	test.ExpectEquality(t, readRegister(t, mem, spRegisters, memory.SPStatus), uint32(memory.SPStatusHalt))
	test.ExpectEquality(t, readRegister(t, mem, riRegisters, 0), uint32(0))
	v, err := mem.Read32(0x80000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
}

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

// Indexes of the SP registers.
const (
	SPMemAddr = iota
	SPDRAMAddr
	SPRdLen
	SPWrLen
	SPStatus
	SPDMAFull
	SPDMABusy
	SPSemaphore
)

// Indexes of the SP PC registers.
const (
	SPPC = iota
	SPIBIST
)

// Bits in the SP_STATUS register.
const (
	SPStatusHalt           = 0x0001
	SPStatusBroke          = 0x0002
	SPStatusDMABusy        = 0x0004
	SPStatusDMAFull        = 0x0008
	SPStatusIOFull         = 0x0010
	SPStatusSingleStep     = 0x0020
	SPStatusInterruptBreak = 0x0040
	SPStatusSignal0        = 0x0080
)

// a write to SP_STATUS is a collection of clear and set bits. if both bits
// of a pair are set then the status bit is unchanged
type statusPair struct {
	clear  uint32
	set    uint32
	status uint32
}

var spStatusPairs = func() []statusPair {
	p := []statusPair{
		{clear: 0x0001, set: 0x0002, status: SPStatusHalt},
		{clear: 0x0004, status: SPStatusBroke},
		{clear: 0x0020, set: 0x0040, status: SPStatusSingleStep},
		{clear: 0x0080, set: 0x0100, status: SPStatusInterruptBreak},
	}
	for i := range 8 {
		p = append(p, statusPair{
			clear:  0x0200 << (2 * i),
			set:    0x0400 << (2 * i),
			status: SPStatusSignal0 << i,
		})
	}
	return p
}()

// SP is the signal processor. Only the memory and the DMA engine are
// emulated. The processor itself never runs.
type SP struct {
	mem *Memory

	Registers *Registers
	PC        *Registers
}

func newSP(mem *Memory) *SP {
	sp := &SP{
		mem: mem,
		Registers: NewRegisters("SP registers",
			"SP_MEM_ADDR", "SP_DRAM_ADDR", "SP_RD_LEN", "SP_WR_LEN",
			"SP_STATUS", "SP_DMA_FULL", "SP_DMA_BUSY", "SP_SEMAPHORE"),
		PC: NewRegisters("SP PC registers", "SP_PC", "SP_IBIST"),
	}

	sp.Registers.bind(SPRdLen, nil, sp.writeRdLen)
	sp.Registers.bind(SPWrLen, nil, sp.writeWrLen)
	sp.Registers.bind(SPStatus, nil, sp.writeStatus)
	sp.Registers.bind(SPDMAFull, idle, ignore)
	sp.Registers.bind(SPDMABusy, idle, ignore)
	sp.Registers.bind(SPSemaphore, sp.readSemaphore, sp.writeSemaphore)

	sp.Reset()

	return sp
}

// Reset the SP registers. The processor is halted.
func (sp *SP) Reset() {
	sp.Registers.Reset()
	sp.PC.Reset()
	sp.Registers.Load(SPStatus, SPStatusHalt)
}

// idle is the read callback for registers that report the DMA engine as idle
func idle() (uint32, error) {
	return 0, nil
}

// ignore is the write callback for registers that can not be written to
func ignore(_ uint32) error {
	return nil
}

// length of an SP DMA transfer. rounded up to a multiple of eight
func (sp *SP) length(v uint32) int {
	l := int(v&0x0fff) + 1
	return (l + 7) &^ 7
}

// address in DMEM or IMEM of the transfer. bit 12 selects IMEM
func (sp *SP) spAddress() uint64 {
	return kseg1(memorymap.OriginSPDMEM | sp.Registers.Value(SPMemAddr)&0x1ff8)
}

func (sp *SP) dramAddress() uint64 {
	return kseg1(sp.Registers.Value(SPDRAMAddr) & 0x00fffff8)
}

// a write to SP_RD_LEN copies from RDRAM to SP memory
func (sp *SP) writeRdLen(v uint32) error {
	sp.Registers.Load(SPRdLen, v)
	return sp.mem.transfer("sp", sp.spAddress(), sp.dramAddress(), sp.length(v))
}

// a write to SP_WR_LEN copies from SP memory to RDRAM
func (sp *SP) writeWrLen(v uint32) error {
	sp.Registers.Load(SPWrLen, v)
	return sp.mem.transfer("sp", sp.dramAddress(), sp.spAddress(), sp.length(v))
}

func (sp *SP) writeStatus(v uint32) error {
	status := sp.Registers.Value(SPStatus)
	for _, p := range spStatusPairs {
		clr := v&p.clear == p.clear
		set := p.set != 0 && v&p.set == p.set
		if clr && !set {
			status &^= p.status
		} else if set && !clr {
			status |= p.status
		}
	}
	sp.Registers.Load(SPStatus, status)
	return nil
}

// reading the semaphore returns the current value and then sets it
func (sp *SP) readSemaphore() (uint32, error) {
	v := sp.Registers.Value(SPSemaphore)
	sp.Registers.Load(SPSemaphore, 1)
	return v, nil
}

// any write to the semaphore clears it
func (sp *SP) writeSemaphore(_ uint32) error {
	sp.Registers.Load(SPSemaphore, 0)
	return nil
}

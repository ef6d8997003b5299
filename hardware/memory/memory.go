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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/instance"
	"github.com/ultra64emu/ultra64/hardware/memory/cartridge"
	"github.com/ultra64emu/ultra64/hardware/memory/memorymap"
	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
	"github.com/ultra64emu/ultra64/logger"
)

// Mapping connects an area of physical memory to the Area implementation that
// handles it.
type Mapping struct {
	Origin uint32

	// last address of the mapping. inclusive
	Memtop uint32

	Area Area
	Tag  memorymap.Area
}

func newMapping(tag memorymap.Area, area Area) Mapping {
	origin, memtop, _ := tag.Bounds()
	return Mapping{
		Origin: origin,
		Memtop: memtop,
		Area:   area,
		Tag:    tag,
	}
}

func (m Mapping) String() string {
	return fmt.Sprintf("%08x -> %08x\t%s", m.Origin, m.Memtop, m.Tag)
}

// Memory is the memory bus of the console. It owns every area of the physical
// address space.
type Memory struct {
	instance *instance.Instance
	tlb      *tlb.TLB

	// searched in order. first match wins
	mappings []Mapping

	RDRAM  *RAM
	SPDMEM *RAM
	SPIMEM *RAM
	PIFRAM *RAM

	Cart *cartridge.Cartridge

	SP *SP
	MI *MI
	PI *PI
	SI *SI

	// latched only
	VI *Registers
	AI *Registers
	RI *Registers

	// scratch space for the CPU accessors
	buf [8]byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The instance argument can be nil. A TLB is created if the tlb argument is
// nil.
func NewMemory(instance *instance.Instance, t *tlb.TLB) *Memory {
	if t == nil {
		t = tlb.NewTLB()
	}

	mem := &Memory{
		instance: instance,
		tlb:      t,
		RDRAM:    NewRAM("RDRAM", int(memorymap.MemtopRDRAM-memorymap.OriginRDRAM)+1),
		SPDMEM:   NewRAM("SP DMEM", int(memorymap.MemtopSPDMEM-memorymap.OriginSPDMEM)+1),
		SPIMEM:   NewRAM("SP IMEM", int(memorymap.MemtopSPIMEM-memorymap.OriginSPIMEM)+1),
		PIFRAM:   NewRAM("PIF RAM", int(memorymap.MemtopPIFRAM-memorymap.OriginPIFRAM)+1),
		Cart:     cartridge.NewEjected(),
		MI:       newMI(),
		VI: NewRegisters("VI registers",
			"VI_STATUS", "VI_ORIGIN", "VI_WIDTH", "VI_V_INTR", "VI_V_CURRENT",
			"VI_BURST", "VI_V_SYNC", "VI_H_SYNC", "VI_LEAP", "VI_H_START",
			"VI_V_START", "VI_V_BURST", "VI_X_SCALE", "VI_Y_SCALE"),
		AI: NewRegisters("AI registers",
			"AI_DRAM_ADDR", "AI_LEN", "AI_CONTROL", "AI_STATUS", "AI_DACRATE",
			"AI_BITRATE"),
		RI: NewRegisters("RI registers",
			"RI_MODE", "RI_CONFIG", "RI_CURRENT_LOAD", "RI_SELECT", "RI_REFRESH",
			"RI_LATENCY", "RI_RERROR", "RI_WERROR"),
	}

	mem.SP = newSP(mem)
	mem.PI = newPI(mem)
	mem.SI = newSI(mem)

	mem.mappings = []Mapping{
		newMapping(memorymap.RDRAM, mem.RDRAM),
		newMapping(memorymap.RDRAMRegisters, Stub),
		newMapping(memorymap.SPDMEM, mem.SPDMEM),
		newMapping(memorymap.SPIMEM, mem.SPIMEM),
		newMapping(memorymap.SPRegisters, mem.SP.Registers),
		newMapping(memorymap.SPPCRegisters, mem.SP.PC),
		newMapping(memorymap.MIRegisters, mem.MI.Registers),
		newMapping(memorymap.VIRegisters, mem.VI),
		newMapping(memorymap.AIRegisters, mem.AI),
		newMapping(memorymap.PIRegisters, mem.PI.Registers),
		newMapping(memorymap.RIRegisters, mem.RI),
		newMapping(memorymap.SIRegisters, mem.SI.Registers),
		newMapping(memorymap.N64DD, OpenBus),
		newMapping(memorymap.SRAM, OpenBus),
		newMapping(memorymap.Cartridge, mem.Cart),
		newMapping(memorymap.PIFRAM, mem.PIFRAM),
	}

	return mem
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	for _, m := range mem.mappings {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Mappings returns a copy of the list of mappings in search order.
func (mem *Memory) Mappings() []Mapping {
	m := make([]Mapping, len(mem.mappings))
	copy(m, mem.mappings)
	return m
}

// TLB returns the TLB used to translate mapped segments.
func (mem *Memory) TLB() *tlb.TLB {
	return mem.tlb
}

// Reset the contents of memory and the state of the peripherals. The
// cartridge is not changed.
func (mem *Memory) Reset() {
	mem.RDRAM.Reset()
	mem.SPDMEM.Reset()
	mem.SPIMEM.Reset()
	mem.PIFRAM.Reset()
	mem.SP.Reset()
	mem.MI.Reset()
	mem.PI.Reset()
	mem.SI.Reset()
	mem.VI.Reset()
	mem.AI.Reset()
	mem.RI.Reset()
}

// AttachCartridge replaces the cartridge. A nil argument ejects the current
// cartridge.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	if cart == nil {
		cart = cartridge.NewEjected()
	}
	mem.Cart = cart
	for i := range mem.mappings {
		if mem.mappings[i].Tag == memorymap.Cartridge {
			mem.mappings[i].Area = cart
		}
	}
}

// translate the virtual address to a physical address. if aligned is true then
// the address must be a multiple of the width.
func (mem *Memory) translate(vaddr uint64, width int, aligned bool) (uint32, error) {
	v := uint32(vaddr)

	if aligned && v%uint32(width) != 0 {
		return 0, faults.New(faults.MisalignedAccess, fmt.Sprintf("%d byte access", width), v, width).Relocate(v)
	}

	if p, ok := memorymap.Direct(v); ok {
		return p, nil
	}

	if p, ok := mem.tlb.Translate(v); ok {
		return p, nil
	}

	return 0, faults.New(faults.TLBMiss, fmt.Sprintf("no entry for %s address", memorymap.SegmentOf(v)), v, width).Relocate(v)
}

// lookup the mapping for the physical address. the second return value is
// false if the access is not wholly inside a single mapping.
func (mem *Memory) lookup(paddr uint32, width int) (*Mapping, bool) {
	end := paddr + uint32(width) - 1
	for i := range mem.mappings {
		m := &mem.mappings[i]
		if paddr >= m.Origin && paddr <= m.Memtop {
			return m, end >= paddr && end <= m.Memtop
		}
	}
	return nil, false
}

// Translate returns the physical address and the area of memory for the
// virtual address.
func (mem *Memory) Translate(vaddr uint64) (uint32, memorymap.Area, error) {
	paddr, err := mem.translate(vaddr, 1, false)
	if err != nil {
		return 0, memorymap.Undefined, err
	}
	m, ok := mem.lookup(paddr, 1)
	if !ok {
		return paddr, memorymap.Undefined, nil
	}
	return paddr, m.Tag, nil
}

// access is the route by which every read and write reaches an area. faults
// raised by the area are relocated to the virtual address.
func (mem *Memory) access(vaddr uint64, data []byte, aligned bool, event string, f func(Area, uint32, []byte) error) error {
	paddr, err := mem.translate(vaddr, len(data), aligned)
	if err != nil {
		return err
	}

	m, ok := mem.lookup(paddr, len(data))
	if !ok {
		v := uint32(vaddr)
		return faults.New(faults.UnmappedAddress, fmt.Sprintf("%s of %d bytes", event, len(data)), v, len(data)).Relocate(v)
	}

	err = f(m.Area, paddr-m.Origin, data)
	if err != nil {
		if flt, ok := faults.As(err); ok {
			flt.Relocate(uint32(vaddr))
		}
		return err
	}

	return nil
}

// Read8 implements the bus.CPUBus interface.
func (mem *Memory) Read8(address uint64) (uint8, error) {
	d := mem.buf[:1]
	if err := mem.access(address, d, true, "read", Area.Read); err != nil {
		return 0, err
	}
	return d[0], nil
}

// Read16 implements the bus.CPUBus interface.
func (mem *Memory) Read16(address uint64) (uint16, error) {
	d := mem.buf[:2]
	if err := mem.access(address, d, true, "read", Area.Read); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d), nil
}

// Read32 implements the bus.CPUBus interface.
func (mem *Memory) Read32(address uint64) (uint32, error) {
	d := mem.buf[:4]
	if err := mem.access(address, d, true, "read", Area.Read); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d), nil
}

// Read64 implements the bus.CPUBus interface.
func (mem *Memory) Read64(address uint64) (uint64, error) {
	d := mem.buf[:8]
	if err := mem.access(address, d, true, "read", Area.Read); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(d), nil
}

// Write8 implements the bus.CPUBus interface.
func (mem *Memory) Write8(address uint64, data uint8) error {
	d := mem.buf[:1]
	d[0] = data
	return mem.access(address, d, true, "write", Area.Write)
}

// Write16 implements the bus.CPUBus interface.
func (mem *Memory) Write16(address uint64, data uint16) error {
	d := mem.buf[:2]
	binary.BigEndian.PutUint16(d, data)
	return mem.access(address, d, true, "write", Area.Write)
}

// Write32 implements the bus.CPUBus interface.
func (mem *Memory) Write32(address uint64, data uint32) error {
	d := mem.buf[:4]
	binary.BigEndian.PutUint32(d, data)
	return mem.access(address, d, true, "write", Area.Write)
}

// Write64 implements the bus.CPUBus interface.
func (mem *Memory) Write64(address uint64, data uint64) error {
	d := mem.buf[:8]
	binary.BigEndian.PutUint64(d, data)
	return mem.access(address, d, true, "write", Area.Write)
}

// Peek implements the bus.DebugBus interface. The address does not need to be
// aligned but the data must fit in a single area of memory.
func (mem *Memory) Peek(address uint64, data []byte) error {
	return mem.access(address, data, false, "peek", Area.Peek)
}

// Poke implements the bus.DebugBus interface. The address does not need to be
// aligned but the data must fit in a single area of memory.
func (mem *Memory) Poke(address uint64, data []byte) error {
	return mem.access(address, data, false, "poke", Area.Poke)
}

// DMA implements the bus.DMABus interface. Bytes are copied one at a time, in
// order, through the same translation as CPU accesses. The transfer stops at
// the first fault.
func (mem *Memory) DMA(dst uint64, src uint64, length int) error {
	return mem.transfer("memory", dst, src, length)
}

func (mem *Memory) transfer(tag string, dst uint64, src uint64, length int) error {
	if mem.instance != nil && mem.instance.Prefs.LogDMA.Get().(bool) {
		logger.Logf(mem.instance, tag, "DMA %08x -> %08x (%d bytes)", uint32(src), uint32(dst), length)
	}

	var b [1]byte
	for i := 0; i < length; i++ {
		if err := mem.access(src+uint64(i), b[:], false, "DMA read", Area.Read); err != nil {
			return err
		}
		if err := mem.access(dst+uint64(i), b[:], false, "DMA write", Area.Write); err != nil {
			return err
		}
	}

	return nil
}

// kseg1 returns the uncached, unmapped virtual address for the physical
// address. used by the peripherals when starting DMA transfers.
func kseg1(paddr uint32) uint64 {
	return uint64(memorymap.OriginKSEG1 | paddr&0x1fffffff)
}

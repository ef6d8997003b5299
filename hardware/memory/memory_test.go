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

	"github.com/ultra64emu/ultra64/cartridgeloader"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/memory"
	"github.com/ultra64emu/ultra64/hardware/memory/cartridge"
	"github.com/ultra64emu/ultra64/hardware/memory/memorymap"
	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
	"github.com/ultra64emu/ultra64/test"
)

// expectFault checks that the error is a fault of the category at the address
func expectFault(t *testing.T, err error, category faults.Category, address uint32) {
	t.Helper()
	f, ok := faults.As(err)
	if !ok {
		t.Errorf("expected %s fault but got %v", category, err)
		return
	}
	test.ExpectEquality(t, f.Category, category)
	test.ExpectEquality(t, f.Address, address)
}

func newCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 0x1000)
	copy(data, []byte{0x80, 0x37, 0x12, 0x40})
	for i := cartridge.HeaderSize; i < len(data); i++ {
		data[i] = byte(i)
	}
	cl := cartridgeloader.Loader{Filename: "test.z64"}
	test.DemandSuccess(t, cl.LoadBytes(data))
	cart, err := cartridge.NewCartridge(cl)
	test.DemandSuccess(t, err)
	return cart
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	test.DemandSuccess(t, mem.Write32(0x80000100, 0x01234567))

	// same physical address through the uncached segment
	v, err := mem.Read32(0xa0000100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01234567))

	// big-endian
	b, err := mem.Read8(0x80000100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x01))
	h, err := mem.Read16(0x80000102)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h, uint16(0x4567))

	// sign extended addresses are treated the same as their low 32 bits
	test.DemandSuccess(t, mem.Write64(0xffffffff80000200, 0x0011223344556677))
	d, err := mem.Read64(0x80000200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, uint64(0x0011223344556677))
	v, err = mem.Read32(0x80000204)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x44556677))

	test.DemandSuccess(t, mem.Write8(0x80000203, 0xff))
	test.DemandSuccess(t, mem.Write16(0x80000200, 0xabcd))
	v, err = mem.Read32(0x80000200)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xabcd22ff))

	test.ExpectEquality(t, mem.RDRAM.Data()[0x200], uint8(0xab))
}

func TestMisaligned(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	_, err := mem.Read32(0x80000002)
	expectFault(t, err, faults.MisalignedAccess, 0x80000002)

	err = mem.Write16(0x80000001, 0)
	expectFault(t, err, faults.MisalignedAccess, 0x80000001)

	_, err = mem.Read64(0x80000004)
	expectFault(t, err, faults.MisalignedAccess, 0x80000004)

	// peek can be at any alignment
	test.ExpectSuccess(t, mem.Peek(0x80000003, make([]byte, 4)))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	// between RDRAM and the RDRAM registers
	_, err := mem.Read32(0xa3000000)
	expectFault(t, err, faults.UnmappedAddress, 0xa3000000)

	err = mem.Write8(0x83000000, 0)
	expectFault(t, err, faults.UnmappedAddress, 0x83000000)

	// an access must be wholly inside a single mapping
	err = mem.Peek(0x807ffffe, make([]byte, 4))
	expectFault(t, err, faults.UnmappedAddress, 0x807ffffe)

	_, err = mem.Read32(0xa0800000)
	expectFault(t, err, faults.UnmappedAddress, 0xa0800000)
}

func TestTLB(t *testing.T) {
	tb := tlb.NewTLB()
	mem := memory.NewMemory(nil, tb)
	test.ExpectEquality(t, mem.TLB(), tb)

	_, err := mem.Read32(0x00400000)
	expectFault(t, err, faults.TLBMiss, 0x00400000)
	_, err = mem.Read32(0xc0000000)
	expectFault(t, err, faults.TLBMiss, 0xc0000000)
	_, err = mem.Read32(0xe0000000)
	expectFault(t, err, faults.TLBMiss, 0xe0000000)

	// virtual 0x00400000 -> physical 0x00100000
	tb.SetEntry(0, tlb.Entry{
		EntryHi:  0x00400000,
		EntryLo0: 0x100<<6 | 0x03,
		EntryLo1: 0x101<<6 | 0x03,
	})

	test.DemandSuccess(t, mem.Write32(0x80100010, 0xcafef00d))
	v, err := mem.Read32(0x00400010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xcafef00d))

	p, area, err := mem.Translate(0x00400010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, uint32(0x00100010))
	test.ExpectEquality(t, area, memorymap.RDRAM)
}

func TestCartridge(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	// ejected cartridge is open bus
	v, err := mem.Read32(0xb0000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xffffffff))

	mem.AttachCartridge(newCartridge(t))

	v, err = mem.Read32(0xb0000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x80371240))

	v, err = mem.Read32(0xb0000040)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x40414243))

	// writing to ROM faults and does not change the data
	err = mem.Write32(0xb0000040, 0)
	expectFault(t, err, faults.ReadOnly, 0xb0000040)
	v, err = mem.Read32(0xb0000040)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x40414243))

	// past the end of the image
	v, err = mem.Read32(0xb0001000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xffffffff))

	// the debugger can poke
	test.DemandSuccess(t, mem.Poke(0xb0000040, []byte{0xaa}))
	v, err = mem.Read32(0xb0000040)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xaa414243))

	mem.AttachCartridge(nil)
	test.ExpectEquality(t, mem.Cart.IsEjected(), true)
}

func TestStubs(t *testing.T) {
	mem := memory.NewMemory(nil, nil)

	for _, a := range []uint64{0xa5000000, 0xa8000000} {
		test.DemandSuccess(t, mem.Write32(a, 0))
		v, err := mem.Read32(a)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint32(0xffffffff))
	}

	test.DemandSuccess(t, mem.Write32(0xa3f00000, 0x12345678))
	v, err := mem.Read32(0xa3f00000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
}

func TestDMA(t *testing.T) {
	mem := memory.NewMemory(nil, nil)
	ram := mem.RDRAM.Data()
	for i := range 0x100 {
		ram[i] = byte(i * 3)
	}

	test.DemandSuccess(t, mem.DMA(0xa0001000, 0x80000000, 0x100))
	for i := range 0x100 {
		test.ExpectEquality(t, ram[0x1000+i], byte(i*3))
	}

	// overlapping transfers behave like a sequence of single byte copies
	expected := make([]byte, 0x20)
	copy(expected, ram[:0x20])
	for i := 0; i < 0x1f; i++ {
		expected[i+1] = expected[i]
	}
	test.DemandSuccess(t, mem.DMA(0x80000001, 0x80000000, 0x1f))
	test.ExpectEquality(t, string(ram[:0x20]), string(expected))

	// the first fault stops the transfer
	mem.AttachCartridge(newCartridge(t))
	err := mem.DMA(0xb0000000, 0x80000000, 4)
	expectFault(t, err, faults.ReadOnly, 0xb0000000)

	err = mem.DMA(0x807ffffe, 0xb0000000, 4)
	expectFault(t, err, faults.UnmappedAddress, 0x80800000)
	test.ExpectEquality(t, ram[0x7ffffe], uint8(0x80))
	test.ExpectEquality(t, ram[0x7fffff], uint8(0x37))
}

func TestMappings(t *testing.T) {
	mem := memory.NewMemory(nil, nil)
	m := mem.Mappings()
	test.DemandEquality(t, len(m), int(memorymap.PIFRAM))
	for i := range m {
		test.ExpectEquality(t, m[i].Tag, memorymap.Area(i+1))
		origin, memtop, _ := m[i].Tag.Bounds()
		test.ExpectEquality(t, m[i].Origin, origin)
		test.ExpectEquality(t, m[i].Memtop, memtop)
	}
	test.ExpectEquality(t, m[0].String(), "00000000 -> 007fffff\tRDRAM")
}

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

package memorymap_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/hardware/memory/memorymap"
	"github.com/ultra64emu/ultra64/test"
)

const validMemMap = `00000000 -> 007fffff	RDRAM
03f00000 -> 03ffffff	RDRAM registers
04000000 -> 04000fff	SP DMEM
04001000 -> 04001fff	SP IMEM
04040000 -> 0404001f	SP registers
04080000 -> 04080007	SP PC registers
04300000 -> 0430000f	MI registers
04400000 -> 04400037	VI registers
04500000 -> 04500017	AI registers
04600000 -> 04600033	PI registers
04700000 -> 0470001f	RI registers
04800000 -> 0480001b	SI registers
05000000 -> 07ffffff	N64DD
08000000 -> 0fffffff	Cartridge SRAM
10000000 -> 1fbfffff	Cartridge ROM
1fc007c0 -> 1fc007ff	PIF RAM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestSegments(t *testing.T) {
	test.ExpectEquality(t, memorymap.SegmentOf(0x00001000), memorymap.KUSEG)
	test.ExpectEquality(t, memorymap.SegmentOf(0x7fffffff), memorymap.KUSEG)
	test.ExpectEquality(t, memorymap.SegmentOf(0x80000000), memorymap.KSEG0)
	test.ExpectEquality(t, memorymap.SegmentOf(0xa4000040), memorymap.KSEG1)
	test.ExpectEquality(t, memorymap.SegmentOf(0xc0000000), memorymap.KSSEG)
	test.ExpectEquality(t, memorymap.SegmentOf(0xffffffff), memorymap.KSEG3)

	test.ExpectSuccess(t, memorymap.KUSEG.Mapped())
	test.ExpectFailure(t, memorymap.KSEG0.Mapped())
	test.ExpectFailure(t, memorymap.KSEG1.Mapped())
	test.ExpectSuccess(t, memorymap.KSSEG.Mapped())
	test.ExpectSuccess(t, memorymap.KSEG3.Mapped())

	p, ok := memorymap.Direct(0x80001000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00001000))

	p, ok = memorymap.Direct(0xb0000000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x10000000))

	_, ok = memorymap.Direct(0x00001000)
	test.ExpectFailure(t, ok)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x00000000), memorymap.RDRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x04001000), memorymap.SPIMEM)
	test.ExpectEquality(t, memorymap.MapAddress(0x10000040), memorymap.Cartridge)
	test.ExpectEquality(t, memorymap.MapAddress(0x1fc007fc), memorymap.PIFRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x00800000), memorymap.Undefined)
	test.ExpectEquality(t, memorymap.MapAddress(0x04002000), memorymap.Undefined)
}

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

package tlb_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
	"github.com/ultra64emu/ultra64/test"
)

// entryLo builds an EntryLo value for the page frame number with the valid bit
// set and optionally the global bit
func entryLo(pfn uint64, global bool) uint64 {
	v := pfn<<6 | 0x02
	if global {
		v |= 0x01
	}
	return v
}

func TestTranslate4K(t *testing.T) {
	tb := tlb.NewTLB()

	// no entries
	_, ok := tb.Translate(0x00000000)
	test.ExpectFailure(t, ok)

	// virtual 0x00400000 (even) -> 0x00100000; 0x00401000 (odd) -> 0x00200000
	tb.SetEntry(0, tlb.Entry{
		EntryHi:  0x00400000,
		EntryLo0: entryLo(0x100, true),
		EntryLo1: entryLo(0x200, true),
	})

	p, ok := tb.Translate(0x00400123)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00100123))

	p, ok = tb.Translate(0x00401ffc)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00200ffc))

	// outside of the 8K covered by the entry
	_, ok = tb.Translate(0x00402000)
	test.ExpectFailure(t, ok)
}

func TestTranslateLargePage(t *testing.T) {
	tb := tlb.NewTLB()

	// 16K pages
	e := tlb.Entry{
		PageMask: 0x00006000,
		EntryHi:  0x00008000,
		EntryLo0: entryLo(0x10, true),
		EntryLo1: entryLo(0x20, true),
	}
	test.ExpectEquality(t, e.PageSize(), uint32(0x4000))
	tb.SetEntry(5, e)

	p, ok := tb.Translate(0x00009234)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00011234))

	p, ok = tb.Translate(0x0000c010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00020010))
}

func TestValidBit(t *testing.T) {
	tb := tlb.NewTLB()
	tb.SetEntry(0, tlb.Entry{
		EntryHi:  0x00400000,
		EntryLo0: entryLo(0x100, true),
		EntryLo1: 0x01,
	})

	_, ok := tb.Translate(0x00400000)
	test.ExpectSuccess(t, ok)

	// odd page is not valid
	_, ok = tb.Translate(0x00401000)
	test.ExpectFailure(t, ok)
}

func TestInvalidEntryDoesNotShadow(t *testing.T) {
	tb := tlb.NewTLB()

	// entries 0 to 4 are zero after reset. they match the lowest 8K of
	// address space but neither page is valid
	tb.SetEntry(5, tlb.Entry{
		EntryHi:  0x00000000,
		EntryLo0: entryLo(0x100, false),
		EntryLo1: entryLo(0x101, false),
	})

	p, ok := tb.Translate(0x00000010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00100010))

	p, ok = tb.Translate(0x00001010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, uint32(0x00101010))
}

func TestASID(t *testing.T) {
	tb := tlb.NewTLB()
	tb.SetEntry(0, tlb.Entry{
		EntryHi:  0x00400000 | 0x07,
		EntryLo0: entryLo(0x100, false),
		EntryLo1: entryLo(0x200, false),
	})

	_, ok := tb.Translate(0x00400000)
	test.ExpectFailure(t, ok)

	tb.SetASID(0x07)
	_, ok = tb.Translate(0x00400000)
	test.ExpectSuccess(t, ok)

	idx, ok := tb.Probe(0x00400007)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, idx, 0)

	_, ok = tb.Probe(0x00400008)
	test.ExpectFailure(t, ok)
}

func TestEntries(t *testing.T) {
	tb := tlb.NewTLB()
	e := tlb.Entry{PageMask: 0xffffffff, EntryHi: 0x80000000}
	tb.SetEntry(tlb.NumEntries+1, e)

	// index wraps and unused page mask bits are removed
	test.ExpectEquality(t, tb.Entry(1).PageMask, uint64(0x01ffe000))
	test.ExpectEquality(t, tb.Entry(1).EntryHi, uint64(0x80000000))

	tb.Reset()
	test.ExpectEquality(t, tb.Entry(1), tlb.Entry{})
	test.ExpectEquality(t, tb.String(), "")
}

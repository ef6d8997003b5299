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

package tlb

import (
	"fmt"
	"strings"
)

// NumEntries is the number of entries in the TLB.
const NumEntries = 32

// bits of the PageMask register that are used
const pageMaskBits = 0x01ffe000

// the bits of a virtual address below the VPN2 field
const vpn2Low = 0x1fff

// Entry is a single entry in the TLB. The fields are in the same format as the
// COP0 registers of the same name.
type Entry struct {
	PageMask uint64
	EntryHi  uint64
	EntryLo0 uint64
	EntryLo1 uint64
}

// PageSize returns the size in bytes of each of the two pages mapped by the
// entry.
func (e Entry) PageSize() uint32 {
	return uint32(e.PageMask&pageMaskBits)>>1 + 0x1000
}

// Global returns true if the entry ignores the ASID.
func (e Entry) Global() bool {
	return e.EntryLo0&e.EntryLo1&0x01 == 0x01
}

// ASID returns the address space identifier of the entry.
func (e Entry) ASID() uint8 {
	return uint8(e.EntryHi)
}

// the mask used to compare a virtual address with the VPN2 field
func (e Entry) vpn2Mask() uint32 {
	return ^(uint32(e.PageMask&pageMaskBits) | vpn2Low)
}

func (e Entry) matches(vpn uint32, asid uint8) bool {
	m := e.vpn2Mask()
	if vpn&m != uint32(e.EntryHi)&m {
		return false
	}
	return e.Global() || e.ASID() == asid
}

func (e Entry) String() string {
	return fmt.Sprintf("hi=%08x lo0=%08x lo1=%08x mask=%08x", uint32(e.EntryHi), uint32(e.EntryLo0), uint32(e.EntryLo1), uint32(e.PageMask))
}

// TLB is the translation lookaside buffer.
type TLB struct {
	entries [NumEntries]Entry

	// the current address space identifier. taken from the EntryHi register
	asid uint8
}

// NewTLB is the preferred method of initialisation for the TLB type.
func NewTLB() *TLB {
	return &TLB{}
}

// Reset clears all entries.
func (t *TLB) Reset() {
	*t = TLB{}
}

// Entry returns a copy of the indexed entry. The index is taken modulo the
// number of entries.
func (t *TLB) Entry(idx int) Entry {
	return t.entries[idx%NumEntries]
}

// SetEntry replaces the indexed entry. The index is taken modulo the number of
// entries.
func (t *TLB) SetEntry(idx int, e Entry) {
	e.PageMask &= pageMaskBits
	t.entries[idx%NumEntries] = e
}

// SetASID changes the current address space identifier.
func (t *TLB) SetASID(asid uint8) {
	t.asid = asid
}

// Translate returns the physical address for the virtual address. Returns
// false if there is no valid mapping for the address.
func (t *TLB) Translate(vaddr uint32) (uint32, bool) {
	for _, e := range t.entries {
		if !e.matches(vaddr, t.asid) {
			continue
		}

		size := e.PageSize()

		// the even or odd page
		lo := e.EntryLo0
		if vaddr&size != 0 {
			lo = e.EntryLo1
		}

		// an entry with the valid bit clear does not hide later entries
		if lo&0x02 == 0 {
			continue
		}

		pfn := uint32(lo>>6) & 0x000fffff
		return (pfn<<12)&^(size-1) | vaddr&(size-1), true
	}

	return 0, false
}

// Probe returns the index of the entry that matches the EntryHi value.
// Returns false if no entry matches.
func (t *TLB) Probe(entryHi uint64) (int, bool) {
	for i, e := range t.entries {
		if e.matches(uint32(entryHi), uint8(entryHi)) {
			return i, true
		}
	}
	return 0, false
}

func (t *TLB) String() string {
	s := strings.Builder{}
	for i, e := range t.entries {
		if e == (Entry{}) {
			continue
		}
		s.WriteString(fmt.Sprintf("%02d: %s\n", i, e))
	}
	return s.String()
}

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

// Segment represents the different segments of the virtual address space.
type Segment int

// List of valid Segment values.
const (
	KUSEG Segment = iota
	KSEG0
	KSEG1
	KSSEG
	KSEG3
)

func (s Segment) String() string {
	switch s {
	case KUSEG:
		return "kuseg"
	case KSEG0:
		return "kseg0"
	case KSEG1:
		return "kseg1"
	case KSSEG:
		return "ksseg"
	case KSEG3:
		return "kseg3"
	}
	return "undefined"
}

// The origin of each segment in the virtual address space. Only the lower 32
// bits of an address are used.
const (
	OriginKUSEG = uint32(0x00000000)
	OriginKSEG0 = uint32(0x80000000)
	OriginKSEG1 = uint32(0xa0000000)
	OriginKSSEG = uint32(0xc0000000)
	OriginKSEG3 = uint32(0xe0000000)
)

// SegmentOf returns the segment the virtual address belongs to.
func SegmentOf(vaddr uint32) Segment {
	switch {
	case vaddr < OriginKSEG0:
		return KUSEG
	case vaddr < OriginKSEG1:
		return KSEG0
	case vaddr < OriginKSSEG:
		return KSEG1
	case vaddr < OriginKSEG3:
		return KSSEG
	}
	return KSEG3
}

// Mapped returns true if addresses in the segment are translated by the TLB.
func (s Segment) Mapped() bool {
	return s != KSEG0 && s != KSEG1
}

// Direct translates a virtual address in one of the directly mapped segments
// to a physical address. Returns false if the address is in a segment that is
// translated by the TLB.
func Direct(vaddr uint32) (uint32, bool) {
	switch SegmentOf(vaddr) {
	case KSEG0:
		return vaddr - OriginKSEG0, true
	case KSEG1:
		return vaddr - OriginKSEG1, true
	}
	return 0, false
}

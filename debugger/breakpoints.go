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

package debugger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ultra64emu/ultra64/curated"
)

// breakpoints halt a running emulation when the PC reaches one of the listed
// addresses. only the low 32 bits of an address are significant.
type breakpoints struct {
	addresses []uint32
}

func newBreakpoints() *breakpoints {
	return &breakpoints{}
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addresses {
		s.WriteString(fmt.Sprintf("% 2d: %08x\n", i, a))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// add a breakpoint. it is an error to add the same address twice.
func (bp *breakpoints) add(address uint64) error {
	a := uint32(address)
	idx, found := slices.BinarySearch(bp.addresses, a)
	if found {
		return curated.Errorf("breakpoint already exists (%08x)", a)
	}
	bp.addresses = slices.Insert(bp.addresses, idx, a)
	return nil
}

// drop the breakpoint at address.
func (bp *breakpoints) drop(address uint64) error {
	a := uint32(address)
	idx, found := slices.BinarySearch(bp.addresses, a)
	if !found {
		return curated.Errorf("no breakpoint at %08x", a)
	}
	bp.addresses = slices.Delete(bp.addresses, idx, idx+1)
	return nil
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
}

func (bp breakpoints) len() int {
	return len(bp.addresses)
}

// check returns true if there is a breakpoint at the address.
func (bp breakpoints) check(address uint64) bool {
	_, found := slices.BinarySearch(bp.addresses, uint32(address))
	return found
}

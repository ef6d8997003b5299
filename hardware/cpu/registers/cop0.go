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

package registers

import (
	"fmt"

	"github.com/ultra64emu/ultra64/hardware/faults"
)

// NumCOP0 is the number of COP0 registers.
const NumCOP0 = 32

// Indexes of the COP0 registers.
const (
	Index       = 0
	Random      = 1
	EntryLo0    = 2
	EntryLo1    = 3
	Context     = 4
	PageMask    = 5
	Wired       = 6
	BadVAddr    = 8
	Count       = 9
	EntryHi     = 10
	Compare     = 11
	Status      = 12
	Cause       = 13
	EPC         = 14
	PRId        = 15
	Config      = 16
	LLAddr      = 17
	WatchLo     = 18
	WatchHi     = 19
	XContext    = 20
	ParityError = 26
	CacheError  = 27
	TagLo       = 28
	TagHi       = 29
	ErrorEPC    = 30
)

var cop0Labels = [NumCOP0]string{
	"index", "random", "entrylo0", "entrylo1", "context", "pagemask", "wired", "cop0_7",
	"badvaddr", "count", "entryhi", "compare", "status", "cause", "epc", "prid",
	"config", "lladdr", "watchlo", "watchhi", "xcontext", "cop0_21", "cop0_22", "cop0_23",
	"cop0_24", "cop0_25", "parityerror", "cacheerror", "taglo", "taghi", "errorepc", "cop0_31",
}

// COP0Label returns the symbolic name of the COP0 register.
func COP0Label(i int) string {
	return cop0Labels[i&(NumCOP0-1)]
}

// COP0Index returns the index of the named COP0 register.
func COP0Index(label string) (int, bool) {
	for i, l := range cop0Labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// the COP0 registers that can be written by a program
var cop0Writable = [NumCOP0]bool{
	Index:    true,
	EntryLo0: true,
	EntryLo1: true,
	Context:  true,
	PageMask: true,
	Wired:    true,
	Count:    true,
	EntryHi:  true,
	Compare:  true,
	Status:   true,
	Cause:    true,
	EPC:      true,
	TagLo:    true,
	TagHi:    true,
	ErrorEPC: true,
}

// COP0Writable returns true if the register can be written with WriteCOP0().
func COP0Writable(i int) bool {
	return i >= 0 && i < NumCOP0 && cop0Writable[i]
}

// COP0 returns the value of the COP0 register.
func (f *File) COP0(i int) uint64 {
	return f.cop0[i&(NumCOP0-1)]
}

// LoadCOP0 sets the value of a COP0 register without checking whether the
// register is writable.
func (f *File) LoadCOP0(i int, v uint64) {
	f.cop0[i&(NumCOP0-1)] = v
}

// WriteCOP0 sets the value of a COP0 register on behalf of a program. Returns
// an UnsupportedRegister fault if the register is not writable.
func (f *File) WriteCOP0(i int, v uint64) error {
	if !COP0Writable(i) {
		return faults.New(faults.UnsupportedRegister, fmt.Sprintf("write to COP0 %s", COP0Label(i)), uint32(i), 0)
	}

	switch i {
	case Wired:
		// writing Wired resets Random to the top of the TLB
		f.cop0[Random] = 31
		v &= 0x3f
	case Cause:
		// only the software interrupt bits are writable
		v = f.cop0[Cause]&^0x300 | v&0x300
	case Count:
		v &= 0xffffffff
	}

	f.cop0[i] = v
	return nil
}

// Tick updates the COP0 registers that change on every cycle. The entropy
// value is mixed into the Random register. Count increments on odd cycles.
func (f *File) Tick(cycle uint64, entropy int) {
	f.cop0[Random] = (f.cop0[Wired] + uint64(entropy)) & 0x3f
	if cycle&1 == 1 {
		f.cop0[Count] = (f.cop0[Count] + 1) & 0xffffffff
	}
}

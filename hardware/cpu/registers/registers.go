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
	"strings"
)

// FCR0Revision is the value of the read-only implementation/revision register
// of the floating point coprocessor.
const FCR0Revision = 0x00000a00

// File is the complete register file of the CPU.
type File struct {
	gpr [NumGPR]uint64

	// program counter
	PC uint64

	// multiply/divide result registers
	hi uint64
	lo uint64

	cop0 [NumCOP0]uint64

	// floating point control/status register. FCR0 is a constant
	FCR31 uint32

	// load linked bit. set by LL and checked by SC
	LLBit bool
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	f := &File{}
	f.Reset()
	return f
}

// Reset all registers to zero.
func (f *File) Reset() {
	*f = File{}
}

// GPR returns the value of the general purpose register. GPR 0 is always zero.
func (f *File) GPR(i int) uint64 {
	if i == Zero {
		return 0
	}
	return f.gpr[i&(NumGPR-1)]
}

// SetGPR sets the value of the general purpose register. Writes to GPR 0 have
// no effect.
func (f *File) SetGPR(i int, v uint64) {
	if i == Zero {
		return
	}
	f.gpr[i&(NumGPR-1)] = v
}

// PinZero forces GPR 0 to zero.
func (f *File) PinZero() {
	f.gpr[Zero] = 0
}

// HI returns the HI register.
func (f *File) HI() uint64 {
	return f.hi
}

// LO returns the LO register.
func (f *File) LO() uint64 {
	return f.lo
}

// SetHI sets the HI register.
func (f *File) SetHI(v uint64) {
	f.hi = v
}

// SetLO sets the LO register.
func (f *File) SetLO(v uint64) {
	f.lo = v
}

// Hi32 returns the low word of HI.
func (f *File) Hi32() uint32 {
	return uint32(f.hi)
}

// Lo32 returns the low word of LO.
func (f *File) Lo32() uint32 {
	return uint32(f.lo)
}

// HiLo returns the HI/LO pair as a single 64 bit value.
func (f *File) HiLo() uint64 {
	return uint64(f.Hi32())<<32 | uint64(f.Lo32())
}

// SetHiLo splits the 64 bit value into the HI/LO pair. Each half is sign
// extended.
func (f *File) SetHiLo(v uint64) {
	f.hi = uint64(int64(int32(v >> 32)))
	f.lo = uint64(int64(int32(v)))
}

// FCR returns the value of the floating point control register. Only FCR0
// and FCR31 exist.
func (f *File) FCR(i int) (uint32, bool) {
	switch i {
	case 0:
		return FCR0Revision, true
	case 31:
		return f.FCR31, true
	}
	return 0, false
}

func (f *File) String() string {
	s := strings.Builder{}
	for i := 0; i < NumGPR; i++ {
		s.WriteString(fmt.Sprintf("%-2s=%016x", GPRLabel(i), f.GPR(i)))
		if i%4 == 3 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	s.WriteString(fmt.Sprintf("pc=%016x  hi=%016x  lo=%016x", f.PC, f.hi, f.lo))
	return s.String()
}

// COP0String returns all COP0 registers as a string.
func (f *File) COP0String() string {
	s := strings.Builder{}
	for i := 0; i < NumCOP0; i++ {
		s.WriteString(fmt.Sprintf("%-11s=%016x", COP0Label(i), f.cop0[i]))
		if i%3 == 2 || i == NumCOP0-1 {
			s.WriteString("\n")
		} else {
			s.WriteString("  ")
		}
	}
	s.WriteString(fmt.Sprintf("fcr0=%08x  fcr31=%08x  llbit=%v", FCR0Revision, f.FCR31, f.LLBit))
	return s.String()
}

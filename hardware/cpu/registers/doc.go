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

// Package registers implements the register file of the R4300i CPU.
//
// The File type holds the 32 general purpose registers, the program counter,
// the HI/LO pair, the 32 registers of the system control coprocessor (COP0)
// and the two floating point control registers.
//
// GPR 0 always reads as zero. Writes to it are accepted and discarded. The
// CPU also pins the register to zero at the start of every cycle with
// PinZero().
//
// COP0 registers have two write paths. WriteCOP0() is used by the MTC0 and
// DMTC0 instructions and only accepts writes to registers that are known to
// be emulated. A write to any other register returns an UnsupportedRegister
// fault. LoadCOP0() writes any register unconditionally and is used by the
// boot sequence and by the hardware side effects of the CPU itself.
//
// HI and LO are held as two 64 bit registers. The HiLo() and SetHiLo()
// functions present the pair as a single 64 bit value, with the low word of
// HI in the upper half and the low word of LO in the lower half:
//
//	HiLo() == uint64(Hi32()) << 32 | uint64(Lo32())
//
// SetHiLo() sign extends each half when storing it into HI and LO, which is
// the result of a 32 bit MULT.
package registers

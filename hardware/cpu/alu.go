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

package cpu

import (
	"math/bits"

	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/faults"
)

// sign extend a 32 bit result to 64 bits
func sext32(v uint32) uint64 {
	return uint64(int64(int32(v)))
}

// the fault raised by the trapping forms of addition and subtraction
func (mc *CPU) overflow() error {
	return faults.New(faults.UnsupportedOperation, "integer overflow exception", uint32(mc.regs.PC), 0)
}

func add32(mc *CPU, a uint64, b uint64) (uint64, error) {
	x := int32(a)
	y := int32(b)
	s := x + y
	if (x >= 0) == (y >= 0) && (s >= 0) != (x >= 0) {
		return 0, mc.overflow()
	}
	return uint64(int64(s)), nil
}

func add64(mc *CPU, a uint64, b uint64) (uint64, error) {
	x := int64(a)
	y := int64(b)
	s := x + y
	if (x >= 0) == (y >= 0) && (s >= 0) != (x >= 0) {
		return 0, mc.overflow()
	}
	return uint64(s), nil
}

func sub32(mc *CPU, a uint64, b uint64) (uint64, error) {
	x := int32(a)
	y := int32(b)
	s := x - y
	if (x >= 0) != (y >= 0) && (s >= 0) != (x >= 0) {
		return 0, mc.overflow()
	}
	return uint64(int64(s)), nil
}

func sub64(mc *CPU, a uint64, b uint64) (uint64, error) {
	x := int64(a)
	y := int64(b)
	s := x - y
	if (x >= 0) != (y >= 0) && (s >= 0) != (x >= 0) {
		return 0, mc.overflow()
	}
	return uint64(s), nil
}

func add(mc *CPU, o instructions.Opcode) error {
	v, err := add32(mc, mc.regs.GPR(o.RS()), mc.regs.GPR(o.RT()))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RD(), v)
	return nil
}

func addu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), sext32(uint32(mc.regs.GPR(o.RS())+mc.regs.GPR(o.RT()))))
	return nil
}

func sub(mc *CPU, o instructions.Opcode) error {
	v, err := sub32(mc, mc.regs.GPR(o.RS()), mc.regs.GPR(o.RT()))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RD(), v)
	return nil
}

func subu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), sext32(uint32(mc.regs.GPR(o.RS())-mc.regs.GPR(o.RT()))))
	return nil
}

func dadd(mc *CPU, o instructions.Opcode) error {
	v, err := add64(mc, mc.regs.GPR(o.RS()), mc.regs.GPR(o.RT()))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RD(), v)
	return nil
}

func daddu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RS())+mc.regs.GPR(o.RT()))
	return nil
}

func dsub(mc *CPU, o instructions.Opcode) error {
	v, err := sub64(mc, mc.regs.GPR(o.RS()), mc.regs.GPR(o.RT()))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RD(), v)
	return nil
}

func dsubu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RS())-mc.regs.GPR(o.RT()))
	return nil
}

func and(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RS())&mc.regs.GPR(o.RT()))
	return nil
}

func or(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RS())|mc.regs.GPR(o.RT()))
	return nil
}

func xor(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RS())^mc.regs.GPR(o.RT()))
	return nil
}

func nor(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), ^(mc.regs.GPR(o.RS()) | mc.regs.GPR(o.RT())))
	return nil
}

func boolToGPR(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func slt(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), boolToGPR(int64(mc.regs.GPR(o.RS())) < int64(mc.regs.GPR(o.RT()))))
	return nil
}

func sltu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), boolToGPR(mc.regs.GPR(o.RS()) < mc.regs.GPR(o.RT())))
	return nil
}

func addi(mc *CPU, o instructions.Opcode) error {
	v, err := add32(mc, mc.regs.GPR(o.RS()), uint64(o.SignedImm()))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), v)
	return nil
}

func addiu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), sext32(uint32(mc.regs.GPR(o.RS())+uint64(o.SignedImm()))))
	return nil
}

func daddi(mc *CPU, o instructions.Opcode) error {
	v, err := add64(mc, mc.regs.GPR(o.RS()), uint64(o.SignedImm()))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), v)
	return nil
}

func daddiu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), mc.regs.GPR(o.RS())+uint64(o.SignedImm()))
	return nil
}

func slti(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), boolToGPR(int64(mc.regs.GPR(o.RS())) < o.SignedImm()))
	return nil
}

func sltiu(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), boolToGPR(mc.regs.GPR(o.RS()) < uint64(o.SignedImm())))
	return nil
}

func andi(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), mc.regs.GPR(o.RS())&uint64(o.Imm()))
	return nil
}

func ori(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), mc.regs.GPR(o.RS())|uint64(o.Imm()))
	return nil
}

func xori(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), mc.regs.GPR(o.RS())^uint64(o.Imm()))
	return nil
}

func lui(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RT(), sext32(uint32(o.Imm())<<16))
	return nil
}

// shifts

func sll(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), sext32(uint32(mc.regs.GPR(o.RT()))<<o.SA()))
	return nil
}

func srl(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), sext32(uint32(mc.regs.GPR(o.RT()))>>o.SA()))
	return nil
}

func sra(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), uint64(int64(int32(mc.regs.GPR(o.RT()))>>o.SA())))
	return nil
}

func sllv(mc *CPU, o instructions.Opcode) error {
	sa := mc.regs.GPR(o.RS()) & 0x1f
	mc.regs.SetGPR(o.RD(), sext32(uint32(mc.regs.GPR(o.RT()))<<sa))
	return nil
}

func srlv(mc *CPU, o instructions.Opcode) error {
	sa := mc.regs.GPR(o.RS()) & 0x1f
	mc.regs.SetGPR(o.RD(), sext32(uint32(mc.regs.GPR(o.RT()))>>sa))
	return nil
}

func srav(mc *CPU, o instructions.Opcode) error {
	sa := mc.regs.GPR(o.RS()) & 0x1f
	mc.regs.SetGPR(o.RD(), uint64(int64(int32(mc.regs.GPR(o.RT()))>>sa)))
	return nil
}

func dsll(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RT())<<o.SA())
	return nil
}

func dsrl(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RT())>>o.SA())
	return nil
}

func dsra(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), uint64(int64(mc.regs.GPR(o.RT()))>>o.SA()))
	return nil
}

func dsll32(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RT())<<(o.SA()+32))
	return nil
}

func dsrl32(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RT())>>(o.SA()+32))
	return nil
}

func dsra32(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), uint64(int64(mc.regs.GPR(o.RT()))>>(o.SA()+32)))
	return nil
}

func dsllv(mc *CPU, o instructions.Opcode) error {
	sa := mc.regs.GPR(o.RS()) & 0x3f
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RT())<<sa)
	return nil
}

func dsrlv(mc *CPU, o instructions.Opcode) error {
	sa := mc.regs.GPR(o.RS()) & 0x3f
	mc.regs.SetGPR(o.RD(), mc.regs.GPR(o.RT())>>sa)
	return nil
}

func dsrav(mc *CPU, o instructions.Opcode) error {
	sa := mc.regs.GPR(o.RS()) & 0x3f
	mc.regs.SetGPR(o.RD(), uint64(int64(mc.regs.GPR(o.RT()))>>sa))
	return nil
}

// multiply and divide

func mfhi(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.HI())
	return nil
}

func mthi(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetHI(mc.regs.GPR(o.RS()))
	return nil
}

func mflo(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetGPR(o.RD(), mc.regs.LO())
	return nil
}

func mtlo(mc *CPU, o instructions.Opcode) error {
	mc.regs.SetLO(mc.regs.GPR(o.RS()))
	return nil
}

func mult(mc *CPU, o instructions.Opcode) error {
	p := int64(int32(mc.regs.GPR(o.RS()))) * int64(int32(mc.regs.GPR(o.RT())))
	mc.regs.SetHiLo(uint64(p))
	return nil
}

func multu(mc *CPU, o instructions.Opcode) error {
	p := uint64(uint32(mc.regs.GPR(o.RS()))) * uint64(uint32(mc.regs.GPR(o.RT())))
	mc.regs.SetHiLo(p)
	return nil
}

func div(mc *CPU, o instructions.Opcode) error {
	n := int32(mc.regs.GPR(o.RS()))
	d := int32(mc.regs.GPR(o.RT()))

	// division by zero does not trap. the result is the same as the hardware
	if d == 0 {
		if n < 0 {
			mc.regs.SetLO(1)
		} else {
			mc.regs.SetLO(^uint64(0))
		}
		mc.regs.SetHI(uint64(int64(n)))
		return nil
	}

	mc.regs.SetLO(uint64(int64(n / d)))
	mc.regs.SetHI(uint64(int64(n % d)))
	return nil
}

func divu(mc *CPU, o instructions.Opcode) error {
	n := uint32(mc.regs.GPR(o.RS()))
	d := uint32(mc.regs.GPR(o.RT()))

	if d == 0 {
		mc.regs.SetLO(^uint64(0))
		mc.regs.SetHI(sext32(n))
		return nil
	}

	mc.regs.SetLO(sext32(n / d))
	mc.regs.SetHI(sext32(n % d))
	return nil
}

func dmult(mc *CPU, o instructions.Opcode) error {
	a := mc.regs.GPR(o.RS())
	b := mc.regs.GPR(o.RT())

	// signed 128 bit product from the unsigned product
	hi, lo := bits.Mul64(a, b)
	if int64(a) < 0 {
		hi -= b
	}
	if int64(b) < 0 {
		hi -= a
	}

	mc.regs.SetHI(hi)
	mc.regs.SetLO(lo)
	return nil
}

func dmultu(mc *CPU, o instructions.Opcode) error {
	hi, lo := bits.Mul64(mc.regs.GPR(o.RS()), mc.regs.GPR(o.RT()))
	mc.regs.SetHI(hi)
	mc.regs.SetLO(lo)
	return nil
}

func ddiv(mc *CPU, o instructions.Opcode) error {
	n := int64(mc.regs.GPR(o.RS()))
	d := int64(mc.regs.GPR(o.RT()))

	if d == 0 {
		if n < 0 {
			mc.regs.SetLO(1)
		} else {
			mc.regs.SetLO(^uint64(0))
		}
		mc.regs.SetHI(uint64(n))
		return nil
	}

	mc.regs.SetLO(uint64(n / d))
	mc.regs.SetHI(uint64(n % d))
	return nil
}

func ddivu(mc *CPU, o instructions.Opcode) error {
	n := mc.regs.GPR(o.RS())
	d := mc.regs.GPR(o.RT())

	if d == 0 {
		mc.regs.SetLO(^uint64(0))
		mc.regs.SetHI(n)
		return nil
	}

	mc.regs.SetLO(n / d)
	mc.regs.SetHI(n % d)
	return nil
}

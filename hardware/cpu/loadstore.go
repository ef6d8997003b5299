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
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
)

// the effective address of a load or store
func (mc *CPU) address(o instructions.Opcode) uint64 {
	return mc.regs.GPR(o.RS()) + uint64(o.SignedImm())
}

func lb(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read8(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), uint64(int64(int8(v))))
	return nil
}

func lbu(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read8(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), uint64(v))
	return nil
}

func lh(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read16(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), uint64(int64(int16(v))))
	return nil
}

func lhu(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read16(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), uint64(v))
	return nil
}

func lw(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read32(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), sext32(v))
	return nil
}

func lwu(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read32(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), uint64(v))
	return nil
}

func ld(mc *CPU, o instructions.Opcode) error {
	v, err := mc.mem.Read64(mc.address(o))
	if err != nil {
		return err
	}
	mc.regs.SetGPR(o.RT(), v)
	return nil
}

func ll(mc *CPU, o instructions.Opcode) error {
	err := lw(mc, o)
	if err != nil {
		return err
	}
	mc.regs.LLBit = true
	return nil
}

// lwl loads the bytes from the address to the end of the aligned word into
// the most significant bytes of the register.
func lwl(mc *CPU, o instructions.Opcode) error {
	addr := mc.address(o)
	v, err := mc.mem.Read32(addr &^ 0x03)
	if err != nil {
		return err
	}
	shift := uint32(addr&0x03) * 8
	old := uint32(mc.regs.GPR(o.RT()))
	mc.regs.SetGPR(o.RT(), sext32(v<<shift|old&(1<<shift-1)))
	return nil
}

// lwr loads the bytes from the start of the aligned word to the address into
// the least significant bytes of the register. the result is only sign
// extended when the whole word is loaded. otherwise the upper 32 bits of the
// register are unchanged.
func lwr(mc *CPU, o instructions.Opcode) error {
	addr := mc.address(o)
	v, err := mc.mem.Read32(addr &^ 0x03)
	if err != nil {
		return err
	}
	shift := (3 - uint32(addr&0x03)) * 8
	if shift == 0 {
		mc.regs.SetGPR(o.RT(), sext32(v))
		return nil
	}
	old := mc.regs.GPR(o.RT())
	lo := v>>shift | uint32(old)&^(0xffffffff>>shift)
	mc.regs.SetGPR(o.RT(), old&0xffffffff00000000|uint64(lo))
	return nil
}

func sb(mc *CPU, o instructions.Opcode) error {
	return mc.mem.Write8(mc.address(o), uint8(mc.regs.GPR(o.RT())))
}

func sh(mc *CPU, o instructions.Opcode) error {
	return mc.mem.Write16(mc.address(o), uint16(mc.regs.GPR(o.RT())))
}

func sw(mc *CPU, o instructions.Opcode) error {
	return mc.mem.Write32(mc.address(o), uint32(mc.regs.GPR(o.RT())))
}

func sd(mc *CPU, o instructions.Opcode) error {
	return mc.mem.Write64(mc.address(o), mc.regs.GPR(o.RT()))
}

// sc stores the word only if the LL bit is still set. the register is set to
// one on success and zero on failure.
func sc(mc *CPU, o instructions.Opcode) error {
	if !mc.regs.LLBit {
		mc.regs.SetGPR(o.RT(), 0)
		return nil
	}

	err := sw(mc, o)
	if err != nil {
		return err
	}
	mc.regs.LLBit = false
	mc.regs.SetGPR(o.RT(), 1)
	return nil
}

// swl stores the most significant bytes of the register from the address to
// the end of the aligned word.
func swl(mc *CPU, o instructions.Opcode) error {
	addr := mc.address(o)
	v, err := mc.mem.Read32(addr &^ 0x03)
	if err != nil {
		return err
	}
	shift := uint32(addr&0x03) * 8
	r := uint32(mc.regs.GPR(o.RT()))
	return mc.mem.Write32(addr&^0x03, v&^(0xffffffff>>shift)|r>>shift)
}

// swr stores the least significant bytes of the register from the start of
// the aligned word to the address.
func swr(mc *CPU, o instructions.Opcode) error {
	addr := mc.address(o)
	v, err := mc.mem.Read32(addr &^ 0x03)
	if err != nil {
		return err
	}
	shift := (3 - uint32(addr&0x03)) * 8
	r := uint32(mc.regs.GPR(o.RT()))
	return mc.mem.Write32(addr&^0x03, v&(1<<shift-1)|r<<shift)
}

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

package cpu_test

import (
	"encoding/binary"
	"testing"

	"github.com/ultra64emu/ultra64/hardware/cpu"
	"github.com/ultra64emu/ultra64/hardware/cpu/execution"
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
)

type mockMem struct {
	internal []uint8

	// addresses at or above readOnly cannot be written
	readOnly uint64
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		readOnly: 0x8000,
	}
}

// putInstructions writes the instruction words starting at the origin and
// returns the address after the last instruction.
func (mem *mockMem) putInstructions(origin uint64, words ...uint32) uint64 {
	for _, w := range words {
		binary.BigEndian.PutUint32(mem.internal[origin:], w)
		origin += 4
	}
	return origin
}

func (mem *mockMem) access(address uint64, width int, write bool) (int, error) {
	if address%uint64(width) != 0 {
		return 0, faults.New(faults.MisalignedAccess, "mock memory", uint32(address), width)
	}
	if address+uint64(width) > uint64(len(mem.internal)) {
		return 0, faults.New(faults.UnmappedAddress, "mock memory", uint32(address), width)
	}
	if write && address >= mem.readOnly {
		return 0, faults.New(faults.ReadOnly, "mock memory", uint32(address), width)
	}
	return int(address), nil
}

func (mem *mockMem) Read8(address uint64) (uint8, error) {
	i, err := mem.access(address, 1, false)
	if err != nil {
		return 0, err
	}
	return mem.internal[i], nil
}

func (mem *mockMem) Read16(address uint64) (uint16, error) {
	i, err := mem.access(address, 2, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(mem.internal[i:]), nil
}

func (mem *mockMem) Read32(address uint64) (uint32, error) {
	i, err := mem.access(address, 4, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(mem.internal[i:]), nil
}

func (mem *mockMem) Read64(address uint64) (uint64, error) {
	i, err := mem.access(address, 8, false)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(mem.internal[i:]), nil
}

func (mem *mockMem) Write8(address uint64, data uint8) error {
	i, err := mem.access(address, 1, true)
	if err != nil {
		return err
	}
	mem.internal[i] = data
	return nil
}

func (mem *mockMem) Write16(address uint64, data uint16) error {
	i, err := mem.access(address, 2, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(mem.internal[i:], data)
	return nil
}

func (mem *mockMem) Write32(address uint64, data uint32) error {
	i, err := mem.access(address, 4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(mem.internal[i:], data)
	return nil
}

func (mem *mockMem) Write64(address uint64, data uint64) error {
	i, err := mem.access(address, 8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(mem.internal[i:], data)
	return nil
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem, *tlb.TLB) {
	t.Helper()
	mem := newMockMem()
	tb := tlb.NewTLB()
	mc, err := cpu.NewCPU(nil, mem, tb)
	if err != nil {
		t.Fatal(err)
	}
	return mc, mem, tb
}

// step executes one instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// a minimal assembler for the test programs

func simm(v int16) uint16 {
	return uint16(v)
}

func special(rs, rt, rd int, sa uint32, funct uint32) uint32 {
	return uint32(instructions.EncodeR(0x00, rs, rt, rd, sa, funct))
}

func immediate(op uint32, rs, rt int, imm uint16) uint32 {
	return uint32(instructions.EncodeI(op, rs, rt, imm))
}

func regimm(rs int, rt int, imm uint16) uint32 {
	return uint32(instructions.EncodeI(0x01, rs, rt, imm))
}

func jump(op uint32, target uint32) uint32 {
	return uint32(instructions.EncodeJ(op, target))
}

func mtc0(rt, rd int) uint32 {
	return uint32(instructions.EncodeR(0x10, 0x04, rt, rd, 0, 0))
}

func mfc0(rt, rd int) uint32 {
	return uint32(instructions.EncodeR(0x10, 0x00, rt, rd, 0, 0))
}

const (
	nop   = 0x00000000
	tlbr  = 0x42000001
	tlbwi = 0x42000002
	tlbp  = 0x42000008
	eret  = 0x42000018
)

// primary opcodes used by the tests
const (
	opJ     = 0x02
	opJAL   = 0x03
	opBEQ   = 0x04
	opBNE   = 0x05
	opBLEZ  = 0x06
	opBGTZ  = 0x07
	opADDI  = 0x08
	opADDIU = 0x09
	opSLTI  = 0x0a
	opORI   = 0x0d
	opLUI   = 0x0f
	opBEQL  = 0x14
	opDADDI = 0x18
	opLB    = 0x20
	opLH    = 0x21
	opLWL   = 0x22
	opLW    = 0x23
	opLBU   = 0x24
	opLWR   = 0x26
	opSB    = 0x28
	opSH    = 0x29
	opSWL   = 0x2a
	opSW    = 0x2b
	opSWR   = 0x2e
	opLL    = 0x30
	opLD    = 0x37
	opSC    = 0x38
	opSD    = 0x3f
)

// function codes used by the tests
const (
	fnSLL     = 0x00
	fnSRL     = 0x02
	fnSRA     = 0x03
	fnJR      = 0x08
	fnJALR    = 0x09
	fnSYSCALL = 0x0c
	fnMFHI    = 0x10
	fnMTHI    = 0x11
	fnMFLO    = 0x12
	fnMULT    = 0x18
	fnMULTU   = 0x19
	fnDIV     = 0x1a
	fnDIVU    = 0x1b
	fnDMULT   = 0x1c
	fnDDIV    = 0x1e
	fnADD     = 0x20
	fnADDU    = 0x21
	fnSUB     = 0x22
	fnSUBU    = 0x23
	fnAND     = 0x24
	fnOR      = 0x25
	fnXOR     = 0x26
	fnNOR     = 0x27
	fnSLT     = 0x2a
	fnSLTU    = 0x2b
	fnDADD    = 0x2c
	fnDSLL32  = 0x3c
	fnDSRA32  = 0x3f
)

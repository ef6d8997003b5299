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
	"fmt"

	"github.com/ultra64emu/ultra64/curated"
	"github.com/ultra64emu/ultra64/hardware/cpu/execution"
	"github.com/ultra64emu/ultra64/hardware/cpu/instructions"
	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/instance"
	"github.com/ultra64emu/ultra64/hardware/memory/bus"
	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
	"github.com/ultra64emu/ultra64/logger"
)

// handler implements the execution of a single instruction Kind.
type handler func(mc *CPU, o instructions.Opcode) error

// CPU implements the R4300i found in the N64. Register logic is implemented by
// the File type in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	regs *registers.File
	mem  bus.CPUBus
	tlb  *tlb.TLB

	// handlers indexed by instruction Kind
	handlers [instructions.NumKinds]handler

	// the next instruction is in the delay slot of a taken branch. after the
	// delay slot has executed the PC is set to delayTarget
	delaySlot   bool
	delayTarget uint64

	// set by handlers that have moved the PC themselves
	pcMoved bool

	// number of instructions executed since the last reset
	cycles uint64

	// last result. the Final field is false if the instruction faulted
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil. Returns an error if any instruction in the
// instruction table has no implementation.
func NewCPU(instance *instance.Instance, mem bus.CPUBus, tlb *tlb.TLB) (*CPU, error) {
	mc := &CPU{
		instance: instance,
		regs:     registers.NewFile(),
		mem:      mem,
		tlb:      tlb,
		handlers: newHandlers(),
	}

	for k := instructions.NoKind + 1; k < instructions.NumKinds; k++ {
		if mc.handlers[k] == nil {
			return nil, curated.Errorf("cpu: no implementation for %s", k)
		}
	}

	return mc, nil
}

func (mc *CPU) String() string {
	return mc.regs.String()
}

// Reset reinitialises the registers, the TLB and the delay slot. The PC is
// zero after a reset. Use LoadPC() to set the start address.
func (mc *CPU) Reset() {
	mc.regs.Reset()
	mc.tlb.Reset()
	mc.delaySlot = false
	mc.delayTarget = 0
	mc.cycles = 0
	mc.LastResult.Reset()
}

// LoadPC sets the program counter. Any pending branch is forgotten.
func (mc *CPU) LoadPC(address uint64) {
	mc.regs.PC = address
	mc.delaySlot = false
	mc.delayTarget = 0
}

// Registers returns the register file of the CPU. Only intended for use
// between calls to ExecuteInstruction().
func (mc *CPU) Registers() *registers.File {
	return mc.regs
}

// GPR returns the value of the general purpose register.
func (mc *CPU) GPR(i int) uint64 {
	return mc.regs.GPR(i)
}

// COP0 returns the value of the COP0 register.
func (mc *CPU) COP0(i int) uint64 {
	return mc.regs.COP0(i)
}

// PC returns the program counter.
func (mc *CPU) PC() uint64 {
	return mc.regs.PC
}

// HI returns the HI register.
func (mc *CPU) HI() uint64 {
	return mc.regs.HI()
}

// LO returns the LO register.
func (mc *CPU) LO() uint64 {
	return mc.regs.LO()
}

// NextInstructionAddress returns the address of the next instruction to be
// executed. If a branch has been taken this is the address of the delay slot.
func (mc *CPU) NextInstructionAddress() uint64 {
	return mc.regs.PC
}

// DelayTarget returns the target of the branch that will be followed after
// the next instruction. Returns false if there is no pending branch.
func (mc *CPU) DelayTarget() (uint64, bool) {
	return mc.delayTarget, mc.delaySlot
}

// Cycles implements the random.Clock interface.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// the value mixed into the Random register on every cycle
func (mc *CPU) entropy() int {
	if mc.instance == nil {
		return 0
	}
	return mc.instance.Random.Intn(64)
}

func (mc *CPU) logf(detail string, args ...any) {
	var perm logger.Permission = logger.Allow
	if mc.instance != nil {
		perm = mc.instance
	}
	logger.Logf(perm, "cpu", detail, args...)
}

// annotate the fault with the location of the instruction. errors that are
// not faults are returned unchanged
func annotate(err error, pc uint64, opcode uint32) error {
	if f, ok := faults.As(err); ok {
		return f.At(pc, opcode)
	}
	return err
}

// ExecuteInstruction steps the CPU forward one instruction. Any fault is
// returned as a *faults.Fault and leaves the PC at the faulting instruction.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()

	pc := mc.regs.PC
	inDelaySlot := mc.delaySlot

	mc.LastResult.Address = pc
	mc.LastResult.InDelaySlot = inDelaySlot
	mc.LastResult.Cycle = mc.cycles

	mc.regs.PinZero()
	mc.regs.Tick(mc.cycles, mc.entropy())

	word, err := mc.mem.Read32(pc)
	if err != nil {
		return annotate(err, pc, 0)
	}

	o := instructions.Opcode(word)
	mc.LastResult.Opcode = o

	defn := instructions.Decode(o)
	if defn == nil {
		return faults.New(faults.Decode, "unknown opcode", uint32(pc), 4).At(pc, word)
	}
	mc.LastResult.Defn = defn

	if inDelaySlot && defn.IsBranch() {
		f := faults.New(faults.UnsupportedOperation, fmt.Sprintf("%s in delay slot", defn.Mnemonic), uint32(pc), 0)
		return f.At(pc, word)
	}

	mc.pcMoved = false
	err = mc.handlers[defn.Kind](mc, o)
	if err != nil {
		return annotate(err, pc, word)
	}

	if !mc.pcMoved {
		mc.regs.PC += 4
	}

	if inDelaySlot {
		mc.regs.PC = mc.delayTarget
		mc.delaySlot = false
	}

	mc.regs.PinZero()
	mc.cycles++
	mc.LastResult.Final = true

	return nil
}

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

package memory

import (
	"github.com/ultra64emu/ultra64/hardware/faults"
)

// Indexes of the MI registers.
const (
	MIMode = iota
	MIVersion
	MIIntr
	MIIntrMask
)

// MIVersionValue is the value of the MI_VERSION register.
const MIVersionValue = 0x01010101

// MI is the MIPS interface. Interrupts are not emulated and any access to the
// interrupt registers results in a fault.
type MI struct {
	Registers *Registers
}

func newMI() *MI {
	mi := &MI{
		Registers: NewRegisters("MI registers",
			"MI_MODE", "MI_VERSION", "MI_INTR", "MI_INTR_MASK"),
	}

	mi.Registers.bind(MIVersion, mi.readVersion, ignore)
	mi.Registers.bind(MIIntr, mi.unimplemented(MIIntr), mi.unimplementedWrite(MIIntr))
	mi.Registers.bind(MIIntrMask, mi.unimplemented(MIIntrMask), mi.unimplementedWrite(MIIntrMask))

	mi.Reset()

	return mi
}

// Reset the MI registers.
func (mi *MI) Reset() {
	mi.Registers.Reset()
	mi.Registers.Load(MIVersion, MIVersionValue)
}

func (mi *MI) readVersion() (uint32, error) {
	return MIVersionValue, nil
}

func (mi *MI) fault(idx int) error {
	return faults.New(faults.UnimplementedPeripheral, mi.Registers.Register(idx).Name, uint32(idx*4), 4)
}

func (mi *MI) unimplemented(idx int) func() (uint32, error) {
	return func() (uint32, error) {
		return 0, mi.fault(idx)
	}
}

func (mi *MI) unimplementedWrite(idx int) func(uint32) error {
	return func(_ uint32) error {
		return mi.fault(idx)
	}
}

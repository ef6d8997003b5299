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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ultra64emu/ultra64/hardware/faults"
)

// Register is a single 32bit hardware register.
type Register struct {
	Name string

	// the latched value of the register
	Value uint32

	// callbacks are optional. if read is nil then the latched value is
	// returned. if write is nil the value is latched
	read  func() (uint32, error)
	write func(uint32) error
}

// Registers is an area of memory made up of 32bit hardware registers. Only
// aligned four byte accesses are allowed.
type Registers struct {
	label string
	regs  []Register
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. There will be one latched register for every name.
func NewRegisters(label string, names ...string) *Registers {
	r := &Registers{
		label: label,
		regs:  make([]Register, len(names)),
	}
	for i, n := range names {
		r.regs[i].Name = n
	}
	return r
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for _, reg := range r.regs {
		s.WriteString(fmt.Sprintf("%-20s %08x\n", reg.Name, reg.Value))
	}
	return s.String()
}

// Label returns the name of the register window.
func (r *Registers) Label() string {
	return r.label
}

// Len returns the number of registers.
func (r *Registers) Len() int {
	return len(r.regs)
}

// Register returns a copy of the register at the index.
func (r *Registers) Register(idx int) Register {
	return r.regs[idx]
}

// Value returns the latched value of the register at the index.
func (r *Registers) Value(idx int) uint32 {
	return r.regs[idx].Value
}

// Load sets the latched value of the register without triggering any
// callbacks.
func (r *Registers) Load(idx int, v uint32) {
	r.regs[idx].Value = v
}

// Reset sets every latched value to zero.
func (r *Registers) Reset() {
	for i := range r.regs {
		r.regs[i].Value = 0
	}
}

// bind callbacks to the register at the index. either callback can be nil.
func (r *Registers) bind(idx int, read func() (uint32, error), write func(uint32) error) {
	r.regs[idx].read = read
	r.regs[idx].write = write
}

func (r *Registers) index(offset uint32, data []byte) (int, error) {
	if len(data) != 4 || offset%4 != 0 {
		return 0, faults.New(faults.UnsupportedRegister, fmt.Sprintf("%d byte access to %s", len(data), r.label), offset, len(data))
	}
	idx := int(offset / 4)
	if idx >= len(r.regs) {
		return 0, faults.New(faults.UnmappedAddress, r.label, offset, len(data))
	}
	return idx, nil
}

// Read implements the Area interface.
func (r *Registers) Read(offset uint32, data []byte) error {
	idx, err := r.index(offset, data)
	if err != nil {
		return err
	}

	reg := &r.regs[idx]
	v := reg.Value
	if reg.read != nil {
		v, err = reg.read()
		if err != nil {
			return err
		}
	}

	binary.BigEndian.PutUint32(data, v)
	return nil
}

// Write implements the Area interface.
func (r *Registers) Write(offset uint32, data []byte) error {
	idx, err := r.index(offset, data)
	if err != nil {
		return err
	}

	reg := &r.regs[idx]
	v := binary.BigEndian.Uint32(data)
	if reg.write != nil {
		return reg.write(v)
	}

	reg.Value = v
	return nil
}

// Peek implements the Area interface. The latched value is returned and read
// callbacks are not called.
func (r *Registers) Peek(offset uint32, data []byte) error {
	idx, err := r.index(offset, data)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(data, r.regs[idx].Value)
	return nil
}

// Poke implements the Area interface. The value is latched and write
// callbacks are not called.
func (r *Registers) Poke(offset uint32, data []byte) error {
	idx, err := r.index(offset, data)
	if err != nil {
		return err
	}
	r.regs[idx].Value = binary.BigEndian.Uint32(data)
	return nil
}

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

// Area is implemented by every area of the physical address space. The
// offset is relative to the origin of the mapping the area is installed in.
type Area interface {
	Read(offset uint32, data []byte) error
	Write(offset uint32, data []byte) error

	// Peek and Poke are the same as Read and Write except that they must not
	// cause any side effects
	Peek(offset uint32, data []byte) error
	Poke(offset uint32, data []byte) error
}

// RAM is a read/write area of memory.
type RAM struct {
	label string
	data  []byte
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, size int) *RAM {
	return &RAM{
		label: label,
		data:  make([]byte, size),
	}
}

func (ram *RAM) String() string {
	return ram.label
}

// Reset clears the contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.data)
}

// Data returns the underlying storage.
func (ram *RAM) Data() []byte {
	return ram.data
}

func (ram *RAM) bounds(offset uint32, data []byte) error {
	if int(offset)+len(data) > len(ram.data) {
		return faults.New(faults.UnmappedAddress, ram.label, offset, len(data))
	}
	return nil
}

// Read implements the Area interface.
func (ram *RAM) Read(offset uint32, data []byte) error {
	if err := ram.bounds(offset, data); err != nil {
		return err
	}
	copy(data, ram.data[offset:])
	return nil
}

// Write implements the Area interface.
func (ram *RAM) Write(offset uint32, data []byte) error {
	if err := ram.bounds(offset, data); err != nil {
		return err
	}
	copy(ram.data[offset:], data)
	return nil
}

// Peek implements the Area interface.
func (ram *RAM) Peek(offset uint32, data []byte) error {
	return ram.Read(offset, data)
}

// Poke implements the Area interface.
func (ram *RAM) Poke(offset uint32, data []byte) error {
	return ram.Write(offset, data)
}

// fill is an area that reads as a constant value and ignores writes. it is
// used for stubbed hardware and for the open bus.
type fill struct {
	value byte
}

// OpenBus is the area used for parts of the address space that are mapped
// but have nothing connected. Reads return 0xff.
var OpenBus Area = fill{value: 0xff}

// Stub is the area used for hardware that is mapped but not emulated. Reads
// return zero.
var Stub Area = fill{value: 0x00}

// Read implements the Area interface.
func (f fill) Read(_ uint32, data []byte) error {
	for i := range data {
		data[i] = f.value
	}
	return nil
}

// Write implements the Area interface.
func (f fill) Write(_ uint32, _ []byte) error {
	return nil
}

// Peek implements the Area interface.
func (f fill) Peek(offset uint32, data []byte) error {
	return f.Read(offset, data)
}

// Poke implements the Area interface.
func (f fill) Poke(_ uint32, _ []byte) error {
	return nil
}

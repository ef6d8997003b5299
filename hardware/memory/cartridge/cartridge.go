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

package cartridge

import (
	"fmt"

	"github.com/ultra64emu/ultra64/cartridgeloader"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/logger"
)

// the value read from an address that is past the end of the image
const openBus = 0xff

// Cartridge is the cartridge ROM area of the memory bus.
type Cartridge struct {
	Filename string
	Hash     string

	Header Header

	data []byte
}

// NewEjected returns a cartridge with no data. Every read returns the open
// bus value.
func NewEjected() *Cartridge {
	return &Cartridge{
		Filename: "ejected",
	}
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The loader will be loaded if that has not already happened.
func NewCartridge(cartload cartridgeloader.Loader) (*Cartridge, error) {
	err := cartload.Load()
	if err != nil {
		return nil, err
	}

	h, err := ParseHeader(cartload.Data)
	if err != nil {
		return nil, err
	}

	cart := &Cartridge{
		Filename: cartload.Filename,
		Hash:     cartload.Hash,
		Header:   h,
		data:     cartload.Data,
	}

	logger.Logf(logger.Allow, "cartridge", "%s (%s) entry point %08x", cart.Header.Name, cart.Hash, cart.Header.PC)

	return cart, nil
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return cart.Filename
	}
	return fmt.Sprintf("%s\n%s [%d bytes]", cart.Filename, cart.Header.Name, len(cart.data))
}

// IsEjected returns true if there is no image in the cartridge.
func (cart *Cartridge) IsEjected() bool {
	return len(cart.data) == 0
}

// Size returns the number of bytes in the image.
func (cart *Cartridge) Size() int {
	return len(cart.data)
}

// Read implements the memory.Area interface.
func (cart *Cartridge) Read(offset uint32, data []byte) error {
	for i := range data {
		a := int(offset) + i
		if a < len(cart.data) {
			data[i] = cart.data[a]
		} else {
			data[i] = openBus
		}
	}
	return nil
}

// Write implements the memory.Area interface. The cartridge is read-only so
// this function always returns a fault and the image is left unchanged.
func (cart *Cartridge) Write(offset uint32, data []byte) error {
	return faults.New(faults.ReadOnly, "cartridge ROM", offset, len(data))
}

// Peek implements the memory.Area interface.
func (cart *Cartridge) Peek(offset uint32, data []byte) error {
	return cart.Read(offset, data)
}

// Poke implements the memory.Area interface. Unlike Write() the image is
// changed. It is not possible to poke beyond the end of the image.
func (cart *Cartridge) Poke(offset uint32, data []byte) error {
	if int(offset)+len(data) > len(cart.data) {
		return faults.New(faults.UnmappedAddress, "poke beyond end of cartridge image", offset, len(data))
	}
	copy(cart.data[offset:], data)
	return nil
}

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
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ultra64emu/ultra64/curated"
)

// HeaderSize is the number of bytes at the start of the image that make up
// the header. Program data follows immediately.
const HeaderSize = 60

// Sentinal error patterns.
const (
	HeaderTooShort = "cartridge: image too short for header (%d bytes)"
)

// Header is the information found at the start of every cartridge image.
type Header struct {
	// latency, pulse width, page size and release values for the first PI
	// domain
	PI [4]byte

	ClockRate uint32

	// entry point of the program
	PC uint32

	Release uint32
	CRC1    uint32
	CRC2    uint32

	// ASCII with trailing spaces and NUL bytes removed
	Name string

	Manufacturer uint32
	CartridgeID  uint16
	Country      uint16
}

// ParseHeader decodes the header from the image data. The data should be in
// big-endian order.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf(HeaderTooShort, len(data))
	}

	var h Header
	copy(h.PI[:], data[0:4])
	h.ClockRate = binary.BigEndian.Uint32(data[4:])
	h.PC = binary.BigEndian.Uint32(data[8:])
	h.Release = binary.BigEndian.Uint32(data[12:])
	h.CRC1 = binary.BigEndian.Uint32(data[16:])
	h.CRC2 = binary.BigEndian.Uint32(data[20:])

	// eight reserved bytes at offset 24

	h.Name = strings.TrimRight(string(data[32:52]), " \x00")
	h.Manufacturer = binary.BigEndian.Uint32(data[52:])
	h.CartridgeID = binary.BigEndian.Uint16(data[56:])
	h.Country = binary.BigEndian.Uint16(data[58:])

	return h, nil
}

// CountryName returns the name of the region indicated by the country code.
// The code is an ASCII character in the upper byte of the Country field.
func (h Header) CountryName() string {
	switch h.Country >> 8 {
	case '7':
		return "Beta"
	case 'A':
		return "Asia"
	case 'B':
		return "Brazil"
	case 'C':
		return "China"
	case 'D':
		return "Germany"
	case 'E':
		return "North America"
	case 'F':
		return "France"
	case 'G':
		return "Gateway 64 (NTSC)"
	case 'H':
		return "Netherlands"
	case 'I':
		return "Italy"
	case 'J':
		return "Japan"
	case 'K':
		return "Korea"
	case 'L':
		return "Gateway 64 (PAL)"
	case 'N':
		return "Canada"
	case 'P', 'X', 'Y':
		return "Europe"
	case 'S':
		return "Spain"
	case 'U':
		return "Australia"
	case 'W':
		return "Scandinavia"
	}
	return "Unknown"
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("Name:         %s\n", h.Name))
	s.WriteString(fmt.Sprintf("Entry PC:     %08x\n", h.PC))
	s.WriteString(fmt.Sprintf("Clock rate:   %08x\n", h.ClockRate))
	s.WriteString(fmt.Sprintf("Release:      %08x\n", h.Release))
	s.WriteString(fmt.Sprintf("CRC:          %08x %08x\n", h.CRC1, h.CRC2))
	s.WriteString(fmt.Sprintf("PI domain 1:  % 02x\n", h.PI))
	s.WriteString(fmt.Sprintf("Manufacturer: %08x\n", h.Manufacturer))
	s.WriteString(fmt.Sprintf("Cartridge ID: %04x\n", h.CartridgeID))
	s.WriteString(fmt.Sprintf("Country:      %04x (%s)\n", h.Country, h.CountryName()))
	return s.String()
}

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

package cartridgeloader

import (
	"fmt"
	"strings"
)

// ByteOrder describes how the words of a cartridge image are arranged in the
// file.
type ByteOrder int

// List of valid ByteOrder values.
const (
	// decide from the first word of the image
	Auto ByteOrder = iota

	// native order. usually files with the .z64 extension
	BigEndian

	// every 32bit word reversed. usually files with the .n64 extension
	LittleEndian

	// every pair of bytes swapped. usually files with the .v64 extension
	ByteSwapped
)

func (o ByteOrder) String() string {
	switch o {
	case Auto:
		return "auto"
	case BigEndian:
		return "big endian"
	case LittleEndian:
		return "little endian"
	case ByteSwapped:
		return "byte swapped"
	}
	return fmt.Sprintf("unknown byte order (%d)", int(o))
}

// the first word of a cartridge image in each of the byte orders
const (
	magicBigEndian    = 0x80371240
	magicLittleEndian = 0x40123780
	magicByteSwapped  = 0x37804012
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".Z64", ".N64", ".V64", ".BIN", ".ROM"}

// orderFromExtension returns the byte order implied by the file extension.
func orderFromExtension(ext string) ByteOrder {
	switch strings.ToUpper(ext) {
	case ".Z64":
		return BigEndian
	case ".N64":
		return LittleEndian
	case ".V64":
		return ByteSwapped
	}
	return Auto
}

// orderFromMagic returns the byte order of the image by looking at the first
// four bytes. Returns false if the order can not be determined.
func orderFromMagic(data []byte) (ByteOrder, bool) {
	if len(data) < 4 {
		return Auto, false
	}

	m := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	switch m {
	case magicBigEndian:
		return BigEndian, true
	case magicLittleEndian:
		return LittleEndian, true
	case magicByteSwapped:
		return ByteSwapped, true
	}

	return Auto, false
}

// normalise rearranges data in place so that it is in big-endian order. Any
// trailing bytes that do not make up a full word (or half-word) are left as
// they are.
func normalise(data []byte, order ByteOrder) {
	switch order {
	case LittleEndian:
		for i := 0; i+3 < len(data); i += 4 {
			data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
		}
	case ByteSwapped:
		for i := 0; i+1 < len(data); i += 2 {
			data[i], data[i+1] = data[i+1], data[i]
		}
	}
}

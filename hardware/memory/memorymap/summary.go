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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas of the
// physical address space. Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for a := RDRAM; a <= PIFRAM; a++ {
		origin, memtop, _ := a.Bounds()
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", origin, memtop, a))
	}
	return s.String()
}

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

package disassembly

import (
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	Bytecode bool
	Notes    bool
}

// Write count instructions starting at the address to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr, address uint64, count int) {
	for _, e := range dsm.Range(address, count) {
		dsm.WriteEntry(output, attr, e)
	}
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	s := strings.Builder{}

	s.WriteString(e.Address)
	s.WriteString("  ")

	if attr.Bytecode {
		s.WriteString(e.Bytecode)
		s.WriteString("  ")
	}

	if e.Operand == "" {
		s.WriteString(e.Operator)
	} else {
		s.WriteString(e.Operator)
		s.WriteString(strings.Repeat(" ", max(1, 8-len(e.Operator))))
		s.WriteString(e.Operand)
	}

	if attr.Notes {
		if n := e.Notes(); n != "" {
			s.WriteString("  ; ")
			s.WriteString(n)
		}
	}

	s.WriteString("\n")
	io.WriteString(output, s.String())
}

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

package instructions

import "fmt"

// validate checks the consistency of an instruction table.
//
// Two definitions overlap if there is an instruction word that matches both.
// Overlapping definitions are only allowed if the earlier definition is
// strictly more specific than the later definition and if the earlier
// definition specialises the later one.
func validate(defs []*Definition) error {
	kinds := make(map[Kind]*Definition)
	for _, d := range defs {
		if d.Kind <= NoKind || d.Kind >= NumKinds {
			return fmt.Errorf("instructions: %s: invalid kind (%d)", d.Mnemonic, d.Kind)
		}
		if d.Bits&^d.Mask != 0 {
			return fmt.Errorf("instructions: %s: bits outside of mask (%08x, %08x)", d.Mnemonic, d.Bits, d.Mask)
		}
		if _, ok := kinds[d.Kind]; !ok {
			kinds[d.Kind] = d
		}
	}

	specialises := func(d *Definition, k Kind) bool {
		// the length of the table is the longest possible chain
		s := d.Specialises
		for range defs {
			if s == k {
				return true
			}
			n, ok := kinds[s]
			if !ok {
				return false
			}
			s = n.Specialises
		}
		return false
	}

	for i, a := range defs {
		for _, b := range defs[i+1:] {
			if (a.Bits^b.Bits)&a.Mask&b.Mask != 0 {
				continue
			}

			if a.Mask&b.Mask != b.Mask || a.Mask == b.Mask {
				return fmt.Errorf("instructions: %s is shadowed by %s", b.Mnemonic, a.Mnemonic)
			}

			if !specialises(a, b.Kind) {
				return fmt.Errorf("instructions: %s overlaps %s but is not ranked", a.Mnemonic, b.Mnemonic)
			}
		}
	}

	return nil
}

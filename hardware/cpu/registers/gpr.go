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

package registers

import "fmt"

// NumGPR is the number of general purpose registers.
const NumGPR = 32

var gprLabels = [NumGPR]string{
	"r0", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Indexes of the general purpose registers with a conventional role.
const (
	Zero = 0
	AT   = 1
	T3   = 11
	S4   = 20
	S6   = 22
	SP   = 29
	RA   = 31
)

// GPRLabel returns the symbolic name of the general purpose register.
func GPRLabel(i int) string {
	return gprLabels[i&(NumGPR-1)]
}

// GPRIndex returns the index of the named general purpose register. Both the
// symbolic name and the numeric form (eg. "r31") are accepted.
func GPRIndex(label string) (int, bool) {
	for i, l := range gprLabels {
		if l == label {
			return i, true
		}
	}

	var i int
	if n, _ := fmt.Sscanf(label, "r%d", &i); n == 1 && i >= 0 && i < NumGPR {
		return i, true
	}

	return 0, false
}

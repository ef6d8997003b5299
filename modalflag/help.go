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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// help prints the flags and sub-modes of the current mode.
func (md *Modes) help() {
	flags := &strings.Builder{}
	md.flags.SetOutput(flags)
	md.flags.PrintDefaults()

	hasFlags := false
	md.flags.VisitAll(func(*flag.Flag) { hasFlags = true })

	if !hasFlags && len(md.subModes) == 0 {
		if len(md.path) > 0 {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		} else {
			io.WriteString(md.Output, "No help available\n")
		}
		return
	}

	if len(md.path) > 0 {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	} else {
		io.WriteString(md.Output, "Usage:\n")
	}

	io.WriteString(md.Output, flags.String())

	if len(md.subModes) > 0 {
		if hasFlags {
			io.WriteString(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

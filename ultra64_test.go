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

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ultra64emu/ultra64/hardware"
	"github.com/ultra64emu/ultra64/test"
)

// writeImage creates a cartridge file containing the program at the start
// of the boot code.
func writeImage(t *testing.T, program ...uint32) string {
	t.Helper()

	data := make([]byte, hardware.BootSize)
	binary.BigEndian.PutUint32(data, 0x80371240)
	copy(data[0x20:], "ULTRA64 TEST")
	for i, w := range program {
		binary.BigEndian.PutUint32(data[0x40+i*4:], w)
	}

	filename := filepath.Join(t.TempDir(), "test.z64")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestVersion(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"version"}, out), exitOK)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "Ultra64 "), true)
}

func TestParseError(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, out), exitParseError)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "* error:"), true)
}

func TestRun(t *testing.T) {
	filename := writeImage(t,
		0x24080005, // ADDIU $t0, $r0, 5
		0xec000000, // not an instruction
	)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"run", "-steps", "1", filename}, out), exitOK)
	test.ExpectEquality(t, strings.Contains(out.String(), "stopped after 1 instructions"), true)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", filename}, out), exitModeError)
	test.ExpectEquality(t, strings.Contains(out.String(), "* error in RUN mode"), true)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run"}, out), exitModeError)
	test.ExpectEquality(t, strings.Contains(out.String(), "cartridge required"), true)
}

func TestDisasm(t *testing.T) {
	filename := writeImage(t, 0x24080005)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"disasm", "-count", "1", "-bytecode", filename}, out), exitOK)
	test.ExpectEquality(t, strings.Contains(out.String(), "a4000040"), true)
	test.ExpectEquality(t, strings.Contains(out.String(), "24080005"), true)
	test.ExpectEquality(t, strings.Contains(out.String(), "ADDIU"), true)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"disasm", "-address", "bad", filename}, out), exitModeError)
}

func TestHeader(t *testing.T) {
	filename := writeImage(t)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"header", filename}, out), exitOK)
	test.ExpectEquality(t, strings.Contains(out.String(), "ULTRA64 TEST"), true)
}

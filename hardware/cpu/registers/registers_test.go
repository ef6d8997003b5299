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

package registers_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/hardware/cpu/registers"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/test"
)

func TestZeroRegister(t *testing.T) {
	f := registers.NewFile()
	for i := 0; i < registers.NumGPR; i++ {
		f.SetGPR(i, 0xdeadbeefcafef00d)
		test.ExpectEquality(t, f.GPR(0), uint64(0), i)
	}
	test.ExpectEquality(t, f.GPR(31), uint64(0xdeadbeefcafef00d))
}

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, registers.GPRLabel(registers.RA), "ra")
	test.ExpectEquality(t, registers.GPRLabel(registers.SP), "sp")
	test.ExpectEquality(t, registers.COP0Label(registers.Status), "status")

	i, ok := registers.GPRIndex("t3")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, registers.T3)

	i, ok = registers.GPRIndex("r20")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, registers.S4)

	_, ok = registers.GPRIndex("r32")
	test.ExpectFailure(t, ok)

	i, ok = registers.COP0Index("entryhi")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, registers.EntryHi)
}

func TestHiLo(t *testing.T) {
	f := registers.NewFile()

	f.SetHiLo(0x12345678_9abcdef0)
	test.ExpectEquality(t, f.Hi32(), uint32(0x12345678))
	test.ExpectEquality(t, f.Lo32(), uint32(0x9abcdef0))
	test.ExpectEquality(t, f.HI(), uint64(0x12345678))
	test.ExpectEquality(t, f.LO(), uint64(0xffffffff9abcdef0))
	test.ExpectEquality(t, f.HiLo(), uint64(0x12345678_9abcdef0))

	// the combined view ignores the upper words of HI and LO
	f.SetHI(0xffffffff_00000001)
	f.SetLO(0x00000002)
	test.ExpectEquality(t, f.HiLo(), uint64(0x00000001_00000002))
}

func TestCOP0Whitelist(t *testing.T) {
	f := registers.NewFile()

	for i := 0; i < registers.NumCOP0; i++ {
		err := f.WriteCOP0(i, 0x10)
		if registers.COP0Writable(i) {
			test.ExpectSuccess(t, err, registers.COP0Label(i))
			if i != registers.Cause {
				test.ExpectEquality(t, f.COP0(i), uint64(0x10), registers.COP0Label(i))
			}
		} else {
			test.ExpectSuccess(t, faults.Is(err, faults.UnsupportedRegister), registers.COP0Label(i))
			test.ExpectEquality(t, f.COP0(i), uint64(0), registers.COP0Label(i))
		}
	}

	for _, i := range []int{registers.Wired, registers.Count, registers.Cause, registers.Compare} {
		test.ExpectSuccess(t, registers.COP0Writable(i))
	}
	for _, i := range []int{registers.Random, registers.BadVAddr, registers.PRId, registers.Config} {
		test.ExpectFailure(t, registers.COP0Writable(i))
	}

	// internal loads bypass the whitelist
	f.LoadCOP0(registers.PRId, 0xb00)
	test.ExpectEquality(t, f.COP0(registers.PRId), uint64(0xb00))
}

func TestCause(t *testing.T) {
	f := registers.NewFile()
	f.LoadCOP0(registers.Cause, 0x8000001c)
	test.DemandSuccess(t, f.WriteCOP0(registers.Cause, 0xffffffff))
	test.ExpectEquality(t, f.COP0(registers.Cause), uint64(0x8000031c))
}

func TestTick(t *testing.T) {
	f := registers.NewFile()
	test.DemandSuccess(t, f.WriteCOP0(registers.Wired, 4))

	f.Tick(0, 10)
	test.ExpectEquality(t, f.COP0(registers.Random), uint64(14))
	test.ExpectEquality(t, f.COP0(registers.Count), uint64(0))

	f.Tick(1, 60)
	test.ExpectEquality(t, f.COP0(registers.Random), uint64(0))
	test.ExpectEquality(t, f.COP0(registers.Count), uint64(1))

	f.Tick(2, 0)
	test.ExpectEquality(t, f.COP0(registers.Count), uint64(1))
	f.Tick(3, 0)
	test.ExpectEquality(t, f.COP0(registers.Count), uint64(2))
}

func TestFCR(t *testing.T) {
	f := registers.NewFile()
	v, ok := f.FCR(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint32(registers.FCR0Revision))

	_, ok = f.FCR(1)
	test.ExpectFailure(t, ok)
}

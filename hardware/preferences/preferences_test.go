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

package preferences_test

import (
	"testing"

	"github.com/ultra64emu/ultra64/hardware/preferences"
	"github.com/ultra64emu/ultra64/prefs"
	"github.com/ultra64emu/ultra64/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandSeed.Get().(int), 0)
	test.ExpectEquality(t, p.LogDMA.Get().(bool), true)
	test.ExpectEquality(t, p.LoopDetect.Get().(int), preferences.DefaultLoopDetect)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.randseed::99; cpu.loopdetect::0")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandSeed.Get().(int), 99)
	test.ExpectEquality(t, p.LoopDetect.Get().(int), 0)

	test.ExpectSuccess(t, p.Set("memory.logdma", false))
	test.ExpectEquality(t, p.LogDMA.Get().(bool), false)
	test.ExpectFailure(t, p.Set("memory.unknown", false))
}

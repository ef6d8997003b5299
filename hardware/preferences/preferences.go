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

package preferences

import (
	"github.com/ultra64emu/ultra64/prefs"
)

// Default values.
const (
	DefaultLoopDetect = 1000000
)

// Preferences for the emulated hardware.
type Preferences struct {
	group *prefs.Group

	// seed for the entropy used by the COP0 Random register. a value of zero
	// means the seed is chosen when the process starts
	RandSeed prefs.Int

	// log every DMA transfer performed by the memory bus
	LogDMA prefs.Bool

	// number of times the same small group of addresses can be executed
	// before the debugger considers the program to be stuck. zero disables
	// the loop detector
	LoopDetect prefs.Int
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values found in the command line preference stack are
// applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}
	p.SetDefaults()

	err := p.group.Add("hardware.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("memory.logdma", &p.LogDMA)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("cpu.loopdetect", &p.LoopDetect)
	if err != nil {
		return nil, err
	}

	err = p.group.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandSeed.Set(0)
	_ = p.LogDMA.Set(true)
	_ = p.LoopDetect.Set(DefaultLoopDetect)
}

// Set the named preference.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}

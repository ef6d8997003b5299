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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Console type, but is not actually the Console
// itself.
package instance

import (
	"github.com/ultra64emu/ultra64/hardware/preferences"
	"github.com/ultra64emu/ultra64/prefs"
	"github.com/ultra64emu/ultra64/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main        Label = ""
	Disassembly Label = "disassembly"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Console type.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. can be shared with other
	// instances of the emulation
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new preferences instance is
// created.
func NewInstance(clock random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs
	ins.Random.SetSeed(int64(ins.Prefs.RandSeed.Get().(int)))
	ins.Prefs.RandSeed.SetHookPost(ins.reseed)

	return ins, nil
}

func (ins *Instance) reseed(v prefs.Value) error {
	ins.Random.SetSeed(v.(int64))
	return nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance adds entries to the central log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}

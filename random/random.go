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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed = uint64(time.Now().UnixNano())

// Clock is the source of emulation time.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock
	seed  uint64

	// use zero seed rather than the random base seed. only really useful for
	// normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
		seed:  baseSeed,
	}
}

// SetClock changes the source of emulation time.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

// SetSeed replaces the base seed. A value of zero restores the base seed
// chosen when the process started.
func (rnd *Random) SetSeed(seed int64) {
	if seed == 0 {
		rnd.seed = baseSeed
		return
	}
	rnd.seed = uint64(seed)
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	var seed uint64
	if !rnd.ZeroSeed {
		seed = rnd.seed
	}

	var cycles uint64
	if rnd.clock != nil {
		cycles = rnd.clock.Cycles()
	}

	return rand.New(rand.NewPCG(seed, cycles)).IntN(n)
}

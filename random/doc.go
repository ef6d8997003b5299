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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Numbers returned by Intn() depend on the seed and on the cycle count of the
// emulation at the moment of the call. The same seed and the same cycle
// always produce the same number, so two emulations started with the same
// seed behave identically.
//
// The seed is chosen when the process starts unless a specific seed is given
// with SetSeed(). If ZeroSeed is true then the seed is always zero. This is
// useful for testing purposes.
package random

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

// Package curated is a helper package for the plain Go language error type.
// It is used for the "expected" errors of the emulator: file loading,
// preference parsing and debugger command errors. Hardware faults raised by
// the emulated CPU and memory bus are not curated errors. They are typed
// values found in the hardware/faults package.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is remembered and is used by Is() and Has() to identify the
// error. For example:
//
//	const UnrecognisedByteOrder = "cartridgeloader: unrecognised byte order: %08x"
//
//	err := curated.Errorf(UnrecognisedByteOrder, magic)
//	if curated.Is(err, UnrecognisedByteOrder) {
//		...
//	}
//
// Has() checks the whole chain of curated errors, where a chain is formed by
// passing a curated error as a placeholder value to another call to Errorf().
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, parts being separated by the sub-string ": ". This means a
// function can wrap an error with its own context without worrying about
// whether the callee has already done so:
//
//	cartridgeloader: cartridgeloader: file not found
//
// is printed as:
//
//	cartridgeloader: file not found
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see through them. This is how a hardware fault
// wrapped in a curated error can still be recovered with errors.As().
package curated

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

// Package logger is the central log for the emulator. Entries are tagged with
// the name of the component that created them. Consecutive entries that are
// identical are collapsed into one entry with a repeat count.
//
// Logging is for diagnostic information only. Hardware faults are returned as
// errors by the emulation and should be handled by the caller. Those callers
// may of course decide to log the fault as well.
//
// A log request is accompanied by a Permission value. Emulation instances
// that should not clutter the central log (for example the instance used to
// disassemble a ROM without running it) can deny logging through the
// Permission interface. The Allow value always permits logging.
package logger

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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains external
// references to all the console sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation); or it can be stepped one instruction at a time.
//
// A cartridge is attached with AttachCartridge(). Attaching a cartridge boots
// the console using a high level emulation of the PIF boot ROM. See the
// Boot() function for details.
//
// Faults returned by the CPU are recorded in the Faults field before being
// returned to the caller of Step() or Run().
package hardware

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

// Package tlb implements the translation lookaside buffer of the CPU. The TLB
// maps the virtual addresses of the user, supervisor and KSEG3 segments to
// physical addresses.
//
// The TLB is written by the CPU with the TLBWI and TLBWR instructions and is
// consulted by the memory package when translating virtual addresses.
package tlb

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

// Package cartridgeloader is used to specify the cartridge image that is to be
// attached to the emulated console.
//
// When the image is ready to be loaded into the emulator, the Load() function
// should be used. Images are normalised to big-endian byte order during
// loading, whatever the order of the file on disk.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.z64",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the ByteOrder field according to the filename
// extension.
package cartridgeloader

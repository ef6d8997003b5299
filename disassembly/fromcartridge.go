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

package disassembly

import (
	"github.com/ultra64emu/ultra64/cartridgeloader"
	"github.com/ultra64emu/ultra64/hardware"
	"github.com/ultra64emu/ultra64/hardware/instance"
)

// FromCartridge attaches the cartridge to a new instance of the console and
// returns a disassembly of its memory. The console is booted and so the boot
// code of the cartridge can be found from hardware.BootPC onwards.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, *hardware.Console, error) {
	con, err := hardware.NewConsole(nil)
	if err != nil {
		return nil, nil, err
	}
	con.Instance.Label = instance.Disassembly

	err = con.AttachCartridge(cartload)
	if err != nil {
		return nil, nil, err
	}

	return NewDisassembly(con.Mem), con, nil
}

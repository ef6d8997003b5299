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

package hardware

import (
	"github.com/ultra64emu/ultra64/cartridgeloader"
	"github.com/ultra64emu/ultra64/hardware/cpu"
	"github.com/ultra64emu/ultra64/hardware/faults"
	"github.com/ultra64emu/ultra64/hardware/instance"
	"github.com/ultra64emu/ultra64/hardware/memory"
	"github.com/ultra64emu/ultra64/hardware/memory/cartridge"
	"github.com/ultra64emu/ultra64/hardware/memory/tlb"
	"github.com/ultra64emu/ultra64/hardware/preferences"
)

// Console is the root of the emulation. It owns the CPU, the memory bus and
// the TLB that they share.
type Console struct {
	Instance *instance.Instance

	CPU *cpu.CPU
	Mem *memory.Memory
	TLB *tlb.TLB

	// every fault returned by Step() or Run()
	Faults faults.Faults
}

// NewConsole creates a new Console and everything associated with the
// hardware. The prefs argument can be nil, in which case a new preferences
// instance is created.
func NewConsole(prefs *preferences.Preferences) (*Console, error) {
	var err error

	con := &Console{
		TLB:    tlb.NewTLB(),
		Faults: faults.NewFaults(),
	}

	// the clock for the instance is the CPU, which doesn't exist yet
	con.Instance, err = instance.NewInstance(nil, prefs)
	if err != nil {
		return nil, err
	}

	con.Mem = memory.NewMemory(con.Instance, con.TLB)

	con.CPU, err = cpu.NewCPU(con.Instance, con.Mem, con.TLB)
	if err != nil {
		return nil, err
	}

	con.Instance.Random.SetClock(con.CPU)

	return con, nil
}

func (con *Console) String() string {
	return con.CPU.String()
}

// AttachCartridge loads the cartridge and boots the console. The cartridge
// is ejected if the loader has no filename and no data.
func (con *Console) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Filename == "" && !cartload.HasLoaded() {
		con.Mem.AttachCartridge(nil)
		return con.Boot()
	}

	cart, err := cartridge.NewCartridge(cartload)
	if err != nil {
		return err
	}
	con.Mem.AttachCartridge(cart)

	return con.Boot()
}

// Reset the CPU and the contents of memory. The fault log is cleared. The
// cartridge is not changed.
func (con *Console) Reset() {
	con.CPU.Reset()
	con.Mem.Reset()
	con.Faults.Clear()
}

// Step the emulation one CPU instruction. Any fault is recorded before being
// returned.
func (con *Console) Step() error {
	err := con.CPU.ExecuteInstruction()
	if err != nil {
		if f, ok := faults.As(err); ok {
			con.Faults.Record(f)
		}
		return err
	}
	return nil
}

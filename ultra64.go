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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ultra64emu/ultra64/cartridgeloader"
	"github.com/ultra64emu/ultra64/debugger"
	"github.com/ultra64emu/ultra64/debugger/govern"
	"github.com/ultra64emu/ultra64/debugger/terminal"
	"github.com/ultra64emu/ultra64/debugger/terminal/colorterm"
	"github.com/ultra64emu/ultra64/debugger/terminal/plainterm"
	"github.com/ultra64emu/ultra64/disassembly"
	"github.com/ultra64emu/ultra64/hardware"
	"github.com/ultra64emu/ultra64/hardware/memory/cartridge"
	"github.com/ultra64emu/ultra64/logger"
	"github.com/ultra64emu/ultra64/modalflag"
	"github.com/ultra64emu/ultra64/prefs"
	"github.com/ultra64emu/ultra64/statsview"
	"github.com/ultra64emu/ultra64/version"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and starts the selected mode. the return
// value is suitable for os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "HEADER", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "DEBUG":
		err = debug(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "HEADER":
		err = header(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// the flags shared by every mode that emulates a cartridge
type emulationFlags struct {
	prefs     *string
	log       *bool
	statsview *bool
}

func addEmulationFlags(md *modalflag.Modes) emulationFlags {
	f := emulationFlags{
		prefs: md.AddString("prefs", "", "preferences for this run only. eg. \"cpu.loopdetect::0\""),
		log:   md.AddBool("log", false, "echo log entries to stdout"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

func (f emulationFlags) apply(output io.Writer) {
	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}
	if *f.log {
		logger.SetEcho(output)
	}
	if f.statsview != nil && *f.statsview {
		statsview.Launch(output)
	}
}

// newConsole creates the console and attaches the named cartridge. an empty
// filename boots the console with no cartridge
func newConsole(filename string) (*hardware.Console, error) {
	con, err := hardware.NewConsole(nil)
	if err != nil {
		return nil, err
	}

	err = con.AttachCartridge(cartridgeloader.NewLoader(filename))
	if err != nil {
		return nil, err
	}

	return con, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addEmulationFlags(md)
	maxSteps := md.AddInt("steps", 0, "stop after the number of instructions. zero for no limit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	flags.apply(output)

	var filename string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	con, err := newConsole(filename)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var interrupted atomic.Bool

	g, ctx := errgroup.WithContext(ctx)

	// the interrupt signal stops the emulation at the next performance brake
	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		defer signal.Stop(sig)

		select {
		case <-sig:
			interrupted.Store(true)
		case <-ctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()

		var steps int
		var brake int

		err := con.Run(func() (govern.State, error) {
			steps++
			if *maxSteps > 0 && steps >= *maxSteps {
				return govern.Ending, nil
			}

			brake++
			if brake >= hardware.PerformanceBrake {
				brake = 0
				if interrupted.Load() {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})

		if err != nil {
			return err
		}

		fmt.Fprintf(output, "stopped after %d instructions\n", steps)
		return nil
	})

	err = g.Wait()

	fmt.Fprintln(output, con.String())

	return err
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addEmulationFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type: AUTO, COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	flags.apply(output)

	var filename string

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	case "AUTO":
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	con, err := newConsole(filename)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(con, trm)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	notes := md.AddBool("notes", false, "include notes for undecodable instructions")
	address := md.AddString("address", "", "address of first instruction. default is the boot address")
	count := md.AddInt("count", 64, "number of instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	addr := uint64(hardware.BootPC)
	if *address != "" {
		addr, err = strconv.ParseUint(*address, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid address (%s)", *address)
		}
	}

	if *count <= 0 {
		return errors.New("count must be greater than zero")
	}

	dsm, _, err := disassembly.FromCartridge(cartridgeloader.NewLoader(filename))
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		Bytecode: *bytecode,
		Notes:    *notes,
	}
	dsm.Write(output, attr, addr, *count)

	return nil
}

func header(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))

	cart, err := cartridge.NewCartridge(cartload)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, cart.String())
	fmt.Fprintln(output, cart.Header.String())

	return nil
}

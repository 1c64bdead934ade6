// This file is part of Gopherdrive.
//
// Gopherdrive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherdrive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherdrive.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/term"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/disassembly"
	"github.com/jetsetilly/gopherdrive/hardware"
	"github.com/jetsetilly/gopherdrive/logger"
	"github.com/jetsetilly/gopherdrive/modalflag"
	"github.com/jetsetilly/gopherdrive/performance"
	"github.com/jetsetilly/gopherdrive/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE", "SYSMAP")

	if _, err := md.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	var err error
	switch md.Mode() {
	case "RUN":
		err = runMode(md)
	case "DISASM":
		err = disasmMode(md)
	case "PERFORMANCE":
		err = performanceMode(md)
	case "SYSMAP":
		err = sysmapMode(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func loadCartridge(md *modalflag.Modes) (*cartridge.Cartridge, error) {
	if md.GetArg(0) == "" {
		return nil, fmt.Errorf("no ROM file specified")
	}
	return cartridge.Load(md.GetArg(0))
}

// keyEvents polls the terminal for raw keypresses for the run loop. The
// returned channel is nil when no terminal is available; the run loop then
// simply runs forever.
func keyEvents() (chan rune, func()) {
	tty, err := term.Open("/dev/tty", term.RawMode, term.ReadTimeout(10*time.Millisecond))
	if err != nil {
		return nil, func() {}
	}

	events := make(chan rune, 1)
	done := make(chan bool)
	go func() {
		b := make([]byte, 1)
		for {
			select {
			case <-done:
				return
			default:
			}
			if n, err := tty.Read(b); err == nil && n == 1 {
				select {
				case events <- rune(b[0]):
				default:
				}
			}
		}
	}()

	return events, func() {
		close(done)
		tty.Restore()
		tty.Close()
	}
}

func runMode(md *modalflag.Modes) error {
	md.NewMode()
	speed := md.AddFloat64("speed", 1.0, "game speed multiplier")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("stats", false, "launch the statistics server")
	steps := md.AddInt("steps", 0, "stop after this many steps (0 means run forever)")
	if _, err := md.Parse(); err != nil {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}
	if *stats {
		statsview.Launch(os.Stdout)
	}

	console, err := hardware.NewMegaDrive(cart)
	if err != nil {
		return err
	}
	console.SetGameSpeed(*speed)

	fmt.Printf("running %s\n", cart.Title())
	fmt.Println("[space] to pause/resume, [q] to quit")

	events, restore := keyEvents()
	defer restore()

	paused := false
	console.ResetInterruptClock()

	for count := 0; *steps == 0 || count < *steps; count++ {
		select {
		case key := <-events:
			switch key {
			case 'q', 'Q', 0x03:
				return nil
			case ' ':
				paused = !paused
				if paused {
					fmt.Println("paused")
				} else {
					// a long pause must not release a burst of vblanks
					console.ResetInterruptClock()
					fmt.Println("running")
				}
			}
		default:
		}

		if paused {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if _, err := console.Step(); err != nil {
			info, infoErr := console.CurrentInstruction()
			if infoErr == nil {
				fmt.Fprintf(os.Stderr, "at %06x: %s\n", info.PC, info.Description)
			}
			fmt.Fprintln(os.Stderr, console.CPU.String())
			logger.Tail(os.Stderr, 10)
			return err
		}
	}

	return nil
}

func disasmMode(md *modalflag.Modes) error {
	md.NewMode()
	origin := md.AddString("origin", "", "start address (hex; cartridge entry point if empty)")
	limit := md.AddInt("limit", 256, "number of instructions to decode")
	if _, err := md.Parse(); err != nil {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	var start uint32
	if *origin != "" {
		v, err := strconv.ParseUint(*origin, 16, 32)
		if err != nil {
			return fmt.Errorf("origin: %v", err)
		}
		start = uint32(v)
	}

	dsm, err := disassembly.FromCartridge(cart, start, *limit)
	if err != nil {
		return err
	}
	dsm.Write(os.Stdout)

	return nil
}

func performanceMode(md *modalflag.Modes) error {
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	stats := md.AddBool("stats", false, "launch the statistics server")
	if _, err := md.Parse(); err != nil {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, cart, dur, *profile)
}

func sysmapMode(md *modalflag.Modes) error {
	md.NewMode()
	outFile := md.AddString("o", "sysmap.dot", "output file for the graphviz dot graph")
	if _, err := md.Parse(); err != nil {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	console, err := hardware.NewMegaDrive(cart)
	if err != nil {
		return err
	}

	f, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, console)
	fmt.Printf("system map written to %s\n", *outFile)

	return nil
}

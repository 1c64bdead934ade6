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

// Package performance measures the emulator: a cartridge is run flat out
// for a fixed wall-clock period and the instruction and vblank rates are
// reported. CPU and memory profiles of the run can be written for study
// with the pprof tool.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware"
)

// Check runs the cartridge for the given duration and writes a summary to
// output.
func Check(output io.Writer, cart *cartridge.Cartridge, duration time.Duration, profile bool) error {
	md, err := hardware.NewMegaDrive(cart)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	instructions := 0
	vblanks := 0

	runner := func() error {
		md.ResetInterruptClock()
		end := time.Now().Add(duration)

		// checking the wall clock on every instruction would dominate the
		// measurement
		for i := 0; ; i++ {
			res, err := md.Step()
			if err != nil {
				return err
			}
			switch res {
			case hardware.StepExecuted:
				instructions++
			case hardware.StepVblankInterrupt:
				vblanks++
			}

			if i%4096 == 0 && time.Now().After(end) {
				return nil
			}
		}
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	seconds := duration.Seconds()
	fmt.Fprintf(output, "%.0f instructions/sec (%d in %.2fs)\n",
		float64(instructions)/seconds, instructions, seconds)
	fmt.Fprintf(output, "%.1f vblanks/sec\n", float64(vblanks)/seconds)

	return nil
}

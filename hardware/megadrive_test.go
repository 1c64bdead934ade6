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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/test"
)

// buildTestROM assembles a bootable ROM image: vector table, metadata and
// a few instructions at the reset entry point.
func buildTestROM(code ...uint8) []uint8 {
	rom := make([]uint8, 0x1000)

	putLong := func(off uint32, v uint32) {
		rom[off] = uint8(v >> 24)
		rom[off+1] = uint8(v >> 16)
		rom[off+2] = uint8(v >> 8)
		rom[off+3] = uint8(v)
	}

	putLong(0x000, 0x00fffe00) // reset SP
	putLong(0x004, 0x00000200) // reset PC
	putLong(0x078, 0x00000500) // vblank PC

	putLong(0x1a0, 0x00000000) // ROM begin
	putLong(0x1a4, 0x00000fff) // ROM end

	copy(rom[0x200:], code)

	return rom
}

func newTestConsole(t *testing.T, code ...uint8) *hardware.MegaDrive {
	t.Helper()
	cart, err := cartridge.NewCartridge(buildTestROM(code...))
	if err != nil {
		t.Fatal(err)
	}
	md, err := hardware.NewMegaDrive(cart)
	if err != nil {
		t.Fatal(err)
	}
	return md
}

func TestBootAndStep(t *testing.T) {
	// MOVEQ #$42, D0; NOP
	md := newTestConsole(t, 0x70, 0x42, 0x4e, 0x71)

	// the CPU comes up with the cartridge's entry points
	test.Equate(t, md.CPU.Reg.PC, uint32(0x200))
	test.Equate(t, md.CPU.Reg.USP, uint32(0xfffe00))

	res, err := md.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(res), int(hardware.StepExecuted))
	test.Equate(t, md.CPU.Reg.D[0], uint32(0x42))

	res, _ = md.Step()
	test.Equate(t, int(res), int(hardware.StepExecuted))
	test.Equate(t, md.CPU.Reg.PC, uint32(0x204))
}

func TestVblankInterrupt(t *testing.T) {
	md := newTestConsole(t, 0x4e, 0x71)

	// enable the vblank interrupt on the VDP
	test.ExpectedSuccess(t, memory.WriteWord(md.Mem, 0xc00004, 0x8120))

	md.CPU.Reg.PC = 0x100
	md.CPU.Reg.USP = 0xfffe00
	md.CPU.Reg.SSP = 0xffff00
	md.CPU.Reg.SR.FromBits(0)

	// the interrupt clock has never been reset so a full frame period has
	// long passed
	res, err := md.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(res), int(hardware.StepVblankInterrupt))

	// the supervisor took over; the user stack is untouched
	test.Equate(t, md.CPU.Reg.USP, uint32(0xfffe00))
	test.Equate(t, md.CPU.Reg.SSP, uint32(0xffff00-6))

	// the frame holds the interrupted SR and PC
	sr, err := memory.ReadWord(md.Mem, 0xffff00-6)
	test.ExpectedSuccess(t, err)
	test.Equate(t, sr, 0x0000)
	pc, err := memory.ReadLong(md.Mem, 0xffff00-4)
	test.ExpectedSuccess(t, err)
	test.Equate(t, pc, uint32(0x100))

	test.Equate(t, md.CPU.Reg.PC, uint32(0x500))
	test.ExpectedSuccess(t, md.CPU.Reg.SR.Supervisor)
	test.Equate(t, md.CPU.Reg.SR.InterruptMask, uint8(6))

	// the mask now blocks a second interrupt
	putNop(t, md)
	res, err = md.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(res), int(hardware.StepExecuted))
}

func putNop(t *testing.T, md *hardware.MegaDrive) {
	t.Helper()
	// drop a NOP wherever PC points (the vblank handler in these tests
	// lives in RAM-less ROM space, so park PC in RAM first)
	md.CPU.Reg.PC = 0xff0000
	if err := memory.WriteWord(md.Mem, 0xff0000, 0x4e71); err != nil {
		t.Fatal(err)
	}
}

func TestResetInterruptClock(t *testing.T) {
	md := newTestConsole(t, 0x4e, 0x71)

	test.ExpectedSuccess(t, memory.WriteWord(md.Mem, 0xc00004, 0x8120))
	md.CPU.Reg.SSP = 0xffff00

	// with a freshly reset clock the next step executes an instruction
	// instead of firing the interrupt
	md.ResetInterruptClock()
	res, err := md.Step()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(res), int(hardware.StepExecuted))
}

func TestRunUntil(t *testing.T) {
	// a run of NOPs
	md := newTestConsole(t, 0x4e, 0x71, 0x4e, 0x71, 0x4e, 0x71, 0x4e, 0x71)

	steps := 0
	err := md.Run(func() (bool, error) {
		steps++
		return steps <= 3, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.CPU.Reg.PC, uint32(0x206))
}

func TestCurrentInstruction(t *testing.T) {
	md := newTestConsole(t, 0x70, 0x42, 0x48, 0x40)

	info, err := md.CurrentInstruction()
	test.ExpectedSuccess(t, err)
	test.Equate(t, info.PC, uint32(0x200))
	test.Equate(t, info.Description, "MOVEQ #$42, D0")
	test.Equate(t, len(info.Bytes), 2)
	test.Equate(t, info.Bytes[0], 0x70)
	test.Equate(t, info.Bytes[1], 0x42)

	// the program counter is restored
	test.Equate(t, md.CPU.Reg.PC, uint32(0x200))
}

func TestMainRAM(t *testing.T) {
	md := newTestConsole(t, 0x4e, 0x71)

	// the RAM window answers through the bus; big-endian round trip
	test.ExpectedSuccess(t, memory.WriteLong(md.Mem, 0xff0100, 0xdeadbeef))
	v, err := memory.ReadLong(md.Mem, 0xff0100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xdeadbeef))

	// ROM ignores writes
	test.ExpectedSuccess(t, memory.WriteWord(md.Mem, 0x0200, 0xffff))
	w, _ := memory.ReadWord(md.Mem, 0x0200)
	test.Equate(t, w, 0x4e71)
}

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

package hardware

import (
	"os"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware/cpu"
	"github.com/jetsetilly/gopherdrive/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/peripherals"
	"github.com/jetsetilly/gopherdrive/hardware/vdp"
	"github.com/jetsetilly/gopherdrive/logger"
)

// the main RAM window. the wraparound of the real hardware is modelled as
// one flat vector covering the whole window.
const (
	OriginRAM = 0xc00020
	MemtopRAM = 0xffffff
)

// StepResult reports what a call to Step() did.
type StepResult int

// Step either executes one instruction or takes the vblank interrupt.
const (
	StepExecuted StepResult = iota
	StepVblankInterrupt
)

// MegaDrive is the main container for the emulated components of the
// console.
type MegaDrive struct {
	CPU        *cpu.M68000
	Mem        *memory.Bus
	VDP        *vdp.VDP
	Controller *peripherals.Controller
	Interrupts *Interrupts

	cart *cartridge.Cartridge
}

// NewMegaDrive creates a console around a loaded cartridge: every
// peripheral is constructed, mapped onto the bus at its fixed address, and
// the CPU is reset through the cartridge's vector table.
func NewMegaDrive(cart *cartridge.Cartridge) (*MegaDrive, error) {
	md := &MegaDrive{cart: cart}

	md.Mem = memory.NewBus()
	md.CPU = cpu.NewM68000(md.Mem)
	md.VDP = vdp.NewVDP(md.Mem)
	md.Controller = peripherals.NewController()

	// the FM chip claims its four bytes inside the Z80 window so it must
	// be mapped first
	md.Mem.AddPeripheral(cart.Metadata.ROMBegin, cart.Metadata.ROMEnd, memory.NewROM(cart.Data))
	md.Mem.AddPeripheral(peripherals.OriginYM2612, peripherals.MemtopYM2612, peripherals.NewYM2612())
	md.Mem.AddPeripheral(peripherals.OriginZ80RAM, peripherals.MemtopZ80RAM, peripherals.NewZ80RAM())
	md.Mem.AddPeripheral(peripherals.OriginController, peripherals.MemtopController, md.Controller)
	md.Mem.AddPeripheral(peripherals.OriginZ80Control, peripherals.MemtopZ80Control, peripherals.NewZ80Control())
	md.Mem.AddPeripheral(peripherals.OriginSRAMAccess, peripherals.MemtopSRAMAccess, peripherals.NewSRAMAccess())
	md.Mem.AddPeripheral(peripherals.OriginTrademark, peripherals.MemtopTrademark, peripherals.NewTrademark())
	md.Mem.AddPeripheral(vdp.OriginVDP, vdp.MemtopVDP, md.VDP)
	md.Mem.AddPeripheral(peripherals.OriginPSG, peripherals.MemtopPSG, peripherals.NewPSG())
	md.Mem.AddPeripheral(OriginRAM, MemtopRAM, memory.NewRAM(OriginRAM, MemtopRAM))

	md.CPU.Reset(cart.Vectors.ResetSP, cart.Vectors.ResetPC)

	md.Interrupts = NewInterrupts(cart.Vectors.VblankPC, md.CPU.Reg, md.Mem, md.VDP)

	logger.Logf("megadrive", "cartridge: %s (%s)", cart.Title(), cart.Metadata.Region)

	return md, nil
}

// Step runs the console forward by one unit: either the vblank interrupt
// entry or a single instruction.
func (md *MegaDrive) Step() (StepResult, error) {
	fired, err := md.Interrupts.Check()
	if err != nil {
		return StepExecuted, err
	}
	if fired {
		return StepVblankInterrupt, nil
	}

	beginPC := md.CPU.Reg.PC
	if err := md.CPU.Step(); err != nil {
		logger.Logf("megadrive", "execute error pc: %06x: %v", beginPC, err)
		return StepExecuted, err
	}
	return StepExecuted, nil
}

// Run steps the console until the continueCheck function returns false or
// errors. The check is polled before every step; cancellation is
// cooperative at instruction granularity.
func (md *MegaDrive) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error
	for cont {
		cont, err = continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			break
		}
		if _, err = md.Step(); err != nil {
			return err
		}
	}
	return nil
}

// ResetInterruptClock restarts the vblank frame period. Hosts call this
// when transitioning from paused to running.
func (md *MegaDrive) ResetInterruptClock() {
	md.Interrupts.ResetTime()
}

// SetGameSpeed scales the vblank rate.
func (md *MegaDrive) SetGameSpeed(speed float64) {
	md.Interrupts.SetGameSpeed(speed)
}

// InstructionInfo describes the instruction at the current program
// counter.
type InstructionInfo struct {
	PC          uint32
	Bytes       []uint8
	Description string
}

// CurrentInstruction decodes the instruction at PC without disturbing the
// machine; PC is restored afterwards.
func (md *MegaDrive) CurrentInstruction() (InstructionInfo, error) {
	beginPC := md.CPU.Reg.PC

	ins, err := md.CPU.Decode()
	endPC := md.CPU.Reg.PC
	md.CPU.Reg.PC = beginPC
	if err != nil {
		return InstructionInfo{}, err
	}

	info := InstructionInfo{
		PC:          beginPC,
		Bytes:       make([]uint8, endPC-beginPC),
		Description: ins.String(),
	}
	if err := md.Mem.Read(beginPC, info.Bytes); err != nil {
		return InstructionInfo{}, err
	}

	return info, nil
}

// SaveVDPState writes the VDP state dump to a file.
func (md *MegaDrive) SaveVDPState(path string) error {
	if err := os.WriteFile(path, md.VDP.DumpState(), 0644); err != nil {
		return err
	}
	logger.Logf("megadrive", "vdp state saved to %s", path)
	return nil
}

// LoadVDPState restores a VDP state dump from a file.
func (md *MegaDrive) LoadVDPState(path string) error {
	state, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Logf("megadrive", "vdp state loaded from %s", path)
	return md.VDP.ApplyState(state)
}

// Registers returns a copy of the register file.
func (md *MegaDrive) Registers() registers.Registers {
	return md.CPU.Reg.Snapshot()
}

// Cartridge returns the loaded cartridge.
func (md *MegaDrive) Cartridge() *cartridge.Cartridge {
	return md.cart
}

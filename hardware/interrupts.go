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
	"time"

	"github.com/jetsetilly/gopherdrive/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/vdp"
)

// the 68000 interrupt priority of the vblank interrupt.
const vblankInterruptLevel = 6

// one NTSC frame.
const framePeriodNTSC = time.Second / 60

// Interrupts is the vblank interrupt source. It is polled between
// instructions; an interrupt appears atomically at an instruction
// boundary.
type Interrupts struct {
	vblankPC uint32
	reg      *registers.Registers
	bus      memory.Peripheral
	vdp      *vdp.VDP

	lastFire    time.Time
	framePeriod time.Duration
}

// NewInterrupts is the preferred method of initialisation for the
// Interrupts type.
func NewInterrupts(vblankPC uint32, reg *registers.Registers, bus memory.Peripheral, v *vdp.VDP) *Interrupts {
	return &Interrupts{
		vblankPC:    vblankPC,
		reg:         reg,
		bus:         bus,
		vdp:         v,
		framePeriod: framePeriodNTSC,
	}
}

// Check fires the vblank interrupt if it is enabled, unmasked and due.
// Returns true if the interrupt was taken.
func (in *Interrupts) Check() (bool, error) {
	if !in.vdp.VblankInterruptEnabled() {
		return false, nil
	}
	if in.reg.SR.InterruptMask >= vblankInterruptLevel {
		return false, nil
	}

	now := time.Now()
	if now.Sub(in.lastFire) < in.framePeriod {
		return false, nil
	}
	in.lastFire = now

	if err := in.callVblank(); err != nil {
		return false, err
	}
	return true, nil
}

// ResetTime restarts the frame period from now. Hosts call this when
// unpausing so that a long pause does not cause an immediate interrupt.
func (in *Interrupts) ResetTime() {
	in.lastFire = time.Now()
}

// SetGameSpeed scales the frame period; a speed of 2.0 fires vblanks twice
// as often.
func (in *Interrupts) SetGameSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	in.framePeriod = time.Duration(float64(framePeriodNTSC) / speed)
}

// callVblank enters the vblank handler: supervisor stack frame of the
// interrupted PC and SR, supervisor mode, interrupt mask raised to the
// vblank level.
func (in *Interrupts) callVblank() error {
	oldSR := in.reg.SR.ToBits()

	// the frame goes on the supervisor stack whatever mode was interrupted
	in.reg.SR.Supervisor = true
	sp := in.reg.StackPtr()

	*sp -= 4
	if err := memory.WriteLong(in.bus, *sp, in.reg.PC); err != nil {
		return err
	}

	*sp -= 2
	if err := memory.WriteWord(in.bus, *sp, oldSR); err != nil {
		return err
	}

	in.reg.SR.InterruptMask = vblankInterruptLevel
	in.reg.PC = in.vblankPC

	return nil
}

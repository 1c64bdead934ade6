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

package vdp

import (
	"github.com/jetsetilly/gopherdrive/curated"
)

// DumpStateSize is the length of a state dump in bytes: the register
// mirror followed by the three RAMs.
const DumpStateSize = registerCount + VramSize + VsramSize + CramSize

// DumpState serialises the device: registers, then VRAM, VSRAM and CRAM.
func (v *VDP) DumpState() []uint8 {
	state := make([]uint8, 0, DumpStateSize)
	state = append(state, v.registers[:]...)
	state = append(state, v.vram...)
	state = append(state, v.vsram...)
	state = append(state, v.cram...)
	return state
}

// ApplyState restores a DumpState() serialisation. Register writes are
// replayed so that the derived state is rebuilt, then the RAM images are
// copied verbatim.
func (v *VDP) ApplyState(state []uint8) error {
	if len(state) != DumpStateSize {
		return curated.Errorf("vdp: state dump is %d bytes; expected %d", len(state), DumpStateSize)
	}

	for i := 0; i < registerCount; i++ {
		if err := v.writeRegister(uint16(regFirst+i)<<8 | uint16(state[i])); err != nil {
			return err
		}
	}
	state = state[registerCount:]

	copy(v.vram, state[:VramSize])
	state = state[VramSize:]
	copy(v.vsram, state[:VsramSize])
	state = state[VsramSize:]
	copy(v.cram, state[:CramSize])

	return nil
}

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

package peripherals

import (
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/logger"
)

// address windows of the sound hardware.
const (
	OriginYM2612 = 0xa04000
	MemtopYM2612 = 0xa04003

	OriginPSG = 0xc00011
	MemtopPSG = 0xc00012
)

// YM2612 is the FM synthesiser. Audio is not synthesised; reads return
// zero and writes are noted in the log.
type YM2612 struct{}

// NewYM2612 is the preferred method of initialisation for the YM2612 type.
func NewYM2612() *YM2612 {
	return &YM2612{}
}

// Read implements the memory.Peripheral interface.
func (y *YM2612) Read(addr uint32, data []byte) error {
	for i := range data {
		data[i] = 0
	}
	return nil
}

// Write implements the memory.Peripheral interface.
func (y *YM2612) Write(addr uint32, data []byte) error {
	logger.Logf("ym2612", "write: address %06x size %d", addr, len(data))
	return nil
}

// psg is the programmable sound generator, a write-only port. Writes are
// accepted and discarded.
type psg struct{}

// NewPSG returns the PSG peripheral. Reads fail with ProtectedRead.
func NewPSG() memory.Peripheral {
	return memory.WriteOnly{Writer: psg{}}
}

// Write implements the memory.Peripheral interface.
func (p psg) Write(addr uint32, data []byte) error {
	logger.Logf("psg", "write: %02x", data[0])
	return nil
}

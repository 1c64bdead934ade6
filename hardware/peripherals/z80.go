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
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/logger"
)

// the Z80 area of the 68000 address map.
const (
	OriginZ80RAM = 0xa00000
	MemtopZ80RAM = 0xa0ffff

	OriginZ80Control = 0xa11100
	MemtopZ80Control = 0xa11201
)

const (
	z80RAMSize    = 0x2000
	addrZ80BusReq = 0xa11100
	addrZ80Reset  = 0xa11200
)

// Z80RAM is the sound CPU's 8KB of RAM, visible to the 68000 through its
// own window. The Z80 itself never runs; games still use the RAM to load
// sound drivers.
type Z80RAM struct {
	data []uint8
}

// NewZ80RAM is the preferred method of initialisation for the Z80RAM type.
func NewZ80RAM() *Z80RAM {
	return &Z80RAM{
		data: make([]uint8, z80RAMSize),
	}
}

// Read implements the memory.Peripheral interface.
func (z *Z80RAM) Read(addr uint32, data []byte) error {
	for i := range data {
		o := (addr - OriginZ80RAM + uint32(i)) % z80RAMSize
		data[i] = z.data[o]
	}
	return nil
}

// Write implements the memory.Peripheral interface.
func (z *Z80RAM) Write(addr uint32, data []byte) error {
	for i := range data {
		o := (addr - OriginZ80RAM + uint32(i)) % z80RAMSize
		z.data[o] = data[i]
	}
	return nil
}

// Z80Control is the bus-request and reset register pair. The bus is always
// granted: a request write flips the stored value so that the busy poll
// that games perform terminates immediately.
type Z80Control struct {
	busValue uint16
}

// NewZ80Control is the preferred method of initialisation for the
// Z80Control type.
func NewZ80Control() *Z80Control {
	return &Z80Control{}
}

// Read implements the memory.Peripheral interface.
func (z *Z80Control) Read(addr uint32, data []byte) error {
	if len(data) == 2 && addr == addrZ80BusReq {
		data[0] = uint8(z.busValue >> 8)
		data[1] = uint8(z.busValue)
		return nil
	}
	if len(data) == 1 && addr == addrZ80BusReq {
		data[0] = uint8(z.busValue >> 8)
		return nil
	}
	return curated.Errorf(memory.UnmappedRead, addr, len(data))
}

// Write implements the memory.Peripheral interface.
func (z *Z80Control) Write(addr uint32, data []byte) error {
	if len(data) == 2 && addr == addrZ80BusReq {
		z.busValue = uint16(data[0])<<8 | uint16(data[1])
		logger.Logf("z80", "bus request: %04x", z.busValue)
		if z.busValue == 0x100 {
			z.busValue = 0x000
		} else {
			z.busValue = 0x100
		}
		return nil
	}
	if len(data) == 2 && addr == addrZ80Reset {
		logger.Logf("z80", "reset: %02x%02x", data[0], data[1])
		return nil
	}
	return curated.Errorf(memory.UnmappedWrite, addr, len(data))
}

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

package memory

import (
	"github.com/jetsetilly/gopherdrive/curated"
)

// addresses on the 68000 bus are 24 bits wide. the high byte of a 32-bit
// address is not wired up and must be masked before dispatch.
const AddressMask = 0x00ffffff

// Bus routes reads and writes to the peripherals mapped onto it. Mapped
// ranges are inclusive at both ends and must not overlap; the first mapping
// to contain the address wins.
//
// Bus implements the Peripheral interface itself, which is what allows the
// VDP to reach back through the bus during DMA.
type Bus struct {
	mappings []busMapping
}

type busMapping struct {
	begin uint32
	end   uint32
	p     Peripheral
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		mappings: make([]busMapping, 0, 10),
	}
}

// AddPeripheral maps a peripheral onto the inclusive address range
// [begin, end].
func (b *Bus) AddPeripheral(begin uint32, end uint32, p Peripheral) {
	b.mappings = append(b.mappings, busMapping{begin: begin, end: end, p: p})
}

func (b *Bus) findMapping(addr uint32) *busMapping {
	for i := range b.mappings {
		if addr >= b.mappings[i].begin && addr <= b.mappings[i].end {
			return &b.mappings[i]
		}
	}
	return nil
}

// Read implements the Peripheral interface.
func (b *Bus) Read(addr uint32, data []byte) error {
	addr &= AddressMask
	if m := b.findMapping(addr); m != nil {
		return m.p.Read(addr, data)
	}
	return curated.Errorf(UnmappedRead, addr, len(data))
}

// Write implements the Peripheral interface.
func (b *Bus) Write(addr uint32, data []byte) error {
	addr &= AddressMask
	if m := b.findMapping(addr); m != nil {
		return m.p.Write(addr, data)
	}
	return curated.Errorf(UnmappedWrite, addr, len(data))
}

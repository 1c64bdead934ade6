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
	"github.com/jetsetilly/gopherdrive/logger"
)

// the 64KB of work RAM repeats through the whole mapped window. accesses
// below the guard address are almost always a program bug so they are noted
// in the log.
const ramGuard = 0xff0000

// RAM is the 68000 work RAM. The hardware mirrors 64KB throughout the
// window 0xC00020 to 0xFFFFFF; the emulation models the window as one flat
// vector, the way the original console's programs see it through the last
// mirror.
type RAM struct {
	origin uint32
	memtop uint32
	data   []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(origin uint32, memtop uint32) *RAM {
	return &RAM{
		origin: origin,
		memtop: memtop,
		data:   make([]uint8, memtop-origin+1),
	}
}

// Origin returns the first mapped address.
func (r *RAM) Origin() uint32 {
	return r.origin
}

// Memtop returns the last mapped address.
func (r *RAM) Memtop() uint32 {
	return r.memtop
}

// guarded returns true for accesses in the reserved part of the window.
// only meaningful for the console work RAM; small test RAMs mapped at low
// addresses never span the guard.
func (r *RAM) guarded(addr uint32) bool {
	return addr < ramGuard && r.memtop >= ramGuard
}

// Read implements the memory.Peripheral interface.
func (r *RAM) Read(addr uint32, data []byte) error {
	if r.guarded(addr) {
		logger.Logf("ram", "read from reserved address: %06x size %d", addr, len(data))
	}
	for i := range data {
		o := addr - r.origin + uint32(i)
		if o >= uint32(len(r.data)) {
			break
		}
		data[i] = r.data[o]
	}
	return nil
}

// Write implements the memory.Peripheral interface.
func (r *RAM) Write(addr uint32, data []byte) error {
	if r.guarded(addr) {
		logger.Logf("ram", "write to reserved address: %06x size %d", addr, len(data))
	}
	for i := range data {
		o := addr - r.origin + uint32(i)
		if o >= uint32(len(r.data)) {
			break
		}
		r.data[o] = data[i]
	}
	return nil
}

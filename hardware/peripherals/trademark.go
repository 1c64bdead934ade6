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

// address windows of the write-only cartridge-era registers.
const (
	OriginTrademark = 0xa14000
	MemtopTrademark = 0xa14003

	OriginSRAMAccess = 0xa130f1
	MemtopSRAMAccess = 0xa130f1
)

// trademark is the TMSS lockout register. The boot code must write the
// ASCII string 'SEGA' to it; anything else is rejected.
type trademark struct{}

// NewTrademark returns the trademark register peripheral. Reads fail with
// ProtectedRead.
func NewTrademark() memory.Peripheral {
	return memory.WriteOnly{Writer: trademark{}}
}

// Write implements the memory.Peripheral interface.
func (d trademark) Write(addr uint32, data []byte) error {
	if len(data) != 4 {
		return curated.Errorf(memory.InvalidWrite,
			curated.Errorf("trademark: write size %d", len(data)))
	}
	if string(data) != "SEGA" {
		return curated.Errorf(memory.InvalidWrite,
			curated.Errorf("trademark: write value %02x%02x%02x%02x", data[0], data[1], data[2], data[3]))
	}
	logger.Log("trademark", "activated")
	return nil
}

// sramAccess is the SRAM mapping register, a single write-only byte.
type sramAccess struct{}

// NewSRAMAccess returns the SRAM access register peripheral.
func NewSRAMAccess() memory.Peripheral {
	return memory.WriteOnly{Writer: sramAccess{}}
}

// Write implements the memory.Peripheral interface.
func (d sramAccess) Write(addr uint32, data []byte) error {
	if len(data) != 1 {
		return curated.Errorf(memory.InvalidWrite,
			curated.Errorf("sram access: write size %d", len(data)))
	}
	logger.Logf("sram", "access register: %02x", data[0])
	return nil
}

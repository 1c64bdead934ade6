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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/test"
)

// buildTestROM assembles a minimal but structurally correct ROM image.
func buildTestROM() []uint8 {
	rom := make([]uint8, 0x1000)

	putLong := func(off uint32, v uint32) {
		rom[off] = uint8(v >> 24)
		rom[off+1] = uint8(v >> 16)
		rom[off+2] = uint8(v >> 8)
		rom[off+3] = uint8(v)
	}
	putText := func(off uint32, s string, length int) {
		for i := 0; i < length; i++ {
			if i < len(s) {
				rom[off+uint32(i)] = s[i]
			} else {
				rom[off+uint32(i)] = ' '
			}
		}
	}

	putLong(0x000, 0x00fffe00) // reset SP
	putLong(0x004, 0x00000200) // reset PC
	putLong(0x070, 0x00000300) // hblank PC
	putLong(0x078, 0x00000400) // vblank PC

	putText(0x100, "SEGA MEGA DRIVE", 16)
	putText(0x110, "(C)TEST 2024", 16)
	putText(0x120, "TEST GAME", 48)
	putText(0x150, "TEST GAME OVERSEAS", 48)
	putText(0x180, "GM 00000000-00", 14)
	rom[0x18e] = 0x12
	rom[0x18f] = 0x34
	putText(0x190, "J", 16)
	putLong(0x1a0, 0x00000000) // ROM begin
	putLong(0x1a4, 0x00000fff) // ROM end
	putLong(0x1a8, 0x00ff0000) // RAM begin
	putLong(0x1ac, 0x00ffffff) // RAM end
	putText(0x1f0, "JUE", 3)

	return rom
}

func TestHeaderParsing(t *testing.T) {
	cart, err := cartridge.NewCartridge(buildTestROM())
	test.ExpectedSuccess(t, err)

	test.Equate(t, cart.Vectors.ResetSP, uint32(0x00fffe00))
	test.Equate(t, cart.Vectors.ResetPC, uint32(0x00000200))
	test.Equate(t, cart.Vectors.HblankPC, uint32(0x00000300))
	test.Equate(t, cart.Vectors.VblankPC, uint32(0x00000400))

	test.Equate(t, cart.Metadata.SystemType, "SEGA MEGA DRIVE")
	test.Equate(t, cart.Metadata.DomesticTitle, "TEST GAME")
	test.Equate(t, cart.Metadata.OverseasTitle, "TEST GAME OVERSEAS")
	test.Equate(t, cart.Metadata.Checksum, 0x1234)
	test.Equate(t, cart.Metadata.ROMEnd, uint32(0x00000fff))
	test.Equate(t, cart.Metadata.Region, "JUE")

	test.Equate(t, cart.Title(), "TEST GAME OVERSEAS")
}

func TestShortROM(t *testing.T) {
	_, err := cartridge.NewCartridge(make([]uint8, 100))
	test.ExpectedSuccess(t, curated.Is(err, cartridge.ShortROM))
}

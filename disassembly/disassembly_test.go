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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/disassembly"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestLinearWalk(t *testing.T) {
	rom := make([]uint8, 0x400)

	// reset PC at 0x200
	rom[0x004] = 0x00
	rom[0x005] = 0x00
	rom[0x006] = 0x02
	rom[0x007] = 0x00
	// ROM range
	rom[0x1a4] = 0x00
	rom[0x1a5] = 0x00
	rom[0x1a6] = 0x03
	rom[0x1a7] = 0xff

	// MOVEQ #$42, D0; LEA ($00003000).l, A0; NOP
	code := []uint8{0x70, 0x42, 0x41, 0xf9, 0x00, 0x00, 0x30, 0x00, 0x4e, 0x71}
	copy(rom[0x200:], code)

	cart, err := cartridge.NewCartridge(rom)
	test.ExpectedSuccess(t, err)

	dsm, err := disassembly.FromCartridge(cart, 0, 3)
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(dsm.Entries), 3)
	test.Equate(t, dsm.Entries[0].Address, uint32(0x200))
	test.Equate(t, dsm.Entries[0].Result, "MOVEQ #$42, D0")
	test.Equate(t, dsm.Entries[1].Address, uint32(0x202))
	test.Equate(t, dsm.Entries[1].Result, "LEA ($00003000).l, A0")
	test.Equate(t, len(dsm.Entries[1].Bytes), 6)
	test.Equate(t, dsm.Entries[2].Result, "NOP")
}

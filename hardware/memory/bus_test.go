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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestBusDispatch(t *testing.T) {
	bus := memory.NewBus()
	lo := memory.NewRAM(0x0000, 0x0fff)
	hi := memory.NewRAM(0x1000, 0x1fff)
	bus.AddPeripheral(0x0000, 0x0fff, lo)
	bus.AddPeripheral(0x1000, 0x1fff, hi)

	test.ExpectedSuccess(t, memory.WriteWord(bus, 0x0ffe, 0xaaaa))
	test.ExpectedSuccess(t, memory.WriteWord(bus, 0x1000, 0xbbbb))

	// each peripheral received its own write
	w, _ := memory.ReadWord(lo, 0x0ffe)
	test.Equate(t, w, 0xaaaa)
	w, _ = memory.ReadWord(hi, 0x1000)
	test.Equate(t, w, 0xbbbb)

	// unmapped addresses
	_, err := memory.ReadByte(bus, 0x2000)
	test.ExpectedSuccess(t, curated.Is(err, memory.UnmappedRead))
	err = memory.WriteByte(bus, 0x2000, 0)
	test.ExpectedSuccess(t, curated.Is(err, memory.UnmappedWrite))
}

func TestBusAddressMask(t *testing.T) {
	bus := memory.NewBus()
	ram := memory.NewRAM(0x0000, 0xffff)
	bus.AddPeripheral(0x0000, 0xffff, ram)

	// the high byte of the address is not wired up
	test.ExpectedSuccess(t, memory.WriteWord(bus, 0xff001234, 0xcafe))
	w, err := memory.ReadWord(bus, 0x00001234)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xcafe)
}

func TestBusFirstMatchWins(t *testing.T) {
	bus := memory.NewBus()
	first := memory.NewRAM(0x0000, 0x00ff)
	second := memory.NewRAM(0x0000, 0x00ff)
	bus.AddPeripheral(0x0000, 0x00ff, first)
	bus.AddPeripheral(0x0000, 0x00ff, second)

	test.ExpectedSuccess(t, memory.WriteByte(bus, 0x0010, 0x42))
	b, _ := memory.ReadByte(first, 0x0010)
	test.Equate(t, b, 0x42)
	b, _ = memory.ReadByte(second, 0x0010)
	test.Equate(t, b, 0x00)
}

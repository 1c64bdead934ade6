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

func TestBigEndianRoundTrip(t *testing.T) {
	ram := memory.NewRAM(0x0000, 0xffff)

	test.ExpectedSuccess(t, memory.WriteLong(ram, 0x1000, 0xdeadbeef))

	// most significant byte at the lowest address
	b, err := memory.ReadByte(ram, 0x1000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, 0xde)
	b, _ = memory.ReadByte(ram, 0x1003)
	test.Equate(t, b, 0xef)

	w, err := memory.ReadWord(ram, 0x1000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xdead)

	l, err := memory.ReadLong(ram, 0x1000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, l, uint32(0xdeadbeef))

	test.ExpectedSuccess(t, memory.WriteWord(ram, 0x2000, 0x1234))
	w, _ = memory.ReadWord(ram, 0x2000)
	test.Equate(t, w, 0x1234)

	test.ExpectedSuccess(t, memory.WriteByte(ram, 0x3000, 0x56))
	b, _ = memory.ReadByte(ram, 0x3000)
	test.Equate(t, b, 0x56)
}

func TestReadOnly(t *testing.T) {
	rom := memory.NewROM([]uint8{0x11, 0x22, 0x33, 0x44})

	l, err := memory.ReadLong(rom, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, l, uint32(0x11223344))

	// writes succeed silently and are discarded
	test.ExpectedSuccess(t, memory.WriteWord(rom, 0, 0xffff))
	w, _ := memory.ReadWord(rom, 0)
	test.Equate(t, w, 0x1122)

	// reads past the end of the image return zero
	w, err = memory.ReadWord(rom, 0x100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0x0000)
}

func TestWriteOnlyAndDummy(t *testing.T) {
	wo := memory.WriteOnly{Writer: memory.NewRAM(0x0000, 0x00ff)}
	_, err := memory.ReadByte(wo, 0)
	test.ExpectedSuccess(t, curated.Is(err, memory.ProtectedRead))
	test.ExpectedSuccess(t, memory.WriteByte(wo, 0, 0x01))

	var dummy memory.Dummy
	_, err = memory.ReadByte(dummy, 0)
	test.ExpectedSuccess(t, curated.Is(err, memory.ProtectedRead))
	err = memory.WriteByte(dummy, 0, 0x01)
	test.ExpectedSuccess(t, curated.Is(err, memory.ProtectedWrite))
}

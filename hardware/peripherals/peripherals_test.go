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

package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/peripherals"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestControllerSteps(t *testing.T) {
	c := peripherals.NewController()

	// no buttons pressed: all report bits negated high
	test.ExpectedSuccess(t, memory.WriteByte(c, 0xa10003, 0x40))
	b, err := memory.ReadByte(c, 0xa10003)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, 0x3f)

	// step 1 reports Up, Down, Left, Right, B, C
	c.SetButton(peripherals.ButtonLeft, true)
	c.SetButton(peripherals.ButtonC, true)
	b, _ = memory.ReadByte(c, 0xa10003)
	test.Equate(t, b, 0x3f&^0x04&^0x20)

	// step 2 reports Up, Down, A, Start
	test.ExpectedSuccess(t, memory.WriteByte(c, 0xa10003, 0x00))
	c.SetButton(peripherals.ButtonStart, true)
	b, _ = memory.ReadByte(c, 0xa10003)
	test.Equate(t, b, 0x33&^0x20)

	// the bits reporting left and right on step 1 are always clear on step 2
	test.Equate(t, b&0x0c, 0x00)
}

func TestControllerVersion(t *testing.T) {
	c := peripherals.NewController()

	b, err := memory.ReadByte(c, 0xa10001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, 0xaf)

	// even addresses read as zero
	var two [2]byte
	test.ExpectedSuccess(t, c.Read(0xa10002, two[:]))
	test.Equate(t, two[0], 0x00)
}

func TestTrademark(t *testing.T) {
	d := peripherals.NewTrademark()

	test.ExpectedSuccess(t, d.Write(0xa14000, []byte("SEGA")))

	err := d.Write(0xa14000, []byte("SEGO"))
	test.ExpectedSuccess(t, curated.Is(err, memory.InvalidWrite))

	err = d.Write(0xa14000, []byte("SE"))
	test.ExpectedSuccess(t, curated.Is(err, memory.InvalidWrite))

	// the register is write-only
	_, err = memory.ReadByte(d, 0xa14000)
	test.ExpectedSuccess(t, curated.Is(err, memory.ProtectedRead))
}

func TestZ80BusGrant(t *testing.T) {
	z := peripherals.NewZ80Control()

	// request the bus; the poll that follows must see it granted
	test.ExpectedSuccess(t, memory.WriteWord(z, 0xa11100, 0x0100))
	w, err := memory.ReadWord(z, 0xa11100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0x0000)

	// release the bus
	test.ExpectedSuccess(t, memory.WriteWord(z, 0xa11100, 0x0000))
	w, _ = memory.ReadWord(z, 0xa11100)
	test.Equate(t, w, 0x0100)

	// the reset register accepts writes silently
	test.ExpectedSuccess(t, memory.WriteWord(z, 0xa11200, 0x0000))
}

func TestZ80RAM(t *testing.T) {
	z := peripherals.NewZ80RAM()

	test.ExpectedSuccess(t, memory.WriteWord(z, 0xa00100, 0xbeef))
	w, err := memory.ReadWord(z, 0xa00100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0xbeef)

	// the 8KB of RAM mirrors through the 64KB window
	w, _ = memory.ReadWord(z, 0xa02100)
	test.Equate(t, w, 0xbeef)
}

func TestAudioStubs(t *testing.T) {
	ym := peripherals.NewYM2612()
	test.ExpectedSuccess(t, memory.WriteByte(ym, 0xa04000, 0x42))
	b, err := memory.ReadByte(ym, 0xa04000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, 0x00)

	psg := peripherals.NewPSG()
	test.ExpectedSuccess(t, memory.WriteByte(psg, 0xc00011, 0x9f))
	_, err = memory.ReadByte(psg, 0xc00011)
	test.ExpectedSuccess(t, curated.Is(err, memory.ProtectedRead))
}

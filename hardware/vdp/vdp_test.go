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

package vdp_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/hardware/vdp"
	"github.com/jetsetilly/gopherdrive/test"
)

const (
	ctrlPort = 0xc00004
	dataPort = 0xc00000
)

// makeTestVDP wires a VDP to a bus with 128KB of RAM at the bottom of the
// address space for DMA sources.
func makeTestVDP(t *testing.T) (*vdp.VDP, *memory.Bus, *memory.RAM) {
	t.Helper()
	bus := memory.NewBus()
	ram := memory.NewRAM(0x000000, 0x01ffff)
	bus.AddPeripheral(0x000000, 0x01ffff, ram)
	v := vdp.NewVDP(bus)
	bus.AddPeripheral(vdp.OriginVDP, vdp.MemtopVDP, v)
	return v, bus, ram
}

func writeCtrl(t *testing.T, v *vdp.VDP, word uint16) {
	t.Helper()
	if err := memory.WriteWord(v, ctrlPort, word); err != nil {
		t.Fatal(err)
	}
}

func writeData(t *testing.T, v *vdp.VDP, word uint16) {
	t.Helper()
	if err := memory.WriteWord(v, dataPort, word); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterWrites(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	writeCtrl(t, v, 0x8134) // mode2: dma, vblank interrupt, V28
	test.ExpectedSuccess(t, v.VblankInterruptEnabled())
	test.Equate(t, v.TileHeight(), 28)

	writeCtrl(t, v, 0x8c81) // mode4: H40
	test.Equate(t, v.TileWidth(), 40)

	writeCtrl(t, v, 0x8230) // plane A at 0x30>>3 * 0x2000
	test.Equate(t, v.PlaneATableAddress(), uint32(0xc000))

	writeCtrl(t, v, 0x8407) // plane B at 7 * 0x2000
	test.Equate(t, v.PlaneBTableAddress(), uint32(0xe000))

	writeCtrl(t, v, 0x8578) // sprite table at 0x78 * 0x200
	test.Equate(t, v.SpriteTableAddress(), uint32(0xf000))

	writeCtrl(t, v, 0x8b03) // mode3: hscroll every line, vscroll full
	h, vs := v.ScrollModes()
	test.Equate(t, h, vdp.HScrollEveryLine)
	test.Equate(t, vs, vdp.VScrollFull)

	writeCtrl(t, v, 0x9011) // plane size 64x64
	w, ht := v.PlaneSize()
	test.Equate(t, w, 64)
	test.Equate(t, ht, 64)

	writeCtrl(t, v, 0x8764) // background color palette 2 index 4
	p, i := v.BackgroundColor()
	test.Equate(t, p, 2)
	test.Equate(t, i, 4)
}

func TestInvalidRegister(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	// register 0x98 is past the register file
	err := memory.WriteWord(v, ctrlPort, 0x9800)
	test.ExpectedSuccess(t, curated.Is(err, memory.InvalidWrite))
}

func TestDataPortWriteRead(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	writeCtrl(t, v, 0x8f02) // auto increment 2

	// VRAM write at 0x100
	writeCtrl(t, v, 0x4100)
	writeCtrl(t, v, 0x0000)
	writeData(t, v, 0x1122)
	writeData(t, v, 0x3344)

	test.Equate(t, v.VramData()[0x100], 0x11)
	test.Equate(t, v.VramData()[0x101], 0x22)
	test.Equate(t, v.VramData()[0x102], 0x33)
	test.Equate(t, v.VramData()[0x103], 0x44)

	// VRAM read back from 0x100
	writeCtrl(t, v, 0x0100)
	writeCtrl(t, v, 0x0000)
	w, err := memory.ReadWord(v, dataPort)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0x1122)
	w, _ = memory.ReadWord(v, dataPort)
	test.Equate(t, w, 0x3344)
}

func TestAddressCommandDecoding(t *testing.T) {
	v, _, _ := makeTestVDP(t)
	writeCtrl(t, v, 0x8f02)

	// CRAM write at 0: palette entry 0
	writeCtrl(t, v, 0xc000)
	writeCtrl(t, v, 0x0000)
	writeData(t, v, 0x0e42)
	test.Equate(t, v.CramData()[0], 0x0e)
	test.Equate(t, v.CramData()[1], 0x42)

	// VSRAM write at 2
	writeCtrl(t, v, 0x4002)
	writeCtrl(t, v, 0x0010)
	writeData(t, v, 0x00ff)
	test.Equate(t, v.VsramData()[2], 0x00)
	test.Equate(t, v.VsramData()[3], 0xff)

	// an unlisted cd combination fails
	writeCtrl(t, v, 0xc000)
	err := memory.WriteWord(v, ctrlPort, 0x0010)
	test.ExpectedSuccess(t, curated.Is(err, memory.InvalidWrite))
}

func TestControlPortStatus(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	// the status register is a constant in this model: vblank set, NTSC,
	// nothing else
	w, err := memory.ReadWord(v, ctrlPort)
	test.ExpectedSuccess(t, err)
	test.Equate(t, w, 0x0008)
}

func TestMemoryToVramDMA(t *testing.T) {
	v, _, ram := makeTestVDP(t)

	// a recognisable pattern at 0x010000
	for i := uint32(0); i < 128; i++ {
		if err := memory.WriteByte(ram, 0x010000+i, uint8(i)); err != nil {
			t.Fatal(err)
		}
	}

	writeCtrl(t, v, 0x8f02) // auto increment 2
	writeCtrl(t, v, 0x8114) // mode2: dma enabled
	writeCtrl(t, v, 0x9340) // dma length 0x40 words
	writeCtrl(t, v, 0x9400)
	writeCtrl(t, v, 0x9500) // dma source 0x008000 words (0x010000 bytes)
	writeCtrl(t, v, 0x9680)
	writeCtrl(t, v, 0x9700)

	// VRAM write at 0 with the DMA bit
	writeCtrl(t, v, 0x4000)
	writeCtrl(t, v, 0x0080)

	for i := 0; i < 128; i++ {
		test.Equate(t, v.VramData()[i], uint8(i))
	}

	// the command state machine is back at rest: a subsequent two-word
	// command works from scratch
	writeCtrl(t, v, 0x4100)
	writeCtrl(t, v, 0x0000)
	writeData(t, v, 0xbeef)
	test.Equate(t, v.VramData()[0x100], 0xbe)
}

func TestVramFill(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	writeCtrl(t, v, 0x8f01) // auto increment 1
	writeCtrl(t, v, 0x8114) // mode2: dma enabled
	writeCtrl(t, v, 0x9310) // dma length 0x10 words
	writeCtrl(t, v, 0x9400)
	writeCtrl(t, v, 0x9780) // dma type: VRAM fill

	// VRAM write at 0x200 with the DMA bit
	writeCtrl(t, v, 0x4200)
	writeCtrl(t, v, 0x0080)

	writeData(t, v, 0x55aa)

	// the low byte is written length*2 times with no lane toggle at
	// increment 1
	for i := 0; i < 0x20; i++ {
		test.Equate(t, v.VramData()[0x200+i], 0xaa)
	}
	test.Equate(t, v.VramData()[0x220], 0x00)

	// a later data port write is an ordinary write again
	writeCtrl(t, v, 0x8f02)
	writeCtrl(t, v, 0x4100)
	writeCtrl(t, v, 0x0000)
	writeData(t, v, 0x1234)
	test.Equate(t, v.VramData()[0x100], 0x12)
}

func TestVramCopyRejected(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	writeCtrl(t, v, 0x8114) // mode2: dma enabled
	writeCtrl(t, v, 0x97c0) // dma type: VRAM copy

	writeCtrl(t, v, 0x4000)
	err := memory.WriteWord(v, ctrlPort, 0x0080)
	test.ExpectedSuccess(t, curated.Is(err, memory.InvalidWrite))
}

func TestStateDumpRoundTrip(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	writeCtrl(t, v, 0x8f02)
	writeCtrl(t, v, 0x8230)
	writeCtrl(t, v, 0x9011)
	writeCtrl(t, v, 0x4100)
	writeCtrl(t, v, 0x0000)
	writeData(t, v, 0xcafe)

	state := v.DumpState()
	test.Equate(t, len(state), vdp.DumpStateSize)

	restored := vdp.NewVDP(memory.NewBus())
	test.ExpectedSuccess(t, restored.ApplyState(state))

	// derived state is rebuilt from the register replay
	test.Equate(t, restored.PlaneATableAddress(), uint32(0xc000))
	w, h := restored.PlaneSize()
	test.Equate(t, w, 64)
	test.Equate(t, h, 64)

	// RAM images are copied verbatim
	test.Equate(t, restored.VramData()[0x100], 0xca)
	test.Equate(t, restored.VramData()[0x101], 0xfe)
}

func TestColors(t *testing.T) {
	v, _, _ := makeTestVDP(t)

	writeCtrl(t, v, 0x8f02)

	// CRAM entry 0: blue 7, green 2, red 1 in even-value channels
	writeCtrl(t, v, 0xc000)
	writeCtrl(t, v, 0x0000)
	writeData(t, v, 0x0e42)

	r, g, b := v.Color(0, 0)
	test.Equate(t, b, 255)
	test.Equate(t, g, 87)
	test.Equate(t, r, 52)
}

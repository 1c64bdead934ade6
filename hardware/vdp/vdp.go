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

package vdp

import (
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/logger"
)

// the VDP's address window on the 68000 bus.
const (
	OriginVDP = 0xc00000
	MemtopVDP = 0xc0000e
)

// port offsets within the window. each port is mirrored once.
const (
	addrData1 = 0xc00000
	addrData2 = 0xc00002
	addrCtrl1 = 0xc00004
	addrCtrl2 = 0xc00006

	addrHVCounter1 = 0xc00008
	addrHVCounter4 = 0xc0000e
)

// sizes of the three internal RAMs.
const (
	VramSize  = 65536
	VsramSize = 80
	CramSize  = 128
)

// RAMKind selects which of the three internal RAMs the data port works on.
type RAMKind int

// The three internal RAMs.
const (
	KindVram RAMKind = iota
	KindVsram
	KindCram
)

func (k RAMKind) String() string {
	switch k {
	case KindVram:
		return "vram"
	case KindVsram:
		return "vsram"
	case KindCram:
		return "cram"
	}
	return "?"
}

// DMAType is the operation performed when an address command arrives with
// the DMA bit set.
type DMAType int

// The three DMA operations, selected by the top bits of the DMA source
// high register.
const (
	DMAMemoryToVram DMAType = iota
	DMAVramFill
	DMAVramCopy
)

// ScrollMode values for the horizontal scroll mode field of mode register 3.
const (
	HScrollFull      = 0
	HScrollInvalid   = 1
	HScrollEveryTile = 2
	HScrollEveryLine = 3
)

// Vertical scroll modes.
const (
	VScrollFull         = 0
	VScrollEveryTwoTile = 1
)

// VDP is the video display processor. It implements the memory.Peripheral
// interface; all interaction from the emulated program goes through the
// data and control ports.
//
// The bus reference is the enclosing console bus, used as the source for
// memory-to-VRAM DMA. The DMA source window must not map back to the VDP
// itself.
type VDP struct {
	bus memory.Peripheral

	// register mirror, indexed from register 0x80
	registers [registerCount]uint8

	// the three internal RAMs
	vram  []uint8
	vsram []uint8
	cram  []uint8

	// the two-step command port. a pending first word, the current RAM
	// address and the selected RAM
	pendingFirst    uint16
	hasPendingFirst bool
	ramAddress      uint32
	ramKind         RAMKind
	useDMA          bool

	// derived state, rebuilt on every register write
	vblankInterruptEnabled bool
	dmaEnabled             bool
	dmaLengthWords         uint32
	dmaSourceWords         uint32
	dmaType                DMAType
	autoIncrement          uint8

	tileWidth  int
	tileHeight int

	planeATableAddress  uint32
	planeBTableAddress  uint32
	windowTableAddress  uint32
	spriteTableAddress  uint32
	hscrollTableAddress uint32

	planeWidth  int
	planeHeight int

	horizontalScrollMode int
	verticalScrollMode   int

	backgroundColorPalette int
	backgroundColorIndex   int

	windowXSplit         int
	windowDisplayToRight bool
	windowYSplit         int
	windowDisplayBelow   bool
}

// NewVDP is the preferred method of initialisation for the VDP type. The
// bus argument is the console bus the DMA engine reads through.
func NewVDP(bus memory.Peripheral) *VDP {
	return &VDP{
		bus:   bus,
		vram:  make([]uint8, VramSize),
		vsram: make([]uint8, VsramSize),
		cram:  make([]uint8, CramSize),
	}
}

func (v *VDP) ramData() []uint8 {
	switch v.ramKind {
	case KindVsram:
		return v.vsram
	case KindCram:
		return v.cram
	}
	return v.vram
}

// Read implements the memory.Peripheral interface.
func (v *VDP) Read(addr uint32, data []byte) error {
	// a single-byte read addresses the low byte of the port word
	if len(data) == 1 {
		addr--
	}

	for i := 0; i < len(data); i += 2 {
		switch addr + uint32(i) {
		case addrData1, addrData2:
			ram := v.ramData()
			if int(v.ramAddress) >= len(ram) {
				return curated.Errorf(memory.InvalidRead,
					curated.Errorf("vdp: %s address out of range: %04x", v.ramKind, v.ramAddress))
			}
			data[i] = ram[v.ramAddress]
			v.ramAddress++
			if len(data) > 1 {
				data[i+1] = ram[v.ramAddress]
				v.ramAddress++
			}

		case addrCtrl1, addrCtrl2:
			status := v.statusBits()
			if len(data) == 1 {
				data[i] = uint8(status)
			} else {
				data[i] = uint8(status >> 8)
				data[i+1] = uint8(status)
			}

		default:
			a := addr + uint32(i)
			if a < addrHVCounter1-1 || a > addrHVCounter4 {
				return curated.Errorf(memory.InvalidRead,
					curated.Errorf("vdp: address %06x size %d", addr, len(data)))
			}

			// the HV counter is not modelled
			data[i] = 0
			if len(data) > 1 {
				data[i+1] = 0
			}
		}
	}

	return nil
}

// Write implements the memory.Peripheral interface.
func (v *VDP) Write(addr uint32, data []byte) error {
	for i := 0; i < len(data); i += 2 {
		var word uint16
		if i+1 < len(data) {
			word = uint16(data[i])<<8 | uint16(data[i+1])
		} else {
			word = uint16(data[i])
		}

		switch addr + uint32(i) {
		case addrData1, addrData2:
			if err := v.writeDataPort(word); err != nil {
				return err
			}
		case addrCtrl1, addrCtrl2:
			if err := v.writeControlPort(word); err != nil {
				return err
			}
		default:
			return curated.Errorf(memory.InvalidWrite,
				curated.Errorf("vdp: address %06x size %d", addr, len(data)))
		}
	}

	return nil
}

// writeDataPort stores a word in the selected RAM at the current address,
// or performs a VRAM fill when one is armed.
func (v *VDP) writeDataPort(word uint16) error {
	if v.useDMA && v.dmaType != DMAVramFill {
		return curated.Errorf(memory.InvalidWrite,
			curated.Errorf("vdp: data port write with %d DMA armed", v.dmaType))
	}

	if v.useDMA {
		return v.vramFill(word)
	}

	ram := v.ramData()
	if int(v.ramAddress)+1 < len(ram) {
		ram[v.ramAddress] = uint8(word >> 8)
		ram[v.ramAddress+1] = uint8(word)
	}
	v.ramAddress += uint32(v.autoIncrement)
	return nil
}

// writeControlPort handles register writes and the two-word address
// command.
func (v *VDP) writeControlPort(word uint16) error {
	// a register write when the three high bits are 100
	if word&0xe000 == 0x8000 {
		return v.writeRegister(word)
	}

	if !v.hasPendingFirst {
		v.pendingFirst = word
		v.hasPendingFirst = true
		return nil
	}

	command := uint32(v.pendingFirst)<<16 | uint32(word)

	v.ramAddress = command>>16&0x3fff | command&0x3<<14

	cd0 := command >> 30 & 1
	cd1 := command >> 31 & 1
	cd2 := command >> 4 & 1
	cd3 := command >> 5 & 1
	cd5 := command >> 7 & 1

	v.useDMA = cd5 == 1 && v.dmaEnabled

	cdMask := cd3<<3 | cd2<<2 | cd1<<1 | cd0
	switch cdMask {
	case 0b0001, 0b0000: // write, read
		v.ramKind = KindVram
	case 0b0011, 0b1000:
		v.ramKind = KindCram
	case 0b0101, 0b0100:
		v.ramKind = KindVsram
	default:
		return curated.Errorf(memory.InvalidWrite,
			curated.Errorf("vdp: address command cd mask: %08x", command))
	}

	logger.Logf("vdp", "ram address: %04x kind: %s dma: %v", v.ramAddress, v.ramKind, v.useDMA)

	if v.useDMA {
		switch v.dmaType {
		case DMAVramCopy:
			return curated.Errorf(memory.InvalidWrite,
				curated.Errorf("vdp: VRAM copy DMA is not supported: %08x", command))
		case DMAMemoryToVram:
			if err := v.memoryToVram(); err != nil {
				return err
			}
		}
	}

	v.hasPendingFirst = false
	return nil
}

// statusBits is the constant status register of this model: in vblank, no
// DMA busy, even frame, FIFO neither full nor empty, NTSC.
func (v *VDP) statusBits() uint16 {
	return 0x0008
}

// accessors for the derived state

// VblankInterruptEnabled returns the vblank interrupt enable bit of mode
// register 2.
func (v *VDP) VblankInterruptEnabled() bool {
	return v.vblankInterruptEnabled
}

// TileWidth returns the horizontal resolution in tiles.
func (v *VDP) TileWidth() int {
	return v.tileWidth
}

// TileHeight returns the vertical resolution in tiles.
func (v *VDP) TileHeight() int {
	return v.tileHeight
}

// PlaneATableAddress returns the VRAM address of the plane A name table.
func (v *VDP) PlaneATableAddress() uint32 {
	return v.planeATableAddress
}

// PlaneBTableAddress returns the VRAM address of the plane B name table.
func (v *VDP) PlaneBTableAddress() uint32 {
	return v.planeBTableAddress
}

// WindowTableAddress returns the VRAM address of the window name table.
func (v *VDP) WindowTableAddress() uint32 {
	return v.windowTableAddress
}

// SpriteTableAddress returns the VRAM address of the sprite table.
func (v *VDP) SpriteTableAddress() uint32 {
	return v.spriteTableAddress
}

// HscrollTableAddress returns the VRAM address of the horizontal scroll
// table.
func (v *VDP) HscrollTableAddress() uint32 {
	return v.hscrollTableAddress
}

// PlaneSize returns the plane dimensions in tiles.
func (v *VDP) PlaneSize() (width int, height int) {
	return v.planeWidth, v.planeHeight
}

// ScrollModes returns the horizontal and vertical scroll modes of mode
// register 3.
func (v *VDP) ScrollModes() (horizontal int, vertical int) {
	return v.horizontalScrollMode, v.verticalScrollMode
}

// BackgroundColor returns the palette and index of the background color.
func (v *VDP) BackgroundColor() (palette int, index int) {
	return v.backgroundColorPalette, v.backgroundColorIndex
}

// WindowSplit returns the window division parameters.
func (v *VDP) WindowSplit() (xSplit int, displayToRight bool, ySplit int, displayBelow bool) {
	return v.windowXSplit, v.windowDisplayToRight, v.windowYSplit, v.windowDisplayBelow
}

// VramData returns a read-only view of the video RAM.
func (v *VDP) VramData() []uint8 {
	return v.vram
}

// VsramData returns a read-only view of the vertical scroll RAM.
func (v *VDP) VsramData() []uint8 {
	return v.vsram
}

// CramData returns a read-only view of the color RAM.
func (v *VDP) CramData() []uint8 {
	return v.cram
}

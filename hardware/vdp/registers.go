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

// the byte-addressed register space of the control port.
const (
	regModeSet1            = 0x80
	regModeSet2            = 0x81
	regPlaneATableAddress  = 0x82
	regWindowTableAddress  = 0x83
	regPlaneBTableAddress  = 0x84
	regSpriteTableAddress  = 0x85
	regUnused86            = 0x86
	regBackgroundColor     = 0x87
	regUnused88            = 0x88
	regUnused89            = 0x89
	regHblankInterruptRate = 0x8a
	regModeSet3            = 0x8b
	regModeSet4            = 0x8c
	regHscrollTableAddress = 0x8d
	regUnused8E            = 0x8e
	regAutoIncrement       = 0x8f
	regPlaneSize           = 0x90
	regWindowXDivision     = 0x91
	regWindowYDivision     = 0x92
	regDmaLengthLow        = 0x93
	regDmaLengthHigh       = 0x94
	regDmaSourceLow        = 0x95
	regDmaSourceMiddle     = 0x96
	regDmaSourceHigh       = 0x97

	regFirst = regModeSet1
	regLast  = regDmaSourceHigh

	registerCount = regLast - regFirst + 1
)

// the table base registers scale their value by a fixed amount.
const (
	spriteAddressScale  = 0x200
	hscrollAddressScale = 0x400
	windowAddressScale  = 0x800
	planeAddressScale   = 0x2000
)

// writeRegister dispatches a control port register write, updating both the
// register mirror and the derived state.
func (v *VDP) writeRegister(word uint16) error {
	reg := uint8(word >> 8)
	value := uint8(word)

	switch reg {
	case regModeSet1:
		// hblank interrupts are not modelled; of interest in the log only
		logger.Logf("vdp", "mode1: hblank interrupt enable: %v", value&0x10 != 0)

	case regModeSet2:
		v.dmaEnabled = value&0x10 != 0
		v.vblankInterruptEnabled = value&0x20 != 0
		if value&0x08 != 0 {
			v.tileHeight = 30
		} else {
			v.tileHeight = 28
		}
		logger.Logf("vdp", "mode2: dma: %v vblank interrupt: %v height: %d tiles",
			v.dmaEnabled, v.vblankInterruptEnabled, v.tileHeight)

	case regPlaneATableAddress:
		v.planeATableAddress = uint32(value>>3&0x0f) * planeAddressScale
		logger.Logf("vdp", "plane A table address: %04x", v.planeATableAddress)

	case regWindowTableAddress:
		v.windowTableAddress = uint32(value>>1&0x3f) * windowAddressScale
		logger.Logf("vdp", "window table address: %04x", v.windowTableAddress)

	case regPlaneBTableAddress:
		v.planeBTableAddress = uint32(value&0x0f) * planeAddressScale
		logger.Logf("vdp", "plane B table address: %04x", v.planeBTableAddress)

	case regSpriteTableAddress:
		v.spriteTableAddress = uint32(value) * spriteAddressScale
		logger.Logf("vdp", "sprite table address: %04x", v.spriteTableAddress)

	case regBackgroundColor:
		v.backgroundColorIndex = int(value & 0x0f)
		v.backgroundColorPalette = int(value >> 4 & 0x03)
		logger.Logf("vdp", "background color palette: %d index: %d",
			v.backgroundColorPalette, v.backgroundColorIndex)

	case regHblankInterruptRate:
		logger.Logf("vdp", "hblank interrupt rate: %d", value)

	case regModeSet3:
		v.horizontalScrollMode = int(value & 0x03)
		v.verticalScrollMode = int(value >> 2 & 0x01)
		logger.Logf("vdp", "mode3: hscroll mode: %d vscroll mode: %d",
			v.horizontalScrollMode, v.verticalScrollMode)

	case regModeSet4:
		if value&0x01 != 0 {
			v.tileWidth = 40
		} else {
			v.tileWidth = 32
		}
		logger.Logf("vdp", "mode4: width: %d tiles", v.tileWidth)

	case regHscrollTableAddress:
		v.hscrollTableAddress = uint32(value&0x7f) * hscrollAddressScale
		logger.Logf("vdp", "hscroll table address: %04x", v.hscrollTableAddress)

	case regAutoIncrement:
		v.autoIncrement = value
		logger.Logf("vdp", "auto increment: %d", value)

	case regPlaneSize:
		v.planeWidth = planeSizeTiles(value & 0x03)
		v.planeHeight = planeSizeTiles(value >> 4 & 0x03)
		logger.Logf("vdp", "plane size: %dx%d tiles", v.planeWidth, v.planeHeight)

	case regWindowXDivision:
		v.windowXSplit = int(value&0x1f) * 16
		v.windowDisplayToRight = value&0x80 != 0
		logger.Logf("vdp", "window X split: %d right: %v", v.windowXSplit, v.windowDisplayToRight)

	case regWindowYDivision:
		v.windowYSplit = int(value&0x1f) * 8
		v.windowDisplayBelow = value&0x80 != 0
		logger.Logf("vdp", "window Y split: %d below: %v", v.windowYSplit, v.windowDisplayBelow)

	case regDmaLengthLow:
		v.dmaLengthWords = v.dmaLengthWords&0xff00 | uint32(value)

	case regDmaLengthHigh:
		v.dmaLengthWords = v.dmaLengthWords&0x00ff | uint32(value)<<8

	case regDmaSourceLow:
		v.dmaSourceWords = v.dmaSourceWords&0xffff00 | uint32(value)

	case regDmaSourceMiddle:
		v.dmaSourceWords = v.dmaSourceWords&0xff00ff | uint32(value)<<8

	case regDmaSourceHigh:
		v.dmaSourceWords = v.dmaSourceWords&0x00ffff | uint32(value&0x3f)<<16

		switch value >> 6 {
		case 0b00:
			v.dmaType = DMAMemoryToVram
		case 0b01:
			v.dmaType = DMAMemoryToVram
			v.dmaSourceWords |= 1 << 22
		case 0b10:
			v.dmaType = DMAVramFill
		case 0b11:
			v.dmaType = DMAVramCopy
		}
		logger.Logf("vdp", "dma source: %06x type: %d", v.dmaSourceWords, v.dmaType)

	case regUnused86, regUnused88, regUnused89, regUnused8E:
		// stored but without effect

	default:
		return curated.Errorf(memory.InvalidWrite,
			curated.Errorf("vdp: register command: %04x", word))
	}

	v.registers[reg-regFirst] = value
	return nil
}

func planeSizeTiles(field uint8) int {
	switch field {
	case 0b00:
		return 32
	case 0b01:
		return 64
	case 0b11:
		return 128
	}
	return 32
}

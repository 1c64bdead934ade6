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
	"github.com/jetsetilly/gopherdrive/logger"
)

// memoryToVram performs an armed memory-to-VRAM transfer immediately. The
// source data is pulled through the console bus; a DMA source range that
// maps back to the VDP is not defined and not checked for.
func (v *VDP) memoryToVram() error {
	sourceStart := v.dmaSourceWords << 1
	length := v.dmaLengthWords << 1

	logger.Logf("vdp", "dma %s source: %06x len: %04x dest: %04x inc: %d",
		v.ramKind, sourceStart, length, v.ramAddress, v.autoIncrement)

	ram := v.ramData()
	if v.autoIncrement == 2 {
		// the common case transfers the whole block with one bus read
		safeLength := length
		if remaining := uint32(len(ram)) - v.ramAddress; safeLength > remaining {
			safeLength = remaining
		}
		if err := v.bus.Read(sourceStart, ram[v.ramAddress:v.ramAddress+safeLength]); err != nil {
			return err
		}
		v.ramAddress += length
	} else {
		// transfer word by word, advancing the RAM address by the auto
		// increment amount after each word
		for i := uint32(0); i < v.dmaLengthWords; i++ {
			if int(v.ramAddress)+2 > len(ram) {
				break
			}
			if err := v.bus.Read(sourceStart+i*2, ram[v.ramAddress:v.ramAddress+2]); err != nil {
				return err
			}
			v.ramAddress += uint32(v.autoIncrement)
		}
	}

	v.useDMA = false
	return nil
}

// vramFill writes the low byte of the fill value through the selected RAM,
// advancing by the auto increment amount each time.
func (v *VDP) vramFill(value uint16) error {
	ram := v.ramData()
	length := v.dmaLengthWords << 1

	logger.Logf("vdp", "fill %s value: %04x begin: %06x len: %06x inc: %d",
		v.ramKind, value, v.ramAddress, length, v.autoIncrement)

	// the fill address runs on the opposite byte lane to the word write
	// that armed it
	if v.autoIncrement > 1 {
		if v.ramAddress%2 == 0 {
			v.ramAddress++
		} else {
			v.ramAddress--
		}
	}

	for i := uint32(0); i < length; i++ {
		if int(v.ramAddress) >= len(ram) {
			break
		}
		ram[v.ramAddress] = uint8(value)
		v.ramAddress += uint32(v.autoIncrement)
	}

	v.useDMA = false
	return nil
}

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

// Package cartridge loads a Mega Drive ROM image and exposes its 512-byte
// header: the 68000 vector table and the metadata block with its fixed
// width ASCII fields. The console wiring uses the vector table for the
// reset and vblank entry points and the metadata for the ROM's mapped
// address range.
package cartridge

import (
	"os"
	"strings"

	"github.com/jetsetilly/gopherdrive/curated"
)

// error patterns for cartridge loading.
const (
	ShortROM = "cartridge: image is %d bytes; shorter than the %d byte header"
)

// HeaderSize is the length of the ROM header: the vector table followed by
// the metadata block.
const HeaderSize = 512

// byte offsets into the header. all multi-byte fields are big-endian.
const (
	offResetSP  = 0x000
	offResetPC  = 0x004
	offHblankPC = 0x070
	offVblankPC = 0x078

	offSystemType    = 0x100
	offCopyright     = 0x110
	offDomesticTitle = 0x120
	offOverseasTitle = 0x150
	offSerialNumber  = 0x180
	offChecksum      = 0x18e
	offDeviceSupport = 0x190
	offROMBegin      = 0x1a0
	offROMEnd        = 0x1a4
	offRAMBegin      = 0x1a8
	offRAMEnd        = 0x1ac
	offRegion        = 0x1f0
)

// VectorTable is the interesting part of the 68000 exception table at the
// start of the ROM.
type VectorTable struct {
	ResetSP  uint32
	ResetPC  uint32
	HblankPC uint32
	VblankPC uint32
}

// Metadata is the descriptive block following the vector table.
type Metadata struct {
	SystemType    string
	Copyright     string
	DomesticTitle string
	OverseasTitle string
	SerialNumber  string
	Checksum      uint16
	DeviceSupport string

	ROMBegin uint32
	ROMEnd   uint32
	RAMBegin uint32
	RAMEnd   uint32

	Region string
}

// Cartridge is a loaded ROM image and its parsed header.
type Cartridge struct {
	Data     []uint8
	Vectors  VectorTable
	Metadata Metadata
}

// NewCartridge parses a ROM image already in memory.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data) < HeaderSize {
		return nil, curated.Errorf(ShortROM, len(data), HeaderSize)
	}

	long := func(off uint32) uint32 {
		return uint32(data[off])<<24 | uint32(data[off+1])<<16 | uint32(data[off+2])<<8 | uint32(data[off+3])
	}
	text := func(off uint32, length uint32) string {
		return strings.TrimRight(string(data[off:off+length]), " \x00")
	}

	cart := &Cartridge{
		Data: data,
		Vectors: VectorTable{
			ResetSP:  long(offResetSP),
			ResetPC:  long(offResetPC),
			HblankPC: long(offHblankPC),
			VblankPC: long(offVblankPC),
		},
		Metadata: Metadata{
			SystemType:    text(offSystemType, 16),
			Copyright:     text(offCopyright, 16),
			DomesticTitle: text(offDomesticTitle, 48),
			OverseasTitle: text(offOverseasTitle, 48),
			SerialNumber:  text(offSerialNumber, 14),
			Checksum:      uint16(data[offChecksum])<<8 | uint16(data[offChecksum+1]),
			DeviceSupport: text(offDeviceSupport, 16),
			ROMBegin:      long(offROMBegin),
			ROMEnd:        long(offROMEnd),
			RAMBegin:      long(offRAMBegin),
			RAMEnd:        long(offRAMEnd),
			Region:        text(offRegion, 3),
		},
	}

	return cart, nil
}

// Load reads and parses a ROM image from a file.
func Load(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}
	return NewCartridge(data)
}

// Title returns the overseas title, falling back to the domestic title.
func (cart *Cartridge) Title() string {
	if cart.Metadata.OverseasTitle != "" {
		return cart.Metadata.OverseasTitle
	}
	return cart.Metadata.DomesticTitle
}

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

package memory

// rom services reads against the cartridge image. reads past the end of the
// image return zero; the address decoding on a real cartridge simply doesn't
// drive the bus there.
type rom struct {
	data []uint8
}

// NewROM maps a cartridge image as a read-only peripheral. Writes to the
// returned peripheral are logged and discarded.
func NewROM(data []uint8) Peripheral {
	return ReadOnly{Reader: &rom{data: data}}
}

// Read implements the memory.Peripheral interface.
func (r *rom) Read(addr uint32, data []byte) error {
	for i := range data {
		o := addr + uint32(i)
		if o >= uint32(len(r.data)) {
			data[i] = 0
			continue
		}
		data[i] = r.data[o]
	}
	return nil
}

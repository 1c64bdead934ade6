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

import (
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/logger"
)

// error patterns for the memory system. the same patterns are raised by every
// peripheral on the bus so hosts can test for them with curated.Has()
// regardless of which peripheral raised them.
const (
	UnmappedRead   = "bus: unmapped read: address %06x size %d"
	UnmappedWrite  = "bus: unmapped write: address %06x size %d"
	ProtectedRead  = "memory: protected read: address %06x size %d"
	ProtectedWrite = "memory: protected write: address %06x size %d"
	InvalidRead    = "memory: invalid read: %v"
	InvalidWrite   = "memory: invalid write: %v"

	// reserved for peripherals that enforce bus alignment. no peripheral in
	// the standard console does but the patterns are part of the closed
	// taxonomy and third-party peripherals may raise them
	UnalignedRead  = "memory: unaligned read: address %06x"
	UnalignedWrite = "memory: unaligned write: address %06x"
)

// Reader is the read capability of a peripheral. Read fills data with
// len(data) bytes taken from the peripheral at addr, addr+1, etc.
type Reader interface {
	Read(addr uint32, data []byte) error
}

// Writer is the write capability of a peripheral. Write consumes the bytes
// in data symmetrically to Reader.
type Writer interface {
	Write(addr uint32, data []byte) error
}

// Peripheral is the contract between the bus and anything mapped onto it.
// Transfers of 1, 2 and 4 bytes must be supported; multi-byte values are
// big-endian on the wire (see ReadWord(), WriteLong(), etc.)
type Peripheral interface {
	Reader
	Writer
}

// ReadOnly adapts a Reader into a Peripheral whose writes succeed silently.
// Games routinely write to ROM; refusing the write would break them, so the
// event is logged and the data discarded.
type ReadOnly struct {
	Reader
}

// Write is a no-op. Implements the Peripheral interface.
func (r ReadOnly) Write(addr uint32, data []byte) error {
	logger.Logf("memory", "protected write: address %06x size %d", addr, len(data))
	return nil
}

// WriteOnly adapts a Writer into a Peripheral whose reads fail.
type WriteOnly struct {
	Writer
}

// Read always fails with ProtectedRead. Implements the Peripheral interface.
func (w WriteOnly) Read(addr uint32, data []byte) error {
	return curated.Errorf(ProtectedRead, addr, len(data))
}

// Dummy is a Peripheral with no capabilities at all. It is used as a
// placeholder where a bus target does not really exist.
type Dummy struct{}

// Read always fails. Implements the Peripheral interface.
func (d Dummy) Read(addr uint32, data []byte) error {
	return curated.Errorf(ProtectedRead, addr, len(data))
}

// Write always fails. Implements the Peripheral interface.
func (d Dummy) Write(addr uint32, data []byte) error {
	return curated.Errorf(ProtectedWrite, addr, len(data))
}

// the typed access functions below are the single place in the emulation
// where byte-order conversion happens. the 68000 is big-endian; the most
// significant byte lives at the lowest address.

// ReadByte reads a single byte from the peripheral.
func ReadByte(p Reader, addr uint32) (uint8, error) {
	var b [1]byte
	if err := p.Read(addr, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadWord reads a big-endian 16-bit value from the peripheral.
func ReadWord(p Reader, addr uint32) (uint16, error) {
	var b [2]byte
	if err := p.Read(addr, b[:]); err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// ReadLong reads a big-endian 32-bit value from the peripheral.
func ReadLong(p Reader, addr uint32) (uint32, error) {
	var b [4]byte
	if err := p.Read(addr, b[:]); err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// WriteByte writes a single byte to the peripheral.
func WriteByte(p Writer, addr uint32, value uint8) error {
	b := [1]byte{value}
	return p.Write(addr, b[:])
}

// WriteWord writes a 16-bit value to the peripheral in big-endian order.
func WriteWord(p Writer, addr uint32, value uint16) error {
	b := [2]byte{byte(value >> 8), byte(value)}
	return p.Write(addr, b[:])
}

// WriteLong writes a 32-bit value to the peripheral in big-endian order.
func WriteLong(p Writer, addr uint32, value uint32) error {
	b := [4]byte{byte(value >> 24), byte(value >> 16), byte(value >> 8), byte(value)}
	return p.Write(addr, b[:])
}

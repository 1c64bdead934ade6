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

package registers

import (
	"fmt"
	"strings"
)

// StatusRegister is the 16-bit status register of the 68000. The condition
// codes live in the low byte (the CCR); the system byte holds the interrupt
// mask, the supervisor flag and the trace bits.
//
// The register is stored unpacked. The bit layout is defined entirely by
// ToBits() and FromBits(); nothing else in the emulation is allowed to
// assume bit positions.
type StatusRegister struct {
	// condition code register (low byte)
	Carry    bool
	Overflow bool
	Zero     bool
	Negative bool
	Extend   bool

	// system byte
	InterruptMask uint8 // three bits
	Supervisor    bool
	Trace         uint8 // two bits

	// the master switch (bit 12) and the low trace bit (bit 14) are not
	// wired up on this CPU. FromBits() forces them to zero so they are not
	// represented here.
}

// bits 12 and 14 of the status register are unused by the hardware and are
// masked to zero on every write.
const statusWriteMask = 0xafff

// ToBits packs the status register into its 16-bit hardware representation.
func (sr StatusRegister) ToBits() uint16 {
	var v uint16

	if sr.Carry {
		v |= 0x0001
	}
	if sr.Overflow {
		v |= 0x0002
	}
	if sr.Zero {
		v |= 0x0004
	}
	if sr.Negative {
		v |= 0x0008
	}
	if sr.Extend {
		v |= 0x0010
	}

	v |= uint16(sr.InterruptMask&0x07) << 8
	if sr.Supervisor {
		v |= 0x2000
	}
	v |= uint16(sr.Trace&0x03) << 14

	return v & statusWriteMask
}

// FromBits unpacks a 16-bit value into the status register, applying the
// hardware write mask.
func (sr *StatusRegister) FromBits(v uint16) {
	v &= statusWriteMask

	sr.Carry = v&0x0001 != 0
	sr.Overflow = v&0x0002 != 0
	sr.Zero = v&0x0004 != 0
	sr.Negative = v&0x0008 != 0
	sr.Extend = v&0x0010 != 0

	sr.InterruptMask = uint8(v>>8) & 0x07
	sr.Supervisor = v&0x2000 != 0
	sr.Trace = uint8(v>>14) & 0x03
}

// CCR returns the condition code register, the low byte of the status
// register.
func (sr StatusRegister) CCR() uint8 {
	return uint8(sr.ToBits())
}

// SetCCR replaces the condition code register, leaving the system byte
// untouched.
func (sr *StatusRegister) SetCCR(v uint8) {
	sr.FromBits(sr.ToBits()&0xff00 | uint16(v))
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Supervisor, 's')
	s.WriteString(fmt.Sprintf("%d", sr.InterruptMask))
	s.WriteRune(' ')
	flag(sr.Extend, 'x')
	flag(sr.Negative, 'n')
	flag(sr.Zero, 'z')
	flag(sr.Overflow, 'v')
	flag(sr.Carry, 'c')

	return s.String()
}

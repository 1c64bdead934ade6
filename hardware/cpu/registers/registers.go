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

// Package registers holds the programmer-visible state of the 68000: eight
// data registers, seven address registers, the two stack pointers, the
// program counter and the status register.
//
// A7 is not stored directly. It is an alias for whichever stack pointer the
// supervisor flag selects; AReg() and StackPtr() perform the aliasing.
package registers

import (
	"fmt"
	"strings"
)

// Registers is the full programmer-visible register file.
type Registers struct {
	// data registers D0-D7
	D [8]uint32

	// address registers A0-A6. A7 is the active stack pointer
	A [7]uint32

	// user and supervisor stack pointers
	USP uint32
	SSP uint32

	// program counter
	PC uint32

	// status register
	SR StatusRegister
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{}
}

// StackPtr returns a pointer to the active stack pointer: SSP when the
// supervisor flag is set, USP otherwise.
func (r *Registers) StackPtr() *uint32 {
	if r.SR.Supervisor {
		return &r.SSP
	}
	return &r.USP
}

// AReg returns a pointer to the numbered address register. Index 7 resolves
// to the active stack pointer.
func (r *Registers) AReg(idx int) *uint32 {
	if idx < 7 {
		return &r.A[idx]
	}
	return r.StackPtr()
}

// Snapshot creates a copy of the register file in its current state.
func (r *Registers) Snapshot() Registers {
	return *r
}

func (r *Registers) String() string {
	s := strings.Builder{}

	for i := range r.D {
		s.WriteString(fmt.Sprintf("D%d=%08x ", i, r.D[i]))
		if i == 3 {
			s.WriteString("\n")
		}
	}
	s.WriteString("\n")

	for i := range r.A {
		s.WriteString(fmt.Sprintf("A%d=%08x ", i, r.A[i]))
		if i == 3 {
			s.WriteString("\n")
		}
	}
	s.WriteString(fmt.Sprintf("A7=%08x\n", *r.StackPtr()))

	s.WriteString(fmt.Sprintf("USP=%08x SSP=%08x PC=%06x SR=%s", r.USP, r.SSP, r.PC, r.SR.String()))

	return s.String()
}

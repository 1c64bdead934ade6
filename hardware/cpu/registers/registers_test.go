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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestStackPointerAliasing(t *testing.T) {
	r := registers.NewRegisters()
	r.USP = 0x2000
	r.SSP = 0x3000

	test.Equate(t, *r.StackPtr(), uint32(0x2000))
	test.Equate(t, *r.AReg(7), uint32(0x2000))

	r.SR.Supervisor = true
	test.Equate(t, *r.StackPtr(), uint32(0x3000))
	test.Equate(t, *r.AReg(7), uint32(0x3000))

	// writing through A7 reaches the active stack pointer only
	*r.AReg(7) -= 4
	test.Equate(t, r.SSP, uint32(0x2ffc))
	test.Equate(t, r.USP, uint32(0x2000))

	// A0-A6 are plain registers
	*r.AReg(0) = 0x42
	test.Equate(t, r.A[0], uint32(0x42))
}

func TestStatusBits(t *testing.T) {
	var sr registers.StatusRegister

	sr.FromBits(0xffff)

	// bits 5-7, 11, 12 and 14 are never set
	test.Equate(t, sr.ToBits()&0b0101100011100000, 0)
	test.Equate(t, sr.ToBits(), 0xa71f)

	test.ExpectedSuccess(t, sr.Carry)
	test.ExpectedSuccess(t, sr.Overflow)
	test.ExpectedSuccess(t, sr.Zero)
	test.ExpectedSuccess(t, sr.Negative)
	test.ExpectedSuccess(t, sr.Extend)
	test.ExpectedSuccess(t, sr.Supervisor)
	test.Equate(t, sr.InterruptMask, uint8(7))
	test.Equate(t, sr.Trace, uint8(2))

	sr.FromBits(0x0000)
	test.Equate(t, sr.ToBits(), 0x0000)
	test.ExpectedFailure(t, sr.Supervisor)
}

func TestCCR(t *testing.T) {
	var sr registers.StatusRegister
	sr.FromBits(0x2700)

	sr.SetCCR(0x1f)
	test.Equate(t, sr.ToBits(), 0x271f)
	test.Equate(t, sr.CCR(), 0x1f)

	// the system byte is untouched by CCR writes
	sr.SetCCR(0x00)
	test.ExpectedSuccess(t, sr.Supervisor)
	test.Equate(t, sr.InterruptMask, uint8(7))
}

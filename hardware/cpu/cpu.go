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

package cpu

import (
	"github.com/jetsetilly/gopherdrive/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
)

// M68000 is the CPU at the heart of the Mega Drive. Register logic is
// implemented by the Registers type in the registers sub-package.
type M68000 struct {
	Reg *registers.Registers

	mem memory.Peripheral
}

// NewM68000 is the preferred method of initialisation for the M68000 type.
func NewM68000(mem memory.Peripheral) *M68000 {
	return &M68000{
		Reg: registers.NewRegisters(),
		mem: mem,
	}
}

// Context returns the decode/execute context for the CPU.
func (mc *M68000) Context() Context {
	return Context{Reg: mc.Reg, Bus: mc.mem}
}

// Reset seeds the stack pointer and program counter, the values the real
// chip fetches from the start of the vector table.
func (mc *M68000) Reset(sp uint32, pc uint32) {
	*mc.Reg = registers.Registers{}
	mc.Reg.USP = sp
	mc.Reg.PC = pc
}

// Decode parses the instruction at PC, leaving PC at the following
// instruction.
func (mc *M68000) Decode() (*Instruction, error) {
	return Decode(mc.Context())
}

// Step decodes and executes a single instruction.
func (mc *M68000) Step() error {
	ins, err := mc.Decode()
	if err != nil {
		return err
	}
	return ins.Execute(mc.Context())
}

func (mc *M68000) String() string {
	return mc.Reg.String()
}

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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/hardware/cpu"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
)

// a flat 64KB of RAM is enough memory to exercise every instruction
func newMockMem() *memory.RAM {
	return memory.NewRAM(0x0000, 0xffff)
}

func newTestCPU() (*cpu.M68000, *memory.RAM) {
	mem := newMockMem()
	mc := cpu.NewM68000(mem)
	return mc, mem
}

func putInstructions(t *testing.T, mem *memory.RAM, origin uint32, bytes ...uint8) uint32 {
	t.Helper()
	for i, b := range bytes {
		if err := memory.WriteByte(mem, origin+uint32(i), b); err != nil {
			t.Fatal(err)
		}
	}
	return origin + uint32(len(bytes))
}

func putLong(t *testing.T, mem *memory.RAM, addr uint32, value uint32) {
	t.Helper()
	if err := memory.WriteLong(mem, addr, value); err != nil {
		t.Fatal(err)
	}
}

func step(t *testing.T, mc *cpu.M68000) {
	t.Helper()
	if err := mc.Step(); err != nil {
		t.Fatal(err)
	}
}

func assertMem(t *testing.T, mem *memory.RAM, addr uint32, value uint8) {
	t.Helper()
	d, _ := memory.ReadByte(mem, addr)
	if d != value {
		t.Errorf("memory assertion failed (%02x  - wanted %02x at address %06x)", d, value, addr)
	}
}

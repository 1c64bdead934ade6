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

// Package cpu implements the Motorola 68000 found in the Mega Drive.
//
// The package is split along the same seam as the silicon: Decode() turns
// the word stream at PC into an Instruction value; Instruction.Execute()
// carries it out against a Context (register file plus bus). An Instruction
// is plain data in between - the disassembler renders the same value that
// the executor runs.
//
// Operand locations are described by the Target type, which knows how to
// compute an effective address and how to read and write itself, including
// the predecrement/postincrement bookkeeping of the (An)+ and -(An) modes.
//
// Emulated CPU exceptions (TRAP, CHK, divide by zero) are not Go errors;
// they push a stack frame and vector through the exception table like the
// real chip. Errors returned from Decode() and Execute() are emulator-level
// failures only: unknown opcodes, unaligned program counters and anything the bus
// reports.
package cpu

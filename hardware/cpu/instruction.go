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

// Context gathers the mutable state an instruction is decoded from and
// executed against. Decode and execute never touch anything outside of it,
// so tests can construct fresh contexts freely.
type Context struct {
	Reg *registers.Registers
	Bus memory.Peripheral
}

// Size of an operation in bytes.
type Size uint8

// The three operation sizes of the 68000.
const (
	SizeByte Size = 1
	SizeWord Size = 2
	SizeLong Size = 4
)

// Bits returns the width of the operation in bits.
func (s Size) Bits() uint {
	return uint(s) << 3
}

// Kind enumerates every instruction of the 68000.
type Kind uint8

// keep this list sorted
const (
	Abcd Kind = iota
	Add
	Adda
	Addi
	Addq
	Addx
	And
	Andi
	AndiToCCR
	AndiToSR
	Asl
	Asr
	Bcc
	Bchg
	Bclr
	Bset
	Bsr
	Btst
	Chk
	Clr
	Cmp
	Cmpa
	Cmpi
	Cmpm
	Dbcc
	Divs
	Divu
	Eor
	Eori
	EoriToCCR
	EoriToSR
	Exg
	Ext
	Jmp
	Jsr
	Lea
	Link
	Lsl
	Lsr
	Move
	MoveFromSR
	MoveFromUSP
	MoveToCCR
	MoveToSR
	MoveToUSP
	Movea
	Movem
	Movep
	Moveq
	Muls
	Mulu
	Nbcd
	Neg
	Negx
	Nop
	Not
	Or
	Ori
	OriToCCR
	OriToSR
	Pea
	Reset
	Rol
	Ror
	Roxl
	Roxr
	Rte
	Rtr
	Rts
	Sbcd
	Scc
	Sub
	Suba
	Subi
	Subq
	Subx
	Swap
	Tas
	Trap
	Trapv
	Tst
	Unlink
)

// Condition enumerates the sixteen condition codes tested by Bcc, DBcc and
// Scc.
type Condition uint8

// Condition codes in encoding order.
const (
	CondTrue Condition = iota
	CondFalse
	CondHigher
	CondLowerOrSame
	CondCarryClear
	CondCarrySet
	CondNotEqual
	CondEqual
	CondOverflowClear
	CondOverflowSet
	CondPlus
	CondMinus
	CondGreaterOrEqual
	CondLessThan
	CondGreaterThan
	CondLessOrEqual
)

// holds evaluates the condition against the current flags.
func (cond Condition) holds(sr *registers.StatusRegister) bool {
	switch cond {
	case CondTrue:
		return true
	case CondFalse:
		return false
	case CondHigher:
		return !sr.Carry && !sr.Zero
	case CondLowerOrSame:
		return sr.Carry || sr.Zero
	case CondCarryClear:
		return !sr.Carry
	case CondCarrySet:
		return sr.Carry
	case CondNotEqual:
		return !sr.Zero
	case CondEqual:
		return sr.Zero
	case CondOverflowClear:
		return !sr.Overflow
	case CondOverflowSet:
		return sr.Overflow
	case CondPlus:
		return !sr.Negative
	case CondMinus:
		return sr.Negative
	case CondGreaterOrEqual:
		return sr.Negative == sr.Overflow
	case CondLessThan:
		return sr.Negative != sr.Overflow
	case CondGreaterThan:
		return !sr.Zero && sr.Negative == sr.Overflow
	case CondLessOrEqual:
		return sr.Zero || sr.Negative != sr.Overflow
	}
	return false
}

// Instruction is one fully parameterised instruction, produced by Decode()
// and consumed by Execute(). The Data field is a scratch word whose meaning
// depends on the Kind: branch displacement, MOVEM register mask, TRAP
// vector, LINK offset, quick immediate, or the program counter cached at
// decode time for MOVE/MOVEA.
type Instruction struct {
	Kind Kind
	Size Size
	Cond Condition
	Src  Target
	Dst  Target
	Data uint32

	HasSrc bool
	HasDst bool
}

func (ins *Instruction) setSrc(t Target) {
	ins.Src = t
	ins.HasSrc = true
}

func (ins *Instruction) setDst(t Target) {
	ins.Dst = t
	ins.HasDst = true
}

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
	"math/bits"

	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
)

// error pattern returned when an instruction leaves the program counter at
// an odd address.
const UnalignedProgramCounter = "cpu: program counter set at %06x"

// the operation families that share the binary arithmetic/logic path.
type opType int

const (
	opAdd opType = iota
	opAnd
	opCmp
	opEor
	opOr
	opSub
)

func kindOpType(kind Kind) opType {
	switch kind {
	case Add, Adda, Addi, Addq, Addx:
		return opAdd
	case And, Andi, AndiToCCR, AndiToSR:
		return opAnd
	case Cmp, Cmpa, Cmpi, Cmpm:
		return opCmp
	case Eor, Eori, EoriToCCR, EoriToSR:
		return opEor
	case Or, Ori, OriToCCR, OriToSR:
		return opOr
	}
	return opSub
}

func binaryOp(typ opType, lhs uint64, rhs uint64) uint64 {
	switch typ {
	case opAdd:
		return lhs + rhs
	case opAnd:
		return lhs & rhs
	case opEor:
		return lhs ^ rhs
	case opOr:
		return lhs | rhs
	}
	// subtraction and comparison
	return rhs - lhs
}

// executor carries the per-instruction state: the postincrement bookkeeping
// and little else. It exists so that Execute() reads top to bottom without
// threading booleans through every case.
type executor struct {
	ins *Instruction
	ctx Context

	srcIncDone bool
	dstIncDone bool
}

// Execute carries out the instruction against the context, updating
// registers, flags and memory. Emulated CPU exceptions (TRAP, CHK, divide
// by zero) vector through the exception table and return nil; a non-nil
// return is an emulator-level failure.
func (ins *Instruction) Execute(ctx Context) error {
	e := &executor{ins: ins, ctx: ctx}

	if ins.HasSrc {
		ins.Src.SetIncOrDecCount(1)
		ins.Src.decremented = false
	}
	if ins.HasDst {
		ins.Dst.SetIncOrDecCount(1)
		ins.Dst.decremented = false
	}

	if err := e.run(); err != nil {
		return err
	}

	// apply any pending postincrement, once per operand
	e.incSrc()
	e.incDst()

	return nil
}

func (e *executor) incSrc() {
	if e.ins.HasSrc && !e.srcIncDone {
		e.ins.Src.TryIncrement(e.ctx)
	}
	e.srcIncDone = true
}

func (e *executor) incDst() {
	if e.ins.HasDst && !e.dstIncDone {
		e.ins.Dst.TryIncrement(e.ctx)
	}
	e.dstIncDone = true
}

func (e *executor) push32(value uint32) error {
	sp := e.ctx.Reg.StackPtr()
	*sp -= 4
	return memory.WriteLong(e.ctx.Bus, *sp, value)
}

func (e *executor) push16(value uint16) error {
	sp := e.ctx.Reg.StackPtr()
	*sp -= 2
	return memory.WriteWord(e.ctx.Bus, *sp, value)
}

func (e *executor) pop32() (uint32, error) {
	sp := e.ctx.Reg.StackPtr()
	v, err := memory.ReadLong(e.ctx.Bus, *sp)
	if err != nil {
		return 0, err
	}
	*sp += 4
	return v, nil
}

func (e *executor) pop16() (uint16, error) {
	sp := e.ctx.Reg.StackPtr()
	v, err := memory.ReadWord(e.ctx.Bus, *sp)
	if err != nil {
		return 0, err
	}
	*sp += 2
	return v, nil
}

// displacePC adds the branch displacement in the instruction's data word to
// PC. Word displacements are relative to the extension word, which decode
// has already consumed; backward offsets (and every offset when
// ignoreParsedWord is set) rewind PC over it.
func (e *executor) displacePC(ignoreParsedWord bool) error {
	pc := &e.ctx.Reg.PC
	if e.ins.Size == SizeByte {
		*pc += signExtendByte(uint8(e.ins.Data))
	} else {
		offset := int16(e.ins.Data)
		*pc += uint32(int32(offset))
		if offset < 0 || ignoreParsedWord {
			*pc -= 2
		}
	}
	if *pc&1 != 0 {
		return curated.Errorf(UnalignedProgramCounter, *pc)
	}
	return nil
}

// raiseException enters the numbered exception: supervisor mode, a stack
// frame of PC then SR, and a jump through the vector table.
func (e *executor) raiseException(vector uint32) error {
	e.ctx.Reg.SR.Supervisor = true
	if err := e.push32(e.ctx.Reg.PC); err != nil {
		return err
	}
	if err := e.push16(e.ctx.Reg.SR.ToBits()); err != nil {
		return err
	}

	pc, err := memory.ReadLong(e.ctx.Bus, vector*4)
	if err != nil {
		return err
	}
	e.ctx.Reg.PC = pc
	return nil
}

func (e *executor) run() error {
	ins := e.ins
	ctx := e.ctx
	sr := &ctx.Reg.SR

	switch ins.Kind {
	case Abcd:
		srcVal, err := ins.Src.ReadByte(ctx)
		if err != nil {
			return err
		}
		dstVal, err := ins.Dst.ReadByte(ctx)
		if err != nil {
			return err
		}

		var extend uint16
		if sr.Extend {
			extend = 1
		}

		binaryResult := uint16(srcVal) + uint16(dstVal) + extend

		carry := false
		lval := int(srcVal&0x0f) + int(dstVal&0x0f) + int(extend)
		if lval > 9 {
			carry = true
			lval -= 10
		}

		hval := int(srcVal>>4&0x0f) + int(dstVal>>4&0x0f)
		if carry {
			hval++
		}
		carry = false

		if lval >= 16 {
			lval -= 16
			hval++
		}

		if hval > 9 {
			carry = true
			hval -= 10
		}

		result := uint16(hval<<4+lval) & 0xff

		if err := ins.Dst.WriteByte(ctx, uint8(result)); err != nil {
			return err
		}
		sr.Negative = msb(uint64(result), SizeByte)
		sr.Carry = carry
		sr.Extend = carry
		sr.Overflow = ^binaryResult&result&0x80 != 0
		if result != 0 {
			sr.Zero = false
		}

	case Sbcd, Nbcd:
		var byte0, byte1 uint8
		if ins.Kind == Sbcd {
			srcVal, err := ins.Src.ReadByte(ctx)
			if err != nil {
				return err
			}
			dstVal, err := ins.Dst.ReadByte(ctx)
			if err != nil {
				return err
			}
			byte0 = dstVal
			byte1 = srcVal
		} else {
			dstVal, err := ins.Dst.ReadByte(ctx)
			if err != nil {
				return err
			}
			byte0 = 0
			byte1 = dstVal
		}

		var extend uint16
		if sr.Extend {
			extend = 1
		}

		binaryResult := uint16(byte0) - uint16(byte1) - extend

		carry := false
		lval := int(byte0&0x0f) - int(byte1&0x0f) - int(extend)
		if lval < 0 {
			carry = true
			lval += 10
		}

		hval := int(byte0>>4&0x0f) - int(byte1>>4&0x0f)
		if carry {
			hval--
		}
		carry = false

		if hval < 0 {
			carry = true
			hval += 10
		}

		if hval == 0 && lval < 0 {
			carry = true
		}

		result := uint16(hval<<4+lval) & 0xff

		if err := ins.Dst.WriteByte(ctx, uint8(result)); err != nil {
			return err
		}
		sr.Negative = msb(uint64(result), SizeByte)
		sr.Carry = carry
		sr.Extend = carry
		sr.Overflow = binaryResult&^result&0x80 != 0
		if result != 0 {
			sr.Zero = false
		}

	case Add, Addi, And, Andi, Cmp, Cmpi, Cmpm, Eor, Eori, Or, Ori, Sub, Subi:
		srcVal, err := ins.Src.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}
		e.incSrc()
		dstVal, err := ins.Dst.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}

		typ := kindOpType(ins.Kind)
		result := binaryOp(typ, srcVal, dstVal)
		if typ != opCmp {
			if err := ins.Dst.WriteSized(ctx, result, ins.Size); err != nil {
				return err
			}
		}

		carry := isCarry(result, ins.Size)
		if typ == opAdd || typ == opSub {
			sr.Extend = carry
		}
		sr.Negative = msb(result, ins.Size)
		sr.Zero = isZero(result, ins.Size)
		if typ == opAdd || typ == opSub || typ == opCmp {
			sr.Overflow = isOverflow(srcVal, dstVal, result, ins.Size, typ != opAdd)
			sr.Carry = carry
		} else {
			sr.Overflow = false
			sr.Carry = false
		}

	case Adda, Cmpa, Suba:
		typ := kindOpType(ins.Kind)

		var srcVal uint64
		if ins.Size == SizeWord {
			v, err := ins.Src.ReadWord(ctx)
			if err != nil {
				return err
			}
			srcVal = uint64(int64(int16(v)))
		} else {
			v, err := ins.Src.ReadLong(ctx)
			if err != nil {
				return err
			}
			srcVal = uint64(v)
		}
		dstVal, err := ins.Dst.ReadLong(ctx)
		if err != nil {
			return err
		}
		result := binaryOp(typ, srcVal, uint64(dstVal))

		if typ == opCmp {
			sr.Negative = msb(result, SizeLong)
			sr.Zero = isZero(result, SizeLong)
			sr.Overflow = isOverflow(srcVal, uint64(dstVal), result, SizeLong, true)
			sr.Carry = isCarry(result^srcVal, SizeLong)
		} else {
			if err := ins.Dst.WriteSized(ctx, result, SizeLong); err != nil {
				return err
			}
		}

	case Addq, Subq:
		typ := kindOpType(ins.Kind)
		srcVal := uint64(ins.Data)
		if srcVal == 0 {
			srcVal = 8
		}

		// address register destinations use the full register width and
		// leave the flags alone, whatever the stated size
		if ins.Dst.Kind == AddressRegister {
			dstVal, err := ins.Dst.ReadLong(ctx)
			if err != nil {
				return err
			}
			result := binaryOp(typ, srcVal, uint64(dstVal))
			return ins.Dst.WriteSized(ctx, result, SizeLong)
		}

		dstVal, err := ins.Dst.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}
		result := binaryOp(typ, srcVal, dstVal)
		if err := ins.Dst.WriteSized(ctx, result, ins.Size); err != nil {
			return err
		}

		carry := isCarry(result, ins.Size)
		sr.Negative = msb(result, ins.Size)
		sr.Carry = carry
		sr.Extend = carry
		sr.Overflow = isOverflow(srcVal, dstVal, result, ins.Size, typ != opAdd)
		sr.Zero = isZero(result, ins.Size)

	case Addx, Subx:
		typ := kindOpType(ins.Kind)
		srcVal, err := ins.Src.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}
		dstVal, err := ins.Dst.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}

		var extend uint64
		if sr.Extend {
			extend = 1
		}
		result := binaryOp(typ, srcVal+extend, dstVal)
		if err := ins.Dst.WriteSized(ctx, result, ins.Size); err != nil {
			return err
		}

		carry := isCarry(result, ins.Size)
		sr.Negative = msb(result, ins.Size)
		sr.Carry = carry
		sr.Extend = carry
		sr.Overflow = isOverflow(srcVal, dstVal, result, ins.Size, typ != opAdd)
		if !isZero(result, ins.Size) {
			sr.Zero = false
		}

	case AndiToCCR, EoriToCCR, OriToCCR:
		srcVal, err := ins.Src.ReadByte(ctx)
		if err != nil {
			return err
		}
		sr.SetCCR(uint8(binaryOp(kindOpType(ins.Kind), uint64(sr.CCR()), uint64(srcVal))))

	case MoveToCCR:
		srcVal, err := ins.Src.ReadWord(ctx)
		if err != nil {
			return err
		}
		sr.SetCCR(uint8(srcVal))

	case AndiToSR, EoriToSR, OriToSR:
		srcVal, err := ins.Src.ReadWord(ctx)
		if err != nil {
			return err
		}
		sr.FromBits(uint16(binaryOp(kindOpType(ins.Kind), uint64(sr.ToBits()), uint64(srcVal))))

	case MoveToSR:
		srcVal, err := ins.Src.ReadWord(ctx)
		if err != nil {
			return err
		}
		e.incSrc()
		sr.FromBits(srcVal)

	case MoveFromSR:
		if err := ins.Dst.WriteWord(ctx, sr.ToBits()); err != nil {
			return err
		}

	case MoveToUSP:
		srcVal, err := ins.Src.ReadLong(ctx)
		if err != nil {
			return err
		}
		ctx.Reg.USP = srcVal

	case MoveFromUSP:
		if err := ins.Dst.WriteLong(ctx, ctx.Reg.USP); err != nil {
			return err
		}

	case Asl, Asr, Lsl, Lsr, Rol, Ror, Roxl, Roxr:
		if err := e.shift(); err != nil {
			return err
		}

	case Bcc:
		if ins.Cond.holds(sr) {
			return e.displacePC(true)
		}

	case Dbcc:
		if !ins.Cond.holds(sr) {
			dstVal, err := ins.Dst.ReadWord(ctx)
			if err != nil {
				return err
			}
			counter := int16(dstVal) - 1
			if err := ins.Dst.WriteWord(ctx, uint16(counter)); err != nil {
				return err
			}
			if counter != -1 {
				// the displacement is relative to the extension word, not
				// the end of the instruction
				if int16(ins.Data) >= 0 {
					ctx.Reg.PC -= 2
				}
				return e.displacePC(false)
			}
		}

	case Scc:
		value := uint8(0x00)
		if ins.Cond.holds(sr) {
			value = 0xff
		}
		if err := ins.Dst.WriteByte(ctx, value); err != nil {
			return err
		}

	case Bsr:
		if err := e.push32(ctx.Reg.PC); err != nil {
			return err
		}
		return e.displacePC(true)

	case Jmp, Jsr:
		oldPC := ctx.Reg.PC
		ctx.Reg.PC = ins.Dst.EffectiveAddress(ctx)
		if ins.Kind == Jsr {
			if err := e.push32(oldPC); err != nil {
				return err
			}
		}
		if ctx.Reg.PC&1 != 0 {
			return curated.Errorf(UnalignedProgramCounter, ctx.Reg.PC)
		}

	case Lea:
		if err := ins.Dst.WriteLong(ctx, ins.Src.EffectiveAddress(ctx)); err != nil {
			return err
		}

	case Pea:
		if err := e.push32(ins.Src.EffectiveAddress(ctx)); err != nil {
			return err
		}

	case Bchg, Bclr, Bset, Btst:
		if err := e.bitOp(); err != nil {
			return err
		}

	case Clr, Neg, Negx, Not:
		if err := e.unary(); err != nil {
			return err
		}

	case Move:
		// the source operand is addressed relative to the program counter
		// cached at decode time, before the destination's extension words
		// were consumed
		tmp := ctx.Reg.PC
		ctx.Reg.PC = ins.Data
		srcVal, err := ins.Src.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}
		e.incSrc()
		ctx.Reg.PC = tmp

		if err := ins.Dst.WriteSized(ctx, srcVal, ins.Size); err != nil {
			return err
		}

		sr.Negative = msb(srcVal, ins.Size)
		sr.Zero = isZero(srcVal, ins.Size)
		sr.Overflow = false
		sr.Carry = false

	case Movea:
		tmp := ctx.Reg.PC
		ctx.Reg.PC = ins.Data

		var srcVal uint32
		if ins.Size == SizeWord {
			v, err := ins.Src.ReadWord(ctx)
			if err != nil {
				return err
			}
			srcVal = signExtendWord(v)
		} else {
			v, err := ins.Src.ReadLong(ctx)
			if err != nil {
				return err
			}
			srcVal = v
		}

		e.incSrc()
		ctx.Reg.PC = tmp

		if err := ins.Dst.WriteLong(ctx, srcVal); err != nil {
			return err
		}

	case Movep:
		if err := e.movep(); err != nil {
			return err
		}

	case Movem:
		if err := e.movem(); err != nil {
			return err
		}

	case Moveq:
		srcVal := signExtendByte(uint8(ins.Data))
		if err := ins.Dst.WriteLong(ctx, srcVal); err != nil {
			return err
		}

		sr.Negative = msb(uint64(srcVal), SizeLong)
		sr.Zero = isZero(uint64(srcVal), SizeLong)
		sr.Overflow = false
		sr.Carry = false

	case Swap:
		dstVal, err := ins.Dst.ReadLong(ctx)
		if err != nil {
			return err
		}
		val := dstVal>>16 | dstVal<<16
		if err := ins.Dst.WriteLong(ctx, val); err != nil {
			return err
		}

		sr.Negative = msb(uint64(val), SizeLong)
		sr.Zero = isZero(uint64(val), SizeLong)
		sr.Overflow = false
		sr.Carry = false

	case Tas:
		dstVal, err := ins.Dst.ReadByte(ctx)
		if err != nil {
			return err
		}
		if err := ins.Dst.WriteByte(ctx, dstVal|0x80); err != nil {
			return err
		}

		sr.Negative = msb(uint64(dstVal), SizeByte)
		sr.Zero = isZero(uint64(dstVal), SizeByte)
		sr.Overflow = false
		sr.Carry = false

	case Exg:
		srcVal, err := ins.Src.ReadLong(ctx)
		if err != nil {
			return err
		}
		dstVal, err := ins.Dst.ReadLong(ctx)
		if err != nil {
			return err
		}
		if err := ins.Dst.WriteLong(ctx, srcVal); err != nil {
			return err
		}
		if err := ins.Src.WriteLong(ctx, dstVal); err != nil {
			return err
		}

	case Ext:
		var val uint64
		if ins.Size == SizeWord {
			dstVal, err := ins.Dst.ReadWord(ctx)
			if err != nil {
				return err
			}
			val = uint64(uint16(int16(int8(dstVal))))
			if err := ins.Dst.WriteWord(ctx, uint16(val)); err != nil {
				return err
			}
		} else {
			dstVal, err := ins.Dst.ReadLong(ctx)
			if err != nil {
				return err
			}
			val = uint64(uint32(int32(int16(dstVal))))
			if err := ins.Dst.WriteLong(ctx, uint32(val)); err != nil {
				return err
			}
		}
		sr.Negative = msb(val, ins.Size)
		sr.Zero = isZero(val, ins.Size)
		sr.Overflow = false
		sr.Carry = false

	case Link:
		dstVal, err := ins.Dst.ReadLong(ctx)
		if err != nil {
			return err
		}
		sp := ctx.Reg.StackPtr()
		if ins.Dst.Index == 7 {
			// LINK A7 pushes the already-decremented stack pointer
			if err := e.push32(dstVal - 4); err != nil {
				return err
			}
		} else {
			if err := e.push32(dstVal); err != nil {
				return err
			}
		}

		if err := ins.Dst.WriteLong(ctx, *sp); err != nil {
			return err
		}
		*sp += signExtendWord(uint16(ins.Data))

	case Unlink:
		dstVal, err := ins.Dst.ReadLong(ctx)
		if err != nil {
			return err
		}
		*ctx.Reg.StackPtr() = dstVal
		value, err := e.pop32()
		if err != nil {
			return err
		}
		if err := ins.Dst.WriteLong(ctx, value); err != nil {
			return err
		}

	case Trap, Trapv:
		if ins.Kind == Trapv && !sr.Overflow {
			break
		}
		return e.raiseException(ins.Data)

	case Rte, Rtr, Rts:
		var newSR uint16
		if ins.Kind != Rts {
			var err error
			newSR, err = e.pop16()
			if err != nil {
				return err
			}
		}
		pc, err := e.pop32()
		if err != nil {
			return err
		}
		ctx.Reg.PC = pc

		if ins.Kind == Rte {
			sr.FromBits(newSR)
		} else if ins.Kind == Rtr {
			sr.SetCCR(uint8(newSR))
		}

		if ctx.Reg.PC&1 != 0 {
			return curated.Errorf(UnalignedProgramCounter, ctx.Reg.PC)
		}

	case Tst:
		srcVal, err := ins.Src.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}
		sr.Negative = msb(srcVal, ins.Size)
		sr.Zero = isZero(srcVal, ins.Size)
		sr.Overflow = false
		sr.Carry = false

	case Chk:
		srcVal, err := ins.Src.ReadWord(ctx)
		if err != nil {
			return err
		}
		dstVal, err := ins.Dst.ReadWord(ctx)
		if err != nil {
			return err
		}
		signedSrc := int16(srcVal)
		signedDst := int16(dstVal)
		if signedDst < 0 || signedDst > signedSrc {
			if err := e.raiseException(6); err != nil {
				return err
			}
			sr.Negative = signedDst < 0
		}
		sr.Zero = false
		sr.Overflow = false
		sr.Carry = false

	case Mulu, Muls:
		srcVal, err := ins.Src.ReadWord(ctx)
		if err != nil {
			return err
		}
		dstVal, err := ins.Dst.ReadWord(ctx)
		if err != nil {
			return err
		}

		var result uint32
		if ins.Kind == Mulu {
			result = uint32(srcVal) * uint32(dstVal)
		} else {
			result = uint32(int32(int16(srcVal)) * int32(int16(dstVal)))
		}

		if err := ins.Dst.WriteLong(ctx, result); err != nil {
			return err
		}

		sr.Negative = msb(uint64(result), SizeLong)
		sr.Carry = false
		sr.Overflow = false
		sr.Zero = result == 0

	case Divu, Divs:
		if err := e.divide(); err != nil {
			return err
		}

	case Nop, Reset:
		// RESET asserts an external reset line not modelled here
	}

	return nil
}

// the shift and rotate group. the count is an immediate 1-8, a data
// register modulo 64, or a fixed 1 for the memory form.
func (e *executor) shift() error {
	ins := e.ins
	ctx := e.ctx
	sr := &ctx.Reg.SR

	isArithmetic := ins.Kind == Asl || ins.Kind == Asr
	isRotate := ins.Kind == Rol || ins.Kind == Ror
	isExtendRotate := ins.Kind == Roxl || ins.Kind == Roxr
	isLeft := ins.Kind == Asl || ins.Kind == Lsl || ins.Kind == Rol || ins.Kind == Roxl

	dstVal, err := ins.Dst.ReadWidening(ctx, ins.Size)
	if err != nil {
		return err
	}

	var rotation uint
	if ins.HasSrc {
		srcVal, err := ins.Src.ReadWidening(ctx, ins.Size)
		if err != nil {
			return err
		}
		rotation = uint(srcVal % 64)
	} else {
		rotation = uint(ins.Data)
		if rotation == 0 {
			rotation = 8
		}
	}

	result := dstVal
	hasOverflow := false
	curMsb := msb(result, ins.Size)
	lastBitShifted := false

	for i := uint(0); i < rotation; i++ {
		if isLeft {
			lastBitShifted = msb(result, ins.Size)
			result <<= 1
			if isRotate {
				if lastBitShifted {
					result |= 1
				}
			} else if isExtendRotate {
				if sr.Extend {
					result |= 1
				}
				sr.Extend = lastBitShifted
				sr.Carry = lastBitShifted
			}
		} else {
			if i >= ins.Size.Bits() && isArithmetic {
				lastBitShifted = false
			} else {
				lastBitShifted = result&1 == 1
			}
			if isArithmetic {
				// preserve the most significant bit
				result = result>>1 | result&(1<<(ins.Size.Bits()-1))
			} else {
				result >>= 1
				if isRotate && lastBitShifted {
					result |= 1 << (ins.Size.Bits() - 1)
				}
				if isExtendRotate {
					if sr.Extend {
						result |= 1 << (ins.Size.Bits() - 1)
					}
					sr.Extend = lastBitShifted
				}
			}
		}
		newMsb := msb(result, ins.Size)
		if curMsb != newMsb {
			hasOverflow = true
		}
		curMsb = newMsb
	}

	if err := ins.Dst.WriteSized(ctx, result, ins.Size); err != nil {
		return err
	}

	sr.Negative = msb(result, ins.Size)
	sr.Zero = isZero(result, ins.Size)
	if isArithmetic {
		sr.Overflow = hasOverflow
	} else {
		sr.Overflow = false
	}
	if rotation == 0 {
		sr.Carry = false
		if isExtendRotate {
			sr.Carry = sr.Extend
		}
	} else {
		if !isRotate && !isExtendRotate {
			sr.Extend = lastBitShifted
		}
		sr.Carry = lastBitShifted
	}

	return nil
}

// the bit manipulation group. the bit number wraps at the register width
// for data registers and at the byte for memory.
func (e *executor) bitOp() error {
	ins := e.ins
	ctx := e.ctx
	sr := &ctx.Reg.SR

	srcVal, err := ins.Src.ReadByte(ctx)
	if err != nil {
		return err
	}
	bitNum := uint(srcVal)
	if ins.Dst.Kind == DataRegister {
		bitNum %= 32
	} else {
		bitNum %= 8
	}

	var val uint64
	if ins.Dst.Kind == DataRegister {
		v, err := ins.Dst.ReadLong(ctx)
		if err != nil {
			return err
		}
		val = uint64(v)
	} else {
		v, err := ins.Dst.ReadByte(ctx)
		if err != nil {
			return err
		}
		val = uint64(v)
	}

	mask := uint64(1) << bitNum
	newVal := val
	switch ins.Kind {
	case Bchg:
		newVal ^= mask
	case Bclr:
		newVal &^= mask
	case Bset:
		newVal |= mask
	}

	// Z reflects the value of the addressed bit before modification
	sr.Zero = val&mask == 0

	if newVal != val {
		if ins.Dst.Kind == DataRegister {
			if err := ins.Dst.WriteLong(ctx, uint32(newVal)); err != nil {
				return err
			}
		} else {
			if err := ins.Dst.WriteByte(ctx, uint8(newVal)); err != nil {
				return err
			}
		}
	}

	return nil
}

// the unary group: CLR, NOT, NEG and NEGX.
func (e *executor) unary() error {
	ins := e.ins
	ctx := e.ctx
	sr := &ctx.Reg.SR

	dstVal, err := ins.Dst.ReadWidening(ctx, ins.Size)
	if err != nil {
		return err
	}
	result := dstVal

	hasOverflow := false

	switch ins.Kind {
	case Clr:
		result = 0
	case Not:
		result = ^result
	case Neg, Negx:
		result = ^result

		if ins.Kind != Negx || !sr.Extend {
			// negating the most negative value of the size overflows
			mask0 := uint64(1)<<(ins.Size.Bits()-1) - 1
			mask1 := uint64(1)<<ins.Size.Bits() - 1
			if result&mask1 == mask0 {
				hasOverflow = true
			}
			result++
		}
	}

	if err := ins.Dst.WriteSized(ctx, result, ins.Size); err != nil {
		return err
	}

	sr.Negative = msb(result, ins.Size)
	curIsZero := isZero(result, ins.Size)
	if ins.Kind != Negx || !curIsZero {
		sr.Zero = curIsZero
	}
	if ins.Kind == Neg || ins.Kind == Negx {
		sr.Overflow = hasOverflow
		sr.Carry = isCarry(result, ins.Size)
		sr.Extend = sr.Carry
	} else {
		sr.Overflow = false
		sr.Carry = false
	}

	return nil
}

// MOVEP scatters a register over every other byte of memory, or gathers it
// back. An odd base address selects the low byte lane.
func (e *executor) movep() error {
	ins := e.ins
	ctx := e.ctx

	if ins.Dst.Kind == DataRegister {
		// memory to register
		addr := ins.Src.EffectiveAddress(ctx)
		isOdd := addr&1 == 1
		if isOdd {
			addr--
		}

		count := 2
		if ins.Size == SizeLong {
			count = 4
		}

		var result uint32
		for i := 0; i < count; i++ {
			w, err := memory.ReadWord(ctx.Bus, addr+uint32(i*2))
			if err != nil {
				return err
			}
			if isOdd {
				result = result<<8 | uint32(w&0xff)
			} else {
				result = result<<8 | uint32(w>>8)
			}
		}

		if ins.Size == SizeWord {
			return ins.Dst.WriteWord(ctx, uint16(result))
		}
		return ins.Dst.WriteLong(ctx, result)
	}

	// register to memory
	addr := ins.Dst.EffectiveAddress(ctx)
	isOdd := addr&1 == 1
	if isOdd {
		addr--
	}

	var reg uint32
	count := 2
	if ins.Size == SizeWord {
		v, err := ins.Src.ReadWord(ctx)
		if err != nil {
			return err
		}
		reg = uint32(v)
	} else {
		v, err := ins.Src.ReadLong(ctx)
		if err != nil {
			return err
		}
		reg = v
		count = 4
	}

	for i := 0; i < count; i++ {
		b := uint16(reg >> uint((count-1-i)*8) & 0xff)
		var w uint16
		if isOdd {
			w = b
		} else {
			w = b << 8
		}
		if err := memory.WriteWord(ctx.Bus, addr+uint32(i*2), w); err != nil {
			return err
		}
	}

	return nil
}

// MOVEM transfers the registers selected by the mask in the instruction's
// data word. The mask ordering is reversed for the predecrement form and
// the postincrement register itself is never written back.
func (e *executor) movem() error {
	ins := e.ins
	ctx := e.ctx

	hasBit := func(i int) bool {
		return ins.Data&(1<<uint(i)) != 0
	}

	getReg := func(i int) *uint32 {
		if i <= 7 {
			return &ctx.Reg.D[i]
		} else if i <= 14 {
			return &ctx.Reg.A[i-8]
		}
		return ctx.Reg.StackPtr()
	}

	regCount := bits.OnesCount32(ins.Data)

	if ins.HasSrc {
		// memory to registers
		ins.Src.SetIncOrDecCount(uint32(regCount))

		var data [64]byte
		if err := ins.Src.Read(ctx, data[:regCount*int(ins.Size)]); err != nil {
			return err
		}

		pos := 0
		for i := 0; i < 16; i++ {
			if !hasBit(i) {
				continue
			}

			// a corner case: don't write back to the postincrement register
			if i < 8 || ins.Src.Kind != AddressPostIncrement || i-8 != ins.Src.Index {
				if ins.Size == SizeWord {
					*getReg(i) = signExtendWord(uint16(data[pos])<<8 | uint16(data[pos+1]))
				} else {
					*getReg(i) = uint32(data[pos])<<24 | uint32(data[pos+1])<<16 | uint32(data[pos+2])<<8 | uint32(data[pos+3])
				}
			}
			pos += int(ins.Size)
		}

		return nil
	}

	// registers to memory
	var data [64]byte
	size := 0
	for i := 0; i < 16; i++ {
		has := hasBit(i)
		if ins.Dst.Kind == AddressPreDecrement {
			has = hasBit(15 - i)
		}
		if !has {
			continue
		}

		reg := *getReg(i)
		if ins.Size == SizeLong {
			data[size] = uint8(reg >> 24)
			data[size+1] = uint8(reg >> 16)
			size += 2
		}
		data[size] = uint8(reg >> 8)
		data[size+1] = uint8(reg)
		size += 2
	}

	ins.Dst.SetIncOrDecCount(uint32(regCount))
	return ins.Dst.Write(ctx, data[:size])
}

// DIVU and DIVS. A zero divisor vectors through exception 5; an overflowed
// quotient sets V and leaves the destination untouched.
func (e *executor) divide() error {
	ins := e.ins
	ctx := e.ctx
	sr := &ctx.Reg.SR

	srcVal, err := ins.Src.ReadWord(ctx)
	if err != nil {
		return err
	}
	dstVal, err := ins.Dst.ReadLong(ctx)
	if err != nil {
		return err
	}

	if srcVal == 0 {
		if err := e.raiseException(5); err != nil {
			return err
		}
		sr.Negative = false
		sr.Zero = false
		sr.Overflow = false
		sr.Carry = false
		return nil
	}

	var quotient, remainder uint32
	var overflow bool
	if ins.Kind == Divu {
		quotient = dstVal / uint32(srcVal)
		remainder = dstVal % uint32(srcVal)
		overflow = quotient > 0xffff
	} else {
		signedQuotient := int32(dstVal) / int32(int16(srcVal))
		overflow = signedQuotient != int32(int16(signedQuotient))
		quotient = uint32(signedQuotient)
		remainder = uint32(int32(dstVal) % int32(int16(srcVal)))
	}

	if overflow {
		sr.Overflow = true
	} else {
		result := remainder&0xffff<<16 | quotient&0xffff
		if err := ins.Dst.WriteLong(ctx, result); err != nil {
			return err
		}
		sr.Overflow = false
		sr.Negative = msb(uint64(quotient), SizeWord)
		sr.Zero = quotient == 0
	}
	sr.Carry = false

	return nil
}

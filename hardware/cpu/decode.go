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
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
)

// error patterns returned by Decode.
const (
	UnknownOpcode         = "cpu: unknown opcode: %04x"
	UnknownAddressingMode = "cpu: unknown addressing mode in word: %04x"
)

// match tests an opcode word against a bit pattern. The pattern is read
// most-significant bit first; '0' and '1' must match exactly, '.' matches
// either value, spaces are ignored.
func match(word uint16, pattern string) bool {
	var mask, value uint16
	for _, c := range pattern {
		switch c {
		case '0':
			mask = mask<<1 | 1
			value <<= 1
		case '1':
			mask = mask<<1 | 1
			value = value<<1 | 1
		case '.':
			mask <<= 1
			value <<= 1
		}
	}
	return word&mask == value
}

func bitsRange(word uint16, begin uint, length uint) uint16 {
	return (word >> begin) & (1<<length - 1)
}

func bitAt(word uint16, bit uint) bool {
	return bitsRange(word, bit, 1) == 1
}

// Decode reads one instruction from the word stream at PC, leaving PC at
// the following instruction. Nothing other than PC is mutated.
func Decode(ctx Context) (*Instruction, error) {
	readWord := func() (uint16, error) {
		w, err := memory.ReadWord(ctx.Bus, ctx.Reg.PC)
		if err != nil {
			return 0, err
		}
		ctx.Reg.PC += 2
		return w, nil
	}

	word, err := readWord()
	if err != nil {
		return nil, err
	}

	// operation size from bits 6-7. the encoding 0b11 is not a size; the
	// families that use this field treat it as an unknown opcode
	getSize0 := func() (Size, error) {
		switch bitsRange(word, 6, 2) {
		case 0:
			return SizeByte, nil
		case 1:
			return SizeWord, nil
		case 2:
			return SizeLong, nil
		}
		return 0, curated.Errorf(UnknownOpcode, word)
	}

	// parseTarget builds a Target from a 3-bit mode and 3-bit register
	// field, consuming extension words as needed
	parseTarget := func(size Size, modeBegin uint, indexBegin uint) (Target, error) {
		var tgt Target

		mode := bitsRange(word, modeBegin, 3)
		xn := int(bitsRange(word, indexBegin, 3))

		switch mode {
		case 0:
			tgt = Target{Kind: DataRegister, Index: xn}
		case 1:
			tgt = Target{Kind: AddressRegister, Index: xn}
		case 2:
			tgt = Target{Kind: AddressIndirect, Index: xn}
		case 3:
			tgt = Target{Kind: AddressPostIncrement, Index: xn, Size: size}
		case 4:
			tgt = Target{Kind: AddressPreDecrement, Index: xn, Size: size}
		case 5:
			ext, err := readWord()
			if err != nil {
				return tgt, err
			}
			tgt = Target{Kind: AddressDisplacement, Index: xn, Ext0: ext}
		case 6:
			ext, err := readWord()
			if err != nil {
				return tgt, err
			}
			tgt = Target{Kind: AddressIndex, Index: xn, Ext0: ext}
		case 7:
			switch xn {
			case 0:
				ext, err := readWord()
				if err != nil {
					return tgt, err
				}
				tgt = Target{Kind: AbsoluteShort, Ext0: ext}
			case 1:
				ext0, err := readWord()
				if err != nil {
					return tgt, err
				}
				ext1, err := readWord()
				if err != nil {
					return tgt, err
				}
				tgt = Target{Kind: AbsoluteLong, Ext0: ext0, Ext1: ext1}
			case 2:
				ext, err := readWord()
				if err != nil {
					return tgt, err
				}
				tgt = Target{Kind: PCDisplacement, Ext0: ext}
			case 3:
				ext, err := readWord()
				if err != nil {
					return tgt, err
				}
				tgt = Target{Kind: PCIndex, Ext0: ext}
			case 4:
				addr := ctx.Reg.PC
				if size == SizeByte {
					addr++
				}
				tgt = Target{Kind: Immediate, Address: addr}
				if size == SizeLong {
					ctx.Reg.PC += 4
				} else {
					ctx.Reg.PC += 2
				}
			default:
				return tgt, curated.Errorf(UnknownAddressingMode, word)
			}
		}

		return tgt, nil
	}

	// an immediate operand target for the ADDI/ANDI/etc and bit instruction
	// families. the operand is byte/word sized within a full extension word,
	// or two extension words for a long
	immediateTarget := func(size Size) Target {
		addr := ctx.Reg.PC
		if size == SizeByte {
			addr++
		}
		tgt := Target{Kind: Immediate, Address: addr}
		if size == SizeLong {
			ctx.Reg.PC += 4
		} else {
			ctx.Reg.PC += 2
		}
		return tgt
	}

	ins := &Instruction{}

	switch {
	case match(word, "0100 1110 0111 0000"):
		ins.Kind = Reset

	case match(word, "0100 1110 0111 0001"):
		ins.Kind = Nop

	case match(word, "0101 .... 1100 1..."):
		ext, err := readWord()
		if err != nil {
			return nil, err
		}
		ins.Kind = Dbcc
		ins.Cond = Condition(bitsRange(word, 8, 4))
		ins.Size = SizeWord
		ins.Data = uint32(ext)
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 0, 3)), Size: SizeWord})

	case match(word, "0101 .... 11.. ...."):
		dst, err := parseTarget(SizeByte, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Scc
		ins.Cond = Condition(bitsRange(word, 8, 4))
		ins.setDst(dst)

	case match(word, "0101 .... .... ...."):
		size, err := getSize0()
		if err != nil {
			return nil, err
		}
		dst, err := parseTarget(size, 3, 0)
		if err != nil {
			return nil, err
		}
		if bitAt(word, 8) {
			ins.Kind = Subq
		} else {
			ins.Kind = Addq
		}
		ins.Size = size
		ins.Data = uint32(bitsRange(word, 9, 3))
		ins.setDst(dst)

	case match(word, "1.00 ...1 0000 ...."):
		kind := DataRegister
		if bitAt(word, 3) {
			kind = AddressPreDecrement
		}
		if bitAt(word, 14) {
			ins.Kind = Abcd
		} else {
			ins.Kind = Sbcd
		}
		ins.Size = SizeByte
		ins.setSrc(Target{Kind: kind, Index: int(bitsRange(word, 0, 3)), Size: SizeByte})
		ins.setDst(Target{Kind: kind, Index: int(bitsRange(word, 9, 3)), Size: SizeByte})

	case match(word, "1.01 ...1 ..00 ....") && bitsRange(word, 6, 2) != 3:
		size, err := getSize0()
		if err != nil {
			return nil, err
		}
		kind := DataRegister
		if bitAt(word, 3) {
			kind = AddressPreDecrement
		}
		if bitAt(word, 14) {
			ins.Kind = Addx
		} else {
			ins.Kind = Subx
		}
		ins.Size = size
		ins.setSrc(Target{Kind: kind, Index: int(bitsRange(word, 0, 3)), Size: size})
		ins.setDst(Target{Kind: kind, Index: int(bitsRange(word, 9, 3)), Size: size})

	case match(word, "0110 .... .... ...."):
		cond := Condition(bitsRange(word, 8, 4))

		displacement := uint32(bitsRange(word, 0, 8))
		size := SizeByte
		if displacement == 0 {
			ext, err := readWord()
			if err != nil {
				return nil, err
			}
			displacement = uint32(ext)
			size = SizeWord
		}

		// the False condition is actually a BSR (branch to subroutine)
		if cond == CondFalse {
			ins.Kind = Bsr
		} else {
			ins.Kind = Bcc
			ins.Cond = cond
		}
		ins.Size = size
		ins.Data = displacement

	case match(word, "0100 1110 1... ...."):
		dst, err := parseTarget(SizeLong, 3, 0)
		if err != nil {
			return nil, err
		}
		if bitAt(word, 6) {
			ins.Kind = Jmp
		} else {
			ins.Kind = Jsr
		}
		ins.setDst(dst)

	case match(word, "0100 ...1 11.. ...."):
		src, err := parseTarget(SizeLong, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Lea
		ins.setSrc(src)
		ins.setDst(Target{Kind: AddressRegister, Index: int(bitsRange(word, 9, 3))})

	case match(word, "1011 ...1 ..00 1...") && bitsRange(word, 6, 2) != 3:
		size, err := getSize0()
		if err != nil {
			return nil, err
		}
		ins.Kind = Cmpm
		ins.Size = size
		ins.setSrc(Target{Kind: AddressPostIncrement, Index: int(bitsRange(word, 0, 3)), Size: size})
		ins.setDst(Target{Kind: AddressPostIncrement, Index: int(bitsRange(word, 9, 3)), Size: size})

	case match(word, "0100 1000 0100 0..."):
		ins.Kind = Swap
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 0, 3))})

	case match(word, "0100 1000 01.. ...."):
		src, err := parseTarget(SizeLong, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Pea
		ins.setSrc(src)

	case match(word, "0100 1010 11.. ...."):
		dst, err := parseTarget(SizeByte, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Tas
		ins.setDst(dst)

	case match(word, "1100 ...1 ..00 ....") && bitsRange(word, 6, 2) != 3:
		src := Target{Index: int(bitsRange(word, 9, 3))}
		dst := Target{Index: int(bitsRange(word, 0, 3))}
		switch bitsRange(word, 3, 5) {
		case 0b01000:
			src.Kind = DataRegister
			dst.Kind = DataRegister
		case 0b01001:
			src.Kind = AddressRegister
			dst.Kind = AddressRegister
		default:
			src.Kind = DataRegister
			dst.Kind = AddressRegister
		}
		ins.Kind = Exg
		ins.setSrc(src)
		ins.setDst(dst)

	case match(word, "0100 1000 1.00 0..."):
		ins.Kind = Ext
		if bitAt(word, 6) {
			ins.Size = SizeLong
		} else {
			ins.Size = SizeWord
		}
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 0, 3))})

	case match(word, "0100 1110 0101 0..."):
		ext, err := readWord()
		if err != nil {
			return nil, err
		}
		ins.Kind = Link
		ins.Data = uint32(ext)
		ins.setDst(Target{Kind: AddressRegister, Index: int(bitsRange(word, 0, 3))})

	case match(word, "0100 1110 0101 1..."):
		ins.Kind = Unlink
		ins.setDst(Target{Kind: AddressRegister, Index: int(bitsRange(word, 0, 3))})

	case match(word, "0100 1110 0100 ...."):
		// the sixteen TRAP vectors start at vector 32
		ins.Kind = Trap
		ins.Data = 32 + uint32(bitsRange(word, 0, 4))

	case match(word, "0100 1110 0111 0110"):
		ins.Kind = Trapv
		ins.Data = 7

	case match(word, "0100 1110 0111 0011"):
		ins.Kind = Rte

	case match(word, "0100 1110 0111 0101"):
		ins.Kind = Rts

	case match(word, "0100 1110 0111 0111"):
		ins.Kind = Rtr

	case match(word, "0100 1010 .... ...."):
		size, err := getSize0()
		if err != nil {
			return nil, err
		}
		src, err := parseTarget(size, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Tst
		ins.Size = size
		ins.setSrc(src)

	case match(word, "0100 ...1 10.. ...."):
		// note - the parsed target is the source; the register operand is
		// the value being checked
		src, err := parseTarget(SizeWord, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Chk
		ins.Size = SizeWord
		ins.setSrc(src)
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))})

	case match(word, "0100 1000 00.. ...."):
		dst, err := parseTarget(SizeByte, 3, 0)
		if err != nil {
			return nil, err
		}
		ins.Kind = Nbcd
		ins.Size = SizeByte
		ins.setDst(dst)

	case match(word, "1100 .... 11.. ...."):
		src, err := parseTarget(SizeWord, 3, 0)
		if err != nil {
			return nil, err
		}
		if bitAt(word, 8) {
			ins.Kind = Muls
		} else {
			ins.Kind = Mulu
		}
		ins.setSrc(src)
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))})

	case match(word, "1000 .... 11.. ...."):
		src, err := parseTarget(SizeWord, 3, 0)
		if err != nil {
			return nil, err
		}
		if bitAt(word, 8) {
			ins.Kind = Divs
		} else {
			ins.Kind = Divu
		}
		ins.setSrc(src)
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))})

	default:
		ok, err := decodeGrouped(ctx, ins, word, readWord, getSize0, parseTarget, immediateTarget)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, curated.Errorf(UnknownOpcode, word)
		}
	}

	return ins, nil
}

// the sub-variant fields of the two grouped binary families.
var immediateKinds = map[uint16]Kind{
	0: Ori, 1: Andi, 2: Subi, 3: Addi, 5: Eori, 6: Cmpi,
}

var binaryKinds = map[uint16]Kind{
	0: Or, 1: Sub, 3: Eor, 4: And, 5: Add,
}

// decodeGrouped handles the instruction families that share an encoding
// shape: status register operations, bit operations, the unary group, the
// shift/rotate group, the three binary groups and the many forms of MOVE.
// Returns false if the word matches none of them.
func decodeGrouped(ctx Context, ins *Instruction, word uint16,
	readWord func() (uint16, error),
	getSize0 func() (Size, error),
	parseTarget func(Size, uint, uint) (Target, error),
	immediateTarget func(Size) Target) (bool, error) {
	// [ORI|ANDI|EORI] to [CCR|SR]
	if match(word, "0000 ...0 0.11 1100") {
		var ccrKind, srKind Kind
		ok := true
		switch bitsRange(word, 9, 3) {
		case 0:
			ccrKind, srKind = OriToCCR, OriToSR
		case 1:
			ccrKind, srKind = AndiToCCR, AndiToSR
		case 5:
			ccrKind, srKind = EoriToCCR, EoriToSR
		default:
			ok = false
		}
		if ok {
			isWord := bitAt(word, 6)

			addr := ctx.Reg.PC
			if !isWord {
				addr++
			}
			ctx.Reg.PC += 2

			if isWord {
				ins.Kind = srKind
			} else {
				ins.Kind = ccrKind
			}
			ins.setSrc(Target{Kind: Immediate, Address: addr})
			return true, nil
		}
	}

	// BTST, BCHG, BCLR, BSET
	bitOp := func(kind Kind, registerPattern string, immediatePattern string) (bool, error) {
		if match(word, registerPattern) && bitsRange(word, 3, 3) != 1 {
			src := Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))}
			dst, err := parseTarget(SizeByte, 3, 0)
			if err != nil {
				return false, err
			}
			ins.Kind = kind
			ins.Size = SizeByte
			ins.setSrc(src)
			ins.setDst(dst)
			return true, nil
		}
		if match(word, immediatePattern) {
			src := immediateTarget(SizeByte)
			dst, err := parseTarget(SizeByte, 3, 0)
			if err != nil {
				return false, err
			}
			ins.Kind = kind
			ins.Size = SizeByte
			ins.setSrc(src)
			ins.setDst(dst)
			return true, nil
		}
		return false, nil
	}
	if ok, err := bitOp(Btst, "0000 ...1 00.. ....", "0000 1000 00.. ...."); ok || err != nil {
		return ok, err
	}
	if ok, err := bitOp(Bchg, "0000 ...1 01.. ....", "0000 1000 01.. ...."); ok || err != nil {
		return ok, err
	}
	if ok, err := bitOp(Bclr, "0000 ...1 10.. ....", "0000 1000 10.. ...."); ok || err != nil {
		return ok, err
	}
	if ok, err := bitOp(Bset, "0000 ...1 11.. ....", "0000 1000 11.. ...."); ok || err != nil {
		return ok, err
	}

	// NEGX, CLR, NEG, NOT
	unaryOp := func(kind Kind, pattern string) (bool, error) {
		if match(word, pattern) && bitsRange(word, 6, 2) != 3 {
			size, err := getSize0()
			if err != nil {
				return false, err
			}
			dst, err := parseTarget(size, 3, 0)
			if err != nil {
				return false, err
			}
			ins.Kind = kind
			ins.Size = size
			ins.setDst(dst)
			return true, nil
		}
		return false, nil
	}
	if ok, err := unaryOp(Negx, "0100 0000 .... ...."); ok || err != nil {
		return ok, err
	}
	if ok, err := unaryOp(Clr, "0100 0010 .... ...."); ok || err != nil {
		return ok, err
	}
	if ok, err := unaryOp(Neg, "0100 0100 .... ...."); ok || err != nil {
		return ok, err
	}
	if ok, err := unaryOp(Not, "0100 0110 .... ...."); ok || err != nil {
		return ok, err
	}

	// ASL, ASR, LSL, LSR, ROXL, ROXR, ROL, ROR
	shiftKinds := [4][2]Kind{
		{Asl, Asr},
		{Lsl, Lsr},
		{Roxl, Roxr},
		{Rol, Ror},
	}
	for idx, kinds := range shiftKinds {
		if match(word, "1110 0... 11.. ....") && bitsRange(word, 9, 2) == uint16(idx) {
			// operation on memory, shift by 1
			kind := kinds[1]
			if bitAt(word, 8) {
				kind = kinds[0]
			}
			dst, err := parseTarget(SizeWord, 3, 0)
			if err != nil {
				return false, err
			}
			ins.Kind = kind
			ins.Size = SizeWord
			ins.Data = 1
			ins.setDst(dst)
			return true, nil
		}
		if match(word, "1110 .... .... ....") && bitsRange(word, 3, 2) == uint16(idx) && bitsRange(word, 6, 2) != 3 {
			// operation on a data register
			size, err := getSize0()
			if err != nil {
				return false, err
			}
			kind := kinds[1]
			if bitAt(word, 8) {
				kind = kinds[0]
			}
			rotation := bitsRange(word, 9, 3)

			ins.Kind = kind
			ins.Size = size
			ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 0, 3))})
			if bitAt(word, 5) {
				// shift count is in a data register
				ins.setSrc(Target{Kind: DataRegister, Index: int(rotation)})
			} else {
				// shift count is immediate
				ins.Data = uint32(rotation)
			}
			return true, nil
		}
	}

	// SUBA, CMPA, ADDA
	addressKinds := [3]Kind{Suba, Cmpa, Adda}
	for idx, kind := range addressKinds {
		if match(word, "1..1 .... 11.. ....") && bitsRange(word, 13, 2) == uint16(idx) {
			size := SizeWord
			if bitAt(word, 8) {
				size = SizeLong
			}
			src, err := parseTarget(size, 3, 0)
			if err != nil {
				return false, err
			}
			ins.Kind = kind
			ins.Size = size
			ins.setSrc(src)
			ins.setDst(Target{Kind: AddressRegister, Index: int(bitsRange(word, 9, 3))})
			return true, nil
		}
	}

	// ORI, ANDI, SUBI, ADDI, EORI, CMPI
	if match(word, "0000 ...0 .... ....") {
		if kind, ok := immediateKinds[bitsRange(word, 9, 3)]; ok {
			size, err := getSize0()
			if err != nil {
				return false, err
			}
			src := immediateTarget(size)
			dst, err := parseTarget(size, 3, 0)
			if err != nil {
				return false, err
			}
			ins.Kind = kind
			ins.Size = size
			ins.setSrc(src)
			ins.setDst(dst)
			return true, nil
		}
	}

	// OR, SUB, EOR, AND, ADD; with the direction bit clear EOR's encoding
	// is CMP
	if match(word, "1... .... .... ....") {
		if kind, ok := binaryKinds[bitsRange(word, 12, 3)]; ok {
			size, err := getSize0()
			if err != nil {
				return false, err
			}
			src := Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))}
			dst, err := parseTarget(size, 3, 0)
			if err != nil {
				return false, err
			}
			if !bitAt(word, 8) {
				if kind == Eor {
					kind = Cmp
				}
				src, dst = dst, src
			}
			ins.Kind = kind
			ins.Size = size
			ins.setSrc(src)
			ins.setDst(dst)
			return true, nil
		}
	}

	return decodeMove(ctx, ins, word, readWord, parseTarget)
}

// decodeMove handles MOVE, MOVEA, MOVEP, MOVEM, MOVEQ and the status
// register and USP transfers.
func decodeMove(ctx Context, ins *Instruction, word uint16,
	readWord func() (uint16, error),
	parseTarget func(Size, uint, uint) (Target, error)) (bool, error) {
	// MOVE/MOVEA
	if match(word, "00.. .... .... ....") {
		var size Size
		switch bitsRange(word, 12, 2) {
		case 0b01:
			size = SizeByte
		case 0b11:
			size = SizeWord
		case 0b10:
			size = SizeLong
		}
		if size != 0 {
			src, err := parseTarget(size, 3, 0)
			if err != nil {
				return false, err
			}

			// remember the program counter position between the source and
			// destination extension words; the source operand is read
			// relative to it
			pc := ctx.Reg.PC

			// note - the destination mode and register fields are reversed
			dst, err := parseTarget(size, 6, 9)
			if err != nil {
				return false, err
			}

			if bitsRange(word, 6, 3) == 1 {
				ins.Kind = Movea
			} else {
				ins.Kind = Move
			}
			ins.Size = size
			ins.Data = pc
			ins.setSrc(src)
			ins.setDst(dst)
			return true, nil
		}
	}

	// MOVEP
	if match(word, "0000 ...1 ..00 1...") {
		size := SizeWord
		if bitAt(word, 6) {
			size = SizeLong
		}

		src := Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))}

		ext, err := readWord()
		if err != nil {
			return false, err
		}
		dst := Target{Kind: AddressDisplacement, Index: int(bitsRange(word, 0, 3)), Ext0: ext}

		// bit 7 is the direction: memory to register when clear
		if !bitAt(word, 7) {
			src, dst = dst, src
		}
		ins.Kind = Movep
		ins.Size = size
		ins.setSrc(src)
		ins.setDst(dst)
		return true, nil
	}

	// MOVEM
	if match(word, "0100 1.00 1... ....") {
		mask, err := readWord()
		if err != nil {
			return false, err
		}
		size := SizeWord
		if bitAt(word, 6) {
			size = SizeLong
		}
		tgt, err := parseTarget(size, 3, 0)
		if err != nil {
			return false, err
		}
		ins.Kind = Movem
		ins.Size = size
		ins.Data = uint32(mask)
		if bitAt(word, 10) {
			ins.setSrc(tgt)
		} else {
			ins.setDst(tgt)
		}
		return true, nil
	}

	// MOVEQ
	if match(word, "0111 ...0 .... ....") {
		ins.Kind = Moveq
		ins.Data = uint32(bitsRange(word, 0, 8))
		ins.setDst(Target{Kind: DataRegister, Index: int(bitsRange(word, 9, 3))})
		return true, nil
	}

	// MOVE to CCR / MOVE to SR
	if match(word, "0100 01.0 11.. ....") {
		src, err := parseTarget(SizeWord, 3, 0)
		if err != nil {
			return false, err
		}
		if bitAt(word, 9) {
			ins.Kind = MoveToSR
		} else {
			ins.Kind = MoveToCCR
		}
		ins.setSrc(src)
		return true, nil
	}

	// MOVE from SR
	if match(word, "0100 0000 11.. ....") {
		dst, err := parseTarget(SizeWord, 3, 0)
		if err != nil {
			return false, err
		}
		ins.Kind = MoveFromSR
		ins.setDst(dst)
		return true, nil
	}

	// MOVE to USP
	if match(word, "0100 1110 0110 0...") {
		ins.Kind = MoveToUSP
		ins.setSrc(Target{Kind: AddressRegister, Index: int(bitsRange(word, 0, 3))})
		return true, nil
	}

	// MOVE from USP
	if match(word, "0100 1110 0110 1...") {
		ins.Kind = MoveFromUSP
		ins.setDst(Target{Kind: AddressRegister, Index: int(bitsRange(word, 0, 3))})
		return true, nil
	}

	return false, nil
}

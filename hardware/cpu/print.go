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
	"fmt"
	"strings"
)

var condMnemonics = [16]string{
	"T", "F", "HI", "LS", "CC", "CS", "NE", "EQ",
	"VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE",
}

func (cond Condition) String() string {
	return condMnemonics[cond&0x0f]
}

func (s Size) suffix() string {
	switch s {
	case SizeByte:
		return ".b"
	case SizeWord:
		return ".w"
	case SizeLong:
		return ".l"
	}
	return ""
}

func (tgt Target) String() string {
	switch tgt.Kind {
	case DataRegister:
		return fmt.Sprintf("D%d", tgt.Index)
	case AddressRegister:
		return fmt.Sprintf("A%d", tgt.Index)
	case AddressIndirect:
		return fmt.Sprintf("(A%d)", tgt.Index)
	case AddressPostIncrement:
		return fmt.Sprintf("(A%d)+", tgt.Index)
	case AddressPreDecrement:
		return fmt.Sprintf("-(A%d)", tgt.Index)
	case AddressDisplacement:
		return fmt.Sprintf("$%04x(A%d)", tgt.Ext0, tgt.Index)
	case AddressIndex:
		return fmt.Sprintf("$%02x(A%d,%s)", uint8(tgt.Ext0), tgt.Index, indexRegister(tgt.Ext0))
	case PCDisplacement:
		return fmt.Sprintf("$%04x(PC)", tgt.Ext0)
	case PCIndex:
		return fmt.Sprintf("$%02x(PC,%s)", uint8(tgt.Ext0), indexRegister(tgt.Ext0))
	case AbsoluteShort:
		return fmt.Sprintf("($%04x).w", tgt.Ext0)
	case AbsoluteLong:
		return fmt.Sprintf("($%08x).l", uint32(tgt.Ext0)<<16|uint32(tgt.Ext1))
	case Immediate:
		return "#"
	}
	return "?"
}

func indexRegister(ext uint16) string {
	r := "D"
	if ext&0x8000 != 0 {
		r = "A"
	}
	s := ".w"
	if ext&0x0800 != 0 {
		s = ".l"
	}
	return fmt.Sprintf("%s%d%s", r, int(ext>>12)&0x07, s)
}

// String renders the instruction in assembler style. Operand values that
// live in the instruction stream rather than the Instruction itself (long
// immediates for example) render as a bare '#'.
func (ins Instruction) String() string {
	two := func(name string) string {
		return fmt.Sprintf("%s%s %s, %s", name, ins.Size.suffix(), ins.Src, ins.Dst)
	}
	one := func(name string, tgt Target) string {
		return fmt.Sprintf("%s%s %s", name, ins.Size.suffix(), tgt)
	}

	switch ins.Kind {
	case Abcd:
		return fmt.Sprintf("ABCD %s, %s", ins.Src, ins.Dst)
	case Sbcd:
		return fmt.Sprintf("SBCD %s, %s", ins.Src, ins.Dst)
	case Nbcd:
		return fmt.Sprintf("NBCD %s", ins.Dst)
	case Add, Addi:
		return two("ADD")
	case Sub, Subi:
		return two("SUB")
	case And, Andi:
		return two("AND")
	case Or, Ori:
		return two("OR")
	case Eor, Eori:
		return two("EOR")
	case Cmp, Cmpi, Cmpm:
		return two("CMP")
	case Adda:
		return two("ADDA")
	case Suba:
		return two("SUBA")
	case Cmpa:
		return two("CMPA")
	case Addq:
		return fmt.Sprintf("ADDQ%s #%d, %s", ins.Size.suffix(), quick(ins.Data), ins.Dst)
	case Subq:
		return fmt.Sprintf("SUBQ%s #%d, %s", ins.Size.suffix(), quick(ins.Data), ins.Dst)
	case Addx:
		return two("ADDX")
	case Subx:
		return two("SUBX")
	case OriToCCR:
		return fmt.Sprintf("ORI %s, CCR", ins.Src)
	case OriToSR:
		return fmt.Sprintf("ORI %s, SR", ins.Src)
	case AndiToCCR:
		return fmt.Sprintf("ANDI %s, CCR", ins.Src)
	case AndiToSR:
		return fmt.Sprintf("ANDI %s, SR", ins.Src)
	case EoriToCCR:
		return fmt.Sprintf("EORI %s, CCR", ins.Src)
	case EoriToSR:
		return fmt.Sprintf("EORI %s, SR", ins.Src)
	case Asl, Asr, Lsl, Lsr, Rol, Ror, Roxl, Roxr:
		var name string
		switch ins.Kind {
		case Asl:
			name = "ASL"
		case Asr:
			name = "ASR"
		case Lsl:
			name = "LSL"
		case Lsr:
			name = "LSR"
		case Rol:
			name = "ROL"
		case Ror:
			name = "ROR"
		case Roxl:
			name = "ROXL"
		case Roxr:
			name = "ROXR"
		}
		if ins.Dst.Kind == DataRegister {
			if ins.HasSrc {
				return fmt.Sprintf("%s%s %s, %s", name, ins.Size.suffix(), ins.Src, ins.Dst)
			}
			return fmt.Sprintf("%s%s #%d, %s", name, ins.Size.suffix(), quick(ins.Data), ins.Dst)
		}
		return one(name, ins.Dst)
	case Bcc:
		if ins.Cond == CondTrue {
			return fmt.Sprintf("BRA $%x", ins.Data)
		}
		return fmt.Sprintf("B%s $%x", ins.Cond, ins.Data)
	case Bsr:
		return fmt.Sprintf("BSR $%x", ins.Data)
	case Dbcc:
		return fmt.Sprintf("DB%s %s, $%04x", ins.Cond, ins.Dst, uint16(ins.Data))
	case Scc:
		return fmt.Sprintf("S%s %s", ins.Cond, ins.Dst)
	case Btst:
		return fmt.Sprintf("BTST %s, %s", ins.Src, ins.Dst)
	case Bchg:
		return fmt.Sprintf("BCHG %s, %s", ins.Src, ins.Dst)
	case Bclr:
		return fmt.Sprintf("BCLR %s, %s", ins.Src, ins.Dst)
	case Bset:
		return fmt.Sprintf("BSET %s, %s", ins.Src, ins.Dst)
	case Chk:
		return fmt.Sprintf("CHK %s, %s", ins.Src, ins.Dst)
	case Clr:
		return one("CLR", ins.Dst)
	case Neg:
		return one("NEG", ins.Dst)
	case Negx:
		return one("NEGX", ins.Dst)
	case Not:
		return one("NOT", ins.Dst)
	case Divs:
		return fmt.Sprintf("DIVS %s, %s", ins.Src, ins.Dst)
	case Divu:
		return fmt.Sprintf("DIVU %s, %s", ins.Src, ins.Dst)
	case Muls:
		return fmt.Sprintf("MULS %s, %s", ins.Src, ins.Dst)
	case Mulu:
		return fmt.Sprintf("MULU %s, %s", ins.Src, ins.Dst)
	case Exg:
		return fmt.Sprintf("EXG %s, %s", ins.Src, ins.Dst)
	case Ext:
		return one("EXT", ins.Dst)
	case Jmp:
		return fmt.Sprintf("JMP %s", ins.Dst)
	case Jsr:
		return fmt.Sprintf("JSR %s", ins.Dst)
	case Lea:
		return fmt.Sprintf("LEA %s, %s", ins.Src, ins.Dst)
	case Pea:
		return fmt.Sprintf("PEA %s", ins.Src)
	case Link:
		return fmt.Sprintf("LINK %s, #$%04x", ins.Dst, uint16(ins.Data))
	case Unlink:
		return fmt.Sprintf("UNLK %s", ins.Dst)
	case Move:
		return two("MOVE")
	case Movea:
		return two("MOVEA")
	case Movep:
		return two("MOVEP")
	case Movem:
		if ins.HasSrc {
			return fmt.Sprintf("MOVEM%s %s, %s", ins.Size.suffix(), ins.Src, movemMask(uint16(ins.Data), false))
		}
		reversed := ins.Dst.Kind == AddressPreDecrement
		return fmt.Sprintf("MOVEM%s %s, %s", ins.Size.suffix(), movemMask(uint16(ins.Data), reversed), ins.Dst)
	case Moveq:
		return fmt.Sprintf("MOVEQ #$%02x, %s", uint8(ins.Data), ins.Dst)
	case MoveToCCR:
		return fmt.Sprintf("MOVE %s, CCR", ins.Src)
	case MoveToSR:
		return fmt.Sprintf("MOVE %s, SR", ins.Src)
	case MoveFromSR:
		return fmt.Sprintf("MOVE SR, %s", ins.Dst)
	case MoveToUSP:
		return fmt.Sprintf("MOVE %s, USP", ins.Src)
	case MoveFromUSP:
		return fmt.Sprintf("MOVE USP, %s", ins.Dst)
	case Nop:
		return "NOP"
	case Reset:
		return "RESET"
	case Rte:
		return "RTE"
	case Rtr:
		return "RTR"
	case Rts:
		return "RTS"
	case Swap:
		return fmt.Sprintf("SWAP %s", ins.Dst)
	case Tas:
		return fmt.Sprintf("TAS %s", ins.Dst)
	case Trap:
		return fmt.Sprintf("TRAP #%d", ins.Data-32)
	case Trapv:
		return "TRAPV"
	case Tst:
		return one("TST", ins.Src)
	}
	return "?"
}

func quick(data uint32) uint32 {
	if data == 0 {
		return 8
	}
	return data
}

// movemMask renders a MOVEM register mask as a register list. With reversed
// set, bit 0 names A7 and bit 15 names D0.
func movemMask(mask uint16, reversed bool) string {
	names := []string{}
	for i := 0; i < 16; i++ {
		bit := uint(i)
		if reversed {
			bit = uint(15 - i)
		}
		if mask&(1<<bit) == 0 {
			continue
		}
		if i < 8 {
			names = append(names, fmt.Sprintf("D%d", i))
		} else {
			names = append(names, fmt.Sprintf("A%d", i-8))
		}
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, "/")
}

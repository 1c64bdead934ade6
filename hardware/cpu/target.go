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

// TargetKind enumerates the twelve addressing modes of the 68000.
type TargetKind uint8

// The addressing modes in encoding order.
const (
	DataRegister TargetKind = iota
	AddressRegister
	AddressIndirect
	AddressPostIncrement
	AddressPreDecrement
	AddressDisplacement
	AddressIndex
	PCDisplacement
	PCIndex
	AbsoluteShort
	AbsoluteLong
	Immediate
)

// Target names an operand location: a register, a memory addressing mode,
// or an immediate in the instruction stream. It is a value type; the
// decoder builds it and the executor reads and writes through it.
//
// The predecrement adjustment is applied on the first read or write of the
// target and suppressed afterwards; the postincrement adjustment is applied
// by the executor after the instruction's main work, once per operand. Both
// move A7 by at least two bytes to keep the stack word-aligned.
type Target struct {
	Kind    TargetKind
	Index   int
	Size    Size
	Ext0    uint16
	Ext1    uint16
	Address uint32

	// predecrement happens once per instruction, not once per access
	decremented bool

	// number of elements a single pre/post adjustment covers. always 1
	// except for MOVEM, which adjusts once for the whole register list
	incOrDecCount uint32
}

// SetIncOrDecCount sets the number of size-wide elements covered by a
// single predecrement or postincrement adjustment.
func (tgt *Target) SetIncOrDecCount(count uint32) {
	tgt.incOrDecCount = count
}

// tryDecrement applies the pending predecrement adjustment. Subsequent
// calls for the same instruction do nothing.
func (tgt *Target) tryDecrement(ctx Context) {
	if tgt.Kind == AddressPreDecrement && !tgt.decremented {
		reg := ctx.Reg.AReg(tgt.Index)
		diff := uint32(tgt.Size) * tgt.incOrDecCount
		if tgt.Index == 7 && diff < 2 {
			diff = 2
		}
		*reg -= diff
	}
	tgt.decremented = true
}

// TryIncrement applies the postincrement adjustment. The executor is
// responsible for calling this exactly once per operand, after the
// instruction's main work.
func (tgt *Target) TryIncrement(ctx Context) {
	if tgt.Kind == AddressPostIncrement {
		reg := ctx.Reg.AReg(tgt.Index)
		diff := uint32(tgt.Size) * tgt.incOrDecCount
		if tgt.Index == 7 && diff < 2 {
			diff = 2
		}
		*reg += diff
	}
}

// EffectiveAddress computes the 32-bit address named by the target; the
// bus masks it to 24 bits. Only meaningful for the memory addressing modes.
func (tgt *Target) EffectiveAddress(ctx Context) uint32 {
	switch tgt.Kind {
	case AddressIndirect, AddressPostIncrement, AddressPreDecrement:
		return *ctx.Reg.AReg(tgt.Index)
	case AddressDisplacement:
		return *ctx.Reg.AReg(tgt.Index) + uint32(int32(int16(tgt.Ext0)))
	case AddressIndex:
		return tgt.indexedAddress(ctx, *ctx.Reg.AReg(tgt.Index))
	case PCDisplacement:
		// PC has moved past the extension word by the time the address is
		// computed
		return ctx.Reg.PC - 2 + uint32(int32(int16(tgt.Ext0)))
	case PCIndex:
		return tgt.indexedAddress(ctx, ctx.Reg.PC-2)
	case AbsoluteShort:
		return uint32(int32(int16(tgt.Ext0)))
	case AbsoluteLong:
		return uint32(tgt.Ext0)<<16 | uint32(tgt.Ext1)
	case Immediate:
		return tgt.Address
	}
	return 0
}

// the brief extension word: bit 15 selects Dn/An, bits 12-14 the index
// register, bit 11 the index width, bits 0-7 an 8-bit displacement. the
// 68000 has no scaled indexing.
func (tgt *Target) indexedAddress(ctx Context, base uint32) uint32 {
	xn := int(tgt.Ext0>>12) & 0x07

	var xval uint32
	if tgt.Ext0&0x8000 != 0 {
		xval = *ctx.Reg.AReg(xn)
	} else {
		xval = ctx.Reg.D[xn]
	}
	if tgt.Ext0&0x0800 == 0 {
		xval = uint32(int32(int16(xval)))
	}

	disp := uint32(int32(int8(tgt.Ext0)))

	return base + disp + xval
}

// Read fills data with len(data) bytes from the target. Register targets
// supply the low len(data)*8 bits in big-endian order; memory targets go
// through the bus.
func (tgt *Target) Read(ctx Context, data []byte) error {
	tgt.tryDecrement(ctx)

	readRegister := func(reg uint32) {
		for i := len(data) - 1; i >= 0; i-- {
			data[i] = uint8(reg)
			reg >>= 8
		}
	}

	switch tgt.Kind {
	case DataRegister:
		readRegister(ctx.Reg.D[tgt.Index])
	case AddressRegister:
		readRegister(*ctx.Reg.AReg(tgt.Index))
	default:
		return ctx.Bus.Read(tgt.EffectiveAddress(ctx), data)
	}

	return nil
}

// Write consumes data symmetrically to Read. Byte and word writes to a
// register clear only the low bits they replace.
func (tgt *Target) Write(ctx Context, data []byte) error {
	tgt.tryDecrement(ctx)

	writeRegister := func(reg *uint32) {
		var lsb uint32
		shift := uint(0)
		for _, b := range data {
			shift += 8
			lsb = lsb<<8 | uint32(b)
		}

		if shift >= 32 {
			*reg = lsb
		} else {
			*reg = *reg>>shift<<shift | lsb
		}
	}

	switch tgt.Kind {
	case DataRegister:
		writeRegister(&ctx.Reg.D[tgt.Index])
	case AddressRegister:
		writeRegister(ctx.Reg.AReg(tgt.Index))
	default:
		return ctx.Bus.Write(tgt.EffectiveAddress(ctx), data)
	}

	return nil
}

// ReadWidening reads size bytes from the target and returns the value
// zero-extended to 64 bits. Signedness is imposed by the operation, not the
// reader.
func (tgt *Target) ReadWidening(ctx Context, size Size) (uint64, error) {
	var b [8]byte
	if err := tgt.Read(ctx, b[:size]); err != nil {
		return 0, err
	}

	var v uint64
	for i := 0; i < int(size); i++ {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

// WriteSized truncates value to size bytes and writes it to the target.
func (tgt *Target) WriteSized(ctx Context, value uint64, size Size) error {
	var b [8]byte
	v := value
	for i := int(size) - 1; i >= 0; i-- {
		b[i] = uint8(v)
		v >>= 8
	}
	return tgt.Write(ctx, b[:size])
}

// ReadByte reads an 8-bit value from the target.
func (tgt *Target) ReadByte(ctx Context) (uint8, error) {
	var b [1]byte
	if err := tgt.Read(ctx, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadWord reads a big-endian 16-bit value from the target.
func (tgt *Target) ReadWord(ctx Context) (uint16, error) {
	var b [2]byte
	if err := tgt.Read(ctx, b[:]); err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// ReadLong reads a big-endian 32-bit value from the target.
func (tgt *Target) ReadLong(ctx Context) (uint32, error) {
	var b [4]byte
	if err := tgt.Read(ctx, b[:]); err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// WriteByte writes an 8-bit value to the target.
func (tgt *Target) WriteByte(ctx Context, value uint8) error {
	b := [1]byte{value}
	return tgt.Write(ctx, b[:])
}

// WriteWord writes a 16-bit value to the target in big-endian order.
func (tgt *Target) WriteWord(ctx Context, value uint16) error {
	b := [2]byte{byte(value >> 8), byte(value)}
	return tgt.Write(ctx, b[:])
}

// WriteLong writes a 32-bit value to the target in big-endian order.
func (tgt *Target) WriteLong(ctx Context, value uint32) error {
	b := [4]byte{byte(value >> 24), byte(value >> 16), byte(value >> 8), byte(value)}
	return tgt.Write(ctx, b[:])
}

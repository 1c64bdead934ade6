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
	"github.com/jetsetilly/gopherdrive/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
	"github.com/jetsetilly/gopherdrive/test"
)

func newTestContext() cpu.Context {
	return cpu.Context{
		Reg: registers.NewRegisters(),
		Bus: memory.NewRAM(0x0000, 0xffff),
	}
}

func TestEffectiveAddresses(t *testing.T) {
	ctx := newTestContext()
	ctx.Reg.A[0] = 0x3000
	ctx.Reg.D[1] = 0x10
	ctx.Reg.PC = 0x1004 // as if an extension word had just been read

	tgt := cpu.Target{Kind: cpu.AddressIndirect, Index: 0}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x3000))

	// negative displacement
	tgt = cpu.Target{Kind: cpu.AddressDisplacement, Index: 0, Ext0: 0xfffc}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x2ffc))

	// index register D1.w plus an 8-bit displacement of 4
	tgt = cpu.Target{Kind: cpu.AddressIndex, Index: 0, Ext0: 0x1004}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x3014))

	// PC displacement is relative to the extension word
	tgt = cpu.Target{Kind: cpu.PCDisplacement, Ext0: 0x0010}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x1012))

	// absolute short sign-extends
	tgt = cpu.Target{Kind: cpu.AbsoluteShort, Ext0: 0x8000}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0xffff8000))

	tgt = cpu.Target{Kind: cpu.AbsoluteLong, Ext0: 0x00ff, Ext1: 0x0010}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x00ff0010))
}

func TestIndexedAddressWidth(t *testing.T) {
	ctx := newTestContext()
	ctx.Reg.A[0] = 0x3000
	ctx.Reg.D[1] = 0xffffffff

	// D1.w sign-extends to -1
	tgt := cpu.Target{Kind: cpu.AddressIndex, Index: 0, Ext0: 0x1000}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x2fff))

	// D1.l uses the full register
	tgt = cpu.Target{Kind: cpu.AddressIndex, Index: 0, Ext0: 0x1800}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x2fff))

	// A1.w via bit 15
	ctx.Reg.A[1] = 0x00000002
	tgt = cpu.Target{Kind: cpu.AddressIndex, Index: 0, Ext0: 0x9000}
	test.Equate(t, tgt.EffectiveAddress(ctx), uint32(0x3002))
}

func TestPreDecrementIsSticky(t *testing.T) {
	ctx := newTestContext()
	ctx.Reg.A[0] = 0x3000

	tgt := cpu.Target{Kind: cpu.AddressPreDecrement, Index: 0, Size: cpu.SizeWord}
	tgt.SetIncOrDecCount(1)

	var b [2]byte
	test.ExpectedSuccess(t, tgt.Read(ctx, b[:]))
	test.Equate(t, ctx.Reg.A[0], uint32(0x2ffe))

	// a second access within the same instruction does not adjust again
	test.ExpectedSuccess(t, tgt.Write(ctx, b[:]))
	test.Equate(t, ctx.Reg.A[0], uint32(0x2ffe))
}

func TestStackPointerAlignment(t *testing.T) {
	ctx := newTestContext()
	ctx.Reg.USP = 0x3000

	// byte-sized pushes and pops through A7 move by two bytes
	tgt := cpu.Target{Kind: cpu.AddressPreDecrement, Index: 7, Size: cpu.SizeByte}
	tgt.SetIncOrDecCount(1)
	var b [1]byte
	test.ExpectedSuccess(t, tgt.Read(ctx, b[:]))
	test.Equate(t, ctx.Reg.USP, uint32(0x2ffe))

	tgt = cpu.Target{Kind: cpu.AddressPostIncrement, Index: 7, Size: cpu.SizeByte}
	tgt.SetIncOrDecCount(1)
	tgt.TryIncrement(ctx)
	test.Equate(t, ctx.Reg.USP, uint32(0x3000))
}

func TestRegisterWritePreservesHighBits(t *testing.T) {
	ctx := newTestContext()
	ctx.Reg.D[0] = 0x11223344

	tgt := cpu.Target{Kind: cpu.DataRegister, Index: 0}
	test.ExpectedSuccess(t, tgt.WriteByte(ctx, 0xff))
	test.Equate(t, ctx.Reg.D[0], uint32(0x112233ff))

	test.ExpectedSuccess(t, tgt.WriteWord(ctx, 0xaaaa))
	test.Equate(t, ctx.Reg.D[0], uint32(0x1122aaaa))

	test.ExpectedSuccess(t, tgt.WriteLong(ctx, 0xdeadbeef))
	test.Equate(t, ctx.Reg.D[0], uint32(0xdeadbeef))
}

func TestReadWidening(t *testing.T) {
	ctx := newTestContext()
	ctx.Reg.D[0] = 0xffffff80

	// the value is zero-extended, never sign-extended
	tgt := cpu.Target{Kind: cpu.DataRegister, Index: 0}
	v, err := tgt.ReadWidening(ctx, cpu.SizeByte)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint64(0x80))

	v, _ = tgt.ReadWidening(ctx, cpu.SizeLong)
	test.Equate(t, v, uint64(0xffffff80))
}

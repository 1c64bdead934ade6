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

// Package disassembly walks a cartridge image linearly from an origin,
// decoding one instruction after another and rendering each as address,
// raw words and assembler text. A linear walk cannot follow computed jumps
// or tell code from data; wrong turns show up as unknown opcodes, which
// are printed and skipped over.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherdrive/cartridge"
	"github.com/jetsetilly/gopherdrive/hardware/cpu"
	"github.com/jetsetilly/gopherdrive/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
)

// Entry is one decoded instruction.
type Entry struct {
	Address uint32
	Bytes   []uint8
	Result  string
}

func (e Entry) String() string {
	raw := ""
	for i := 0; i+1 < len(e.Bytes); i += 2 {
		raw += fmt.Sprintf("%02x%02x ", e.Bytes[i], e.Bytes[i+1])
	}
	return fmt.Sprintf("%06x  %-30s %s", e.Address, raw, e.Result)
}

// Disassembly is the result of walking a cartridge.
type Disassembly struct {
	cart    *cartridge.Cartridge
	Entries []Entry
}

// FromCartridge disassembles from origin until limit instructions have
// been decoded or the image ends. An origin of zero means the cartridge's
// reset entry point.
func FromCartridge(cart *cartridge.Cartridge, origin uint32, limit int) (*Disassembly, error) {
	dsm := &Disassembly{cart: cart}

	if origin == 0 {
		origin = cart.Vectors.ResetPC
	}

	ctx := cpu.Context{
		Reg: registers.NewRegisters(),
		Bus: memory.NewROM(cart.Data),
	}
	ctx.Reg.PC = origin

	for i := 0; i < limit && ctx.Reg.PC < uint32(len(cart.Data)); i++ {
		address := ctx.Reg.PC

		ins, err := cpu.Decode(ctx)

		result := ""
		if err != nil {
			// realign and carry on; data looks like code on a linear walk
			if ctx.Reg.PC == address {
				ctx.Reg.PC += 2
			}
			result = fmt.Sprintf("?? (%v)", err)
		} else {
			result = ins.String()
		}

		e := Entry{
			Address: address,
			Bytes:   make([]uint8, ctx.Reg.PC-address),
			Result:  result,
		}
		if err := ctx.Bus.Read(address, e.Bytes); err != nil {
			return nil, err
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	return dsm, nil
}

// Write the disassembly to an io.Writer, preceded by a banner drawn from
// the cartridge header.
func (dsm *Disassembly) Write(output io.Writer) {
	fmt.Fprintf(output, "%s  [%s]\n", dsm.cart.Title(), dsm.cart.Metadata.SerialNumber)
	fmt.Fprintf(output, "reset: %06x  vblank: %06x\n\n",
		dsm.cart.Vectors.ResetPC, dsm.cart.Vectors.VblankPC)
	for _, e := range dsm.Entries {
		fmt.Fprintln(output, e.String())
	}
}

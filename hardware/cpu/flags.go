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

// the arithmetic in the executor is done at 64-bit width. the flag helpers
// inspect the unbounded result: a carry is any bit set beyond the operation
// size, the sign is the top bit within the operation size.

func msb(value uint64, size Size) bool {
	return (value>>(size.Bits()-1))&1 == 1
}

func isZero(value uint64, size Size) bool {
	return value&(1<<size.Bits()-1) == 0
}

func isCarry(value uint64, size Size) bool {
	return value&^(1<<size.Bits()-1) != 0
}

// isOverflow is the signed-overflow test for addition. For subtraction the
// sign of lhs is flipped before the addition formula is applied (the
// executor computes rhs-lhs as rhs+(-lhs)).
func isOverflow(lhs uint64, rhs uint64, result uint64, size Size, subtract bool) bool {
	lhsMsb := msb(lhs, size) != subtract
	rhsMsb := msb(rhs, size)
	resultMsb := msb(result, size)
	return (lhsMsb && rhsMsb && !resultMsb) || (!lhsMsb && !rhsMsb && resultMsb)
}

func signExtendByte(v uint8) uint32 {
	return uint32(int32(int8(v)))
}

func signExtendWord(v uint16) uint32 {
	return uint32(int32(int16(v)))
}

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

// Package memory implements the 68000 side of the Mega Drive memory map.
//
// Everything addressable is a Peripheral: a pair of Read/Write functions
// working on byte slices at a 24-bit address. The Bus is itself a
// Peripheral, dispatching to whichever mapped peripheral claims the
// address; the CPU only ever talks to the Bus.
//
// Multi-byte transfers are big-endian. The typed helper functions
// (ReadWord(), WriteLong(), etc.) are the only place where byte-order
// conversion happens.
package memory

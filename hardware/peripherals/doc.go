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

// Package peripherals implements the bus devices of the Mega Drive that
// are not the VDP or plain memory: the controller ports, the Z80 area, the
// sound chips and the cartridge-era oddities like the trademark register.
//
// The sound hardware and the Z80 itself are out of scope for the emulation
// core; their peripherals satisfy the bus contract so that games run, and
// no more. The controller port is real enough to report button state
// through its two-step select protocol.
package peripherals

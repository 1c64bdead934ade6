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

// Package hardware assembles the components of the Mega Drive into a
// console: the 68000, the bus and its peripherals, the VDP and the vblank
// interrupt source.
//
// The console is driven one instruction at a time with Step(). The host is
// expected to interleave its own event loop between steps; nothing in here
// blocks or runs concurrently. When a host unpauses the emulation it must
// call ResetInterruptClock() so the next vblank fires a full frame period
// later rather than immediately.
package hardware

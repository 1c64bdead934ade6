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

// Package vdp implements the video display processor of the Mega Drive.
//
// The VDP is a bus peripheral with two visible ports. The data port reads
// and writes whichever of the three internal RAMs (VRAM, VSRAM, CRAM) the
// last address command selected. The control port takes either single-word
// register writes or a two-word address command; an address command with
// the DMA bit set triggers the configured DMA operation, which may reach
// back through the console bus for its source data.
//
// The raster itself is not emulated. The register file drives the derived
// state a renderer needs (table addresses, plane sizes, scroll modes) and
// the whole device state can be serialised with DumpState()/ApplyState().
package vdp

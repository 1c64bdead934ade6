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

package peripherals

import (
	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/hardware/memory"
)

// the controller port window. registers are bytes at odd addresses; even
// addresses read as zero.
const (
	OriginController = 0xa10001
	MemtopController = 0xa1001f
)

// byte registers within the window.
const (
	addrVersion = 0xa10001

	addrData1   = 0xa10003
	addrData2   = 0xa10005
	addrDataExt = 0xa10007

	addrCtrl1   = 0xa10009
	addrCtrl2   = 0xa1000b
	addrCtrlExt = 0xa1000d

	addrSerialControl1   = 0xa10013
	addrSerialControl2   = 0xa10019
	addrSerialControlExt = 0xa1001f
)

// Button enumerates the buttons of a three-button pad.
type Button int

// The buttons of a three-button pad.
const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonC
	ButtonStart

	buttonCount
)

// the version register: version 0xf, no expansion unit, NTSC, overseas.
const versionByte = 0xaf

const portCount = 3

type portStep int

const (
	step1 portStep = iota
	step2
)

// Controller is the I/O area serving up to three control pads. Each pad is
// a step machine: a write to its data register selects which half of the
// button set a subsequent read reports.
type Controller struct {
	pressed [portCount][buttonCount]bool
	step    [portCount]portStep
	ctrl    [portCount]uint8
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController() *Controller {
	return &Controller{}
}

// SetButton records the pressed state of a button on the first pad.
func (c *Controller) SetButton(button Button, pressed bool) {
	c.pressed[0][button] = pressed
}

// readPressedStatus reports the negated pressed state of the buttons the
// current step exposes.
func (c *Controller) readPressedStatus(port int) uint8 {
	pressed := &c.pressed[port]

	bit := func(b Button, shift uint) uint8 {
		if pressed[b] {
			return 0
		}
		return 1 << shift
	}

	switch c.step[port] {
	case step1:
		return bit(ButtonUp, 0) | bit(ButtonDown, 1) | bit(ButtonLeft, 2) |
			bit(ButtonRight, 3) | bit(ButtonB, 4) | bit(ButtonC, 5)
	default:
		return bit(ButtonUp, 0) | bit(ButtonDown, 1) | bit(ButtonA, 4) | bit(ButtonStart, 5)
	}
}

// Read implements the memory.Peripheral interface. The version, data and
// control registers are serviced; every other address reads as zero.
func (c *Controller) Read(addr uint32, data []byte) error {
	for i := range data {
		switch addr + uint32(i) {
		case addrVersion:
			data[i] = versionByte
		case addrData1:
			data[i] = c.readPressedStatus(0)
		case addrData2:
			data[i] = c.readPressedStatus(1)
		case addrDataExt:
			data[i] = c.readPressedStatus(2)
		case addrCtrl1:
			data[i] = c.ctrl[0]
		case addrCtrl2:
			data[i] = c.ctrl[1]
		case addrCtrlExt:
			data[i] = c.ctrl[2]
		default:
			data[i] = 0x00
		}
	}
	return nil
}

// Write implements the memory.Peripheral interface.
func (c *Controller) Write(addr uint32, data []byte) error {
	selectStep := func(port int, value uint8) {
		if value == 0x40 {
			c.step[port] = step1
		} else {
			c.step[port] = step2
		}
	}

	for i := range data {
		value := data[i]
		switch addr + uint32(i) {
		case addrData1:
			selectStep(0, value)
		case addrData2:
			selectStep(1, value)
		case addrDataExt:
			selectStep(2, value)
		case addrCtrl1:
			c.ctrl[0] = value
		case addrCtrl2:
			c.ctrl[1] = value
		case addrCtrlExt:
			c.ctrl[2] = value
		case addrSerialControl1, addrSerialControl2, addrSerialControlExt:
			// serial lines are not connected
		default:
			return curated.Errorf(memory.InvalidWrite,
				curated.Errorf("controller: address %06x value %02x", addr+uint32(i), value))
		}
	}
	return nil
}

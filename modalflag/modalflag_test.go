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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/modalflag"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestDefaultMode(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"game.bin"})
	md.AddSubModes("RUN", "DISASM")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.GetArg(0), "game.bin")
}

func TestModeSelection(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"disasm", "game.bin"})
	md.AddSubModes("RUN", "DISASM")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "DISASM")
	test.Equate(t, md.GetArg(0), "game.bin")
}

func TestModeFlags(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"run", "-speed", "2.0", "game.bin"})
	md.AddSubModes("RUN")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	speed := md.AddFloat64("speed", 1.0, "game speed")
	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, *speed == 2.0, true)
	test.Equate(t, md.GetArg(0), "game.bin")
}

func TestUnknownFlag(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})

	r, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, int(r), int(modalflag.ParseError))
}

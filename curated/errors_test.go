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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/gopherdrive/curated"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestIdentity(t *testing.T) {
	e := curated.Errorf("bus: unmapped read: %06x", 0xa10000)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, "bus: unmapped read: %06x"))
	test.ExpectedFailure(t, curated.Is(e, "bus: unmapped write: %06x"))

	// wrapped errors are found with Has() but not Is()
	f := curated.Errorf("megadrive: %v", e)
	test.ExpectedFailure(t, curated.Is(f, "bus: unmapped read: %06x"))
	test.ExpectedSuccess(t, curated.Has(f, "bus: unmapped read: %06x"))
	test.ExpectedSuccess(t, curated.Has(f, "megadrive: %v"))

	// nil errors are never matched
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, "bus: unmapped read: %06x"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("vdp: %v", curated.Errorf("vdp: %v", curated.Errorf("invalid register: %02x", 0x9f)))
	test.Equate(t, e.Error(), "vdp: invalid register: 9f")
}

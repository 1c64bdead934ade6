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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdrive/logger"
	"github.com/jetsetilly/gopherdrive/test"
)

func TestWrite(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	test.ExpectedFailure(t, logger.Write(b))

	logger.Log("test", "this is a test")
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "test: this is a test\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	logger.Log("bus", "protected write")
	logger.Log("bus", "protected write")
	logger.Log("bus", "protected write")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "bus: protected write (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.Equate(t, b.String(), "test: two\ntest: three\n")
}

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

// Package modalflag layers sub-modes on top of the flag package from the
// standard library. The first non-flag argument selects a mode (RUN,
// DISASM, etc); each mode then declares its own flags and parses the
// remaining arguments.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes handles a command line of the form:
//
//	program [mode] [mode flags] [arguments]
//
// The zero value is not usable; call NewArgs() before anything else and
// set Output for help messages to be visible.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	flags *flag.FlagSet

	args     []string
	subModes []string
	mode     string
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// Values of ParseResult.
const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

// NewArgs starts parsing afresh with a new argument list (typically
// os.Args[1:]).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.NewMode()
}

// NewMode begins a new flag set for the mode most recently selected by
// Parse().
func (md *Modes) NewMode() {
	md.subModes = nil
	md.flags = flag.NewFlagSet(md.mode, flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AddSubModes declares the modes the next Parse() chooses between. The
// first is the default when no mode argument is given. Comparison is case
// insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the mode selected by the most recent Parse().
func (md *Modes) Mode() string {
	return md.mode
}

// Parse the argument list. When sub-modes have been declared the call
// only selects the mode, leaving every remaining argument for the mode's
// own flag set; declare that with NewMode() and Parse() again.
func (md *Modes) Parse() (ParseResult, error) {
	if len(md.subModes) > 0 {
		md.mode = md.subModes[0]
		if len(md.args) > 0 && !strings.HasPrefix(md.args[0], "-") {
			arg := strings.ToUpper(md.args[0])
			for _, m := range md.subModes {
				if m == arg {
					md.mode = arg
					md.args = md.args[1:]
					break
				}
			}
		}
		return ParseContinue, nil
	}

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}
	md.args = md.flags.Args()

	return ParseContinue, nil
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}
	if md.mode != "" {
		fmt.Fprintf(md.Output, "flags for mode %s:\n", md.mode)
	}
	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)
}

// RemainingArgs returns the arguments left after flag parsing.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered remaining argument, or the empty string.
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// This file is part of pnokernels.
//
// pnokernels is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pnokernels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pnokernels.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package from the standard library and adds
// program modes. Each mode has its own set of flags.
//
// Arguments are supplied once with NewArgs() and then consumed one mode at a
// time by Parse(). Before each call to Parse() the flags for the current mode
// are added along with any sub-modes that may follow:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VIEW", "BENCH", "DUMP")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "BENCH":
//		md.NewMode()
//		duration := md.AddString("duration", "5s", "run duration")
//		...
//	}
//
// The first sub-mode in the list is the default. Sub-mode names are not case
// sensitive. Arguments that are neither flags nor a sub-mode are available
// through RemainingArgs() and GetArg().
package modalflag

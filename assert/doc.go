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

// Package assert contains helpers for checks that should only be made in
// instrumented builds.
//
// Build with the "assertions" tag to enable them:
//
//	go test -tags assertions ./...
//
// Without the tag the Enabled constant is false and checks guarded by it are
// removed by the compiler. The kernels and the compositor use this to keep
// the unchecked fast path free of validation in release builds.
package assert

import "fmt"

// That panics with the formatted message if cond is false. It does nothing
// unless Enabled is true.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}

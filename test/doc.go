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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions are fatal and should be used when the result is
// needed for the rest of the test. For example, testing that the lengths of two
// slices are equal before iterating over them in unison.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//
// An untyped nil is considered a success because of how errors usually work.
//
// ExpectBytes() compares two byte slices and reports the first few differing
// offsets. It is used extensively by the pixel kernel tests.
package test

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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. The function takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf()
// but the pattern is retained and can be used to identify the error later:
//
//	const OutOfRange = "value out of range: %d"
//
//	e := curated.Errorf(OutOfRange, 300)
//	if curated.Is(e, OutOfRange) {
//		...
//	}
//
// Has() is similar to Is() but checks the entire error chain. The chain is
// made up of any error values given to Errorf() and of errors wrapped with
// the %w verb of fmt.Errorf().
//
// Packages in this module export the patterns they use as string constants so
// that callers can test for them.
package curated

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

package test

import (
	"fmt"
	"strings"
	"testing"
)

// maximum number of differences reported by ExpectBytes()
const maxByteDiffs = 8

// ExpectBytes compares two byte slices. Differences in length and the first
// few differing offsets are reported as a test error.
func ExpectBytes(t *testing.T, v []byte, expected []byte, tags ...any) bool {
	t.Helper()

	if len(v) != len(expected) {
		t.Errorf("%sbyte comparison failed: length %d does not equal %d", id(tags...), len(v), len(expected))
		return false
	}

	var s strings.Builder
	n := 0
	for i := range v {
		if v[i] != expected[i] {
			if n < maxByteDiffs {
				s.WriteString(fmt.Sprintf("\n\t%#06x: %#02x (wanted %#02x)", i, v[i], expected[i]))
			}
			n++
		}
	}

	if n > 0 {
		if n > maxByteDiffs {
			s.WriteString(fmt.Sprintf("\n\t... and %d more", n-maxByteDiffs))
		}
		t.Errorf("%sbyte comparison failed: %d differences%s", id(tags...), n, s.String())
		return false
	}

	return true
}

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

package faults_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pnokernels/coprocessor/faults"
	"github.com/jetsetilly/pnokernels/test"
)

func TestFaults(t *testing.T) {
	flt := faults.NewFaults()

	flt.NewEntry("blit", faults.NullDereference, 0, 4)
	flt.NewEntry("blit", faults.NullDereference, 0, 4)
	flt.NewEntry("copyrect", faults.RegionOverrun, 0x1000, 64)
	test.ExpectEquality(t, len(flt.Log), 2)
	test.ExpectEquality(t, flt.Log[0].Count, 2)
	test.ExpectFailure(t, flt.HasStackCollision)

	var w strings.Builder
	flt.WriteLog(&w)
	test.ExpectEquality(t, w.String(),
		"null dereference: blit: 00000000+4 (x2)\nregion overrun: copyrect: 00001000+64\n")

	flt.NewEntry("push", faults.StackCollision, 0x2000, 16)
	test.ExpectSuccess(t, flt.HasStackCollision)

	flt.Clear()
	test.ExpectEquality(t, len(flt.Log), 0)
	test.ExpectSuccess(t, flt.HasStackCollision)
}

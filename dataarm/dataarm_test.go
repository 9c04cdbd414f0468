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

package dataarm_test

import (
	"testing"

	"github.com/jetsetilly/pnokernels/dataarm"
	"github.com/jetsetilly/pnokernels/test"
)

func TestByteOrder(t *testing.T) {
	b := dataarm.Block{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc}

	test.ExpectEquality(t, b.Read8(0), 0x12)
	test.ExpectEquality(t, b.Read16(0), 0x1234)
	test.ExpectEquality(t, b.Read16(1), 0x3456)
	test.ExpectEquality(t, b.Read32(2), 0x56789abc)
	test.ExpectEquality(t, b.ReadPtr(0), 0x12345678)

	b.Write16(0, 0xbeef)
	test.ExpectBytes(t, b[:2], []byte{0xbe, 0xef})

	b.Write32(2, 0x00c0ffee)
	test.ExpectBytes(t, b, []byte{0xbe, 0xef, 0x00, 0xc0, 0xff, 0xee})

	b.WritePtr(1, 0x01020304)
	test.ExpectEquality(t, b.Read32(1), 0x01020304)

	b.Write8(5, 0x7f)
	test.ExpectEquality(t, b.Read8(5), 0x7f)
}

func TestLayout(t *testing.T) {
	var l dataarm.Layout

	test.ExpectEquality(t, l.Ptr("dst"), 0)
	test.ExpectEquality(t, l.U16("pitch"), 4)
	test.ExpectEquality(t, l.U8("flip"), 6)
	test.ExpectEquality(t, l.Size(), 8)
	test.ExpectEquality(t, l.U16("x"), 7)
	test.ExpectEquality(t, l.Size(), 12)
	test.ExpectEquality(t, l.U32("colour"), 9)
	test.ExpectEquality(t, l.Size(), 16)

	f, ok := l.Field("flip")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f.Offset, 6)
	_, ok = l.Field("none")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, l.String(), "[dst@0 (ptr), pitch@4 (16), flip@6 (8), x@7 (16), colour@9 (32)] size=16")
}

func TestAlign4(t *testing.T) {
	for n, a := range []uint32{0, 4, 4, 4, 4, 8} {
		test.ExpectEquality(t, dataarm.Align4(uint32(n)), a)
	}
}

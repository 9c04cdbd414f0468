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

package memorymodel_test

import (
	"testing"

	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/test"
)

func TestModels(t *testing.T) {
	for _, m := range memorymodel.Models {
		mmap := memorymodel.NewMap(m)
		test.ExpectEquality(t, mmap.Model, m)

		// regions must not overlap and must all be above the null page
		test.ExpectSuccess(t, mmap.NativeOrigin > mmap.NullMemtop, m)
		test.ExpectSuccess(t, mmap.StackOrigin > mmap.NativeMemtop, m)
		test.ExpectSuccess(t, mmap.HeapOrigin > mmap.StackMemtop, m)
		test.ExpectSuccess(t, mmap.IsNull(0), m)
		test.ExpectSuccess(t, mmap.IsHeap(mmap.HeapOrigin), m)
		test.ExpectFailure(t, mmap.IsHeap(mmap.StackMemtop), m)
		test.ExpectSuccess(t, mmap.IsStack(mmap.StackMemtop), m)
		test.ExpectSuccess(t, mmap.IsNative(mmap.NativeOrigin), m)
		test.ExpectEquality(t, mmap.HeapOrigin&3, 0, m)
	}
}

func TestUnknownModel(t *testing.T) {
	mmap := memorymodel.NewMap("Tungsten")
	test.ExpectEquality(t, mmap.Model, memorymodel.OS5)
}

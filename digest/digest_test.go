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

package digest_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/digest"
	"github.com/jetsetilly/pnokernels/surface"
	"github.com/jetsetilly/pnokernels/test"
)

func TestFrames(t *testing.T) {
	mem := arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))
	a := surface.NewAllocator(mem)

	s, err := a.Allocate(10, 10, surface.Depth16)
	test.DemandSuccess(t, err)
	pix := surface.Bind(mem, s)

	empty := digest.Sum(pix)
	test.ExpectEquality(t, len(empty), 40)

	pix.Set16(9, 9, 0xffff)
	test.ExpectInequality(t, digest.Sum(pix), empty)

	// the area outside the rectangle does not matter
	dig := digest.NewFrames()
	dig.AddFrame(pix, image.Rect(0, 0, 5, 5))
	a1 := dig.Hash()
	dig.ResetDigest()
	pix.Set16(6, 6, 0x1234)
	dig.AddFrame(pix, image.Rect(0, 0, 5, 5))
	test.ExpectEquality(t, dig.Hash(), a1)

	// the same frame twice gives a different hash because of the chaining
	dig.AddFrame(pix, image.Rect(0, 0, 5, 5))
	test.ExpectInequality(t, dig.Hash(), a1)
	test.ExpectEquality(t, dig.FrameNum(), 2)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.FrameNum(), 0)
	dig.AddFrame(pix, image.Rect(0, 0, 5, 5))
	test.ExpectEquality(t, dig.Hash(), a1)
}

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

package kernels_test

import (
	"testing"

	"github.com/jetsetilly/pnokernels/kernels"
	"github.com/jetsetilly/pnokernels/test"
)

func TestShrinkStipple(t *testing.T) {
	mem := newMemory()
	src := alloc(t, mem, "src", filled(16*16, kernels.ShrinkShadow))
	dst := alloc(t, mem, "dst", filled(8*8, 0xee))

	p := &kernels.Shrink{Src: src, Width: 16, Height: 16, Scale: 128, Dst: dst}
	test.ExpectEquality(t, p.Run(mem), 8<<16|8)

	out := mem.Slice(dst, 8*8)
	for y := range 8 {
		for x := range 8 {
			if (x+y)&1 == 0 {
				test.ExpectEquality(t, out[y*8+x], 0, x, y)
			} else {
				test.ExpectEquality(t, out[y*8+x], kernels.ShrinkShadow, x, y)
			}
		}
	}
}

func TestShrinkSampling(t *testing.T) {
	mem := newMemory()

	img := make([]byte, 20*10)
	for y := range 10 {
		for x := range 20 {
			img[y*20+x] = byte(y*20 + x)
		}
	}
	src := alloc(t, mem, "src", img)
	dst := alloc(t, mem, "dst", filled(10*5, 0))

	p := &kernels.Shrink{Src: src, Width: 20, Height: 10, Scale: 128, Dst: dst}
	test.ExpectEquality(t, p.Run(mem), 10<<16|5)

	out := mem.Slice(dst, 10*5)
	for y := range 5 {
		for x := range 10 {
			test.ExpectEquality(t, out[y*10+x], byte((2*y+1)*20+2*x+1), x, y)
		}
	}

	// unity scale copies the image
	dst = alloc(t, mem, "dst", filled(20*10, 0))
	p = &kernels.Shrink{Src: src, Width: 20, Height: 10, Scale: kernels.ShrinkUnity, Dst: dst}
	test.ExpectEquality(t, p.Run(mem), 20<<16|10)
	test.ExpectBytes(t, mem.Slice(dst, 20*10), img)
}

func TestShrinkValidate(t *testing.T) {
	mem := newMemory()
	p := &kernels.Shrink{Width: 400, Height: 10, Scale: 128}
	test.ExpectFailure(t, p.Validate(mem))
	p = &kernels.Shrink{Width: 20, Height: 10, Scale: 0}
	test.ExpectFailure(t, p.Validate(mem))
}

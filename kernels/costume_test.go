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

func TestCostume(t *testing.T) {
	mem := newMemory()

	pal := make([]byte, 256)
	for i := range pal {
		pal[i] = byte(i)
	}
	shadow := make([]byte, 256)
	for i := range shadow {
		shadow[i] = byte(i + 100)
	}

	palette := alloc(t, mem, "palette", pal)
	shadowTable := alloc(t, mem, "shadow", shadow)
	scaleTable := alloc(t, mem, "scale", filled(256, 0))
	out := alloc(t, mem, "out", filled(8*4, 7))

	// column of four 3s, then two transparent and two 5s
	stream := alloc(t, mem, "costume", []byte{0x34, 0x02, 0x52})

	p := &kernels.Costume{
		Src:        stream,
		Dst:        out,
		Palette:    palette,
		ScaleTable: scaleTable,
		X:          1,
		Y:          0,
		Height:     4,
		SkipWidth:  2,
		OutPitch:   8,
		OutWidth:   8,
		OutHeight:  4,
		NumStrips:  1,
		ScaleX:     kernels.CostumeUnscaled,
		ScaleY:     kernels.CostumeUnscaled,
		ScaleXStep: 1,
		Shr:        4,
		ColorMask:  0x0f,
	}

	mem.SetChecked(true)
	test.DemandSuccess(t, p.Validate(mem))
	test.ExpectEquality(t, p.Run(mem), 2)
	test.ExpectEquality(t, p.X, 2)
	test.ExpectEquality(t, p.ScaleIndexX, 1)
	test.ExpectBytes(t, mem.Slice(out, 8*4), []byte{
		7, 3, 7, 7, 7, 7, 7, 7,
		7, 3, 7, 7, 7, 7, 7, 7,
		7, 3, 5, 7, 7, 7, 7, 7,
		7, 3, 5, 7, 7, 7, 7, 7,
	})

	// mask out column 1 of row 2 and use the shadow colour for colour 3
	mask := alloc(t, mem, "mask", []byte{0x00, 0x00, 0x40, 0x00})
	pal[3] = kernels.CostumeShadowColour
	copy(mem.Slice(palette, 256), pal)
	copy(mem.Slice(out, 8*4), filled(8*4, 7))

	p.X = 1
	p.ScaleIndexX = 0
	p.Mask = mask
	p.ShadowTable = shadowTable
	test.DemandSuccess(t, p.Validate(mem))
	p.Run(mem)
	test.ExpectBytes(t, mem.Slice(out, 8*4), []byte{
		7, 107, 7, 7, 7, 7, 7, 7,
		7, 107, 7, 7, 7, 7, 7, 7,
		7, 7, 5, 7, 7, 7, 7, 7,
		7, 107, 5, 7, 7, 7, 7, 7,
	})
}

func TestCostumeEdge(t *testing.T) {
	mem := newMemory()

	pal := make([]byte, 256)
	for i := range pal {
		pal[i] = byte(i)
	}
	palette := alloc(t, mem, "palette", pal)
	scaleTable := alloc(t, mem, "scale", filled(256, 0))
	out := alloc(t, mem, "out", filled(4*2, 0))

	// three columns of colour 1 drawn right to left from column 1, starting
	// one row above the output
	stream := alloc(t, mem, "costume", []byte{0x16, 0x00})

	p := &kernels.Costume{
		Src:        stream,
		Dst:        out,
		Palette:    palette,
		ScaleTable: scaleTable,
		X:          1,
		Y:          -1,
		Height:     2,
		SkipWidth:  3,
		OutPitch:   4,
		OutWidth:   4,
		OutHeight:  2,
		ScaleX:     kernels.CostumeUnscaled,
		ScaleY:     kernels.CostumeUnscaled,
		ScaleXStep: -1,
		Shr:        4,
		ColorMask:  0x0f,
	}

	// leaves the output after the second column
	test.ExpectEquality(t, int32(p.Run(mem)), -1)
	test.ExpectEquality(t, p.X, -1)
	test.ExpectBytes(t, mem.Slice(out, 8), []byte{
		1, 1, 0, 0,
		0, 0, 0, 0,
	})
}

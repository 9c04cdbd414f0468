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

package screendump_test

import (
	"bytes"
	"image/color"
	"os"
	"testing"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/screendump"
	"github.com/jetsetilly/pnokernels/surface"
	"github.com/jetsetilly/pnokernels/test"
	"golang.org/x/image/bmp"
)

func dumpSurface(t *testing.T) surface.Pixels {
	t.Helper()
	mem := arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))
	s, err := surface.NewAllocator(mem).Allocate(3, 2, surface.Depth16)
	test.DemandSuccess(t, err)
	pix := surface.Bind(mem, s)
	pix.Set16(2, 1, surface.RGB565(0xff, 0, 0))
	return pix
}

func TestWrite(t *testing.T) {
	pix := dumpSurface(t)

	var b bytes.Buffer
	test.DemandSuccess(t, screendump.Write(&b, pix.Image(), 2))

	img, err := bmp.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 6)
	test.ExpectEquality(t, img.Bounds().Dy(), 4)

	red := color.RGBAModel.Convert(img.At(5, 3)).(color.RGBA)
	test.ExpectEquality(t, red, color.RGBA{R: 0xff, A: 0xff})
	black := color.RGBAModel.Convert(img.At(3, 1)).(color.RGBA)
	test.ExpectEquality(t, black, color.RGBA{A: 0xff})
}

func TestSave(t *testing.T) {
	t.Chdir(t.TempDir())

	fn, err := screendump.Save(dumpSurface(t).Image(), "test", 1)
	test.DemandSuccess(t, err)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 3)
}

func TestIndexed(t *testing.T) {
	mem := arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))
	s, err := surface.NewAllocator(mem).Allocate(4, 4, surface.Depth8)
	test.DemandSuccess(t, err)
	pix := surface.Bind(mem, s)
	pix.Set8(1, 1, 7)

	var pal [256]uint16
	pal[7] = surface.RGB565(0, 0, 0xff)

	var b bytes.Buffer
	test.DemandSuccess(t, screendump.Write(&b, pix.IndexedImage(&pal), 1))

	img, err := bmp.Decode(&b)
	test.DemandSuccess(t, err)
	blue := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	test.ExpectEquality(t, blue, color.RGBA{B: 0xff, A: 0xff})
}

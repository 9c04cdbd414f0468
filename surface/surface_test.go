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

package surface_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/arm/memorymodel"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/surface"
	"github.com/jetsetilly/pnokernels/test"
)

func TestAllocate(t *testing.T) {
	mem := arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))
	a := surface.NewAllocator(mem)

	s, err := a.Allocate(5, 3, surface.Depth8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Pitch, 8)
	test.ExpectEquality(t, s.Size(), uint32(21))

	w, err := a.Allocate(5, 3, surface.Depth16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.Pitch, 12)

	pix, pitch := a.Pixels(w)
	test.ExpectEquality(t, pitch, 12)
	test.ExpectEquality(t, len(pix), 34)

	_, err = a.Allocate(5, 3, surface.Depth(3))
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidDepth))
	_, err = a.Allocate(0, 3, surface.Depth8)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidSize))

	test.ExpectSuccess(t, a.Release(s))
	test.ExpectFailure(t, a.Release(s))
}

func TestPixels(t *testing.T) {
	mem := arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))
	a := surface.NewAllocator(mem)

	s, err := a.Allocate(4, 4, surface.Depth16)
	test.DemandSuccess(t, err)
	p := surface.Bind(mem, s)

	p.Set16(1, 2, 0xabcd)
	test.ExpectEquality(t, p.At16(1, 2), uint16(0xabcd))
	test.ExpectBytes(t, p.Row(2)[2:4], []byte{0xcd, 0xab})

	p.Fill16(image.Rect(2, 2, 10, 10), 0x1234)
	test.ExpectEquality(t, p.At16(1, 2), uint16(0xabcd))
	test.ExpectEquality(t, p.At16(3, 3), uint16(0x1234))
	test.ExpectEquality(t, p.At16(1, 3), uint16(0))

	b, err := a.Allocate(3, 2, surface.Depth8)
	test.DemandSuccess(t, err)
	p = surface.Bind(mem, b)
	p.Fill8(image.Rect(0, 1, 3, 2), 7)
	p.Set8(0, 0, 9)
	test.ExpectBytes(t, p.Row(0), []byte{9, 0, 0})
	test.ExpectBytes(t, p.Row(1), []byte{7, 7, 7})
	test.ExpectEquality(t, p.At8(2, 1), uint8(7))
}

func TestSub(t *testing.T) {
	s := surface.Surface{Addr: 0x1000, Pitch: 640, Width: 320, Height: 200, Depth: surface.Depth16}
	sub := s.Sub(10, 2, 20, 5)
	test.ExpectEquality(t, sub.Addr, uint32(0x1000+2*640+20))
	test.ExpectEquality(t, sub.Pitch, 640)
	test.ExpectEquality(t, sub.Width, 20)
}

func TestRGB565(t *testing.T) {
	test.ExpectEquality(t, surface.RGB565(0xff, 0xff, 0xff), uint16(0xffff))
	test.ExpectEquality(t, surface.RGB565(0xff, 0, 0), uint16(0xf800))
	test.ExpectEquality(t, surface.RGB565(0, 0xff, 0), uint16(0x07e0))
	test.ExpectEquality(t, surface.RGB565(0, 0, 0xff), uint16(0x001f))

	test.ExpectEquality(t, surface.ToRGBA(0xffff), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, surface.ToRGBA(0), color.RGBA{A: 0xff})
	test.ExpectEquality(t, surface.ToRGBA(0xf800), color.RGBA{R: 0xff, A: 0xff})

	c := surface.ToRGBA(surface.RGB565(0x84, 0x40, 0x21))
	test.ExpectEquality(t, surface.RGB565(c.R, c.G, c.B), surface.RGB565(0x84, 0x40, 0x21))
}

func TestImage(t *testing.T) {
	mem := arm.NewMemory(memorymodel.NewMap(memorymodel.OS5))
	s, err := surface.NewAllocator(mem).Allocate(2, 2, surface.Depth16)
	test.DemandSuccess(t, err)
	p := surface.Bind(mem, s)
	p.Set16(1, 1, 0x001f)

	img := p.Image()
	test.ExpectEquality(t, img.RGBAAt(1, 1), color.RGBA{B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(0, 1), color.RGBA{A: 0xff})
}

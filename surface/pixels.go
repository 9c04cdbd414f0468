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

package surface

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/assert"
)

// Pixels gives the host access to the pixels of a surface.
type Pixels struct {
	Surface
	Pix []byte
}

// Bind the surface to the shared memory it lives in.
func Bind(mem arm.SharedMemory, s Surface) Pixels {
	return Pixels{
		Surface: s,
		Pix:     arm.Bytes(mem, s.Addr, s.Size()),
	}
}

// Row returns the bytes of row y. The length of the slice is Width
// multiplied by the Depth.
func (p Pixels) Row(y int) []byte {
	assert.That(y >= 0 && y < p.Height, "row %d out of range for %s", y, p.Surface)
	o := y * p.Pitch
	return p.Pix[o : o+p.Width*int(p.Depth)]
}

func (p Pixels) At8(x, y int) uint8 {
	assert.That(p.Depth == Depth8, "8bit access of %s", p.Surface)
	assert.That(x >= 0 && x < p.Width && y >= 0 && y < p.Height, "pixel %d,%d out of range for %s", x, y, p.Surface)
	return p.Pix[y*p.Pitch+x]
}

func (p Pixels) Set8(x, y int, c uint8) {
	assert.That(p.Depth == Depth8, "8bit access of %s", p.Surface)
	assert.That(x >= 0 && x < p.Width && y >= 0 && y < p.Height, "pixel %d,%d out of range for %s", x, y, p.Surface)
	p.Pix[y*p.Pitch+x] = c
}

func (p Pixels) At16(x, y int) uint16 {
	assert.That(p.Depth == Depth16, "16bit access of %s", p.Surface)
	assert.That(x >= 0 && x < p.Width && y >= 0 && y < p.Height, "pixel %d,%d out of range for %s", x, y, p.Surface)
	return binary.LittleEndian.Uint16(p.Pix[y*p.Pitch+x*2:])
}

func (p Pixels) Set16(x, y int, c uint16) {
	assert.That(p.Depth == Depth16, "16bit access of %s", p.Surface)
	assert.That(x >= 0 && x < p.Width && y >= 0 && y < p.Height, "pixel %d,%d out of range for %s", x, y, p.Surface)
	binary.LittleEndian.PutUint16(p.Pix[y*p.Pitch+x*2:], c)
}

// Fill8 sets every pixel in the rectangle to the palette index. The
// rectangle is clipped to the surface.
func (p Pixels) Fill8(r image.Rectangle, c uint8) {
	assert.That(p.Depth == Depth8, "8bit access of %s", p.Surface)
	r = r.Intersect(image.Rect(0, 0, p.Width, p.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[y*p.Pitch+r.Min.X : y*p.Pitch+r.Max.X]
		for i := range row {
			row[i] = c
		}
	}
}

// Fill16 sets every pixel in the rectangle to the RGB565 value. The rectangle
// is clipped to the surface.
func (p Pixels) Fill16(r image.Rectangle, c uint16) {
	assert.That(p.Depth == Depth16, "16bit access of %s", p.Surface)
	r = r.Intersect(image.Rect(0, 0, p.Width, p.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.Pix[y*p.Pitch+r.Min.X*2 : y*p.Pitch+r.Max.X*2]
		for i := 0; i < len(row); i += 2 {
			binary.LittleEndian.PutUint16(row[i:], c)
		}
	}
}

// Image returns a copy of a 16-bit surface as an RGBA image.
func (p Pixels) Image() *image.RGBA {
	assert.That(p.Depth == Depth16, "16bit access of %s", p.Surface)
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := range p.Height {
		row := p.Row(y)
		for x := range p.Width {
			img.SetRGBA(x, y, ToRGBA(binary.LittleEndian.Uint16(row[x*2:])))
		}
	}
	return img
}

// IndexedImage returns a copy of an 8-bit surface as a paletted image. The
// palette entries are 16-bit pixels.
func (p Pixels) IndexedImage(pal *[256]uint16) *image.Paletted {
	assert.That(p.Depth == Depth8, "8bit access of %s", p.Surface)
	cp := make(color.Palette, len(pal))
	for i, c := range pal {
		cp[i] = ToRGBA(c)
	}
	img := image.NewPaletted(image.Rect(0, 0, p.Width, p.Height), cp)
	for y := range p.Height {
		copy(img.Pix[y*img.Stride:], p.Row(y)[:p.Width])
	}
	return img
}

// RGB565 packs the 8-bit colour components into a 16-bit pixel.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// ToRGBA expands the 16-bit pixel. The low bits of each component are
// filled from the high bits so that white stays white.
func ToRGBA(c uint16) color.RGBA {
	r := uint8(c>>11) & 0x1f
	g := uint8(c>>5) & 0x3f
	b := uint8(c) & 0x1f
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

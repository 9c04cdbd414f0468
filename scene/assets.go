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

package scene

import "github.com/jetsetilly/pnokernels/kernels"

// image is a host side 8-bit image used while creating assets
type image struct {
	w, h int
	pix  []byte
}

func newImage(w, h int) *image {
	return &image{w: w, h: h, pix: make([]byte, w*h)}
}

func (img *image) set(x, y int, c uint8) {
	if x >= 0 && x < img.w && y >= 0 && y < img.h {
		img.pix[y*img.w+x] = c
	}
}

func (img *image) row(y int) []byte {
	return img.pix[y*img.w : (y+1)*img.w]
}

// triangle wave between 0 and m
func triangle(v int, m int) int {
	if m <= 0 {
		return 0
	}
	v %= 2 * m
	if v > m {
		return 2*m - v
	}
	return v
}

func backdrop(w, h int, horizon int) *image {
	img := newImage(w, h)
	for y := range h {
		for x := range w {
			var c int
			if y < horizon {
				c = sky + y*47/max(horizon, 1)
			} else {
				c = greens + 32 + ((x/16+y/8)&7)*2
			}
			img.set(x, y, uint8(c))
		}
	}

	// sun
	cx, cy, r := w*3/4, horizon/3, max(horizon/6, 4)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				img.set(cx+x, cy+y, uint8(yellow+40+(x*x+y*y)*20/(r*r)))
			}
		}
	}

	return img
}

// hills layer for the parallax kernel. zero pixels are transparent
func hills(w, h int) [][]byte {
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = make([]byte, w)
	}
	for x := range w {
		top := h/4 + triangle(x, 48)*h/96 + triangle(x*3, 20)*h/160
		for y := top; y < h; y++ {
			rows[y][x] = uint8(greens + 8 + (y-top)/3 + (x/24)%4)
		}
	}
	return rows
}

func ball(size int, body uint8, shadow bool) *image {
	img := newImage(size, size)
	r := size/2 - 1
	for y := range size {
		for x := range size {
			dx, dy := x-size/2, y-size/2
			d := dx*dx + dy*dy
			if d > r*r {
				continue // for loop
			}
			c := int(body) + d*30/(r*r)
			if shadow && dy > 0 {
				c = kernels.ShrinkShadow
			}
			img.set(x, y, uint8(c))
		}
	}
	return img
}

func window(w, h int) *image {
	img := newImage(w, h)
	for y := range h {
		for x := range w {
			switch {
			case x < 2 || y < 2 || x >= w-2 || y >= h-2 || x == w/2 || y == h/2:
				img.set(x, y, white)
			case (x+y)%9 == 0:
				img.set(x, y, sky+40)
			}
		}
	}
	return img
}

func pillar(w, h int) *image {
	img := newImage(w, h)
	for y := range h {
		for x := range w {
			img.set(x, y, uint8(greys+6+triangle(x, w/2)))
		}
	}
	return img
}

func panel(w, h int) *image {
	img := newImage(w, h)
	for y := range h {
		for x := range w {
			c := greys + 3
			if y == h-1 {
				c = white
			}
			img.set(x, y, uint8(c))
		}
	}
	return img
}

// figure dimensions. the costume is drawn column by column
const (
	figureW = 16
	figureH = 40
)

// costume colours. colour zero is not drawn
const (
	skin   = 1
	shirt  = 5
	legs   = 9
	cShade = 15
)

// figure returns the pixels of the walking figure in column order
func figure(step int) []byte {
	img := newImage(figureW, figureH)
	for y := range figureH {
		for x := range figureW {
			dx := x - figureW/2
			switch {
			case y < 8:
				dy := y - 4
				if dx*dx+dy*dy <= 12 {
					img.set(x, y, skin)
				}
			case y < 28:
				if dx >= -5 && dx < 5 {
					img.set(x, y, shirt+uint8(y%3))
				}
			case y < 38:
				stride := (y - 28) / 3 * (step*2 - 1)
				if dx == -3+stride || dx == -2+stride || dx == 2-stride || dx == 3-stride {
					img.set(x, y, legs)
				}
			default:
				if dx >= -6 && dx < 6 {
					img.set(x, y, cShade)
				}
			}
		}
	}

	cols := make([]byte, 0, figureW*figureH)
	for x := range figureW {
		for y := range figureH {
			cols = append(cols, img.pix[y*figureW+x])
		}
	}
	return cols
}

// costume stream encoding. the colour is in the upper four bits and the run
// length in the lower four bits. a length of zero means the length is in the
// next byte
const (
	costumeShr  = 4
	costumeMask = 0x0f
)

func encodeCostume(pix []byte) []byte {
	var out []byte
	for i := 0; i < len(pix); {
		c := pix[i]
		n := 1
		for i+n < len(pix) && pix[i+n] == c && n < 255 {
			n++
		}
		if n <= costumeMask {
			out = append(out, c<<costumeShr|uint8(n))
		} else {
			out = append(out, c<<costumeShr, uint8(n))
		}
		i += n
	}
	return out
}

// costume palette maps costume colours to palette indexes. the shade colour
// maps to the shadow colour so that the pixel is taken from the shadow table
func costumePalette() []byte {
	p := make([]byte, 256)
	for i := range p {
		p[i] = uint8(reds + (i%16)*4)
	}
	p[skin] = yellow + 20
	p[cShade] = kernels.CostumeShadowColour
	return p
}

// shadow table darkens the pixel being drawn over
func shadowTable() []byte {
	t := make([]byte, 256)
	for i := range t {
		switch {
		case i >= greens && i < reds:
			t[i] = uint8(greens + (i-greens)/3)
		default:
			t[i] = greys + 2
		}
	}
	return t
}

// scale table is a bit reversed count, so that dropped rows and columns are
// spread evenly for every scale
func scaleTable() []byte {
	t := make([]byte, 256)
	for i := range t {
		var r uint8
		for b := range 8 {
			if i&(1<<b) != 0 {
				r |= 0x80 >> b
			}
		}
		t[i] = r
	}
	return t
}

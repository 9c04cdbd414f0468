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

import "github.com/jetsetilly/pnokernels/surface"

// Palette is the native palette used by the scene. It implements the
// compositor.Palette interface.
type Palette struct {
	native [256]uint16
}

// ranges of palette indexes
const (
	greys  = 0
	sky    = 16
	greens = 64
	reds   = 128
	yellow = 192
	white  = 255
)

func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

func newPalette() *Palette {
	p := &Palette{}
	for i := range p.native {
		var r, g, b int
		switch {
		case i < sky:
			r, g, b = i*17, i*17, i*17
		case i < greens:
			t := i - sky
			r, g, b = 40+t, 80+t*2, 160+t*2
		case i < reds:
			t := i - greens
			r, g, b = 20+t, 100+t*2, 30+t
		case i < yellow:
			t := i - reds
			r, g, b = 130+t*2, 40+t*2, 30
		default:
			t := i - yellow
			r, g, b = 190+t, 170+t, 60+t*2
		}
		p.native[i] = surface.RGB565(clamp(r), clamp(g), clamp(b))
	}
	p.native[white] = surface.RGB565(0xff, 0xff, 0xff)
	return p
}

// NativePalette implements the compositor.Palette interface.
func (p *Palette) NativePalette() *[256]uint16 {
	return &p.native
}

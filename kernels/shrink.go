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

package kernels

import (
	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/dataarm"
)

// ShrinkMaxWidth is the maximum width of a shrunk image.
const ShrinkMaxWidth = 160

// ShrinkShadow is the colour used to draw shadows in sprites. Alternate
// pixels of this colour are removed after shrinking to give a stippled
// shadow.
const ShrinkShadow = 200

// ShrinkUnity is the Scale value that leaves the image unchanged.
const ShrinkUnity = 256

var shrinkLayout dataarm.Layout

var (
	shrinkSrc    = shrinkLayout.Ptr("src")
	shrinkWidth  = shrinkLayout.U32("width")
	shrinkHeight = shrinkLayout.U32("height")
	shrinkScale  = shrinkLayout.U32("scale")
	shrinkDst    = shrinkLayout.Ptr("dst")
)

// Shrink scales an image with nearest neighbour sampling. Scale is a 0.8
// fixed point value. The shrunk image is written to Dst with a pitch equal to
// its width.
//
// The result of the kernel is the width of the shrunk image in the upper 16
// bits and the height in the lower 16 bits.
type Shrink struct {
	Src    uint32
	Width  uint32
	Height uint32
	Scale  uint32
	Dst    uint32
}

func (p *Shrink) ID() ID {
	return IDShrink
}

func (p *Shrink) Layout() *dataarm.Layout {
	return &shrinkLayout
}

func (p *Shrink) Encode(b dataarm.Block) {
	b.WritePtr(shrinkSrc, p.Src)
	b.Write32(shrinkWidth, p.Width)
	b.Write32(shrinkHeight, p.Height)
	b.Write32(shrinkScale, p.Scale)
	b.WritePtr(shrinkDst, p.Dst)
}

func (p *Shrink) Decode(b dataarm.Block) {
	p.Src = b.ReadPtr(shrinkSrc)
	p.Width = b.Read32(shrinkWidth)
	p.Height = b.Read32(shrinkHeight)
	p.Scale = b.Read32(shrinkScale)
	p.Dst = b.ReadPtr(shrinkDst)
}

// ShrunkSize returns the dimensions of the image after shrinking.
func (p *Shrink) ShrunkSize() (uint32, uint32) {
	return (p.Width * p.Scale) >> 8, (p.Height * p.Scale) >> 8
}

func (p *Shrink) Validate(mem arm.SharedMemory) error {
	if p.Scale == 0 {
		return invalid(IDShrink, "scale is zero")
	}
	if p.Scale > ShrinkUnity {
		return invalid(IDShrink, "scale (%d) greater than unity", p.Scale)
	}
	resWidth, resHeight := p.ShrunkSize()
	if resWidth > ShrinkMaxWidth {
		return invalid(IDShrink, "shrunk width (%d) is greater than %d", resWidth, ShrinkMaxWidth)
	}
	if err := checkRange(mem, IDShrink, p.Src, p.Width*p.Height, 1); err != nil {
		return err
	}
	return checkRange(mem, IDShrink, p.Dst, resWidth*resHeight, 1)
}

func (p *Shrink) Run(mem arm.SharedMemory) uint32 {
	resWidth, resHeight := p.ShrunkSize()
	if resWidth == 0 || resHeight == 0 {
		return resWidth<<16 | resHeight
	}

	step := uint32(0x10000) / p.Scale

	var columnTab [ShrinkMaxWidth]uint8
	res := step >> 1
	for i := range resWidth {
		columnTab[i] = uint8(res >> 8)
		res += step
	}

	src := arm.Bytes(mem, p.Src, p.Width*p.Height)
	dst := arm.Bytes(mem, p.Dst, resWidth*resHeight)

	newRow := step >> 1
	for y := range resHeight {
		s := src[(newRow>>8)*p.Width:]
		d := dst[y*resWidth : (y+1)*resWidth]
		for x := range d {
			d[x] = s[columnTab[x]]
		}
		newRow += step
	}

	// remove alternate shadow pixels. the first pixel considered is the
	// first pixel of even rows and the second pixel of odd rows
	for y := range resHeight {
		d := dst[y*resWidth : (y+1)*resWidth]
		for x := y & 1; x < resWidth; x += 2 {
			if d[x] == ShrinkShadow {
				d[x] = 0
			}
		}
	}

	return resWidth<<16 | resHeight
}

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
	"encoding/binary"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/dataarm"
)

// PaletteSize is the size in bytes of a native palette: 256 little-endian
// RGB565 values.
const PaletteSize = 512

func readPalette(mem arm.SharedMemory, addr uint32) *[256]uint16 {
	var pal [256]uint16
	b := arm.Bytes(mem, addr, PaletteSize)
	for i := range pal {
		pal[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return &pal
}

// PutPalette writes the palette to b in the native format.
func PutPalette(b []byte, pal *[256]uint16) {
	for i, v := range pal {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
}

func put16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

// StretchLen returns the length of n pixels after the fixed 1.5x stretch.
func StretchLen(n int) int {
	return 3*(n/2) + n%2
}

// StretchIndex returns the first stretched index of source index i and the
// number of stretched pixels it covers. Of each pair of pixels the first is
// drawn once and the second is drawn twice.
func StretchIndex(i int) (int, int) {
	if i&1 == 0 {
		return 3 * (i / 2), 1
	}
	return 3*(i/2) + 1, 2
}

var renderLayout dataarm.Layout

var (
	renderSrc      = renderLayout.Ptr("src")
	renderSrcPitch = renderLayout.U16("srcPitch")
	renderDst      = renderLayout.Ptr("dst")
	renderDstPitch = renderLayout.U16("dstPitch")
	renderW        = renderLayout.U16("w")
	renderH        = renderLayout.U16("h")
	renderPalette  = renderLayout.Ptr("palette")
)

// Render is the parameter block shared by the fixed scale screen renderers.
// The W by H 8-bit source image at Src is converted to 16-bit pixels with the
// native palette at Palette and drawn to Dst. DstPitch is in bytes.
type Render struct {
	Src      uint32
	SrcPitch uint16
	Dst      uint32
	DstPitch uint16
	W        uint16
	H        uint16
	Palette  uint32
}

func (p *Render) encode(b dataarm.Block) {
	b.WritePtr(renderSrc, p.Src)
	b.Write16(renderSrcPitch, p.SrcPitch)
	b.WritePtr(renderDst, p.Dst)
	b.Write16(renderDstPitch, p.DstPitch)
	b.Write16(renderW, p.W)
	b.Write16(renderH, p.H)
	b.WritePtr(renderPalette, p.Palette)
}

func (p *Render) decode(b dataarm.Block) {
	p.Src = b.ReadPtr(renderSrc)
	p.SrcPitch = b.Read16(renderSrcPitch)
	p.Dst = b.ReadPtr(renderDst)
	p.DstPitch = b.Read16(renderDstPitch)
	p.W = b.Read16(renderW)
	p.H = b.Read16(renderH)
	p.Palette = b.ReadPtr(renderPalette)
}

func (p *Render) validate(mem arm.SharedMemory, id ID, dw int, dh int) error {
	if err := checkRect(mem, id, p.Src, uint32(p.SrcPitch), uint32(p.W), uint32(p.H)); err != nil {
		return err
	}
	if err := checkRect(mem, id, p.Dst, uint32(p.DstPitch), uint32(dw*2), uint32(dh)); err != nil {
		return err
	}
	return checkRange(mem, id, p.Palette, PaletteSize, 2)
}

// Render1x draws the source at its original size.
type Render1x Render

func (p *Render1x) ID() ID                  { return IDRender1x }
func (p *Render1x) Layout() *dataarm.Layout { return &renderLayout }
func (p *Render1x) Encode(b dataarm.Block)  { (*Render)(p).encode(b) }
func (p *Render1x) Decode(b dataarm.Block)  { (*Render)(p).decode(b) }

func (p *Render1x) Validate(mem arm.SharedMemory) error {
	return (*Render)(p).validate(mem, IDRender1x, int(p.W), int(p.H))
}

func (p *Render1x) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	pal := readPalette(mem, p.Palette)
	w := int(p.W)
	sp := int(p.SrcPitch)
	dp := int(p.DstPitch)
	src := arm.From(mem, p.Src)
	dst := arm.From(mem, p.Dst)

	for y := range int(p.H) {
		d := dst[y*dp : y*dp+w*2]
		for x, c := range src[y*sp : y*sp+w] {
			put16(d, x*2, pal[c])
		}
	}

	return 0
}

// RenderLandscape15x stretches the source by 1.5 in both directions. Of each
// pair of source pixels in a row the first is drawn once and the second
// twice. Of each pair of rows the first is drawn once and the second is drawn
// and then copied to the row below. A 320x200 source becomes 480x300.
type RenderLandscape15x Render

func (p *RenderLandscape15x) ID() ID                  { return IDRenderLandscape15x }
func (p *RenderLandscape15x) Layout() *dataarm.Layout { return &renderLayout }
func (p *RenderLandscape15x) Encode(b dataarm.Block)  { (*Render)(p).encode(b) }
func (p *RenderLandscape15x) Decode(b dataarm.Block)  { (*Render)(p).decode(b) }

func (p *RenderLandscape15x) Validate(mem arm.SharedMemory) error {
	return (*Render)(p).validate(mem, IDRenderLandscape15x, StretchLen(int(p.W)), StretchLen(int(p.H)))
}

func (p *RenderLandscape15x) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	pal := readPalette(mem, p.Palette)
	w := int(p.W)
	sp := int(p.SrcPitch)
	dp := int(p.DstPitch)
	rowLen := StretchLen(w) * 2
	src := arm.From(mem, p.Src)
	dst := arm.From(mem, p.Dst)

	for sy := range int(p.H) {
		dy, n := StretchIndex(sy)
		d := dst[dy*dp : dy*dp+rowLen]
		s := src[sy*sp : sy*sp+w]

		o := 0
		x := 0
		for ; x+1 < w; x += 2 {
			b := pal[s[x+1]]
			put16(d, o, pal[s[x]])
			put16(d, o+2, b)
			put16(d, o+4, b)
			o += 6
		}
		if x < w {
			put16(d, o, pal[s[x]])
		}

		if n == 2 {
			copy(dst[(dy+1)*dp:(dy+1)*dp+rowLen], d)
		}
	}

	return 0
}

// RenderPortrait15x is the same stretch as RenderLandscape15x rotated 90
// degrees clockwise. Source row y is drawn to the stretched columns counted
// from the right hand side of the output and source column x is drawn to the
// stretched rows. A 320x200 source becomes 300x480.
type RenderPortrait15x Render

func (p *RenderPortrait15x) ID() ID                  { return IDRenderPortrait15x }
func (p *RenderPortrait15x) Layout() *dataarm.Layout { return &renderLayout }
func (p *RenderPortrait15x) Encode(b dataarm.Block)  { (*Render)(p).encode(b) }
func (p *RenderPortrait15x) Decode(b dataarm.Block)  { (*Render)(p).decode(b) }

func (p *RenderPortrait15x) Validate(mem arm.SharedMemory) error {
	return (*Render)(p).validate(mem, IDRenderPortrait15x, StretchLen(int(p.H)), StretchLen(int(p.W)))
}

func (p *RenderPortrait15x) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	pal := readPalette(mem, p.Palette)
	w := int(p.W)
	sp := int(p.SrcPitch)
	dp := int(p.DstPitch)
	dw := StretchLen(int(p.H))
	src := arm.From(mem, p.Src)
	dst := arm.From(mem, p.Dst)

	for sy := range int(p.H) {
		ry, ny := StretchIndex(sy)
		s := src[sy*sp : sy*sp+w]

		// one or two destination columns for this source row
		for c := dw - 1 - ry; c > dw-1-ry-ny; c-- {
			o := c * 2
			for x, v := range s {
				dx, nx := StretchIndex(x)
				put16(dst, dx*dp+o, pal[v])
				if nx == 2 {
					put16(dst, (dx+1)*dp+o, pal[v])
				}
			}
		}
	}

	return 0
}

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

// BuildScaleTables returns nearest neighbour scale tables for scaling a srcW
// by srcH image to dstW by dstH. Entries in the X table are source columns.
// Entries in the Y table are byte offsets of source rows.
func BuildScaleTables(srcW, srcH, srcPitch int, dstW, dstH int) ([]uint32, []uint32) {
	tx := make([]uint32, dstW)
	for i := range tx {
		tx[i] = uint32(i * srcW / dstW)
	}
	ty := make([]uint32, dstH)
	for i := range ty {
		ty[i] = uint32((i * srcH / dstH) * srcPitch)
	}
	return tx, ty
}

// ScaleTableSize is the size in bytes of a scale table with n entries.
func ScaleTableSize(n int) uint32 {
	return uint32(n * 4)
}

// PutScaleTable writes the scale table to b as little-endian values.
func PutScaleTable(b []byte, t []uint32) {
	for i, v := range t {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
}

var renderScaledLayout dataarm.Layout

var (
	renderScaledSrc      = renderScaledLayout.Ptr("src")
	renderScaledDst      = renderScaledLayout.Ptr("dst")
	renderScaledDstPitch = renderScaledLayout.U16("dstPitch")
	renderScaledW        = renderScaledLayout.U16("w")
	renderScaledH        = renderScaledLayout.U16("h")
	renderScaledPalette  = renderScaledLayout.Ptr("palette")
	renderScaledTableX   = renderScaledLayout.Ptr("scaleTableX")
	renderScaledTableY   = renderScaledLayout.Ptr("scaleTableY")
	renderScaledRotate   = renderScaledLayout.U8("rotate")
)

// RenderScaled draws the source at Src scaled to W by H with the scale
// tables created by BuildScaleTables(). The tables have W and H entries
// respectively.
//
// If Rotate is set the scaled image is rotated 90 degrees clockwise and the
// output is H pixels wide and W pixels high.
type RenderScaled struct {
	Src      uint32
	Dst      uint32
	DstPitch uint16
	W        uint16
	H        uint16
	Palette  uint32
	TableX   uint32
	TableY   uint32
	Rotate   bool
}

func (p *RenderScaled) ID() ID {
	return IDRenderScaled
}

func (p *RenderScaled) Layout() *dataarm.Layout {
	return &renderScaledLayout
}

func (p *RenderScaled) Encode(b dataarm.Block) {
	b.WritePtr(renderScaledSrc, p.Src)
	b.WritePtr(renderScaledDst, p.Dst)
	b.Write16(renderScaledDstPitch, p.DstPitch)
	b.Write16(renderScaledW, p.W)
	b.Write16(renderScaledH, p.H)
	b.WritePtr(renderScaledPalette, p.Palette)
	b.WritePtr(renderScaledTableX, p.TableX)
	b.WritePtr(renderScaledTableY, p.TableY)
	b.Write8(renderScaledRotate, boolByte(p.Rotate))
}

func (p *RenderScaled) Decode(b dataarm.Block) {
	p.Src = b.ReadPtr(renderScaledSrc)
	p.Dst = b.ReadPtr(renderScaledDst)
	p.DstPitch = b.Read16(renderScaledDstPitch)
	p.W = b.Read16(renderScaledW)
	p.H = b.Read16(renderScaledH)
	p.Palette = b.ReadPtr(renderScaledPalette)
	p.TableX = b.ReadPtr(renderScaledTableX)
	p.TableY = b.ReadPtr(renderScaledTableY)
	p.Rotate = b.Read8(renderScaledRotate) != 0
}

func (p *RenderScaled) Validate(mem arm.SharedMemory) error {
	if p.W == 0 || p.H == 0 {
		return nil
	}
	dw, dh := uint32(p.W), uint32(p.H)
	if p.Rotate {
		dw, dh = dh, dw
	}
	if err := checkRect(mem, IDRenderScaled, p.Dst, uint32(p.DstPitch), dw*2, dh); err != nil {
		return err
	}
	if err := checkRange(mem, IDRenderScaled, p.Palette, PaletteSize, 2); err != nil {
		return err
	}
	if err := checkRange(mem, IDRenderScaled, p.TableX, ScaleTableSize(int(p.W)), 4); err != nil {
		return err
	}
	if err := checkRange(mem, IDRenderScaled, p.TableY, ScaleTableSize(int(p.H)), 4); err != nil {
		return err
	}

	// the largest entries give the extent of the source
	tx := arm.Bytes(mem, p.TableX, ScaleTableSize(int(p.W)))
	ty := arm.Bytes(mem, p.TableY, ScaleTableSize(int(p.H)))
	var mx, my uint32
	for i := range int(p.W) {
		mx = max(mx, binary.LittleEndian.Uint32(tx[i*4:]))
	}
	for i := range int(p.H) {
		my = max(my, binary.LittleEndian.Uint32(ty[i*4:]))
	}
	return checkRange(mem, IDRenderScaled, p.Src, my+mx+1, 1)
}

func (p *RenderScaled) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	pal := readPalette(mem, p.Palette)
	w := int(p.W)
	h := int(p.H)
	dp := int(p.DstPitch)
	tx := arm.Bytes(mem, p.TableX, ScaleTableSize(w))
	ty := arm.Bytes(mem, p.TableY, ScaleTableSize(h))
	src := arm.From(mem, p.Src)
	dst := arm.From(mem, p.Dst)

	for dy := range h {
		s := src[binary.LittleEndian.Uint32(ty[dy*4:]):]

		if p.Rotate {
			o := (h - 1 - dy) * 2
			for dx := range w {
				put16(dst, dx*dp+o, pal[s[binary.LittleEndian.Uint32(tx[dx*4:])]])
			}
			continue // for loop
		}

		d := dst[dy*dp : dy*dp+w*2]
		for dx := range w {
			put16(d, dx*2, pal[s[binary.LittleEndian.Uint32(tx[dx*4:])]])
		}
	}

	return 0
}

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

// DefaultTextTransparent is the value of text plane bytes that show the
// graphics plane.
const DefaultTextTransparent = 0xfd

var textStripLayout dataarm.Layout

var (
	textStripDst         = textStripLayout.Ptr("dst")
	textStripDstPitch    = textStripLayout.U16("dstPitch")
	textStripSrc         = textStripLayout.Ptr("src")
	textStripSrcPitch    = textStripLayout.U16("srcPitch")
	textStripText        = textStripLayout.Ptr("text")
	textStripTextPitch   = textStripLayout.U16("textPitch")
	textStripW           = textStripLayout.U16("w")
	textStripH           = textStripLayout.U16("h")
	textStripTransparent = textStripLayout.U8("transparent")
)

// TextStrip merges the graphics plane at Src with the text plane at Text.
// Where the text byte equals Transparent the graphics byte is written to
// Dst, otherwise the text byte is written.
type TextStrip struct {
	Dst         uint32
	DstPitch    uint16
	Src         uint32
	SrcPitch    uint16
	Text        uint32
	TextPitch   uint16
	W           uint16
	H           uint16
	Transparent uint8
}

func (p *TextStrip) ID() ID {
	return IDTextStrip
}

func (p *TextStrip) Layout() *dataarm.Layout {
	return &textStripLayout
}

func (p *TextStrip) Encode(b dataarm.Block) {
	b.WritePtr(textStripDst, p.Dst)
	b.Write16(textStripDstPitch, p.DstPitch)
	b.WritePtr(textStripSrc, p.Src)
	b.Write16(textStripSrcPitch, p.SrcPitch)
	b.WritePtr(textStripText, p.Text)
	b.Write16(textStripTextPitch, p.TextPitch)
	b.Write16(textStripW, p.W)
	b.Write16(textStripH, p.H)
	b.Write8(textStripTransparent, p.Transparent)
}

func (p *TextStrip) Decode(b dataarm.Block) {
	p.Dst = b.ReadPtr(textStripDst)
	p.DstPitch = b.Read16(textStripDstPitch)
	p.Src = b.ReadPtr(textStripSrc)
	p.SrcPitch = b.Read16(textStripSrcPitch)
	p.Text = b.ReadPtr(textStripText)
	p.TextPitch = b.Read16(textStripTextPitch)
	p.W = b.Read16(textStripW)
	p.H = b.Read16(textStripH)
	p.Transparent = b.Read8(textStripTransparent)
}

func (p *TextStrip) Validate(mem arm.SharedMemory) error {
	w := uint32(p.W)
	h := uint32(p.H)
	if err := checkRect(mem, IDTextStrip, p.Dst, uint32(p.DstPitch), w, h); err != nil {
		return err
	}
	if err := checkRect(mem, IDTextStrip, p.Src, uint32(p.SrcPitch), w, h); err != nil {
		return err
	}
	return checkRect(mem, IDTextStrip, p.Text, uint32(p.TextPitch), w, h)
}

func (p *TextStrip) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	w := int(p.W)
	dp := int(p.DstPitch)
	sp := int(p.SrcPitch)
	tp := int(p.TextPitch)
	dst := arm.From(mem, p.Dst)
	src := arm.From(mem, p.Src)
	text := arm.From(mem, p.Text)

	for y := range int(p.H) {
		d := dst[y*dp : y*dp+w]
		s := src[y*sp : y*sp+w]
		for x, c := range text[y*tp : y*tp+w] {
			if c == p.Transparent {
				d[x] = s[x]
			} else {
				d[x] = c
			}
		}
	}

	return 0
}

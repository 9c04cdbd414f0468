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

var blitLayout dataarm.Layout

var (
	blitDst      = blitLayout.Ptr("dst")
	blitDstPitch = blitLayout.U16("dstPitch")
	blitX        = blitLayout.U16("x")
	blitY        = blitLayout.U16("y")
	blitSrc      = blitLayout.Ptr("src")
	blitSrcPitch = blitLayout.U16("srcPitch")
	blitW        = blitLayout.U16("w")
	blitH        = blitLayout.U16("h")
	blitXFlip    = blitLayout.U8("xflip")
	blitMasked   = blitLayout.U8("masked")
)

// Blit copies a W by H rectangle of bytes from Src to Dst at (X, Y).
//
// If Masked is set then zero bytes in the source are transparent. If XFlip
// is also set the row is mirrored: the source is still read left to right but
// byte i is written to column W-1-i. XFlip has no effect on an unmasked blit.
type Blit struct {
	Dst      uint32
	DstPitch uint16
	X        uint16
	Y        uint16
	Src      uint32
	SrcPitch uint16
	W        uint16
	H        uint16
	XFlip    bool
	Masked   bool
}

func (p *Blit) ID() ID {
	return IDBlit
}

func (p *Blit) Layout() *dataarm.Layout {
	return &blitLayout
}

func (p *Blit) Encode(b dataarm.Block) {
	b.WritePtr(blitDst, p.Dst)
	b.Write16(blitDstPitch, p.DstPitch)
	b.Write16(blitX, p.X)
	b.Write16(blitY, p.Y)
	b.WritePtr(blitSrc, p.Src)
	b.Write16(blitSrcPitch, p.SrcPitch)
	b.Write16(blitW, p.W)
	b.Write16(blitH, p.H)
	b.Write8(blitXFlip, boolByte(p.XFlip))
	b.Write8(blitMasked, boolByte(p.Masked))
}

func (p *Blit) Decode(b dataarm.Block) {
	p.Dst = b.ReadPtr(blitDst)
	p.DstPitch = b.Read16(blitDstPitch)
	p.X = b.Read16(blitX)
	p.Y = b.Read16(blitY)
	p.Src = b.ReadPtr(blitSrc)
	p.SrcPitch = b.Read16(blitSrcPitch)
	p.W = b.Read16(blitW)
	p.H = b.Read16(blitH)
	p.XFlip = b.Read8(blitXFlip) != 0
	p.Masked = b.Read8(blitMasked) != 0
}

func (p *Blit) dstOrigin() uint32 {
	return p.Dst + uint32(p.Y)*uint32(p.DstPitch) + uint32(p.X)
}

func (p *Blit) Validate(mem arm.SharedMemory) error {
	if err := checkRect(mem, IDBlit, p.dstOrigin(), uint32(p.DstPitch), uint32(p.W), uint32(p.H)); err != nil {
		return err
	}
	return checkRect(mem, IDBlit, p.Src, uint32(p.SrcPitch), uint32(p.W), uint32(p.H))
}

func (p *Blit) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	w := int(p.W)
	dp := int(p.DstPitch)
	sp := int(p.SrcPitch)
	dst := arm.From(mem, p.dstOrigin())
	src := arm.From(mem, p.Src)

	for y := range int(p.H) {
		d := dst[y*dp : y*dp+w]
		s := src[y*sp : y*sp+w]

		switch {
		case !p.Masked:
			copy(d, s)
		case p.XFlip:
			for i, c := range s {
				if c != 0 {
					d[w-1-i] = c
				}
			}
		default:
			for i, c := range s {
				if c != 0 {
					d[i] = c
				}
			}
		}
	}

	return 0
}

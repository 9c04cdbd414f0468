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

var copyRectLayout dataarm.Layout

var (
	copyRectDst      = copyRectLayout.Ptr("dst")
	copyRectSrc      = copyRectLayout.Ptr("src")
	copyRectDstPitch = copyRectLayout.U16("dstPitch")
	copyRectSrcPitch = copyRectLayout.U16("srcPitch")
	copyRectW        = copyRectLayout.U16("w")
	copyRectH        = copyRectLayout.U16("h")
)

// CopyRect copies H rows of W bytes from Src to Dst. The pitches may differ.
type CopyRect struct {
	Dst      uint32
	Src      uint32
	DstPitch uint16
	SrcPitch uint16
	W        uint16
	H        uint16
}

func (p *CopyRect) ID() ID {
	return IDCopyRect
}

func (p *CopyRect) Layout() *dataarm.Layout {
	return &copyRectLayout
}

func (p *CopyRect) Encode(b dataarm.Block) {
	b.WritePtr(copyRectDst, p.Dst)
	b.WritePtr(copyRectSrc, p.Src)
	b.Write16(copyRectDstPitch, p.DstPitch)
	b.Write16(copyRectSrcPitch, p.SrcPitch)
	b.Write16(copyRectW, p.W)
	b.Write16(copyRectH, p.H)
}

func (p *CopyRect) Decode(b dataarm.Block) {
	p.Dst = b.ReadPtr(copyRectDst)
	p.Src = b.ReadPtr(copyRectSrc)
	p.DstPitch = b.Read16(copyRectDstPitch)
	p.SrcPitch = b.Read16(copyRectSrcPitch)
	p.W = b.Read16(copyRectW)
	p.H = b.Read16(copyRectH)
}

func (p *CopyRect) Validate(mem arm.SharedMemory) error {
	if err := checkRect(mem, IDCopyRect, p.Dst, uint32(p.DstPitch), uint32(p.W), uint32(p.H)); err != nil {
		return err
	}
	return checkRect(mem, IDCopyRect, p.Src, uint32(p.SrcPitch), uint32(p.W), uint32(p.H))
}

func (p *CopyRect) Run(mem arm.SharedMemory) uint32 {
	if p.W == 0 || p.H == 0 {
		return 0
	}

	w := int(p.W)
	h := int(p.H)

	// rows are contiguous in both buffers
	if p.DstPitch == p.W && p.SrcPitch == p.W {
		copy(arm.Bytes(mem, p.Dst, uint32(w*h)), arm.Bytes(mem, p.Src, uint32(w*h)))
		return 0
	}

	dp := int(p.DstPitch)
	sp := int(p.SrcPitch)
	dst := arm.From(mem, p.Dst)
	src := arm.From(mem, p.Src)
	for y := range h {
		copy(dst[y*dp:y*dp+w], src[y*sp:y*sp+w])
	}

	return 0
}

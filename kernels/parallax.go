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

var parallaxLayout dataarm.Layout

var (
	parallaxData        = parallaxLayout.Ptr("data")
	parallaxLineIndexes = parallaxLayout.Ptr("lineIndexes")
	parallaxDst         = parallaxLayout.Ptr("dst")
	parallaxScrnSizeX   = parallaxLayout.U16("scrnSizeX")
	parallaxScrnScrlX   = parallaxLayout.U16("scrnScrlX")
	parallaxScrnScrlY   = parallaxLayout.U16("scrnScrlY")
	parallaxParaScrlX   = parallaxLayout.U16("paraScrlX")
	parallaxParaScrlY   = parallaxLayout.U16("paraScrlY")
	parallaxScrnWidth   = parallaxLayout.U16("scrnWidth")
	parallaxScrnHeight  = parallaxLayout.U16("scrnHeight")
)

// Parallax draws ScrnWidth by ScrnHeight pixels of a parallax layer onto a
// screen buffer with stride ScrnSizeX, at (ScrnScrlX, ScrnScrlY).
//
// Each row of the layer is a sequence of runs that alternate between skip
// and copy, starting with skip. Each run begins with a count. A copy run is
// followed by that many bytes. Skipped pixels leave the screen untouched.
// LineIndexes points to a table of little-endian 32-bit offsets, relative to
// Data, of the first run of each row. The layer is scrolled by ParaScrlX
// pixels and ParaScrlY rows.
type Parallax struct {
	Data        uint32
	LineIndexes uint32
	Dst         uint32
	ScrnSizeX   uint16
	ScrnScrlX   uint16
	ScrnScrlY   uint16
	ParaScrlX   uint16
	ParaScrlY   uint16
	ScrnWidth   uint16
	ScrnHeight  uint16
}

func (p *Parallax) ID() ID {
	return IDParallax
}

func (p *Parallax) Layout() *dataarm.Layout {
	return &parallaxLayout
}

func (p *Parallax) Encode(b dataarm.Block) {
	b.WritePtr(parallaxData, p.Data)
	b.WritePtr(parallaxLineIndexes, p.LineIndexes)
	b.WritePtr(parallaxDst, p.Dst)
	b.Write16(parallaxScrnSizeX, p.ScrnSizeX)
	b.Write16(parallaxScrnScrlX, p.ScrnScrlX)
	b.Write16(parallaxScrnScrlY, p.ScrnScrlY)
	b.Write16(parallaxParaScrlX, p.ParaScrlX)
	b.Write16(parallaxParaScrlY, p.ParaScrlY)
	b.Write16(parallaxScrnWidth, p.ScrnWidth)
	b.Write16(parallaxScrnHeight, p.ScrnHeight)
}

func (p *Parallax) Decode(b dataarm.Block) {
	p.Data = b.ReadPtr(parallaxData)
	p.LineIndexes = b.ReadPtr(parallaxLineIndexes)
	p.Dst = b.ReadPtr(parallaxDst)
	p.ScrnSizeX = b.Read16(parallaxScrnSizeX)
	p.ScrnScrlX = b.Read16(parallaxScrnScrlX)
	p.ScrnScrlY = b.Read16(parallaxScrnScrlY)
	p.ParaScrlX = b.Read16(parallaxParaScrlX)
	p.ParaScrlY = b.Read16(parallaxParaScrlY)
	p.ScrnWidth = b.Read16(parallaxScrnWidth)
	p.ScrnHeight = b.Read16(parallaxScrnHeight)
}

func (p *Parallax) rowOrigin(row int) uint32 {
	return p.Dst + uint32(p.ScrnScrlX) + uint32(row+int(p.ScrnScrlY))*uint32(p.ScrnSizeX)
}

func (p *Parallax) Validate(mem arm.SharedMemory) error {
	if p.ScrnWidth == 0 || p.ScrnHeight == 0 {
		return nil
	}
	if uint32(p.ScrnScrlX)+uint32(p.ScrnWidth) > uint32(p.ScrnSizeX) {
		return invalid(IDParallax, "draw width (%d+%d) is wider than screen (%d)", p.ScrnScrlX, p.ScrnWidth, p.ScrnSizeX)
	}
	if err := checkRect(mem, IDParallax, p.rowOrigin(0), uint32(p.ScrnSizeX), uint32(p.ScrnWidth), uint32(p.ScrnHeight)); err != nil {
		return err
	}
	idx := p.LineIndexes + 4*uint32(p.ParaScrlY)
	if err := checkRange(mem, IDParallax, idx, 4*uint32(p.ScrnHeight), 1); err != nil {
		return err
	}
	for row := range uint32(p.ScrnHeight) {
		off := binary.LittleEndian.Uint32(arm.Bytes(mem, idx+row*4, 4))
		if err := checkRange(mem, IDParallax, p.Data+off, 1, 1); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parallax) Run(mem arm.SharedMemory) uint32 {
	if p.ScrnWidth == 0 || p.ScrnHeight == 0 {
		return 0
	}

	idx := arm.Bytes(mem, p.LineIndexes+4*uint32(p.ParaScrlY), 4*uint32(p.ScrnHeight))
	for row := range int(p.ScrnHeight) {
		off := binary.LittleEndian.Uint32(idx[row*4:])
		DecodeParallaxRow(arm.From(mem, p.rowOrigin(row)), arm.From(mem, p.Data+off), int(p.ParaScrlX), int(p.ScrnWidth))
	}

	return 0
}

// DecodeParallaxRow draws width pixels of a parallax row into dst. The first
// skip pixels of the row are passed over without being drawn. A run that
// straddles either boundary is split, so the result is the same as decoding
// the whole row and discarding the first skip pixels.
func DecodeParallaxRow(dst []byte, src []byte, skip int, width int) {
	var i int
	var x int
	copying := false

	for x < width && i < len(src) {
		n := int(src[i])
		i++

		if !copying {
			if skip >= n {
				skip -= n
			} else {
				x += n - skip
				skip = 0
			}
		} else {
			run := src[i:min(i+n, len(src))]
			i += n
			if skip >= len(run) {
				skip -= len(run)
			} else {
				run = run[skip:]
				skip = 0
				m := min(len(run), width-x)
				copy(dst[x:x+m], run[:m])
				x += m
			}
		}

		copying = !copying
	}
}

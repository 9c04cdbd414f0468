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

var spriteLayout dataarm.Layout

var (
	spriteDst       = spriteLayout.Ptr("dst")
	spriteScrnSizeX = spriteLayout.U16("scrnSizeX")
	spriteSprX      = spriteLayout.U16("sprX")
	spriteSprY      = spriteLayout.U16("sprY")
	spriteSpr       = spriteLayout.Ptr("spr")
	spriteSprWidth  = spriteLayout.U16("sprWidth")
	spriteSprHeight = spriteLayout.U16("sprHeight")
	spriteSprPitch  = spriteLayout.U16("sprPitch")
)

// Sprite draws the sprite at Spr onto a screen buffer at (SprX, SprY). The
// stride of the screen buffer is ScrnSizeX. Zero bytes in the sprite are
// transparent.
type Sprite struct {
	Dst       uint32
	ScrnSizeX uint16
	SprX      uint16
	SprY      uint16
	Spr       uint32
	SprWidth  uint16
	SprHeight uint16
	SprPitch  uint16
}

func (p *Sprite) ID() ID {
	return IDSprite
}

func (p *Sprite) Layout() *dataarm.Layout {
	return &spriteLayout
}

func (p *Sprite) Encode(b dataarm.Block) {
	b.WritePtr(spriteDst, p.Dst)
	b.Write16(spriteScrnSizeX, p.ScrnSizeX)
	b.Write16(spriteSprX, p.SprX)
	b.Write16(spriteSprY, p.SprY)
	b.WritePtr(spriteSpr, p.Spr)
	b.Write16(spriteSprWidth, p.SprWidth)
	b.Write16(spriteSprHeight, p.SprHeight)
	b.Write16(spriteSprPitch, p.SprPitch)
}

func (p *Sprite) Decode(b dataarm.Block) {
	p.Dst = b.ReadPtr(spriteDst)
	p.ScrnSizeX = b.Read16(spriteScrnSizeX)
	p.SprX = b.Read16(spriteSprX)
	p.SprY = b.Read16(spriteSprY)
	p.Spr = b.ReadPtr(spriteSpr)
	p.SprWidth = b.Read16(spriteSprWidth)
	p.SprHeight = b.Read16(spriteSprHeight)
	p.SprPitch = b.Read16(spriteSprPitch)
}

func (p *Sprite) dstOrigin() uint32 {
	return p.Dst + uint32(p.SprY)*uint32(p.ScrnSizeX) + uint32(p.SprX)
}

func (p *Sprite) Validate(mem arm.SharedMemory) error {
	if uint32(p.SprX)+uint32(p.SprWidth) > uint32(p.ScrnSizeX) {
		return invalid(IDSprite, "sprite (%d+%d) is wider than screen (%d)", p.SprX, p.SprWidth, p.ScrnSizeX)
	}
	if err := checkRect(mem, IDSprite, p.dstOrigin(), uint32(p.ScrnSizeX), uint32(p.SprWidth), uint32(p.SprHeight)); err != nil {
		return err
	}
	return checkRect(mem, IDSprite, p.Spr, uint32(p.SprPitch), uint32(p.SprWidth), uint32(p.SprHeight))
}

func (p *Sprite) Run(mem arm.SharedMemory) uint32 {
	if p.SprWidth == 0 || p.SprHeight == 0 {
		return 0
	}

	w := int(p.SprWidth)
	dp := int(p.ScrnSizeX)
	sp := int(p.SprPitch)
	dst := arm.From(mem, p.dstOrigin())
	spr := arm.From(mem, p.Spr)

	for y := range int(p.SprHeight) {
		d := dst[y*dp : y*dp+w]
		for x, c := range spr[y*sp : y*sp+w] {
			if c != 0 {
				d[x] = c
			}
		}
	}

	return 0
}

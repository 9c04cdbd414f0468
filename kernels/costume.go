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

// CostumeShadowMode is the shadow mode bit that causes every drawn pixel to
// be taken from the shadow table.
const CostumeShadowMode = 0x20

// CostumeShadowColour is the palette value that is replaced by the shadow
// table entry for the pixel being drawn over.
const CostumeShadowColour = 13

// CostumeUnscaled is the scale value that disables scaling on an axis.
const CostumeUnscaled = 255

var costumeLayout dataarm.Layout

var (
	costumeSrc         = costumeLayout.Ptr("src")
	costumeDst         = costumeLayout.Ptr("dst")
	costumeMask        = costumeLayout.Ptr("mask")
	costumePalette     = costumeLayout.Ptr("palette")
	costumeShadowTable = costumeLayout.Ptr("shadowTable")
	costumeScaleTable  = costumeLayout.Ptr("scaleTable")
	costumeX           = costumeLayout.U32("x")
	costumeY           = costumeLayout.U32("y")
	costumeHeight      = costumeLayout.U16("height")
	costumeSkipWidth   = costumeLayout.U16("skipWidth")
	costumeOutPitch    = costumeLayout.U16("outPitch")
	costumeOutWidth    = costumeLayout.U16("outWidth")
	costumeOutHeight   = costumeLayout.U16("outHeight")
	costumeNumStrips   = costumeLayout.U16("numStrips")
	costumeScaleX      = costumeLayout.U8("scaleX")
	costumeScaleY      = costumeLayout.U8("scaleY")
	costumeScaleIndexX = costumeLayout.U8("scaleIndexX")
	costumeScaleIndexY = costumeLayout.U8("scaleIndexY")
	costumeScaleXStep  = costumeLayout.U8("scaleXStep")
	costumeShr         = costumeLayout.U8("shr")
	costumeColorMask   = costumeLayout.U8("colorMask")
	costumeShadowMode  = costumeLayout.U8("shadowMode")
	costumeRepLen      = costumeLayout.U8("repLen")
	costumeRepColor    = costumeLayout.U8("repColor")
)

// Costume draws one limb of an actor costume. The image is stored in columns
// of Height pixels, compressed as runs. Each run byte holds the colour in the
// upper bits (shifted right by Shr) and the length in the lower bits (masked
// by ColorMask). A length of zero means the length is in the next byte.
//
// Dst is the address of an output surface of OutWidth by OutHeight with a
// pitch of OutPitch. Drawing starts at column X and row Y. Rows outside the
// surface are masked, as are pixels with a set bit in the 1-bpp Mask, which
// has the same number of rows as the output and is NumStrips bytes wide. A
// zero Mask address disables masking.
//
// Rows and columns are dropped according to the 256 byte ScaleTable, unless
// ScaleY or ScaleX is CostumeUnscaled. After each column the output moves
// ScaleXStep columns (which is either 1 or -1). SkipWidth columns are drawn
// in total, unless the output leaves the surface horizontally.
//
// Colour zero is never drawn. Other colours are looked up in the 256 byte
// Palette. If ShadowMode has the CostumeShadowMode bit set, or the palette
// value is CostumeShadowColour and there is a ShadowTable, the pixel is
// replaced by the ShadowTable entry for the pixel being drawn over.
//
// RepLen and RepColor continue a run from a previous call. The kernel writes
// back X and ScaleIndexX. The result is the final value of X.
type Costume struct {
	Src         uint32
	Dst         uint32
	Mask        uint32
	Palette     uint32
	ShadowTable uint32
	ScaleTable  uint32
	X           int32
	Y           int32
	Height      uint16
	SkipWidth   uint16
	OutPitch    uint16
	OutWidth    uint16
	OutHeight   uint16
	NumStrips   uint16
	ScaleX      uint8
	ScaleY      uint8
	ScaleIndexX uint8
	ScaleIndexY uint8
	ScaleXStep  int8
	Shr         uint8
	ColorMask   uint8
	ShadowMode  uint8
	RepLen      uint8
	RepColor    uint8
}

func (p *Costume) ID() ID {
	return IDCostume
}

func (p *Costume) Layout() *dataarm.Layout {
	return &costumeLayout
}

func (p *Costume) Encode(b dataarm.Block) {
	b.WritePtr(costumeSrc, p.Src)
	b.WritePtr(costumeDst, p.Dst)
	b.WritePtr(costumeMask, p.Mask)
	b.WritePtr(costumePalette, p.Palette)
	b.WritePtr(costumeShadowTable, p.ShadowTable)
	b.WritePtr(costumeScaleTable, p.ScaleTable)
	b.Write32(costumeX, uint32(p.X))
	b.Write32(costumeY, uint32(p.Y))
	b.Write16(costumeHeight, p.Height)
	b.Write16(costumeSkipWidth, p.SkipWidth)
	b.Write16(costumeOutPitch, p.OutPitch)
	b.Write16(costumeOutWidth, p.OutWidth)
	b.Write16(costumeOutHeight, p.OutHeight)
	b.Write16(costumeNumStrips, p.NumStrips)
	b.Write8(costumeScaleX, p.ScaleX)
	b.Write8(costumeScaleY, p.ScaleY)
	b.Write8(costumeScaleIndexX, p.ScaleIndexX)
	b.Write8(costumeScaleIndexY, p.ScaleIndexY)
	b.Write8(costumeScaleXStep, uint8(p.ScaleXStep))
	b.Write8(costumeShr, p.Shr)
	b.Write8(costumeColorMask, p.ColorMask)
	b.Write8(costumeShadowMode, p.ShadowMode)
	b.Write8(costumeRepLen, p.RepLen)
	b.Write8(costumeRepColor, p.RepColor)
}

func (p *Costume) Decode(b dataarm.Block) {
	p.Src = b.ReadPtr(costumeSrc)
	p.Dst = b.ReadPtr(costumeDst)
	p.Mask = b.ReadPtr(costumeMask)
	p.Palette = b.ReadPtr(costumePalette)
	p.ShadowTable = b.ReadPtr(costumeShadowTable)
	p.ScaleTable = b.ReadPtr(costumeScaleTable)
	p.X = int32(b.Read32(costumeX))
	p.Y = int32(b.Read32(costumeY))
	p.Height = b.Read16(costumeHeight)
	p.SkipWidth = b.Read16(costumeSkipWidth)
	p.OutPitch = b.Read16(costumeOutPitch)
	p.OutWidth = b.Read16(costumeOutWidth)
	p.OutHeight = b.Read16(costumeOutHeight)
	p.NumStrips = b.Read16(costumeNumStrips)
	p.ScaleX = b.Read8(costumeScaleX)
	p.ScaleY = b.Read8(costumeScaleY)
	p.ScaleIndexX = b.Read8(costumeScaleIndexX)
	p.ScaleIndexY = b.Read8(costumeScaleIndexY)
	p.ScaleXStep = int8(b.Read8(costumeScaleXStep))
	p.Shr = b.Read8(costumeShr)
	p.ColorMask = b.Read8(costumeColorMask)
	p.ShadowMode = b.Read8(costumeShadowMode)
	p.RepLen = b.Read8(costumeRepLen)
	p.RepColor = b.Read8(costumeRepColor)
}

func (p *Costume) Validate(mem arm.SharedMemory) error {
	if p.Height == 0 {
		return invalid(IDCostume, "height is zero")
	}
	if p.SkipWidth == 0 {
		return invalid(IDCostume, "skip width is zero")
	}
	if p.ScaleXStep != 1 && p.ScaleXStep != -1 {
		return invalid(IDCostume, "scale step (%d) must be 1 or -1", p.ScaleXStep)
	}
	if p.Shr > 7 {
		return invalid(IDCostume, "colour shift (%d) is too large", p.Shr)
	}
	if p.X < 0 || p.X >= int32(p.OutWidth) {
		return invalid(IDCostume, "x (%d) is outside of output", p.X)
	}
	if err := checkRange(mem, IDCostume, p.Src, 1, 1); err != nil {
		return err
	}
	if err := checkRect(mem, IDCostume, p.Dst, uint32(p.OutPitch), uint32(p.OutWidth), uint32(p.OutHeight)); err != nil {
		return err
	}
	if err := checkRange(mem, IDCostume, p.Palette, 256, 1); err != nil {
		return err
	}
	if err := checkRange(mem, IDCostume, p.ScaleTable, 256, 1); err != nil {
		return err
	}
	if p.ShadowTable != 0 {
		if err := checkRange(mem, IDCostume, p.ShadowTable, 256, 1); err != nil {
			return err
		}
	}
	if p.Mask != 0 {
		if err := checkRange(mem, IDCostume, p.Mask, uint32(p.NumStrips)*uint32(p.OutHeight), 1); err != nil {
			return err
		}
	}
	return nil
}

func revBitMask(x int32) uint8 {
	return 0x80 >> (x & 7)
}

func (p *Costume) Run(mem arm.SharedMemory) uint32 {
	src := arm.From(mem, p.Src)
	out := arm.From(mem, p.Dst)
	palette := arm.Bytes(mem, p.Palette, 256)
	scaleTable := arm.Bytes(mem, p.ScaleTable, 256)

	var shadowTable []byte
	if p.ShadowTable != 0 {
		shadowTable = arm.Bytes(mem, p.ShadowTable, 256)
	}

	var mask []byte
	if p.Mask != 0 {
		mask = arm.From(mem, p.Mask)
	}

	pitch := int(p.OutPitch)
	strips := int(p.NumStrips)

	// offsets into out and mask. these are negative for rows above the
	// output, which are never drawn
	col := int(p.Y)*pitch + int(p.X)
	dst := col
	m := int(p.Y)*strips + int(p.X/8)

	x := p.X
	y := p.Y
	maskbit := revBitMask(x)
	height := p.Height
	skipWidth := p.SkipWidth
	scaleIndexX := p.ScaleIndexX
	scaleIndexY := p.ScaleIndexY

	length := p.RepLen
	color := p.RepColor
	resume := length != 0

	var i int

	done := func() uint32 {
		p.X = x
		p.ScaleIndexX = scaleIndexX
		return uint32(x)
	}

	for {
		if !resume {
			length = src[i]
			i++
			color = length >> p.Shr
			length &= p.ColorMask
			if length == 0 {
				length = src[i]
				i++
			}
		}

		for {
			if !resume {
				draw := p.ScaleY == CostumeUnscaled || scaleTable[scaleIndexY] < p.ScaleY
				if p.ScaleY != CostumeUnscaled {
					scaleIndexY++
				}

				if draw {
					masked := y < 0 || y >= int32(p.OutHeight) || (mask != nil && mask[m]&maskbit != 0)
					if color != 0 && !masked {
						var pcolor uint8
						if p.ShadowMode&CostumeShadowMode != 0 {
							pcolor = shadowTable[out[dst]]
						} else {
							pcolor = palette[color]
							if pcolor == CostumeShadowColour && shadowTable != nil {
								pcolor = shadowTable[out[dst]]
							}
						}
						out[dst] = pcolor
					}
					dst += pitch
					m += strips
					y++
				}

				height--
				if height == 0 {
					skipWidth--
					if skipWidth == 0 {
						return done()
					}
					height = p.Height
					y = p.Y
					scaleIndexY = p.ScaleIndexY

					if p.ScaleX == CostumeUnscaled || scaleTable[scaleIndexX] < p.ScaleX {
						x += int32(p.ScaleXStep)
						if x < 0 || x >= int32(p.OutWidth) {
							return done()
						}
						maskbit = revBitMask(x)
						col += int(p.ScaleXStep)
					}
					scaleIndexX += uint8(p.ScaleXStep)
					dst = col
					m = int(p.Y)*strips + int(x/8)
				}
			}
			resume = false

			length--
			if length == 0 {
				break // for loop
			}
		}
	}
}

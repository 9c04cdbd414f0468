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

import (
	"fmt"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/kernels"
	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/pno"
	"github.com/jetsetilly/pnokernels/surface"
)

// Sentinel error patterns.
const (
	UnsuitableScreen = "scene: unsuitable logical screen: %v"
)

// Minimum size of the logical screen.
const (
	MinWidth  = 160
	MinHeight = 120
)

const (
	ballSize    = 32
	shadowSize  = 48
	panelHeight = 16
)

// compressed asset in shared memory
type asset struct {
	addr uint32
	size uint32
}

// Scene draws the animation to a logical screen.
type Scene struct {
	mem    surface.Memory
	kernel pno.Kernel
	screen surface.Surface

	palette *Palette

	horizon int
	layerH  int

	// compressed assets
	backdrop asset
	ball     asset
	window   asset
	layer    asset
	costume  [2]asset

	// uncompressed assets
	pillar      uint32
	panel       uint32
	shadow      uint32
	costumePal  uint32
	shadowTable uint32
	scaleTable  uint32
	mask        uint32

	// working buffers for decompressed assets
	backdropBuf uint32
	ballBuf     uint32
	windowBuf   uint32
	shrinkBuf   uint32
	textBuf     uint32
}

// NewScene is the preferred method of initialisation for the Scene type. The
// screen must be an 8-bit surface of at least MinWidth by MinHeight pixels.
func NewScene(mem surface.Memory, kernel pno.Kernel, screen surface.Surface) (*Scene, error) {
	if screen.Depth != surface.Depth8 || screen.Width < MinWidth || screen.Height < MinHeight {
		return nil, curated.Errorf(UnsuitableScreen, screen)
	}

	sc := &Scene{
		mem:     mem,
		kernel:  kernel,
		screen:  screen,
		palette: newPalette(),
		horizon: screen.Height * 2 / 3,
		layerH:  screen.Height / 3,
	}

	if err := sc.createAssets(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return sc, nil
}

// Palette returns the palette for the scene.
func (sc *Scene) Palette() *Palette {
	return sc.palette
}

// Screen returns the logical screen drawn by Draw().
func (sc *Scene) Screen() surface.Surface {
	return sc.screen
}

func (sc *Scene) store(label string, data []byte) (uint32, error) {
	addr, err := sc.mem.Alloc(label, uint32(len(data)))
	if err != nil {
		return 0, err
	}
	copy(arm.Bytes(sc.mem, addr, uint32(len(data))), data)
	return addr, nil
}

func (sc *Scene) storeAsset(label string, data []byte) (asset, error) {
	addr, err := sc.store(label, data)
	return asset{addr: addr, size: uint32(len(data))}, err
}

func (sc *Scene) buffer(label string, size int) (uint32, error) {
	return sc.mem.Alloc(label, uint32(size))
}

func (sc *Scene) createAssets() error {
	w, h := sc.screen.Width, sc.screen.Height

	var err error

	sc.backdrop, err = sc.storeAsset("backdrop", kernels.EncodeTony(backdrop(w, h, sc.horizon).pix))
	if err != nil {
		return err
	}

	enc, err := kernels.EncodeRLE7(ball(ballSize, reds+8, false).pix)
	if err != nil {
		return err
	}
	sc.ball, err = sc.storeAsset("ball", enc)
	if err != nil {
		return err
	}

	win := window(40, 24)
	sc.window, err = sc.storeAsset("window", kernels.EncodeRLE0(win.pix))
	if err != nil {
		return err
	}

	sc.layer, err = sc.storeAsset("hills", kernels.BuildParallax("hills", hills(w*2, sc.layerH)))
	if err != nil {
		return err
	}

	for i := range sc.costume {
		sc.costume[i], err = sc.storeAsset(fmt.Sprintf("figure %d", i), encodeCostume(figure(i)))
		if err != nil {
			return err
		}
	}

	sc.pillar, err = sc.store("pillar", pillar(16, sc.horizon).pix)
	if err != nil {
		return err
	}
	sc.panel, err = sc.store("panel", panel(w, panelHeight).pix)
	if err != nil {
		return err
	}
	sc.shadow, err = sc.store("shadow", ball(shadowSize, reds+30, true).pix)
	if err != nil {
		return err
	}
	sc.costumePal, err = sc.store("costume palette", costumePalette())
	if err != nil {
		return err
	}
	sc.shadowTable, err = sc.store("shadow table", shadowTable())
	if err != nil {
		return err
	}
	sc.scaleTable, err = sc.store("scale table", scaleTable())
	if err != nil {
		return err
	}

	// the pillar obstructs the figure
	strips := (w + 7) / 8
	mask := make([]byte, strips*h)
	for y := range sc.horizon {
		mask[y*strips+w/2/8] = 0xff
		mask[y*strips+w/2/8+1] = 0xff
	}
	sc.mask, err = sc.store("mask", mask)
	if err != nil {
		return err
	}

	sc.backdropBuf, err = sc.buffer("backdrop buffer", w*h)
	if err != nil {
		return err
	}
	sc.ballBuf, err = sc.buffer("ball buffer", ballSize*ballSize)
	if err != nil {
		return err
	}
	sc.windowBuf, err = sc.buffer("window buffer", win.w*win.h)
	if err != nil {
		return err
	}
	sc.shrinkBuf, err = sc.buffer("shrink buffer", shadowSize*shadowSize)
	if err != nil {
		return err
	}
	sc.textBuf, err = sc.buffer("text buffer", w*panelHeight)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "scene", "created assets for %s", sc.screen)

	return nil
}

// Shake returns the shake offset in logical rows for the frame.
func Shake(frame int) int {
	if (frame/50)%4 != 3 {
		return 0
	}
	return triangle(frame, 4)
}

func (sc *Scene) call(p kernels.Params) (uint32, error) {
	r, err := sc.kernel.Call(p)
	if err != nil {
		return 0, fmt.Errorf("scene: %s: %w", p.ID(), err)
	}
	return r, nil
}

// Draw frame n of the animation to the logical screen.
func (sc *Scene) Draw(n int) error {
	w, h := sc.screen.Width, sc.screen.Height
	pitch := uint16(sc.screen.Pitch)
	scr := sc.screen.Addr

	steps := []func() error{
		// backdrop
		func() error {
			if _, err := sc.call(&kernels.Tony{Src: sc.backdrop.addr, CompSize: sc.backdrop.size, Dst: sc.backdropBuf}); err != nil {
				return err
			}
			_, err := sc.call(&kernels.CopyRect{
				Dst: scr, Src: sc.backdropBuf, DstPitch: pitch, SrcPitch: uint16(w), W: uint16(w), H: uint16(h),
			})
			return err
		},

		// hills
		func() error {
			_, err := sc.call(&kernels.Parallax{
				Data:        sc.layer.addr,
				LineIndexes: sc.layer.addr + kernels.ParallaxHeaderSize,
				Dst:         scr,
				ScrnSizeX:   pitch,
				ScrnScrlY:   uint16(h - sc.layerH),
				ParaScrlX:   uint16(triangle(n*2, w)),
				ScrnWidth:   uint16(w),
				ScrnHeight:  uint16(sc.layerH),
			})
			return err
		},

		// pillar and window
		func() error {
			if _, err := sc.call(&kernels.Blit{
				Dst: scr, DstPitch: pitch, X: uint16(w / 2 / 8 * 8), Y: 0, Src: sc.pillar, SrcPitch: 16, W: 16, H: uint16(sc.horizon),
			}); err != nil {
				return err
			}
			if _, err := sc.call(&kernels.RLE0{Src: sc.window.addr, CompSize: sc.window.size, Dst: sc.windowBuf}); err != nil {
				return err
			}
			_, err := sc.call(&kernels.Blit{
				Dst: scr, DstPitch: pitch, X: uint16(w - 48), Y: panelHeight + 8, Src: sc.windowBuf, SrcPitch: 40, W: 40, H: 24,
			})
			return err
		},

		// walking figure
		func() error {
			c := &kernels.Costume{
				Src:         sc.costume[(n/8)%2].addr,
				Dst:         scr,
				Mask:        sc.mask,
				Palette:     sc.costumePal,
				ShadowTable: sc.shadowTable,
				ScaleTable:  sc.scaleTable,
				X:           int32(triangle(n, w-figureW)),
				Y:           int32(sc.horizon - figureH + 8),
				Height:      figureH,
				SkipWidth:   figureW,
				OutPitch:    pitch,
				OutWidth:    uint16(w),
				OutHeight:   uint16(h),
				NumStrips:   uint16((w + 7) / 8),
				ScaleX:      kernels.CostumeUnscaled,
				ScaleY:      kernels.CostumeUnscaled,
				ScaleXStep:  1,
				Shr:         costumeShr,
				ColorMask:   costumeMask,
			}
			if (n/100)%2 == 1 {
				c.ScaleX = 160
				c.ScaleY = 160
			}
			_, err := sc.call(c)
			return err
		},

		// bouncing balls
		func() error {
			if _, err := sc.call(&kernels.RLE7{Src: sc.ball.addr, CompSize: sc.ball.size, Dst: sc.ballBuf}); err != nil {
				return err
			}
			x := triangle(n*3, w-ballSize)
			y := panelHeight + triangle(n*2, sc.horizon-panelHeight-ballSize)
			if _, err := sc.call(&kernels.Sprite{
				Dst: scr, ScrnSizeX: pitch, SprX: uint16(x), SprY: uint16(y),
				Spr: sc.ballBuf, SprWidth: ballSize, SprHeight: ballSize, SprPitch: ballSize,
			}); err != nil {
				return err
			}
			_, err := sc.call(&kernels.Blit{
				Dst: scr, DstPitch: pitch, X: uint16(w - ballSize - x), Y: uint16(y),
				Src: sc.ballBuf, SrcPitch: ballSize, W: ballSize, H: ballSize, Masked: true, XFlip: true,
			})
			return err
		},

		// shrinking shadow
		func() error {
			s := &kernels.Shrink{
				Src: sc.shadow, Width: shadowSize, Height: shadowSize,
				Scale: uint32(64 + triangle(n*4, 192)), Dst: sc.shrinkBuf,
			}
			r, err := sc.call(s)
			if err != nil {
				return err
			}
			rw, rh := r>>16, r&0xffff
			if rw == 0 || rh == 0 {
				return nil
			}
			_, err = sc.call(&kernels.Blit{
				Dst: scr, DstPitch: pitch, X: uint16(w/4 - int(rw)/2), Y: uint16(h - int(rh) - 4),
				Src: sc.shrinkBuf, SrcPitch: uint16(rw), W: uint16(rw), H: uint16(rh), Masked: true,
			})
			return err
		},

		// text panel
		func() error {
			if _, err := sc.call(&kernels.CopyRect{
				Dst: scr, Src: sc.panel, DstPitch: pitch, SrcPitch: uint16(w), W: uint16(w), H: panelHeight,
			}); err != nil {
				return err
			}

			text := arm.Bytes(sc.mem, sc.textBuf, uint32(w*panelHeight))
			for i := range text {
				text[i] = kernels.DefaultTextTransparent
			}
			drawText(text, w, 4, 3, fmt.Sprintf("PNO KERNELS %05d", n), white)

			_, err := sc.call(&kernels.TextStrip{
				Dst: scr, DstPitch: pitch, Src: scr, SrcPitch: pitch,
				Text: sc.textBuf, TextPitch: uint16(w), W: uint16(w), H: panelHeight,
				Transparent: kernels.DefaultTextTransparent,
			})
			return err
		},
	}

	for _, s := range steps {
		if err := s(); err != nil {
			return err
		}
	}

	return nil
}

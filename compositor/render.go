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

package compositor

import (
	"fmt"
	"image"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/assert"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/kernels"
	"github.com/jetsetilly/pnokernels/surface"
)

// SetShake requests a vertical displacement of the logical screen. The
// offset is in logical rows and is applied from the next frame.
func (c *Compositor) SetShake(rows int) {
	c.owner.Claim("compositor")
	c.shakeRequested = max(rows, 0)
}

// ShowOverlay replaces the logical screen with the 16-bit overlay. The
// overlay must be the same size as the work surface.
func (c *Compositor) ShowOverlay(s surface.Surface) error {
	c.owner.Claim("compositor")
	if s.Depth != surface.Depth16 || s.Width != c.work.Width || s.Height != c.work.Height {
		return curated.Errorf(OverlayMismatch, s)
	}
	c.overlay = s
	c.overlayVisible = true
	return nil
}

// HideOverlay returns to drawing the logical screen.
func (c *Compositor) HideOverlay() {
	c.owner.Claim("compositor")
	c.overlayVisible = false
}

// scaledShake converts the requested shake to screen pixels
func (c *Compositor) scaledShake() int {
	if c.overlayVisible {
		return 0
	}

	var s int
	switch {
	case c.mode == Normal:
		s = c.shakeRequested
	case c.scaled:
		s = c.shakeRequested * c.h / c.src.Height
	default:
		s = kernels.StretchLen(c.shakeRequested)
	}
	return min(s, c.h)
}

func (c *Compositor) params(src surface.Surface) kernels.Params {
	if c.overlayVisible {
		return &kernels.CopyRect{
			Dst:      c.work.Addr,
			Src:      c.overlay.Addr,
			DstPitch: uint16(c.work.Pitch),
			SrcPitch: uint16(c.overlay.Pitch),
			W:        uint16(c.work.Width * 2),
			H:        uint16(c.work.Height),
		}
	}

	if c.scaled {
		return &kernels.RenderScaled{
			Src:      src.Addr,
			Dst:      c.work.Addr,
			DstPitch: uint16(c.work.Pitch),
			W:        uint16(c.w),
			H:        uint16(c.h),
			Palette:  c.paletteAddr,
			TableX:   c.tableX,
			TableY:   c.tableY,
			Rotate:   c.mode == WidePortrait,
		}
	}

	r := kernels.Render{
		Src:      src.Addr,
		SrcPitch: uint16(src.Pitch),
		Dst:      c.work.Addr,
		DstPitch: uint16(c.work.Pitch),
		W:        uint16(src.Width),
		H:        uint16(src.Height),
		Palette:  c.paletteAddr,
	}

	switch c.mode {
	case WideLandscape:
		return (*kernels.RenderLandscape15x)(&r)
	case WidePortrait:
		return (*kernels.RenderPortrait15x)(&r)
	}
	return (*kernels.Render1x)(&r)
}

// RenderFrame draws the logical screen in src to the work surface with the
// kernel for the current mode. The returned Frame describes how the work
// surface should be placed on the screen.
func (c *Compositor) RenderFrame(src surface.Surface) (Frame, error) {
	c.owner.Claim("compositor")

	if !c.ready {
		assert.That(false, "render before transition")
		return Frame{}, curated.Errorf(ModeNotReady, c.mode)
	}

	if src.Depth != surface.Depth8 || src.Width != c.src.Width || src.Height != c.src.Height {
		return Frame{}, curated.Errorf(SourceMismatch, src)
	}

	// the scale tables include the pitch of the source
	if c.scaled && src.Pitch != c.src.Pitch {
		return Frame{}, curated.Errorf(SourceMismatch, src)
	}

	if !c.overlayVisible {
		kernels.PutPalette(arm.Bytes(c.mem, c.paletteAddr, kernels.PaletteSize), c.palette.NativePalette())
	}

	if _, err := c.kernel.Call(c.params(src)); err != nil {
		return Frame{}, fmt.Errorf("compositor: %w", err)
	}

	return c.frame(), nil
}

// frame applies the shake and returns the Frame for the work surface
func (c *Compositor) frame() Frame {
	s := c.scaledShake()
	last := c.shakeApplied
	c.shakeApplied = s

	dw, dh := c.work.Width, c.work.Height
	f := Frame{
		Rect:   image.Rect(0, 0, dw, dh),
		Origin: c.origin,
	}

	// in portrait mode the bottom of the logical screen is on the left of
	// the screen. shaking moves the image to the left and uncovers columns
	// on the right
	if c.mode == WidePortrait {
		f.Rect.Min.X = s
		if s > last {
			f.Erase = image.Rect(c.origin.X+dw-s, c.origin.Y, c.origin.X+dw-last, c.origin.Y+dh)
		}
		return f
	}

	f.Rect.Max.Y = dh - s
	f.Origin.Y += s
	if s > last {
		f.Erase = image.Rect(c.origin.X, c.origin.Y+last, c.origin.X+dw, c.origin.Y+s)
	}
	return f
}

// Present copies the Frame from the work surface to the screen and clears
// the Erase area. The screen must be a 16-bit surface.
func (c *Compositor) Present(screen surface.Surface, f Frame) {
	c.owner.Claim("compositor")

	assert.That(screen.Depth == surface.Depth16, "screen is not 16bit: %s", screen)

	work := surface.Bind(c.mem, c.work)
	scr := surface.Bind(c.mem, screen)

	r := f.Rect.Intersect(image.Rect(0, 0, work.Width, work.Height))
	dst := r.Sub(r.Min).Add(f.Origin).Intersect(image.Rect(0, 0, scr.Width, scr.Height))

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		wy := r.Min.Y + y - f.Origin.Y
		wx := r.Min.X + dst.Min.X - f.Origin.X
		copy(scr.Row(y)[dst.Min.X*2:dst.Max.X*2], work.Row(wy)[wx*2:])
	}

	scr.Fill16(f.Erase, 0)
}

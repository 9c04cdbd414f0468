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
	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/pno"
	"github.com/jetsetilly/pnokernels/surface"
)

// Sentinel error patterns returned by the Compositor.
const (
	ModeNotReady    = "compositor: mode not ready: %v"
	ScreenTooSmall  = "compositor: screen (%dx%d) is too small for %v (%dx%d)"
	SourceMismatch  = "compositor: source does not match logical screen: %v"
	OverlayMismatch = "compositor: overlay does not match work surface: %v"
)

// The logical screen size drawn by the fixed 1.5x kernels.
const (
	LogicalWidth  = 320
	LogicalHeight = 200
)

// Source describes the logical 8-bit screen given to RenderFrame().
type Source struct {
	Width  int
	Height int
	Pitch  int
}

// Frame is the result of RenderFrame(). Rect is the area of the work surface
// to copy to the screen at Origin. Erase is the area of the screen that was
// uncovered by a change in the shake offset and should be cleared. Erase is
// empty if nothing needs clearing.
type Frame struct {
	Rect   image.Rectangle
	Origin image.Point
	Erase  image.Rectangle
}

func (f Frame) String() string {
	return fmt.Sprintf("%v -> %v (erase %v)", f.Rect, f.Origin, f.Erase)
}

// Compositor renders the logical screen for the current Mode.
type Compositor struct {
	mem     surface.Memory
	alloc   surface.Allocator
	kernel  pno.Kernel
	palette Palette
	src     Source

	owner assert.Owner

	// set by Transition() once the work surface and tables are ready
	ready bool
	mode  Mode

	// the fixed 1.5x kernels are used if scaled is false in the wide modes
	scaled bool

	// size of the scaled image before any rotation
	w, h int

	// position of the work surface on the screen
	origin image.Point

	work        surface.Surface
	paletteAddr uint32
	tableX      uint32
	tableY      uint32

	overlay        surface.Surface
	overlayVisible bool

	// shake in logical rows as requested by SetShake() and the shake in
	// screen pixels applied to the most recent frame
	shakeRequested int
	shakeApplied   int
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. Transition() must be called before the first frame is rendered.
func NewCompositor(mem surface.Memory, alloc surface.Allocator, kernel pno.Kernel, palette Palette, src Source) (*Compositor, error) {
	if src.Width <= 0 || src.Height <= 0 || src.Pitch < src.Width {
		return nil, curated.Errorf(SourceMismatch, fmt.Sprintf("%dx%d pitch %d", src.Width, src.Height, src.Pitch))
	}

	c := &Compositor{
		mem:     mem,
		alloc:   alloc,
		kernel:  kernel,
		palette: palette,
		src:     src,
	}

	var err error
	c.paletteAddr, err = mem.Alloc("native palette", kernels.PaletteSize)
	if err != nil {
		return nil, fmt.Errorf("compositor: %w", err)
	}

	return c, nil
}

// Mode returns the current mode and whether it is ready for rendering.
func (c *Compositor) Mode() (Mode, bool) {
	return c.mode, c.ready
}

// Work returns the work surface for the current mode.
func (c *Compositor) Work() surface.Surface {
	return c.work
}

// Scaled returns true if the current mode uses the scale table kernel.
func (c *Compositor) Scaled() bool {
	return c.scaled
}

// release the work surface and scale tables. the overlay is sized for the
// work surface so it is forgotten too
func (c *Compositor) release() error {
	c.ready = false
	c.overlay = surface.Surface{}
	c.overlayVisible = false

	if c.work.Addr != 0 {
		if err := c.alloc.Release(c.work); err != nil {
			return fmt.Errorf("compositor: %w", err)
		}
		c.work = surface.Surface{}
	}

	for _, t := range []*uint32{&c.tableX, &c.tableY} {
		if *t != 0 {
			if err := c.mem.Free(*t); err != nil {
				return fmt.Errorf("compositor: %w", err)
			}
			*t = 0
		}
	}

	return nil
}

// Close releases all shared memory owned by the Compositor.
func (c *Compositor) Close() error {
	c.owner.Claim("compositor")
	if err := c.release(); err != nil {
		return err
	}
	if c.paletteAddr != 0 {
		if err := c.mem.Free(c.paletteAddr); err != nil {
			return fmt.Errorf("compositor: %w", err)
		}
		c.paletteAddr = 0
	}
	return nil
}

// fit returns the largest w by h that fits inside maxW by maxH with the
// aspect ratio of the source
func fit(srcW, srcH int, maxW, maxH int) (int, int) {
	w := maxW
	h := maxW * srcH / srcW
	if h > maxH {
		h = maxH
		w = maxH * srcW / srcH
	}
	return max(w, 1), max(h, 1)
}

// Transition reads the orientation provider and prepares the Compositor for
// the chosen mode. The work surface is always reallocated and the scale
// tables are rebuilt if the mode needs them. Any overlay is hidden and must be
// shown again with a surface that matches the new work surface.
func (c *Compositor) Transition(o OrientationProvider) error {
	c.owner.Claim("compositor")

	if err := c.release(); err != nil {
		return err
	}

	orientation := o.Orientation()
	aspect := o.AspectCorrection()
	sw, sh := o.ScreenSize()

	c.mode = Normal
	if o.WideMode() {
		if orientation == Portrait {
			c.mode = WidePortrait
		} else {
			c.mode = WideLandscape
		}
	}

	c.scaled = false
	c.w, c.h = c.src.Width, c.src.Height

	// the size of the image on the screen after any rotation
	var dw, dh int

	switch c.mode {
	case Normal:
		dw, dh = c.w, c.h

	case WideLandscape, WidePortrait:
		fixed := c.src.Width == LogicalWidth && c.src.Height == LogicalHeight && !aspect
		c.w = kernels.StretchLen(c.src.Width)
		c.h = kernels.StretchLen(c.src.Height)

		// the image is rotated in portrait mode
		maxW, maxH := sw, sh
		if c.mode == WidePortrait {
			maxW, maxH = sh, sw
		}

		if !fixed || c.w > maxW || c.h > maxH {
			c.scaled = true
			eh := c.src.Height
			if aspect {
				eh = eh * 6 / 5
			}
			c.w, c.h = fit(c.src.Width, eh, maxW, maxH)
		}

		dw, dh = c.w, c.h
		if c.mode == WidePortrait {
			dw, dh = c.h, c.w
		}
	}

	if dw > sw || dh > sh {
		return curated.Errorf(ScreenTooSmall, sw, sh, c.mode, dw, dh)
	}
	c.origin = image.Pt((sw-dw)/2, (sh-dh)/2)

	var err error
	c.work, err = c.alloc.Allocate(dw, dh, surface.Depth16)
	if err != nil {
		return fmt.Errorf("compositor: %w", err)
	}

	if c.scaled {
		if err := c.buildTables(); err != nil {
			return err
		}
	}

	// the whole screen is redrawn after a transition
	c.shakeApplied = 0
	c.ready = true

	logger.Logf(logger.Allow, "compositor", "%s (%s): %dx%d at %v (scaled %v, aspect %v)",
		c.mode, orientation, dw, dh, c.origin, c.scaled, aspect)

	return nil
}

func (c *Compositor) buildTables() error {
	tx, ty := kernels.BuildScaleTables(c.src.Width, c.src.Height, c.src.Pitch, c.w, c.h)

	var err error
	c.tableX, err = c.mem.Alloc("scale table x", kernels.ScaleTableSize(len(tx)))
	if err != nil {
		return fmt.Errorf("compositor: %w", err)
	}
	c.tableY, err = c.mem.Alloc("scale table y", kernels.ScaleTableSize(len(ty)))
	if err != nil {
		return fmt.Errorf("compositor: %w", err)
	}

	kernels.PutScaleTable(arm.Bytes(c.mem, c.tableX, kernels.ScaleTableSize(len(tx))), tx)
	kernels.PutScaleTable(arm.Bytes(c.mem, c.tableY, kernels.ScaleTableSize(len(ty))), ty)

	logger.Logf(logger.Allow, "compositor", "scale tables for %dx%d -> %dx%d", c.src.Width, c.src.Height, c.w, c.h)

	return nil
}

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

package surface

import (
	"fmt"
	"image"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/logger"
)

// Depth is the number of bytes used by each pixel.
type Depth int

// List of valid Depth values.
const (
	Depth8  Depth = 1
	Depth16 Depth = 2
)

func (d Depth) String() string {
	switch d {
	case Depth8:
		return "8bit"
	case Depth16:
		return "16bit"
	}
	return fmt.Sprintf("depth(%d)", int(d))
}

// Surface is an image in shared memory. Pitch is in bytes and is at least
// Width multiplied by the Depth.
type Surface struct {
	Addr   uint32
	Pitch  int
	Width  int
	Height int
	Depth  Depth
}

func (s Surface) String() string {
	return fmt.Sprintf("%dx%d %s @ %#08x (pitch %d)", s.Width, s.Height, s.Depth, s.Addr, s.Pitch)
}

// Size is the number of bytes covered by the surface.
func (s Surface) Size() uint32 {
	if s.Height == 0 {
		return 0
	}
	return uint32((s.Height-1)*s.Pitch + s.Width*int(s.Depth))
}

// Bounds returns the rectangle covered by the surface.
func (s Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Sub returns the part of the surface starting at x, y with the width and
// height given. The pitch is unchanged.
func (s Surface) Sub(x, y, w, h int) Surface {
	return Surface{
		Addr:   s.Addr + uint32(y*s.Pitch+x*int(s.Depth)),
		Pitch:  s.Pitch,
		Width:  w,
		Height: h,
		Depth:  s.Depth,
	}
}

// Sentinel error patterns returned by the allocator.
const (
	InvalidDepth = "surface: invalid depth: %v"
	InvalidSize  = "surface: invalid size: %dx%d"
)

// Allocator creates and releases surfaces.
type Allocator interface {
	// Allocate a surface of the width, height and depth given. The pitch of
	// the surface is rounded up to a multiple of four bytes
	Allocate(w, h int, depth Depth) (Surface, error)

	// Release a surface created by Allocate()
	Release(s Surface) error

	// Pixels returns the pixel data of the surface and its pitch
	Pixels(s Surface) ([]byte, int)
}

// Memory is the shared memory required by the allocator returned by
// NewAllocator().
type Memory interface {
	arm.SharedMemory
	Alloc(label string, size uint32) (uint32, error)
	Free(addr uint32) error
}

type allocator struct {
	mem Memory
}

// NewAllocator returns an Allocator that places surfaces in the heap of the
// shared memory.
func NewAllocator(mem Memory) Allocator {
	return &allocator{mem: mem}
}

func (a *allocator) Allocate(w, h int, depth Depth) (Surface, error) {
	if depth != Depth8 && depth != Depth16 {
		return Surface{}, curated.Errorf(InvalidDepth, depth)
	}
	if w <= 0 || h <= 0 {
		return Surface{}, curated.Errorf(InvalidSize, w, h)
	}

	s := Surface{
		Pitch:  (w*int(depth) + 3) &^ 3,
		Width:  w,
		Height: h,
		Depth:  depth,
	}

	addr, err := a.mem.Alloc(fmt.Sprintf("surface %dx%d %s", w, h, depth), uint32(s.Pitch*h))
	if err != nil {
		return Surface{}, fmt.Errorf("surface: %w", err)
	}
	s.Addr = addr

	logger.Logf(logger.Allow, "surface", "allocated %s", s)

	return s, nil
}

func (a *allocator) Release(s Surface) error {
	if err := a.mem.Free(s.Addr); err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	logger.Logf(logger.Allow, "surface", "released %s", s)
	return nil
}

func (a *allocator) Pixels(s Surface) ([]byte, int) {
	return arm.Bytes(a.mem, s.Addr, s.Size()), s.Pitch
}

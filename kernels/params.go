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
	"fmt"

	"github.com/jetsetilly/pnokernels/arm"
	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/dataarm"
)

// InvalidArgument is returned by Validate() implementations.
const InvalidArgument = "kernels: invalid argument: %s: %v"

// ID identifies a kernel. The value is also the index of the kernel's entry
// in the native function table.
type ID int

// List of valid ID values.
const (
	IDBlit ID = iota
	IDCopyRect
	IDRLE0
	IDRLE7
	IDTony
	IDSprite
	IDTextStrip
	IDParallax
	IDShrink
	IDCostume
	IDRender1x
	IDRenderLandscape15x
	IDRenderPortrait15x
	IDRenderScaled
	NumIDs
)

func (id ID) String() string {
	switch id {
	case IDBlit:
		return "blit"
	case IDCopyRect:
		return "copyrect"
	case IDRLE0:
		return "rle0"
	case IDRLE7:
		return "rle7"
	case IDTony:
		return "tony"
	case IDSprite:
		return "sprite"
	case IDTextStrip:
		return "textstrip"
	case IDParallax:
		return "parallax"
	case IDShrink:
		return "shrink"
	case IDCostume:
		return "costume"
	case IDRender1x:
		return "render1x"
	case IDRenderLandscape15x:
		return "renderlandscape15x"
	case IDRenderPortrait15x:
		return "renderportrait15x"
	case IDRenderScaled:
		return "renderscaled"
	}
	return fmt.Sprintf("kernel(%d)", int(id))
}

// Params is implemented by the parameter struct of every kernel.
type Params interface {
	ID() ID

	// the layout of the parameter block. the same for every instance of
	// the type
	Layout() *dataarm.Layout

	// Encode writes every field to the block. Decode reads every field from
	// the block. Output fields are written by Run() and must be included
	Encode(dataarm.Block)
	Decode(dataarm.Block)

	// Validate checks arguments and, if the memory supports it, the memory
	// ranges accessed by Run()
	Validate(arm.SharedMemory) error

	// Run the kernel. The return value is kernel specific
	Run(arm.SharedMemory) uint32
}

// New returns a zero value Params instance for the kernel ID. Returns nil if
// the ID is not recognised.
func New(id ID) Params {
	switch id {
	case IDBlit:
		return &Blit{}
	case IDCopyRect:
		return &CopyRect{}
	case IDRLE0:
		return &RLE0{}
	case IDRLE7:
		return &RLE7{}
	case IDTony:
		return &Tony{}
	case IDSprite:
		return &Sprite{}
	case IDTextStrip:
		return &TextStrip{}
	case IDParallax:
		return &Parallax{}
	case IDShrink:
		return &Shrink{}
	case IDCostume:
		return &Costume{}
	case IDRender1x:
		return &Render1x{}
	case IDRenderLandscape15x:
		return &RenderLandscape15x{}
	case IDRenderPortrait15x:
		return &RenderPortrait15x{}
	case IDRenderScaled:
		return &RenderScaled{}
	}
	return nil
}

// checker is implemented by memory that can test address ranges. The
// arm.Memory type is the only implementation.
type checker interface {
	Check(event string, addr uint32, n uint32, align uint32) error
}

func checkRange(mem arm.SharedMemory, id ID, addr uint32, n uint32, align uint32) error {
	if c, ok := mem.(checker); ok {
		return c.Check(id.String(), addr, n, align)
	}
	return nil
}

// checkRect checks h rows of w bytes, separated by pitch bytes.
func checkRect(mem arm.SharedMemory, id ID, addr uint32, pitch uint32, w uint32, h uint32) error {
	if w == 0 || h == 0 {
		return nil
	}
	if h > 1 && pitch < w {
		return invalid(id, "pitch (%d) is less than row width (%d)", pitch, w)
	}
	return checkRange(mem, id, addr, (h-1)*pitch+w, 1)
}

func invalid(id ID, format string, args ...any) error {
	return curated.Errorf(InvalidArgument, id, fmt.Sprintf(format, args...))
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

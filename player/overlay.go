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

package player

import (
	"fmt"

	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/surface"
)

// dim halves each component of an RGB565 colour
func dim(c uint16) uint16 {
	return (c >> 1) & 0x7bef
}

// ShowOverlay freezes the most recent frame and shows a dimmed copy of it in
// place of the logical screen. Calling ShowOverlay when the overlay is already
// showing does nothing.
func (pl *Player) ShowOverlay() error {
	if pl.OverlayVisible() {
		return nil
	}

	work := pl.comp.Work()

	ov, err := pl.env.Alloc.Allocate(work.Width, work.Height, surface.Depth16)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	src := surface.Bind(pl.env.Mem, work)
	dst := surface.Bind(pl.env.Mem, ov)
	for y := 0; y < ov.Height; y++ {
		for x := 0; x < ov.Width; x++ {
			dst.Set16(x, y, dim(src.At16(x, y)))
		}
	}

	if err := pl.comp.ShowOverlay(ov); err != nil {
		_ = pl.env.Alloc.Release(ov)
		return fmt.Errorf("player: %w", err)
	}
	pl.overlay = ov

	logger.Logf(pl.env, "player", "overlay shown at frame %d", pl.frame)

	return nil
}

// HideOverlay returns to drawing the scene.
func (pl *Player) HideOverlay() error {
	if !pl.OverlayVisible() {
		return nil
	}

	pl.comp.HideOverlay()
	err := pl.env.Alloc.Release(pl.overlay)
	pl.overlay = surface.Surface{}
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}

// OverlayVisible returns true if the overlay is showing.
func (pl *Player) OverlayVisible() bool {
	return pl.overlay.Addr != 0
}

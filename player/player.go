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

// Package player ties the scene to the compositor and a device screen. Each
// call to Step() draws the next frame of the scene, renders it for the
// current mode and presents it to the screen.
//
// The player is used by the viewer, by the benchmark and by the frame dumper.
package player

import (
	"fmt"

	"github.com/jetsetilly/pnokernels/compositor"
	"github.com/jetsetilly/pnokernels/environment"
	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/scene"
	"github.com/jetsetilly/pnokernels/surface"
)

// Player draws frames of the scene to the device screen.
type Player struct {
	env   *environment.Environment
	scene *scene.Scene
	comp  *compositor.Compositor

	src    surface.Surface
	screen surface.Surface

	// zero Addr when the overlay is not showing
	overlay surface.Surface

	frame int
	last  compositor.Frame
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The logical screen is width by height pixels.
func NewPlayer(env *environment.Environment, width, height int) (*Player, error) {
	pl := &Player{env: env}

	var err error

	pl.src, err = env.Alloc.Allocate(width, height, surface.Depth8)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	pl.scene, err = scene.NewScene(env.Mem, env.Kernel, pl.src)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	pl.comp, err = env.NewCompositor(pl.src, pl.scene.Palette())
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	if err := pl.allocScreen(); err != nil {
		return nil, err
	}

	return pl, nil
}

func (pl *Player) allocScreen() error {
	w, h := pl.env.Device().ScreenSize()
	if pl.screen.Width == w && pl.screen.Height == h {
		return nil
	}

	if pl.screen.Addr != 0 {
		if err := pl.env.Alloc.Release(pl.screen); err != nil {
			return fmt.Errorf("player: %w", err)
		}
	}

	var err error
	pl.screen, err = pl.env.Alloc.Allocate(w, h, surface.Depth16)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	logger.Logf(pl.env, "player", "device screen %dx%d", w, h)

	return nil
}

// Transition must be called when the screen preferences change. The device
// screen is reallocated if the size has changed and is always cleared.
func (pl *Player) Transition() error {
	// the overlay is the size of the old work surface
	if err := pl.HideOverlay(); err != nil {
		return err
	}
	if err := pl.comp.Transition(pl.env.Device()); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := pl.allocScreen(); err != nil {
		return err
	}
	pix := surface.Bind(pl.env.Mem, pl.screen)
	for i := range pix.Pix {
		pix.Pix[i] = 0
	}
	return nil
}

// Step draws the next frame.
func (pl *Player) Step() error {
	if err := pl.scene.Draw(pl.frame); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	pl.comp.SetShake(scene.Shake(pl.frame))

	f, err := pl.comp.RenderFrame(pl.src)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	pl.comp.Present(pl.screen, f)

	pl.last = f
	pl.frame++

	return nil
}

// FrameNum returns the number of frames drawn.
func (pl *Player) FrameNum() int {
	return pl.frame
}

// LastFrame returns the compositor result for the most recent frame.
func (pl *Player) LastFrame() compositor.Frame {
	return pl.last
}

// Screen returns the pixels of the device screen.
func (pl *Player) Screen() surface.Pixels {
	return surface.Bind(pl.env.Mem, pl.screen)
}

// Logical returns the pixels of the logical screen.
func (pl *Player) Logical() surface.Pixels {
	return surface.Bind(pl.env.Mem, pl.src)
}

// Palette returns the palette of the scene.
func (pl *Player) Palette() *scene.Palette {
	return pl.scene.Palette()
}

// Compositor returns the compositor used by the player.
func (pl *Player) Compositor() *compositor.Compositor {
	return pl.comp
}

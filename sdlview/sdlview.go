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

package sdlview

import (
	"fmt"

	"github.com/jetsetilly/pnokernels/environment"
	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/performance/limiter"
	"github.com/jetsetilly/pnokernels/player"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "pnokernels"

// the screen surface is little-endian RGB565
const pixelFormat = sdl.PIXELFORMAT_RGB565

// View is a simple SDL window showing the device screen.
//
// MUST ONLY be used from the main thread
type View struct {
	env *environment.Environment
	pl  *player.Player

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. the same as the device screen
	width  int32
	height int32
	zoom   int32

	lim *limiter.FpsLimiter

	quit bool
}

// NewView is the preferred method of initialisation for the View type.
func NewView(env *environment.Environment, pl *player.Player, zoom int, fps int) (*View, error) {
	vw := &View{
		env:  env,
		pl:   pl,
		zoom: int32(max(zoom, 1)),
		lim:  limiter.NewFPSLimiter(fps),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	// the correct size for the window is set by resize()
	vw.window, err = sdl.CreateWindow(windowTitle, int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED), 0, 0, uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	vw.renderer, err = sdl.CreateRenderer(vw.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlview: %w", err)
	}

	// MOUSEMOTION events are of no interest
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	err = vw.resize()
	if err != nil {
		return nil, err
	}

	vw.window.Show()

	return vw, nil
}

// resize the texture and window to the device screen
func (vw *View) resize() error {
	scr := vw.pl.Screen()
	w, h := int32(scr.Width), int32(scr.Height)
	if vw.texture != nil && w == vw.width && h == vw.height {
		return nil
	}

	if vw.texture != nil {
		if err := vw.texture.Destroy(); err != nil {
			return fmt.Errorf("sdlview: %w", err)
		}
	}

	var err error
	vw.texture, err = vw.renderer.CreateTexture(uint32(pixelFormat), int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return fmt.Errorf("sdlview: %w", err)
	}

	vw.width = w
	vw.height = h
	vw.window.SetSize(w*vw.zoom, h*vw.zoom)

	logger.Logf(logger.Allow, "sdlview", "window %dx%d (zoom %d)", w*vw.zoom, h*vw.zoom, vw.zoom)

	return nil
}

// Destroy the window and quit SDL.
func (vw *View) Destroy() {
	vw.lim.Stop()
	if vw.texture != nil {
		_ = vw.texture.Destroy()
	}
	if vw.renderer != nil {
		_ = vw.renderer.Destroy()
	}
	if vw.window != nil {
		_ = vw.window.Destroy()
	}
	sdl.Quit()
}

// Run the player until the window is closed.
func (vw *View) Run() error {
	for !vw.quit {
		if err := vw.service(); err != nil {
			return err
		}

		if err := vw.pl.Step(); err != nil {
			return err
		}

		if err := vw.update(); err != nil {
			return err
		}

		vw.lim.Wait()
	}
	return nil
}

// copy the device screen to the texture and present it
func (vw *View) update() error {
	scr := vw.pl.Screen()

	err := vw.texture.Update(nil, scr.Pix, scr.Pitch)
	if err != nil {
		return fmt.Errorf("sdlview: %w", err)
	}

	err = vw.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdlview: %w", err)
	}

	err = vw.renderer.Copy(vw.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdlview: %w", err)
	}

	vw.renderer.Present()

	return nil
}

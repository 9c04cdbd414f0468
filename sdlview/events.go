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

	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/preferences"
	"github.com/jetsetilly/pnokernels/screendump"

	"github.com/veandco/go-sdl2/sdl"
)

// service all outstanding SDL events
func (vw *View) service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			vw.quit = true

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue // for loop
			}
			if err := vw.key(ev.Keysym.Sym); err != nil {
				return err
			}
		}
	}
	return nil
}

func (vw *View) key(sym sdl.Keycode) error {
	scr := vw.env.Prefs.Screen

	switch sym {
	case sdl.K_ESCAPE:
		vw.quit = true

	case sdl.K_SPACE:
		if vw.pl.OverlayVisible() {
			return vw.pl.HideOverlay()
		}
		return vw.pl.ShowOverlay()

	case sdl.K_s:
		fn, err := screendump.Save(vw.pl.Screen().Image(), "sdlview", 1)
		if err != nil {
			logger.Logf(logger.Allow, "sdlview", "%v", err)
			return nil
		}
		logger.Logf(logger.Allow, "sdlview", "saved %s", fn)

	case sdl.K_o:
		o := preferences.Portrait
		if scr.IsPortrait() {
			o = preferences.Landscape
		}
		if err := scr.Orientation.Set(o); err != nil {
			return fmt.Errorf("sdlview: %w", err)
		}
		return vw.transition()

	case sdl.K_w:
		if err := scr.Wide.Set(!scr.Wide.Get().(bool)); err != nil {
			return fmt.Errorf("sdlview: %w", err)
		}
		return vw.transition()

	case sdl.K_a:
		if err := scr.Aspect.Set(!scr.Aspect.Get().(bool)); err != nil {
			return fmt.Errorf("sdlview: %w", err)
		}
		return vw.transition()
	}

	return nil
}

// transition the player after a change to the screen preferences
func (vw *View) transition() error {
	if err := vw.pl.Transition(); err != nil {
		return err
	}
	mode, _ := vw.pl.Compositor().Mode()
	logger.Logf(logger.Allow, "sdlview", "%s mode", mode)
	return vw.resize()
}

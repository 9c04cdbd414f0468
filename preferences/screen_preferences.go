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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/pnokernels/prefs"
)

// Values accepted by the Orientation preference.
const (
	Landscape = "landscape"
	Portrait  = "portrait"
)

// ScreenPreferences describe the device screen.
type ScreenPreferences struct {
	dsk *prefs.Disk

	// stretch the logical screen to fill the device screen
	Wide prefs.Bool

	// landscape or portrait
	Orientation prefs.String

	// correct the aspect ratio of the logical screen. this always uses the
	// scale table kernel
	Aspect prefs.Bool

	// size of the device screen in landscape orientation
	Width  prefs.Int
	Height prefs.Int
}

func (p *ScreenPreferences) String() string {
	return p.dsk.String()
}

func newScreenPreferences(pth string) (*ScreenPreferences, error) {
	p := &ScreenPreferences{}

	p.Orientation.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case Landscape, Portrait:
			return nil
		}
		return fmt.Errorf("unknown orientation: %v", v)
	})

	size := func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > 4096 {
			return fmt.Errorf("screen dimension out of range: %d", n)
		}
		return nil
	}
	p.Width.SetHookPre(size)
	p.Height.SetHookPre(size)

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.wide", &p.Wide)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.orientation", &p.Orientation)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.aspect", &p.Aspect)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("screen.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = load(p.dsk)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. The defaults describe
// a 480x320 screen in landscape, the most common wide screen device.
func (p *ScreenPreferences) SetDefaults() {
	p.Wide.Set(true)
	p.Orientation.Set(Landscape)
	p.Aspect.Set(false)
	p.Width.Set(480)
	p.Height.Set(320)
}

// IsPortrait returns true if the orientation preference is portrait.
func (p *ScreenPreferences) IsPortrait() bool {
	return strings.ToLower(p.Orientation.Get().(string)) == Portrait
}

// ScreenSize returns the size of the device screen as it is currently
// orientated.
func (p *ScreenPreferences) ScreenSize() (int, int) {
	w := p.Width.Get().(int)
	h := p.Height.Get().(int)
	if p.IsPortrait() {
		return h, w
	}
	return w, h
}

// Load current screen preference from disk.
func (p *ScreenPreferences) Load() error {
	return load(p.dsk)
}

// Save current screen preferences to disk.
func (p *ScreenPreferences) Save() error {
	return p.dsk.Save()
}

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

import "fmt"

// Mode is the rendering mode chosen by Transition().
type Mode int

// List of valid Mode values.
const (
	Normal Mode = iota
	WideLandscape
	WidePortrait
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case WideLandscape:
		return "wide landscape"
	case WidePortrait:
		return "wide portrait"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Orientation of the device screen.
type Orientation int

// List of valid Orientation values.
const (
	Landscape Orientation = iota
	Portrait
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// OrientationProvider describes the device screen. It is only consulted by
// the Transition() function.
type OrientationProvider interface {
	Orientation() Orientation
	WideMode() bool
	AspectCorrection() bool

	// size of the device screen in pixels as it is currently orientated
	ScreenSize() (int, int)
}

// Palette provides the native RGB565 colour for each palette index.
type Palette interface {
	NativePalette() *[256]uint16
}

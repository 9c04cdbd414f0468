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

// Package sdlview shows the device screen of a player.Player in an SDL
// window. The window is the size of the device screen multiplied by a zoom
// factor and the screen preferences can be changed with the keyboard:
//
//	O		toggle between landscape and portrait
//	W		toggle wide mode
//	A		toggle aspect correction
//	Space	pause (shows the overlay)
//	S		save the device screen to a bitmap file
//	Escape	quit
//
// The View type MUST ONLY be used from the main thread.
package sdlview

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

// Package compositor turns the 8-bit logical screen into the 16-bit image
// shown on the device.
//
// The Compositor owns the work surface, the native palette and the scale
// tables. All of these are created by Transition(), which reads the
// orientation provider and chooses one of three modes. Normal mode draws the
// logical screen at its original size. The two wide modes stretch it to fill
// the screen, either in landscape or rotated for a portrait screen. A 320x200
// logical screen is stretched by the fixed 1.5x kernels if the device screen
// is large enough. Other sizes, and all sizes when aspect correction is
// requested, use the scale table kernel.
//
// RenderFrame() is called once for every displayed frame and returns a Frame
// describing what the platform should copy to the screen. The Present()
// function is a simple implementation of that platform step.
//
// The Compositor must only be used from one goroutine. This is checked when
// built with the "assertions" build tag.
package compositor

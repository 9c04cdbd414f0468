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

// Package surface describes the images drawn by the kernels. A Surface is an
// area of shared memory with a pitch, a width, a height and a pixel depth.
// Pixels in 8-bit surfaces are palette indexes. Pixels in 16-bit surfaces are
// RGB565 values stored little-endian.
//
// The Pixels type gives access to the pixels of a surface from the host.
// Access is unchecked unless the program is built with the "assertions" build
// tag.
package surface

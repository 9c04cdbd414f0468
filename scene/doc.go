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

// Package scene draws an animated logical screen using every kernel in the
// kernels package. It is used by the viewer, by the benchmark and by the
// tests that compare the software and offloaded kernels.
//
// The scene is a backdrop with a scrolling parallax layer of hills, a pillar
// and a window, a walking figure that passes behind the pillar, bouncing
// balls with a shrinking shadow, and a text panel at the top of the screen.
// Assets are created by NewScene() and stored compressed in shared memory.
// Each call to Draw() decompresses and composites them with the kernels.
package scene

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

package scene

// 3x5 pixel glyphs. each row is three bits with the most significant bit on
// the left
var font = map[rune][5]uint8{
	'0': {7, 5, 5, 5, 7},
	'1': {2, 6, 2, 2, 7},
	'2': {7, 1, 7, 4, 7},
	'3': {7, 1, 3, 1, 7},
	'4': {5, 5, 7, 1, 1},
	'5': {7, 4, 7, 1, 7},
	'6': {7, 4, 7, 5, 7},
	'7': {7, 1, 1, 2, 2},
	'8': {7, 5, 7, 5, 7},
	'9': {7, 5, 7, 1, 7},
	'E': {7, 4, 6, 4, 7},
	'K': {5, 5, 6, 5, 5},
	'L': {4, 4, 4, 4, 7},
	'N': {6, 5, 5, 5, 5},
	'O': {7, 5, 5, 5, 7},
	'P': {7, 5, 7, 4, 4},
	'R': {6, 5, 6, 5, 5},
	'S': {7, 4, 7, 1, 7},
}

const (
	glyphScale   = 2
	glyphAdvance = 4 * glyphScale
)

// drawText prints the string into the plane at x, y. characters without a
// glyph are drawn as spaces. the text is clipped to the plane
func drawText(plane []byte, pitch int, x, y int, s string, col uint8) {
	for _, r := range s {
		if g, ok := font[r]; ok {
			for gy, bits := range g {
				for gx := range 3 {
					if bits&(4>>gx) == 0 {
						continue // for loop
					}
					px := x + gx*glyphScale
					for sy := range glyphScale {
						o := (y+gy*glyphScale+sy)*pitch + px
						for sx := range glyphScale {
							if px+sx < pitch && o+sx < len(plane) {
								plane[o+sx] = col
							}
						}
					}
				}
			}
		}
		x += glyphAdvance
	}
}

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

package kernels

import (
	"encoding/binary"
)

// ParallaxHeaderSize is the size of the header at the start of a parallax
// layer. The line index table follows immediately.
const ParallaxHeaderSize = 20

// ParallaxHeader is the header of a parallax layer. Values are little-endian.
type ParallaxHeader struct {
	Type  [16]byte
	SizeX uint16
	SizeY uint16
}

// ReadParallaxHeader reads the header from the start of a parallax layer.
func ReadParallaxHeader(data []byte) ParallaxHeader {
	var h ParallaxHeader
	copy(h.Type[:], data[:16])
	h.SizeX = binary.LittleEndian.Uint16(data[16:])
	h.SizeY = binary.LittleEndian.Uint16(data[18:])
	return h
}

// ParallaxScroll returns the scroll position of a parallax layer given the
// scroll position of the screen. A layer scrolls in proportion to how much
// larger it is than the visible screen compared to the room. If the room is
// no larger than the visible screen the layer does not scroll.
func ParallaxScroll(h ParallaxHeader, roomWidth, roomHeight int, visWidth, visHeight int, scrlX, scrlY int) (uint16, uint16) {
	var paraX, paraY uint16
	if roomWidth != visWidth {
		f := float64(int(h.SizeX)-visWidth) / float64(roomWidth-visWidth)
		paraX = uint16(float64(scrlX) * f)
	}
	if roomHeight != visHeight {
		f := float64(int(h.SizeY)-visHeight) / float64(roomHeight-visHeight)
		paraY = uint16(float64(scrlY) * f)
	}
	return paraX, paraY
}

// EncodeParallaxRow encodes a row of pixels as alternating skip and copy
// runs. Zero pixels are skipped.
func EncodeParallaxRow(row []byte) []byte {
	enc := make([]byte, 0, len(row)+2)
	copying := false
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && j-i < 255 && (row[j] != 0) == copying {
			j++
		}
		enc = append(enc, byte(j-i))
		if copying {
			enc = append(enc, row[i:j]...)
		}
		i = j
		copying = !copying
	}
	return enc
}

// BuildParallax creates a parallax layer from rows of pixels. All rows should
// be the same length.
func BuildParallax(typ string, rows [][]byte) []byte {
	var sizeX int
	if len(rows) > 0 {
		sizeX = len(rows[0])
	}

	data := make([]byte, ParallaxHeaderSize+4*len(rows))
	copy(data[:16], typ)
	binary.LittleEndian.PutUint16(data[16:], uint16(sizeX))
	binary.LittleEndian.PutUint16(data[18:], uint16(len(rows)))

	for i, r := range rows {
		binary.LittleEndian.PutUint32(data[ParallaxHeaderSize+i*4:], uint32(len(data)))
		data = append(data, EncodeParallaxRow(r)...)
	}

	return data
}

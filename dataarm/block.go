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

package dataarm

import "encoding/binary"

// Block is a view of a single parameter block.
type Block []byte

// Read8 returns the byte at off.
func (b Block) Read8(off uint32) uint8 {
	return b[off]
}

// Read16 returns the big-endian 16-bit value at off.
func (b Block) Read16(off uint32) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

// Read32 returns the big-endian 32-bit value at off.
func (b Block) Read32(off uint32) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

// ReadPtr returns the address stored at off.
func (b Block) ReadPtr(off uint32) uint32 {
	return b.Read32(off)
}

func (b Block) Write8(off uint32, v uint8) {
	b[off] = v
}

func (b Block) Write16(off uint32, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

func (b Block) Write32(off uint32, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

func (b Block) WritePtr(off uint32, v uint32) {
	b.Write32(off, v)
}
